package mincluster

import (
	"math"

	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"
)

// DistanceFunc represents a function for measuring distance between two elements.
// It must be symmetric and non-negative.
type DistanceFunc[E any] func(a, b E) float64

// VectorDistanceFunc represents a function for measuring distance between n-dimensional vectors.
type VectorDistanceFunc func(a, b clusters.Coordinates) float64

// Number is the set of element types that have a default distance.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Absolute is the reference scalar metric |a - b|.
func Absolute[N Number](a, b N) float64 {
	return math.Abs(float64(a) - float64(b))
}

var (
	// EuclideanDistance is one of the common distance measurement.
	EuclideanDistance VectorDistanceFunc = func(a, b clusters.Coordinates) float64 {
		return floats.Distance(a, b, 2)
	}

	// EuclideanDistanceSquared orders points like EuclideanDistance without the square root.
	EuclideanDistanceSquared VectorDistanceFunc = func(a, b clusters.Coordinates) float64 {
		d := floats.Distance(a, b, 2)
		return d * d
	}

	// ManhattanDistance is the L1 distance.
	ManhattanDistance VectorDistanceFunc = func(a, b clusters.Coordinates) float64 {
		return floats.Distance(a, b, 1)
	}

	// ChebyshevDistance is the L-infinity distance.
	ChebyshevDistance VectorDistanceFunc = func(a, b clusters.Coordinates) float64 {
		return floats.Distance(a, b, math.Inf(1))
	}
)

var vectorDistances = map[string]VectorDistanceFunc{
	"EuclideanDistance":        EuclideanDistance,
	"EuclideanDistanceSquared": EuclideanDistanceSquared,
	"ManhattanDistance":        ManhattanDistance,
	"ChebyshevDistance":        ChebyshevDistance,
}

// VectorDistance returns the vector metric registered under name.
func VectorDistance(name string) (VectorDistanceFunc, bool) {
	fn, ok := vectorDistances[name]
	return fn, ok
}

// defaultDistance picks Absolute for the builtin numeric types.
func defaultDistance[E comparable]() DistanceFunc[E] {
	var zero E
	var fn any
	switch any(zero).(type) {
	case int:
		fn = DistanceFunc[int](Absolute[int])
	case int8:
		fn = DistanceFunc[int8](Absolute[int8])
	case int16:
		fn = DistanceFunc[int16](Absolute[int16])
	case int32:
		fn = DistanceFunc[int32](Absolute[int32])
	case int64:
		fn = DistanceFunc[int64](Absolute[int64])
	case uint:
		fn = DistanceFunc[uint](Absolute[uint])
	case uint8:
		fn = DistanceFunc[uint8](Absolute[uint8])
	case uint16:
		fn = DistanceFunc[uint16](Absolute[uint16])
	case uint32:
		fn = DistanceFunc[uint32](Absolute[uint32])
	case uint64:
		fn = DistanceFunc[uint64](Absolute[uint64])
	case float32:
		fn = DistanceFunc[float32](Absolute[float32])
	case float64:
		fn = DistanceFunc[float64](Absolute[float64])
	default:
		return nil
	}
	return fn.(DistanceFunc[E])
}
