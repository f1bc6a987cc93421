package mincluster_test

import (
	"math"
	"testing"

	"github.com/mawngo/mincluster/internal/mincluster"
	"github.com/muesli/clusters"
	"github.com/stretchr/testify/assert"
)

func TestAbsolute(t *testing.T) {
	pairs := [][2]float64{{1, 1}, {1, 2}, {-3, 4.5}, {0, -0.25}, {1e9, -1e9}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, mincluster.Absolute(a, b), mincluster.Absolute(b, a))
		assert.GreaterOrEqual(t, mincluster.Absolute(a, b), 0.0)
		assert.Equal(t, a == b, mincluster.Absolute(a, b) == 0)
	}
	assert.Equal(t, 3.0, mincluster.Absolute[uint](2, 5))
	assert.Equal(t, 7.0, mincluster.Absolute(-2, 5))
}

func TestVectorDistances(t *testing.T) {
	a := clusters.Coordinates{0, 0}
	b := clusters.Coordinates{3, 4}

	assert.InDelta(t, 5.0, mincluster.EuclideanDistance(a, b), 1e-12)
	assert.InDelta(t, 25.0, mincluster.EuclideanDistanceSquared(a, b), 1e-12)
	assert.InDelta(t, 7.0, mincluster.ManhattanDistance(a, b), 1e-12)
	assert.InDelta(t, 4.0, mincluster.ChebyshevDistance(a, b), 1e-12)
	assert.Zero(t, mincluster.EuclideanDistance(b, b))
}

func TestVectorDistance_Lookup(t *testing.T) {
	for _, name := range []string{"EuclideanDistance", "EuclideanDistanceSquared", "ManhattanDistance", "ChebyshevDistance"} {
		fn, ok := mincluster.VectorDistance(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}
	_, ok := mincluster.VectorDistance("Cosine")
	assert.False(t, ok)
	assert.False(t, math.IsNaN(mincluster.ManhattanDistance(clusters.Coordinates{1}, clusters.Coordinates{-1})))
}
