package mincluster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument classifies errors caused by the caller's input.
	ErrInvalidArgument = errors.New("mincluster: invalid argument")

	// ErrInvalidState is returned when an expansion step has no element left to promote,
	// i.e. k exceeds what the element population can supply.
	ErrInvalidState = errors.New("mincluster: invalid state")
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidArgument)

	// ErrEmptyInput is returned when there is nothing to cluster.
	ErrEmptyInput = fmt.Errorf("%w: no elements", ErrInvalidArgument)

	// ErrNoDistance is returned for non-numeric elements without WithDistanceFunc.
	ErrNoDistance = fmt.Errorf("%w: no distance function", ErrInvalidArgument)

	// ErrInvalidDistance is returned when the distance function yields a negative value or NaN.
	ErrInvalidDistance = fmt.Errorf("%w: distance must be a non-negative number", ErrInvalidArgument)

	// ErrDimensionMismatch is returned when observations do not share one dimension.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)
)
