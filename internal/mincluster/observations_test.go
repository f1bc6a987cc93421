package mincluster_test

import (
	"testing"

	"github.com/mawngo/mincluster/internal/mincluster"
	"github.com/muesli/clusters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	dataset := clusters.Observations{
		clusters.Coordinates{0, 0},
		clusters.Coordinates{0, 1},
		clusters.Coordinates{10, 10},
		clusters.Coordinates{10, 11},
	}
	for _, fn := range []mincluster.VectorDistanceFunc{nil, mincluster.EuclideanDistance, mincluster.ManhattanDistance} {
		cc, err := mincluster.Partition(2, dataset, fn, mincluster.WithRand(fixedSource(0)))
		require.NoError(t, err)
		require.Len(t, cc, 2)

		assert.Equal(t, clusters.Coordinates{0, 0}, cc[0].Center)
		assert.Equal(t, clusters.Observations{dataset[1]}, cc[0].Observations)
		assert.Equal(t, clusters.Coordinates{10, 11}, cc[1].Center)
		assert.Equal(t, clusters.Observations{dataset[2]}, cc[1].Observations)

		assert.Equal(t, 1, cc.Nearest(clusters.Coordinates{9, 9}))
		assert.Equal(t, 0, cc.Nearest(clusters.Coordinates{1, 2}))
	}
}

func TestPartition_RowsAreElements(t *testing.T) {
	dataset := clusters.Observations{
		clusters.Coordinates{1, 1},
		clusters.Coordinates{1, 1},
	}
	cc, err := mincluster.Partition(2, dataset, mincluster.EuclideanDistance, mincluster.WithRand(fixedSource(0)))
	require.NoError(t, err)
	assert.Empty(t, cc[0].Observations)
	assert.Empty(t, cc[1].Observations)
	assert.Equal(t, cc[0].Center, cc[1].Center)
}

func TestPartition_Errors(t *testing.T) {
	_, err := mincluster.Partition(2, nil, nil)
	assert.ErrorIs(t, err, mincluster.ErrEmptyInput)

	_, err = mincluster.Partition(1, clusters.Observations{
		clusters.Coordinates{1, 2},
		clusters.Coordinates{1, 2, 3},
	}, nil)
	assert.ErrorIs(t, err, mincluster.ErrDimensionMismatch)
	assert.ErrorIs(t, err, mincluster.ErrInvalidArgument)

	_, err = mincluster.Partition(3, clusters.Observations{
		clusters.Coordinates{1},
		clusters.Coordinates{2},
	}, nil)
	assert.ErrorIs(t, err, mincluster.ErrInvalidState)

	_, err = mincluster.Partition(0, clusters.Observations{clusters.Coordinates{1}}, nil)
	assert.ErrorIs(t, err, mincluster.ErrInvalidK)
}
