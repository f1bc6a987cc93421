package mincluster

import (
	"fmt"
	"slices"

	"github.com/muesli/clusters"
)

// Partition clusters a dataset of observations into k clusters. Observations are
// told apart by position, so equal coordinates on two rows are two elements.
// Each returned cluster is centered on its head's coordinates and holds the other
// observations assigned to that head. A nil fn measures with Observation.Distance.
func Partition(k int, dataset clusters.Observations, fn VectorDistanceFunc, options ...Option) (clusters.Clusters, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyInput
	}
	dim := len(dataset[0].Coordinates())
	for i, o := range dataset {
		if n := len(o.Coordinates()); n != dim {
			return nil, fmt.Errorf("%w: observation %d has %d coordinates, want %d", ErrDimensionMismatch, i, n, dim)
		}
	}

	distance := func(a, b int) float64 {
		return dataset[a].Distance(dataset[b].Coordinates())
	}
	if fn != nil {
		distance = func(a, b int) float64 {
			return fn(dataset[a].Coordinates(), dataset[b].Coordinates())
		}
	}

	rows := make([]int, len(dataset))
	for i := range rows {
		rows[i] = i
	}
	options = append(slices.Clip(options), WithDistanceFunc(DistanceFunc[int](distance)))
	s, err := NewBuilder[int](k, options...).Fit(rows)
	if err != nil {
		return nil, err
	}

	result := make(clusters.Clusters, s.K())
	for i := range result {
		result[i].Center = slices.Clone(dataset[s.Head(i)].Coordinates())
		members := s.Cluster(i)
		result[i].Observations = make(clusters.Observations, len(members))
		for n, m := range members {
			result[i].Observations[n] = dataset[m]
		}
	}
	return result, nil
}
