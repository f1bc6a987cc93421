package mincluster

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// State is the working set of a clustering run. Clusters always has k slots; heads
// grows from 1 to k as expansion proceeds and is aligned with the leading clusters.
// Elements are tracked by their first-occurrence index in the input, and every cluster
// lists its members in that order.
type State[E comparable] struct {
	elements   []E
	distanceFn DistanceFunc[E]
	logger     *slog.Logger
	clusters   [][]int
	heads      []int
}

// Step runs one expansion iteration. It returns false once all k heads exist.
func (s *State[E]) Step() (bool, error) {
	j := len(s.heads)
	if j >= len(s.clusters) {
		return false, nil
	}

	// Candidates are scanned cluster by cluster in member order; the first maximum wins.
	best, bestDist := -1, 0.0
	for i := 0; i < j; i++ {
		for _, node := range s.clusters[i] {
			dist, err := s.distance(node, s.heads[i])
			if err != nil {
				return false, err
			}
			nearest := true
			for c := 0; c < j && nearest; c++ {
				if c == i {
					continue
				}
				d, err := s.distance(node, s.heads[c])
				if err != nil {
					return false, err
				}
				nearest = dist <= d
			}
			if nearest && (best < 0 || dist > bestDist) {
				best, bestDist = node, dist
			}
		}
	}
	if best < 0 {
		return false, fmt.Errorf("%w: no element left to head cluster %d of %d", ErrInvalidState, j, len(s.clusters))
	}

	// Rebuilt clusters are committed only once every distance has been validated.
	var moved []int
	rebuilt := make([][]int, j)
	for i := 0; i < j; i++ {
		kept := make([]int, 0, len(s.clusters[i]))
		for _, node := range s.clusters[i] {
			if node == best {
				continue
			}
			own, err := s.distance(node, s.heads[i])
			if err != nil {
				return false, err
			}
			d, err := s.distance(node, best)
			if err != nil {
				return false, err
			}
			if d < own {
				moved = append(moved, node)
			} else {
				kept = append(kept, node)
			}
		}
		rebuilt[i] = kept
	}
	slices.Sort(moved)

	copy(s.clusters, rebuilt)
	s.clusters[j] = moved
	s.heads = append(s.heads, best)
	s.logger.Debug("Expanded cluster",
		slog.Int("cluster", j),
		slog.Any("head", s.elements[best]),
		slog.Float64("distance", bestDist),
		slog.Int("moved", len(moved)),
	)
	return true, nil
}

// Expand runs the remaining iterations until there are k heads.
func (s *State[E]) Expand() error {
	for {
		more, err := s.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *State[E]) distance(a, b int) (float64, error) {
	d := s.distanceFn(s.elements[a], s.elements[b])
	if d < 0 || math.IsNaN(d) {
		return 0, fmt.Errorf("%w: distance(%v, %v) = %v", ErrInvalidDistance, s.elements[a], s.elements[b], d)
	}
	return d, nil
}

// Done reports whether all k heads have been selected.
func (s *State[E]) Done() bool {
	return len(s.heads) == len(s.clusters)
}

// K returns the number of cluster slots.
func (s *State[E]) K() int {
	return len(s.clusters)
}

// Elements returns the distinct input elements in first-occurrence order.
func (s *State[E]) Elements() []E {
	return slices.Clone(s.elements)
}

// Heads returns the heads selected so far.
func (s *State[E]) Heads() []E {
	heads := make([]E, len(s.heads))
	for i, h := range s.heads {
		heads[i] = s.elements[h]
	}
	return heads
}

// Head returns head of cluster i.
func (s *State[E]) Head(i int) E {
	return s.elements[s.heads[i]]
}

// Clusters returns the members of every cluster slot, heads excluded.
func (s *State[E]) Clusters() [][]E {
	clusters := make([][]E, len(s.clusters))
	for i := range s.clusters {
		clusters[i] = s.Cluster(i)
	}
	return clusters
}

// Cluster returns members of cluster at position i.
func (s *State[E]) Cluster(i int) []E {
	members := make([]E, len(s.clusters[i]))
	for n, m := range s.clusters[i] {
		members[n] = s.elements[m]
	}
	return members
}

// Guesses returns mapping from distinct element indices to cluster numbers.
func (s *State[E]) Guesses() []int {
	mapping := make([]int, len(s.elements))
	for i, h := range s.heads {
		mapping[h] = i
		for _, m := range s.clusters[i] {
			mapping[m] = i
		}
	}
	return mapping
}

// Predict returns number of the cluster whose head is nearest to e.
// Ties go to the lower cluster number. A negative or NaN distance fails with
// ErrInvalidDistance.
func (s *State[E]) Predict(e E) (int, error) {
	l := 0
	n := -1.0
	for i, h := range s.heads {
		d := s.distanceFn(e, s.elements[h])
		if d < 0 || math.IsNaN(d) {
			return 0, fmt.Errorf("%w: distance(%v, %v) = %v", ErrInvalidDistance, e, s.elements[h], d)
		}
		if n < 0 || d < n {
			n = d
			l = i
		}
	}
	return l, nil
}
