// Package mincluster partitions elements into k clusters by greedy farthest-first
// head selection: one random head, then each new head is the element farthest from
// its nearest existing head, and elements move to whichever head is nearest.
package mincluster

import (
	"fmt"
	"log/slog"
	"math/rand"
)

// Source is the random source used to draw the first head.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// globalSource draws from the process-wide math/rand generator.
type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

type settings struct {
	distanceFn any
	rand       Source
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*settings)

// Builder creates cluster states for a fixed k.
type Builder[E comparable] struct {
	k int
	settings
}

// NewBuilder create new Builder.
func NewBuilder[E comparable](k int, options ...Option) Builder[E] {
	b := Builder[E]{
		k: k,
		settings: settings{
			rand:   globalSource{},
			logger: slog.Default(),
		},
	}
	for i := range options {
		options[i](&b.settings)
	}
	return b
}

// WithDistanceFunc sets the metric. Numeric elements default to Absolute,
// and a nil fn keeps that default.
func WithDistanceFunc[E any](fn DistanceFunc[E]) Option {
	return func(s *settings) {
		if fn == nil {
			s.distanceFn = nil
			return
		}
		s.distanceFn = fn
	}
}

// WithRand sets the source used to pick the first head.
func WithRand(r Source) Option {
	return func(s *settings) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithSeed makes the first head deterministic.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// K returns the requested number of clusters.
func (b Builder[E]) K() int {
	return b.k
}

// Init validates the input and creates the initial state: a single random head and
// cluster 0 holding every other distinct element.
func (b Builder[E]) Init(elements []E) (*State[E], error) {
	if b.k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, b.k)
	}
	if len(elements) == 0 {
		return nil, ErrEmptyInput
	}
	distanceFn, err := b.distance()
	if err != nil {
		return nil, err
	}

	distinct := make([]E, 0, len(elements))
	index := make(map[E]int, len(elements))
	for _, e := range elements {
		if _, ok := index[e]; ok {
			continue
		}
		index[e] = len(distinct)
		distinct = append(distinct, e)
	}

	if b.k > len(distinct) {
		return nil, fmt.Errorf("%w: %d clusters requested for %d distinct elements", ErrInvalidState, b.k, len(distinct))
	}

	pick := elements[b.rand.Intn(len(elements))]
	head, ok := index[pick]
	if !ok {
		// Only values that are not equal to themselves, such as NaN, miss the index.
		return nil, fmt.Errorf("%w: element %v is not equal to itself", ErrInvalidArgument, pick)
	}
	members := make([]int, 0, len(distinct)-1)
	for i := range distinct {
		if i != head {
			members = append(members, i)
		}
	}

	clusters := make([][]int, b.k)
	clusters[0] = members
	s := &State[E]{
		elements:   distinct,
		distanceFn: distanceFn,
		logger:     b.logger,
		clusters:   clusters,
		heads:      []int{head},
	}
	b.logger.Debug("Initialized clusters",
		slog.Int("k", b.k),
		slog.Int("elements", len(elements)),
		slog.Int("distinct", len(distinct)),
		slog.Any("head", distinct[head]),
	)
	return s, nil
}

// Fit creates the initial state and expands it to k clusters.
func (b Builder[E]) Fit(elements []E) (*State[E], error) {
	s, err := b.Init(elements)
	if err != nil {
		return nil, err
	}
	if err := s.Expand(); err != nil {
		return nil, err
	}
	return s, nil
}

func (b Builder[E]) distance() (DistanceFunc[E], error) {
	if b.distanceFn == nil {
		if fn := defaultDistance[E](); fn != nil {
			return fn, nil
		}
		var zero E
		return nil, fmt.Errorf("%w: element type %T", ErrNoDistance, zero)
	}
	if fn, ok := b.distanceFn.(DistanceFunc[E]); ok && fn != nil {
		return fn, nil
	}
	var zero E
	return nil, fmt.Errorf("%w: %T does not measure %T", ErrNoDistance, b.distanceFn, zero)
}

// New creates the initial state for k clusters over elements.
func New[E comparable](k int, elements []E, options ...Option) (*State[E], error) {
	return NewBuilder[E](k, options...).Init(elements)
}

// Cluster partitions elements into k clusters and returns them with their heads.
// clusters[i] holds the members assigned to heads[i]; a head is never listed among
// its own members.
func Cluster[E comparable](k int, elements []E, options ...Option) ([][]E, []E, error) {
	s, err := NewBuilder[E](k, options...).Fit(elements)
	if err != nil {
		return nil, nil, err
	}
	return s.Clusters(), s.Heads(), nil
}
