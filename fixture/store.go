// Package fixture builds the synthetic datasets the operations scan.
//
// Every family is built on first access, at most once, and never written
// again. Position i of every slice holds the value i in each numeric field,
// so a wrapped slice and its unwrapped twin carry the same data index by index.
package fixture

import (
	"sync"

	"go.uber.org/zap"

	"zco-bench/wrap"
)

const (
	// Generated is the number of elements produced after the seed element.
	Generated = 10_000

	// Len is the length of every fixture slice: the seed plus Generated.
	Len = Generated + 1
)

// Store owns all fixture slices for its lifetime.
// Callers must treat returned slices as read-only.
type Store struct {
	genOnce sync.Once
	gens    []wrap.Gen[int64, float64]
	ungens  []wrap.Ungen

	newtypeOnce sync.Once
	foos        []wrap.Foo
	bars        []wrap.Bar
	rawFoos     []int64
	rawBars     []wrap.Triple

	optionOnce sync.Once
	options    []wrap.Option[int64]
	defaulted  []int64

	resultOnce       sync.Once
	results          []wrap.Result[int64]
	defaultedResults []int64

	iterOnce  sync.Once
	iteration []int64
}

var defaultStore = New()

// Default returns the process-wide store.
func Default() *Store {
	return defaultStore
}

// New returns an empty store. Nothing is built until first access.
func New() *Store {
	return &Store{}
}

// Preload builds every family now instead of on first access.
func (s *Store) Preload(logger *zap.Logger) {
	s.Gens()
	s.Foos()
	s.Options()
	s.Results()
	s.Iteration()
	logger.Info("Fixtures built",
		zap.Int("families", 5),
		zap.Int("len", Len),
	)
}

func (s *Store) Gens() []wrap.Gen[int64, float64] {
	s.genOnce.Do(s.buildGens)
	return s.gens
}

func (s *Store) Ungens() []wrap.Ungen {
	s.genOnce.Do(s.buildGens)
	return s.ungens
}

func (s *Store) Foos() []wrap.Foo {
	s.newtypeOnce.Do(s.buildNewtypes)
	return s.foos
}

func (s *Store) Bars() []wrap.Bar {
	s.newtypeOnce.Do(s.buildNewtypes)
	return s.bars
}

func (s *Store) RawFoos() []int64 {
	s.newtypeOnce.Do(s.buildNewtypes)
	return s.rawFoos
}

func (s *Store) RawBars() []wrap.Triple {
	s.newtypeOnce.Do(s.buildNewtypes)
	return s.rawBars
}

func (s *Store) Options() []wrap.Option[int64] {
	s.optionOnce.Do(s.buildOptions)
	return s.options
}

// Defaulted is Options with the default already applied.
func (s *Store) Defaulted() []int64 {
	s.optionOnce.Do(s.buildOptions)
	return s.defaulted
}

func (s *Store) Results() []wrap.Result[int64] {
	s.resultOnce.Do(s.buildResults)
	return s.results
}

// DefaultedResults is Results with the default already applied.
func (s *Store) DefaultedResults() []int64 {
	s.resultOnce.Do(s.buildResults)
	return s.defaultedResults
}

// Iteration is the plain sequence shared by the basic and composed iteration ops.
func (s *Store) Iteration() []int64 {
	s.iterOnce.Do(func() { s.iteration = ints() })
	return s.iteration
}
