package searcher

import (
	"github.com/rs/zerolog/log"
)

// Solver owns one evaluator, one cache and the current root of the
// possibility tree. It advances through a session by committing changes, so
// work cached under descendant states is reused by later searches.
//
// A Solver is single-threaded: every operation runs to completion and the
// cache must not be shared across goroutines.
type Solver[S State[S, C], C comparable, V Value[V]] struct {
	evaluator Evaluator[S, C, V]
	cache     *Cache[S, C, V]
	tree      Possibility[S, C, V]
}

type Option[S State[S, C], C comparable, V Value[V]] func(*Solver[S, C, V])

// WithCache injects a caller-owned cache, making state sharing across
// solvers explicit. Only solvers driven by equivalent evaluators may share
// one: cached values embed the evaluator's scoring.
func WithCache[S State[S, C], C comparable, V Value[V]](cache *Cache[S, C, V]) Option[S, C, V] {
	return func(s *Solver[S, C, V]) {
		s.cache = cache
	}
}

func New[S State[S, C], C comparable, V Value[V]](e Evaluator[S, C, V], root S, options ...Option[S, C, V]) *Solver[S, C, V] {
	s := &Solver[S, C, V]{evaluator: e}
	for _, option := range options {
		option(s)
	}
	if s.cache == nil {
		s.cache = NewCache[S, C, V]()
	}
	s.tree = NewPossibility(root, e, s.cache)
	return s
}

// Choose recommends the best next change from the current root. Reports
// false when the root state has no legal change.
func (s *Solver[S, C, V]) Choose() (V, C, bool) {
	value, change, ok := s.tree.Choose(s.evaluator, s.cache)
	if ok {
		log.Debug().Int("cached", s.cache.Len()).Msgf("chose %v", change)
	} else {
		log.Debug().Msg("no legal change to choose")
	}
	return value, change, ok
}

// Select commits a change, replacing the root with the matching child.
// Panics if the change is not legal from the current root state.
func (s *Solver[S, C, V]) Select(change C) *Solver[S, C, V] {
	s.tree.Select(change, s.evaluator, s.cache)
	return s
}

// State is the current root's state, for the surrounding application to
// inspect.
func (s *Solver[S, C, V]) State() S {
	return s.tree.State()
}

// CacheStats reports cache traffic for the session so far.
func (s *Solver[S, C, V]) CacheStats() CacheStats {
	return s.cache.Stats()
}
