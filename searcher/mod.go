package searcher

import "iter"

// Mode declares, for the state about to move, whether search should prefer the
// largest or the smallest propagated child value. Adversarial alternation is
// encoded by flipping the mode between plies.
type Mode int

const (
	Maximize Mode = iota
	Minimize
)

func (m Mode) String() string {
	switch m {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Weighted pairs a change with the multiplier applied to the resulting
// subtree's value before it competes with its siblings. Weights are not
// probabilities and need not sum to 1.
type Weighted[C comparable] struct {
	Weight float64
	Change C
}

// State is the transition contract a domain must satisfy. States are immutable
// values: Apply returns a successor, never mutates in place. Structurally
// identical states must compare equal so they collapse in the cache.
type State[S, C comparable] interface {
	comparable

	// Apply produces the successor state. Behavior is undefined if change was
	// not yielded by Changes for this state.
	Apply(change C) S

	// Changes enumerates every legal transition out of this state, in a
	// deterministic order. It yields nothing exactly when the state is
	// terminal. The sequence is consumed at most once per call.
	Changes() iter.Seq[Weighted[C]]
}

// Value is the score contract. The zero value of V is the default score.
// Implementations must have value semantics: assignment is a copy.
type Value[V any] interface {
	Add(other V) V
	Mul(weight float64) V
	Div(weight float64) V

	// Cmp returns -1, 0 or 1 as the receiver orders before, equal to, or
	// after other.
	Cmp(other V) int
}

// Evaluator scores states in isolation and steers the search. It must be
// immutable after construction: queried as a pure function of (state, depth),
// holding no mutable state of its own.
type Evaluator[S State[S, C], C comparable, V Value[V]] interface {
	// Evaluate scores a state with no lookahead.
	Evaluate(state S) V

	// Mode reports whether the player moving at state prefers large or small
	// propagated values.
	Mode(state S) Mode

	// Contemplate reports whether the search may expand state at the given
	// depth. Returning false forces the node to stay a leaf valued by
	// Evaluate alone. This is the only latency and memory bound the engine
	// has; unbounded domains must limit it.
	Contemplate(state S, depth int) bool
}

// Exhaustive is an embeddable Contemplate policy that never bounds the
// search. Only suitable for domains whose full tree fits in memory.
type Exhaustive[S any] struct{}

func (Exhaustive[S]) Contemplate(state S, depth int) bool { return true }

// DepthLimit is an embeddable Contemplate policy that stops expansion at a
// fixed depth.
type DepthLimit[S any] struct {
	Max int
}

func (d DepthLimit[S]) Contemplate(state S, depth int) bool { return depth < d.Max }
