package searcher

import "fmt"

// Possibility is one node of the search tree: exactly one state, plus either
// its direct value (leaf) or the weighted subtrees reachable by one change
// (branch). A state with no legal changes is always a leaf; a branch always
// has at least one child.
type Possibility[S State[S, C], C comparable, V Value[V]] struct {
	state    S
	value    V
	children []Child[S, C, V] // nil for a leaf
}

// Child annotates a subtree with the change and weight that produced it.
type Child[S State[S, C], C comparable, V Value[V]] struct {
	Change C
	Weight float64
	Node   Possibility[S, C, V]
}

// NewPossibility returns the cached subtree for root if one exists, otherwise
// an unexpanded leaf holding root's direct evaluation. The fresh leaf is not
// cached; only fully created nodes enter the cache (see create).
func NewPossibility[S State[S, C], C comparable, V Value[V]](root S, e Evaluator[S, C, V], cache *Cache[S, C, V]) Possibility[S, C, V] {
	if cached, ok := cache.lookup(root); ok {
		return cached
	}
	cache.stats.Evaluations++
	return Possibility[S, C, V]{state: root, value: e.Evaluate(root)}
}

// create is the cache-checked factory. A cache hit short-circuits all work,
// including re-evaluation. A contemplation-limited node becomes a leaf by
// fiat and is deliberately not cached, so a later visit at a shallower depth
// can still expand the same state. Finished nodes are snapshot into the cache
// before being returned.
func create[S State[S, C], C comparable, V Value[V]](state S, e Evaluator[S, C, V], cache *Cache[S, C, V], depth int) Possibility[S, C, V] {
	if cached, ok := cache.lookup(state); ok {
		return cached
	}
	cache.stats.Evaluations++
	value := e.Evaluate(state)
	if !e.Contemplate(state, depth) {
		return Possibility[S, C, V]{state: state, value: value}
	}
	var children []Child[S, C, V]
	for w := range state.Changes() {
		child := create(state.Apply(w.Change), e, cache, depth+1)
		children = append(children, Child[S, C, V]{Change: w.Change, Weight: w.Weight, Node: child})
	}
	p := Possibility[S, C, V]{state: state, value: value, children: children}
	cache.insert(state, p)
	return p
}

// Expand grows the tree one layer further down every branch path. A leaf
// whose state still contemplates is upgraded in place to a branch; a leaf
// with no legal changes, or one the evaluator refuses to contemplate at this
// depth, is left untouched. Expanding a branch recurses into its children at
// depth+1.
func (p *Possibility[S, C, V]) Expand(e Evaluator[S, C, V], cache *Cache[S, C, V], depth int) {
	if !e.Contemplate(p.state, depth) {
		return
	}
	if p.IsLeaf() {
		var children []Child[S, C, V]
		for w := range p.state.Changes() {
			child := create(p.state.Apply(w.Change), e, cache, depth+1)
			children = append(children, Child[S, C, V]{Change: w.Change, Weight: w.Weight, Node: child})
		}
		if children == nil {
			return
		}
		p.children = children
		return
	}
	for i := range p.children {
		p.children[i].Node.Expand(e, cache, depth+1)
	}
}

// Evaluate propagates a single value up from this subtree. A leaf returns its
// stored value as-is. A branch folds its children's values, each scaled by
// the child's weight, keeping the extreme the state's mode asks for. The
// branch's own immediate evaluation is not blended in.
func (p *Possibility[S, C, V]) Evaluate(e Evaluator[S, C, V], cache *Cache[S, C, V], depth int) V {
	if e.Contemplate(p.state, depth) {
		p.Expand(e, cache, depth)
	}
	if p.IsLeaf() {
		return p.value
	}
	if len(p.children) == 0 {
		panic("branch possibility with no children")
	}
	mode := e.Mode(p.state)
	var best V
	for i := range p.children {
		child := &p.children[i]
		value := child.Node.Evaluate(e, cache, depth+1).Mul(child.Weight)
		if i == 0 {
			best = value
			continue
		}
		switch mode {
		case Maximize:
			if value.Cmp(best) > 0 {
				best = value
			}
		case Minimize:
			if value.Cmp(best) < 0 {
				best = value
			}
		}
	}
	return best
}

// Choose recommends the change leading to the child with the largest
// weight-scaled value, regardless of this state's own mode: a recommendation
// is always best for the side choosing to advance. Ties go to the last change
// enumerated. Reports false on a leaf, meaning no legal move exists.
func (p *Possibility[S, C, V]) Choose(e Evaluator[S, C, V], cache *Cache[S, C, V]) (V, C, bool) {
	p.Expand(e, cache, 0)
	if p.IsLeaf() {
		var value V
		var change C
		return value, change, false
	}
	var best V
	var bestChange C
	for i := range p.children {
		child := &p.children[i]
		value := child.Node.Evaluate(e, cache, 1).Mul(child.Weight)
		if i == 0 || value.Cmp(best) >= 0 {
			best = value
			bestChange = child.Change
		}
	}
	return best, bestChange, true
}

// Select commits a change: the node is replaced in place by the child that
// change leads to. Panics if the node has no children to select into, or if
// no child matches; both indicate the caller broke the transition contract.
func (p *Possibility[S, C, V]) Select(change C, e Evaluator[S, C, V], cache *Cache[S, C, V]) {
	p.Expand(e, cache, 0)
	if p.IsLeaf() {
		panic("cannot select on a leaf possibility")
	}
	for i := range p.children {
		if p.children[i].Change == change {
			*p = p.children[i].Node
			return
		}
	}
	panic(fmt.Sprintf("change %v is not legal from the current state", change))
}

func (p *Possibility[S, C, V]) State() S { return p.state }

func (p *Possibility[S, C, V]) IsLeaf() bool { return p.children == nil }

// clone deep-copies the subtree. Values copy by assignment, which is why the
// Value contract demands value semantics.
func (p Possibility[S, C, V]) clone() Possibility[S, C, V] {
	if p.children == nil {
		return p
	}
	children := make([]Child[S, C, V], len(p.children))
	for i, child := range p.children {
		children[i] = Child[S, C, V]{Change: child.Change, Weight: child.Weight, Node: child.Node.clone()}
	}
	return Possibility[S, C, V]{state: p.state, value: p.value, children: children}
}
