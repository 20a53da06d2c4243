// Package planar: shared engine of the exact searches.
//
// Exhaustive and BranchAndBound walk the same binary search tree. A node
// dequeues the cheapest remaining candidate and
//
//  1. discards it when its endpoints are already connected;
//  2. accepts it when it merges two components without crossing any accepted
//     edge (the cheapest compatible merge; deferring it cannot help);
//  3. otherwise branches into
//     reject        – skip the candidate, keep tree and queue;
//     force-include – accept it, evict every accepted edge it crosses, exclude
//     the evicted edges for the rest of the sub-branch and rebuild forest
//     and queue from the survivors.
//
// Only step 3 is a branch point; steps 1 and 2 run in a loop inside the node.
// The lighter of the two completions wins, an incomplete branch counting as
// +∞ and ties going to reject.
//
// The rebuilt queue holds every candidate that is neither accepted nor
// excluded, so candidates discarded before the conflict get another chance
// once an eviction splits a component.
//
// State ownership (copy-on-branch):
//   - The reject branch inherits the node's state. The node never touches
//     it again.
//   - The force-include branch gets a freshly built tree, forest, excluded
//     set and queue, computed before reject runs.
//   - Queues are never written; the root queue is the sorted candidate slice.
//
// Counters live in the engine of one invocation and are copied into the
// Result when the search returns.
package planar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kinetree/kinetic"
)

// searchEngine holds all data of one exact search invocation.
type searchEngine struct {
	// Configuration / policy
	n        int
	useBound bool

	// all is the sorted candidate list; all[i].rank == i.
	all []Edge

	// Instrumentation
	counter kinetic.Counter
	visited int

	// Incumbent (upper bound on the optimum), +Inf until a tree completes.
	bestWeight float64
}

// branch is the recursion-local search state.
type branch struct {
	tree     []Edge  // accepted edges
	queue    []Edge  // remaining candidates, sorted
	forest   forest  // connectivity induced by tree
	excluded []bool  // by rank; evicted on this sub-branch
	floor    float64 // lower bound of every completion (bounded search only)
}

// completion is a finished spanning tree.
type completion struct {
	edges  []Edge
	weight float64
}

func newSearchEngine(n int, all []Edge, useBound bool) *searchEngine {
	return &searchEngine{
		n:          n,
		useBound:   useBound,
		all:        all,
		bestWeight: math.Inf(1),
	}
}

// rootBranch is the empty tree over the full candidate queue.
func (e *searchEngine) rootBranch() branch {
	b := branch{
		tree:     make([]Edge, 0, e.n-1),
		queue:    e.all,
		forest:   newForest(e.n),
		excluded: make([]bool, len(e.all)),
	}
	if e.useBound {
		b.floor = e.relaxedFloor(b.excluded)
	}

	return b
}

// search explores b and returns its lightest completion, or nil if every
// completion is infeasible (or, with bounding, provably not lighter than the
// incumbent).
func (e *searchEngine) search(b branch) (*completion, error) {
	for {
		if len(b.tree) == e.n-1 {
			return e.complete(b), nil
		}
		if len(b.queue) == 0 {
			return nil, nil
		}
		if e.useBound && e.prune(b) {
			return nil, nil
		}

		next := b.queue[0]
		b.queue = b.queue[1:]
		e.visited++

		// 1. Same component: no-op merge.
		if b.forest.connected(next.Src, next.Dst) {
			continue
		}

		// 2. Compatible merge: accept unconditionally.
		if !crossesAny(&e.counter, next, b.tree) {
			b.forest.union(next.Src, next.Dst)
			b.tree = append(b.tree, next)
			continue
		}

		// 3. Conflict: the only branch point.
		forced, err := e.forceInclude(b, next)
		if err != nil {
			return nil, err
		}

		rejected, err := e.search(b)
		if err != nil {
			return nil, err
		}
		included, err := e.search(forced)
		if err != nil {
			return nil, err
		}

		return lighter(rejected, included), nil
	}
}

// forceInclude builds the state in which next is accepted and every accepted
// edge crossing it is evicted.
//
// Steps:
//  1. Keep the accepted edges that do not cross next; append next.
//  2. Copy the excluded set and add the evicted edges.
//  3. Rebuild the forest from the survivors; a cycle is ErrInvariantViolation.
//  4. Rebuild the queue: all candidates minus tree minus excluded.
//
// Complexity: |tree| crossing tests plus O(E + n²) rebuild work.
func (e *searchEngine) forceInclude(b branch, next Edge) (branch, error) {
	excluded := make([]bool, len(b.excluded))
	copy(excluded, b.excluded)

	tree := make([]Edge, 0, e.n-1)
	for _, t := range b.tree {
		if e.counter.Crosses(next.Segment, t.Segment) {
			excluded[t.rank] = true
			continue
		}
		tree = append(tree, t)
	}
	tree = append(tree, next)

	f, err := forestOf(e.n, tree)
	if err != nil {
		return branch{}, fmt.Errorf("forcing %s: %w", next, err)
	}

	inTree := make([]bool, len(e.all))
	for _, t := range tree {
		inTree[t.rank] = true
	}
	queue := make([]Edge, 0, len(e.all)-len(tree))
	for _, c := range e.all {
		if inTree[c.rank] || excluded[c.rank] {
			continue
		}
		queue = append(queue, c)
	}

	forced := branch{tree: tree, queue: queue, forest: f, excluded: excluded}
	if e.useBound {
		forced.floor = e.relaxedFloor(excluded)
	}

	return forced, nil
}

// complete records a finished tree and tightens the incumbent.
func (e *searchEngine) complete(b branch) *completion {
	c := &completion{edges: cloneEdges(b.tree), weight: TotalWeight(b.tree)}
	if c.weight < e.bestWeight {
		e.bestWeight = c.weight
	}

	return c
}

// lighter picks the cheaper completion; nil counts as +∞ and ties keep a.
func lighter(a, b *completion) *completion {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.weight <= b.weight:
		return a
	default:
		return b
	}
}

// result converts the outcome of a search into a Result.
func (e *searchEngine) result(best *completion) (Result, error) {
	res := Result{Visited: e.visited, Comparisons: e.counter.Comparisons()}
	if best == nil {
		return res, ErrInfeasible
	}
	res.Edges = best.edges
	res.Weight = best.weight

	return res, nil
}

// runSearch validates ps, generates the candidates and runs one exact search.
func runSearch(ps PointSet, useBound bool, opts []Option) (Result, error) {
	if err := validatePointSet(ps); err != nil {
		return Result{}, err
	}
	n := ps.Len()
	if n == 1 {
		return Result{Edges: []Edge{}}, nil
	}

	e := newSearchEngine(n, candidates(ps, buildOptions(opts)), useBound)
	best, err := e.search(e.rootBranch())
	if err != nil {
		return Result{Visited: e.visited, Comparisons: e.counter.Comparisons()}, err
	}

	return e.result(best)
}
