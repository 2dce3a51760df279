package algo

import "github.com/elektrokombinacija/rover-planner/internal/core"

// noParent marks the root node: it has no predecessor and no action that
// produced it.
const noParent = -1

// node is one vertex of the search tree. It never holds a pointer to its
// parent: Arena stores every node by value in one growable slice and nodes
// reference their parent by index, so the whole tree is freed in a single
// step when the arena goes out of scope at the end of a run (spec.md §9
// arena-of-nodes design).
type node struct {
	parent int
	state  *core.State
	depth  int
	g      int
	h      int
	f      int
	action core.Action
}

// arena is the backing store for every node created during one search run.
type arena struct {
	nodes []node
}

func newArena(capacityHint int) *arena {
	return &arena{nodes: make([]node, 0, capacityHint)}
}

// add appends n to the arena and returns its index.
func (a *arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) get(i int) *node {
	return &a.nodes[i]
}

// Step is one reconstructed plan entry: the action taken plus the h and f
// values of the search node it produced, carried through for the plan
// file's debugging annotations (original_source/solution.h records the
// same pair per step).
type Step struct {
	Action core.Action
	H, F   int
}

// reconstructPlan walks parent links from leafIdx back to the root and
// returns the steps taken along the way, in execution order.
func (a *arena) reconstructPlan(leafIdx int) []Step {
	n := a.get(leafIdx)
	steps := make([]Step, n.depth)
	i := n.depth
	for n.parent != noParent {
		i--
		steps[i] = Step{Action: n.action, H: n.h, F: n.f}
		n = a.get(n.parent)
	}
	return steps
}
