package algo

import (
	"context"
	"errors"
	"time"

	"github.com/elektrokombinacija/rover-planner/internal/core"
)

// Method selects between A* (g+h ordering) and best-first (h-only
// ordering), mirroring original_source/planner.c's `best`/`astar` constants.
type Method int

const (
	AStar Method = iota
	BestFirst
)

func (m Method) String() string {
	if m == BestFirst {
		return "best"
	}
	return "astar"
}

// MethodFromToken maps a command-line method token to a Method.
func MethodFromToken(token string) (Method, bool) {
	switch token {
	case "astar":
		return AStar, true
	case "best":
		return BestFirst, true
	default:
		return 0, false
	}
}

// ErrNoSolution is returned when the frontier empties without reaching a
// goal state.
var ErrNoSolution = errors.New("algo: no solution found")

// ErrTimeout is returned when the search budget elapses before a solution
// or exhaustion is reached.
var ErrTimeout = errors.New("algo: search timed out")

// Config tunes one search run.
type Config struct {
	Method          Method
	Timeout         time.Duration
	InitialCapacity int  // initial frontier/arena capacity hint
	LossyClosedSet  bool // reproduce the original planner's lossy state key
}

// DefaultConfig mirrors original_source/planner.c's literal constants:
// 600 second timeout, 1000-entry initial heap capacity.
func DefaultConfig() Config {
	return Config{
		Method:          AStar,
		Timeout:         600 * time.Second,
		InitialCapacity: 1000,
	}
}

// Result is a solved plan plus the statistics spec.md §6's stats sidecar
// reports.
type Result struct {
	Steps          []Step
	Depth          int
	TotalEnergy    int
	TotalRecharges int
	NodesInserted  int
	NodesExtracted int
}

// timeoutPollInterval matches original_source/planner.c's
// `step_count % 1000 == 0` timeout-polling cadence: checking the clock on
// every expansion would needlessly serialize the hot loop.
const timeoutPollInterval = 1000

// Solve runs best-first or A* search (per cfg.Method) from p.Initial to a
// state satisfying p.Goal, using oracle-derived heuristic estimates to
// order the frontier. It returns ErrNoSolution if no rover can contribute to
// any open goal from p.Initial or if the frontier empties first, or
// ErrTimeout if ctx is cancelled (or cfg.Timeout elapses) before either
// happens.
func Solve(ctx context.Context, p *core.Problem, cfg Config) (*Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	oracle := NewOracle(p.Initial, p.NumWaypoints)
	closed := NewClosedSet(cfg.LossyClosedSet)

	// Equipment, remaining samples and the oracle's distances only ever
	// narrow what a rover can achieve, so an unsolved root with no viable
	// (goal, rover) pair has no solvable descendant either.
	if !p.Initial.IsSolution(p.Goal) && len(collectGoalCosts(p, oracle, p.Initial)) == 0 {
		return nil, ErrNoSolution
	}

	capacityHint := cfg.InitialCapacity
	if capacityHint <= 0 {
		capacityHint = 1000
	}
	tree := newArena(capacityHint)
	open := newFrontier(capacityHint)

	rootIdx := tree.add(node{
		parent: noParent,
		state:  p.Initial,
		depth:  0,
		g:      0,
		h:      Heuristic(p, oracle, p.Initial),
	})
	tree.get(rootIdx).f = frontierF(cfg.Method, tree.get(rootIdx))
	open.push(tree.get(rootIdx).f, rootIdx)

	inserted := 1
	extracted := 0
	steps := 0

	for !open.empty() {
		idx := open.popMin()
		extracted++
		current := tree.get(idx)

		if current.state.IsSolution(p.Goal) {
			return &Result{
				Steps:          tree.reconstructPlan(idx),
				Depth:          current.depth,
				TotalEnergy:    current.g,
				TotalRecharges: current.state.Recharges,
				NodesInserted:  inserted,
				NodesExtracted: extracted,
			}, nil
		}

		for _, a := range Expand(p, current.state) {
			steps++
			if steps%timeoutPollInterval == 0 {
				select {
				case <-ctx.Done():
					return nil, ErrTimeout
				default:
				}
			}

			next, energy, ok := core.Apply(current.state, p.Goal, a)
			if !ok {
				continue
			}
			if !closed.CheckAndAdd(p, next) {
				continue
			}

			child := node{
				parent: idx,
				state:  next,
				depth:  current.depth + 1,
				g:      current.g + energy,
				h:      Heuristic(p, oracle, next),
				action: a,
			}
			childIdx := tree.add(child)
			tree.get(childIdx).f = frontierF(cfg.Method, tree.get(childIdx))
			open.push(tree.get(childIdx).f, childIdx)
			inserted++
		}
	}

	return nil, ErrNoSolution
}

func frontierF(m Method, n *node) int {
	if m == BestFirst {
		return n.h
	}
	return n.g + n.h
}
