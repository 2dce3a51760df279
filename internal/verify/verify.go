// Package verify implements a standalone plan verifier: it replays a plan
// file's actions against a problem's initial state and reports whether the
// sequence is applicable end-to-end and reaches a goal state. Grounded on
// original_source/rover_verify.c's verify_solution.
package verify

import (
	"fmt"

	"github.com/elektrokombinacija/rover-planner/internal/core"
)

// Result summarizes a successful verification.
type Result struct {
	TotalActions   int
	TotalRecharges int
}

// Plan replays actions against p.Initial, applying core.Apply in order. It
// fails on the first inapplicable action, or if the final state does not
// satisfy p.Goal.
func Plan(p *core.Problem, actions []core.Action) (*Result, error) {
	state := p.Initial
	for i, a := range actions {
		next, _, ok := core.Apply(state, p.Goal, a)
		if !ok {
			return nil, fmt.Errorf("verify: action %d (%s) is not applicable", i+1, a.Kind)
		}
		state = next
	}

	recharges := state.Recharges

	if !state.IsSolution(p.Goal) {
		return nil, fmt.Errorf("verify: plan executed but final state does not satisfy the goal")
	}

	return &Result{TotalActions: len(actions), TotalRecharges: recharges}, nil
}
