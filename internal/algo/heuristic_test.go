package algo

import "testing"

func TestHeuristicZeroAtGoal(t *testing.T) {
	p := newTwoWaypointProblem()
	p.Initial.Waypoints[0].CommunicatedSoil = true
	o := NewOracle(p.Initial, p.NumWaypoints)

	if h := Heuristic(p, o, p.Initial); h != 0 {
		t.Errorf("expected zero heuristic at a goal state, got %d", h)
	}
}

func TestHeuristicPositiveWhenGoalOpen(t *testing.T) {
	p := newTwoWaypointProblem()
	o := NewOracle(p.Initial, p.NumWaypoints)

	h := Heuristic(p, o, p.Initial)
	if h <= 0 {
		t.Fatalf("expected a positive heuristic estimate with an open goal, got %d", h)
	}

	// sample_soil(3) + communicate_soil_data(4) is the exact optimal plan
	// cost for this fixture (waypoint 0 already sees the lander); the
	// relaxed estimate must never exceed it (admissibility).
	if h > 7 {
		t.Errorf("expected heuristic <= true optimal cost 7, got %d", h)
	}
}

func TestHeuristicAccountsForLowEnergyRecharge(t *testing.T) {
	p := newTwoWaypointProblem()
	p.Initial.Rovers[0].Energy = 0
	o := NewOracle(p.Initial, p.NumWaypoints)

	withLowEnergy := Heuristic(p, o, p.Initial)

	p.Initial.Rovers[0].Energy = 20
	withFullEnergy := Heuristic(p, o, p.Initial)

	if withLowEnergy < withFullEnergy {
		t.Errorf("expected low-energy heuristic (%d) to be at least as large as full-energy heuristic (%d)", withLowEnergy, withFullEnergy)
	}
}

func TestHeuristicUnreachableGoalIsInfinite(t *testing.T) {
	p := newTwoWaypointProblem()
	p.Initial.Rovers[0].EquippedSoil = false
	o := NewOracle(p.Initial, p.NumWaypoints)

	if h := Heuristic(p, o, p.Initial); h != infinite {
		t.Errorf("expected the infinite sentinel when no rover can ever satisfy the goal, got %d", h)
	}
}
