package verify

import (
	"testing"

	"github.com/elektrokombinacija/rover-planner/internal/core"
)

// newFixtureProblem mirrors internal/algo's two-waypoint fixture: one rover
// equipped for soil analysis, waypoint 0 holding a soil sample, waypoint 1
// hosting the lander.
func newFixtureProblem() *core.Problem {
	rover := core.NewRover(2, 1)
	rover.Position = 0
	rover.Energy = 20
	rover.Available = true
	rover.EquippedSoil = true
	rover.CanTraverse[0][1] = true
	rover.CanTraverse[1][0] = true

	waypoints := []core.Waypoint{
		{HasSoilSample: true, InSun: true, VisibleWaypoints: core.Bitset(0).Set(1)},
		{VisibleWaypoints: core.Bitset(0).Set(0).Set(1)},
	}
	store := core.Store{RoverID: 0}
	objective := core.Objective{VisibleWaypoints: core.Bitset(0).Set(0).Set(1)}

	state := &core.State{
		Rovers:     []*core.Rover{rover},
		Waypoints:  waypoints,
		Stores:     []core.Store{store},
		Objectives: []core.Objective{objective},
		Lander:     core.Lander{Position: 1, ChannelFree: true},
	}

	goal := core.NewGoal(2, 1)
	goal.CommunicatedSoilData[0] = true

	return &core.Problem{
		Initial:       state,
		Goal:          goal,
		NumRovers:     1,
		NumWaypoints:  2,
		NumStores:     1,
		NumObjectives: 1,
	}
}

func TestPlanAcceptsValidSequence(t *testing.T) {
	p := newFixtureProblem()
	actions := []core.Action{
		{Kind: core.SampleSoil, Rover: 0, Store: 0, Waypoint: 0},
		{Kind: core.CommunicateSoilData, Rover: 0, SampleWaypoint: 0, RoverWaypoint: 0, LanderWaypoint: 1},
	}

	result, err := Plan(p, actions)
	if err != nil {
		t.Fatalf("expected the sequence to verify, got: %v", err)
	}
	if result.TotalActions != 2 {
		t.Errorf("expected 2 total actions, got %d", result.TotalActions)
	}
	if result.TotalRecharges != 0 {
		t.Errorf("expected 0 recharges, got %d", result.TotalRecharges)
	}
}

func TestPlanRejectsInapplicableAction(t *testing.T) {
	p := newFixtureProblem()
	actions := []core.Action{
		// communicate before ever sampling: no analysis held yet.
		{Kind: core.CommunicateSoilData, Rover: 0, SampleWaypoint: 0, RoverWaypoint: 0, LanderWaypoint: 1},
	}

	if _, err := Plan(p, actions); err == nil {
		t.Fatal("expected an inapplicable action to be rejected")
	}
}

func TestPlanRejectsActionBelowEnergyCost(t *testing.T) {
	p := newFixtureProblem()
	p.Initial.Rovers[0].Energy = 2
	actions := []core.Action{
		{Kind: core.SampleSoil, Rover: 0, Store: 0, Waypoint: 0},
	}

	if _, err := Plan(p, actions); err == nil {
		t.Fatal("expected sample_soil to be rejected when the rover holds less energy than the action costs")
	}
}

func TestPlanRejectsSequenceThatNeverReachesGoal(t *testing.T) {
	p := newFixtureProblem()
	actions := []core.Action{
		{Kind: core.SampleSoil, Rover: 0, Store: 0, Waypoint: 0},
	}

	if _, err := Plan(p, actions); err == nil {
		t.Fatal("expected a plan that stops short of the goal to be rejected")
	}
}
