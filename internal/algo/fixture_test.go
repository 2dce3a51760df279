package algo

import "github.com/elektrokombinacija/rover-planner/internal/core"

// newTwoWaypointProblem builds a minimal instance shared by this package's
// tests: two waypoints, one rover equipped for every discipline, one store,
// one camera, one objective. Waypoint 0 is in sun; waypoint 1 holds the
// lander and sees waypoint 0 both ways.
func newTwoWaypointProblem() *core.Problem {
	rover := core.NewRover(2, 1)
	rover.Position = 0
	rover.Energy = 20
	rover.Available = true
	rover.EquippedSoil = true
	rover.EquippedRock = true
	rover.EquippedImaging = true
	rover.CanTraverse[0][1] = true
	rover.CanTraverse[1][0] = true

	waypoints := []core.Waypoint{
		{HasSoilSample: true, HasRockSample: true, InSun: true, VisibleWaypoints: core.Bitset(0).Set(1)},
		{VisibleWaypoints: core.Bitset(0).Set(0).Set(1)},
	}

	camera := core.Camera{RoverID: 0, CalibrationTargets: core.Bitset(0).Set(0), ModesSupported: core.Bitset(0).Set(int(core.ModeColour))}
	store := core.Store{RoverID: 0}
	objective := core.Objective{VisibleWaypoints: core.Bitset(0).Set(0).Set(1)}

	state := &core.State{
		Rovers:     []*core.Rover{rover},
		Waypoints:  waypoints,
		Cameras:    []core.Camera{camera},
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
		NumCameras:    1,
		NumStores:     1,
		NumObjectives: 1,
	}
}
