package core

import "fmt"

// Problem bundles the initial state and the immutable goal the search must
// reach. It is built once by the parser and never mutated afterward,
// mirroring the teacher's Instance type (internal/core/instance.go) but
// carrying a Goal instead of a task list, since the Rovers domain's "work"
// is expressed as state predicates rather than standalone Task objects.
type Problem struct {
	Initial *State
	Goal    *Goal

	NumRovers     int
	NumWaypoints  int
	NumCameras    int
	NumStores     int
	NumObjectives int
}

// Validate checks the structural invariants spec.md §3 requires of any
// state the transition function may reach, applied here to the initial
// state the parser produced. It mirrors original_source/parser.h's
// is_valid_state, but returns an error instead of printing and returning 0.
func (p *Problem) Validate() error {
	if p.NumRovers <= 0 || p.NumRovers > MaxRovers {
		return fmt.Errorf("invalid rover count: %d", p.NumRovers)
	}
	if p.NumWaypoints <= 0 || p.NumWaypoints > MaxWaypoints {
		return fmt.Errorf("invalid waypoint count: %d", p.NumWaypoints)
	}
	if p.NumCameras < 0 || p.NumCameras > MaxCameras {
		return fmt.Errorf("invalid camera count: %d", p.NumCameras)
	}
	if p.NumStores < 0 || p.NumStores > MaxStores {
		return fmt.Errorf("invalid store count: %d", p.NumStores)
	}
	if p.NumObjectives <= 0 || p.NumObjectives > MaxObjectives {
		return fmt.Errorf("invalid objective count: %d", p.NumObjectives)
	}

	s := p.Initial
	for i, r := range s.Rovers {
		if int(r.Position) < 0 || int(r.Position) >= p.NumWaypoints {
			return fmt.Errorf("rover%d has invalid position %d", i, r.Position)
		}
		if r.Energy < 0 {
			return fmt.Errorf("rover%d has negative energy %d", i, r.Energy)
		}
		for from, row := range r.CanTraverse {
			for to, can := range row {
				if can && !s.Waypoints[from].VisibleWaypoints.Has(to) {
					return fmt.Errorf("rover%d can traverse waypoint%d->waypoint%d but they are not mutually visible", i, from, to)
				}
			}
		}
	}

	if int(s.Lander.Position) < 0 || int(s.Lander.Position) >= p.NumWaypoints {
		return fmt.Errorf("lander has invalid position %d", s.Lander.Position)
	}

	for i, c := range s.Cameras {
		if int(c.RoverID) < 0 || int(c.RoverID) >= p.NumRovers {
			return fmt.Errorf("camera%d has invalid rover association %d", i, c.RoverID)
		}
		if !c.CalibrationTargets.Any() {
			return fmt.Errorf("camera%d has no calibration targets", i)
		}
		if !c.ModesSupported.Any() {
			return fmt.Errorf("camera%d supports no mode", i)
		}
	}

	for i, st := range s.Stores {
		if int(st.RoverID) < 0 || int(st.RoverID) >= p.NumRovers {
			return fmt.Errorf("store%d has invalid rover association %d", i, st.RoverID)
		}
	}

	for i, o := range s.Objectives {
		if !o.VisibleWaypoints.Any() {
			return fmt.Errorf("objective%d is not visible from any waypoint", i)
		}
	}

	return nil
}
