package algo

import "github.com/elektrokombinacija/rover-planner/internal/core"

// Expand lists every grounded action candidate available from s, in the
// same per-rover schema order as original_source/planner.c's find_children:
// recharge, sample_soil, sample_rock, calibrate/take_image, the three
// communicate_* schemas, drop, then navigate. Candidates still pass through
// core.Apply in the search driver, which re-validates every precondition;
// Expand's own filters exist to avoid generating obviously invalid or
// unhelpful candidates (goal-irrelevant samples/images/communications),
// the pruning spec.md §4.6 requires of the expander.
func Expand(p *core.Problem, s *core.State) []core.Action {
	var actions []core.Action
	goal := p.Goal
	landerPos := s.Lander.Position

	for r := 0; r < p.NumRovers; r++ {
		rover := s.Rovers[r]
		if !rover.Available {
			continue
		}
		rid := core.RoverID(r)
		pos := rover.Position

		if s.Waypoints[pos].InSun && rover.Energy < 8 {
			actions = append(actions, core.Action{Kind: core.Recharge, Rover: rid, Waypoint: pos})
		}

		if rover.EquippedSoil && rover.Energy >= 3 &&
			goal.RequiresSoil(pos) && !s.Waypoints[pos].CommunicatedSoil &&
			s.Waypoints[pos].HasSoilSample {
			for st := 0; st < p.NumStores; st++ {
				if s.Stores[st].RoverID == rid && !s.Stores[st].Full {
					actions = append(actions, core.Action{Kind: core.SampleSoil, Rover: rid, Store: core.StoreID(st), Waypoint: pos})
				}
			}
		}

		if rover.EquippedRock && rover.Energy >= 5 &&
			goal.RequiresRock(pos) && !s.Waypoints[pos].CommunicatedRock &&
			s.Waypoints[pos].HasRockSample {
			for st := 0; st < p.NumStores; st++ {
				if s.Stores[st].RoverID == rid && !s.Stores[st].Full {
					actions = append(actions, core.Action{Kind: core.SampleRock, Rover: rid, Store: core.StoreID(st), Waypoint: pos})
				}
			}
		}

		if rover.EquippedImaging {
			for c := 0; c < p.NumCameras; c++ {
				if s.Cameras[c].RoverID != rid {
					continue
				}
				cid := core.CameraID(c)
				for obj := 0; obj < p.NumObjectives; obj++ {
					oid := core.ObjectiveID(obj)

					if rover.Energy >= 2 &&
						s.Objectives[obj].VisibleWaypoints.Has(int(pos)) &&
						s.Cameras[c].CalibrationTargets.Has(obj) {
						actions = append(actions, core.Action{Kind: core.Calibrate, Rover: rid, Camera: cid, Objective: oid, Waypoint: pos})
					}

					for mode := 0; mode < core.NumModes; mode++ {
						m := core.Mode(mode)
						if s.Cameras[c].Calibrated &&
							rover.Energy >= 1 &&
							s.Cameras[c].ModesSupported.Has(mode) &&
							s.Objectives[obj].VisibleWaypoints.Has(int(pos)) &&
							goal.RequiresImage(oid, m) &&
							!s.Objectives[obj].CommunicatedImage.Has(mode) {
							actions = append(actions, core.Action{
								Kind: core.TakeImage, Rover: rid, Waypoint: pos,
								Objective: oid, Camera: cid, Mode: m,
							})
						}
					}
				}
			}
		}

		if s.Lander.ChannelFree && s.Waypoints[pos].VisibleWaypoints.Has(int(landerPos)) {
			if rover.Energy >= 4 {
				for wp := 0; wp < p.NumWaypoints; wp++ {
					w := core.WaypointID(wp)
					if goal.RequiresSoil(w) && !s.Waypoints[wp].CommunicatedSoil && rover.HasSoilAnalysis.Has(wp) {
						actions = append(actions, core.Action{
							Kind: core.CommunicateSoilData, Rover: rid,
							SampleWaypoint: w, RoverWaypoint: pos, LanderWaypoint: landerPos,
						})
					}
				}
			}

			if rover.Energy >= 4 {
				for wp := 0; wp < p.NumWaypoints; wp++ {
					w := core.WaypointID(wp)
					if goal.RequiresRock(w) && !s.Waypoints[wp].CommunicatedRock && rover.HasRockAnalysis.Has(wp) {
						actions = append(actions, core.Action{
							Kind: core.CommunicateRockData, Rover: rid,
							SampleWaypoint: w, RoverWaypoint: pos, LanderWaypoint: landerPos,
						})
					}
				}
			}

			if rover.Energy >= 6 {
				for obj := 0; obj < p.NumObjectives; obj++ {
					oid := core.ObjectiveID(obj)
					for mode := 0; mode < core.NumModes; mode++ {
						m := core.Mode(mode)
						if goal.RequiresImage(oid, m) && !s.Objectives[obj].CommunicatedImage.Has(mode) && rover.HaveImage[obj][mode] {
							actions = append(actions, core.Action{
								Kind: core.CommunicateImageData, Rover: rid,
								Objective: oid, Mode: m, RoverWaypoint: pos, LanderWaypoint: landerPos,
							})
						}
					}
				}
			}
		}

		for st := 0; st < p.NumStores; st++ {
			if s.Stores[st].RoverID == rid && s.Stores[st].Full {
				actions = append(actions, core.Action{Kind: core.Drop, Rover: rid, Store: core.StoreID(st)})
			}
		}

		for wp2 := 0; wp2 < p.NumWaypoints; wp2++ {
			to := core.WaypointID(wp2)
			if pos != to && rover.Energy >= 8 &&
				s.Waypoints[pos].VisibleWaypoints.Has(wp2) &&
				rover.CanTraverse[pos][wp2] {
				actions = append(actions, core.Action{Kind: core.Navigate, Rover: rid, From: pos, To: to})
			}
		}
	}

	return actions
}
