package algo

import "github.com/elektrokombinacija/rover-planner/internal/core"

// goalCost is one rover's relaxed cost to close a single open goal
// predicate, ignoring contention with every other rover and every other
// goal. Mirrors original_source/heuristic.h's GoalCost.
type goalCost struct {
	cost    int
	roverID core.RoverID
}

// collectGoalCosts computes, for every unsatisfied goal predicate and every
// rover capable of satisfying it, the relaxed energy cost of doing so. This
// is the per-goal building block the H4 optimal-assignment heuristic sums
// over; it never accounts for rovers being shared across goals.
func collectGoalCosts(p *core.Problem, o *Oracle, s *core.State) []goalCost {
	goal := p.Goal
	var costs []goalCost

	for wp := 0; wp < p.NumWaypoints; wp++ {
		w := core.WaypointID(wp)
		if !goal.RequiresSoil(w) || s.Waypoints[wp].CommunicatedSoil {
			continue
		}
		for r := 0; r < p.NumRovers; r++ {
			rid := core.RoverID(r)
			rover := s.Rovers[r]
			cost := infinite
			if rover.HasSoilAnalysis.Has(wp) {
				if cp := o.NearestCommPoint(s, rid, rover.Position, p.NumWaypoints); cp >= 0 {
					cost = o.Dist(rid, rover.Position, cp) + 4
				}
			} else if rover.EquippedSoil && s.Waypoints[wp].HasSoilSample {
				if travel := o.Dist(rid, rover.Position, w); travel != infinite {
					if cp := o.NearestCommPoint(s, rid, w, p.NumWaypoints); cp >= 0 {
						cost = travel + 3 + o.Dist(rid, w, cp) + 4
					}
				}
			}
			if cost != infinite {
				costs = append(costs, goalCost{cost: cost, roverID: rid})
			}
		}
	}

	for wp := 0; wp < p.NumWaypoints; wp++ {
		w := core.WaypointID(wp)
		if !goal.RequiresRock(w) || s.Waypoints[wp].CommunicatedRock {
			continue
		}
		for r := 0; r < p.NumRovers; r++ {
			rid := core.RoverID(r)
			rover := s.Rovers[r]
			cost := infinite
			if rover.HasRockAnalysis.Has(wp) {
				if cp := o.NearestCommPoint(s, rid, rover.Position, p.NumWaypoints); cp >= 0 {
					cost = o.Dist(rid, rover.Position, cp) + 4
				}
			} else if rover.EquippedRock && s.Waypoints[wp].HasRockSample {
				if travel := o.Dist(rid, rover.Position, w); travel != infinite {
					if cp := o.NearestCommPoint(s, rid, w, p.NumWaypoints); cp >= 0 {
						cost = travel + 5 + o.Dist(rid, w, cp) + 4
					}
				}
			}
			if cost != infinite {
				costs = append(costs, goalCost{cost: cost, roverID: rid})
			}
		}
	}

	for obj := 0; obj < p.NumObjectives; obj++ {
		o2 := core.ObjectiveID(obj)
		for mode := 0; mode < core.NumModes; mode++ {
			m := core.Mode(mode)
			if !goal.RequiresImage(o2, m) || s.Objectives[obj].CommunicatedImage.Has(mode) {
				continue
			}
			for r := 0; r < p.NumRovers; r++ {
				rid := core.RoverID(r)
				rover := s.Rovers[r]
				cost := infinite
				if rover.HaveImage[obj][mode] {
					if cp := o.NearestCommPoint(s, rid, rover.Position, p.NumWaypoints); cp >= 0 {
						cost = o.Dist(rid, rover.Position, cp) + 6
					}
				} else if rover.EquippedImaging {
					hasCamera := false
					for c := range s.Cameras {
						if s.Cameras[c].RoverID == rid && s.Cameras[c].ModesSupported.Has(mode) {
							hasCamera = true
							break
						}
					}
					if !hasCamera {
						continue
					}
					best := infinite
					for shootWP := 0; shootWP < p.NumWaypoints; shootWP++ {
						if !s.Objectives[obj].VisibleWaypoints.Has(shootWP) {
							continue
						}
						travel := o.Dist(rid, rover.Position, core.WaypointID(shootWP))
						if travel == infinite {
							continue
						}
						cp := o.NearestCommPoint(s, rid, core.WaypointID(shootWP), p.NumWaypoints)
						if cp < 0 {
							continue
						}
						total := travel + 2 + 1 + o.Dist(rid, core.WaypointID(shootWP), cp) + 6
						if total < best {
							best = total
						}
					}
					if best < cost {
						cost = best
					}
				}
				if cost != infinite {
					costs = append(costs, goalCost{cost: cost, roverID: rid})
				}
			}
		}
	}

	return costs
}

// energyCostForAssignment is an admissible lower bound on the extra energy
// a greedy goal assignment will require for recharging: for any rover whose
// assigned task costs more than its current energy, the distance to the
// nearest sunlit waypoint, never the full recharge-and-return cycle.
func energyCostForAssignment(p *core.Problem, o *Oracle, s *core.State, assignedCost []int) int {
	total := 0
	for r := 0; r < p.NumRovers; r++ {
		work := assignedCost[r]
		if work == 0 {
			continue
		}
		rover := s.Rovers[r]
		if work <= rover.Energy {
			continue
		}
		minRecharge := infinite
		for wp := 0; wp < p.NumWaypoints; wp++ {
			if !s.Waypoints[wp].InSun {
				continue
			}
			if d := o.Dist(core.RoverID(r), rover.Position, core.WaypointID(wp)); d < minRecharge {
				minRecharge = d
			}
		}
		if minRecharge == infinite {
			return infinite
		}
		total += minRecharge
	}
	return total
}

// Heuristic is the H4 optimal-assignment estimate: the relaxed per-goal
// costs are sorted descending and greedily assigned one-per-rover (most
// expensive goal first), their sum added to an admissible recharge
// surcharge. Returns 0 if s already satisfies goal, and infinite if no rover
// can contribute to any open goal.
func Heuristic(p *core.Problem, o *Oracle, s *core.State) int {
	if s.IsSolution(p.Goal) {
		return 0
	}

	costs := collectGoalCosts(p, o, s)
	if len(costs) == 0 {
		return infinite
	}

	sortGoalCostsDescending(costs)

	roverUsed := make([]bool, p.NumRovers)
	assignedCost := make([]int, p.NumRovers)
	hTasks := 0
	for _, gc := range costs {
		if !roverUsed[gc.roverID] {
			hTasks += gc.cost
			assignedCost[gc.roverID] = gc.cost
			roverUsed[gc.roverID] = true
		}
	}

	hEnergy := energyCostForAssignment(p, o, s, assignedCost)
	if hEnergy >= infinite {
		return infinite
	}

	final := hTasks + hEnergy
	if final < 0 {
		return 0
	}
	if final > infinite {
		return infinite
	}
	return final
}

// sortGoalCostsDescending orders costs from most to least expensive, so the
// greedy assignment below considers the hardest goals first — mirroring
// original_source/heuristic.h's compareGoalCosts/qsort call. A plain
// insertion sort is enough: goal counts are bounded by domain maxima.
func sortGoalCostsDescending(costs []goalCost) {
	for i := 1; i < len(costs); i++ {
		for j := i; j > 0 && costs[j-1].cost < costs[j].cost; j-- {
			costs[j-1], costs[j] = costs[j], costs[j-1]
		}
	}
}
