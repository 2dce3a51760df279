// Package algo implements the search engine that sits on top of
// internal/core's state model: the shortest-path oracle, the admissible
// heuristic, the frontier, the closed set, the expander, and the A*/best-first
// search driver that ties them together.
package algo

import "github.com/elektrokombinacija/rover-planner/internal/core"

// infinite stands in for "unreachable" in the distance oracle, mirroring
// original_source/heuristic.h's INT_MAX sentinel. It is well below
// math.MaxInt so that a few additions of real costs on top of it can never
// wrap around.
const infinite = 100000

// Oracle holds, for every rover, the all-pairs shortest navigate-cost matrix
// computed once per search run. dist[rover][from][to] is the minimum energy
// a rover would spend navigating from one waypoint to another, ignoring
// every other rover and all resource contention — the building block every
// heuristic term is computed from.
type Oracle struct {
	dist [][][]int
}

// NewOracle runs Floyd-Warshall over each rover's traversal graph, seeded
// from the rover's CanTraverse matrix gated by mutual waypoint visibility,
// with a uniform per-edge cost of 8 (the navigate action's energy cost).
func NewOracle(s *core.State, numWaypoints int) *Oracle {
	o := &Oracle{dist: make([][][]int, len(s.Rovers))}
	for r, rover := range s.Rovers {
		d := make([][]int, numWaypoints)
		for i := range d {
			d[i] = make([]int, numWaypoints)
			for j := range d[i] {
				switch {
				case i == j:
					d[i][j] = 0
				case rover.CanTraverse[i][j] && s.Waypoints[i].VisibleWaypoints.Has(j):
					d[i][j] = 8
				default:
					d[i][j] = infinite
				}
			}
		}
		for k := 0; k < numWaypoints; k++ {
			for i := 0; i < numWaypoints; i++ {
				if d[i][k] == infinite {
					continue
				}
				for j := 0; j < numWaypoints; j++ {
					if d[k][j] == infinite {
						continue
					}
					if through := d[i][k] + d[k][j]; through < d[i][j] {
						d[i][j] = through
					}
				}
			}
		}
		o.dist[r] = d
	}
	return o
}

// Dist returns the precomputed navigate cost for rover r from one waypoint
// to another, or infinite if no traversal sequence connects them.
func (o *Oracle) Dist(r core.RoverID, from, to core.WaypointID) int {
	return o.dist[r][from][to]
}

// NearestCommPoint returns the waypoint closest to from (by rover r's
// shortest-path distance) from which the lander is visible, or -1 if none
// exists. If from itself sees the lander it is returned directly, matching
// original_source/heuristic.h's find_nearest_comm_point short-circuit.
func (o *Oracle) NearestCommPoint(s *core.State, r core.RoverID, from core.WaypointID, numWaypoints int) core.WaypointID {
	landerPos := s.Lander.Position
	if s.Waypoints[from].VisibleWaypoints.Has(int(landerPos)) {
		return from
	}
	best := core.WaypointID(-1)
	minDist := infinite
	for wp := 0; wp < numWaypoints; wp++ {
		if !s.Waypoints[wp].VisibleWaypoints.Has(int(landerPos)) {
			continue
		}
		if d := o.Dist(r, from, core.WaypointID(wp)); d < minDist {
			minDist = d
			best = core.WaypointID(wp)
		}
	}
	return best
}
