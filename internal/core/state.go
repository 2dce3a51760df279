package core

// State is the entire world configuration at one point in the search.
// A search node owns its State exclusively; states are cheap to clone and
// are never aliased across two nodes (spec.md §3 Lifecycle).
type State struct {
	Rovers     []*Rover
	Waypoints  []Waypoint
	Cameras    []Camera
	Stores     []Store
	Objectives []Objective
	Lander     Lander
	Recharges  int
}

// Clone returns a value copy of s with independent backing storage for
// every mutable field, so that a transition applied to the clone can never
// observe or affect s.
func (s *State) Clone() *State {
	next := &State{
		Waypoints:  append([]Waypoint(nil), s.Waypoints...),
		Cameras:    append([]Camera(nil), s.Cameras...),
		Stores:     append([]Store(nil), s.Stores...),
		Objectives: append([]Objective(nil), s.Objectives...),
		Lander:     s.Lander,
		Recharges:  s.Recharges,
	}
	next.Rovers = make([]*Rover, len(s.Rovers))
	for i, r := range s.Rovers {
		next.Rovers[i] = r.Clone()
	}
	return next
}

// IsSolution reports whether s satisfies every predicate in goal.
func (s *State) IsSolution(goal *Goal) bool {
	for wp, required := range goal.CommunicatedSoilData {
		if required && !s.Waypoints[wp].CommunicatedSoil {
			return false
		}
	}
	for wp, required := range goal.CommunicatedRockData {
		if required && !s.Waypoints[wp].CommunicatedRock {
			return false
		}
	}
	for obj, modes := range goal.CommunicatedImageData {
		for m, required := range modes {
			if required && !s.Objectives[obj].CommunicatedImage.Has(m) {
				return false
			}
		}
	}
	return true
}
