package core

// Waypoint is a location a rover can occupy.
type Waypoint struct {
	HasSoilSample    bool
	HasRockSample    bool
	CommunicatedSoil bool
	CommunicatedRock bool
	InSun            bool
	VisibleWaypoints Bitset // bit j set iff waypoint j is visible from here
}

// Clone returns a copy of the waypoint. Waypoint has no reference fields,
// so a value copy already satisfies the "never alias across nodes" rule;
// the method exists for symmetry with the other entity types and so callers
// never need to know which entities happen to be reference-free today.
func (w Waypoint) Clone() Waypoint {
	return w
}
