package core

// ActionKind tags which of the ten grounded action schemas an Action
// represents. Modeled as a tagged variant per spec.md §9 ("Dynamic dispatch
// over action schemas"): the transition function is one switch over Kind,
// the plan writer another.
type ActionKind int

const (
	Navigate ActionKind = iota
	Recharge
	SampleSoil
	SampleRock
	Drop
	Calibrate
	TakeImage
	CommunicateSoilData
	CommunicateRockData
	CommunicateImageData
)

func (k ActionKind) String() string {
	switch k {
	case Navigate:
		return "navigate"
	case Recharge:
		return "recharge"
	case SampleSoil:
		return "sample_soil"
	case SampleRock:
		return "sample_rock"
	case Drop:
		return "drop"
	case Calibrate:
		return "calibrate"
	case TakeImage:
		return "take_image"
	case CommunicateSoilData:
		return "communicate_soil_data"
	case CommunicateRockData:
		return "communicate_rock_data"
	case CommunicateImageData:
		return "communicate_image_data"
	default:
		return "unknown_action"
	}
}

// Action is a single grounded action instance: a schema tag plus the
// integer parameters that schema needs. Only the fields relevant to Kind
// are meaningful; this mirrors the original planner's single Action struct
// with a fixed param array, but named instead of positional.
type Action struct {
	Kind ActionKind

	Rover RoverID

	// navigate
	From WaypointID
	To   WaypointID

	// recharge / sample_soil / sample_rock: rover's waypoint
	Waypoint WaypointID

	// sample_soil / sample_rock / drop
	Store StoreID

	// calibrate / take_image
	Camera    CameraID
	Objective ObjectiveID
	Mode      Mode

	// communicate_*
	SampleWaypoint WaypointID
	RoverWaypoint  WaypointID
	LanderWaypoint WaypointID
}

// Apply checks action a's preconditions against current and, if they hold,
// returns the resulting next state and the energy spent. ok is false if any
// precondition fails; in that case next and energySpent are zero-valued and
// the caller (the expander) must treat this as "skip this candidate", not
// as an error (spec.md §7 — action rejection is the normal control path).
//
// Apply never mutates current: it clones first and only ever writes to the
// clone, matching the "(state, params) -> state' | reject" contract of
// spec.md §4.1.
func Apply(current *State, goal *Goal, a Action) (next *State, energySpent int, ok bool) {
	next = current.Clone()

	switch a.Kind {
	case Navigate:
		r := next.Rovers[a.Rover]
		if !r.Available || r.Position != a.From || a.From == a.To || r.Energy < 8 {
			return nil, 0, false
		}
		if !current.Waypoints[a.From].VisibleWaypoints.Has(int(a.To)) {
			return nil, 0, false
		}
		if !r.CanTraverse[a.From][a.To] {
			return nil, 0, false
		}
		r.Position = a.To
		r.Energy -= 8
		return next, 8, true

	case Recharge:
		r := next.Rovers[a.Rover]
		if !current.Waypoints[a.Waypoint].InSun || r.Position != a.Waypoint {
			return nil, 0, false
		}
		if r.Energy >= 8 {
			return nil, 0, false
		}
		r.Energy += 20
		next.Recharges++
		return next, 0, true

	case SampleSoil:
		r := next.Rovers[a.Rover]
		wp := a.Waypoint
		if r.Position != wp || !r.EquippedSoil || r.Energy < 3 {
			return nil, 0, false
		}
		if !current.Waypoints[wp].HasSoilSample {
			return nil, 0, false
		}
		st := next.Stores[a.Store]
		if st.RoverID != a.Rover || st.Full {
			return nil, 0, false
		}
		if !goal.RequiresSoil(wp) || current.Waypoints[wp].CommunicatedSoil {
			return nil, 0, false
		}
		next.Stores[a.Store].Full = true
		r.Energy -= 3
		r.HasSoilAnalysis = r.HasSoilAnalysis.Set(int(wp))
		next.Waypoints[wp].HasSoilSample = false
		return next, 3, true

	case SampleRock:
		r := next.Rovers[a.Rover]
		wp := a.Waypoint
		if r.Position != wp || !r.EquippedRock || r.Energy < 5 {
			return nil, 0, false
		}
		if !current.Waypoints[wp].HasRockSample {
			return nil, 0, false
		}
		st := next.Stores[a.Store]
		if st.RoverID != a.Rover || st.Full {
			return nil, 0, false
		}
		if !goal.RequiresRock(wp) || current.Waypoints[wp].CommunicatedRock {
			return nil, 0, false
		}
		next.Stores[a.Store].Full = true
		r.Energy -= 5
		r.HasRockAnalysis = r.HasRockAnalysis.Set(int(wp))
		next.Waypoints[wp].HasRockSample = false
		return next, 5, true

	case Drop:
		st := next.Stores[a.Store]
		if st.RoverID != a.Rover || !st.Full {
			return nil, 0, false
		}
		next.Stores[a.Store].Full = false
		return next, 0, true

	case Calibrate:
		r := next.Rovers[a.Rover]
		cam := next.Cameras[a.Camera]
		if !r.EquippedImaging || cam.RoverID != a.Rover || r.Energy < 2 {
			return nil, 0, false
		}
		if !cam.CalibrationTargets.Has(int(a.Objective)) {
			return nil, 0, false
		}
		if r.Position != a.Waypoint {
			return nil, 0, false
		}
		if !current.Objectives[a.Objective].VisibleWaypoints.Has(int(a.Waypoint)) {
			return nil, 0, false
		}
		r.Energy -= 2
		next.Cameras[a.Camera].Calibrated = true
		return next, 2, true

	case TakeImage:
		r := next.Rovers[a.Rover]
		cam := next.Cameras[a.Camera]
		if !cam.Calibrated || cam.RoverID != a.Rover || !r.EquippedImaging || r.Energy < 1 {
			return nil, 0, false
		}
		if !cam.ModesSupported.Has(int(a.Mode)) {
			return nil, 0, false
		}
		if !current.Objectives[a.Objective].VisibleWaypoints.Has(int(a.Waypoint)) {
			return nil, 0, false
		}
		if r.Position != a.Waypoint {
			return nil, 0, false
		}
		if !goal.RequiresImage(a.Objective, a.Mode) {
			return nil, 0, false
		}
		if current.Objectives[a.Objective].CommunicatedImage.Has(int(a.Mode)) {
			return nil, 0, false
		}
		r.HaveImage[a.Objective][a.Mode] = true
		next.Cameras[a.Camera].Calibrated = false
		r.Energy -= 1
		return next, 1, true

	case CommunicateSoilData:
		r := next.Rovers[a.Rover]
		if r.Position != a.RoverWaypoint || current.Lander.Position != a.LanderWaypoint || r.Energy < 4 {
			return nil, 0, false
		}
		if !r.HasSoilAnalysis.Has(int(a.SampleWaypoint)) {
			return nil, 0, false
		}
		if !current.Waypoints[a.RoverWaypoint].VisibleWaypoints.Has(int(a.LanderWaypoint)) {
			return nil, 0, false
		}
		if !r.Available || !current.Lander.ChannelFree {
			return nil, 0, false
		}
		if !goal.RequiresSoil(a.SampleWaypoint) || current.Waypoints[a.SampleWaypoint].CommunicatedSoil {
			return nil, 0, false
		}
		next.Waypoints[a.SampleWaypoint].CommunicatedSoil = true
		r.Energy -= 4
		return next, 4, true

	case CommunicateRockData:
		r := next.Rovers[a.Rover]
		if r.Position != a.RoverWaypoint || current.Lander.Position != a.LanderWaypoint || r.Energy < 4 {
			return nil, 0, false
		}
		if !r.HasRockAnalysis.Has(int(a.SampleWaypoint)) {
			return nil, 0, false
		}
		if !current.Waypoints[a.RoverWaypoint].VisibleWaypoints.Has(int(a.LanderWaypoint)) {
			return nil, 0, false
		}
		if !r.Available || !current.Lander.ChannelFree {
			return nil, 0, false
		}
		if !goal.RequiresRock(a.SampleWaypoint) || current.Waypoints[a.SampleWaypoint].CommunicatedRock {
			return nil, 0, false
		}
		next.Waypoints[a.SampleWaypoint].CommunicatedRock = true
		r.Energy -= 4
		return next, 4, true

	case CommunicateImageData:
		r := next.Rovers[a.Rover]
		if r.Position != a.RoverWaypoint || current.Lander.Position != a.LanderWaypoint || r.Energy < 6 {
			return nil, 0, false
		}
		if !r.HaveImage[a.Objective][a.Mode] {
			return nil, 0, false
		}
		if !current.Waypoints[a.RoverWaypoint].VisibleWaypoints.Has(int(a.LanderWaypoint)) {
			return nil, 0, false
		}
		if !r.Available || !current.Lander.ChannelFree {
			return nil, 0, false
		}
		if !goal.RequiresImage(a.Objective, a.Mode) {
			return nil, 0, false
		}
		if current.Objectives[a.Objective].CommunicatedImage.Has(int(a.Mode)) {
			return nil, 0, false
		}
		next.Objectives[a.Objective].CommunicatedImage = next.Objectives[a.Objective].CommunicatedImage.Set(int(a.Mode))
		r.Energy -= 6
		return next, 6, true
	}

	return nil, 0, false
}
