package core

// Goal is the immutable set of communication predicates a solution plan
// must satisfy. It never changes once loaded from a problem file.
type Goal struct {
	CommunicatedSoilData  []bool   // indexed by WaypointID
	CommunicatedRockData  []bool   // indexed by WaypointID
	CommunicatedImageData [][]bool // indexed by [ObjectiveID][Mode]
}

// NewGoal allocates an empty goal sized for numWaypoints and numObjectives.
func NewGoal(numWaypoints, numObjectives int) *Goal {
	img := make([][]bool, numObjectives)
	for i := range img {
		img[i] = make([]bool, NumModes)
	}
	return &Goal{
		CommunicatedSoilData:  make([]bool, numWaypoints),
		CommunicatedRockData:  make([]bool, numWaypoints),
		CommunicatedImageData: img,
	}
}

// RequiresSoil reports whether the goal demands soil data from wp.
func (g *Goal) RequiresSoil(wp WaypointID) bool {
	return int(wp) < len(g.CommunicatedSoilData) && g.CommunicatedSoilData[wp]
}

// RequiresRock reports whether the goal demands rock data from wp.
func (g *Goal) RequiresRock(wp WaypointID) bool {
	return int(wp) < len(g.CommunicatedRockData) && g.CommunicatedRockData[wp]
}

// RequiresImage reports whether the goal demands an image of obj in mode m.
func (g *Goal) RequiresImage(obj ObjectiveID, m Mode) bool {
	return int(obj) < len(g.CommunicatedImageData) && g.CommunicatedImageData[obj][m]
}

// IsEmpty reports whether the goal has no open predicates at all — a
// malformed-but-not-invalid problem the parser warns about rather than
// rejects, mirroring original_source/parser.h's "no goal conditions found"
// warning.
func (g *Goal) IsEmpty() bool {
	for _, v := range g.CommunicatedSoilData {
		if v {
			return false
		}
	}
	for _, v := range g.CommunicatedRockData {
		if v {
			return false
		}
	}
	for _, row := range g.CommunicatedImageData {
		for _, v := range row {
			if v {
				return false
			}
		}
	}
	return true
}
