package algo

import "github.com/elektrokombinacija/rover-planner/internal/core"

// stateKey is a compact, comparable fingerprint of a State, sized to the
// domain's fixed maxima so it can be used directly as a Go map key with no
// hashing of dynamically-sized slices. Mirrors original_source/planner.c's
// StateKey/make_state_key.
type stateKey struct {
	roverPositions [core.MaxRovers]int16
	energyLevels   [core.MaxRovers]int16

	// soilAnalysis/rockAnalysis/haveImage carry each rover's full bitmap by
	// default (spec.md §9 open question: the original collapses these to a
	// single has-any bit per rover, which is lossy — see lossyKey below).
	soilAnalysis [core.MaxRovers]uint64
	rockAnalysis [core.MaxRovers]uint64
	haveImage    [core.MaxRovers]uint64 // bit (obj*NumModes+mode)

	hasSoilSample     uint64
	hasRockSample     uint64
	communicatedSoil  uint64
	communicatedRock  uint64
	camerasCalibrated uint64
	fullStores        uint64

	// communicatedImage carries each objective's full per-mode bitmap by
	// default; lossyKey collapses it to a single has-any bit per objective,
	// matching the original's compression of communicated_image.
	communicatedImage [core.MaxObjectives]uint64

	recharges int
}

// ClosedSet is the duplicate-detection hash set (spec.md §4.5): a state
// already seen is never re-expanded. lossy selects which fingerprint mode
// to use; it exists only for compatibility with the original planner's
// behavior and defaults to false (full fidelity) per the SPEC_FULL.md open
// question decision.
type ClosedSet struct {
	lossy bool
	seen  map[stateKey]struct{}
}

// NewClosedSet creates an empty closed set. lossy reproduces the original
// planner's lossy bitmap compression; callers should leave it false unless
// they specifically need bug-for-bug parity with that behavior.
func NewClosedSet(lossy bool) *ClosedSet {
	return &ClosedSet{lossy: lossy, seen: make(map[stateKey]struct{})}
}

func (c *ClosedSet) makeKey(p *core.Problem, s *core.State) stateKey {
	var k stateKey
	for r := 0; r < p.NumRovers; r++ {
		rover := s.Rovers[r]
		k.roverPositions[r] = int16(rover.Position)
		k.energyLevels[r] = int16(rover.Energy)

		if c.lossy {
			if rover.HasSoilAnalysis.Any() {
				k.soilAnalysis[r] = 1
			}
			if rover.HasRockAnalysis.Any() {
				k.rockAnalysis[r] = 1
			}
		} else {
			k.soilAnalysis[r] = uint64(rover.HasSoilAnalysis)
			k.rockAnalysis[r] = uint64(rover.HasRockAnalysis)
		}

		var imgBits uint64
		for obj := 0; obj < p.NumObjectives; obj++ {
			for mode := 0; mode < core.NumModes; mode++ {
				if rover.HaveImage[obj][mode] {
					imgBits |= 1 << uint(obj*core.NumModes+mode)
				}
			}
		}
		k.haveImage[r] = imgBits
	}

	for w := 0; w < p.NumWaypoints; w++ {
		wp := s.Waypoints[w]
		if wp.HasSoilSample {
			k.hasSoilSample |= 1 << uint(w)
		}
		if wp.HasRockSample {
			k.hasRockSample |= 1 << uint(w)
		}
		if wp.CommunicatedSoil {
			k.communicatedSoil |= 1 << uint(w)
		}
		if wp.CommunicatedRock {
			k.communicatedRock |= 1 << uint(w)
		}
	}

	for c2 := range s.Cameras {
		if s.Cameras[c2].Calibrated {
			k.camerasCalibrated |= 1 << uint(c2)
		}
	}

	for st := range s.Stores {
		if s.Stores[st].Full {
			k.fullStores |= 1 << uint(st)
		}
	}

	for obj := 0; obj < p.NumObjectives; obj++ {
		bits := uint64(s.Objectives[obj].CommunicatedImage)
		if c.lossy {
			if bits != 0 {
				k.communicatedImage[obj] = 1
			}
		} else {
			k.communicatedImage[obj] = bits
		}
	}

	k.recharges = s.Recharges
	return k
}

// CheckAndAdd reports whether s is new (not previously seen), recording it
// as seen either way — so a caller only ever gets a single true for any
// given state across the lifetime of the set.
func (c *ClosedSet) CheckAndAdd(p *core.Problem, s *core.State) bool {
	k := c.makeKey(p, s)
	if _, exists := c.seen[k]; exists {
		return false
	}
	c.seen[k] = struct{}{}
	return true
}
