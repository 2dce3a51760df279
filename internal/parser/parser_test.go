package parser

import (
	"strings"
	"testing"

	"github.com/elektrokombinacija/rover-planner/internal/core"
)

const sampleProblem = `
(define (problem test)
(:objects
 rover0 - rover
 waypoint0 waypoint1 - waypoint
 store0 - store
 camera0 - camera
 objective0 - objective
)
(:init
 (visible waypoint0 waypoint1)
 (visible waypoint1 waypoint0)
 (at_soil_sample waypoint0)
 (at_rock_sample waypoint0)
 (in_sun waypoint0)
 (at_lander general waypoint1)
 (channel_free general)
 (= (recharges) 0)
 (= (energy rover0) 20)
 (in rover0 waypoint0)
 (available rover0)
 (can_traverse rover0 waypoint0 waypoint1)
 (can_traverse rover0 waypoint1 waypoint0)
 (equipped_for_soil_analysis rover0)
 (equipped_for_rock_analysis rover0)
 (equipped_for_imaging rover0)
 (empty store0)
 (store_of store0 rover0)
 (calibration_target camera0 objective0)
 (on_board camera0 rover0)
 (supports camera0 colour)
 (visible_from objective0 waypoint0)
 (visible_from objective0 waypoint1)
)
(:goal
 (and
  (communicated_soil_data waypoint0)
  (communicated_image_data objective0 colour)
 )
)
)
`

func TestParseSampleProblem(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleProblem))
	if err != nil {
		t.Fatalf("expected sample problem to parse, got: %v", err)
	}

	if p.NumRovers != 1 || p.NumWaypoints != 2 || p.NumCameras != 1 || p.NumStores != 1 || p.NumObjectives != 1 {
		t.Fatalf("unexpected object counts: %+v", *p)
	}

	s := p.Initial
	if s.Rovers[0].Position != 0 {
		t.Errorf("expected rover0 at waypoint0, got %d", s.Rovers[0].Position)
	}
	if s.Rovers[0].Energy != 20 {
		t.Errorf("expected rover0 energy 20, got %d", s.Rovers[0].Energy)
	}
	if !s.Rovers[0].Available {
		t.Error("expected rover0 to be available")
	}
	if !s.Rovers[0].CanTraverse[0][1] || !s.Rovers[0].CanTraverse[1][0] {
		t.Error("expected rover0 to be able to traverse both directions")
	}
	if s.Lander.Position != 1 {
		t.Errorf("expected lander at waypoint1, got %d", s.Lander.Position)
	}
	if !s.Lander.ChannelFree {
		t.Error("expected channel_free to be set")
	}
	if !s.Waypoints[0].HasSoilSample || !s.Waypoints[0].HasRockSample {
		t.Error("expected waypoint0 to hold soil and rock samples")
	}
	if !s.Waypoints[0].InSun {
		t.Error("expected waypoint0 to be sunlit")
	}
	if s.Stores[0].RoverID != 0 || s.Stores[0].Full {
		t.Error("expected store0 to be owned by rover0 and empty")
	}
	if s.Cameras[0].RoverID != 0 || !s.Cameras[0].CalibrationTargets.Has(0) || !s.Cameras[0].ModesSupported.Has(int(core.ModeColour)) {
		t.Error("expected camera0 correctly configured")
	}
	if !s.Objectives[0].VisibleWaypoints.Has(0) || !s.Objectives[0].VisibleWaypoints.Has(1) {
		t.Error("expected objective0 visible from both waypoints")
	}

	if !p.Goal.RequiresSoil(0) {
		t.Error("expected goal to require soil data from waypoint0")
	}
	if !p.Goal.RequiresImage(0, core.ModeColour) {
		t.Error("expected goal to require a colour image of objective0")
	}
}

func TestParseRejectsUnknownInitPredicate(t *testing.T) {
	broken := strings.Replace(sampleProblem, "(channel_free general)", "(some_unknown_predicate general)", 1)
	if _, err := Parse(strings.NewReader(broken)); err == nil {
		t.Fatal("expected an unrecognized :init predicate to produce an error")
	}
}

func TestParseRejectsZeroObjectives(t *testing.T) {
	broken := strings.Replace(sampleProblem, "objective0 - objective", "", 1)
	broken = strings.Replace(broken, "(calibration_target camera0 objective0)", "", 1)
	broken = strings.Replace(broken, "(visible_from objective0 waypoint0)", "", 1)
	broken = strings.Replace(broken, "(visible_from objective0 waypoint1)", "", 1)
	broken = strings.Replace(broken, "(communicated_image_data objective0 colour)", "", 1)
	if _, err := Parse(strings.NewReader(broken)); err == nil {
		t.Fatal("expected zero objectives to be rejected")
	}
}

func TestObjectNumberExtractsTrailingDigits(t *testing.T) {
	cases := map[string]int{
		"waypoint12": 12,
		"rover0":     0,
		"camera7":    7,
	}
	for name, want := range cases {
		got, ok := ObjectNumber(name)
		if !ok {
			t.Errorf("expected %q to parse, got not-ok", name)
		}
		if got != want {
			t.Errorf("ObjectNumber(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestObjectNumberRejectsNameWithoutDigits(t *testing.T) {
	if _, ok := ObjectNumber("general"); ok {
		t.Error("expected a name with no digits to report not-ok")
	}
}

func TestTokenizeSplitsParensAsOwnTokens(t *testing.T) {
	got := Tokenize("( navigate rover0 waypoint0 waypoint1 )")
	want := []string{"(", "navigate", "rover0", "waypoint0", "waypoint1", ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
