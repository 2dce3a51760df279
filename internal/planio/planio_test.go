package planio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elektrokombinacija/rover-planner/internal/core"
)

func TestWriteFormatsSummaryAndSteps(t *testing.T) {
	plan := Plan{
		TotalRecharges: 1,
		Steps: []Step{
			{Action: core.Action{Kind: core.Navigate, Rover: 0, From: 0, To: 1}, H: 7, F: 15},
			{Action: core.Action{Kind: core.Recharge, Rover: 0, Waypoint: 1}, H: 7, F: 7},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "Solution length: 2" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "Total recharges uses: 1" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
	if lines[2] != "( navigate rover0 waypoint0 waypoint1 ) h=7, f=15" {
		t.Errorf("unexpected navigate line: %q", lines[2])
	}
	if lines[3] != "( recharge rover0 waypoint1 ) h=7, f=7" {
		t.Errorf("unexpected recharge line: %q", lines[3])
	}
}

func TestWriteAppendsGeneralTokenToCommunicateActions(t *testing.T) {
	plan := Plan{
		Steps: []Step{
			{Action: core.Action{Kind: core.CommunicateSoilData, Rover: 0, SampleWaypoint: 0, RoverWaypoint: 0, LanderWaypoint: 0}},
			{Action: core.Action{Kind: core.CommunicateRockData, Rover: 0, SampleWaypoint: 0, RoverWaypoint: 0, LanderWaypoint: 0}},
			{Action: core.Action{Kind: core.CommunicateImageData, Rover: 0, Objective: 0, Mode: core.ModeColour, RoverWaypoint: 0, LanderWaypoint: 0}},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"( communicate_soil_data rover0 waypoint0 waypoint0 waypoint0 general ) h=0, f=0",
		"( communicate_rock_data rover0 waypoint0 waypoint0 waypoint0 general ) h=0, f=0",
		"( communicate_image_data rover0 objective0 colour waypoint0 waypoint0 general ) h=0, f=0",
	}
	for i, w := range want {
		if lines[i+2] != w {
			t.Errorf("line %d: got %q, want %q", i+2, lines[i+2], w)
		}
	}
}

func TestWriteReadRoundTripsEveryActionSchema(t *testing.T) {
	actions := []core.Action{
		{Kind: core.Navigate, Rover: 0, From: 0, To: 1},
		{Kind: core.Recharge, Rover: 0, Waypoint: 1},
		{Kind: core.SampleSoil, Rover: 0, Store: 0, Waypoint: 0},
		{Kind: core.SampleRock, Rover: 0, Store: 1, Waypoint: 0},
		{Kind: core.Drop, Rover: 0, Store: 0},
		{Kind: core.Calibrate, Rover: 0, Camera: 0, Objective: 0, Waypoint: 0},
		{Kind: core.TakeImage, Rover: 0, Waypoint: 0, Objective: 0, Camera: 0, Mode: core.ModeHighRes},
		{Kind: core.CommunicateSoilData, Rover: 0, SampleWaypoint: 0, RoverWaypoint: 1, LanderWaypoint: 1},
		{Kind: core.CommunicateRockData, Rover: 0, SampleWaypoint: 0, RoverWaypoint: 1, LanderWaypoint: 1},
		{Kind: core.CommunicateImageData, Rover: 0, Objective: 0, Mode: core.ModeLowRes, RoverWaypoint: 1, LanderWaypoint: 1},
	}

	plan := Plan{TotalRecharges: 0}
	for _, a := range actions {
		plan.Steps = append(plan.Steps, Step{Action: a})
	}

	var buf bytes.Buffer
	if err := Write(&buf, plan); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	got, err := ReadActions(&buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if len(got) != len(actions) {
		t.Fatalf("expected %d actions round-tripped, got %d", len(actions), len(got))
	}
	for i, want := range actions {
		if got[i] != want {
			t.Errorf("action %d: got %+v, want %+v", i, got[i], want)
		}
	}
}

func TestReadActionsSkipsSummaryLines(t *testing.T) {
	input := "Solution length: 1\nTotal recharges uses: 0\n( navigate rover0 waypoint0 waypoint1 ) h=0, f=8\n"
	actions, err := ReadActions(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Kind != core.Navigate {
		t.Errorf("expected navigate, got %v", actions[0].Kind)
	}
}

func TestReadActionsRejectsUnknownSchema(t *testing.T) {
	input := "( teleport rover0 waypoint0 waypoint1 ) h=0, f=0\n"
	if _, err := ReadActions(strings.NewReader(input)); err == nil {
		t.Fatal("expected an unknown action schema to produce an error")
	}
}
