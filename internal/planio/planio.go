// Package planio writes and reads the plan file format, grounded on
// original_source/solution.h's write_solution_to_file and the action-line
// grammar original_source/rover_verify.c reads back.
package planio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/elektrokombinacija/rover-planner/internal/core"
	"github.com/elektrokombinacija/rover-planner/internal/parser"
)

// Step is one plan entry: the grounded action taken plus the heuristic and
// f-values of the search node it produced, kept for debugging/analysis
// exactly as original_source/solution.h does.
type Step struct {
	Action core.Action
	H, F   int
}

// Plan is a complete solution: its steps in execution order plus the
// summary statistics spec.md §6 requires at the top of the file.
type Plan struct {
	TotalRecharges int
	Steps          []Step
}

// Length reports the number of actions in the plan.
func (p Plan) Length() int { return len(p.Steps) }

// WriteFile writes plan to path in the plan-file text format.
func WriteFile(path string, plan Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("planio: creating %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, plan)
}

// Write renders plan to w in the exact format original_source/solution.h's
// write_solution_to_file produces: two summary lines, then one line per
// action.
func Write(w io.Writer, plan Plan) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Solution length: %d\n", plan.Length())
	fmt.Fprintf(bw, "Total recharges uses: %d\n", plan.TotalRecharges)
	for _, step := range plan.Steps {
		fmt.Fprintf(bw, "( %s %s ) h=%d, f=%d\n", step.Action.Kind, actionParams(step.Action), step.H, step.F)
	}
	return bw.Flush()
}

// actionParams renders the named parameters of a action for the plan-file
// line, in the exact order rover_verify.c's tokenizer expects to read them
// back.
func actionParams(a core.Action) string {
	switch a.Kind {
	case core.Navigate:
		return fmt.Sprintf("rover%d waypoint%d waypoint%d", a.Rover, a.From, a.To)
	case core.Recharge:
		return fmt.Sprintf("rover%d waypoint%d", a.Rover, a.Waypoint)
	case core.SampleSoil, core.SampleRock:
		return fmt.Sprintf("rover%d store%d waypoint%d", a.Rover, a.Store, a.Waypoint)
	case core.Drop:
		return fmt.Sprintf("rover%d store%d", a.Rover, a.Store)
	case core.Calibrate:
		return fmt.Sprintf("rover%d camera%d objective%d waypoint%d", a.Rover, a.Camera, a.Objective, a.Waypoint)
	case core.TakeImage:
		return fmt.Sprintf("rover%d waypoint%d objective%d camera%d %s", a.Rover, a.Waypoint, a.Objective, a.Camera, a.Mode)
	case core.CommunicateSoilData, core.CommunicateRockData:
		return fmt.Sprintf("rover%d waypoint%d waypoint%d waypoint%d general", a.Rover, a.SampleWaypoint, a.RoverWaypoint, a.LanderWaypoint)
	case core.CommunicateImageData:
		return fmt.Sprintf("rover%d objective%d %s waypoint%d waypoint%d general", a.Rover, a.Objective, a.Mode, a.RoverWaypoint, a.LanderWaypoint)
	default:
		return ""
	}
}

// ReadActionsFile reads path and extracts its action sequence, ignoring the
// summary header lines. Used by the standalone verifier, which only needs
// to replay actions, not their recorded h/f values.
func ReadActionsFile(path string) ([]core.Action, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("planio: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadActions(f)
}

// ReadActions parses each action line of a plan file produced by Write.
// Grounded line-for-line on original_source/rover_verify.c's per-schema
// token layout.
func ReadActions(r io.Reader) ([]core.Action, error) {
	var actions []core.Action
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		tokens := parser.Tokenize(trimSpace(line))
		if len(tokens) == 0 || tokens[0] != "(" {
			continue
		}
		a, err := parseActionLine(tokens, line, lineNum)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("planio: reading plan: %w", err)
	}
	return actions, nil
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func badAction(line string, lineNum int) error {
	return fmt.Errorf("planio: malformed action at line %d: %s", lineNum, line)
}

func mustObj(tokens []string, i int, line string, lineNum int) (int, error) {
	n, ok := parser.ObjectNumber(tokens[i])
	if !ok {
		return 0, badAction(line, lineNum)
	}
	return n, nil
}

func parseActionLine(tokens []string, line string, lineNum int) (core.Action, error) {
	if len(tokens) < 2 {
		return core.Action{}, badAction(line, lineNum)
	}
	switch tokens[1] {
	case "navigate":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp1, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp2, err := mustObj(tokens, 4, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		return core.Action{Kind: core.Navigate, Rover: core.RoverID(rover), From: core.WaypointID(wp1), To: core.WaypointID(wp2)}, nil

	case "recharge":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		return core.Action{Kind: core.Recharge, Rover: core.RoverID(rover), Waypoint: core.WaypointID(wp)}, nil

	case "sample_soil", "sample_rock":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		store, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp, err := mustObj(tokens, 4, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		kind := core.SampleSoil
		if tokens[1] == "sample_rock" {
			kind = core.SampleRock
		}
		return core.Action{Kind: kind, Rover: core.RoverID(rover), Store: core.StoreID(store), Waypoint: core.WaypointID(wp)}, nil

	case "drop":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		store, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		return core.Action{Kind: core.Drop, Rover: core.RoverID(rover), Store: core.StoreID(store)}, nil

	case "calibrate":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		camera, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		objective, err := mustObj(tokens, 4, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp, err := mustObj(tokens, 5, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		return core.Action{
			Kind: core.Calibrate, Rover: core.RoverID(rover), Camera: core.CameraID(camera),
			Objective: core.ObjectiveID(objective), Waypoint: core.WaypointID(wp),
		}, nil

	case "take_image":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		objective, err := mustObj(tokens, 4, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		camera, err := mustObj(tokens, 5, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		if len(tokens) < 7 {
			return core.Action{}, badAction(line, lineNum)
		}
		mode, ok := core.ModeFromToken(tokens[6])
		if !ok {
			return core.Action{}, badAction(line, lineNum)
		}
		return core.Action{
			Kind: core.TakeImage, Rover: core.RoverID(rover), Waypoint: core.WaypointID(wp),
			Objective: core.ObjectiveID(objective), Camera: core.CameraID(camera), Mode: mode,
		}, nil

	case "communicate_soil_data", "communicate_rock_data":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp1, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp2, err := mustObj(tokens, 4, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp3, err := mustObj(tokens, 5, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		kind := core.CommunicateSoilData
		if tokens[1] == "communicate_rock_data" {
			kind = core.CommunicateRockData
		}
		return core.Action{
			Kind: kind, Rover: core.RoverID(rover), SampleWaypoint: core.WaypointID(wp1),
			RoverWaypoint: core.WaypointID(wp2), LanderWaypoint: core.WaypointID(wp3),
		}, nil

	case "communicate_image_data":
		rover, err := mustObj(tokens, 2, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		objective, err := mustObj(tokens, 3, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		if len(tokens) < 5 {
			return core.Action{}, badAction(line, lineNum)
		}
		mode, ok := core.ModeFromToken(tokens[4])
		if !ok {
			return core.Action{}, badAction(line, lineNum)
		}
		wp1, err := mustObj(tokens, 5, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		wp2, err := mustObj(tokens, 6, line, lineNum)
		if err != nil {
			return core.Action{}, err
		}
		return core.Action{
			Kind: core.CommunicateImageData, Rover: core.RoverID(rover), Objective: core.ObjectiveID(objective),
			Mode: mode, RoverWaypoint: core.WaypointID(wp1), LanderWaypoint: core.WaypointID(wp2),
		}, nil

	default:
		return core.Action{}, fmt.Errorf("planio: unknown action %q at line %d", tokens[1], lineNum)
	}
}
