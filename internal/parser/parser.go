// Package parser reads the textual Rovers problem format (an :objects /
// :init / :goal PDDL-style problem instance) into an internal/core.Problem.
// Grounded on original_source/parser.h's tokenizer and section state
// machine, adapted to return errors instead of calling exit() on malformed
// input.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/rover-planner/internal/core"
)

// ParseFile opens path and parses it as a Rovers problem instance.
func ParseFile(path string) (*core.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a Rovers problem instance from r.
func Parse(r io.Reader) (*core.Problem, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	counts, err := countObjects(lines)
	if err != nil {
		return nil, err
	}
	if counts.rovers <= 0 || counts.rovers > core.MaxRovers {
		return nil, fmt.Errorf("parser: invalid rover count: %d", counts.rovers)
	}
	if counts.waypoints <= 0 || counts.waypoints > core.MaxWaypoints {
		return nil, fmt.Errorf("parser: invalid waypoint count: %d", counts.waypoints)
	}
	if counts.objectives <= 0 || counts.objectives > core.MaxObjectives {
		return nil, fmt.Errorf("parser: invalid objective count: %d", counts.objectives)
	}

	p := &core.Problem{
		NumRovers:     counts.rovers,
		NumWaypoints:  counts.waypoints,
		NumCameras:    counts.cameras,
		NumStores:     counts.stores,
		NumObjectives: counts.objectives,
	}

	state := &core.State{
		Waypoints:  make([]core.Waypoint, counts.waypoints),
		Cameras:    make([]core.Camera, counts.cameras),
		Stores:     make([]core.Store, counts.stores),
		Objectives: make([]core.Objective, counts.objectives),
	}
	state.Rovers = make([]*core.Rover, counts.rovers)
	for i := range state.Rovers {
		state.Rovers[i] = core.NewRover(counts.waypoints, counts.objectives)
	}
	p.Initial = state
	p.Goal = core.NewGoal(counts.waypoints, counts.objectives)

	if err := applyInitAndGoal(lines, p); err != nil {
		return nil, err
	}

	if p.Goal.IsEmpty() {
		fmt.Fprintln(os.Stderr, "parser: warning: no goal conditions found")
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return p, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: reading input: %w", err)
	}
	return lines, nil
}

// section tracks which block of the problem file the current line belongs
// to, mirroring original_source/parser.h's in_objects/in_init/in_goal
// flags.
type section int

const (
	sectionNone section = iota
	sectionObjects
	sectionInit
	sectionGoal
)

func detectSection(line string) (section, bool) {
	switch {
	case strings.Contains(line, ":objects"):
		return sectionObjects, true
	case strings.Contains(line, ":init"):
		return sectionInit, true
	case strings.Contains(line, ":goal"):
		return sectionGoal, true
	default:
		return sectionNone, false
	}
}

type objectCounts struct {
	rovers, waypoints, cameras, stores, objectives int
}

// countObjects scans the :objects section and tallies how many objects of
// each declared type exist, since internal/core's slices are sized to the
// exact instance rather than to the original's fixed MAX_* ceilings.
func countObjects(lines []string) (objectCounts, error) {
	var counts objectCounts
	cur := sectionNone
	for _, line := range lines {
		if sec, ok := detectSection(line); ok {
			cur = sec
			continue
		}
		if cur != sectionObjects {
			continue
		}
		tokens := Tokenize(line)
		for i, tok := range tokens {
			if tok != "-" || i == 0 || i+1 >= len(tokens) {
				continue
			}
			typ := tokens[i+1]
			n := i // number of name tokens preceding "-"
			switch typ {
			case "rover":
				counts.rovers += n
			case "waypoint":
				counts.waypoints += n
			case "camera":
				counts.cameras += n
			case "store":
				counts.stores += n
			case "objective":
				counts.objectives += n
			}
		}
	}
	return counts, nil
}

// applyInitAndGoal walks the file a second time, now that the instance is
// sized, filling in the initial state and goal predicates.
func applyInitAndGoal(lines []string, p *core.Problem) error {
	s := p.Initial
	cur := sectionNone
	for _, line := range lines {
		if sec, ok := detectSection(line); ok {
			cur = sec
			continue
		}

		tokens := Tokenize(line)
		if len(tokens) == 0 || tokens[0] != "(" {
			continue
		}

		switch cur {
		case sectionInit:
			if err := applyInit(s, tokens, line); err != nil {
				return err
			}
		case sectionGoal:
			applyGoal(p.Goal, tokens)
		}
	}
	return nil
}

func badLine(line string) error {
	return fmt.Errorf("parser: malformed line %q", line)
}

func applyInit(s *core.State, tokens []string, line string) error {
	if len(tokens) < 2 {
		return badLine(line)
	}
	switch tokens[1] {
	case "visible":
		wp1, ok1 := ObjectNumber(tokens[2])
		wp2, ok2 := ObjectNumber(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Waypoints[wp1].VisibleWaypoints = s.Waypoints[wp1].VisibleWaypoints.Set(wp2)

	case "at_soil_sample":
		wp, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Waypoints[wp].HasSoilSample = true

	case "at_rock_sample":
		wp, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Waypoints[wp].HasRockSample = true

	case "in_sun":
		wp, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Waypoints[wp].InSun = true

	case "at_lander":
		wp, ok := ObjectNumber(tokens[3])
		if !ok {
			return badLine(line)
		}
		s.Lander.Position = core.WaypointID(wp)

	case "channel_free":
		s.Lander.ChannelFree = true

	case "=":
		if len(tokens) < 3 {
			return badLine(line)
		}
		switch tokens[2] {
		case "(recharges":
			n, err := strconv.Atoi(tokens[4])
			if err != nil {
				return badLine(line)
			}
			s.Recharges = n
		case "(energy":
			rv, ok := ObjectNumber(tokens[3])
			if !ok {
				return badLine(line)
			}
			n, err := strconv.Atoi(tokens[5])
			if err != nil {
				return badLine(line)
			}
			s.Rovers[rv].Energy = n
		default:
			return badLine(line)
		}

	case "in":
		rv, ok1 := ObjectNumber(tokens[2])
		wp, ok2 := ObjectNumber(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Rovers[rv].Position = core.WaypointID(wp)

	case "available":
		rv, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Rovers[rv].Available = true

	case "can_traverse":
		rv, ok1 := ObjectNumber(tokens[2])
		wp1, ok2 := ObjectNumber(tokens[3])
		wp2, ok3 := ObjectNumber(tokens[4])
		if !ok1 || !ok2 || !ok3 {
			return badLine(line)
		}
		s.Rovers[rv].CanTraverse[wp1][wp2] = true

	case "equipped_for_soil_analysis":
		rv, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Rovers[rv].EquippedSoil = true

	case "equipped_for_rock_analysis":
		rv, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Rovers[rv].EquippedRock = true

	case "equipped_for_imaging":
		rv, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Rovers[rv].EquippedImaging = true

	case "empty":
		st, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Stores[st].Full = false

	case "store_of":
		st, ok1 := ObjectNumber(tokens[2])
		rv, ok2 := ObjectNumber(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Stores[st].RoverID = core.RoverID(rv)

	case "calibration_target":
		cam, ok1 := ObjectNumber(tokens[2])
		obj, ok2 := ObjectNumber(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Cameras[cam].CalibrationTargets = s.Cameras[cam].CalibrationTargets.Set(obj)

	case "on_board":
		cam, ok1 := ObjectNumber(tokens[2])
		rv, ok2 := ObjectNumber(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Cameras[cam].RoverID = core.RoverID(rv)

	case "calibrated":
		cam, ok := ObjectNumber(tokens[2])
		if !ok {
			return badLine(line)
		}
		s.Cameras[cam].Calibrated = true

	case "supports":
		cam, ok1 := ObjectNumber(tokens[2])
		mode, ok2 := core.ModeFromToken(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Cameras[cam].ModesSupported = s.Cameras[cam].ModesSupported.Set(int(mode))

	case "visible_from":
		obj, ok1 := ObjectNumber(tokens[2])
		wp, ok2 := ObjectNumber(tokens[3])
		if !ok1 || !ok2 {
			return badLine(line)
		}
		s.Objectives[obj].VisibleWaypoints = s.Objectives[obj].VisibleWaypoints.Set(wp)

	default:
		return badLine(line)
	}
	return nil
}

// applyGoal sets goal predicates. Unlike applyInit, an unrecognized or
// malformed goal line is silently skipped, matching
// original_source/parser.h's goal-parsing branch (which has no else/error
// case at all).
func applyGoal(g *core.Goal, tokens []string) {
	if len(tokens) < 3 {
		return
	}
	switch tokens[1] {
	case "communicated_soil_data":
		if wp, ok := ObjectNumber(tokens[2]); ok {
			g.CommunicatedSoilData[wp] = true
		}
	case "communicated_rock_data":
		if wp, ok := ObjectNumber(tokens[2]); ok {
			g.CommunicatedRockData[wp] = true
		}
	case "communicated_image_data":
		if len(tokens) < 4 {
			return
		}
		obj, ok1 := ObjectNumber(tokens[2])
		mode, ok2 := core.ModeFromToken(tokens[3])
		if ok1 && ok2 {
			g.CommunicatedImageData[obj][mode] = true
		}
	}
}

// ObjectNumber extracts the trailing integer from a PDDL object name such
// as "waypoint12" -> 12, mirroring original_source/parser.h's
// get_object_number: it scans for the first digit and parses from there.
func ObjectNumber(name string) (int, bool) {
	i := 0
	for i < len(name) && (name[i] < '0' || name[i] > '9') {
		i++
	}
	if i >= len(name) {
		return 0, false
	}
	j := i
	for j < len(name) && name[j] >= '0' && name[j] <= '9' {
		j++
	}
	n, err := strconv.Atoi(name[i:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tokenize splits a trimmed PDDL-style line into tokens; exported so
// internal/planio can parse plan-file action lines with the same rules used
// here.
func Tokenize(line string) []string {
	var tokens []string
	if strings.HasPrefix(line, "(") {
		tokens = append(tokens, "(")
		line = line[1:]
	}
	for _, field := range strings.Fields(line) {
		if strings.HasSuffix(field, ")") {
			trimmed := strings.TrimSuffix(field, ")")
			if trimmed != "" {
				tokens = append(tokens, trimmed)
			}
			tokens = append(tokens, ")")
		} else {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
