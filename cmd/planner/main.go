// Command planner solves a Rovers problem instance via best-first or A*
// search and writes the resulting plan to a file. Grounded on
// original_source/planner.c's main(), adapted to idiomatic Go flag parsing,
// structured logging, and (T, error) returns instead of exit(-1).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/elektrokombinacija/rover-planner/internal/algo"
	"github.com/elektrokombinacija/rover-planner/internal/config"
	"github.com/elektrokombinacija/rover-planner/internal/obs"
	"github.com/elektrokombinacija/rover-planner/internal/planio"
	"github.com/elektrokombinacija/rover-planner/internal/parser"
)

// statsRecord is the optional JSON sidecar written alongside the plan file,
// shaped after the teacher's tools/run_benchmarks BenchmarkResult records.
type statsRecord struct {
	RunID          string `json:"run_id"`
	Method         string `json:"method"`
	NodesInserted  int    `json:"nodes_inserted"`
	NodesExtracted int    `json:"nodes_extracted"`
	SolutionLength int    `json:"solution_length"`
	TotalRecharges int    `json:"total_recharges"`
	TotalEnergy    int    `json:"total_energy"`
	ElapsedMs      int64  `json:"elapsed_ms"`
}

func syntaxMessage() {
	fmt.Fprintln(os.Stderr, "planner <method> <input-file> <output-file> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "where: <method> = best|astar")
	fmt.Fprintln(os.Stderr, "       <input-file> is a file containing a Rovers problem description.")
	fmt.Fprintln(os.Stderr, "       <output-file> is the file where the solution will be written.")
	flag.PrintDefaults()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Usage = syntaxMessage

	configPath := flag.String("config", "", "optional YAML config file")
	timeoutSecs := flag.Int("timeout", 0, "wall-clock search budget in seconds (0 = use config/default)")
	logLevel := flag.String("log-level", "", "log level: debug|info|warn|error")
	statsOut := flag.String("stats-out", "", "optional path to write a JSON stats sidecar")
	flag.Parse()

	args := flag.Args()
	// Flags may also follow the three positional arguments.
	if len(args) > 3 {
		rest := args[3:]
		args = args[:3:3]
		if err := flag.CommandLine.Parse(rest); err != nil {
			return err
		}
		args = append(args, flag.Args()...)
	}
	if len(args) != 3 {
		syntaxMessage()
		return fmt.Errorf("wrong number of arguments")
	}
	methodArg, inputFile, outputFile := args[0], args[1], args[2]

	method, ok := algo.MethodFromToken(methodArg)
	if !ok {
		return fmt.Errorf("unknown method %q, use best|astar", methodArg)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *timeoutSecs > 0 {
		cfg.TimeoutSeconds = *timeoutSecs
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	run, sync, err := obs.NewRun(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer sync()
	log := run.Logger

	start := time.Now()

	problem, err := parser.ParseFile(inputFile)
	if err != nil {
		log.Errorw("parse failed", "input", inputFile, "error", err)
		return err
	}
	log.Infow("parse complete", "input", inputFile, "rovers", problem.NumRovers, "waypoints", problem.NumWaypoints)

	searchCfg := algo.Config{
		Method:          method,
		Timeout:         cfg.Timeout(),
		InitialCapacity: cfg.InitialCapacity,
		LossyClosedSet:  cfg.LossyClosedSet,
	}
	log.Infow("precompute complete", "method", method)

	result, err := algo.Solve(context.Background(), problem, searchCfg)
	if err != nil {
		log.Errorw("search did not produce a plan", "error", err)
		return err
	}
	log.Infow("search complete",
		"solution_length", result.Depth,
		"total_recharges", result.TotalRecharges,
		"total_energy", result.TotalEnergy,
		"nodes_inserted", result.NodesInserted,
		"nodes_extracted", result.NodesExtracted,
	)

	plan := planio.Plan{TotalRecharges: result.TotalRecharges}
	for _, step := range result.Steps {
		plan.Steps = append(plan.Steps, planio.Step{Action: step.Action, H: step.H, F: step.F})
	}
	if err := planio.WriteFile(outputFile, plan); err != nil {
		return err
	}
	log.Infow("write complete", "output", outputFile)

	if *statsOut != "" {
		rec := statsRecord{
			RunID:          run.ID,
			Method:         method.String(),
			NodesInserted:  result.NodesInserted,
			NodesExtracted: result.NodesExtracted,
			SolutionLength: result.Depth,
			TotalRecharges: result.TotalRecharges,
			TotalEnergy:    result.TotalEnergy,
			ElapsedMs:      time.Since(start).Milliseconds(),
		}
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding stats: %w", err)
		}
		if err := os.WriteFile(*statsOut, data, 0o644); err != nil {
			return fmt.Errorf("writing stats to %s: %w", *statsOut, err)
		}
	}

	return nil
}
