// Command rover_verify replays a plan file against a problem file's initial
// state and reports whether the plan is applicable and reaches the goal.
// Grounded on original_source/rover_verify.c's verify_solution/main.
package main

import (
	"fmt"
	"os"

	"github.com/elektrokombinacija/rover-planner/internal/parser"
	"github.com/elektrokombinacija/rover-planner/internal/planio"
	"github.com/elektrokombinacija/rover-planner/internal/verify"
)

func syntaxMessage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "\trover_verify <problem-file> <solution-file>")
}

func main() {
	if len(os.Args) != 3 {
		syntaxMessage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "rover_verify:", err)
		os.Exit(1)
	}
}

func run(problemFile, solutionFile string) error {
	problem, err := parser.ParseFile(problemFile)
	if err != nil {
		return fmt.Errorf("loading problem file: %w", err)
	}

	actions, err := planio.ReadActionsFile(solutionFile)
	if err != nil {
		return fmt.Errorf("loading solution file: %w", err)
	}

	result, err := verify.Plan(problem, actions)
	if err != nil {
		return err
	}

	fmt.Println("Solution is valid!")
	fmt.Printf("Total actions: %d\n", result.TotalActions)
	fmt.Printf("Total recharges: %d\n", result.TotalRecharges)
	return nil
}
