// Command evopath plans evolution paths over a creature roster.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/evopath/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "plan":
		err = cli.RunPlan(args, os.Stdout)
	case "resolve":
		err = cli.RunResolve(args, os.Stdout)
	case "neighborhood", "nb":
		err = cli.RunNeighborhood(args, os.Stdout)
	case "check":
		err = cli.RunCheck(args, os.Stdout)
	case "history":
		err = cli.RunHistory(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `evopath: evolution path planner

Usage:
  evopath plan [-mode minSteps|minGate] [-max N] [-json] <start> <goal> [...]
  evopath resolve [-suggest N] <name>...
  evopath neighborhood <name>
  evopath check [-strict]
  evopath history [-n N] [-clear]

Common flags: -config file.yaml  -roster roster.yaml  -edges edges.json  -locale zh|ja|en`)
}
