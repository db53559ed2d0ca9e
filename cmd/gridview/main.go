// Package main provides gridview, a command line viewer for collection
// scenarios.
//
// Usage:
//
//	gridview layout <scenario>   Print every element's attributes
//	gridview render <scenario>   Draw the layout as ASCII boxes
//	gridview diff <scenario>     Apply the scenario's updates and show what moved
//	gridview help                Show help
//
// Scenarios are YAML or TOML files; see internal/scenario for the schema.
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-collection/internal/debug"
)

const version = "0.1.0"

const usage = `gridview - inspect collection layouts and batch updates

Usage:
  gridview <command> [options] <scenario>

Commands:
  layout      Print every element's attributes and the content size
  render      Draw the layout as ASCII boxes scaled to the terminal
  diff        Apply the scenario's updates, print the update items, the
              index map and a unified diff of the attributes before and after
  version     Print version information
  help        Show this help message

Options:
  -w <cols>   Render width in columns (default: terminal width)
  --no-color  Disable colour even on a terminal
  --debug <f> Write debug log to file f (also: GRIDVIEW_DEBUG=f)

Examples:
  gridview layout grid.yaml
  gridview render -w 60 grid.toml
  gridview diff --no-color batch.yaml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]
	defer debug.Close()

	var err error
	switch command {
	case "layout":
		err = runLayout(args)
	case "render":
		err = runRender(args)
	case "diff":
		err = runDiff(args)
	case "version":
		fmt.Printf("gridview version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}
