package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/grindlemire/go-collection/internal/debug"
)

// options holds the flags shared by every scenario command.
type options struct {
	path    string
	width   int
	noColor bool
}

// parseArgs parses flags and the single scenario path.
func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-w", "--width":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 8 {
				return opts, fmt.Errorf("invalid width %q", args[i])
			}
			opts.width = n
		case "--no-color":
			opts.noColor = true
		case "--debug":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			i++
			if err := debug.Init(args[i]); err != nil {
				return opts, err
			}
		default:
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.path = arg
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("no scenario file given")
	}
	return opts, nil
}

// colorOutput reports whether stdout should get ANSI colour.
func (o options) colorOutput() bool {
	if o.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// painter wraps text in ANSI colour when enabled.
type painter bool

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
	ansiDim   = "\x1b[2m"
)

func (p painter) paint(code, s string) string {
	if !p {
		return s
	}
	return code + s + ansiReset
}
