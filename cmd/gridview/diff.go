package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	collection "github.com/grindlemire/go-collection"
	"github.com/grindlemire/go-collection/internal/scenario"
)

// runDiff implements the diff subcommand.
func runDiff(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	s, err := scenario.Load(opts.path)
	if err != nil {
		return err
	}
	if s.After == nil {
		return fmt.Errorf("%s has no after sections to diff against", opts.path)
	}
	cv, src, err := s.NewView()
	if err != nil {
		return err
	}
	if _, err := cv.ContentSize(); err != nil {
		return err
	}
	if err := s.Apply(cv, src); err != nil {
		return err
	}
	updates := cv.Updates()
	return writeDiff(os.Stdout, updates[len(updates)-1], painter(opts.colorOutput()))
}

func writeDiff(w io.Writer, u collection.Update, p painter) error {
	fmt.Fprintln(w, p.paint(ansiBold, "updates"))
	for _, it := range u.Items {
		color := ""
		switch it.Action {
		case collection.ActionInsert:
			color = ansiGreen
		case collection.ActionDelete:
			color = ansiRed
		case collection.ActionMove, collection.ActionReload:
			color = ansiCyan
		}
		fmt.Fprintf(w, "  %s\n", p.paint(color, it.String()))
	}

	fmt.Fprintln(w, p.paint(ansiBold, "old -> new"))
	for i, n := range u.Map.OldToNew {
		if n < 0 {
			fmt.Fprintf(w, "  %d -> %s\n", i, p.paint(ansiRed, "deleted"))
			continue
		}
		fmt.Fprintf(w, "  %d -> %d\n", i, n)
	}

	patch, err := unifiedDiff(fullGeometry(u.Before), fullGeometry(u.After))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, p.paint(ansiBold, "attributes"))
	for _, line := range difflib.SplitLines(strings.TrimSuffix(patch, "\n")) {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = p.paint(ansiBold, line)
		case strings.HasPrefix(line, "+"):
			line = p.paint(ansiGreen, line)
		case strings.HasPrefix(line, "-"):
			line = p.paint(ansiRed, line)
		case strings.HasPrefix(line, "@@"):
			line = p.paint(ansiCyan, line)
		}
		fmt.Fprint(w, line)
	}
	return nil
}

// unifiedDiff diffs the attribute dumps of two geometries.
func unifiedDiff(before, after []*collection.Attributes) (string, error) {
	u := difflib.UnifiedDiff{
		A:        dumpAttributes(before),
		B:        dumpAttributes(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  2,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "(no geometry changes)\n", nil
	}
	return s, nil
}
