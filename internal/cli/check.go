package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/evopath/core"
	"github.com/katalvlaran/evopath/dfs"
	"github.com/katalvlaran/evopath/history"
	"github.com/katalvlaran/evopath/lookup"
)

// ErrCheckFailed is returned by RunCheck -strict when the data has problems.
var ErrCheckFailed = errors.New("check: dataset has problems")

// RunCheck reports evolution cycles and unresolved relation names.
func RunCheck(args []string, out io.Writer) error {
	var (
		c      common
		strict bool
	)
	fs := newFlagSet("check", out)
	c.register(fs)
	fs.BoolVar(&strict, "strict", false, "exit non-zero on any finding")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	adj := core.NewAdjacency(s.edges, nil)
	fmt.Fprintf(out, "nodes=%d edges=%d\n", adj.NodeCount(), adj.EdgeCount())

	findings := 0
	hasCycle, cycles := dfs.DetectCycles(adj)
	if hasCycle {
		for _, cyc := range cycles {
			fmt.Fprintf(out, "cycle: %s\n", strings.Join(cyc, " → "))
		}
		findings += len(cycles)
	}

	for _, rec := range s.records {
		names := append(append([]string(nil), rec.EvolvesFrom...), rec.EvolvesTo...)
		for _, raw := range lookup.Unresolved(lookup.ResolveRelations(names, s.index)) {
			fmt.Fprintf(out, "unresolved: %s → %q", rec.Slug, raw)
			if hint := s.hint(raw); hint != "" {
				fmt.Fprintf(out, " (did you mean %s?)", hint)
			}
			fmt.Fprintln(out)
			findings++
		}
	}

	if strict && findings > 0 {
		return fmt.Errorf("%w: %d finding(s)", ErrCheckFailed, findings)
	}

	return nil
}

// RunHistory lists or clears recent searches.
func RunHistory(args []string, out io.Writer) error {
	var (
		c    common
		wipe bool
		n    int
	)
	fs := newFlagSet("history", out)
	fs.StringVar(&c.config, "config", "", "YAML config file")
	fs.BoolVar(&wipe, "clear", false, "delete all entries")
	fs.IntVar(&n, "n", 0, "entries to show (0 = all kept)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}
	h := cfg.History
	if h.Driver == "memory" {
		logger.Printf("history driver is memory; nothing persists between runs")
	}

	ctx := context.Background()
	store, err := history.Open(ctx, h.Driver, h.Path, h.Limit)
	if err != nil {
		return err
	}
	defer store.Close()

	if wipe {
		return store.Clear(ctx)
	}
	entries, err := store.Recent(ctx, n)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s → %s  %s  found=%d/%d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Start, e.Goal, e.Mode, e.Found, e.MaxPaths, e.ID)
	}

	return nil
}
