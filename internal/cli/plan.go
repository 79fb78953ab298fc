package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/evopath/history"
	"github.com/katalvlaran/evopath/planner"
)

// RunPlan searches evolution paths. Arguments are start/goal pairs; more
// than one pair is planned concurrently.
func RunPlan(args []string, out io.Writer) error {
	var (
		c        common
		mode     string
		maxPaths int
		asJSON   bool
		parallel int
	)
	fs := newFlagSet("plan", out)
	c.register(fs)
	fs.StringVar(&mode, "mode", "", "minSteps or minGate (overrides plan.mode)")
	fs.IntVar(&maxPaths, "max", 0, "maximum plans per query (overrides plan.max_paths)")
	fs.BoolVar(&asJSON, "json", false, "print plans as JSON")
	fs.IntVar(&parallel, "parallel", 4, "concurrent searches for multiple pairs")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	pairs := fs.Args()
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return fmt.Errorf("%w: plan [flags] <start> <goal> [<start> <goal> ...]", ErrUsage)
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Plan.Mode = mode
	}
	if maxPaths > 0 {
		cfg.Plan.MaxPaths = maxPaths
	}
	m, err := planner.ParseMode(cfg.Plan.Mode)
	if err != nil {
		return err
	}

	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	queries := make([]planner.Query, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		queries = append(queries, planner.Query{
			Start:    s.slugFor(pairs[i]),
			Goal:     s.slugFor(pairs[i+1]),
			Mode:     m,
			MaxPaths: cfg.Plan.MaxPaths,
		})
	}

	ctx := context.Background()
	if cfg.Plan.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Plan.Timeout)
		defer cancel()
	}
	results, err := planner.PlanAll(ctx, s.edges, queries, parallel)
	if err != nil {
		return err
	}

	if err := s.record(ctx, queries, results); err != nil {
		logger.Printf("history not recorded: %v", err)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i, q := range queries {
		s.printPlans(out, q, results[i])
	}

	return nil
}

func (s *session) printPlans(out io.Writer, q planner.Query, plans []planner.Plan) {
	fmt.Fprintf(out, "%s → %s (%s): %d path(s)\n", s.label(q.Start), s.label(q.Goal), q.Mode, len(plans))
	for i, p := range plans {
		labels := make([]string, len(p.Nodes))
		for j, id := range p.Nodes {
			labels[j] = s.label(id)
		}
		fmt.Fprintf(out, "  %d. %s  steps=%d score=%.1f\n", i+1, strings.Join(labels, " → "), p.Steps, p.Score)
	}
}

// record appends one history entry per query.
func (s *session) record(ctx context.Context, queries []planner.Query, results [][]planner.Plan) error {
	h := s.cfg.History
	store, err := history.Open(ctx, h.Driver, h.Path, h.Limit)
	if err != nil {
		return err
	}
	defer store.Close()

	for i, q := range queries {
		if _, err := store.Add(ctx, history.Entry{
			Start:    q.Start,
			Goal:     q.Goal,
			Mode:     q.Mode.String(),
			MaxPaths: q.MaxPaths,
			Found:    len(results[i]),
		}); err != nil {
			return err
		}
	}

	return nil
}
