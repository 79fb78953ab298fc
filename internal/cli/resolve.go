package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/evopath/creature"
	"github.com/katalvlaran/evopath/lookup"
	"github.com/katalvlaran/evopath/neighborhood"
)

// RunResolve resolves each name argument and suggests near misses.
func RunResolve(args []string, out io.Writer) error {
	var (
		c       common
		suggest int
	)
	fs := newFlagSet("resolve", out)
	c.register(fs)
	fs.IntVar(&suggest, "suggest", 3, "suggestions per unresolved name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: resolve [flags] <name>...", ErrUsage)
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	for _, rel := range lookup.ResolveRelations(fs.Args(), s.index) {
		if rel.Match != nil {
			fmt.Fprintf(out, "%s\t%s\t%s\n", rel.Raw, rel.Match.Slug, creature.DisplayName(*rel.Match, s.locale))
			continue
		}
		fmt.Fprintf(out, "%s\t-\tunresolved\n", rel.Raw)
		for _, sug := range lookup.Suggest(rel.Raw, s.index, suggest) {
			fmt.Fprintf(out, "  ? %s (%s, distance %d)\n", sug.Key, sug.Record.Slug, sug.Distance)
		}
	}

	return nil
}

// RunNeighborhood prints the one-hop evolution graph of a creature as JSON.
func RunNeighborhood(args []string, out io.Writer) error {
	var c common
	fs := newFlagSet("neighborhood", out)
	c.register(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: neighborhood [flags] <name>", ErrUsage)
	}

	cfg, err := c.load()
	if err != nil {
		return err
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}

	rec, ok := s.index.Lookup(fs.Arg(0))
	if !ok {
		if hint := s.hint(fs.Arg(0)); hint != "" {
			return fmt.Errorf("unknown creature %q; did you mean %s?", fs.Arg(0), hint)
		}
		return fmt.Errorf("unknown creature %q", fs.Arg(0))
	}
	if !neighborhood.ShouldShowGraph(rec.EvolvesFrom, rec.EvolvesTo) {
		logger.Printf("%s has no recorded evolutions", rec.Slug)
		return nil
	}

	g := neighborhood.Build(neighborhood.Center{
		Slug:      rec.Slug,
		Name:      creature.DisplayName(*rec, s.locale),
		Stage:     rec.Stage,
		Attribute: rec.Attribute,
	}, rec.EvolvesFrom, rec.EvolvesTo)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}
