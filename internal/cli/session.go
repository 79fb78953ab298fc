// Package cli implements the evopath subcommands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/evopath/core"
	"github.com/katalvlaran/evopath/creature"
	"github.com/katalvlaran/evopath/dataset"
	"github.com/katalvlaran/evopath/internal/config"
	"github.com/katalvlaran/evopath/lookup"
)

// ErrUsage is returned for bad arguments; main prints usage on it.
var ErrUsage = errors.New("usage")

var logger = log.New(os.Stderr, "evopath: ", 0)

// common holds the flags every data-reading command accepts.
type common struct {
	config string
	roster string
	edges  string
	locale string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "YAML config file")
	fs.StringVar(&c.roster, "roster", "", "roster YAML (overrides data.roster)")
	fs.StringVar(&c.edges, "edges", "", "edge JSON (overrides data.edges)")
	fs.StringVar(&c.locale, "locale", "", "display locale: zh, ja, en")
}

// load resolves the configuration, applying flag overrides.
func (c *common) load() (config.Config, error) {
	cfg, err := config.Load(c.config)
	if err != nil {
		return config.Config{}, err
	}
	if c.roster != "" {
		cfg.Data.Roster = c.roster
	}
	if c.edges != "" {
		cfg.Data.Edges = c.edges
	}
	if c.locale != "" {
		cfg.Locale = c.locale
	}

	return cfg, cfg.Validate()
}

// session is the in-memory snapshot one command works over.
type session struct {
	cfg     config.Config
	records []creature.Record
	index   lookup.Index
	edges   []core.EvolutionEdge
	locale  creature.Locale
}

func openSession(cfg config.Config) (*session, error) {
	started := time.Now()
	records, err := dataset.LoadRoster(cfg.Data.Roster)
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:     cfg,
		records: records,
		index:   lookup.Build(records),
		locale:  creature.ParseLocale(cfg.Locale),
	}
	if cfg.Data.Edges != "" {
		s.edges, err = dataset.LoadEdges(cfg.Data.Edges)
		if err != nil {
			return nil, err
		}
	} else {
		s.edges = dataset.FlattenEdges(records, s.index)
	}
	logger.Printf("loaded %d creatures, %d keys, %d edges in %s",
		len(records), len(s.index), len(s.edges), time.Since(started).Round(time.Microsecond))

	return s, nil
}

// slugFor resolves a user-typed name to a slug, or returns it unchanged.
func (s *session) slugFor(name string) string {
	if rec, ok := s.index.Lookup(name); ok {
		return rec.Slug
	}
	if hint := s.hint(name); hint != "" {
		logger.Printf("%q is not in the roster; did you mean %s?", name, hint)
	}

	return name
}

// hint formats the closest suggestion for name, or "".
func (s *session) hint(name string) string {
	sug := lookup.Suggest(name, s.index, 1)
	if len(sug) == 0 || sug[0].Distance == 0 {
		return ""
	}

	return fmt.Sprintf("%q", creature.DisplayName(*sug[0].Record, s.locale))
}

// label renders a node id (slug or raw name) for display.
func (s *session) label(id string) string {
	if rec, ok := s.index.Lookup(id); ok {
		return creature.DisplayName(*rec, s.locale)
	}

	return id
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}
