// Package config loads evopath's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evopath/history"
	"github.com/katalvlaran/evopath/planner"
)

// ErrInvalid is wrapped by every validation failure, with the field name.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk configuration. Zero fields in a file keep the
// defaults from Default.
type Config struct {
	Data    Data    `yaml:"data"`
	Plan    Plan    `yaml:"plan"`
	Locale  string  `yaml:"locale"`
	History History `yaml:"history"`
}

// Data names the input files.
type Data struct {
	Roster string `yaml:"roster"`
	Edges  string `yaml:"edges"`
}

// Plan holds search defaults.
type Plan struct {
	Mode     string        `yaml:"mode"`
	MaxPaths int           `yaml:"max_paths"`
	Timeout  time.Duration `yaml:"timeout"`
}

// History selects the search-history store.
type History struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Limit  int    `yaml:"limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: Data{Roster: "roster.yaml"},
		Plan: Plan{
			Mode:     planner.MinSteps.String(),
			MaxPaths: planner.DefaultMaxPaths,
			Timeout:  5 * time.Second,
		},
		Locale: "zh",
		History: History{
			Driver: "memory",
			Path:   "evopath-history.db",
			Limit:  history.DefaultLimit,
		},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.Data.Roster == "" {
		return fmt.Errorf("%w: data.roster is required", ErrInvalid)
	}
	if _, err := planner.ParseMode(c.Plan.Mode); err != nil {
		return fmt.Errorf("%w: plan.mode: %v", ErrInvalid, err)
	}
	if c.Plan.MaxPaths <= 0 {
		return fmt.Errorf("%w: plan.max_paths must be > 0, got %d", ErrInvalid, c.Plan.MaxPaths)
	}
	if c.Plan.Timeout < 0 {
		return fmt.Errorf("%w: plan.timeout must be ≥ 0, got %s", ErrInvalid, c.Plan.Timeout)
	}
	switch c.History.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("%w: history.driver %q", ErrInvalid, c.History.Driver)
	}
	if c.History.Driver == "sqlite" && c.History.Path == "" {
		return fmt.Errorf("%w: history.path is required for sqlite", ErrInvalid)
	}
	if c.History.Limit <= 0 {
		return fmt.Errorf("%w: history.limit must be > 0, got %d", ErrInvalid, c.History.Limit)
	}

	return nil
}
