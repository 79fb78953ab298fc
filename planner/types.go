package planner

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxPaths is the number of plans requested when a caller does not say.
const DefaultMaxPaths = 5

// Sentinel errors for caller-side validation.
var (
	// ErrUnknownMode is returned by ParseMode for an unrecognized mode name.
	ErrUnknownMode = errors.New("planner: unknown mode")

	// ErrMissingEndpoint indicates an empty start or goal.
	ErrMissingEndpoint = errors.New("planner: start and goal are required")

	// ErrSameEndpoint indicates start == goal.
	ErrSameEndpoint = errors.New("planner: start and goal must differ")
)

// Mode selects the cost model.
type Mode int

const (
	// MinSteps minimizes the number of evolutions.
	MinSteps Mode = iota
	// MinGate minimizes evolutions weighted by their gating conditions.
	MinGate
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case MinSteps:
		return "minSteps"
	case MinGate:
		return "minGate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "minSteps" or "minGate", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minsteps", "":
		return MinSteps, nil
	case "mingate":
		return MinGate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Plan is one candidate path. Nodes has at least two entries,
// Steps == len(Nodes)-1, and Score is the cost under the mode that produced it.
type Plan struct {
	Nodes []string `json:"nodes"`
	Steps int      `json:"steps"`
	Score float64  `json:"score"`
}

// Query bundles the arguments of one Find call.
type Query struct {
	Start    string
	Goal     string
	Mode     Mode
	MaxPaths int
}

// Validate enforces the preconditions callers owe Find.
func Validate(start, goal string) error {
	if start == "" || goal == "" {
		return ErrMissingEndpoint
	}
	if start == goal {
		return fmt.Errorf("%w: %q", ErrSameEndpoint, start)
	}

	return nil
}
