package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilAdjacency indicates that a nil *core.Adjacency was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrNegativeWeight indicates that a negative arc weight was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a Dijkstra run.
//
// Source           – starting node ID (required).
// Target           – optional node at which the search stops once settled.
// ReturnPath       – if true, return the predecessor map.
// MaxDistance      – nodes farther than this are not settled. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ this are impassable. Default +Inf.
type Options struct {
	Source           string
	Target           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the search once id has been settled.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at max. Negative values yield ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks arcs with weight ≥ threshold impassable.
// Zero or negative values yield ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for source with no target, no path, and no caps.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
