package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for path enumeration.
var (
	// ErrAdjacencyNil is returned if a nil adjacency pointer is passed.
	ErrAdjacencyNil = errors.New("bfs: adjacency is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures ShortestPaths via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of ShortestPaths.
type Options struct {
	// MaxDepth, if > 0, stops extending paths beyond this many edges.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	FilterNeighbor func(curr, next string) bool

	err error
}

// DefaultOptions returns Options with no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithMaxDepth limits path length in edges.
//
//	d > 0:  limit to d edges
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips arcs when fn returns false.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
