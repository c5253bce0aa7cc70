package gcore

import (
	"errors"
	"fmt"
)

// Error policy, matching the teacher's builder package: sentinels are
// package-level errors.New values, never stringified with parameters
// at the definition site; callers branch with errors.Is; call sites
// attach context by wrapping with Wrapf, which always preserves the
// sentinel via %w.

// ErrPreconditionUnmet is returned when an operation's documented
// precondition does not hold in a checked build: a negative-weight
// relaxation, erasing a vertex with live cokey edges, a path built from
// a non-adjacent edge sequence, or concatenating paths whose endpoints
// don't match. Sampling from an empty set does not report it:
// graphwrap's RandomVert/RandomEdge return the null handle instead.
var ErrPreconditionUnmet = errors.New("gcore: precondition unmet")

// ErrInternalInvariant guards states this library's own bookkeeping
// should make impossible (e.g. popping a vertex already closed from a
// priority queue that should have discarded it on insert). Reaching
// this indicates a bug in graphkit, not a caller error, so it is only
// ever panicked with, never returned.
var ErrInternalInvariant = errors.New("gcore: internal invariant violated")

// ErrVertexNotFound is returned when a handle does not name a live
// vertex of the graph it was presented to.
var ErrVertexNotFound = errors.New("gcore: vertex not found")

// ErrEdgeNotFound is returned when a handle does not name a live edge
// of the graph it was presented to.
var ErrEdgeNotFound = errors.New("gcore: edge not found")

// ErrCapacityExceeded is returned by a fixed-capacity atomic
// representation once its pre-reserved slots are exhausted.
var ErrCapacityExceeded = errors.New("gcore: capacity exceeded")

// Wrapf attaches context to a sentinel, preserving it for errors.Is.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
