// Package handle defines the opaque, totally-ordered, hashable identifiers
// vertices and edges are known by throughout graphkit.
//
// Two families are provided. Int is a dense integer handle used by
// stablelist and atomiclist.ContiguousAdjacencyList, which never
// recycle indices. Ref wraps a live pointer plus a monotonically
// increasing birth index, used by the representations that support
// removal (edgelist, adjlist) and by atomiclist.AdjacencyList:
// the pointer gives equality and dereference for free, the birth index
// gives the total order and hash key a bare Go pointer cannot (Go
// pointers support only == and !=, not <).
//
// Handles are produced only by the graph that owns them and must never
// be compared across graphs.
package handle

import (
	"fmt"
	"math"
)

// NullInt is the reserved sentinel value of Int; no live vertex or edge
// is ever assigned this key.
const NullInt Int = math.MaxUint64

// Int is a dense, zero-based integer handle.
type Int uint64

// Key returns the inner value used for hashing and dense indexing.
func (h Int) Key() uint64 { return uint64(h) }

// IsNull reports whether h is the reserved null handle.
func (h Int) IsNull() bool { return h == NullInt }

// Less gives the total order required of handles.
func (h Int) Less(other Int) bool { return h < other }

// String renders h for diagnostics.
func (h Int) String() string {
	if h.IsNull() {
		return "<null>"
	}
	return fmt.Sprintf("#%d", uint64(h))
}

// Ref is a pointer handle: identity is the wrapped *T, ordering and
// hashing come from a birth index assigned once at construction.
//
// The zero value of Ref is the null handle (node == nil); callers
// should use NewRef to construct live handles.
type Ref[T any] struct {
	id   uint64
	node *T
}

// NewRef constructs a live handle wrapping node, ordered/hashed by id.
// Callers are responsible for assigning monotonically increasing ids
// (see edgelist/adjlist's birth counters).
func NewRef[T any](id uint64, node *T) Ref[T] {
	return Ref[T]{id: id, node: node}
}

// Key returns the birth index, suitable for hashing or use as a map key.
func (h Ref[T]) Key() uint64 { return h.id }

// IsNull reports whether h is the reserved null handle.
func (h Ref[T]) IsNull() bool { return h.node == nil }

// Less orders handles by birth index.
func (h Ref[T]) Less(other Ref[T]) bool { return h.id < other.id }

// Node returns the referenced payload, or nil for a null handle.
func (h Ref[T]) Node() *T { return h.node }

// String renders h for diagnostics.
func (h Ref[T]) String() string {
	if h.IsNull() {
		return "<null>"
	}
	return fmt.Sprintf("#%d", h.id)
}
