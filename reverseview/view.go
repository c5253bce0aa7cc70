// Package reverseview implements the reverse view: every edge's tail
// and head are swapped, and out/in adjacency swap with them, without
// copying a single vertex or edge.
//
// Grounded on the source's Reverse.hpp, whose trait specializations
// define Out_edges<Reverse<G>> in terms of In_edges<G> and vice versa
// (and symmetrically for tail/head) — a view, not a materialization.
// Since that swap requires both adjacency directions to exist on the
// wrapped graph, View is constrained to gcore.BiEdgeGraph, matching
// §4.4's note that only adjlist.BiGraph (or another view already
// composed over one) is reversible.
package reverseview

import (
	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/gtrack"
)

// View presents g with every edge's tail/head, and so every vertex's
// out/in adjacency, swapped.
type View[V, E comparable, G gcore.BiEdgeGraph[V, E]] struct {
	inner G
}

// New wraps g in a reverse view.
func New[V, E comparable, G gcore.BiEdgeGraph[V, E]](g G) *View[V, E, G] {
	return &View[V, E, G]{inner: g}
}

// Unwrap returns the underlying graph.
func (v *View[V, E, G]) Unwrap() G { return v.inner }

// vertTrackable and edgeTrackable are satisfied by the representations
// (edgelist, adjlist) that expose the tracker behind
// their persistent side containers. VertTracker/EdgeTracker delegate
// to it rather than the view minting one of its own, matching the
// source's note that side maps requested through a reverse view are
// the underlying graph's side maps.
type vertTrackable[V comparable] interface {
	VertTracker() *gtrack.Tracker[V]
}

type edgeTrackable[E comparable] interface {
	EdgeTracker() *gtrack.Tracker[E]
}

// VertTracker returns the wrapped graph's vertex tracker, or nil if
// the wrapped graph does not expose one (it carries no erasures to
// subscribe to, e.g. a no-removal representation).
func (v *View[V, E, G]) VertTracker() *gtrack.Tracker[V] {
	if t, ok := any(v.inner).(vertTrackable[V]); ok {
		return t.VertTracker()
	}
	return nil
}

// EdgeTracker returns the wrapped graph's edge tracker, or nil if the
// wrapped graph does not expose one.
func (v *View[V, E, G]) EdgeTracker() *gtrack.Tracker[E] {
	if t, ok := any(v.inner).(edgeTrackable[E]); ok {
		return t.EdgeTracker()
	}
	return nil
}

// NullVert implements gcore.Graph.
func (v *View[V, E, G]) NullVert() V { return v.inner.NullVert() }

// NullEdge implements gcore.Graph.
func (v *View[V, E, G]) NullEdge() E { return v.inner.NullEdge() }

// Verts implements gcore.Graph.
func (v *View[V, E, G]) Verts() []V { return v.inner.Verts() }

// Edges implements gcore.Graph.
func (v *View[V, E, G]) Edges() []E { return v.inner.Edges() }

// Order implements gcore.Graph.
func (v *View[V, E, G]) Order() int { return v.inner.Order() }

// Size implements gcore.Graph.
func (v *View[V, E, G]) Size() int { return v.inner.Size() }

// Tail implements gcore.Graph, returning the wrapped graph's Head.
func (v *View[V, E, G]) Tail(e E) V { return v.inner.Head(e) }

// Head implements gcore.Graph, returning the wrapped graph's Tail.
func (v *View[V, E, G]) Head(e E) V { return v.inner.Tail(e) }

// OutEdges implements gcore.OutAdjacency, returning the wrapped
// graph's InEdges.
func (v *View[V, E, G]) OutEdges(vert V) []E { return v.inner.InEdges(vert) }

// OutDegree implements gcore.OutAdjacency, returning the wrapped
// graph's InDegree.
func (v *View[V, E, G]) OutDegree(vert V) int { return v.inner.InDegree(vert) }

// InEdges implements gcore.InAdjacency, returning the wrapped graph's
// OutEdges.
func (v *View[V, E, G]) InEdges(vert V) []E { return v.inner.OutEdges(vert) }

// InDegree implements gcore.InAdjacency, returning the wrapped graph's
// OutDegree.
func (v *View[V, E, G]) InDegree(vert V) int { return v.inner.OutDegree(vert) }

var _ gcore.BiEdgeGraph[int, int] = (*View[int, int, gcore.BiEdgeGraph[int, int]])(nil)
