package stablelist

import (
	"sync"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/handle"
)

type edgeRec struct {
	tail, head handle.Int
}

// EdgeList is the no-removal edge-list representation: vertices and
// edges are dense, zero-based handle.Int values assigned by an
// ever-growing counter and never recycled.
type EdgeList[V any] struct {
	mu       sync.RWMutex
	vertData []V
	edges    []edgeRec
}

// NewEdgeList returns an empty stable edge-list graph.
func NewEdgeList[V any]() *EdgeList[V] { return &EdgeList[V]{} }

// NullVert implements gcore.Graph.
func (g *EdgeList[V]) NullVert() handle.Int { return handle.NullInt }

// NullEdge implements gcore.Graph.
func (g *EdgeList[V]) NullEdge() handle.Int { return handle.NullInt }

// Verts implements gcore.Graph.
func (g *EdgeList[V]) Verts() []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]handle.Int, len(g.vertData))
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

// Edges implements gcore.Graph.
func (g *EdgeList[V]) Edges() []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]handle.Int, len(g.edges))
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

// Order implements gcore.Graph.
func (g *EdgeList[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertData)
}

// Size implements gcore.Graph.
func (g *EdgeList[V]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Tail implements gcore.Graph.
func (g *EdgeList[V]) Tail(e handle.Int) handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e.IsNull() || int(e) >= len(g.edges) {
		return handle.NullInt
	}
	return g.edges[e].tail
}

// Head implements gcore.Graph.
func (g *EdgeList[V]) Head(e handle.Int) handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e.IsNull() || int(e) >= len(g.edges) {
		return handle.NullInt
	}
	return g.edges[e].head
}

// Payload returns the payload stored for v, the zero value if v is out
// of range.
func (g *EdgeList[V]) Payload(v handle.Int) V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v.IsNull() || int(v) >= len(g.vertData) {
		var zero V
		return zero
	}
	return g.vertData[v]
}

// SetPayload overwrites the payload stored for v.
func (g *EdgeList[V]) SetPayload(v handle.Int, payload V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !v.IsNull() && int(v) < len(g.vertData) {
		g.vertData[v] = payload
	}
}

// InsertVert appends a fresh vertex carrying payload and returns its
// handle. The returned handle is never reused, even after future
// structural changes elsewhere in the graph (there are none here: this
// representation has no removal).
func (g *EdgeList[V]) InsertVert(payload V) handle.Int {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := handle.Int(len(g.vertData))
	g.vertData = append(g.vertData, payload)
	return v
}

// InsertEdge appends a fresh edge from tail to head and returns its
// handle. Precondition: both endpoints are live vertices of g.
func (g *EdgeList[V]) InsertEdge(tail, head handle.Int) (handle.Int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if tail.IsNull() || head.IsNull() || int(tail) >= len(g.vertData) || int(head) >= len(g.vertData) {
		return handle.NullInt, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}
	e := handle.Int(len(g.edges))
	g.edges = append(g.edges, edgeRec{tail: tail, head: head})
	return e, nil
}

var _ gcore.Graph[handle.Int, handle.Int] = (*EdgeList[int])(nil)
