package edgelist

import (
	"sync"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/gtrack"
	"github.com/nodeforge/graphkit/handle"
)

// Graph is the edge-list representation over vertex payload V.
type Graph[V any] struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertBirth uint64
	edgeBirth uint64

	verts map[Vert[V]]struct{}
	edges map[Edge[V]]struct{}

	vertTracker *gtrack.Tracker[Vert[V]]
	edgeTracker *gtrack.Tracker[Edge[V]]
}

// New returns an empty edge-list graph.
func New[V any]() *Graph[V] {
	return &Graph[V]{
		verts:       make(map[Vert[V]]struct{}),
		edges:       make(map[Edge[V]]struct{}),
		vertTracker: gtrack.New[Vert[V]](),
		edgeTracker: gtrack.New[Edge[V]](),
	}
}

// VertTracker returns the tracker persistent vertex side containers
// subscribe to.
func (g *Graph[V]) VertTracker() *gtrack.Tracker[Vert[V]] { return g.vertTracker }

// EdgeTracker returns the tracker persistent edge side containers
// subscribe to.
func (g *Graph[V]) EdgeTracker() *gtrack.Tracker[Edge[V]] { return g.edgeTracker }

// NullVert implements gcore.Graph.
func (g *Graph[V]) NullVert() Vert[V] { return Vert[V]{} }

// NullEdge implements gcore.Graph.
func (g *Graph[V]) NullEdge() Edge[V] { return Edge[V]{} }

// Verts implements gcore.Graph.
func (g *Graph[V]) Verts() []Vert[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]Vert[V], 0, len(g.verts))
	for v := range g.verts {
		out = append(out, v)
	}
	return out
}

// Edges implements gcore.Graph.
func (g *Graph[V]) Edges() []Edge[V] {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]Edge[V], 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Order implements gcore.Graph.
func (g *Graph[V]) Order() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.verts)
}

// Size implements gcore.Graph.
func (g *Graph[V]) Size() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// Tail implements gcore.Graph.
func (g *Graph[V]) Tail(e Edge[V]) Vert[V] {
	if e.IsNull() {
		return Vert[V]{}
	}
	return e.Node().tail
}

// Head implements gcore.Graph.
func (g *Graph[V]) Head(e Edge[V]) Vert[V] {
	if e.IsNull() {
		return Vert[V]{}
	}
	return e.Node().head
}

// Payload returns the payload stored for v, the zero value for a null
// handle.
func (g *Graph[V]) Payload(v Vert[V]) V {
	if v.IsNull() {
		var zero V
		return zero
	}
	return v.Node().payload
}

// SetPayload overwrites the payload stored for v. A no-op on a null
// handle.
func (g *Graph[V]) SetPayload(v Vert[V], payload V) {
	if !v.IsNull() {
		v.Node().payload = payload
	}
}

// InsertVert returns a fresh, non-null vertex carrying payload.
func (g *Graph[V]) InsertVert(payload V) Vert[V] {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	id := g.vertBirth
	g.vertBirth++
	v := handle.NewRef(id, &vertexNode[V]{payload: payload})
	g.verts[v] = struct{}{}
	return v
}

// InsertEdge returns a fresh, non-null edge from tail to head.
// Precondition: both endpoints are live vertices of g.
func (g *Graph[V]) InsertEdge(tail, head Vert[V]) (Edge[V], error) {
	g.muVert.RLock()
	_, tailLive := g.verts[tail]
	_, headLive := g.verts[head]
	g.muVert.RUnlock()
	if !tailLive || !headLive {
		return Edge[V]{}, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	id := g.edgeBirth
	g.edgeBirth++
	e := handle.NewRef(id, &edgeNode[V]{tail: tail, head: head})
	g.edges[e] = struct{}{}
	return e, nil
}

// EraseVert implements gcore.MutableGraph. Precondition: no live edge
// has v as an endpoint.
func (g *Graph[V]) EraseVert(v Vert[V]) error {
	g.muEdge.RLock()
	for e := range g.edges {
		if e.Node().tail == v || e.Node().head == v {
			g.muEdge.RUnlock()
			return gcore.Wrapf(gcore.ErrPreconditionUnmet, "EraseVert: vertex still has an incident edge")
		}
	}
	g.muEdge.RUnlock()

	g.muVert.Lock()
	if _, ok := g.verts[v]; !ok {
		g.muVert.Unlock()
		return gcore.Wrapf(gcore.ErrVertexNotFound, "EraseVert")
	}
	delete(g.verts, v)
	g.muVert.Unlock()

	g.vertTracker.Erase(v)
	return nil
}

// EraseEdge implements gcore.MutableGraph.
func (g *Graph[V]) EraseEdge(e Edge[V]) error {
	g.muEdge.Lock()
	if _, ok := g.edges[e]; !ok {
		g.muEdge.Unlock()
		return gcore.Wrapf(gcore.ErrEdgeNotFound, "EraseEdge")
	}
	delete(g.edges, e)
	g.muEdge.Unlock()

	g.edgeTracker.Erase(e)
	return nil
}

// Clear implements gcore.MutableGraph.
func (g *Graph[V]) Clear() {
	g.muVert.Lock()
	g.verts = make(map[Vert[V]]struct{})
	g.vertBirth = 0
	g.muVert.Unlock()

	g.muEdge.Lock()
	g.edges = make(map[Edge[V]]struct{})
	g.edgeBirth = 0
	g.muEdge.Unlock()

	g.vertTracker.Clear()
	g.edgeTracker.Clear()
}

var (
	_ gcore.Graph[Vert[int], Edge[int]]        = (*Graph[int])(nil)
	_ gcore.MutableGraph[Vert[int], Edge[int]] = (*Graph[int])(nil)
)
