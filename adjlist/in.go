package adjlist

import (
	"sync"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/gtrack"
	"github.com/nodeforge/graphkit/handle"
)

type inVertexNode[V any] struct {
	payload V
	in      map[InEdge[V]]struct{}
}

type inEdgeNode[V any] struct {
	tail, head InVert[V]
}

// InVert is InGraph's vertex handle.
type InVert[V any] = handle.Ref[inVertexNode[V]]

// InEdge is InGraph's edge handle.
type InEdge[V any] = handle.Ref[inEdgeNode[V]]

// InGraph is the in-adjacency-list representation: every vertex tracks
// its own incoming edges, so InEdges/InDegree run in O(in-degree).
type InGraph[V any] struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertBirth uint64
	edgeBirth uint64

	verts map[InVert[V]]struct{}
	edges map[InEdge[V]]struct{}

	vertTracker *gtrack.Tracker[InVert[V]]
	edgeTracker *gtrack.Tracker[InEdge[V]]
}

// NewIn returns an empty in-adjacency-list graph.
func NewIn[V any]() *InGraph[V] {
	return &InGraph[V]{
		verts:       make(map[InVert[V]]struct{}),
		edges:       make(map[InEdge[V]]struct{}),
		vertTracker: gtrack.New[InVert[V]](),
		edgeTracker: gtrack.New[InEdge[V]](),
	}
}

// VertTracker returns the tracker persistent vertex side containers
// subscribe to.
func (g *InGraph[V]) VertTracker() *gtrack.Tracker[InVert[V]] { return g.vertTracker }

// EdgeTracker returns the tracker persistent edge side containers
// subscribe to.
func (g *InGraph[V]) EdgeTracker() *gtrack.Tracker[InEdge[V]] { return g.edgeTracker }

// NullVert implements gcore.Graph.
func (g *InGraph[V]) NullVert() InVert[V] { return InVert[V]{} }

// NullEdge implements gcore.Graph.
func (g *InGraph[V]) NullEdge() InEdge[V] { return InEdge[V]{} }

// Verts implements gcore.Graph.
func (g *InGraph[V]) Verts() []InVert[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]InVert[V], 0, len(g.verts))
	for v := range g.verts {
		out = append(out, v)
	}
	return out
}

// Edges implements gcore.Graph.
func (g *InGraph[V]) Edges() []InEdge[V] {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]InEdge[V], 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Order implements gcore.Graph.
func (g *InGraph[V]) Order() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.verts)
}

// Size implements gcore.Graph.
func (g *InGraph[V]) Size() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// Tail implements gcore.Graph.
func (g *InGraph[V]) Tail(e InEdge[V]) InVert[V] {
	if e.IsNull() {
		return InVert[V]{}
	}
	return e.Node().tail
}

// Head implements gcore.Graph.
func (g *InGraph[V]) Head(e InEdge[V]) InVert[V] {
	if e.IsNull() {
		return InVert[V]{}
	}
	return e.Node().head
}

// InEdges implements gcore.InAdjacency.
func (g *InGraph[V]) InEdges(v InVert[V]) []InEdge[V] {
	if v.IsNull() {
		return nil
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]InEdge[V], 0, len(v.Node().in))
	for e := range v.Node().in {
		out = append(out, e)
	}
	return out
}

// InDegree implements gcore.InAdjacency.
func (g *InGraph[V]) InDegree(v InVert[V]) int {
	if v.IsNull() {
		return 0
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(v.Node().in)
}

// Payload returns the payload stored for v, the zero value for a null
// handle.
func (g *InGraph[V]) Payload(v InVert[V]) V {
	if v.IsNull() {
		var zero V
		return zero
	}
	return v.Node().payload
}

// SetPayload overwrites the payload stored for v.
func (g *InGraph[V]) SetPayload(v InVert[V], payload V) {
	if !v.IsNull() {
		v.Node().payload = payload
	}
}

// InsertVert returns a fresh, non-null vertex carrying payload.
func (g *InGraph[V]) InsertVert(payload V) InVert[V] {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	id := g.vertBirth
	g.vertBirth++
	v := handle.NewRef(id, &inVertexNode[V]{payload: payload, in: make(map[InEdge[V]]struct{})})
	g.verts[v] = struct{}{}
	return v
}

// InsertEdge returns a fresh, non-null edge from tail to head.
// Precondition: both endpoints are live vertices of g.
func (g *InGraph[V]) InsertEdge(tail, head InVert[V]) (InEdge[V], error) {
	g.muVert.RLock()
	_, tailLive := g.verts[tail]
	_, headLive := g.verts[head]
	g.muVert.RUnlock()
	if !tailLive || !headLive {
		return InEdge[V]{}, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	id := g.edgeBirth
	g.edgeBirth++
	e := handle.NewRef(id, &inEdgeNode[V]{tail: tail, head: head})
	g.edges[e] = struct{}{}
	head.Node().in[e] = struct{}{}
	return e, nil
}

// EraseVert implements gcore.MutableGraph. Precondition: no live edge
// has v as its tail (cokey), except a self-loop. v's own key-side
// (incoming) edges, including a self-loop, are swept away as part of
// the call — mirroring original_source/include/graph/impl/
// Adjacency_list.hpp's erase_vert, which decrements _esize by
// _degree(v) before erasing v itself, and ground-truthed by
// original_source/test/Adjacency_list.cpp's self-edge/tail-erase cases
// asserting size()==0 with no prior erase_edge call.
func (g *InGraph[V]) EraseVert(v InVert[V]) error {
	g.muEdge.RLock()
	for e := range g.edges {
		n := e.Node()
		if n.tail == v && n.head != v {
			g.muEdge.RUnlock()
			return gcore.Wrapf(gcore.ErrPreconditionUnmet, "EraseVert: vertex still has an outgoing edge")
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

	g.muEdge.Lock()
	own := v.Node().in
	erased := make([]InEdge[V], 0, len(own))
	for e := range own {
		delete(g.edges, e)
		erased = append(erased, e)
	}
	v.Node().in = make(map[InEdge[V]]struct{})
	g.muEdge.Unlock()

	for _, e := range erased {
		g.edgeTracker.Erase(e)
	}
	g.vertTracker.Erase(v)
	return nil
}

// EraseEdge implements gcore.MutableGraph.
func (g *InGraph[V]) EraseEdge(e InEdge[V]) error {
	g.muEdge.Lock()
	if _, ok := g.edges[e]; !ok {
		g.muEdge.Unlock()
		return gcore.Wrapf(gcore.ErrEdgeNotFound, "EraseEdge")
	}
	delete(g.edges, e)
	delete(e.Node().head.Node().in, e)
	g.muEdge.Unlock()

	g.edgeTracker.Erase(e)
	return nil
}

// Clear implements gcore.MutableGraph.
func (g *InGraph[V]) Clear() {
	g.muVert.Lock()
	g.verts = make(map[InVert[V]]struct{})
	g.vertBirth = 0
	g.muVert.Unlock()

	g.muEdge.Lock()
	g.edges = make(map[InEdge[V]]struct{})
	g.edgeBirth = 0
	g.muEdge.Unlock()

	g.vertTracker.Clear()
	g.edgeTracker.Clear()
}

var (
	_ gcore.Graph[InVert[int], InEdge[int]]        = (*InGraph[int])(nil)
	_ gcore.InAdjacency[InVert[int], InEdge[int]]  = (*InGraph[int])(nil)
	_ gcore.MutableGraph[InVert[int], InEdge[int]] = (*InGraph[int])(nil)
)
