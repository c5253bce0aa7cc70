package adjlist

import (
	"sync"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/gtrack"
	"github.com/nodeforge/graphkit/handle"
)

type outVertexNode[V any] struct {
	payload V
	out     map[OutEdge[V]]struct{}
}

type outEdgeNode[V any] struct {
	tail, head OutVert[V]
}

// OutVert is OutGraph's vertex handle.
type OutVert[V any] = handle.Ref[outVertexNode[V]]

// OutEdge is OutGraph's edge handle.
type OutEdge[V any] = handle.Ref[outEdgeNode[V]]

// OutGraph is the out-adjacency-list representation: every vertex
// tracks its own outgoing edges, so OutEdges/OutDegree run in
// O(out-degree) rather than scanning the whole graph.
type OutGraph[V any] struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertBirth uint64
	edgeBirth uint64

	verts map[OutVert[V]]struct{}
	edges map[OutEdge[V]]struct{}

	vertTracker *gtrack.Tracker[OutVert[V]]
	edgeTracker *gtrack.Tracker[OutEdge[V]]
}

// NewOut returns an empty out-adjacency-list graph.
func NewOut[V any]() *OutGraph[V] {
	return &OutGraph[V]{
		verts:       make(map[OutVert[V]]struct{}),
		edges:       make(map[OutEdge[V]]struct{}),
		vertTracker: gtrack.New[OutVert[V]](),
		edgeTracker: gtrack.New[OutEdge[V]](),
	}
}

// VertTracker returns the tracker persistent vertex side containers
// subscribe to.
func (g *OutGraph[V]) VertTracker() *gtrack.Tracker[OutVert[V]] { return g.vertTracker }

// EdgeTracker returns the tracker persistent edge side containers
// subscribe to.
func (g *OutGraph[V]) EdgeTracker() *gtrack.Tracker[OutEdge[V]] { return g.edgeTracker }

// NullVert implements gcore.Graph.
func (g *OutGraph[V]) NullVert() OutVert[V] { return OutVert[V]{} }

// NullEdge implements gcore.Graph.
func (g *OutGraph[V]) NullEdge() OutEdge[V] { return OutEdge[V]{} }

// Verts implements gcore.Graph.
func (g *OutGraph[V]) Verts() []OutVert[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]OutVert[V], 0, len(g.verts))
	for v := range g.verts {
		out = append(out, v)
	}
	return out
}

// Edges implements gcore.Graph.
func (g *OutGraph[V]) Edges() []OutEdge[V] {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]OutEdge[V], 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Order implements gcore.Graph.
func (g *OutGraph[V]) Order() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.verts)
}

// Size implements gcore.Graph.
func (g *OutGraph[V]) Size() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// Tail implements gcore.Graph.
func (g *OutGraph[V]) Tail(e OutEdge[V]) OutVert[V] {
	if e.IsNull() {
		return OutVert[V]{}
	}
	return e.Node().tail
}

// Head implements gcore.Graph.
func (g *OutGraph[V]) Head(e OutEdge[V]) OutVert[V] {
	if e.IsNull() {
		return OutVert[V]{}
	}
	return e.Node().head
}

// OutEdges implements gcore.OutAdjacency.
func (g *OutGraph[V]) OutEdges(v OutVert[V]) []OutEdge[V] {
	if v.IsNull() {
		return nil
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]OutEdge[V], 0, len(v.Node().out))
	for e := range v.Node().out {
		out = append(out, e)
	}
	return out
}

// OutDegree implements gcore.OutAdjacency.
func (g *OutGraph[V]) OutDegree(v OutVert[V]) int {
	if v.IsNull() {
		return 0
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(v.Node().out)
}

// Payload returns the payload stored for v, the zero value for a null
// handle.
func (g *OutGraph[V]) Payload(v OutVert[V]) V {
	if v.IsNull() {
		var zero V
		return zero
	}
	return v.Node().payload
}

// SetPayload overwrites the payload stored for v.
func (g *OutGraph[V]) SetPayload(v OutVert[V], payload V) {
	if !v.IsNull() {
		v.Node().payload = payload
	}
}

// InsertVert returns a fresh, non-null vertex carrying payload.
func (g *OutGraph[V]) InsertVert(payload V) OutVert[V] {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	id := g.vertBirth
	g.vertBirth++
	v := handle.NewRef(id, &outVertexNode[V]{payload: payload, out: make(map[OutEdge[V]]struct{})})
	g.verts[v] = struct{}{}
	return v
}

// InsertEdge returns a fresh, non-null edge from tail to head.
// Precondition: both endpoints are live vertices of g.
func (g *OutGraph[V]) InsertEdge(tail, head OutVert[V]) (OutEdge[V], error) {
	g.muVert.RLock()
	_, tailLive := g.verts[tail]
	_, headLive := g.verts[head]
	g.muVert.RUnlock()
	if !tailLive || !headLive {
		return OutEdge[V]{}, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	id := g.edgeBirth
	g.edgeBirth++
	e := handle.NewRef(id, &outEdgeNode[V]{tail: tail, head: head})
	g.edges[e] = struct{}{}
	tail.Node().out[e] = struct{}{}
	return e, nil
}

// EraseVert implements gcore.MutableGraph. Precondition: no live edge
// has v as its head (cokey), except a self-loop. v's own key-side
// (outgoing) edges, including a self-loop, are swept away as part of
// the call — mirroring original_source/include/graph/impl/
// Adjacency_list.hpp's erase_vert, which decrements _esize by
// _degree(v) before erasing v itself, and ground-truthed by
// original_source/test/Adjacency_list.cpp's self-edge/tail-erase cases
// asserting size()==0 with no prior erase_edge call.
func (g *OutGraph[V]) EraseVert(v OutVert[V]) error {
	g.muEdge.RLock()
	for e := range g.edges {
		n := e.Node()
		if n.head == v && n.tail != v {
			g.muEdge.RUnlock()
			return gcore.Wrapf(gcore.ErrPreconditionUnmet, "EraseVert: vertex still has an incoming edge")
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
	own := v.Node().out
	erased := make([]OutEdge[V], 0, len(own))
	for e := range own {
		delete(g.edges, e)
		erased = append(erased, e)
	}
	v.Node().out = make(map[OutEdge[V]]struct{})
	g.muEdge.Unlock()

	for _, e := range erased {
		g.edgeTracker.Erase(e)
	}
	g.vertTracker.Erase(v)
	return nil
}

// EraseEdge implements gcore.MutableGraph.
func (g *OutGraph[V]) EraseEdge(e OutEdge[V]) error {
	g.muEdge.Lock()
	if _, ok := g.edges[e]; !ok {
		g.muEdge.Unlock()
		return gcore.Wrapf(gcore.ErrEdgeNotFound, "EraseEdge")
	}
	delete(g.edges, e)
	delete(e.Node().tail.Node().out, e)
	g.muEdge.Unlock()

	g.edgeTracker.Erase(e)
	return nil
}

// Clear implements gcore.MutableGraph.
func (g *OutGraph[V]) Clear() {
	g.muVert.Lock()
	g.verts = make(map[OutVert[V]]struct{})
	g.vertBirth = 0
	g.muVert.Unlock()

	g.muEdge.Lock()
	g.edges = make(map[OutEdge[V]]struct{})
	g.edgeBirth = 0
	g.muEdge.Unlock()

	g.vertTracker.Clear()
	g.edgeTracker.Clear()
}

var (
	_ gcore.Graph[OutVert[int], OutEdge[int]]         = (*OutGraph[int])(nil)
	_ gcore.OutAdjacency[OutVert[int], OutEdge[int]]  = (*OutGraph[int])(nil)
	_ gcore.MutableGraph[OutVert[int], OutEdge[int]]  = (*OutGraph[int])(nil)
)
