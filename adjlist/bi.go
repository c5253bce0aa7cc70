package adjlist

import (
	"sync"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/gtrack"
	"github.com/nodeforge/graphkit/handle"
)

type biVertexNode[V any] struct {
	payload V
	out     map[BiEdge[V]]struct{}
	in      map[BiEdge[V]]struct{}
}

type biEdgeNode[V any] struct {
	tail, head BiVert[V]
}

// BiVert is BiGraph's vertex handle.
type BiVert[V any] = handle.Ref[biVertexNode[V]]

// BiEdge is BiGraph's edge handle.
type BiEdge[V any] = handle.Ref[biEdgeNode[V]]

// BiGraph is the bi-adjacency-list representation: every vertex tracks
// both its outgoing and incoming edge sets. Unlike OutGraph/InGraph,
// EraseVert never rejects on a live cokey edge — it cascades, removing
// every incident edge first.
type BiGraph[V any] struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertBirth uint64
	edgeBirth uint64

	verts map[BiVert[V]]struct{}
	edges map[BiEdge[V]]struct{}

	vertTracker *gtrack.Tracker[BiVert[V]]
	edgeTracker *gtrack.Tracker[BiEdge[V]]
}

// NewBi returns an empty bi-adjacency-list graph.
func NewBi[V any]() *BiGraph[V] {
	return &BiGraph[V]{
		verts:       make(map[BiVert[V]]struct{}),
		edges:       make(map[BiEdge[V]]struct{}),
		vertTracker: gtrack.New[BiVert[V]](),
		edgeTracker: gtrack.New[BiEdge[V]](),
	}
}

// VertTracker returns the tracker persistent vertex side containers
// subscribe to.
func (g *BiGraph[V]) VertTracker() *gtrack.Tracker[BiVert[V]] { return g.vertTracker }

// EdgeTracker returns the tracker persistent edge side containers
// subscribe to.
func (g *BiGraph[V]) EdgeTracker() *gtrack.Tracker[BiEdge[V]] { return g.edgeTracker }

// NullVert implements gcore.Graph.
func (g *BiGraph[V]) NullVert() BiVert[V] { return BiVert[V]{} }

// NullEdge implements gcore.Graph.
func (g *BiGraph[V]) NullEdge() BiEdge[V] { return BiEdge[V]{} }

// Verts implements gcore.Graph.
func (g *BiGraph[V]) Verts() []BiVert[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]BiVert[V], 0, len(g.verts))
	for v := range g.verts {
		out = append(out, v)
	}
	return out
}

// Edges implements gcore.Graph.
func (g *BiGraph[V]) Edges() []BiEdge[V] {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]BiEdge[V], 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	return out
}

// Order implements gcore.Graph.
func (g *BiGraph[V]) Order() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.verts)
}

// Size implements gcore.Graph.
func (g *BiGraph[V]) Size() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// Tail implements gcore.Graph.
func (g *BiGraph[V]) Tail(e BiEdge[V]) BiVert[V] {
	if e.IsNull() {
		return BiVert[V]{}
	}
	return e.Node().tail
}

// Head implements gcore.Graph.
func (g *BiGraph[V]) Head(e BiEdge[V]) BiVert[V] {
	if e.IsNull() {
		return BiVert[V]{}
	}
	return e.Node().head
}

// OutEdges implements gcore.OutAdjacency.
func (g *BiGraph[V]) OutEdges(v BiVert[V]) []BiEdge[V] {
	if v.IsNull() {
		return nil
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]BiEdge[V], 0, len(v.Node().out))
	for e := range v.Node().out {
		out = append(out, e)
	}
	return out
}

// OutDegree implements gcore.OutAdjacency.
func (g *BiGraph[V]) OutDegree(v BiVert[V]) int {
	if v.IsNull() {
		return 0
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(v.Node().out)
}

// InEdges implements gcore.InAdjacency.
func (g *BiGraph[V]) InEdges(v BiVert[V]) []BiEdge[V] {
	if v.IsNull() {
		return nil
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]BiEdge[V], 0, len(v.Node().in))
	for e := range v.Node().in {
		out = append(out, e)
	}
	return out
}

// InDegree implements gcore.InAdjacency.
func (g *BiGraph[V]) InDegree(v BiVert[V]) int {
	if v.IsNull() {
		return 0
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(v.Node().in)
}

// Payload returns the payload stored for v, the zero value for a null
// handle.
func (g *BiGraph[V]) Payload(v BiVert[V]) V {
	if v.IsNull() {
		var zero V
		return zero
	}
	return v.Node().payload
}

// SetPayload overwrites the payload stored for v.
func (g *BiGraph[V]) SetPayload(v BiVert[V], payload V) {
	if !v.IsNull() {
		v.Node().payload = payload
	}
}

// InsertVert returns a fresh, non-null vertex carrying payload.
func (g *BiGraph[V]) InsertVert(payload V) BiVert[V] {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	id := g.vertBirth
	g.vertBirth++
	v := handle.NewRef(id, &biVertexNode[V]{
		payload: payload,
		out:     make(map[BiEdge[V]]struct{}),
		in:      make(map[BiEdge[V]]struct{}),
	})
	g.verts[v] = struct{}{}
	return v
}

// InsertEdge returns a fresh, non-null edge from tail to head.
// Precondition: both endpoints are live vertices of g.
func (g *BiGraph[V]) InsertEdge(tail, head BiVert[V]) (BiEdge[V], error) {
	g.muVert.RLock()
	_, tailLive := g.verts[tail]
	_, headLive := g.verts[head]
	g.muVert.RUnlock()
	if !tailLive || !headLive {
		return BiEdge[V]{}, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	id := g.edgeBirth
	g.edgeBirth++
	e := handle.NewRef(id, &biEdgeNode[V]{tail: tail, head: head})
	g.edges[e] = struct{}{}
	tail.Node().out[e] = struct{}{}
	head.Node().in[e] = struct{}{}
	return e, nil
}

// eraseEdgeLocked removes e from the graph's edge set and from both
// endpoints' adjacency sets. Callers must hold muEdge for writing.
func (g *BiGraph[V]) eraseEdgeLocked(e BiEdge[V]) {
	n := e.Node()
	delete(g.edges, e)
	delete(n.tail.Node().out, e)
	delete(n.head.Node().in, e)
}

// EraseVert implements gcore.MutableGraph. Unlike OutGraph/InGraph,
// there is no precondition: every incident edge is removed first (a
// self-loop counted once), then the vertex itself.
func (g *BiGraph[V]) EraseVert(v BiVert[V]) error {
	g.muVert.RLock()
	_, live := g.verts[v]
	g.muVert.RUnlock()
	if !live {
		return gcore.Wrapf(gcore.ErrVertexNotFound, "EraseVert")
	}

	g.muEdge.Lock()
	incident := make(map[BiEdge[V]]struct{}, len(v.Node().out)+len(v.Node().in))
	for e := range v.Node().out {
		incident[e] = struct{}{}
	}
	for e := range v.Node().in {
		incident[e] = struct{}{}
	}
	erased := make([]BiEdge[V], 0, len(incident))
	for e := range incident {
		g.eraseEdgeLocked(e)
		erased = append(erased, e)
	}
	g.muEdge.Unlock()

	for _, e := range erased {
		g.edgeTracker.Erase(e)
	}

	g.muVert.Lock()
	delete(g.verts, v)
	g.muVert.Unlock()

	g.vertTracker.Erase(v)
	return nil
}

// EraseEdge implements gcore.MutableGraph.
func (g *BiGraph[V]) EraseEdge(e BiEdge[V]) error {
	g.muEdge.Lock()
	if _, ok := g.edges[e]; !ok {
		g.muEdge.Unlock()
		return gcore.Wrapf(gcore.ErrEdgeNotFound, "EraseEdge")
	}
	g.eraseEdgeLocked(e)
	g.muEdge.Unlock()

	g.edgeTracker.Erase(e)
	return nil
}

// Clear implements gcore.MutableGraph.
func (g *BiGraph[V]) Clear() {
	g.muVert.Lock()
	g.verts = make(map[BiVert[V]]struct{})
	g.vertBirth = 0
	g.muVert.Unlock()

	g.muEdge.Lock()
	g.edges = make(map[BiEdge[V]]struct{})
	g.edgeBirth = 0
	g.muEdge.Unlock()

	g.vertTracker.Clear()
	g.edgeTracker.Clear()
}

var (
	_ gcore.Graph[BiVert[int], BiEdge[int]]        = (*BiGraph[int])(nil)
	_ gcore.BiEdgeGraph[BiVert[int], BiEdge[int]]   = (*BiGraph[int])(nil)
	_ gcore.MutableGraph[BiVert[int], BiEdge[int]] = (*BiGraph[int])(nil)
)
