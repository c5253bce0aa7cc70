package atomiclist

import (
	"sync/atomic"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/handle"
)

type vertexNode[V any] struct {
	payload V
	out     atomicList[Edge[V]]
}

type edgeNode[V any] struct {
	tail, head Vert[V]
}

// Vert is AdjacencyList's vertex handle: pointer identity plus a birth
// index, exactly as handle.Ref is used elsewhere, but assigned by an
// atomic counter instead of one guarded by a mutex.
type Vert[V any] = handle.Ref[vertexNode[V]]

// Edge is AdjacencyList's edge handle.
type Edge[V any] = handle.Ref[edgeNode[V]]

// AdjacencyList is the lock-free out-adjacency-list representation:
// AtomicInsertVert/AtomicInsertEdge may be called from any number of
// goroutines without blocking each other, via compare-and-swap pushes
// onto per-vertex and whole-graph linked lists. There is no removal.
type AdjacencyList[V any] struct {
	vertBirth atomic.Uint64
	edgeBirth atomic.Uint64

	verts atomicList[Vert[V]]
	edges atomicList[Edge[V]]
}

// New returns an empty lock-free adjacency-list graph.
func New[V any]() *AdjacencyList[V] { return &AdjacencyList[V]{} }

// NullVert implements gcore.Graph.
func (g *AdjacencyList[V]) NullVert() Vert[V] { return Vert[V]{} }

// NullEdge implements gcore.Graph.
func (g *AdjacencyList[V]) NullEdge() Edge[V] { return Edge[V]{} }

// Verts implements gcore.Graph. The snapshot may miss a vertex whose
// insertion is concurrently in flight.
func (g *AdjacencyList[V]) Verts() []Vert[V] { return g.verts.values() }

// Edges implements gcore.Graph. The snapshot may miss an edge whose
// insertion is concurrently in flight.
func (g *AdjacencyList[V]) Edges() []Edge[V] { return g.edges.values() }

// Order implements gcore.Graph; equivalent to ConservativeOrder.
func (g *AdjacencyList[V]) Order() int { return g.verts.conservativeSize() }

// Size implements gcore.Graph; equivalent to ConservativeSize.
func (g *AdjacencyList[V]) Size() int { return g.edges.conservativeSize() }

// ConservativeOrder implements gcore.AtomicGraph.
func (g *AdjacencyList[V]) ConservativeOrder() int { return g.verts.conservativeSize() }

// ConservativeSize implements gcore.AtomicGraph.
func (g *AdjacencyList[V]) ConservativeSize() int { return g.edges.conservativeSize() }

// Tail implements gcore.Graph.
func (g *AdjacencyList[V]) Tail(e Edge[V]) Vert[V] {
	if e.IsNull() {
		return Vert[V]{}
	}
	return e.Node().tail
}

// Head implements gcore.Graph.
func (g *AdjacencyList[V]) Head(e Edge[V]) Vert[V] {
	if e.IsNull() {
		return Vert[V]{}
	}
	return e.Node().head
}

// OutEdges implements gcore.OutAdjacency.
func (g *AdjacencyList[V]) OutEdges(v Vert[V]) []Edge[V] {
	if v.IsNull() {
		return nil
	}
	return v.Node().out.values()
}

// OutDegree implements gcore.OutAdjacency.
func (g *AdjacencyList[V]) OutDegree(v Vert[V]) int {
	if v.IsNull() {
		return 0
	}
	return v.Node().out.conservativeSize()
}

// Payload returns the payload stored for v, the zero value for a null
// handle. Unlike AtomicInsertVert/AtomicInsertEdge, Payload/SetPayload
// are not safe against a concurrent SetPayload to the same vertex —
// callers that set payload across goroutines must supply their own
// synchronization, exactly as the source leaves vert_map population to
// the caller.
func (g *AdjacencyList[V]) Payload(v Vert[V]) V {
	if v.IsNull() {
		var zero V
		return zero
	}
	return v.Node().payload
}

// SetPayload overwrites the payload stored for v. See Payload's
// synchronization note.
func (g *AdjacencyList[V]) SetPayload(v Vert[V], payload V) {
	if !v.IsNull() {
		v.Node().payload = payload
	}
}

// AtomicInsertVert implements gcore.AtomicGraph. Safe for concurrent
// use; the returned vertex carries the zero value of V until SetPayload
// is called.
func (g *AdjacencyList[V]) AtomicInsertVert() Vert[V] {
	id := g.vertBirth.Add(1) - 1
	v := handle.NewRef(id, &vertexNode[V]{})
	g.verts.push(v)
	return v
}

// AtomicInsertEdge implements gcore.AtomicGraph. Safe for concurrent
// use, including concurrent calls sharing a tail. Precondition:
// neither endpoint is the null vertex.
func (g *AdjacencyList[V]) AtomicInsertEdge(tail, head Vert[V]) (Edge[V], error) {
	if tail.IsNull() || head.IsNull() {
		return Edge[V]{}, gcore.Wrapf(gcore.ErrPreconditionUnmet, "AtomicInsertEdge: endpoint is the null vertex")
	}
	id := g.edgeBirth.Add(1) - 1
	e := handle.NewRef(id, &edgeNode[V]{tail: tail, head: head})
	g.edges.push(e)
	tail.Node().out.push(e)
	return e, nil
}

var (
	_ gcore.Graph[Vert[int], Edge[int]]        = (*AdjacencyList[int])(nil)
	_ gcore.OutAdjacency[Vert[int], Edge[int]] = (*AdjacencyList[int])(nil)
	_ gcore.AtomicGraph[Vert[int], Edge[int]]  = (*AdjacencyList[int])(nil)
)
