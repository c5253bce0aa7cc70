package stablelist

import (
	"sync"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/handle"
)

// OutAdjacencyList is the no-removal out-adjacency-list representation:
// like EdgeList, but also maintains a per-vertex multimap of outgoing
// edges so OutEdges/OutDegree avoid a full edge scan.
type OutAdjacencyList[V any] struct {
	mu       sync.RWMutex
	vertData []V
	edges    []edgeRec
	out      map[handle.Int][]handle.Int
}

// NewOutAdjacencyList returns an empty stable out-adjacency-list graph.
func NewOutAdjacencyList[V any]() *OutAdjacencyList[V] {
	return &OutAdjacencyList[V]{out: make(map[handle.Int][]handle.Int)}
}

func (g *OutAdjacencyList[V]) NullVert() handle.Int { return handle.NullInt }
func (g *OutAdjacencyList[V]) NullEdge() handle.Int { return handle.NullInt }

func (g *OutAdjacencyList[V]) Verts() []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]handle.Int, len(g.vertData))
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

func (g *OutAdjacencyList[V]) Edges() []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]handle.Int, len(g.edges))
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

func (g *OutAdjacencyList[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertData)
}

func (g *OutAdjacencyList[V]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

func (g *OutAdjacencyList[V]) Tail(e handle.Int) handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e.IsNull() || int(e) >= len(g.edges) {
		return handle.NullInt
	}
	return g.edges[e].tail
}

func (g *OutAdjacencyList[V]) Head(e handle.Int) handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e.IsNull() || int(e) >= len(g.edges) {
		return handle.NullInt
	}
	return g.edges[e].head
}

// OutEdges implements gcore.OutAdjacency.
func (g *OutAdjacencyList[V]) OutEdges(v handle.Int) []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	es := g.out[v]
	out := make([]handle.Int, len(es))
	copy(out, es)
	return out
}

// OutDegree implements gcore.OutAdjacency.
func (g *OutAdjacencyList[V]) OutDegree(v handle.Int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.out[v])
}

func (g *OutAdjacencyList[V]) Payload(v handle.Int) V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v.IsNull() || int(v) >= len(g.vertData) {
		var zero V
		return zero
	}
	return g.vertData[v]
}

func (g *OutAdjacencyList[V]) SetPayload(v handle.Int, payload V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !v.IsNull() && int(v) < len(g.vertData) {
		g.vertData[v] = payload
	}
}

// InsertVert appends a fresh vertex carrying payload.
func (g *OutAdjacencyList[V]) InsertVert(payload V) handle.Int {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := handle.Int(len(g.vertData))
	g.vertData = append(g.vertData, payload)
	return v
}

// InsertEdge appends a fresh edge and indexes it under tail's out set.
// Precondition: both endpoints are live vertices of g.
func (g *OutAdjacencyList[V]) InsertEdge(tail, head handle.Int) (handle.Int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if tail.IsNull() || head.IsNull() || int(tail) >= len(g.vertData) || int(head) >= len(g.vertData) {
		return handle.NullInt, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}
	e := handle.Int(len(g.edges))
	g.edges = append(g.edges, edgeRec{tail: tail, head: head})
	g.out[tail] = append(g.out[tail], e)
	return e, nil
}

var (
	_ gcore.Graph[handle.Int, handle.Int]          = (*OutAdjacencyList[int])(nil)
	_ gcore.OutAdjacency[handle.Int, handle.Int]   = (*OutAdjacencyList[int])(nil)
)

// InAdjacencyList is the no-removal in-adjacency-list representation:
// the mirror of OutAdjacencyList, indexing edges by head instead of
// tail.
type InAdjacencyList[V any] struct {
	mu       sync.RWMutex
	vertData []V
	edges    []edgeRec
	in       map[handle.Int][]handle.Int
}

// NewInAdjacencyList returns an empty stable in-adjacency-list graph.
func NewInAdjacencyList[V any]() *InAdjacencyList[V] {
	return &InAdjacencyList[V]{in: make(map[handle.Int][]handle.Int)}
}

func (g *InAdjacencyList[V]) NullVert() handle.Int { return handle.NullInt }
func (g *InAdjacencyList[V]) NullEdge() handle.Int { return handle.NullInt }

func (g *InAdjacencyList[V]) Verts() []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]handle.Int, len(g.vertData))
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

func (g *InAdjacencyList[V]) Edges() []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]handle.Int, len(g.edges))
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

func (g *InAdjacencyList[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertData)
}

func (g *InAdjacencyList[V]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

func (g *InAdjacencyList[V]) Tail(e handle.Int) handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e.IsNull() || int(e) >= len(g.edges) {
		return handle.NullInt
	}
	return g.edges[e].tail
}

func (g *InAdjacencyList[V]) Head(e handle.Int) handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e.IsNull() || int(e) >= len(g.edges) {
		return handle.NullInt
	}
	return g.edges[e].head
}

// InEdges implements gcore.InAdjacency.
func (g *InAdjacencyList[V]) InEdges(v handle.Int) []handle.Int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	es := g.in[v]
	out := make([]handle.Int, len(es))
	copy(out, es)
	return out
}

// InDegree implements gcore.InAdjacency.
func (g *InAdjacencyList[V]) InDegree(v handle.Int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.in[v])
}

func (g *InAdjacencyList[V]) Payload(v handle.Int) V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v.IsNull() || int(v) >= len(g.vertData) {
		var zero V
		return zero
	}
	return g.vertData[v]
}

func (g *InAdjacencyList[V]) SetPayload(v handle.Int, payload V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !v.IsNull() && int(v) < len(g.vertData) {
		g.vertData[v] = payload
	}
}

// InsertVert appends a fresh vertex carrying payload.
func (g *InAdjacencyList[V]) InsertVert(payload V) handle.Int {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := handle.Int(len(g.vertData))
	g.vertData = append(g.vertData, payload)
	return v
}

// InsertEdge appends a fresh edge and indexes it under head's in set.
// Precondition: both endpoints are live vertices of g.
func (g *InAdjacencyList[V]) InsertEdge(tail, head handle.Int) (handle.Int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if tail.IsNull() || head.IsNull() || int(tail) >= len(g.vertData) || int(head) >= len(g.vertData) {
		return handle.NullInt, gcore.Wrapf(gcore.ErrPreconditionUnmet, "InsertEdge: endpoint is not a live vertex of this graph")
	}
	e := handle.Int(len(g.edges))
	g.edges = append(g.edges, edgeRec{tail: tail, head: head})
	g.in[head] = append(g.in[head], e)
	return e, nil
}

var (
	_ gcore.Graph[handle.Int, handle.Int]        = (*InAdjacencyList[int])(nil)
	_ gcore.InAdjacency[handle.Int, handle.Int]  = (*InAdjacencyList[int])(nil)
)
