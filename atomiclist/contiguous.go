package atomiclist

import (
	"sync"
	"sync/atomic"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/handle"
)

type contiguousEdgeRec struct {
	tail, head handle.Int
}

// ContiguousAdjacencyList is the pre-reserved out-adjacency-list
// representation: ReserveVerts/ReserveEdges grow fixed-capacity slices
// up front, then
// AtomicInsertVert/AtomicInsertEdge advance atomic cursors into them
// without locking or further allocation, trading the unbounded growth
// of AdjacencyList for contiguous, cache-friendly storage.
//
// ReserveVerts/ReserveEdges must not race with
// AtomicInsertVert/AtomicInsertEdge; the
// intended usage is to reserve capacity once, then insert
// concurrently, exactly as the source's reserve_verts/reserve_edges do.
type ContiguousAdjacencyList[V any] struct {
	mu sync.Mutex

	vertCapacity int
	edgeCapacity int

	vlast atomic.Uint64
	elast atomic.Uint64

	vertData    []V
	outLists    []atomicList[handle.Int]
	edgeRecords []contiguousEdgeRec
}

// NewContiguous returns an empty pre-reserved adjacency-list graph.
// Call ReserveVerts/ReserveEdges before any insert.
func NewContiguous[V any]() *ContiguousAdjacencyList[V] { return &ContiguousAdjacencyList[V]{} }

// VertCapacity returns the number of vertex slots currently reserved.
func (g *ContiguousAdjacencyList[V]) VertCapacity() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.vertCapacity
}

// EdgeCapacity returns the number of edge slots currently reserved.
func (g *ContiguousAdjacencyList[V]) EdgeCapacity() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.edgeCapacity
}

// ReserveVerts grows vertex capacity to at least capacity, never
// shrinking it.
func (g *ContiguousAdjacencyList[V]) ReserveVerts(capacity int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if capacity <= g.vertCapacity {
		return
	}
	grownData := make([]V, capacity)
	copy(grownData, g.vertData)
	g.vertData = grownData

	grownOut := make([]atomicList[handle.Int], capacity)
	copy(grownOut, g.outLists)
	g.outLists = grownOut

	g.vertCapacity = capacity
}

// ReserveEdges grows edge capacity to at least capacity, never
// shrinking it.
func (g *ContiguousAdjacencyList[V]) ReserveEdges(capacity int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if capacity <= g.edgeCapacity {
		return
	}
	grown := make([]contiguousEdgeRec, capacity)
	copy(grown, g.edgeRecords)
	g.edgeRecords = grown
	g.edgeCapacity = capacity
}

// NullVert implements gcore.Graph.
func (g *ContiguousAdjacencyList[V]) NullVert() handle.Int { return handle.NullInt }

// NullEdge implements gcore.Graph.
func (g *ContiguousAdjacencyList[V]) NullEdge() handle.Int { return handle.NullInt }

// Verts implements gcore.Graph.
func (g *ContiguousAdjacencyList[V]) Verts() []handle.Int {
	n := int(g.vlast.Load())
	out := make([]handle.Int, n)
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

// Edges implements gcore.Graph.
func (g *ContiguousAdjacencyList[V]) Edges() []handle.Int {
	n := int(g.elast.Load())
	out := make([]handle.Int, n)
	for i := range out {
		out[i] = handle.Int(i)
	}
	return out
}

// Order implements gcore.Graph; equivalent to ConservativeOrder.
func (g *ContiguousAdjacencyList[V]) Order() int { return int(g.vlast.Load()) }

// Size implements gcore.Graph; equivalent to ConservativeSize.
func (g *ContiguousAdjacencyList[V]) Size() int { return int(g.elast.Load()) }

// ConservativeOrder implements gcore.AtomicGraph.
func (g *ContiguousAdjacencyList[V]) ConservativeOrder() int { return int(g.vlast.Load()) }

// ConservativeSize implements gcore.AtomicGraph.
func (g *ContiguousAdjacencyList[V]) ConservativeSize() int { return int(g.elast.Load()) }

// Tail implements gcore.Graph.
func (g *ContiguousAdjacencyList[V]) Tail(e handle.Int) handle.Int {
	if e.IsNull() || int(e) >= int(g.elast.Load()) {
		return handle.NullInt
	}
	return g.edgeRecords[e].tail
}

// Head implements gcore.Graph.
func (g *ContiguousAdjacencyList[V]) Head(e handle.Int) handle.Int {
	if e.IsNull() || int(e) >= int(g.elast.Load()) {
		return handle.NullInt
	}
	return g.edgeRecords[e].head
}

// OutEdges implements gcore.OutAdjacency.
func (g *ContiguousAdjacencyList[V]) OutEdges(v handle.Int) []handle.Int {
	if v.IsNull() || int(v) >= len(g.outLists) {
		return nil
	}
	return g.outLists[v].values()
}

// OutDegree implements gcore.OutAdjacency.
func (g *ContiguousAdjacencyList[V]) OutDegree(v handle.Int) int {
	if v.IsNull() || int(v) >= len(g.outLists) {
		return 0
	}
	return g.outLists[v].conservativeSize()
}

// Payload returns the payload stored for v, the zero value out of
// range.
func (g *ContiguousAdjacencyList[V]) Payload(v handle.Int) V {
	if v.IsNull() || int(v) >= len(g.vertData) {
		var zero V
		return zero
	}
	return g.vertData[v]
}

// SetPayload overwrites the payload stored for v. Safe for concurrent
// use across distinct v, since each vertex owns a disjoint slot in a
// slice whose header is fixed once ReserveVerts stops being called.
func (g *ContiguousAdjacencyList[V]) SetPayload(v handle.Int, payload V) {
	if !v.IsNull() && int(v) < len(g.vertData) {
		g.vertData[v] = payload
	}
}

// AtomicInsertVert implements gcore.AtomicGraph. Panics if reserved
// vertex capacity is exhausted, mirroring the source's
// check_precondition abort: the interface gives AtomicInsertVert no
// error channel to report exhaustion through.
func (g *ContiguousAdjacencyList[V]) AtomicInsertVert() handle.Int {
	vk := g.vlast.Add(1) - 1
	if int(vk) >= g.vertCapacity {
		panic("atomiclist: insufficient vertex capacity; call ReserveVerts first")
	}
	return handle.Int(vk)
}

// AtomicInsertEdge implements gcore.AtomicGraph. Returns
// ErrCapacityExceeded if reserved edge capacity is exhausted.
func (g *ContiguousAdjacencyList[V]) AtomicInsertEdge(tail, head handle.Int) (handle.Int, error) {
	ek := g.elast.Add(1) - 1
	if int(ek) >= g.edgeCapacity {
		return handle.NullInt, gcore.Wrapf(gcore.ErrCapacityExceeded, "AtomicInsertEdge: insufficient edge capacity")
	}
	g.edgeRecords[ek] = contiguousEdgeRec{tail: tail, head: head}
	e := handle.Int(ek)
	if !tail.IsNull() && int(tail) < len(g.outLists) {
		g.outLists[tail].push(e)
	}
	return e, nil
}

var (
	_ gcore.Graph[handle.Int, handle.Int]        = (*ContiguousAdjacencyList[int])(nil)
	_ gcore.OutAdjacency[handle.Int, handle.Int] = (*ContiguousAdjacencyList[int])(nil)
	_ gcore.AtomicGraph[handle.Int, handle.Int]  = (*ContiguousAdjacencyList[int])(nil)
)
