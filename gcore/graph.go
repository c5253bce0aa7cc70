package gcore

// Graph is the contract every storage representation satisfies: a set
// of vertices and edges, each edge's endpoints, and the distinguished
// null handles. Verts/Edges return snapshots (slices), matching the
// teacher's Vertices()/Neighbors() style rather than a lazy iterator —
// graphkit's representations hold their catalogs in maps or slices
// already sized for a single allocation per call.
type Graph[V, E comparable] interface {
	// NullVert returns the reserved sentinel no live vertex equals.
	NullVert() V
	// NullEdge returns the reserved sentinel no live edge equals.
	NullEdge() E
	// Verts returns every live vertex, in representation-defined order.
	Verts() []V
	// Edges returns every live edge, in representation-defined order.
	Edges() []E
	// Order returns len(Verts()) without materializing it.
	Order() int
	// Size returns len(Edges()) without materializing it.
	Size() int
	// Tail returns e's source endpoint.
	Tail(e E) V
	// Head returns e's destination endpoint.
	Head(e E) V
}

// OutAdjacency is implemented by representations that can enumerate a
// vertex's outgoing edges in O(degree).
type OutAdjacency[V, E comparable] interface {
	Graph[V, E]
	// OutEdges returns the live edges with Tail(e) == v.
	OutEdges(v V) []E
	// OutDegree returns len(OutEdges(v)).
	OutDegree(v V) int
}

// InAdjacency is implemented by representations that can enumerate a
// vertex's incoming edges in O(degree).
type InAdjacency[V, E comparable] interface {
	Graph[V, E]
	// InEdges returns the live edges with Head(e) == v.
	InEdges(v V) []E
	// InDegree returns len(InEdges(v)).
	InDegree(v V) int
}

// BiEdgeGraph is implemented by representations that maintain both
// adjacency directions (only adjlist.BiGraph, and views composed over
// one). It is nothing more than OutAdjacency and InAdjacency together
// — capability composition in place of the source's multiple
// inheritance of Out_edge_graph/In_edge_graph.
type BiEdgeGraph[V, E comparable] interface {
	OutAdjacency[V, E]
	InAdjacency[V, E]
}

// MutableGraph is implemented by every removal-capable representation
// (edgelist, adjlist):
// structural removal that does not depend on a payload type, so it can
// live at the handle level. Insertion is representation-specific
// (payload-typed) and therefore declared on the concrete representation
// types, not here.
type MutableGraph[V, E comparable] interface {
	Graph[V, E]
	// EraseVert removes v. Precondition: v has no live cokey edge
	// (no incoming edge for an out representation, no outgoing for an
	// in representation); violation is ErrPreconditionUnmet when checks
	// are enabled.
	EraseVert(v V) error
	// EraseEdge removes e and notifies every tracked side container.
	EraseEdge(e E) error
	// Clear removes every vertex and edge and notifies every tracked
	// side container via the tracker's Clear broadcast.
	Clear()
}

// AtomicGraph is implemented by the two lock-free representations.
// AtomicInsertVert/AtomicInsertEdge may be called from many goroutines
// concurrently; ConservativeOrder/ConservativeSize may under-count a
// concurrent insert but never over-count or return a duplicate handle.
type AtomicGraph[V, E comparable] interface {
	Graph[V, E]
	// AtomicInsertVert returns a fresh, unique vertex handle. Safe for
	// concurrent use.
	AtomicInsertVert() V
	// AtomicInsertEdge returns a fresh, unique edge handle with the
	// given endpoints. Safe for concurrent use. Returns
	// ErrCapacityExceeded on a pre-reserved representation whose
	// capacity is exhausted.
	AtomicInsertEdge(tail, head V) (E, error)
	// ConservativeOrder is Order(), but may briefly under-count a
	// vertex whose insertion is concurrently in flight.
	ConservativeOrder() int
	// ConservativeSize is Size(), but may briefly under-count an edge
	// whose insertion is concurrently in flight.
	ConservativeSize() int
}
