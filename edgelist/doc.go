// Package edgelist implements the plain edge-list storage
// representation: a flat catalog of vertices and a flat catalog of
// edges, each edge a pair of vertex handles. It supports removal of
// either kind but no concurrent insertion (compare atomiclist) and no
// adjacency traversal (compare adjlist) — callers needing out/in edge
// enumeration should reach for adjlist instead.
//
// Grounded on the source's Vert_list.hpp + Edge_list.hpp pairing: a
// Vert_list base providing the vertex catalog, with Edge_list adding
// the edge catalog on top. Handles are handle.Ref (pointer + birth
// index), collapsing the source's map_iterator_wrapper handle kind
// into this port's one removal-capable handle family.
//
// Locking follows the teacher's core.Graph split: one sync.RWMutex for
// the vertex catalog, one for the edge catalog, never held together.
package edgelist

import "github.com/nodeforge/graphkit/handle"

// vertexNode is the heap node a Vert handle points to; it outlives
// removal from the live set only as long as some handle still
// references it (Go's GC, not an arena, reclaims it once unreachable).
type vertexNode[V any] struct {
	payload V
}

// edgeNode is the heap node an Edge handle points to.
type edgeNode[V any] struct {
	tail, head handle.Ref[vertexNode[V]]
}

// Vert is this representation's vertex handle.
type Vert[V any] = handle.Ref[vertexNode[V]]

// Edge is this representation's edge handle.
type Edge[V any] = handle.Ref[edgeNode[V]]
