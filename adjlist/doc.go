// Package adjlist implements the adjacency-list storage
// representations: OutGraph keeps, per vertex, the set of edges whose
// tail it is; InGraph keeps the set of edges whose head it is; BiGraph
// keeps both. All three support vertex and edge removal but not
// concurrent insertion (compare atomiclist).
//
// Grounded on the source's Adjacency_list.hpp (Adjacency_list_base, an
// out-oriented adjacency list keyed by tail) and Graph.hpp's
// Bi_edge_graph mixin (two edge sets per vertex). Handles are
// handle.Ref, as in edgelist.
//
// EraseVert's precondition differs by flavor, matching §4.3 exactly:
// OutGraph/InGraph reject erasing a vertex with a live cokey edge (an
// incoming edge for Out, an outgoing edge for In) — the caller must
// erase those first. A vertex's own key-side edges (outgoing for Out,
// incoming for In), including a self-loop, are exempt from that
// precondition and are instead swept away as part of EraseVert itself,
// matching original_source/include/graph/impl/Adjacency_list.hpp's
// erase_vert (which decrements _esize by _degree(v) before erasing v)
// and ground-truthed by original_source/test/Adjacency_list.cpp's
// self-edge/tail-erase cases. BiGraph cascades further still: it
// removes every incident edge on both sides (a self-loop exactly once)
// before removing the vertex, since it already tracks both directions
// and so has no cokey precondition left to enforce.
package adjlist
