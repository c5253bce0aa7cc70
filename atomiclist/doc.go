// Package atomiclist implements the two lock-free adjacency-list
// representations meant for concurrent construction: AdjacencyList
// grows without bound via compare-and-swap linked lists and hands out
// handle.Ref handles; ContiguousAdjacencyList pre-reserves
// fixed-capacity slices, advances atomic cursors into them and hands
// out dense handle.Int handles. Neither supports removal.
//
// Grounded on the source's atomic_list.hpp (a lock-free singly-linked
// list built on compare_exchange_weak head-pushes) and
// Atomic_adjacency_list.hpp for AdjacencyList; on
// Contiguous_atomic_adjacency_list.hpp for ContiguousAdjacencyList. Both
// orient out: a vertex's own atomic list holds the edges for which it
// is the tail, matching Atomic_out_adjacency_list/
// Contiguous_atomic_out_adjacency_list in the source (the In flavor
// there is a thin relabeling not carried over, since every other
// representation in this module already demonstrates the Out/In split).
package atomiclist
