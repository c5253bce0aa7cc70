// Package stablelist implements the no-removal storage
// representations: dense integer handles assigned by an ever-growing
// counter, never recycled, so a handle stays valid — though possibly
// stale — for the lifetime of the graph even after structural changes
// a removal-capable representation would have invalidated.
//
// Grounded on the source's Stable_vert_list.hpp/Stable_edge_list.hpp
// (insert_vert/insert_edge append to a backing vector and return the
// new index) and Stable_adjacency_list.hpp (per-vertex out/in index
// slices appended alongside the edge list). There is no EraseVert or
// EraseEdge: these representations do not implement gcore.MutableGraph.
package stablelist
