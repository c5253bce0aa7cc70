// Package primtree computes a minimum spanning tree/forest by growing
// outward from a root vertex, one cheapest frontier edge at a time.
//
// Grounded on subforest.inl's impl::_prim (closed-vertex set, a
// priority queue of (weight, edge) pairs, Subtree output built by
// inserting each accepted edge) and the teacher's prim_kruskal/prim.go
// for the surrounding Go idiom (container/heap priority queue,
// skip-if-already-visited on pop). Generalized to a caller-supplied
// weight/comparison/combination function and to both adjacency
// directions, per Graph.hpp's minimum_tree_reachable_from (out) and
// minimum_tree_reaching_to (in).
package primtree
