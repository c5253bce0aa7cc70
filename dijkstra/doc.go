// Package dijkstra computes single-source shortest paths on any
// gcore.OutAdjacency graph with a caller-supplied, generically typed
// weight, comparison, and combination function.
//
// Grounded on dijkstra.inl's impl::_dijkstra (lazy-decrease-key
// priority queue, a closed-vertex set, and a Subtree of the discovered
// shortest-path tree built by inserting each relaxed edge) and the
// teacher's dijkstra.go for the surrounding idiom: functional Options,
// a container/heap-based priority queue with stale-entry skipping on
// pop, sentinel errors wrapped with context. Unlike the teacher's
// int64-only weights, D is a type parameter, so callers choosing
// float64, big.Rat, or a custom cost type all pay the same algorithm.
package dijkstra
