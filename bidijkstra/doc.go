// Package bidijkstra computes a shortest path between two named
// vertices by growing two Dijkstra searches toward each other — one
// forward from the source, one backward from the target — and
// stopping as soon as either side re-discovers a vertex the other
// side has already closed.
//
// Grounded on bidirectional_search.inl's impl::_bidirectional_search_step
// and Bi_edge_graph<Impl>::shortest_path for Sequential, and
// parallel_bidirectional_search.inl's impl::_atomic_bidirectional_search_step
// and Bi_edge_graph<Impl>::parallel_shortest_path for Parallel (an
// errgroup.Group runs the two sides concurrently in place of OpenMP's
// two #pragma omp single sections). Both variants scan every vertex the
// two searches have in common to find the cheapest rendezvous, rather
// than relying on an infinity sentinel the way the source's
// floating-point distances do — a generic D has no guaranteed "largest
// value," so a vertex not yet reached by both sides is simply excluded
// from the scan instead of compared against one.
package bidijkstra
