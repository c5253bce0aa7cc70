// Package floydwarshall computes all-pairs shortest distances over any
// gcore.Graph — it only needs Verts/Edges/Tail/Head, so it works
// equally over an out-only, in-only, or bidirectional representation.
//
// Grounded on floyd_warshall.inl's Graph<Impl>::all_pairs_shortest_paths:
// seed each vertex's self-distance at zero and each edge's tail→head
// distance at its weight, then relax through every intermediate vertex
// in a fixed k→i→j order. The source returns only the distance map (its
// commented-out tree-construction code was never finished upstream), so
// this port does the same.
//
// When the graph's vertices are handle.Int (stablelist/atomiclist's
// dense, 0-based handles), AllPairs switches to a flat row-major
// buffer indexed directly by the handle's integer value instead of
// nested hash maps — the same k→i→j loop order and skip-if-unreached
// shortcut the teacher's matrix.floydWarshallInPlace uses for float64,
// generalized to a caller-supplied D via less/combine instead of
// +Inf/< and +. The two distance matrices cannot literally share code
// (matrix.Dense is hardwired to float64), but the technique — and the
// "dense vertex handles get a dense matrix" decision — carries over.
package floydwarshall
