package graphwrap

import (
	"math/rand/v2"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/reverseview"
	"github.com/nodeforge/graphkit/subforest"
)

// Wrapper embeds G and adds operations that make sense over any graph
// representation: uniform random sampling and path assembly.
type Wrapper[G gcore.Graph[V, E], V, E comparable] struct {
	G
}

// New wraps g.
func New[G gcore.Graph[V, E], V, E comparable](g G) Wrapper[G, V, E] {
	return Wrapper[G, V, E]{G: g}
}

// RandomVert draws a uniformly random live vertex using r, or NullVert
// if the graph is empty. Verts already materializes a full snapshot
// slice in this port, so direct indexing is exact — not the reservoir
// sampling a true streaming iterator would need.
func (w Wrapper[G, V, E]) RandomVert(r *rand.Rand) V {
	verts := w.G.Verts()
	if len(verts) == 0 {
		return w.G.NullVert()
	}
	return verts[r.IntN(len(verts))]
}

// RandomEdge draws a uniformly random live edge using r, or NullEdge
// if the graph has none.
func (w Wrapper[G, V, E]) RandomEdge(r *rand.Rand) E {
	edges := w.G.Edges()
	if len(edges) == 0 {
		return w.G.NullEdge()
	}
	return edges[r.IntN(len(edges))]
}

// Path assembles a path from source along edges, without validating
// it; call gcore.Validate against the wrapped graph to check it.
func (w Wrapper[G, V, E]) Path(source V, edges ...E) gcore.Path[V, E] {
	return gcore.NewPath(source, edges...)
}

// ConcatenatePaths joins p and q if Target(p) == q.Source().
func (w Wrapper[G, V, E]) ConcatenatePaths(p, q gcore.Path[V, E]) (gcore.Path[V, E], error) {
	return gcore.ConcatenatePaths[V, E](w.G, p, q)
}

// OutWrapper adds the operations that need outgoing adjacency:
// building a fresh out-subforest/subtree rooted in the wrapped graph.
type OutWrapper[G gcore.OutAdjacency[V, E], V, E comparable] struct {
	Wrapper[G, V, E]
}

// NewOut wraps g, adding out-adjacency-only operations.
func NewOut[G gcore.OutAdjacency[V, E], V, E comparable](g G) OutWrapper[G, V, E] {
	return OutWrapper[G, V, E]{Wrapper: New[G, V, E](g)}
}

// OutSubforest returns an empty out-forest over the wrapped graph.
func (w OutWrapper[G, V, E]) OutSubforest(checkCycles bool) *subforest.Forest[V, E, G] {
	return subforest.NewOutForest[V, E](w.G, checkCycles)
}

// OutSubtree returns an empty out-tree over the wrapped graph, rooted
// at root.
func (w OutWrapper[G, V, E]) OutSubtree(root V, checkCycles bool) *subforest.Tree[V, E, G] {
	return subforest.NewOutTree[V, E](w.G, root, checkCycles)
}

// InWrapper adds the operations that need incoming adjacency.
type InWrapper[G gcore.InAdjacency[V, E], V, E comparable] struct {
	Wrapper[G, V, E]
}

// NewIn wraps g, adding in-adjacency-only operations.
func NewIn[G gcore.InAdjacency[V, E], V, E comparable](g G) InWrapper[G, V, E] {
	return InWrapper[G, V, E]{Wrapper: New[G, V, E](g)}
}

// InSubforest returns an empty in-forest over the wrapped graph.
func (w InWrapper[G, V, E]) InSubforest(checkCycles bool) *subforest.Forest[V, E, G] {
	return subforest.NewInForest[V, E](w.G, checkCycles)
}

// InSubtree returns an empty in-tree over the wrapped graph, rooted at
// root.
func (w InWrapper[G, V, E]) InSubtree(root V, checkCycles bool) *subforest.Tree[V, E, G] {
	return subforest.NewInTree[V, E](w.G, root, checkCycles)
}

// BiWrapper adds the operations that need both adjacency directions:
// reversal, plus out- and in-subforest/subtree construction.
type BiWrapper[G gcore.BiEdgeGraph[V, E], V, E comparable] struct {
	Wrapper[G, V, E]
}

// NewBi wraps g, adding bidirectional operations.
func NewBi[G gcore.BiEdgeGraph[V, E], V, E comparable](g G) BiWrapper[G, V, E] {
	return BiWrapper[G, V, E]{Wrapper: New[G, V, E](g)}
}

// ReverseView returns a lazy view of the wrapped graph with every
// edge's tail/head, and so every vertex's out/in adjacency, swapped.
func (w BiWrapper[G, V, E]) ReverseView() *reverseview.View[V, E, G] {
	return reverseview.New[V, E](w.G)
}

// OutSubforest returns an empty out-forest over the wrapped graph.
func (w BiWrapper[G, V, E]) OutSubforest(checkCycles bool) *subforest.Forest[V, E, G] {
	return subforest.NewOutForest[V, E](w.G, checkCycles)
}

// OutSubtree returns an empty out-tree over the wrapped graph, rooted
// at root.
func (w BiWrapper[G, V, E]) OutSubtree(root V, checkCycles bool) *subforest.Tree[V, E, G] {
	return subforest.NewOutTree[V, E](w.G, root, checkCycles)
}

// InSubforest returns an empty in-forest over the wrapped graph.
func (w BiWrapper[G, V, E]) InSubforest(checkCycles bool) *subforest.Forest[V, E, G] {
	return subforest.NewInForest[V, E](w.G, checkCycles)
}

// InSubtree returns an empty in-tree over the wrapped graph, rooted at
// root.
func (w BiWrapper[G, V, E]) InSubtree(root V, checkCycles bool) *subforest.Tree[V, E, G] {
	return subforest.NewInTree[V, E](w.G, root, checkCycles)
}
