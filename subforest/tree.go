package subforest

import "github.com/nodeforge/graphkit/gcore"

// Tree narrows a Forest to the reachable set of a single distinguished
// root: Verts/Order only see vertices on a path to (out-flavor) or
// from (in-flavor) root. The root definition itself is not part of
// impl/Subforest.hpp's surviving headers — subforest.inl and
// dijkstra.inl both build one without a header ever defining it — so
// Tree is inferred from those call sites rather than ported directly:
// a Forest plus the one fact an algorithm like Prim always has handy,
// the vertex it started from.
type Tree[V, E comparable, G gcore.Graph[V, E]] struct {
	*Forest[V, E, G]
	root V
}

// NewOutTree returns an empty out-tree over g rooted at root.
func NewOutTree[V, E comparable, G gcore.Graph[V, E]](g G, root V, checkCycles bool) *Tree[V, E, G] {
	return &Tree[V, E, G]{Forest: NewOutForest[V, E](g, checkCycles), root: root}
}

// NewInTree returns an empty in-tree over g rooted at root.
func NewInTree[V, E comparable, G gcore.Graph[V, E]](g G, root V, checkCycles bool) *Tree[V, E, G] {
	return &Tree[V, E, G]{Forest: NewInForest[V, E](g, checkCycles), root: root}
}

// Root returns the tree's root vertex.
func (t *Tree[V, E, G]) Root() V { return t.root }

// IsRoot reports whether v is the tree's root.
func (t *Tree[V, E, G]) IsRoot(v V) bool { return v == t.root }

// InTree reports whether v is the root or has a key edge connecting it
// toward the root.
func (t *Tree[V, E, G]) InTree(v V) bool {
	if t.IsRoot(v) {
		return true
	}
	return t.Forest.KeyEdgeOrNull(v) != t.Forest.NullEdge()
}

// Verts implements gcore.Graph, overriding the embedded Forest's
// (which returns the whole underlying graph's vertex set): only the
// root and vertices reachable by a key edge are visible.
func (t *Tree[V, E, G]) Verts() []V {
	var out []V
	for _, v := range t.Forest.G.Verts() {
		if t.InTree(v) {
			out = append(out, v)
		}
	}
	return out
}

// Order implements gcore.Graph, overriding the embedded Forest's.
func (t *Tree[V, E, G]) Order() int { return len(t.Verts()) }

var _ gcore.Graph[int, int] = (*Tree[int, int, gcore.Graph[int, int]])(nil)
