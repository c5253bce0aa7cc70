package subforest

import "github.com/nodeforge/graphkit/gcore"
import "github.com/nodeforge/graphkit/sidestore"

// Forest is a sparse view over g: Verts is g's, but Edges is only the
// edges InsertEdge has filed, at most one per vertex (the vertex's "key
// edge"). outFlavor selects which endpoint indexes the key edge: true
// files an edge under its tail (an out-forest, whose edges point toward
// the root, as dijkstra.To and primtree.Reaching build walking
// backward), false under its head (an in-forest, as dijkstra.From and
// primtree.Reachable build walking forward).
type Forest[V, E comparable, G gcore.Graph[V, E]] struct {
	G
	keyEdge     *sidestore.HashMap[V, E]
	outFlavor   bool
	checkCycles bool
}

// NewOutForest returns an empty out-forest over g: InsertEdge files e
// under Tail(e). checkCycles enables PathToRoot's defensive scan (see
// PathToRoot); leave it false on a hot path once the caller already
// knows the graph is cycle-free by construction.
func NewOutForest[V, E comparable, G gcore.Graph[V, E]](g G, checkCycles bool) *Forest[V, E, G] {
	return &Forest[V, E, G]{G: g, keyEdge: sidestore.NewHashMap[V, E](), outFlavor: true, checkCycles: checkCycles}
}

// NewInForest returns an empty in-forest over g: InsertEdge files e
// under Head(e).
func NewInForest[V, E comparable, G gcore.Graph[V, E]](g G, checkCycles bool) *Forest[V, E, G] {
	return &Forest[V, E, G]{G: g, keyEdge: sidestore.NewHashMap[V, E](), outFlavor: false, checkCycles: checkCycles}
}

func (f *Forest[V, E, G]) keyOf(e E) V {
	if f.outFlavor {
		return f.G.Tail(e)
	}
	return f.G.Head(e)
}

func (f *Forest[V, E, G]) cokeyOf(e E) V {
	if f.outFlavor {
		return f.G.Head(e)
	}
	return f.G.Tail(e)
}

// InsertEdge files e as v's key edge, where v is e's tail (out-forest)
// or head (in-forest), overwriting any previous key edge for v.
//
// TODO: detect a cycle when checkCycles is set; today the flag is
// accepted but unchecked, matching the gap already present upstream.
func (f *Forest[V, E, G]) InsertEdge(e E) {
	f.keyEdge.Set(f.keyOf(e), e)
}

// EraseEdge clears the key-edge slot e would file under, regardless of
// whether e is the edge currently stored there.
func (f *Forest[V, E, G]) EraseEdge(e E) {
	f.keyEdge.Delete(f.keyOf(e))
}

// KeyEdgeOrNull returns v's key edge, or NullEdge if v has none.
func (f *Forest[V, E, G]) KeyEdgeOrNull(v V) E {
	if e, ok := f.keyEdge.Get(v); ok {
		return e
	}
	return f.G.NullEdge()
}

// KeyEdges returns a single-element slice holding v's key edge, or nil
// if v has none — the forest's analogue of OutEdges/InEdges, since a
// vertex has at most one key edge.
func (f *Forest[V, E, G]) KeyEdges(v V) []E {
	e := f.KeyEdgeOrNull(v)
	if e == f.G.NullEdge() {
		return nil
	}
	return []E{e}
}

// KeyDegree returns 1 if v has a key edge, 0 otherwise.
func (f *Forest[V, E, G]) KeyDegree(v V) int {
	if f.KeyEdgeOrNull(v) == f.G.NullEdge() {
		return 0
	}
	return 1
}

// Edges implements gcore.Graph, overriding g's: only filed key edges
// are visible, not every edge of the underlying graph.
func (f *Forest[V, E, G]) Edges() []E {
	var out []E
	for _, v := range f.G.Verts() {
		if e := f.KeyEdgeOrNull(v); e != f.G.NullEdge() {
			out = append(out, e)
		}
	}
	return out
}

// Size implements gcore.Graph, overriding g's: it counts filed key
// edges, not every edge of the underlying graph.
func (f *Forest[V, E, G]) Size() int { return len(f.Edges()) }

// PathToRoot walks key edges from v toward its tree's root, returning
// them in root-ward order for an out-forest (v's key edge first) or
// root-first order for an in-forest (reversed, matching the source's
// path_from_root_to). checkCycles guards against an infinite walk if a
// cycle was ever filed despite InsertEdge's unchecked TODO.
func (f *Forest[V, E, G]) PathToRoot(v V) []E {
	var path []E
	seen := make(map[V]bool)
	for {
		if f.checkCycles {
			if seen[v] {
				break
			}
			seen[v] = true
		}
		e := f.KeyEdgeOrNull(v)
		if e == f.G.NullEdge() {
			break
		}
		path = append(path, e)
		v = f.cokeyOf(e)
	}
	if !f.outFlavor {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}

var _ gcore.Graph[int, int] = (*Forest[int, int, gcore.Graph[int, int]])(nil)
