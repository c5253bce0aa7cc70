package gcore

// CloneUnweighted and CloneInduced are the generic homes for the
// teacher's core/view.go copying views (UnweightedView,
// InducedSubgraph): eager copies into a caller-constructed destination
// graph, distinct from the lazy reverseview/subforest/tensor views.
// gcore has no way to create a vertex or edge itself (that is
// representation- and payload-specific), so both take the destination
// graph's own insertion hooks and drive them; the caller chooses
// whether the destination is unweighted, a different representation
// entirely, or the same kind as the source.

// CloneUnweighted copies every vertex and edge of g into a
// caller-managed destination via insertVert/insertEdge, returning the
// source-to-destination vertex mapping. "Unweighted" describes intent,
// not mechanism: weight is a function supplied to algorithms, not a
// graph field, so dropping it is simply a matter of the caller not
// carrying a weight side-map into the clone.
func CloneUnweighted[SrcV, SrcE, DstV, DstE comparable](
	g Graph[SrcV, SrcE],
	insertVert func(SrcV) DstV,
	insertEdge func(tail, head DstV) DstE,
) map[SrcV]DstV {
	mapping := make(map[SrcV]DstV, g.Order())
	for _, v := range g.Verts() {
		mapping[v] = insertVert(v)
	}
	for _, e := range g.Edges() {
		insertEdge(mapping[g.Tail(e)], mapping[g.Head(e)])
	}
	return mapping
}

// CloneInduced is CloneUnweighted restricted to the vertex subset keep
// selects: edges are copied only when both endpoints are kept.
func CloneInduced[SrcV, SrcE, DstV, DstE comparable](
	g Graph[SrcV, SrcE],
	keep func(SrcV) bool,
	insertVert func(SrcV) DstV,
	insertEdge func(tail, head DstV) DstE,
) map[SrcV]DstV {
	mapping := make(map[SrcV]DstV)
	for _, v := range g.Verts() {
		if keep(v) {
			mapping[v] = insertVert(v)
		}
	}
	for _, e := range g.Edges() {
		dt, okT := mapping[g.Tail(e)]
		dh, okH := mapping[g.Head(e)]
		if okT && okH {
			insertEdge(dt, dh)
		}
	}
	return mapping
}
