package subforest_test

import (
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/subforest"
	"github.com/stretchr/testify/require"
)

func buildLineGraph(t *testing.T) (*adjlist.OutGraph[string], adjlist.OutVert[string], adjlist.OutVert[string], adjlist.OutVert[string], adjlist.OutEdge[string], adjlist.OutEdge[string]) {
	t.Helper()
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	c := g.InsertVert("c")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)
	bc, err := g.InsertEdge(b, c)
	require.NoError(t, err)
	return g, a, b, c, ab, bc
}

func TestOutForestKeyEdgesAndPath(t *testing.T) {
	g, a, b, c, ab, bc := buildLineGraph(t)

	f := subforest.NewOutForest[adjlist.OutVert[string], adjlist.OutEdge[string]](g, true)
	require.Equal(t, 0, f.KeyDegree(a))

	f.InsertEdge(ab)
	f.InsertEdge(bc)

	require.Equal(t, 1, f.KeyDegree(a))
	require.Equal(t, 1, f.KeyDegree(b))
	require.Equal(t, 0, f.KeyDegree(c))
	require.ElementsMatch(t, []adjlist.OutEdge[string]{ab, bc}, f.Edges())
	require.Equal(t, 2, f.Size())

	path := f.PathToRoot(a)
	require.Equal(t, []adjlist.OutEdge[string]{ab, bc}, path)

	f.EraseEdge(ab)
	require.Equal(t, 0, f.KeyDegree(a))
	require.Nil(t, f.PathToRoot(a))
}

func TestInForestReversesPath(t *testing.T) {
	g, a, b, c, ab, bc := buildLineGraph(t)

	f := subforest.NewInForest[adjlist.OutVert[string], adjlist.OutEdge[string]](g, false)
	f.InsertEdge(ab)
	f.InsertEdge(bc)

	// An in-forest files each edge under its head, so a (the root) has
	// no key edge and the walk from c runs c -> b -> a.
	require.Equal(t, 1, f.KeyDegree(b))
	require.Equal(t, 0, f.KeyDegree(a))

	path := f.PathToRoot(c)
	require.Equal(t, []adjlist.OutEdge[string]{ab, bc}, path)
}

func TestOutTreeRootAndInTree(t *testing.T) {
	g, a, b, c, ab, bc := buildLineGraph(t)

	// An out-tree files each edge under its tail, so its edges point
	// toward the root: rooted at c, the line a -> b -> c grows backward.
	tr := subforest.NewOutTree[adjlist.OutVert[string], adjlist.OutEdge[string]](g, c, true)
	require.True(t, tr.IsRoot(c))
	require.False(t, tr.InTree(b))
	require.False(t, tr.InTree(a))
	require.Equal(t, 1, tr.Order())

	tr.InsertEdge(bc)
	require.True(t, tr.InTree(b))
	require.False(t, tr.InTree(a))
	require.Equal(t, 2, tr.Order())

	tr.InsertEdge(ab)
	require.True(t, tr.InTree(a))
	require.ElementsMatch(t, []adjlist.OutVert[string]{a, b, c}, tr.Verts())
}
