package graphwrap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/graphwrap"
	"github.com/stretchr/testify/require"
)

func TestWrapperRandomVertAndEdge(t *testing.T) {
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	_, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	w := graphwrap.New[*adjlist.OutGraph[string], adjlist.OutVert[string], adjlist.OutEdge[string]](g)
	r := rand.New(rand.NewPCG(1, 2))

	v := w.RandomVert(r)
	require.Contains(t, []adjlist.OutVert[string]{a, b}, v)

	e := w.RandomEdge(r)
	require.NotEqual(t, g.NullEdge(), e)
}

func TestWrapperRandomOnEmptyGraphReturnsNull(t *testing.T) {
	g := adjlist.NewOut[string]()
	w := graphwrap.New[*adjlist.OutGraph[string], adjlist.OutVert[string], adjlist.OutEdge[string]](g)
	r := rand.New(rand.NewPCG(1, 2))

	require.Equal(t, g.NullVert(), w.RandomVert(r))
	require.Equal(t, g.NullEdge(), w.RandomEdge(r))
}

func TestWrapperPathConcatenation(t *testing.T) {
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	c := g.InsertVert("c")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)
	bc, err := g.InsertEdge(b, c)
	require.NoError(t, err)

	w := graphwrap.New[*adjlist.OutGraph[string], adjlist.OutVert[string], adjlist.OutEdge[string]](g)
	p := w.Path(a, ab)
	q := w.Path(b, bc)

	joined, err := w.ConcatenatePaths(p, q)
	require.NoError(t, err)
	require.Equal(t, c, gcore.Target[adjlist.OutVert[string], adjlist.OutEdge[string]](g, joined))
}

func TestOutWrapperSubtree(t *testing.T) {
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	w := graphwrap.NewOut[*adjlist.OutGraph[string], adjlist.OutVert[string], adjlist.OutEdge[string]](g)
	// An out-tree's edges point toward its root, so a -> b joins a tree
	// rooted at b by filing the edge under a.
	tree := w.OutSubtree(b, true)
	require.True(t, tree.IsRoot(b))
	require.False(t, tree.InTree(a))
	tree.InsertEdge(ab)
	require.True(t, tree.InTree(a))
}

func TestBiWrapperReverseView(t *testing.T) {
	g := adjlist.NewBi[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	w := graphwrap.NewBi[*adjlist.BiGraph[string], adjlist.BiVert[string], adjlist.BiEdge[string]](g)
	rv := w.ReverseView()
	require.Equal(t, b, rv.Tail(ab))
	require.Equal(t, a, rv.Head(ab))
}
