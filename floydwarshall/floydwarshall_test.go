package floydwarshall_test

import (
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/floydwarshall"
	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/handle"
	"github.com/nodeforge/graphkit/stablelist"
	"github.com/stretchr/testify/require"
)

func TestAllPairsGenericGraph(t *testing.T) {
	g := adjlist.NewOut[string]()
	verts := make(map[string]adjlist.OutVert[string])
	for _, name := range []string{"A", "B", "C"} {
		verts[name] = g.InsertVert(name)
	}
	weights := make(map[adjlist.OutEdge[string]]int)
	add := func(from, to string, w int) {
		e, err := g.InsertEdge(verts[from], verts[to])
		require.NoError(t, err)
		weights[e] = w
	}
	add("A", "B", 3)
	add("B", "C", 4)
	add("A", "C", 10)

	weight := func(e adjlist.OutEdge[string]) int { return weights[e] }
	less := func(a, b int) bool { return a < b }
	combine := func(a, b int) int { return a + b }

	distance, err := floydwarshall.AllPairs[adjlist.OutVert[string], adjlist.OutEdge[string]](g, weight, less, combine, 0)
	require.NoError(t, err)

	rowA, ok := distance.Get(verts["A"])
	require.True(t, ok)
	dac, ok := rowA.Get(verts["C"])
	require.True(t, ok)
	require.Equal(t, 7, dac) // A->B->C = 3+4, beats the direct A->C edge of 10

	rowB, _ := distance.Get(verts["B"])
	_, reachedFromBToA := rowB.Get(verts["A"])
	require.False(t, reachedFromBToA)
}

func TestAllPairsDenseHandleIntGraph(t *testing.T) {
	g := stablelist.NewOutAdjacencyList[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	c := g.InsertVert("c")
	weights := make(map[handle.Int]int)
	add := func(from, to handle.Int, w int) {
		e, err := g.InsertEdge(from, to)
		require.NoError(t, err)
		weights[e] = w
	}
	add(a, b, 1)
	add(b, c, 2)
	add(a, c, 100)

	weight := func(e handle.Int) int { return weights[e] }
	less := func(x, y int) bool { return x < y }
	combine := func(x, y int) int { return x + y }

	distance, err := floydwarshall.AllPairs[handle.Int, handle.Int](g, weight, less, combine, 0)
	require.NoError(t, err)

	rowA, ok := distance.Get(a)
	require.True(t, ok)
	dac, ok := rowA.Get(c)
	require.True(t, ok)
	require.Equal(t, 3, dac) // a->b->c = 1+2, beats the direct edge of 100
}

func TestAllPairsRejectsNegativeCycleWhenChecked(t *testing.T) {
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)
	ba, err := g.InsertEdge(b, a)
	require.NoError(t, err)

	weights := map[adjlist.OutEdge[string]]int{ab: 1, ba: -3}
	weight := func(e adjlist.OutEdge[string]) int { return weights[e] }
	less := func(x, y int) bool { return x < y }
	combine := func(x, y int) int { return x + y }

	_, err = floydwarshall.AllPairs[adjlist.OutVert[string], adjlist.OutEdge[string]](g, weight, less, combine, 0)
	require.ErrorIs(t, err, gcore.ErrPreconditionUnmet)
}
