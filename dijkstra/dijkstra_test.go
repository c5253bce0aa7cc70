package dijkstra_test

import (
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/dijkstra"
	"github.com/nodeforge/graphkit/gcore"
	"github.com/stretchr/testify/require"
)

func buildWeighted(t *testing.T) (*adjlist.OutGraph[string], map[string]adjlist.OutVert[string], map[adjlist.OutEdge[string]]int) {
	t.Helper()
	g := adjlist.NewOut[string]()
	verts := make(map[string]adjlist.OutVert[string])
	for _, name := range []string{"A", "B", "C", "D"} {
		verts[name] = g.InsertVert(name)
	}
	weights := make(map[adjlist.OutEdge[string]]int)
	add := func(from, to string, w int) {
		e, err := g.InsertEdge(verts[from], verts[to])
		require.NoError(t, err)
		weights[e] = w
	}
	add("A", "B", 4)
	add("A", "C", 2)
	add("C", "B", 1)
	add("B", "D", 5)
	add("C", "D", 10)
	return g, verts, weights
}

func TestDijkstraShortestDistances(t *testing.T) {
	g, verts, weights := buildWeighted(t)
	weight := func(e adjlist.OutEdge[string]) int { return weights[e] }
	less := func(a, b int) bool { return a < b }
	combine := func(a, b int) int { return a + b }

	tree, dist, err := dijkstra.From[adjlist.OutVert[string], adjlist.OutEdge[string]](g, verts["A"], weight, less, combine, 0)
	require.NoError(t, err)

	da, _ := dist.Get(verts["A"])
	db, _ := dist.Get(verts["B"])
	dc, _ := dist.Get(verts["C"])
	dd, _ := dist.Get(verts["D"])
	require.Equal(t, 0, da)
	require.Equal(t, 3, db) // A->C->B = 2+1
	require.Equal(t, 2, dc)
	require.Equal(t, 8, dd) // A->C->B->D = 2+1+5

	path := tree.PathToRoot(verts["D"])
	require.Len(t, path, 3)
	require.Equal(t, verts["A"], g.Tail(path[0]))
	require.Equal(t, verts["D"], g.Head(path[len(path)-1]))
}

func TestDijkstraMaxDistanceCutsOffExploration(t *testing.T) {
	g, verts, weights := buildWeighted(t)
	weight := func(e adjlist.OutEdge[string]) int { return weights[e] }
	less := func(a, b int) bool { return a < b }
	combine := func(a, b int) int { return a + b }

	_, dist, err := dijkstra.From[adjlist.OutVert[string], adjlist.OutEdge[string]](
		g, verts["A"], weight, less, combine, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)

	_, reached := dist.Get(verts["D"])
	require.False(t, reached)
}

func TestDijkstraRejectsNegativeWeightWhenChecked(t *testing.T) {
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	weight := func(e adjlist.OutEdge[string]) int {
		if e == ab {
			return -1
		}
		return 0
	}
	less := func(x, y int) bool { return x < y }
	combine := func(x, y int) int { return x + y }

	_, _, err = dijkstra.From[adjlist.OutVert[string], adjlist.OutEdge[string]](g, a, weight, less, combine, 0)
	require.ErrorIs(t, err, gcore.ErrPreconditionUnmet)
}

func TestDijkstraToMirrorsFrom(t *testing.T) {
	g := adjlist.NewIn[string]()
	verts := make(map[string]adjlist.InVert[string])
	for _, name := range []string{"A", "B", "C", "D"} {
		verts[name] = g.InsertVert(name)
	}
	weights := make(map[adjlist.InEdge[string]]int)
	add := func(from, to string, w int) {
		e, err := g.InsertEdge(verts[from], verts[to])
		require.NoError(t, err)
		weights[e] = w
	}
	add("A", "B", 4)
	add("A", "C", 2)
	add("C", "B", 1)
	add("B", "D", 5)
	add("C", "D", 10)
	weight := func(e adjlist.InEdge[string]) int { return weights[e] }
	less := func(a, b int) bool { return a < b }
	combine := func(a, b int) int { return a + b }

	tree, dist, err := dijkstra.To[adjlist.InVert[string], adjlist.InEdge[string]](g, verts["D"], weight, less, combine, 0)
	require.NoError(t, err)

	dd, _ := dist.Get(verts["D"])
	da, _ := dist.Get(verts["A"])
	require.Equal(t, 0, dd)
	require.Equal(t, 8, da) // A->C->B->D = 2+1+5, walked backward

	path := tree.PathToRoot(verts["A"])
	require.NotEmpty(t, path)
	require.Equal(t, verts["D"], g.Head(path[len(path)-1]))
}
