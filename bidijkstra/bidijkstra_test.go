package bidijkstra_test

import (
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/bidijkstra"
	"github.com/nodeforge/graphkit/gcore"
	"github.com/stretchr/testify/require"
)

func buildDirected(t *testing.T) (*adjlist.BiGraph[string], map[string]adjlist.BiVert[string], map[adjlist.BiEdge[string]]int) {
	t.Helper()
	g := adjlist.NewBi[string]()
	verts := make(map[string]adjlist.BiVert[string])
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		verts[name] = g.InsertVert(name)
	}
	weights := make(map[adjlist.BiEdge[string]]int)
	add := func(from, to string, w int) {
		e, err := g.InsertEdge(verts[from], verts[to])
		require.NoError(t, err)
		weights[e] = w
	}
	add("A", "B", 2)
	add("A", "C", 5)
	add("B", "C", 1)
	add("B", "D", 7)
	add("C", "D", 2)
	add("D", "E", 1)
	return g, verts, weights
}

func TestSequentialFindsShortestPath(t *testing.T) {
	g, verts, weights := buildDirected(t)
	weight := func(e adjlist.BiEdge[string]) int { return weights[e] }
	less := func(a, b int) bool { return a < b }
	combine := func(a, b int) int { return a + b }

	path, err := bidijkstra.Sequential[adjlist.BiVert[string], adjlist.BiEdge[string]](
		g, verts["A"], verts["E"], weight, less, combine, 0)
	require.NoError(t, err)
	require.Equal(t, verts["A"], path.Source())
	require.Equal(t, verts["E"], gcore.Target[adjlist.BiVert[string], adjlist.BiEdge[string]](g, path))
	require.Equal(t, 6, gcore.PathWeight[adjlist.BiVert[string], adjlist.BiEdge[string]](path, weight, combine, 0))
	require.NoError(t, gcore.Validate[adjlist.BiVert[string], adjlist.BiEdge[string]](g, path))
}

func TestParallelFindsShortestPath(t *testing.T) {
	g, verts, weights := buildDirected(t)
	weight := func(e adjlist.BiEdge[string]) int { return weights[e] }
	less := func(a, b int) bool { return a < b }
	combine := func(a, b int) int { return a + b }

	path, err := bidijkstra.Parallel[adjlist.BiVert[string], adjlist.BiEdge[string]](
		g, verts["A"], verts["E"], weight, less, combine, 0)
	require.NoError(t, err)
	require.Equal(t, verts["A"], path.Source())
	require.Equal(t, verts["E"], gcore.Target[adjlist.BiVert[string], adjlist.BiEdge[string]](g, path))
	require.Equal(t, 6, gcore.PathWeight[adjlist.BiVert[string], adjlist.BiEdge[string]](path, weight, combine, 0))
}

func TestSequentialReportsNullPathWhenDisconnected(t *testing.T) {
	g := adjlist.NewBi[string]()
	a := g.InsertVert("a")
	isolated := g.InsertVert("isolated")
	weight := func(e adjlist.BiEdge[string]) int { return 0 }
	less := func(x, y int) bool { return x < y }
	combine := func(x, y int) int { return x + y }

	path, err := bidijkstra.Sequential[adjlist.BiVert[string], adjlist.BiEdge[string]](
		g, a, isolated, weight, less, combine, 0)
	require.NoError(t, err)
	require.True(t, path.IsNull(g.NullVert()))
}

func TestSequentialRejectsNegativeWeightWhenChecked(t *testing.T) {
	g := adjlist.NewBi[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	weight := func(e adjlist.BiEdge[string]) int {
		if e == ab {
			return -1
		}
		return 0
	}
	less := func(x, y int) bool { return x < y }
	combine := func(x, y int) int { return x + y }

	_, err = bidijkstra.Sequential[adjlist.BiVert[string], adjlist.BiEdge[string]](g, a, b, weight, less, combine, 0)
	require.ErrorIs(t, err, gcore.ErrPreconditionUnmet)
}
