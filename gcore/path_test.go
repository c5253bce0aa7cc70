package gcore_test

import (
	"testing"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/stretchr/testify/require"
)

// fakeGraph is the smallest possible gcore.Graph: three vertices
// 0,1,2 and two edges 0->1, 1->2, named by their index.
type fakeGraph struct{}

func (fakeGraph) NullVert() int    { return -1 }
func (fakeGraph) NullEdge() int    { return -1 }
func (fakeGraph) Verts() []int     { return []int{0, 1, 2} }
func (fakeGraph) Edges() []int     { return []int{0, 1} }
func (fakeGraph) Order() int       { return 3 }
func (fakeGraph) Size() int        { return 2 }
func (fakeGraph) Tail(e int) int   { return e }
func (fakeGraph) Head(e int) int   { return e + 1 }

func TestPathValidateAndTarget(t *testing.T) {
	g := fakeGraph{}
	p := gcore.NewPath[int, int](0, 0, 1)
	require.NoError(t, gcore.Validate[int, int](g, p))
	require.Equal(t, 2, gcore.Target[int, int](g, p))
	require.False(t, p.IsNull(-1))
	require.False(t, p.IsTrivial())
}

func TestPathValidateRejectsNonAdjacentChain(t *testing.T) {
	g := fakeGraph{}
	p := gcore.NewPath[int, int](0, 1) // edge 1 has Tail=1, not 0
	err := gcore.Validate[int, int](g, p)
	require.ErrorIs(t, err, gcore.ErrPreconditionUnmet)
}

func TestConcatenatePaths(t *testing.T) {
	g := fakeGraph{}
	p := gcore.NewPath[int, int](0, 0)
	q := gcore.NewPath[int, int](1, 1)
	joined, err := gcore.ConcatenatePaths[int, int](g, p, q)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, joined.Edges())

	_, err = gcore.ConcatenatePaths[int, int](g, q, p)
	require.ErrorIs(t, err, gcore.ErrPreconditionUnmet)
}

func TestPathWeight(t *testing.T) {
	p := gcore.NewPath[int, int](0, 0, 1)
	weight := func(e int) int { return e + 10 }
	combine := func(a, b int) int { return a + b }
	require.Equal(t, 21, gcore.PathWeight[int, int](p, weight, combine, 0))
}

func TestCloneInduced(t *testing.T) {
	g := fakeGraph{}
	var builtVerts []int
	var builtEdges [][2]int
	insertVert := func(v int) int { builtVerts = append(builtVerts, v); return v }
	insertEdge := func(tail, head int) int { builtEdges = append(builtEdges, [2]int{tail, head}); return len(builtEdges) - 1 }

	mapping := gcore.CloneInduced[int, int, int, int](g, func(v int) bool { return v != 2 }, insertVert, insertEdge)
	require.Len(t, mapping, 2)
	require.Contains(t, mapping, 0)
	require.Contains(t, mapping, 1)
	require.NotContains(t, mapping, 2)
	// edge 0->1 survives (both endpoints kept); edge 1->2 is dropped.
	require.Equal(t, [][2]int{{0, 1}}, builtEdges)
}
