package adjlist_test

import (
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/gcore"
	"github.com/stretchr/testify/require"
)

func TestInGraphInsertAndDegree(t *testing.T) {
	g := adjlist.NewIn[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	c := g.InsertVert("c")

	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)
	cb, err := g.InsertEdge(c, b)
	require.NoError(t, err)

	require.Equal(t, 2, g.InDegree(b))
	require.Equal(t, 0, g.InDegree(a))
	require.ElementsMatch(t, []adjlist.InEdge[string]{ab, cb}, g.InEdges(b))
}

func TestInGraphEraseVertPrecondition(t *testing.T) {
	g := adjlist.NewIn[int]()
	a := g.InsertVert(1)
	b := g.InsertVert(2)
	e, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	require.ErrorIs(t, g.EraseVert(a), gcore.ErrPreconditionUnmet)
	require.NoError(t, g.EraseEdge(e))
	require.NoError(t, g.EraseVert(a))
	require.Equal(t, 1, g.Order())
}

func TestInGraphSelfLoopAllowsErase(t *testing.T) {
	g := adjlist.NewIn[int]()
	a := g.InsertVert(1)
	_, err := g.InsertEdge(a, a)
	require.NoError(t, err)

	// a's self-loop is its own key-side edge, so EraseVert must sweep
	// it away along with a, leaving no dangling edge behind.
	require.NoError(t, g.EraseVert(a))
	require.Equal(t, 0, g.Order())
	require.Equal(t, 0, g.Size())
}

func TestInGraphEraseVertSweepsOwnIncomingEdges(t *testing.T) {
	g := adjlist.NewIn[int]()
	a := g.InsertVert(1)
	b := g.InsertVert(2)
	_, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	// b owns the edge as its head (key side), so erasing b must erase
	// the edge too, with no prior EraseEdge call needed.
	require.NoError(t, g.EraseVert(b))
	require.Equal(t, 1, g.Order())
	require.Equal(t, 0, g.Size())
}
