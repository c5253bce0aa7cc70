package adjlist_test

import (
	"testing"

	"github.com/nodeforge/graphkit/adjlist"
	"github.com/nodeforge/graphkit/gcore"
	"github.com/stretchr/testify/require"
)

func TestOutGraphInsertAndDegree(t *testing.T) {
	g := adjlist.NewOut[string]()
	a := g.InsertVert("a")
	b := g.InsertVert("b")
	c := g.InsertVert("c")

	ab, err := g.InsertEdge(a, b)
	require.NoError(t, err)
	ac, err := g.InsertEdge(a, c)
	require.NoError(t, err)

	require.Equal(t, 2, g.OutDegree(a))
	require.Equal(t, 0, g.OutDegree(b))
	require.ElementsMatch(t, []adjlist.OutEdge[string]{ab, ac}, g.OutEdges(a))
}

func TestOutGraphEraseVertPrecondition(t *testing.T) {
	g := adjlist.NewOut[int]()
	a := g.InsertVert(1)
	b := g.InsertVert(2)
	e, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	require.ErrorIs(t, g.EraseVert(b), gcore.ErrPreconditionUnmet)
	require.NoError(t, g.EraseEdge(e))
	require.NoError(t, g.EraseVert(b))
	require.Equal(t, 1, g.Order())
}

func TestOutGraphSelfLoopAllowsErase(t *testing.T) {
	g := adjlist.NewOut[int]()
	a := g.InsertVert(1)
	_, err := g.InsertEdge(a, a)
	require.NoError(t, err)

	// a has a self-loop: tail == head == a, so it is its own cokey and
	// EraseVert must not treat that as a foreign incoming edge. The
	// self-loop is a's own key-side edge, so EraseVert must sweep it
	// away along with a, leaving no dangling edge behind.
	require.NoError(t, g.EraseVert(a))
	require.Equal(t, 0, g.Order())
	require.Equal(t, 0, g.Size())
}

func TestOutGraphEraseVertSweepsOwnOutgoingEdges(t *testing.T) {
	g := adjlist.NewOut[int]()
	a := g.InsertVert(1)
	b := g.InsertVert(2)
	_, err := g.InsertEdge(a, b)
	require.NoError(t, err)

	// a owns the edge as its tail (key side), so erasing a must erase
	// the edge too, with no prior EraseEdge call needed.
	require.NoError(t, g.EraseVert(a))
	require.Equal(t, 1, g.Order())
	require.Equal(t, 0, g.Size())
}
