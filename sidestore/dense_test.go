package sidestore_test

import (
	"testing"

	"github.com/nodeforge/graphkit/gtrack"
	"github.com/nodeforge/graphkit/handle"
	"github.com/nodeforge/graphkit/sidestore"
	"github.com/stretchr/testify/require"
)

func TestDenseMapGrowsAndDefaults(t *testing.T) {
	m := sidestore.NewDenseMap[handle.Int, int](-1)
	require.Equal(t, -1, m.Get(handle.Int(3)))

	m.Set(handle.Int(3), 42)
	require.Equal(t, 42, m.Get(handle.Int(3)))
	require.Equal(t, -1, m.Get(handle.Int(0)))
	require.Equal(t, 4, m.Len())
}

func TestDenseMapTracksErasures(t *testing.T) {
	tr := gtrack.New[handle.Int]()
	m := sidestore.NewPersistentDenseMap[handle.Int, string](tr, "")
	m.Set(handle.Int(0), "a")
	m.Set(handle.Int(1), "b")

	tr.Erase(handle.Int(0))
	require.Equal(t, "", m.Get(handle.Int(0)))
	require.Equal(t, "b", m.Get(handle.Int(1)))

	tr.Clear()
	require.Equal(t, 0, m.Len())

	m.Close(tr)
	tr.Reserve(5)
	require.Equal(t, 0, m.Len())
}

func TestDenseSet(t *testing.T) {
	s := sidestore.NewDenseSet[handle.Int]()
	require.False(t, s.Contains(handle.Int(2)))

	require.True(t, s.Insert(handle.Int(2)))
	require.True(t, s.Contains(handle.Int(2)))
	require.False(t, s.Insert(handle.Int(2)))

	s.Erase(handle.Int(2))
	require.False(t, s.Contains(handle.Int(2)))
	require.True(t, s.Insert(handle.Int(2)))
}
