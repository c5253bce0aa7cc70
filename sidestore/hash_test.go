package sidestore_test

import (
	"testing"

	"github.com/nodeforge/graphkit/gtrack"
	"github.com/nodeforge/graphkit/sidestore"
	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	m := sidestore.NewHashMap[string, int]()
	_, ok := m.Get("a")
	require.False(t, ok)

	m.Set("a", 1)
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 1, m.Len())

	m.Delete("a")
	require.Equal(t, 0, m.Len())
}

func TestHashMapTracksErasuresAndClear(t *testing.T) {
	tr := gtrack.New[string]()
	m := sidestore.NewPersistentHashMap[string, int](tr)
	m.Set("a", 1)
	m.Set("b", 2)

	tr.Erase("a")
	_, ok := m.Get("a")
	require.False(t, ok)
	require.Equal(t, 1, m.Len())

	tr.Clear()
	require.Equal(t, 0, m.Len())
}

func TestHashSet(t *testing.T) {
	s := sidestore.NewHashSet[string]()
	require.False(t, s.Contains("x"))

	require.True(t, s.Insert("x"))
	require.True(t, s.Contains("x"))
	require.Equal(t, 1, s.Len())
	require.False(t, s.Insert("x"))

	s.Erase("x")
	require.False(t, s.Contains("x"))
	require.True(t, s.Insert("x"))
}
