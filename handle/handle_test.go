package handle_test

import (
	"testing"

	"github.com/nodeforge/graphkit/handle"
	"github.com/stretchr/testify/require"
)

func TestIntNull(t *testing.T) {
	require.True(t, handle.NullInt.IsNull())
	require.False(t, handle.Int(0).IsNull())
	require.Equal(t, "<null>", handle.NullInt.String())
	require.Equal(t, "#0", handle.Int(0).String())
	require.True(t, handle.Int(1).Less(handle.Int(2)))
}

func TestRefIdentity(t *testing.T) {
	var zero handle.Ref[int]
	require.True(t, zero.IsNull())

	a := 1
	b := 2
	ha := handle.NewRef(0, &a)
	hb := handle.NewRef(1, &b)
	require.False(t, ha.IsNull())
	require.NotEqual(t, ha, hb)
	require.True(t, ha.Less(hb))
	require.Equal(t, &a, ha.Node())
	require.Equal(t, uint64(0), ha.Key())

	// Two handles built from the same node and id compare equal.
	ha2 := handle.NewRef(0, &a)
	require.Equal(t, ha, ha2)
}
