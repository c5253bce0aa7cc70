package gtrack_test

import (
	"runtime"
	"testing"

	"github.com/nodeforge/graphkit/gtrack"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	erased   []int
	cleared  int
	reserved int
}

func (r *recorder) OnErase(k int)   { r.erased = append(r.erased, k) }
func (r *recorder) OnClear()        { r.cleared++ }
func (r *recorder) OnReserve(n int) { r.reserved = n }

func TestTrackerBroadcast(t *testing.T) {
	tr := gtrack.New[int]()
	r1, r2 := &recorder{}, &recorder{}
	sub1 := tr.Subscribe(r1)
	sub2 := tr.Subscribe(r2)

	tr.Erase(5)
	require.Equal(t, []int{5}, r1.erased)
	require.Equal(t, []int{5}, r2.erased)

	tr.Reserve(10)
	require.Equal(t, 10, r1.reserved)

	tr.Unsubscribe(sub2)
	tr.Clear()
	require.Equal(t, 1, r1.cleared)
	require.Equal(t, 0, r2.cleared)

	_ = sub1
}

func TestTrackerForgetsCollectedSubscriber(t *testing.T) {
	tr := gtrack.New[int]()

	func() {
		r := &recorder{}
		tr.Subscribe(r)
		tr.Erase(1)
		require.Equal(t, []int{1}, r.erased)
	}()

	// r is now unreachable; force collection and let the tracker prune
	// the dead weak pointer on its next broadcast. This does not assert
	// timing (GC is not deterministic on a single cycle in general) but
	// documents the intended behavior: a dropped persistent side
	// container is never kept alive by the tracker itself.
	runtime.GC()
	tr.Erase(2) // must not panic even if the weak pointer already cleared
}
