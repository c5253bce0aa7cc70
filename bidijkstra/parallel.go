package bidijkstra

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/subforest"
)

// atomicSet is closedSet guarded by a mutex, for the one case a plain
// sidestore.HashSet isn't safe: Parallel's two searches run on
// separate goroutines, and each reads the other's closed set while it
// is concurrently being written.
type atomicSet[V comparable] struct {
	mu   sync.Mutex
	data map[V]struct{}
}

func newAtomicSet[V comparable]() *atomicSet[V] {
	return &atomicSet[V]{data: make(map[V]struct{})}
}

func (s *atomicSet[V]) Insert(v V) bool {
	s.mu.Lock()
	_, ok := s.data[v]
	s.data[v] = struct{}{}
	s.mu.Unlock()
	return !ok
}

func (s *atomicSet[V]) Contains(v V) bool {
	s.mu.Lock()
	_, ok := s.data[v]
	s.mu.Unlock()
	return ok
}

// Parallel is Sequential's concurrent twin: the forward search from s
// and the backward search from t each run to completion on their own
// goroutine instead of interleaving step by step, stopping as soon as
// either side observes a vertex the other has already closed.
//
// Grounded on parallel_bidirectional_search.inl's
// impl::_atomic_bidirectional_search_step and
// Bi_edge_graph<Impl>::parallel_shortest_path, which run the two
// directions on two OpenMP threads sharing atomically-accessed closed
// sets; errgroup.Group supplies the equivalent two-goroutine fan-out
// and join.
func Parallel[V, E comparable, G gcore.BiEdgeGraph[V, E], D any](
	g G, s, t V,
	weight gcore.Weight[E, D], less gcore.Compare[D], combine gcore.Combine[D], zero D,
	opts ...Option[D],
) (gcore.Path[V, E], error) {
	cfg := DefaultOptions[D]()
	for _, opt := range opts {
		opt(&cfg)
	}

	sTree := subforest.NewInTree[V, E](g, s, cfg.checked)
	tTree := subforest.NewOutTree[V, E](g, t, cfg.checked)
	sSide := newSide[V](s, zero, less, newAtomicSet[V]())
	tSide := newSide[V](t, zero, less, newAtomicSet[V]())

	// sDone/tDone let each goroutine stop as soon as the other has
	// already found the rendezvous, instead of draining its own
	// frontier — the Go analogue of the source's s_done/t_done atomics.
	var sDone, tDone atomic.Bool

	var eg errgroup.Group
	eg.Go(func() error {
		defer sDone.Store(true)
		for !tDone.Load() && sSide.queue.Len() > 0 {
			done, err := stepOut[V, E](g, sSide, tSide, sTree, weight, less, combine, cfg.checked)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		return nil
	})
	eg.Go(func() error {
		defer tDone.Store(true)
		for !sDone.Load() && tSide.queue.Len() > 0 {
			done, err := stepIn[V, E](g, tSide, sSide, tTree, weight, less, combine, cfg.checked)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return gcore.Path[V, E]{}, err
	}

	rendezvous, found := minimalRendezvous[V](g.Verts(), sSide, tSide, less, combine)
	return assemblePath[V, E](g, s, sTree, tTree, rendezvous, found)
}
