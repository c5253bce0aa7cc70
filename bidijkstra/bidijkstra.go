package bidijkstra

import (
	"container/heap"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/sidestore"
	"github.com/nodeforge/graphkit/subforest"
)

// Options mirrors dijkstra.Options: checked defaults to true, and a
// relaxation that would decrease a distance despite a non-negative
// combine is reported as an error rather than silently corrupting a
// tree.
type Options[D any] struct {
	checked bool
}

func DefaultOptions[D any]() Options[D] { return Options[D]{checked: true} }

type Option[D any] func(*Options[D])

func WithChecked[D any](checked bool) Option[D] {
	return func(o *Options[D]) { o.checked = checked }
}

type item[V any, D any] struct {
	dist D
	vert V
}

type queue[V any, D any] struct {
	items []item[V, D]
	less  gcore.Compare[D]
}

func (q *queue[V, D]) Len() int { return len(q.items) }
func (q *queue[V, D]) Less(i, j int) bool {
	return q.less(q.items[i].dist, q.items[j].dist)
}
func (q *queue[V, D]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *queue[V, D]) Push(x any)    { q.items = append(q.items, x.(item[V, D])) }
func (q *queue[V, D]) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// closedSet is the capability both sidestore.HashSet and Parallel's
// mutex-guarded atomicSet provide: insert, and test membership from
// whichever goroutine is asking.
type closedSet[V comparable] interface {
	Insert(v V) bool
	Contains(v V) bool
}

// side bundles one direction's search state: its own priority queue,
// its own closed set, and the distances it has found so far. closed
// is an interface so Parallel can swap in a synchronized
// implementation without duplicating the step logic below.
type side[V comparable, D any] struct {
	queue    *queue[V, D]
	closed   closedSet[V]
	distance *sidestore.HashMap[V, D]
}

func newSide[V comparable, D any](root V, zero D, less gcore.Compare[D], closed closedSet[V]) *side[V, D] {
	s := &side[V, D]{
		queue:    &queue[V, D]{less: less},
		closed:   closed,
		distance: sidestore.NewHashMap[V, D](),
	}
	heap.Init(s.queue)
	s.distance.Set(root, zero)
	heap.Push(s.queue, item[V, D]{dist: zero, vert: root})
	return s
}

// stepOut pops own's cheapest frontier vertex and relaxes its
// outgoing edges, as the s-side of a bidirectional search does. It
// reports done if the popped vertex is already in far's closed set —
// the two searches have met.
func stepOut[V, E comparable, G gcore.OutAdjacency[V, E], D any](
	g G, own, far *side[V, D], tree *subforest.Tree[V, E, G],
	weight gcore.Weight[E, D], less gcore.Compare[D], combine gcore.Combine[D], checked bool,
) (bool, error) {
	top := heap.Pop(own.queue).(item[V, D])
	d, v := top.dist, top.vert
	if own.closed.Contains(v) {
		return false, nil
	}
	own.closed.Insert(v)
	if far.closed.Contains(v) {
		return true, nil
	}

	for _, e := range g.OutEdges(v) {
		u := g.Head(e)
		if own.closed.Contains(u) {
			continue
		}
		c := combine(d, weight(e))
		if checked && less(c, d) {
			return false, gcore.Wrapf(gcore.ErrPreconditionUnmet, "bidijkstra: edge weight must be non-negative")
		}
		du, reached := own.distance.Get(u)
		if !reached || less(c, du) {
			own.distance.Set(u, c)
			tree.InsertEdge(e)
			heap.Push(own.queue, item[V, D]{dist: c, vert: u})
		}
	}
	return false, nil
}

// stepIn is stepOut's mirror, walking incoming edges backward — the
// t-side of a bidirectional search.
func stepIn[V, E comparable, G gcore.InAdjacency[V, E], D any](
	g G, own, far *side[V, D], tree *subforest.Tree[V, E, G],
	weight gcore.Weight[E, D], less gcore.Compare[D], combine gcore.Combine[D], checked bool,
) (bool, error) {
	top := heap.Pop(own.queue).(item[V, D])
	d, v := top.dist, top.vert
	if own.closed.Contains(v) {
		return false, nil
	}
	own.closed.Insert(v)
	if far.closed.Contains(v) {
		return true, nil
	}

	for _, e := range g.InEdges(v) {
		u := g.Tail(e)
		if own.closed.Contains(u) {
			continue
		}
		c := combine(d, weight(e))
		if checked && less(c, d) {
			return false, gcore.Wrapf(gcore.ErrPreconditionUnmet, "bidijkstra: edge weight must be non-negative")
		}
		du, reached := own.distance.Get(u)
		if !reached || less(c, du) {
			own.distance.Set(u, c)
			tree.InsertEdge(e)
			heap.Push(own.queue, item[V, D]{dist: c, vert: u})
		}
	}
	return false, nil
}

// minimalRendezvous scans every vertex both sides have reached and
// returns the one minimizing combine(sDist, tDist) — the vertex-wide
// scan this port uses in place of the source's infinity-sentinel min
// over every vertex of the graph (see the package doc).
func minimalRendezvous[V comparable, D any](verts []V, s, t *side[V, D], less gcore.Compare[D], combine gcore.Combine[D]) (V, bool) {
	var best V
	var bestTotal D
	found := false
	for _, v := range verts {
		sd, ok := s.distance.Get(v)
		if !ok {
			continue
		}
		td, ok := t.distance.Get(v)
		if !ok {
			continue
		}
		total := combine(sd, td)
		if !found || less(total, bestTotal) {
			best, bestTotal, found = v, total, true
		}
	}
	return best, found
}

func assemblePath[V, E comparable](
	g gcore.Graph[V, E], s V,
	sTree, tTree interface{ PathToRoot(V) []E },
	rendezvous V, found bool,
) (gcore.Path[V, E], error) {
	if !found {
		return gcore.NewPath[V, E](g.NullVert()), nil
	}
	prefix := gcore.NewPath(s, sTree.PathToRoot(rendezvous)...)
	suffix := gcore.NewPath(rendezvous, tTree.PathToRoot(rendezvous)...)
	return gcore.ConcatenatePaths[V, E](g, prefix, suffix)
}

// Sequential finds a shortest path from s to t by alternating single
// steps of a forward search from s and a backward search from t,
// always advancing whichever side's frontier is currently smaller,
// until one side re-discovers a vertex the other has already closed.
// It returns a null path (source == g.NullVert()) if s and t are not
// connected.
//
// Grounded directly on bidirectional_search.inl's
// Bi_edge_graph<Impl>::shortest_path.
func Sequential[V, E comparable, G gcore.BiEdgeGraph[V, E], D any](
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
	sSide := newSide[V](s, zero, less, sidestore.NewHashSet[V]())
	tSide := newSide[V](t, zero, less, sidestore.NewHashSet[V]())

	for sSide.queue.Len() > 0 && tSide.queue.Len() > 0 {
		var done bool
		var err error
		if sSide.queue.Len() <= tSide.queue.Len() {
			done, err = stepOut[V, E](g, sSide, tSide, sTree, weight, less, combine, cfg.checked)
		} else {
			done, err = stepIn[V, E](g, tSide, sSide, tTree, weight, less, combine, cfg.checked)
		}
		if err != nil {
			return gcore.Path[V, E]{}, err
		}
		if done {
			break
		}
	}

	rendezvous, found := minimalRendezvous[V](g.Verts(), sSide, tSide, less, combine)
	return assemblePath[V, E](g, s, sTree, tTree, rendezvous, found)
}
