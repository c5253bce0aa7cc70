package dijkstra

import (
	"container/heap"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/sidestore"
	"github.com/nodeforge/graphkit/subforest"
)

// item is one priority-queue entry: the distance found so far to
// reach vert, and vert itself.
type item[V any, D any] struct {
	dist D
	vert V
}

// queue is a min-heap over item, ordered by less; the lazy-decrease-
// key pattern from the teacher's implementation is kept as-is —
// relaxation pushes a fresh entry rather than hunting for an existing
// one to update, and process skips an entry for a vertex already
// closed.
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

// From computes shortest distances from source over g, using weight
// to price each edge, less to order distances, and combine to
// accumulate a path's total weight from zero. It returns the shortest-
// path tree as a subforest.Tree rooted at source (an in-tree: each
// reached vertex's key edge is the last edge of its shortest path, so
// tree.PathToRoot(v) reconstructs the path from source to v) plus a
// side map of final distances, populated only for reached vertices.
//
// Under Options.checked (the default), a relaxation that would
// decrease a distance despite a non-negative combine is reported as
// gcore.ErrPreconditionUnmet rather than silently corrupting the tree.
func From[V, E comparable, G gcore.OutAdjacency[V, E], D any](
	g G,
	source V,
	weight gcore.Weight[E, D],
	less gcore.Compare[D],
	combine gcore.Combine[D],
	zero D,
	opts ...Option[D],
) (*subforest.Tree[V, E, G], *sidestore.HashMap[V, D], error) {
	cfg := DefaultOptions[D]()
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := subforest.NewInTree[V, E](g, source, cfg.checked)
	distance := sidestore.NewHashMap[V, D]()
	closed := sidestore.NewHashSet[V]()

	q := &queue[V, D]{less: less}
	heap.Init(q)
	distance.Set(source, zero)
	heap.Push(q, item[V, D]{dist: zero, vert: source})

	for q.Len() > 0 {
		top := heap.Pop(q).(item[V, D])
		d, v := top.dist, top.vert

		if closed.Contains(v) {
			continue
		}
		if cfg.hasMaxDistance && less(cfg.maxDistance, d) {
			break
		}
		closed.Insert(v)

		for _, e := range g.OutEdges(v) {
			u := g.Head(e)
			if closed.Contains(u) {
				continue
			}

			c := combine(d, weight(e))
			if cfg.checked && less(c, d) {
				return nil, nil, gcore.Wrapf(gcore.ErrPreconditionUnmet, "dijkstra: edge weight must be non-negative")
			}
			if cfg.hasMaxDistance && less(cfg.maxDistance, c) {
				continue
			}

			du, reached := distance.Get(u)
			if !reached || less(c, du) {
				distance.Set(u, c)
				tree.InsertEdge(e)
				heap.Push(q, item[V, D]{dist: c, vert: u})
			}
		}
	}

	return tree, distance, nil
}

// To is From's mirror, computing shortest distances to target by
// walking incoming edges backward (Graph.hpp's
// In_edge_graph::shortest_paths_to). The returned tree is an out-tree
// rooted at target: tree.PathToRoot(v) reconstructs the path from v to
// target.
func To[V, E comparable, G gcore.InAdjacency[V, E], D any](
	g G,
	target V,
	weight gcore.Weight[E, D],
	less gcore.Compare[D],
	combine gcore.Combine[D],
	zero D,
	opts ...Option[D],
) (*subforest.Tree[V, E, G], *sidestore.HashMap[V, D], error) {
	cfg := DefaultOptions[D]()
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := subforest.NewOutTree[V, E](g, target, cfg.checked)
	distance := sidestore.NewHashMap[V, D]()
	closed := sidestore.NewHashSet[V]()

	q := &queue[V, D]{less: less}
	heap.Init(q)
	distance.Set(target, zero)
	heap.Push(q, item[V, D]{dist: zero, vert: target})

	for q.Len() > 0 {
		top := heap.Pop(q).(item[V, D])
		d, v := top.dist, top.vert

		if closed.Contains(v) {
			continue
		}
		if cfg.hasMaxDistance && less(cfg.maxDistance, d) {
			break
		}
		closed.Insert(v)

		for _, e := range g.InEdges(v) {
			u := g.Tail(e)
			if closed.Contains(u) {
				continue
			}

			c := combine(d, weight(e))
			if cfg.checked && less(c, d) {
				return nil, nil, gcore.Wrapf(gcore.ErrPreconditionUnmet, "dijkstra: edge weight must be non-negative")
			}
			if cfg.hasMaxDistance && less(cfg.maxDistance, c) {
				continue
			}

			du, reached := distance.Get(u)
			if !reached || less(c, du) {
				distance.Set(u, c)
				tree.InsertEdge(e)
				heap.Push(q, item[V, D]{dist: c, vert: u})
			}
		}
	}

	return tree, distance, nil
}
