package primtree

import (
	"container/heap"

	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/sidestore"
	"github.com/nodeforge/graphkit/subforest"
)

type frontierItem[E any, D any] struct {
	dist D
	edge E
}

type frontier[E any, D any] struct {
	items []frontierItem[E, D]
	less  gcore.Compare[D]
}

func (q *frontier[E, D]) Len() int { return len(q.items) }
func (q *frontier[E, D]) Less(i, j int) bool {
	return q.less(q.items[i].dist, q.items[j].dist)
}
func (q *frontier[E, D]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *frontier[E, D]) Push(x any)    { q.items = append(q.items, x.(frontierItem[E, D])) }
func (q *frontier[E, D]) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	return it
}

// Reachable grows a minimum spanning tree/forest outward from root,
// following outgoing edges, by repeatedly accepting the cheapest edge
// that reaches a vertex not yet in the tree. It returns the tree (an
// in-tree rooted at root, like Dijkstra's output: tree.PathToRoot(v)
// walks back to root) and the combined weight of its edges.
//
// If g is disconnected from root, the returned tree only spans root's
// component; requireSpanning reports gcore.ErrPreconditionUnmet in
// that case instead of silently returning a partial tree.
func Reachable[V, E comparable, G gcore.OutAdjacency[V, E], D any](
	g G,
	root V,
	weight gcore.Weight[E, D],
	less gcore.Compare[D],
	combine gcore.Combine[D],
	zero D,
	requireSpanning bool,
) (*subforest.Tree[V, E, G], D, error) {
	tree := subforest.NewInTree[V, E](g, root, true)
	closed := sidestore.NewHashSet[V]()

	q := &frontier[E, D]{less: less}
	heap.Init(q)

	enqueue := func(u V) {
		for _, e := range g.OutEdges(u) {
			heap.Push(q, frontierItem[E, D]{dist: weight(e), edge: e})
		}
	}

	closed.Insert(root)
	enqueue(root)

	total := zero
	for q.Len() > 0 {
		top := heap.Pop(q).(frontierItem[E, D])
		v := g.Head(top.edge)
		if closed.Contains(v) {
			continue
		}
		closed.Insert(v)
		tree.InsertEdge(top.edge)
		total = combine(total, top.dist)
		enqueue(v)
	}

	if requireSpanning && closed.Len() < g.Order() {
		return tree, total, gcore.Wrapf(gcore.ErrPreconditionUnmet, "primtree: graph is not connected from root")
	}
	return tree, total, nil
}

// Reaching is Reachable's mirror, growing the tree following incoming
// edges toward a target vertex (Graph.hpp's
// In_edge_graph::minimum_tree_reaching_to).
func Reaching[V, E comparable, G gcore.InAdjacency[V, E], D any](
	g G,
	target V,
	weight gcore.Weight[E, D],
	less gcore.Compare[D],
	combine gcore.Combine[D],
	zero D,
	requireSpanning bool,
) (*subforest.Tree[V, E, G], D, error) {
	tree := subforest.NewOutTree[V, E](g, target, true)
	closed := sidestore.NewHashSet[V]()

	q := &frontier[E, D]{less: less}
	heap.Init(q)

	enqueue := func(u V) {
		for _, e := range g.InEdges(u) {
			heap.Push(q, frontierItem[E, D]{dist: weight(e), edge: e})
		}
	}

	closed.Insert(target)
	enqueue(target)

	total := zero
	for q.Len() > 0 {
		top := heap.Pop(q).(frontierItem[E, D])
		v := g.Tail(top.edge)
		if closed.Contains(v) {
			continue
		}
		closed.Insert(v)
		tree.InsertEdge(top.edge)
		total = combine(total, top.dist)
		enqueue(v)
	}

	if requireSpanning && closed.Len() < g.Order() {
		return tree, total, gcore.Wrapf(gcore.ErrPreconditionUnmet, "primtree: graph is not connected from target")
	}
	return tree, total, nil
}
