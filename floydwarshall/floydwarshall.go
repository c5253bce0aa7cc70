package floydwarshall

import (
	"github.com/nodeforge/graphkit/gcore"
	"github.com/nodeforge/graphkit/handle"
	"github.com/nodeforge/graphkit/sidestore"
)

// AllPairs computes shortest distances between every pair of vertices
// g can reach from one another. The result is reachable[u][v] = the
// shortest u→v distance; absence of a v entry under u means v is
// unreachable from u (there is no generic infinity to default to, so
// this port uses presence instead of a sentinel value).
//
// Under Options.checked (the default), a negative cycle — detected as
// a vertex whose self-distance drops below zero — is reported as
// gcore.ErrPreconditionUnmet instead of returning a distance map that
// implies an infinitely-improvable path.
func AllPairs[V, E comparable, G gcore.Graph[V, E], D any](
	g G,
	weight gcore.Weight[E, D],
	less gcore.Compare[D],
	combine gcore.Combine[D],
	zero D,
	opts ...Option[D],
) (*sidestore.HashMap[V, *sidestore.HashMap[V, D]], error) {
	cfg := DefaultOptions[D]()
	for _, opt := range opts {
		opt(&cfg)
	}

	verts := g.Verts()
	if n := g.Order(); n > 0 {
		if _, ok := any(verts[0]).(handle.Int); ok {
			return allPairsDense[V, E](g, verts, weight, less, combine, zero, cfg)
		}
	}
	return allPairsGeneric[V, E](g, verts, weight, less, combine, zero, cfg)
}

// allPairsGeneric is the direct port of all_pairs_shortest_paths:
// nested side maps, populated for every vertex pair the relaxation
// loop actually reaches.
func allPairsGeneric[V, E comparable, G gcore.Graph[V, E], D any](
	g G, verts []V,
	weight gcore.Weight[E, D], less gcore.Compare[D], combine gcore.Combine[D], zero D,
	cfg Options[D],
) (*sidestore.HashMap[V, *sidestore.HashMap[V, D]], error) {
	distance := sidestore.NewHashMap[V, *sidestore.HashMap[V, D]]()
	for _, v := range verts {
		row := sidestore.NewHashMap[V, D]()
		row.Set(v, zero)
		distance.Set(v, row)
	}
	for _, e := range g.Edges() {
		u, v := g.Tail(e), g.Head(e)
		row, _ := distance.Get(u)
		w := weight(e)
		if cur, ok := row.Get(v); !ok || less(w, cur) {
			row.Set(v, w)
		}
	}

	for _, k := range verts {
		rowK, _ := distance.Get(k)
		for _, i := range verts {
			rowI, _ := distance.Get(i)
			dik, ok := rowI.Get(k)
			if !ok {
				continue
			}
			for _, j := range verts {
				dkj, ok := rowK.Get(j)
				if !ok {
					continue
				}
				cand := combine(dik, dkj)
				if dij, reached := rowI.Get(j); !reached || less(cand, dij) {
					rowI.Set(j, cand)
				}
			}
		}
	}

	if cfg.checked {
		for _, v := range verts {
			row, _ := distance.Get(v)
			if self, ok := row.Get(v); ok && less(self, zero) {
				return nil, gcore.Wrapf(gcore.ErrPreconditionUnmet, "floydwarshall: negative cycle through a vertex")
			}
		}
	}
	return distance, nil
}

// allPairsDense mirrors the teacher's floydWarshallInPlace: a flat
// row-major buffer indexed directly by each vertex's handle.Int value,
// the same k→i→j loop order, and a skip-if-unreached shortcut in place
// of an IsInf check (a generic D has no infinity to test against).
func allPairsDense[V, E comparable, G gcore.Graph[V, E], D any](
	g G, verts []V,
	weight gcore.Weight[E, D], less gcore.Compare[D], combine gcore.Combine[D], zero D,
	cfg Options[D],
) (*sidestore.HashMap[V, *sidestore.HashMap[V, D]], error) {
	n := g.Order()
	dist := make([]D, n*n)
	reached := make([]bool, n*n)
	for i := 0; i < n; i++ {
		dist[i*n+i] = zero
		reached[i*n+i] = true
	}
	for _, e := range g.Edges() {
		ui := int(any(g.Tail(e)).(handle.Int))
		vi := int(any(g.Head(e)).(handle.Int))
		idx := ui*n + vi
		w := weight(e)
		if !reached[idx] || less(w, dist[idx]) {
			dist[idx] = w
			reached[idx] = true
		}
	}

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			if !reached[i*n+k] {
				continue
			}
			baseI := i * n
			dik := dist[baseI+k]
			for j := 0; j < n; j++ {
				if !reached[baseK+j] {
					continue
				}
				cand := combine(dik, dist[baseK+j])
				idx := baseI + j
				if !reached[idx] || less(cand, dist[idx]) {
					dist[idx] = cand
					reached[idx] = true
				}
			}
		}
	}

	if cfg.checked {
		for i := 0; i < n; i++ {
			if reached[i*n+i] && less(dist[i*n+i], zero) {
				return nil, gcore.Wrapf(gcore.ErrPreconditionUnmet, "floydwarshall: negative cycle through a vertex")
			}
		}
	}

	distance := sidestore.NewHashMap[V, *sidestore.HashMap[V, D]]()
	for _, vi := range verts {
		i := int(any(vi).(handle.Int))
		row := sidestore.NewHashMap[V, D]()
		for _, vj := range verts {
			j := int(any(vj).(handle.Int))
			idx := i*n + j
			if reached[idx] {
				row.Set(vj, dist[idx])
			}
		}
		distance.Set(vi, row)
	}
	return distance, nil
}
