package tensor

import "github.com/nodeforge/graphkit/gcore"

// Product2 is the tensor product of two graphs: Verts is the
// cartesian product of g1.Verts() and g2.Verts(), Edges likewise over
// each factor's Edges(), and Tail/Head apply componentwise.
type Product2[V1, E1 comparable, G1 gcore.Graph[V1, E1], V2, E2 comparable, G2 gcore.Graph[V2, E2]] struct {
	g1 G1
	g2 G2
}

// NewProduct2 returns the tensor product of g1 and g2.
func NewProduct2[V1, E1 comparable, G1 gcore.Graph[V1, E1], V2, E2 comparable, G2 gcore.Graph[V2, E2]](g1 G1, g2 G2) *Product2[V1, E1, G1, V2, E2, G2] {
	return &Product2[V1, E1, G1, V2, E2, G2]{g1: g1, g2: g2}
}

func (p *Product2[V1, E1, G1, V2, E2, G2]) NullVert() Pair[V1, V2] {
	return Pair[V1, V2]{First: p.g1.NullVert(), Second: p.g2.NullVert()}
}

func (p *Product2[V1, E1, G1, V2, E2, G2]) NullEdge() Pair[E1, E2] {
	return Pair[E1, E2]{First: p.g1.NullEdge(), Second: p.g2.NullEdge()}
}

func (p *Product2[V1, E1, G1, V2, E2, G2]) Verts() []Pair[V1, V2] {
	v1s, v2s := p.g1.Verts(), p.g2.Verts()
	out := make([]Pair[V1, V2], 0, len(v1s)*len(v2s))
	for _, a := range v1s {
		for _, b := range v2s {
			out = append(out, Pair[V1, V2]{First: a, Second: b})
		}
	}
	return out
}

func (p *Product2[V1, E1, G1, V2, E2, G2]) Edges() []Pair[E1, E2] {
	e1s, e2s := p.g1.Edges(), p.g2.Edges()
	out := make([]Pair[E1, E2], 0, len(e1s)*len(e2s))
	for _, a := range e1s {
		for _, b := range e2s {
			out = append(out, Pair[E1, E2]{First: a, Second: b})
		}
	}
	return out
}

func (p *Product2[V1, E1, G1, V2, E2, G2]) Order() int { return p.g1.Order() * p.g2.Order() }
func (p *Product2[V1, E1, G1, V2, E2, G2]) Size() int  { return p.g1.Size() * p.g2.Size() }

func (p *Product2[V1, E1, G1, V2, E2, G2]) Tail(e Pair[E1, E2]) Pair[V1, V2] {
	return Pair[V1, V2]{First: p.g1.Tail(e.First), Second: p.g2.Tail(e.Second)}
}

func (p *Product2[V1, E1, G1, V2, E2, G2]) Head(e Pair[E1, E2]) Pair[V1, V2] {
	return Pair[V1, V2]{First: p.g1.Head(e.First), Second: p.g2.Head(e.Second)}
}

var _ gcore.Graph[Pair[int, int], Pair[int, int]] = (*Product2[int, int, gcore.Graph[int, int], int, int, gcore.Graph[int, int]])(nil)
