package tensor

import "github.com/nodeforge/graphkit/gcore"

// Product3 is Product2's three-factor counterpart.
type Product3[V1, E1 comparable, G1 gcore.Graph[V1, E1], V2, E2 comparable, G2 gcore.Graph[V2, E2], V3, E3 comparable, G3 gcore.Graph[V3, E3]] struct {
	g1 G1
	g2 G2
	g3 G3
}

// NewProduct3 returns the tensor product of g1, g2, and g3.
func NewProduct3[V1, E1 comparable, G1 gcore.Graph[V1, E1], V2, E2 comparable, G2 gcore.Graph[V2, E2], V3, E3 comparable, G3 gcore.Graph[V3, E3]](
	g1 G1, g2 G2, g3 G3,
) *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3] {
	return &Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]{g1: g1, g2: g2, g3: g3}
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) NullVert() Triple[V1, V2, V3] {
	return Triple[V1, V2, V3]{First: p.g1.NullVert(), Second: p.g2.NullVert(), Third: p.g3.NullVert()}
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) NullEdge() Triple[E1, E2, E3] {
	return Triple[E1, E2, E3]{First: p.g1.NullEdge(), Second: p.g2.NullEdge(), Third: p.g3.NullEdge()}
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) Verts() []Triple[V1, V2, V3] {
	v1s, v2s, v3s := p.g1.Verts(), p.g2.Verts(), p.g3.Verts()
	out := make([]Triple[V1, V2, V3], 0, len(v1s)*len(v2s)*len(v3s))
	for _, a := range v1s {
		for _, b := range v2s {
			for _, c := range v3s {
				out = append(out, Triple[V1, V2, V3]{First: a, Second: b, Third: c})
			}
		}
	}
	return out
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) Edges() []Triple[E1, E2, E3] {
	e1s, e2s, e3s := p.g1.Edges(), p.g2.Edges(), p.g3.Edges()
	out := make([]Triple[E1, E2, E3], 0, len(e1s)*len(e2s)*len(e3s))
	for _, a := range e1s {
		for _, b := range e2s {
			for _, c := range e3s {
				out = append(out, Triple[E1, E2, E3]{First: a, Second: b, Third: c})
			}
		}
	}
	return out
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) Order() int {
	return p.g1.Order() * p.g2.Order() * p.g3.Order()
}
func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) Size() int {
	return p.g1.Size() * p.g2.Size() * p.g3.Size()
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) Tail(e Triple[E1, E2, E3]) Triple[V1, V2, V3] {
	return Triple[V1, V2, V3]{First: p.g1.Tail(e.First), Second: p.g2.Tail(e.Second), Third: p.g3.Tail(e.Third)}
}

func (p *Product3[V1, E1, G1, V2, E2, G2, V3, E3, G3]) Head(e Triple[E1, E2, E3]) Triple[V1, V2, V3] {
	return Triple[V1, V2, V3]{First: p.g1.Head(e.First), Second: p.g2.Head(e.Second), Third: p.g3.Head(e.Third)}
}

var _ gcore.Graph[Triple[int, int, int], Triple[int, int, int]] = (*Product3[int, int, gcore.Graph[int, int], int, int, gcore.Graph[int, int], int, int, gcore.Graph[int, int]])(nil)
