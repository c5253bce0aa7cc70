// Package tensor implements the tensor (categorical) product view over
// two or three graphs: a vertex of the product is a tuple of one
// vertex from each factor, an edge of the product is a tuple of one
// edge from each factor, and Tail/Head apply componentwise.
//
// Grounded on impl/Tensor_product.hpp's Tensor_product<G...>, whose
// vert()/edges() are a ranges::cartesian_product over each factor's
// verts()/edges() and whose Vert/Edge are a tuple_wrapper (a
// comparable, hashable tuple — this port's Pair/Triple are the direct
// Go analogue, ordinary structs with comparable fields, so they are
// map-keyable with no hash specialization needed). The source leaves
// adjacency unimplemented on its product ("TODO: Add support for
// adjacencies when they are available in all constituent graphs"), so
// Product2/Product3 implement only gcore.Graph here too — both factors
// would need to be OutAdjacency/InAdjacency before an OutEdges/InEdges
// could be defined without materializing the whole product first.
//
// Go has no variadic generics, so an arbitrary-k Tensor_product<G...>
// cannot be expressed directly; Product2 and Product3 cover the
// factor counts that come up in practice, and a higher arity is
// reachable by nesting, e.g. Product2[Product2[G1, G2], G3].
package tensor
