// Package subforest implements the subforest and subtree views: a
// forest of at-most-one "key edge" per vertex, built incrementally by
// an algorithm (Prim, Dijkstra) as it discovers tree edges, and read
// back as an ordinary gcore.Graph over the same vertex set.
//
// Grounded on the source's impl/Subforest.hpp (_Subforest, with its
// Out/In specializations choosing whether a key edge is filed under
// its tail or its head) and subforest.inl's use from _prim. Tree
// narrows Forest to track a distinguished root, which the original
// pack does not carry a surviving header for — built in the same idiom
// by inference from dijkstra.inl/subforest.inl's call sites.
package subforest
