// Package graphwrap implements the generic wrapper façade: operations
// that make sense over any representation (random sampling, path
// assembly, view construction) without belonging to a specific one.
//
// Grounded on the source's Graph.hpp, the CRTP base every concrete
// graph template derives from to pick up random_vert/random_edge/
// path/concatenate_paths/view constructors for free. Go has no CRTP;
// Wrapper recovers the same "add operations to any G" shape by
// embedding G as a type parameter instead of inheriting from it.
package graphwrap
