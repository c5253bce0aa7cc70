// Package gcore defines the handle-level contracts every storage
// representation, view, and algorithm in graphkit is written against:
// Graph, its Mutable/OutAdjacency/InAdjacency/BiEdgeGraph/AtomicGraph
// refinements, the Path value type, the Weight/Compare/Combine function
// shapes every algorithm takes, and the sentinel errors the package
// taxonomy is built from.
//
// A gcore.Graph[V, E] is parametrized over its own vertex and edge
// handle types, not over a vertex payload: insertion and payload access
// are representation-specific (see edgelist, adjlist, stablelist,
// atomiclist) because the payload type has no uniform role here. What
// is uniform — traversal, erasure, adjacency, cloning — lives in this
// package so dijkstra, primtree, bidijkstra, floydwarshall, and every
// view can be written once against any representation that implements
// the interface they need.
//
// Capabilities compose by interface embedding rather than inheritance:
// a representation that supports only outgoing traversal implements
// OutAdjacency; one that supports both implements BiEdgeGraph, which is
// nothing more than OutAdjacency and InAdjacency together.
package gcore
