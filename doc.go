// Package graphkit is an in-memory directed-graph library: a family of
// graph containers, lightweight non-owning views, and the algorithms that
// run uniformly across all of them.
//
// The container/view/algorithm triad is organized under dedicated
// subpackages rather than one flat package:
//
//	handle/        vertex & edge handle families (dense integer, pointer+birth-index)
//	sidestore/     side maps & sets, persistent (tracker-subscribed) and ephemeral
//	gtrack/        the tracker registry persistent side containers subscribe to
//	gcore/         the Graph/MutableGraph/OutAdjacency/InAdjacency/BiEdgeGraph
//	               interfaces, Path, and Weight/Compare/Combine
//	edgelist/      edge-list storage: pointer handles, supports removal
//	adjlist/       adjacency-list storage (out/in/bi): pointer handles, supports removal
//	stablelist/    stable edge-list & adjacency-list: integer handles, no removal
//	atomiclist/    lock-free adjacency-list storage: pointer or integer handles, concurrent insert
//	graphwrap/     the generic wrapper facade (random sampling, view construction, paths)
//	reverseview/   a read-only view with tail/head and Out/In swapped
//	subforest/     subforest & subtree views
//	tensor/        tensor-product views (binary, ternary)
//	dijkstra/      single-source / single-target Dijkstra over any Out/In adjacency
//	primtree/      Prim minimum reachable/reaching tree
//	bidijkstra/    bidirectional Dijkstra, sequential and two-goroutine parallel
//	floydwarshall/ all-pairs shortest paths
//
// Every representation implements gcore.Graph and, depending on which
// adjacency directions it keeps, gcore.OutAdjacency and/or
// gcore.InAdjacency; algorithms are written once against those interfaces
// and run unmodified over every storage representation and every view.
//
// graphkit does not read or write DOT text, does not ship a CLI or
// benchmark driver, and does not generate random numbers itself — callers
// supply a *rand.Rand wherever one is needed.
package graphkit
