package gcore

// Weight extracts a distance value from an edge; every algorithm takes
// one instead of assuming edges carry a built-in weight, since edges
// here are bare handles (the source's edges-as-handles design — see
// dijkstra.inl's externally supplied Weight parameter).
type Weight[E, D any] func(e E) D

// Compare is a strict weak ordering over D; the default is ordinary
// "less than". Algorithms never assume D is numeric beyond what
// Compare and Combine tell them.
type Compare[D any] func(a, b D) bool

// Combine is an associative operator accumulating distances along a
// path; the default is ordinary "plus". Combine must be monotonic
// non-decreasing under Compare for Dijkstra's precondition to hold:
// ¬Compare(Combine(d, w), d) for every edge weight w.
type Combine[D any] func(a, b D) D
