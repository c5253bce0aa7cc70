package floydwarshall

// Options mirrors dijkstra.Options/bidijkstra.Options: checked
// defaults to true, and a negative cycle discovered during relaxation
// (a vertex whose self-distance drops below zero) is reported as an
// error rather than returned silently.
type Options[D any] struct {
	checked bool
}

func DefaultOptions[D any]() Options[D] { return Options[D]{checked: true} }

type Option[D any] func(*Options[D])

func WithChecked[D any](checked bool) Option[D] {
	return func(o *Options[D]) { o.checked = checked }
}
