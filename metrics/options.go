package metrics

// Options configures the edge-filter policy shared by EndToEndDistances,
// ContourLengths, and Angles.
type Options struct {
	// MinEdgePoints skips edges whose edge_points length is below this
	// threshold.
	MinEdgePoints int
	// IgnoreEndNodes skips edges incident to a degree-1 vertex.
	IgnoreEndNodes bool
	// IgnoreParallelEdges, for Angles, skips pairs of out-edges that share
	// the same target vertex instead of reporting a 0 angle for them.
	IgnoreParallelEdges bool
}

// Option configures an Options.
type Option func(*Options)

// DefaultOptions returns the permissive default: no minimum, end nodes and
// parallel edges both included.
func DefaultOptions() Options {
	return Options{MinEdgePoints: 0, IgnoreEndNodes: false, IgnoreParallelEdges: false}
}

// WithMinEdgePoints sets the minimum edge_points length a qualifying edge
// must have.
func WithMinEdgePoints(n int) Option {
	return func(o *Options) { o.MinEdgePoints = n }
}

// WithIgnoreEndNodes toggles skipping edges incident to a degree-1 vertex.
func WithIgnoreEndNodes(b bool) Option {
	return func(o *Options) { o.IgnoreEndNodes = b }
}

// WithIgnoreParallelEdges toggles skipping same-target out-edge pairs in
// Angles (instead of reporting angle 0 for them).
func WithIgnoreParallelEdges(b bool) Option {
	return func(o *Options) { o.IgnoreParallelEdges = b }
}
