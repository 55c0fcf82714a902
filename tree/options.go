package tree

import (
	"go.uber.org/zap"

	"github.com/sgext-go/sgext/graph"
)

// Options controls the generation-labeling walk. The zero value is not
// usable directly; build one with NewOptions and the With* functions below,
// which seed the defaults the original radius/angle analysis was tuned
// against.
type Options struct {
	// DecreaseRadiusRatio is the fraction by which the local radius must
	// shrink from parent to child, 1-r(t)/r(s), to vote for a generation
	// increase.
	DecreaseRadiusRatio float64
	// KeepGenerationIfAngleLessThan is the angle, in degrees, below which
	// the tree edge is considered a straight continuation of the branch
	// coming from the root, vetoing an inconclusive radius-edge vote.
	KeepGenerationIfAngleLessThan float64
	// IncreaseGenerationIfAngleGreaterThan is the angle, in degrees, above
	// which the forced-increase-by-angle pass bumps a sibling branch that
	// tied on generation with another sibling.
	IncreaseGenerationIfAngleGreaterThan float64
	// NumEdgePointsToComputeAngle is how many edge-interior points (counted
	// from the end closer to the shared source) are used, instead of the
	// raw endpoint positions, when an edge has enough of them.
	NumEdgePointsToComputeAngle int
	// PositionsArePhysical selects whether graph/edge positions must be
	// converted to index space before sampling the distance map.
	PositionsArePhysical bool
	// Roots, if non-empty, fixes the BFS root(s) instead of picking the
	// largest-radius vertex per connected component.
	Roots []graph.VertexID
	// FixedGenerations seeds the generation map before the walk starts;
	// any vertex present here keeps its assigned generation and is never
	// revisited by the radius/angle analysis.
	FixedGenerations map[graph.VertexID]int
	// Logger receives a Debug line with the number of flagged anomalies;
	// nil discards it.
	Logger *zap.SugaredLogger
}

// Option mutates an Options value under construction.
type Option func(*Options)

// NewOptions builds the default Options: a 10% radius-decrease threshold,
// a 10-degree "keep" cone, a 40-degree "force increase" cone, and 5
// edge-points used for angle sampling, mirroring the original analysis's
// tuned constants.
func NewOptions(opts ...Option) Options {
	o := Options{
		DecreaseRadiusRatio:                  0.1,
		KeepGenerationIfAngleLessThan:        10,
		IncreaseGenerationIfAngleGreaterThan: 40,
		NumEdgePointsToComputeAngle:          5,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDecreaseRadiusRatio overrides DecreaseRadiusRatio.
func WithDecreaseRadiusRatio(ratio float64) Option {
	return func(o *Options) { o.DecreaseRadiusRatio = ratio }
}

// WithKeepGenerationAngle overrides KeepGenerationIfAngleLessThan.
func WithKeepGenerationAngle(degrees float64) Option {
	return func(o *Options) { o.KeepGenerationIfAngleLessThan = degrees }
}

// WithForceIncreaseAngle overrides IncreaseGenerationIfAngleGreaterThan.
func WithForceIncreaseAngle(degrees float64) Option {
	return func(o *Options) { o.IncreaseGenerationIfAngleGreaterThan = degrees }
}

// WithNumEdgePointsToComputeAngle overrides NumEdgePointsToComputeAngle.
func WithNumEdgePointsToComputeAngle(n int) Option {
	return func(o *Options) { o.NumEdgePointsToComputeAngle = n }
}

// WithPhysicalPositions sets PositionsArePhysical.
func WithPhysicalPositions(physical bool) Option {
	return func(o *Options) { o.PositionsArePhysical = physical }
}

// WithRoots overrides automatic root selection.
func WithRoots(roots ...graph.VertexID) Option {
	return func(o *Options) { o.Roots = roots }
}

// WithFixedGenerations seeds the generation map with caller-supplied values.
func WithFixedGenerations(fixed map[graph.VertexID]int) Option {
	return func(o *Options) { o.FixedGenerations = fixed }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) { o.Logger = logger }
}
