package voxelize

import (
	"math"

	"go.uber.org/zap"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/logging"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

// Report is the non-fatal diagnostic output of Voxelize: it never blocks a
// run, but lets tests and callers assert the zero-label collision spec.md
// §4.10 calls out never silently happens.
type Report struct {
	// VerticesStamped and EdgesStamped count how many map entries actually
	// landed a voxel (vs. referring to a vertex/edge absent from g).
	VerticesStamped int
	EdgesStamped    int
	// ZeroLabels counts voxels stamped with label 0, which collides with
	// the image's own background value.
	ZeroLabels int
}

// Voxelize rasterizes g into a new zero-initialized LabelImage with the
// same size/origin/spacing/direction as ref. For every vertex present in
// vertexLabels its voxel is set to the mapped label; for every edge present
// in edgeLabels, every one of its edge-interior voxels is set to the mapped
// label. graphPositionsArePhysical selects whether g's positions must be
// mapped back to index space via ref's inverse affine (transform.ToIndex)
// before rasterizing, or are already index-space coordinates.
//
// logger receives a Warn line if any stamped label is 0; pass nil to
// discard diagnostics.
func Voxelize(
	g *graph.SpatialGraph,
	ref imaging.Image3D,
	vertexLabels map[graph.VertexID]int,
	edgeLabels map[graph.EdgeID]int,
	graphPositionsArePhysical bool,
	logger *zap.SugaredLogger,
) (imaging.LabelImage, Report) {
	log := logging.Safe(logger)
	size := ref.Size()
	out := imaging.NewDenseLabelImage(size, ref.Origin(), ref.Spacing(), ref.Direction())

	toIndex := func(p spatial.Point3) lift.Index3 {
		if graphPositionsArePhysical {
			p = transform.ToIndex(p, ref.Origin(), ref.Spacing(), ref.Direction())
		}
		return lift.Index3{
			X: int(math.Round(p.X)),
			Y: int(math.Round(p.Y)),
			Z: int(math.Round(p.Z)),
		}
	}

	report := Report{}
	stamp := func(idx lift.Index3, label int) {
		out.SetPixel(idx, label)
		if label == 0 {
			report.ZeroLabels++
		}
	}

	for vid, label := range vertexLabels {
		v, err := g.GetVertex(vid)
		if err != nil {
			continue
		}
		stamp(toIndex(v.Pos), label)
		report.VerticesStamped++
	}

	for eid, label := range edgeLabels {
		e, err := g.GetEdge(eid)
		if err != nil {
			continue
		}
		for _, p := range e.EdgePoints {
			stamp(toIndex(p), label)
		}
		report.EdgesStamped++
	}

	if report.ZeroLabels > 0 {
		log.Warnw("voxelize produced voxels labeled 0, colliding with background", "count", report.ZeroLabels)
	}

	return out, report
}

// EdgeLabelFromVertexLabelMap synthesizes an edge label map from a vertex
// label map: each edge present in g whose source and target both have a
// vertex-label entry gets chooser(sourceLabel, targetLabel); edges with a
// missing endpoint entry are omitted, per spec.md §4.10. A nil chooser
// defaults to max(source, target).
func EdgeLabelFromVertexLabelMap(g *graph.SpatialGraph, vertexLabels map[graph.VertexID]int, chooser func(source, target int) int) map[graph.EdgeID]int {
	if chooser == nil {
		chooser = func(a, b int) int {
			if a > b {
				return a
			}
			return b
		}
	}

	out := make(map[graph.EdgeID]int)
	for _, e := range g.Edges() {
		src, ok1 := vertexLabels[e.From]
		dst, ok2 := vertexLabels[e.To]
		if !ok1 || !ok2 {
			continue
		}
		out[e.ID] = chooser(src, dst)
	}
	return out
}
