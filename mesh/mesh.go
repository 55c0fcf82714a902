package mesh

import (
	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// Variant selects how each edge is represented as a cell.
type Variant int

const (
	// LineCell emits one straight-line cell per edge, connecting only its
	// two endpoint points and ignoring interior edge-points.
	LineCell Variant = iota
	// PolylineCell emits one polyline cell per edge, running through every
	// interior edge-point in order between its two endpoints.
	PolylineCell
)

// Cell is one mesh cell: an ordered list of indices into Mesh.Points.
type Cell struct {
	PointIndices []int
}

// PointAttributes are the per-point scalar fields spec.md §4.12 names,
// indexed in parallel with Mesh.Points.
type PointAttributes struct {
	// VertexDescriptor is the originating VertexID, or -1 for a point that
	// came from an edge's interior polyline.
	VertexDescriptor []int64
	// Degree is the vertex's graph degree, or 2 for an edge-interior point
	// (every interior polyline point has exactly two neighbors: its
	// predecessor and successor along the edge).
	Degree []int
	// SpatialNodeID is the vertex's user-assigned SpatialNode.ID, or -1 for
	// an edge-interior point.
	SpatialNodeID []int64
}

// CellAttributes are the per-cell scalar fields spec.md §4.12 names,
// indexed in parallel with Mesh.Cells.
type CellAttributes struct {
	// EndToEndDistance is the straight-line distance between the edge's two
	// endpoints.
	EndToEndDistance []float64
	// ContourLength is the sum of segment lengths along the edge's full
	// polyline (endpoints plus every interior edge-point in order).
	ContourLength []float64
}

// Mesh is the unstructured-grid-like output of Emit.
type Mesh struct {
	Points          []spatial.Point3
	Cells           []Cell
	PointAttributes PointAttributes
	CellAttributes  CellAttributes
}

// Emit builds a Mesh from g: every vertex becomes a point, and every edge
// becomes one cell in the chosen Variant, with points appended for any
// edge-interior positions a PolylineCell needs. Vertex points are
// deduplicated by VertexID (a vertex shared by many edges contributes a
// single point); edge-interior points are never deduplicated across edges,
// matching spec.md §4.12's "union of vertex positions and, in the
// edge-point variant, edge interior points" wording.
func Emit(g *graph.SpatialGraph, variant Variant) *Mesh {
	m := &Mesh{}

	vertexPointIndex := make(map[graph.VertexID]int)
	for _, vid := range g.Vertices() {
		v, err := g.GetVertex(vid)
		if err != nil {
			continue
		}
		idx := len(m.Points)
		m.Points = append(m.Points, v.Pos)
		m.PointAttributes.VertexDescriptor = append(m.PointAttributes.VertexDescriptor, int64(vid))
		m.PointAttributes.Degree = append(m.PointAttributes.Degree, g.Degree(vid))
		m.PointAttributes.SpatialNodeID = append(m.PointAttributes.SpatialNodeID, v.ID)
		vertexPointIndex[vid] = idx
	}

	for _, e := range g.Edges() {
		fromIdx, ok1 := vertexPointIndex[e.From]
		toIdx, ok2 := vertexPointIndex[e.To]
		if !ok1 || !ok2 {
			continue
		}
		fromVertex, _ := g.GetVertex(e.From)
		toVertex, _ := g.GetVertex(e.To)

		var cell Cell
		switch variant {
		case PolylineCell:
			cell.PointIndices = append(cell.PointIndices, fromIdx)
			for _, p := range e.EdgePoints {
				idx := len(m.Points)
				m.Points = append(m.Points, p)
				m.PointAttributes.VertexDescriptor = append(m.PointAttributes.VertexDescriptor, -1)
				m.PointAttributes.Degree = append(m.PointAttributes.Degree, 2)
				m.PointAttributes.SpatialNodeID = append(m.PointAttributes.SpatialNodeID, -1)
				cell.PointIndices = append(cell.PointIndices, idx)
			}
			cell.PointIndices = append(cell.PointIndices, toIdx)
		default:
			cell.PointIndices = []int{fromIdx, toIdx}
		}
		m.Cells = append(m.Cells, cell)

		m.CellAttributes.EndToEndDistance = append(m.CellAttributes.EndToEndDistance, fromVertex.Pos.Dist(toVertex.Pos))
		m.CellAttributes.ContourLength = append(m.CellAttributes.ContourLength, contourLength(fromVertex.Pos, e.EdgePoints, toVertex.Pos))
	}

	return m
}

// contourLength sums segment lengths along from -> interior... -> to.
func contourLength(from spatial.Point3, interior []spatial.Point3, to spatial.Point3) float64 {
	total := 0.0
	prev := from
	for _, p := range interior {
		total += prev.Dist(p)
		prev = p
	}
	total += prev.Dist(to)
	return total
}
