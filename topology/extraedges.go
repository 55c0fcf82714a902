package topology

import (
	"go.uber.org/zap"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/logging"
)

// removalKey identifies one (center, far-neighbor) extra-edge nomination;
// used to deduplicate nominations collected from different neighbor pairs
// within the same pass.
type removalKey struct {
	center, far graph.VertexID
}

// RemoveExtraEdges deletes the 26-connectivity "shortcut" diagonals that
// appear at branching voxels: for every vertex with degree > 2, each
// unordered pair of its neighbors that is itself edge-connected forms a
// triangle, and the edge from the center to whichever neighbor is farther
// (by Euclidean distance) is removed, keeping the shorter center-to-
// neighbor edge; a pair whose two members are equally far from the center
// removes nothing. It reports whether any edge was ever removed across all
// passes; it fails softly (returns false, no mutation) when the graph has
// no such triangle.
//
// All candidate removals within one pass are collected before any mutation
// (core/methods_edges.go's FilterEdges "collect under read, mutate after"
// discipline) since removing an edge mid-scan would invalidate the
// Neighbors()/HasEdgeBetween() views later pairs in the same pass rely on.
// Passes repeat until one removes nothing. logger receives a Debug line per
// pass naming how many edges it removed; pass nil to discard diagnostics.
func RemoveExtraEdges(g *graph.SpatialGraph, logger *zap.SugaredLogger) bool {
	log := logging.Safe(logger)
	removedEver := false
	for pass := 1; ; pass++ {
		toRemove := collectExtraEdgeRemovals(g)
		if len(toRemove) == 0 {
			break
		}
		removed := 0
		for _, r := range toRemove {
			edges := g.EdgesBetween(r.center, r.far)
			if len(edges) == 0 {
				continue
			}
			_ = g.RemoveEdge(edges[0].ID)
			removedEver = true
			removed++
		}
		log.Debugw("removed extra edges", "pass", pass, "count", removed)
	}
	return removedEver
}

func collectExtraEdgeRemovals(g *graph.SpatialGraph) []removalKey {
	seen := make(map[removalKey]bool)
	var out []removalKey

	for _, v := range g.Vertices() {
		if g.Degree(v) <= 2 {
			continue
		}
		neighbors := g.Neighbors(v)
		centerVertex, err := g.GetVertex(v)
		if err != nil {
			continue
		}
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				n1, n2 := neighbors[i], neighbors[j]
				if !g.HasEdgeBetween(n1, n2) {
					continue
				}
				p1, err1 := g.GetVertex(n1)
				p2, err2 := g.GetVertex(n2)
				if err1 != nil || err2 != nil {
					continue
				}
				dV1 := centerVertex.Pos.Dist(p1.Pos)
				dV2 := centerVertex.Pos.Dist(p2.Pos)
				if dV1 == dV2 {
					// Neither neighbor is farther: this pair nominates nothing.
					continue
				}
				far := n2
				if dV1 > dV2 {
					far = n1
				}
				key := removalKey{center: v, far: far}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}
