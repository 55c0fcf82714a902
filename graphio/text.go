package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// WriteText dumps g as a human-readable node/edge list: one "V id x y z
// node_id" line per vertex in ascending VertexID order, then one "E id from
// to n" header line per edge followed by n "x y z" interior-point lines.
func WriteText(w io.Writer, g *graph.SpatialGraph) error {
	bw := bufio.NewWriter(w)
	for _, vid := range g.Vertices() {
		v, err := g.GetVertex(vid)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(bw, "V %d %s %d\n", vid, formatPoint(v.Pos), v.ID); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "E %d %d %d %d\n", e.ID, e.From, e.To, len(e.EdgePoints)); err != nil {
			return err
		}
		for _, p := range e.EdgePoints {
			if _, err := fmt.Fprintf(bw, "%s\n", formatPoint(p)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func formatPoint(p spatial.Point3) string {
	return fmt.Sprintf("%g %g %g", p.X, p.Y, p.Z)
}

// ReadText parses a dump written by WriteText. Vertex ids are re-assigned
// by the graph on AddVertexWithID, and edges are reconnected by the
// original from/to vertex ids recorded in the dump.
func ReadText(r io.Reader) (*graph.SpatialGraph, error) {
	g := graph.NewSpatialGraph()
	vertexByDumpID := make(map[uint64]graph.VertexID)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "V":
			if len(fields) != 6 {
				return nil, fmt.Errorf("graphio: line %d: malformed vertex row", line)
			}
			dumpID, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
			p, err := parsePoint(fields[2], fields[3], fields[4])
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
			nodeID, err := strconv.ParseInt(fields[5], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
			vertexByDumpID[dumpID] = g.AddVertexWithID(nodeID, p)
		case "E":
			if len(fields) != 5 {
				return nil, fmt.Errorf("graphio: line %d: malformed edge row", line)
			}
			fromDumpID, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
			toDumpID, err := strconv.ParseUint(fields[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
			n, err := strconv.Atoi(fields[4])
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
			points := make([]spatial.Point3, 0, n)
			for i := 0; i < n; i++ {
				if !sc.Scan() {
					return nil, fmt.Errorf("graphio: line %d: expected %d edge points, got %d", line, n, i)
				}
				line++
				pf := strings.Fields(strings.TrimSpace(sc.Text()))
				if len(pf) != 3 {
					return nil, fmt.Errorf("graphio: line %d: malformed edge point", line)
				}
				p, err := parsePoint(pf[0], pf[1], pf[2])
				if err != nil {
					return nil, fmt.Errorf("graphio: line %d: %w", line, err)
				}
				points = append(points, p)
			}
			from, ok := vertexByDumpID[fromDumpID]
			if !ok {
				return nil, fmt.Errorf("graphio: line %d: unknown source vertex %d", line, fromDumpID)
			}
			to, ok := vertexByDumpID[toDumpID]
			if !ok {
				return nil, fmt.Errorf("graphio: line %d: unknown target vertex %d", line, toDumpID)
			}
			if _, err := g.AddEdge(from, to, points); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("graphio: line %d: unknown row kind %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parsePoint(xs, ys, zs string) (spatial.Point3, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return spatial.Point3{}, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return spatial.Point3{}, err
	}
	z, err := strconv.ParseFloat(zs, 64)
	if err != nil {
		return spatial.Point3{}, err
	}
	return spatial.NewPoint3(x, y, z), nil
}
