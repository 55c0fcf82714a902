package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sgext-go/sgext/graph"
)

// WriteVertexIntMap writes m as a vertex_to_label_map or
// vertex_to_generation_map: a "# "+header+"\n" comment line, then one
// "vertex_id, value" row per entry in ascending vertex-id order.
func WriteVertexIntMap(w io.Writer, header string, m map[graph.VertexID]int) error {
	if _, err := fmt.Fprintf(w, "# %s\n", header); err != nil {
		return err
	}
	for _, vid := range sortedVertexIDs(m) {
		if _, err := fmt.Fprintf(w, "%d, %d\n", vid, m[vid]); err != nil {
			return err
		}
	}
	return nil
}

// ReadVertexIntMap parses a vertex_to_label_map or vertex_to_generation_map
// CSV stream, skipping the leading "#" comment line. Each data row must
// have exactly two integer fields; a malformed row returns ErrMalformedRow
// wrapped with the offending line number.
func ReadVertexIntMap(r io.Reader) (map[graph.VertexID]int, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	out := make(map[graph.VertexID]int)
	line := 0
	for {
		record, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ioformat: reading row %d: %w", line, err)
		}
		if len(record) != 2 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 2", ErrMalformedRow, line, len(record))
		}
		vid, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d vertex id %q: %v", ErrMalformedRow, line, record[0], err)
		}
		value, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d value %q: %v", ErrMalformedRow, line, record[1], err)
		}
		out[graph.VertexID(vid)] = value
	}
	return out, nil
}

// ValidateAgainstGraph checks that every vertex id in m exists in g,
// returning ErrVertexNotFound naming the first offender if not — the
// "NotFound" error kind spec.md §7 calls out for a fixed-generation map
// referencing a vertex absent from the graph.
func ValidateAgainstGraph(g *graph.SpatialGraph, m map[graph.VertexID]int) error {
	for _, vid := range sortedVertexIDs(m) {
		if !g.HasVertex(vid) {
			return fmt.Errorf("%w: vertex id %d", ErrVertexNotFound, vid)
		}
	}
	return nil
}

func sortedVertexIDs(m map[graph.VertexID]int) []graph.VertexID {
	out := make([]graph.VertexID, 0, len(m))
	for vid := range m {
		out = append(out, vid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
