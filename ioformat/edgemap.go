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

// VertexPair identifies an edge by its two endpoint vertex ids rather than
// its graph-assigned EdgeID, matching the edge_to_label_map format's
// "source-target" key, which survives a graph reload where EdgeID
// assignment order may differ.
type VertexPair struct {
	Source, Target graph.VertexID
}

// WriteEdgeLabelMap writes m as an edge_to_label_map: a "# "+header+"\n"
// comment line, then one "source-target, value" row per entry.
func WriteEdgeLabelMap(w io.Writer, header string, m map[VertexPair]int) error {
	if _, err := fmt.Fprintf(w, "# %s\n", header); err != nil {
		return err
	}
	for _, key := range sortedVertexPairs(m) {
		if _, err := fmt.Fprintf(w, "%d-%d, %d\n", key.Source, key.Target, m[key]); err != nil {
			return err
		}
	}
	return nil
}

// ReadEdgeLabelMap parses an edge_to_label_map CSV stream, skipping the
// leading "#" comment line. Each data row must have exactly two fields,
// the first being two integers joined by a literal hyphen.
func ReadEdgeLabelMap(r io.Reader) (map[VertexPair]int, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	out := make(map[VertexPair]int)
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
		key, err := parseVertexPair(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d endpoint pair %q: %v", ErrMalformedRow, line, record[0], err)
		}
		value, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d value %q: %v", ErrMalformedRow, line, record[1], err)
		}
		out[key] = value
	}
	return out, nil
}

func parseVertexPair(s string) (VertexPair, error) {
	idx := strings.IndexByte(s, '-')
	if idx < 0 {
		return VertexPair{}, fmt.Errorf("missing '-' separator")
	}
	source, err := strconv.ParseUint(s[:idx], 10, 64)
	if err != nil {
		return VertexPair{}, err
	}
	target, err := strconv.ParseUint(s[idx+1:], 10, 64)
	if err != nil {
		return VertexPair{}, err
	}
	return VertexPair{Source: graph.VertexID(source), Target: graph.VertexID(target)}, nil
}

func sortedVertexPairs(m map[VertexPair]int) []VertexPair {
	out := make([]VertexPair, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
