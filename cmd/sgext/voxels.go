package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sgext-go/sgext/lift"
)

// readVoxelList parses a foreground voxel list: one "x y z" integer triple
// per line, blank lines ignored.
func readVoxelList(r io.Reader) ([]lift.Index3, error) {
	sc := bufio.NewScanner(r)
	var voxels []lift.Index3
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("voxel list line %d: expected 3 fields, got %d", line, len(fields))
		}
		x, err1 := strconv.Atoi(fields[0])
		y, err2 := strconv.Atoi(fields[1])
		z, err3 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("voxel list line %d: non-integer coordinate", line)
		}
		voxels = append(voxels, lift.Index3{X: x, Y: y, Z: z})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return voxels, nil
}
