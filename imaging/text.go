package imaging

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

// ReadDistanceMapText parses a dense distance-map dump: a size line ("nx ny
// nz"), an origin line, a spacing line, a direction line (9 row-major
// numbers), then nx*ny*nz values in row-major order with x varying
// fastest. It is the CLI-facing counterpart to imaging's otherwise
// in-memory-only DenseDistanceMapImage.
func ReadDistanceMapText(r io.Reader) (*DenseDistanceMapImage, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)

	size, err := readSize3Line(sc)
	if err != nil {
		return nil, err
	}
	origin, err := readPoint3Line(sc)
	if err != nil {
		return nil, err
	}
	spacing, err := readPoint3Line(sc)
	if err != nil {
		return nil, err
	}
	direction, err := readDirectionLine(sc)
	if err != nil {
		return nil, err
	}

	img := NewDenseDistanceMapImage(size, origin, spacing, direction)
	count := size.NX * size.NY * size.NZ
	i := 0
	for i < count && sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			if i >= count {
				break
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("imaging: value %d: %w", i, err)
			}
			z := i / (size.NX * size.NY)
			rem := i % (size.NX * size.NY)
			y := rem / size.NX
			x := rem % size.NX
			img.SetValue(lift.Index3{X: x, Y: y, Z: z}, v)
			i++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if i != count {
		return nil, fmt.Errorf("imaging: expected %d values, got %d", count, i)
	}
	return img, nil
}

// WriteLabelImageText dumps img in the same format ReadDistanceMapText
// parses, with integer rather than floating-point voxel values.
func WriteLabelImageText(w io.Writer, img *DenseLabelImage) error {
	bw := bufio.NewWriter(w)
	size := img.Size()
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", size.NX, size.NY, size.NZ); err != nil {
		return err
	}
	if err := writePoint3Line(bw, img.Origin()); err != nil {
		return err
	}
	if err := writePoint3Line(bw, img.Spacing()); err != nil {
		return err
	}
	if err := writeDirectionLine(bw, img.Direction()); err != nil {
		return err
	}
	for z := 0; z < size.NZ; z++ {
		for y := 0; y < size.NY; y++ {
			for x := 0; x < size.NX; x++ {
				if x > 0 {
					if _, err := bw.WriteString(" "); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(bw, "%d", img.GetPixel(lift.Index3{X: x, Y: y, Z: z})); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteDistanceMapText dumps img in the same format ReadDistanceMapText
// parses, with floating-point rather than integer voxel values. It is the
// write-side counterpart used by tools that synthesize a distance map (or
// re-export one read from elsewhere) rather than only ever consuming one.
func WriteDistanceMapText(w io.Writer, img *DenseDistanceMapImage) error {
	bw := bufio.NewWriter(w)
	size := img.Size()
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", size.NX, size.NY, size.NZ); err != nil {
		return err
	}
	if err := writePoint3Line(bw, img.Origin()); err != nil {
		return err
	}
	if err := writePoint3Line(bw, img.Spacing()); err != nil {
		return err
	}
	if err := writeDirectionLine(bw, img.Direction()); err != nil {
		return err
	}
	for z := 0; z < size.NZ; z++ {
		for y := 0; y < size.NY; y++ {
			for x := 0; x < size.NX; x++ {
				if x > 0 {
					if _, err := bw.WriteString(" "); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(bw, "%g", img.GetValue(lift.Index3{X: x, Y: y, Z: z})); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func readSize3Line(sc *bufio.Scanner) (Size3, error) {
	if !sc.Scan() {
		return Size3{}, fmt.Errorf("imaging: missing size line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return Size3{}, fmt.Errorf("imaging: malformed size line")
	}
	nx, err1 := strconv.Atoi(fields[0])
	ny, err2 := strconv.Atoi(fields[1])
	nz, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Size3{}, fmt.Errorf("imaging: non-integer size field")
	}
	return Size3{NX: nx, NY: ny, NZ: nz}, nil
}

func readPoint3Line(sc *bufio.Scanner) (spatial.Point3, error) {
	if !sc.Scan() {
		return spatial.Point3{}, fmt.Errorf("imaging: missing point line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 3 {
		return spatial.Point3{}, fmt.Errorf("imaging: malformed point line")
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return spatial.Point3{}, fmt.Errorf("imaging: non-numeric point field")
	}
	return spatial.NewPoint3(x, y, z), nil
}

func readDirectionLine(sc *bufio.Scanner) (transform.Direction, error) {
	if !sc.Scan() {
		return transform.Direction{}, fmt.Errorf("imaging: missing direction line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 9 {
		return transform.Direction{}, fmt.Errorf("imaging: malformed direction line")
	}
	var d transform.Direction
	for i := 0; i < 9; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return transform.Direction{}, fmt.Errorf("imaging: non-numeric direction field: %w", err)
		}
		d[i/3][i%3] = v
	}
	return d, nil
}

func writePoint3Line(bw *bufio.Writer, p spatial.Point3) error {
	_, err := fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z)
	return err
}

func writeDirectionLine(bw *bufio.Writer, d transform.Direction) error {
	_, err := fmt.Fprintf(bw, "%g %g %g %g %g %g %g %g %g\n",
		d[0][0], d[0][1], d[0][2], d[1][0], d[1][1], d[1][2], d[2][0], d[2][1], d[2][2])
	return err
}
