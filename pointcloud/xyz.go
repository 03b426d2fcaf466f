// seehuhn.de/go/byteplot - visualise binary files as images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pointcloud

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Limits for the downsampling factor.
const (
	MinDownsample = 1
	MaxDownsample = 10
)

// ErrDownsample is returned for downsampling factors outside
// MinDownsample to MaxDownsample.
var ErrDownsample = errors.New("pointcloud: downsampling factor must be an integer between 1 and 10")

// chunkLen is the number of hex digits per point.
const chunkLen = 6

// Point is a point in 3D space.
type Point struct {
	X, Y, Z float64
}

// CheckDownsample verifies that k is a valid downsampling factor.
func CheckDownsample(k int) error {
	if k < MinDownsample || k > MaxDownsample {
		return fmt.Errorf("%w, got %d", ErrDownsample, k)
	}
	return nil
}

// ParseDownsample parses and checks a downsampling factor.
func ParseDownsample(s string) (int, error) {
	k, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", ErrDownsample, s)
	}
	if err := CheckDownsample(k); err != nil {
		return 0, err
	}
	return k, nil
}

// Decoder converts a hex dump into points.
type Decoder struct {
	// Downsample is the stride between points, in units of three bytes.
	// A factor k keeps one point and skips the following k-1.
	Downsample int

	// Skip, if not nil, is called for every chunk of the hex dump which
	// cannot be decoded.  The offset is in hex digits.
	Skip func(offset int, chunk string)
}

// Decode reads points from a hex dump.  Each point is encoded by six hex
// digits, two per coordinate, so that every coordinate is in the range
// 0 to 255.  Chunks which are not valid hex, including a short chunk at
// the end of the input, are skipped.  Leading and trailing white space
// is ignored.
func (d *Decoder) Decode(hexData string) ([]Point, error) {
	k := d.Downsample
	if err := CheckDownsample(k); err != nil {
		return nil, err
	}

	hexData = strings.TrimSpace(hexData)
	stride := chunkLen * k
	points := make([]Point, 0, (len(hexData)+stride-1)/stride)
	for i := 0; i < len(hexData); i += stride {
		chunk := hexData[i:min(i+chunkLen, len(hexData))]
		p, ok := decodeChunk(chunk)
		if !ok {
			if d.Skip != nil {
				d.Skip(i, chunk)
			}
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

func decodeChunk(chunk string) (Point, bool) {
	if len(chunk) != chunkLen {
		return Point{}, false
	}
	var xyz [3]float64
	for j := range xyz {
		v, err := strconv.ParseUint(chunk[2*j:2*j+2], 16, 8)
		if err != nil {
			return Point{}, false
		}
		xyz[j] = float64(v)
	}
	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, true
}

// WriteXYZ writes one "x y z" line per point.
func WriteXYZ(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		fmt.Fprintf(bw, "%s %s %s\n", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z))
	}
	return bw.Flush()
}

// ReadXYZ reads points written by WriteXYZ.  Blank lines are ignored;
// any other line must hold exactly three numbers.
func ReadXYZ(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("pointcloud: line %d: expected 3 values, got %d", lineNo, len(fields))
		}
		var xyz [3]float64
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("pointcloud: line %d: %w", lineNo, err)
			}
			xyz[j] = v
		}
		points = append(points, Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// formatCoord formats v with as few digits as needed.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
