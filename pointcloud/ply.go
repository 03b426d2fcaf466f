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
	"fmt"
	"io"
	"strings"
)

// WritePLY writes the points as an ASCII PLY file with a single vertex
// element and float x, y, z properties.
func WritePLY(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format ascii 1.0")
	fmt.Fprintf(bw, "element vertex %d\n", len(points))
	fmt.Fprintln(bw, "property float x")
	fmt.Fprintln(bw, "property float y")
	fmt.Fprintln(bw, "property float z")
	fmt.Fprintln(bw, "end_header")
	for _, p := range points {
		fmt.Fprintf(bw, "%s %s %s\n", plyFloat(p.X), plyFloat(p.Y), plyFloat(p.Z))
	}
	return bw.Flush()
}

// XYZToPLY converts an XYZ point file into a PLY file and returns the
// number of vertices written.  Nothing is written if the input is invalid.
func XYZToPLY(w io.Writer, r io.Reader) (int, error) {
	points, err := ReadXYZ(r)
	if err != nil {
		return 0, err
	}
	if err := WritePLY(w, points); err != nil {
		return 0, err
	}
	return len(points), nil
}

// plyFloat formats v so that it always reads as a floating point number.
func plyFloat(v float64) string {
	s := formatCoord(v)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
