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

package byteplot

import (
	"errors"
	"fmt"
)

// RowWidth is the number of bytes shown in one row of a byteplot.
const RowWidth = 256

// ErrEmpty is returned when there are no bytes to visualise.
var ErrEmpty = errors.New("byteplot: empty input")

// Grid is a rectangular arrangement of file bytes in row-major order.
// The last row is padded with zeros.
type Grid struct {
	Width  int
	Height int

	// Len is the number of bytes taken from the input.
	// Cells with index >= Len are padding and always hold zero.
	Len int

	// Cells holds Width*Height values in row-major order.
	Cells []byte
}

// NewGrid arranges data into rows of the given width.
// The input slice is copied and not modified.
func NewGrid(data []byte, width int) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("byteplot: invalid row width %d", width)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	height := (len(data) + width - 1) / width
	cells := make([]byte, width*height)
	copy(cells, data)

	return &Grid{
		Width:  width,
		Height: height,
		Len:    len(data),
		Cells:  cells,
	}, nil
}

// At returns the value in row r and column c.
func (g *Grid) At(r, c int) byte {
	return g.Cells[r*g.Width+c]
}

// Padding returns the number of zero cells appended to the input.
func (g *Grid) Padding() int {
	return len(g.Cells) - g.Len
}

// Permute returns a new slice holding the grid values in traversal order:
// element k of the result is Cells[order[k]].
func (g *Grid) Permute(order []int) ([]byte, error) {
	if len(order) != len(g.Cells) {
		return nil, fmt.Errorf("byteplot: order has %d entries, grid has %d cells",
			len(order), len(g.Cells))
	}
	out := make([]byte, len(order))
	for k, idx := range order {
		if idx < 0 || idx >= len(g.Cells) {
			return nil, fmt.Errorf("byteplot: order index %d out of range", idx)
		}
		out[k] = g.Cells[idx]
	}
	return out, nil
}
