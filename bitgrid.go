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
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// BitGrid shows every bit of the input as one cell, most significant
// bit of each byte first.  The grid is as close to square as possible.
type BitGrid struct {
	Width  int
	Height int

	// Bits is the number of bits taken from the input.
	Bits int

	// Cells holds Width*Height values, each 0 or 1, in row-major order.
	Cells []byte
}

// NewBitGrid expands data into a square-ish grid of bits.
func NewBitGrid(data []byte) (*BitGrid, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	n := 8 * len(data)
	w := ceilSqrt(n)
	h := (n + w - 1) / w

	cells := make([]byte, w*h)
	for i, b := range data {
		for j := range 8 {
			cells[8*i+j] = (b >> (7 - j)) & 1
		}
	}
	return &BitGrid{Width: w, Height: h, Bits: n, Cells: cells}, nil
}

// ceilSqrt returns the smallest w with w*w >= n.
func ceilSqrt(n int) int {
	w := int(math.Ceil(math.Sqrt(float64(n))))
	for w*w < n {
		w++
	}
	for w > 1 && (w-1)*(w-1) >= n {
		w--
	}
	return w
}

// Image returns the bit grid as a grayscale image, with zero bits black
// and one bits white.
func (g *BitGrid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i, v := range g.Cells {
		img.Pix[(i/g.Width)*img.Stride+i%g.Width] = 255 * v
	}
	return img
}

// WritePDF writes the bit grid as a single page PDF file, one point per
// cell.  Horizontal runs of one bits are drawn as a single rectangle.
func (g *BitGrid) WritePDF(fileName string) error {
	paper := &pdf.Rectangle{
		URx: float64(g.Width),
		URy: float64(g.Height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(g.Width), float64(g.Height))
	page.Fill()

	// PDF origin is bottom-left; the grid starts top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(g.Height)})

	page.SetFillColor(color.DeviceGray(1))
	hasRuns := false
	for y := range g.Height {
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := 0; x < len(row); {
			if row[x] == 0 {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] == 1 {
				x++
			}
			page.Rectangle(float64(start), float64(y), float64(x-start), 1)
			hasRuns = true
		}
	}
	if hasRuns {
		page.Fill()
	}

	return page.Close()
}
