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

// Package byteplot renders the bytes of a file as a raster image.
//
// The bytes are arranged in rows of RowWidth values (see NewGrid), the
// cells are reordered along a space-filling curve (see Order), and each
// cell becomes one pixel whose colour is taken from a ColorMap.
package byteplot

//go:generate go run ./testcases/gallery

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Options control how a grid is turned into an image.
type Options struct {
	// Curve is the traversal order of the cells.  Zero means Natural.
	Curve Curve

	// Colors maps byte values to colours.  If nil, a DerivedPalette of
	// the grid values is used.
	Colors ColorMap

	// Width and Height give the size of the output image in pixels.
	// Zero keeps the size of the grid.  Scaling uses nearest neighbour
	// sampling, so every cell stays a solid block of colour.
	Width, Height int
}

// MaxImageSize is the largest width or height accepted for a scaled
// image.
const MaxImageSize = 1 << 14

// ErrImageSize is returned for requested image sizes outside
// 0, ..., MaxImageSize.
var ErrImageSize = fmt.Errorf("byteplot: image size must be in range 0-%d", MaxImageSize)

// CheckImageSize returns ErrImageSize unless w and h are in the
// range 0, ..., MaxImageSize.
func CheckImageSize(w, h int) error {
	if w < 0 || h < 0 || w > MaxImageSize || h > MaxImageSize {
		return ErrImageSize
	}
	return nil
}

// Render draws the grid as an image.  Without scaling, the image has one
// pixel per grid cell and no border.
func Render(g *Grid, opt Options) (*image.RGBA, error) {
	if err := CheckImageSize(opt.Width, opt.Height); err != nil {
		return nil, err
	}
	curve := opt.Curve
	if curve == 0 {
		curve = Natural
	}
	order, err := Order(g.Height, g.Width, curve)
	if err != nil {
		return nil, err
	}
	values, err := g.Permute(order)
	if err != nil {
		return nil, err
	}

	cmap := opt.Colors
	if cmap == nil {
		cmap = DerivedPalette(g.Cells)
	}

	var lut [256]color.RGBA
	var seen [256]bool
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for k, v := range values {
		if !seen[v] {
			c, err := cmap.Color(v)
			if err != nil {
				return nil, fmt.Errorf("cell %d: %w", order[k], err)
			}
			lut[v] = c
			seen[v] = true
		}
		c := lut[v]
		i := (k/g.Width)*img.Stride + (k%g.Width)*4
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}

	return scale(img, opt.Width, opt.Height), nil
}

// scale resizes img to w×h pixels.  A zero size keeps the corresponding
// dimension of img.
func scale(img *image.RGBA, w, h int) *image.RGBA {
	b := img.Bounds()
	if w <= 0 {
		w = b.Dx()
	}
	if h <= 0 {
		h = b.Dy()
	}
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
