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
	"image"
	"image/color"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/byteplot"
	"seehuhn.de/go/byteplot/raster"
)

// previewBands is the number of colour steps used for the z coordinate.
const previewBands = 16

// Preview draws a top view of the points: x to the right, y upwards.
// The image is size×size pixels, every point is drawn as a small square
// and coloured by its z coordinate.
func Preview(points []Point, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	if len(points) == 0 || size <= 0 {
		return img
	}

	bbox, zMin, zMax := bounds(points)
	ctm := fitTransform(bbox, float64(size))

	// one square per point, about 1/200 of the image, at least one pixel
	half := max(0.5, float64(size)/400)

	bands := make([]*path.Data, previewBands)
	for _, p := range points {
		b := 0
		if zMax > zMin {
			b = int((p.Z - zMin) / (zMax - zMin) * (previewBands - 1))
		}
		if bands[b] == nil {
			bands[b] = &path.Data{}
		}
		c := apply(ctm, vec.Vec2{X: p.X, Y: p.Y})
		bands[b].
			MoveTo(vec.Vec2{X: c.X - half, Y: c.Y - half}).
			LineTo(vec.Vec2{X: c.X + half, Y: c.Y - half}).
			LineTo(vec.Vec2{X: c.X + half, Y: c.Y + half}).
			LineTo(vec.Vec2{X: c.X - half, Y: c.Y + half}).
			Close()
	}

	r := raster.NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})
	for b, p := range bands {
		if p == nil {
			continue
		}
		col := byteplot.Ramp(float64(b) / (previewBands - 1))
		r.FillNonZero(p, func(y, xMin int, coverage []float32) {
			blendRow(img, y, xMin, coverage, col)
		})
	}
	return img
}

// blendRow paints col over one row of img, weighted by coverage.
func blendRow(img *image.RGBA, y, xMin int, coverage []float32, col color.RGBA) {
	row := img.Pix[img.PixOffset(xMin, y):]
	for i, c := range coverage {
		px := row[4*i : 4*i+4 : 4*i+4]
		px[0] = mix(px[0], col.R, c)
		px[1] = mix(px[1], col.G, c)
		px[2] = mix(px[2], col.B, c)
		px[3] = mix(px[3], col.A, c)
	}
}

func mix(dst, src uint8, a float32) uint8 {
	return uint8(float32(dst) + (float32(src)-float32(dst))*a + 0.5)
}

// bounds returns the bounding box of the x/y coordinates and the range
// of the z coordinates.
func bounds(points []Point) (rect.Rect, float64, float64) {
	bbox := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	zMin, zMax := math.Inf(+1), math.Inf(-1)
	for _, p := range points {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
		zMin = min(zMin, p.Z)
		zMax = max(zMax, p.Z)
	}
	return bbox, zMin, zMax
}

// fitTransform maps bbox into a size×size device square with a 5% margin,
// preserving the aspect ratio and flipping the y axis.
func fitTransform(bbox rect.Rect, size float64) matrix.Matrix {
	margin := 0.05 * size
	extent := max(bbox.URx-bbox.LLx, bbox.URy-bbox.LLy)
	s := 1.0
	if extent > 0 {
		s = (size - 2*margin) / extent
	}
	// centre the shorter side
	dx := (size - 2*margin - s*(bbox.URx-bbox.LLx)) / 2
	dy := (size - 2*margin - s*(bbox.URy-bbox.LLy)) / 2
	return matrix.Matrix{
		s, 0,
		0, -s,
		margin + dx - s*bbox.LLx, size - margin - dy + s*bbox.LLy,
	}
}

// apply transforms v from point space to device space.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
