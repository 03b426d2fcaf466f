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

// Package raster computes anti-aliased pixel coverage for filled paths.
//
// The coverage of a pixel is the fraction of its area which lies inside
// the path, a value between 0 and 1.  Coverage is handed to the caller
// one row at a time, and the caller decides how to composite it.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer converts filled paths to coverage values.
//
// Internal buffers are kept between calls, so one Rasterizer should be
// reused for many paths.  A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels.  It must be invertible.
	CTM matrix.Matrix

	// Clip is the device rectangle which receives coverage.
	// Its corners must have integer coordinates.
	Clip rect.Rect

	// Flatness is the largest distance, in device pixels, allowed between
	// a curve and the polygon which replaces it.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterised with one buffer per row.  Larger paths use an active
	// edge list and a single row buffer.
	denseLimit int

	edges  []edge
	active []int
	cover  []float32 // signed vertical extent per pixel, reused for output
	area   []float32
	used   []bool

	// device space bounding box of the edges
	bboxEmpty bool
	bxMin     float64
	bxMax     float64
	byMin     float64
	byMax     float64
}

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// NewRasterizer returns a Rasterizer with an identity CTM.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.denseLimit = denseLimit

	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills p using the nonzero winding rule.  For every row
// which has non-zero coverage, emit is called with the first covered
// column and the coverage values from there on.  The slice is only
// valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZero, emit)
}

// FillEvenOdd is like FillNonZero, but uses the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collect(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.denseLimit {
		r.fillDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillSparse(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collect converts p into device space edges.  The returned pixel
// range covers all edges and is clamped to the clip rectangle.
func (r *Rasterizer) collect(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// Subpaths are filled as if closed.
	if cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasterizer) device(p vec.Vec2) (float64, float64) {
	m := r.CTM
	return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
}

func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.device(p0)
	x1, y1 := r.device(p1)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdge {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// deviceLength returns the length of v after the linear part of the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	// Wang's formula
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := 1
	if f := math.Sqrt(3 * dev / (4 * r.Flatness)); f > 1 {
		n = int(math.Ceil(f))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Every edge piece inside a pixel adds its signed height to cover, and
// the height weighted by the part of the pixel right of the piece to
// area.  Scanning a row
// from the left, the coverage of pixel i is the sum of cover over all
// pixels before i, plus area[i].

// accumulate adds the part of e within row y to cover and area.  The
// buffers hold the columns xMin, ..., xMax-1; pieces left of xMin are
// added to the first column.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case left >= xMax:
		return
	case right < xMin:
		h := sign * float32(yBot-yTop)
		cover[0] += h
		area[0] += h
		return
	case left == right:
		addPiece(e, yTop, yBot, sign, left, cover, area, xMin)
		return
	}

	dydx := 1 / e.dxdy
	for col := left; col <= min(right, xMax-1); col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addPiece(e, lo, hi, sign, col, cover, area, xMin)
	}
}

// addPiece records the part of e between yTop and yBot, which lies
// inside column col.
func addPiece(e *edge, yTop, yBot float64, sign float32, col int, cover, area []float32, xMin int) {
	h := sign * float32(yBot-yTop)
	if col < xMin {
		cover[0] += h
		area[0] += h
		return
	}
	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	i := col - xMin
	cover[i] += h
	area[i] += h * float32(1-(xMid-float64(col)))
}

// integrate turns one row of cover and area into coverage, in place.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == nonZero {
			cover[i] = min(raw, 1)
		} else {
			m := raw - 2*float32(int(raw/2))
			if m > 1 {
				m = 2 - m
			}
			cover[i] = m
		}
	}
}

// trimZeros strips zero coverage at both ends of row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// fillDense processes every edge once, using a buffer for the whole
// bounding box.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	w, h := xMax-xMin, yMax-yMin
	r.cover = grow(r.cover, w*h)
	r.area = grow(r.area, w*h)
	r.used = grow(r.used, h)

	for i := range r.edges {
		e := &r.edges[i]
		from := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		to := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := from; y < to; y++ {
			row := y - yMin
			accumulate(e, y, r.cover[row*w:(row+1)*w], r.area[row*w:(row+1)*w], xMin, xMax)
			r.used[row] = true
		}
	}

	for row := range h {
		if !r.used[row] {
			continue
		}
		cov := r.cover[row*w : (row+1)*w]
		integrate(cov, r.area[row*w:(row+1)*w], rule)
		if trimmed, off := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+off, trimmed)
		}
	}
}

// fillSparse walks the rows from top to bottom and keeps a list of
// the edges which cross the current row.
func (r *Rasterizer) fillSparse(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = grow(r.cover, w)
	r.area = grow(r.area, w)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		hit := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			hit = true
			i++
		}
		if !hit {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, off := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+off, trimmed)
		}
	}
}

// grow returns buf resized to n zero elements.
func grow[T any](buf []T, n int) []T {
	buf = slices.Grow(buf[:0], n)[:n]
	clear(buf)
	return buf
}

const (
	// defaultFlatness is below what can be seen.
	defaultFlatness = 0.25

	// denseLimit is the default for Rasterizer.denseLimit.
	denseLimit = 1 << 16

	// horizontalEdge is the smallest height of an edge which
	// contributes coverage.
	horizontalEdge = 1e-10
)
