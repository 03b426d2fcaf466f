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
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// Curve selects the order in which grid cells are visited when a
// byteplot is drawn.
//
// The Hilbert and ZOrder curves are simplified bit-manipulation schemes
// and not the textbook curves of the same names.  They are kept as they
// are so that existing plots can be reproduced.
type Curve int

const (
	// Hilbert sorts cells by a key built from interleaved coordinate bits.
	// Both coordinates are aligned at the least significant end of a
	// max(rows, cols) bit wide key and combined with bitwise or.
	// Unlike a real Hilbert curve this is not locality preserving; for
	// grids much taller than wide it degenerates into column-major order.
	Hilbert Curve = iota + 1

	// Natural is row-major order, which leaves the grid unchanged.
	Natural

	// Zigzag visits cells by anti-diagonal, i.e. sorted by row+column.
	Zigzag

	// ZOrder sorts cells by the least significant bit of the row and
	// the column only (a one level Morton code).
	ZOrder

	// Column is column-major order.
	Column
)

// ErrUnknownCurve is returned by ParseCurve for unrecognised names.
var ErrUnknownCurve = errors.New("byteplot: unknown curve")

var curveNames = map[Curve]string{
	Hilbert: "hilbert",
	Natural: "natural",
	Zigzag:  "zigzag",
	ZOrder:  "zorder",
	Column:  "column",
}

// Curves lists all supported curves.
var Curves = []Curve{Hilbert, Natural, Zigzag, ZOrder, Column}

func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve converts a curve name into a Curve.  The menu numbers
// "1" to "4" of the interactive tool are accepted as aliases for
// hilbert, natural, zigzag and zorder.
func ParseCurve(s string) (Curve, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "1":
		return Hilbert, nil
	case "2":
		return Natural, nil
	case "3":
		return Zigzag, nil
	case "4":
		return ZOrder, nil
	}
	for c, name := range curveNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCurve, s)
}

// curveKey is a 128 bit sort key, compared lexicographically.
type curveKey struct {
	hi, lo uint64
}

func compareKeys(a, b curveKey) int {
	if c := cmp.Compare(a.hi, b.hi); c != 0 {
		return c
	}
	return cmp.Compare(a.lo, b.lo)
}

// Order returns the traversal order of a rows×cols grid for the given
// curve.  Element k of the result is the row-major index of the cell
// shown at position k.  The result is always a permutation of
// 0, ..., rows*cols-1; cells with equal keys keep their row-major order.
func Order(rows, cols int, c Curve) ([]int, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("byteplot: invalid grid shape %dx%d", rows, cols)
	}

	var key func(r, c int) curveKey
	switch c {
	case Hilbert:
		key = hilbertKey(rows, cols)
	case Natural:
		order := make([]int, rows*cols)
		for i := range order {
			order[i] = i
		}
		return order, nil
	case Zigzag:
		key = func(r, c int) curveKey { return curveKey{0, uint64(r + c)} }
	case ZOrder:
		key = func(r, c int) curveKey { return curveKey{0, uint64(r&1)<<1 | uint64(c&1)} }
	case Column:
		key = func(r, c int) curveKey { return curveKey{uint64(c), uint64(r)} }
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownCurve, int(c))
	}

	n := rows * cols
	keys := make([]curveKey, n)
	order := make([]int, n)
	for i := range n {
		keys[i] = key(i/cols, i%cols)
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return compareKeys(keys[a], keys[b])
	})
	return order, nil
}

// hilbertKey returns the key function for the Hilbert curve.
//
// The key has n = max(rows, cols) bit positions, most significant first.
// Bit i is set if bit rows-1-i of the row or bit cols-1-i of the column
// is set.  This is the same as
//
//	r<<(n-rows) | c<<(n-cols)
//
// where one of the two shifts is zero.  The shift can exceed 64 bits; in
// that case the shifted and the unshifted coordinate cannot overlap and
// the key is the pair (shifted, unshifted).
func hilbertKey(rows, cols int) func(r, c int) curveKey {
	// By default the row is the unshifted coordinate.
	shift := rows - cols
	span := rows
	swap := false
	if cols > rows {
		shift = cols - rows
		span = cols
		swap = true
	}
	disjoint := bits.Len(uint(span-1)) <= shift

	return func(r, c int) curveKey {
		low, high := uint64(r), uint64(c)
		if swap {
			low, high = high, low
		}
		if disjoint {
			return curveKey{high, low}
		}
		return curveKey{0, high<<shift | low}
	}
}
