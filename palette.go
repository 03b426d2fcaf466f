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
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrPaletteRange is returned when a byte value has no colour assigned.
var ErrPaletteRange = errors.New("byteplot: byte value outside palette")

// ColorMap assigns colours to byte values.
type ColorMap interface {
	Color(v byte) (color.RGBA, error)
}

// Palette is an explicit list of colours, indexed by byte value.
// It may hold fewer than 256 entries; looking up a value past the end
// is an error.
type Palette []color.RGBA

// Color implements the ColorMap interface.
func (p Palette) Color(v byte) (color.RGBA, error) {
	if int(v) >= len(p) {
		return color.RGBA{}, fmt.Errorf("%w: value %d, palette has %d colours",
			ErrPaletteRange, v, len(p))
	}
	return p[v], nil
}

// String formats the palette as a comma separated list of #rrggbb values.
func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = FormatColor(c)
	}
	return strings.Join(parts, ",")
}

// ParsePalette parses a comma separated list of #RRGGBB colours.
func ParsePalette(s string) (Palette, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("byteplot: empty palette")
	}
	var p Palette
	for i, field := range strings.Split(s, ",") {
		c, err := ParseColor(field)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// ParseColor parses a colour in #RRGGBB notation.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("byteplot: invalid colour %q, want #RRGGBB", s)
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.RGBA{}, fmt.Errorf("byteplot: invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
}

// FormatColor returns c in #rrggbb notation.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RankMap colours the distinct values of a data set by rank, using one
// evenly spaced sample of the colour ramp per value.
type RankMap struct {
	values []byte
	table  [256]color.RGBA
	used   [256]bool
}

// DerivedPalette builds a RankMap for the values occurring in data.
// Different values always get different colours.
func DerivedPalette(data []byte) *RankMap {
	m := &RankMap{}
	for _, v := range data {
		m.used[v] = true
	}
	for v := range 256 {
		if m.used[v] {
			m.values = append(m.values, byte(v))
		}
	}

	colors := distinct(rampSamples(len(m.values)))
	for i, v := range m.values {
		m.table[v] = colors[i]
	}
	return m
}

// Color implements the ColorMap interface.
func (m *RankMap) Color(v byte) (color.RGBA, error) {
	if !m.used[v] {
		return color.RGBA{}, fmt.Errorf("%w: value %d does not occur in the data",
			ErrPaletteRange, v)
	}
	return m.table[v], nil
}

// Values returns the distinct values in increasing order.
func (m *RankMap) Values() []byte {
	return slices.Clone(m.values)
}

// viridis holds keyframes of the viridis colour map at t = 0, 1/8, ..., 1.
var viridis = []color.RGBA{
	{0x44, 0x01, 0x54, 0xFF},
	{0x47, 0x2c, 0x7a, 0xFF},
	{0x3b, 0x51, 0x8b, 0xFF},
	{0x2c, 0x71, 0x8e, 0xFF},
	{0x21, 0x90, 0x8d, 0xFF},
	{0x27, 0xad, 0x81, 0xFF},
	{0x5c, 0xc8, 0x63, 0xFF},
	{0xaa, 0xdc, 0x32, 0xFF},
	{0xfd, 0xe7, 0x25, 0xFF},
}

// Ramp returns the colour at position t in [0, 1] of the default colour ramp.
func Ramp(t float64) color.RGBA {
	t = max(0, min(1, t))
	pos := t * float64(len(viridis)-1)
	i := int(pos)
	if i >= len(viridis)-1 {
		return viridis[len(viridis)-1]
	}
	f := pos - float64(i)
	a, b := viridis[i], viridis[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}

// rampSamples returns n colours, evenly spaced along the ramp.
func rampSamples(n int) []color.RGBA {
	if n == 0 {
		return nil
	}
	pos := []float64{0}
	if n > 1 {
		pos = floats.Span(make([]float64, n), 0, 1)
	}
	res := make([]color.RGBA, n)
	for i, t := range pos {
		res[i] = Ramp(t)
	}
	return res
}

// distinct nudges the blue channel of repeated colours until all
// colours in the list are different.  At most 256 colours are supported.
func distinct(colors []color.RGBA) []color.RGBA {
	seen := make(map[color.RGBA]bool, len(colors))
	for i, c := range colors {
		for d := 1; seen[c]; d++ {
			// try b+1, b-1, b+2, b-2, ...
			step := (d + 1) / 2
			if d%2 == 0 {
				step = -step
			}
			b := int(colors[i].B) + step
			if b < 0 || b > 255 {
				continue
			}
			c.B = uint8(b)
		}
		seen[c] = true
		colors[i] = c
	}
	return colors
}
