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
	"image/color"
	"testing"
)

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("#000000, #FF8000,#0a0b0c")
	if err != nil {
		t.Fatal(err)
	}
	want := Palette{
		{0, 0, 0, 255},
		{255, 128, 0, 255},
		{10, 11, 12, 255},
	}
	if len(p) != len(want) {
		t.Fatalf("got %d colours, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("colour %d: got %v, want %v", i, p[i], want[i])
		}
	}
	if s := p.String(); s != "#000000,#ff8000,#0a0b0c" {
		t.Errorf("String() = %q", s)
	}
}

func TestParsePaletteInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"#12345",
		"123456",
		"#12345g",
		"#000000,,#111111",
		"#0000000",
	} {
		if _, err := ParsePalette(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestPaletteRange(t *testing.T) {
	p := Palette{{1, 2, 3, 255}, {4, 5, 6, 255}}
	c, err := p.Color(1)
	if err != nil || c != p[1] {
		t.Errorf("Color(1) = %v, %v", c, err)
	}
	if _, err := p.Color(2); !errors.Is(err, ErrPaletteRange) {
		t.Errorf("expected ErrPaletteRange, got %v", err)
	}
}

func TestDerivedPaletteDistinct(t *testing.T) {
	cases := [][]byte{
		{7},
		{0, 0, 0},
		{0, 255},
		{3, 1, 2, 3, 1},
		allBytes(),
	}
	for _, data := range cases {
		m := DerivedPalette(data)

		distinctValues := map[byte]bool{}
		for _, v := range data {
			distinctValues[v] = true
		}
		if len(m.Values()) != len(distinctValues) {
			t.Errorf("%d values, want %d", len(m.Values()), len(distinctValues))
		}

		byColor := map[color.RGBA]byte{}
		for v := range distinctValues {
			c, err := m.Color(v)
			if err != nil {
				t.Fatal(err)
			}
			if other, dup := byColor[c]; dup {
				t.Errorf("values %d and %d share colour %v", v, other, c)
			}
			byColor[c] = v

			again, _ := m.Color(v)
			if again != c {
				t.Errorf("value %d changed colour", v)
			}
		}
		if len(byColor) != len(distinctValues) {
			t.Errorf("%d colours for %d values", len(byColor), len(distinctValues))
		}
	}
}

func TestDerivedPaletteRank(t *testing.T) {
	m := DerivedPalette([]byte{200, 10, 10, 99})

	lo, _ := m.Color(10)
	hi, _ := m.Color(200)
	if lo != viridis[0] {
		t.Errorf("smallest value: got %v, want %v", lo, viridis[0])
	}
	if hi != viridis[len(viridis)-1] {
		t.Errorf("largest value: got %v, want %v", hi, viridis[len(viridis)-1])
	}
	mid, _ := m.Color(99)
	if mid != Ramp(0.5) {
		t.Errorf("middle value: got %v, want %v", mid, Ramp(0.5))
	}

	if _, err := m.Color(11); !errors.Is(err, ErrPaletteRange) {
		t.Errorf("expected ErrPaletteRange for missing value, got %v", err)
	}
}

func TestRamp(t *testing.T) {
	if c := Ramp(-1); c != viridis[0] {
		t.Errorf("Ramp(-1) = %v", c)
	}
	if c := Ramp(2); c != viridis[len(viridis)-1] {
		t.Errorf("Ramp(2) = %v", c)
	}
	if c := Ramp(0.125); c != viridis[1] {
		t.Errorf("Ramp(0.125) = %v, want %v", c, viridis[1])
	}
	for i := range 100 {
		if c := Ramp(float64(i) / 99); c.A != 0xFF {
			t.Fatalf("Ramp(%d/99) is not opaque", i)
		}
	}
}

func allBytes() []byte {
	res := make([]byte, 256)
	for i := range res {
		res[i] = byte(i)
	}
	return res
}
