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
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/byteplot/testcases"
)

func TestOrderIsPermutation(t *testing.T) {
	shapes := [][2]int{
		{1, 1}, {1, 256}, {2, 2}, {3, 2}, {2, 3}, {7, 5},
		{249, 256}, {250, 256}, {255, 256}, {256, 256}, {257, 256}, {300, 256},
	}
	for _, curve := range Curves {
		for _, s := range shapes {
			name := fmt.Sprintf("%s_%dx%d", curve, s[0], s[1])
			t.Run(name, func(t *testing.T) {
				order, err := Order(s[0], s[1], curve)
				if err != nil {
					t.Fatal(err)
				}
				checkPermutation(t, order, s[0]*s[1])
			})
		}
	}
}

func TestOrderSamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			g, err := NewGrid(tc.Data, RowWidth)
			if err != nil {
				t.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
			for _, curve := range Curves {
				t.Run(category+"_"+tc.Name+"_"+curve.String(), func(t *testing.T) {
					order, err := Order(g.Height, g.Width, curve)
					if err != nil {
						t.Fatal(err)
					}
					checkPermutation(t, order, len(g.Cells))
				})
			}
		}
	}
}

func checkPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	if len(order) != n {
		t.Fatalf("order has %d entries, want %d", len(order), n)
	}
	seen := make([]bool, n)
	for k, idx := range order {
		if idx < 0 || idx >= n {
			t.Fatalf("order[%d] = %d out of range", k, idx)
		}
		if seen[idx] {
			t.Fatalf("index %d appears twice", idx)
		}
		seen[idx] = true
	}
}

func TestNaturalIsIdentity(t *testing.T) {
	for _, tc := range testcases.All["rows"] {
		g, err := NewGrid(tc.Data, RowWidth)
		if err != nil {
			t.Fatal(err)
		}
		order, err := Order(g.Height, g.Width, Natural)
		if err != nil {
			t.Fatal(err)
		}
		values, err := g.Permute(order)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(values, g.Cells) {
			t.Errorf("%s: natural order changed the grid", tc.Name)
		}
	}
}

func TestOrderSmallGrids(t *testing.T) {
	cases := []struct {
		rows, cols int
		curve      Curve
		want       []int
	}{
		// key = c<<1 | r: 0, 2, 1, 3, 2, 2
		{3, 2, Hilbert, []int{0, 2, 1, 4, 5, 3}},
		// key = r<<2 | c, no overlap: row-major
		{2, 4, Hilbert, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		// key = r | c
		{2, 2, Hilbert, []int{0, 1, 2, 3}},
		{2, 3, Natural, []int{0, 1, 2, 3, 4, 5}},
		{2, 3, Zigzag, []int{0, 1, 3, 2, 4, 5}},
		{3, 3, Zigzag, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}},
		{2, 3, ZOrder, []int{0, 2, 1, 3, 5, 4}},
		{2, 3, Column, []int{0, 3, 1, 4, 2, 5}},
	}
	for _, tc := range cases {
		name := fmt.Sprintf("%s_%dx%d", tc.curve, tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			got, err := Order(tc.rows, tc.cols, tc.curve)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHilbertWideRows(t *testing.T) {
	// 250 rows of 256: key = r<<6 | c, so row 1 starts to interleave
	// with row 0 at column 64.
	order, err := Order(250, 256, Hilbert)
	if err != nil {
		t.Fatal(err)
	}
	for k := range 64 {
		if order[k] != k {
			t.Fatalf("order[%d] = %d, want %d", k, order[k], k)
		}
	}
	want := []int{64, 256, 65, 257, 66, 258}
	if got := order[64:70]; !slices.Equal(got, want) {
		t.Errorf("order[64:70] = %v, want %v", got, want)
	}
}

func TestHilbertTallGrid(t *testing.T) {
	// With more than 256+9 rows the column bits are shifted past all
	// row bits and the order becomes column-major.
	rows, cols := 300, 256
	order, err := Order(rows, cols, Hilbert)
	if err != nil {
		t.Fatal(err)
	}
	for k, idx := range order {
		r, c := k%rows, k/rows
		if idx != r*cols+c {
			t.Fatalf("order[%d] = %d, want %d", k, idx, r*cols+c)
		}
	}
}

func TestHilbertSingleRow(t *testing.T) {
	order, err := Order(1, RowWidth, Hilbert)
	if err != nil {
		t.Fatal(err)
	}
	for k, idx := range order {
		if idx != k {
			t.Fatalf("order[%d] = %d", k, idx)
		}
	}
}

func TestOrderInvalid(t *testing.T) {
	if _, err := Order(0, 256, Natural); err == nil {
		t.Error("expected error for empty grid")
	}
	if _, err := Order(2, 2, Curve(42)); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("expected ErrUnknownCurve, got %v", err)
	}
}

func TestParseCurve(t *testing.T) {
	cases := map[string]Curve{
		"hilbert":   Hilbert,
		"natural":   Natural,
		"zigzag":    Zigzag,
		"zorder":    ZOrder,
		"column":    Column,
		" HILBERT ": Hilbert,
		"1":         Hilbert,
		"2":         Natural,
		"3":         Zigzag,
		"4":         ZOrder,
	}
	for in, want := range cases {
		got, err := ParseCurve(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"", "5", "peano", "0"} {
		if _, err := ParseCurve(in); !errors.Is(err, ErrUnknownCurve) {
			t.Errorf("%q: expected ErrUnknownCurve, got %v", in, err)
		}
	}
}

func TestCurveString(t *testing.T) {
	for _, c := range Curves {
		back, err := ParseCurve(c.String())
		if err != nil || back != c {
			t.Errorf("%s does not parse back: %v", c, err)
		}
	}
	if s := Curve(0).String(); s != "Curve(0)" {
		t.Errorf("unexpected name %q", s)
	}
}
