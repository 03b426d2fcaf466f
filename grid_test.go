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
	"testing"
)

func TestNewGridPadding(t *testing.T) {
	for _, n := range []int{1, 2, 255, 256, 257, 511, 512, 1000} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i%255 + 1) // never zero
		}

		g, err := NewGrid(data, RowWidth)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if g.Width != RowWidth {
			t.Errorf("n=%d: width %d", n, g.Width)
		}
		if want := (n + RowWidth - 1) / RowWidth; g.Height != want {
			t.Errorf("n=%d: height %d, want %d", n, g.Height, want)
		}
		if g.Width*g.Height < n {
			t.Errorf("n=%d: grid too small", n)
		}
		if g.Padding() != g.Width*g.Height-n {
			t.Errorf("n=%d: padding %d", n, g.Padding())
		}
		for i, v := range g.Cells {
			if i < n && v != data[i] {
				t.Fatalf("n=%d: cell %d = %d, want %d", n, i, v, data[i])
			}
			if i >= n && v != 0 {
				t.Fatalf("n=%d: padding cell %d = %d", n, i, v)
			}
		}
	}
}

func TestNewGridEmpty(t *testing.T) {
	_, err := NewGrid(nil, RowWidth)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	_, err = NewGrid([]byte{}, RowWidth)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestNewGridBadWidth(t *testing.T) {
	if _, err := NewGrid([]byte{1}, 0); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestNewGridCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	g, err := NewGrid(data, 2)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 99
	if g.At(0, 0) != 1 {
		t.Error("grid shares memory with input")
	}
	if g.At(1, 0) != 3 || g.At(1, 1) != 0 {
		t.Errorf("unexpected second row %d %d", g.At(1, 0), g.At(1, 1))
	}
}

func TestPermute(t *testing.T) {
	g, err := NewGrid([]byte{10, 20, 30, 40}, 2)
	if err != nil {
		t.Fatal(err)
	}

	got, err := g.Permute([]int{3, 1, 2, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{40, 20, 30, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if _, err := g.Permute([]int{0, 1}); err == nil {
		t.Error("expected error for short order")
	}
	if _, err := g.Permute([]int{0, 1, 2, 4}); err == nil {
		t.Error("expected error for out of range index")
	}
}
