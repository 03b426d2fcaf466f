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

package testcases

// Sample is a named input for byteplot tests and example renderings.
type Sample struct {
	Name string // lowercase a-z, 0-9 and _ only
	Data []byte // file contents, never empty
}

// ramp returns n bytes counting up from start and wrapping at 256.
func ramp(start, n int) []byte {
	res := make([]byte, n)
	for i := range res {
		res[i] = byte(start + i)
	}
	return res
}

// repeat returns pattern repeated until n bytes are filled.
func repeat(pattern []byte, n int) []byte {
	res := make([]byte, n)
	for i := range res {
		res[i] = pattern[i%len(pattern)]
	}
	return res
}
