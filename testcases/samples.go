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

import "strings"

var smallSamples = []Sample{
	{Name: "one_byte", Data: []byte{0x41}},
	{Name: "one_zero", Data: []byte{0}},
	{Name: "nine_bytes", Data: []byte{0x00, 0x10, 0x20, 0x7f, 0x80, 0x81, 0xfe, 0xff, 0x42}},
	{Name: "all_ones", Data: repeat([]byte{0xff}, 37)},
}

var rowSamples = []Sample{
	{Name: "exact_row", Data: ramp(0, 256)},
	{Name: "row_plus_one", Data: ramp(0, 257)},
	{Name: "four_rows", Data: ramp(7, 1024)},
	{Name: "ragged", Data: ramp(0, 1000)},
	{Name: "tall", Data: ramp(3, 300*256+11)},
}

var structuredSamples = []Sample{
	{Name: "sparse", Data: repeat([]byte{0x00, 0x00, 0x90, 0x00, 0xff}, 2000)},
	{Name: "text", Data: []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 60))},
	{Name: "elf_header", Data: elfHeader()},
}

// elfHeader returns the start of a 64-bit little-endian ELF executable,
// followed by zero filled section data.
func elfHeader() []byte {
	head := []byte{
		0x7f, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x3e, 0x00, 0x01, 0x00, 0x00, 0x00,
		0x40, 0x10, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	res := make([]byte, 4096)
	copy(res, head)
	copy(res[0x1000-64:], ramp(0xc0, 64))
	return res
}
