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

// Package pointcloud turns file contents into 3D point clouds.
//
// The bytes of a file are written as a hex dump, every group of three
// bytes in the dump becomes one point, and the points can be saved as
// an XYZ text file or as an ASCII PLY file.
package pointcloud

import (
	"encoding/hex"
	"io"
)

// EncodeHex returns the lowercase hexadecimal encoding of data, without
// separators or line breaks.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// WriteHex writes the lowercase hexadecimal encoding of data to w.
func WriteHex(w io.Writer, data []byte) error {
	_, err := hex.NewEncoder(w).Write(data)
	return err
}
