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

// Command gallery renders every sample input with every curve.
// It writes PNG byteplots and PDF bit grids to testdata/gallery.
// Run from the module root directory.
package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/byteplot"
	"seehuhn.de/go/byteplot/internal/fileio"
	"seehuhn.de/go/byteplot/testcases"
)

const outDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			for _, curve := range byteplot.Curves {
				pngPath := filepath.Join(outDir, name+"_"+curve.String()+".png")
				if err := renderByteplot(tc, curve, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}

			pdfPath := filepath.Join(outDir, name+"_bits.pdf")
			if err := renderBits(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderByteplot(tc testcases.Sample, curve byteplot.Curve, pngPath string) error {
	g, err := byteplot.NewGrid(tc.Data, byteplot.RowWidth)
	if err != nil {
		return err
	}

	// Short samples are stretched so that the rows remain visible.
	opt := byteplot.Options{Curve: curve}
	if g.Height < 64 {
		opt.Height = 64
	}
	img, err := byteplot.Render(g, opt)
	if err != nil {
		return err
	}
	return fileio.WriteFile(pngPath, func(w io.Writer) error {
		return byteplot.Encode(w, img, byteplot.PNG, 0)
	})
}

func renderBits(tc testcases.Sample, pdfPath string) error {
	g, err := byteplot.NewBitGrid(tc.Data)
	if err != nil {
		return err
	}
	return fileio.WriteNamed(pdfPath, g.WritePDF)
}
