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

// Package command implements the operations of the binviz tool.
//
// Every operation is a Command variant carrying all of its parameters.
// Run validates the parameters before any file is opened and then
// performs the operation.
package command

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"seehuhn.de/go/byteplot"
	"seehuhn.de/go/byteplot/internal/fileio"
	"seehuhn.de/go/byteplot/meshopt"
	"seehuhn.de/go/byteplot/pointcloud"
)

// Command is one of Byteplot, BitGrid, HexDump, HexToXYZ, XYZToPLY,
// Convert or Compress.
type Command interface {
	isCommand()
	validate() error
}

// Byteplot renders a file as a coloured byteplot.
type Byteplot struct {
	Input   string
	Output  string           // .png, .jpg, .bmp or .tif
	Curve   byteplot.Curve   // zero means natural order
	Palette byteplot.Palette // nil derives the colours from the data
	Width   int              // zero keeps one pixel per byte
	Height  int              // zero keeps one pixel per row
	Quality int              // JPEG quality, zero for the default
}

// BitGrid renders every bit of a file as a black or white cell.
type BitGrid struct {
	Input  string
	Output string // a raster format or .pdf
}

// HexDump writes the hexadecimal encoding of a file.
type HexDump struct {
	Input  string
	Output string
}

// HexToXYZ converts a hex dump into an XYZ point file.
type HexToXYZ struct {
	Input       string
	Output      string
	Downsample  int
	Preview     string // optional image file with a top view of the points
	PreviewSize int
}

// XYZToPLY converts an XYZ point file into an ASCII PLY file.
type XYZToPLY struct {
	Input  string
	Output string
}

// Convert runs the complete file → hex → XYZ (→ PLY) pipeline.
type Convert struct {
	Input      string
	Hex        string
	XYZ        string
	PLY        string // optional
	Downsample int
}

// Compress compresses a mesh file with an external tool.
type Compress struct {
	Input      string
	Output     string
	Compressor *meshopt.Compressor // nil uses the default tool
}

func (Byteplot) isCommand() {}
func (BitGrid) isCommand() {}
func (HexDump) isCommand() {}
func (HexToXYZ) isCommand() {}
func (XYZToPLY) isCommand() {}
func (Convert) isCommand() {}
func (Compress) isCommand() {}

// Run validates and executes cmd.
func Run(ctx context.Context, cmd Command, logger zerolog.Logger) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	switch c := cmd.(type) {
	case Byteplot:
		return runByteplot(c, logger)
	case BitGrid:
		return runBitGrid(c, logger)
	case HexDump:
		return runHexDump(c, logger)
	case HexToXYZ:
		return runHexToXYZ(c, logger)
	case XYZToPLY:
		return runXYZToPLY(c, logger)
	case Convert:
		return runConvert(ctx, c, logger)
	case Compress:
		return runCompress(ctx, c, logger)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

func requirePaths(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			return errors.New("missing file name")
		}
	}
	return nil
}

func (c Byteplot) validate() error {
	if err := requirePaths(c.Input, c.Output); err != nil {
		return err
	}
	if c.Curve != 0 && !slices.Contains(byteplot.Curves, c.Curve) {
		return fmt.Errorf("%w %d", byteplot.ErrUnknownCurve, int(c.Curve))
	}
	if err := byteplot.CheckImageSize(c.Width, c.Height); err != nil {
		return err
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("JPEG quality %d not in range 1-100", c.Quality)
	}
	f, err := byteplot.FormatFromPath(c.Output)
	if err != nil {
		return err
	}
	if f == byteplot.PDF {
		return errors.New("byteplots cannot be written as PDF")
	}
	return nil
}

func (c BitGrid) validate() error {
	if err := requirePaths(c.Input, c.Output); err != nil {
		return err
	}
	f, err := byteplot.FormatFromPath(c.Output)
	if err != nil {
		return err
	}
	if f == byteplot.PDF && fileio.IsCompressed(c.Output) {
		return errors.New("PDF output cannot be compressed")
	}
	return nil
}

func (c HexDump) validate() error {
	return requirePaths(c.Input, c.Output)
}

func (c HexToXYZ) validate() error {
	if err := pointcloud.CheckDownsample(c.Downsample); err != nil {
		return err
	}
	if err := requirePaths(c.Input, c.Output); err != nil {
		return err
	}
	if c.Preview != "" {
		if c.PreviewSize <= 0 {
			return errors.New("preview size must be positive")
		}
		if err := byteplot.CheckImageSize(c.PreviewSize, 0); err != nil {
			return err
		}
		if f, err := byteplot.FormatFromPath(c.Preview); err != nil {
			return err
		} else if f == byteplot.PDF {
			return errors.New("previews cannot be written as PDF")
		}
	}
	return nil
}

func (c XYZToPLY) validate() error {
	return requirePaths(c.Input, c.Output)
}

func (c Convert) validate() error {
	if err := pointcloud.CheckDownsample(c.Downsample); err != nil {
		return err
	}
	return requirePaths(c.Input, c.Hex, c.XYZ)
}

func (c Compress) validate() error {
	return requirePaths(c.Input, c.Output)
}
