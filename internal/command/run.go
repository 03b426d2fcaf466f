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

package command

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"seehuhn.de/go/byteplot"
	"seehuhn.de/go/byteplot/internal/fileio"
	"seehuhn.de/go/byteplot/meshopt"
	"seehuhn.de/go/byteplot/pointcloud"
)

func readInput(path string) ([]byte, error) {
	data, err := fileio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func runByteplot(c Byteplot, logger zerolog.Logger) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	grid, err := byteplot.NewGrid(data, byteplot.RowWidth)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}

	opt := byteplot.Options{
		Curve:  c.Curve,
		Width:  c.Width,
		Height: c.Height,
	}
	if c.Palette != nil {
		opt.Colors = c.Palette
	}
	img, err := byteplot.Render(grid, opt)
	if err != nil {
		return err
	}

	format, _ := byteplot.FormatFromPath(c.Output)
	err = fileio.WriteFile(c.Output, func(w io.Writer) error {
		return byteplot.Encode(w, img, format, c.Quality)
	})
	if err != nil {
		return err
	}

	b := img.Bounds()
	logger.Info().
		Str("input", c.Input).
		Str("output", c.Output).
		Stringer("curve", curveOrDefault(c.Curve)).
		Int("bytes", grid.Len).
		Int("rows", grid.Height).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("byteplot written")
	return nil
}

func curveOrDefault(c byteplot.Curve) byteplot.Curve {
	if c == 0 {
		return byteplot.Natural
	}
	return c
}

func runBitGrid(c BitGrid, logger zerolog.Logger) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	grid, err := byteplot.NewBitGrid(data)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}

	format, _ := byteplot.FormatFromPath(c.Output)
	if format == byteplot.PDF {
		err = fileio.WriteNamed(c.Output, grid.WritePDF)
	} else {
		err = fileio.WriteFile(c.Output, func(w io.Writer) error {
			return byteplot.Encode(w, grid.Image(), format, 0)
		})
	}
	if err != nil {
		return err
	}

	logger.Info().
		Str("input", c.Input).
		Str("output", c.Output).
		Int("bits", grid.Bits).
		Int("width", grid.Width).
		Int("height", grid.Height).
		Msg("bit grid written")
	return nil
}

func runHexDump(c HexDump, logger zerolog.Logger) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}
	err = fileio.WriteFile(c.Output, func(w io.Writer) error {
		return pointcloud.WriteHex(w, data)
	})
	if err != nil {
		return err
	}
	logger.Info().Str("output", c.Output).Int("bytes", len(data)).Msg("conversion to hex complete")
	return nil
}

func runHexToXYZ(c HexToXYZ, logger zerolog.Logger) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	skipped := 0
	dec := &pointcloud.Decoder{
		Downsample: c.Downsample,
		Skip: func(offset int, chunk string) {
			skipped++
			logger.Warn().Int("offset", offset).Str("chunk", chunk).Msg("skipping invalid hex coordinate")
		},
	}
	points, err := dec.Decode(string(data))
	if err != nil {
		return err
	}

	err = fileio.WriteFile(c.Output, func(w io.Writer) error {
		return pointcloud.WriteXYZ(w, points)
	})
	if err != nil {
		return err
	}
	logger.Info().
		Str("output", c.Output).
		Int("points", len(points)).
		Int("skipped", skipped).
		Int("downsample", c.Downsample).
		Msg("conversion to XYZ complete")

	if c.Preview == "" {
		return nil
	}
	format, _ := byteplot.FormatFromPath(c.Preview)
	img := pointcloud.Preview(points, c.PreviewSize)
	err = fileio.WriteFile(c.Preview, func(w io.Writer) error {
		return byteplot.Encode(w, img, format, 0)
	})
	if err != nil {
		return err
	}
	logger.Info().Str("output", c.Preview).Msg("point cloud preview written")
	return nil
}

func runXYZToPLY(c XYZToPLY, logger zerolog.Logger) error {
	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	var count int
	err = fileio.WriteFile(c.Output, func(w io.Writer) error {
		n, err := pointcloud.XYZToPLY(w, bytes.NewReader(data))
		count = n
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}
	logger.Info().Str("output", c.Output).Int("vertices", count).Msg("conversion to PLY complete")
	return nil
}

func runConvert(ctx context.Context, c Convert, logger zerolog.Logger) error {
	steps := []Command{
		HexDump{Input: c.Input, Output: c.Hex},
		HexToXYZ{Input: c.Hex, Output: c.XYZ, Downsample: c.Downsample},
	}
	if c.PLY != "" {
		steps = append(steps, XYZToPLY{Input: c.XYZ, Output: c.PLY})
	}
	for _, step := range steps {
		if err := Run(ctx, step, logger); err != nil {
			return err
		}
	}
	return nil
}

func runCompress(ctx context.Context, c Compress, logger zerolog.Logger) error {
	comp := c.Compressor
	if comp == nil {
		comp = &meshopt.Compressor{}
	}
	logger.Debug().Str("tool", comp.Tool).Str("input", c.Input).Msg("running compressor")

	if err := comp.Compress(ctx, c.Input, c.Output); err != nil {
		return err
	}
	logger.Info().Str("output", c.Output).Msg("compression complete")
	return nil
}
