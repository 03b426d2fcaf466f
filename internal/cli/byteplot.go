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

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/byteplot/internal/command"
	"seehuhn.de/go/byteplot/internal/config"
)

// Byteplot returns the byteplot sub-command.
func Byteplot(g *globalFlags) *cobra.Command {
	var curve, palette string
	var width, height, quality int
	cmd := &cobra.Command{
		Use:   "byteplot <input> [output]",
		Short: "Render a file as a colour byteplot",
		Long: `Render a file as a colour byteplot with 256 bytes per row.

The pixels are reordered along one of the curves hilbert, natural,
zigzag, zorder or column.  The hilbert and zorder curves are simplified
bit manipulation schemes and differ from the textbook curves.

Without --palette every distinct byte value gets its own colour from the
viridis colour ramp.  With --palette the byte values index the given
list of colours directly; values past the end of the list are an error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, logger, err := g.setup(func(cfg *config.Config) error {
				if flags.Changed("curve") {
					cfg.Byteplot.Curve = curve
				}
				if flags.Changed("palette") {
					cfg.Byteplot.Palette = splitList(palette)
				}
				if flags.Changed("width") {
					cfg.Byteplot.Width = width
				}
				if flags.Changed("height") {
					cfg.Byteplot.Height = height
				}
				if flags.Changed("quality") {
					cfg.Byteplot.Quality = quality
				}
				return nil
			})
			if err != nil {
				return err
			}

			c, _ := cfg.Byteplot.CurveValue()
			p, _ := cfg.Byteplot.PaletteValue()
			return run(cmd, command.Byteplot{
				Input:   args[0],
				Output:  argOr(args, 1, "colored_byteplot.png"),
				Curve:   c,
				Palette: p,
				Width:   cfg.Byteplot.Width,
				Height:  cfg.Byteplot.Height,
				Quality: cfg.Byteplot.Quality,
			}, logger)
		},
	}
	cmd.Flags().StringVar(&curve, "curve", "natural", "pixel order: hilbert, natural, zigzag, zorder or column")
	cmd.Flags().StringVar(&palette, "palette", "", "comma separated #RRGGBB colours indexed by byte value")
	cmd.Flags().IntVar(&width, "width", 0, "output width in pixels (0: one pixel per byte)")
	cmd.Flags().IntVar(&height, "height", 0, "output height in pixels (0: one pixel per row)")
	cmd.Flags().IntVar(&quality, "quality", 0, "JPEG quality 1-100 (0: default)")
	return cmd
}

// BitGrid returns the bitgrid sub-command.
func BitGrid(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bitgrid <input> [output]",
		Short: "Render every bit of a file as a black or white cell",
		Long: `Render every bit of a file as a black (0) or white (1) cell of a square
grid.  The output can be a raster image or a PDF file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := g.setup(nil)
			if err != nil {
				return err
			}
			return run(cmd, command.BitGrid{
				Input:  args[0],
				Output: argOr(args, 1, "bitgrid.png"),
			}, logger)
		},
	}
}

func splitList(s string) []string {
	var res []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	return res
}
