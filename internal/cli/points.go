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
	"github.com/spf13/cobra"

	"seehuhn.de/go/byteplot/internal/command"
	"seehuhn.de/go/byteplot/internal/config"
)

// Hex returns the hex sub-command.
func Hex(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "hex <input> [output]",
		Short: "Write the lowercase hex encoding of a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := g.setup(nil)
			if err != nil {
				return err
			}
			return run(cmd, command.HexDump{
				Input:  args[0],
				Output: argOr(args, 1, "output.hex"),
			}, logger)
		},
	}
}

// XYZ returns the xyz sub-command.
func XYZ(g *globalFlags) *cobra.Command {
	var downsample, previewSize int
	var preview string
	cmd := &cobra.Command{
		Use:   "xyz <input.hex> [output.xyz]",
		Short: "Convert a hex dump into an XYZ point cloud",
		Long: `Convert a hex dump into an XYZ point cloud.  Every six hex digits give
one point with coordinates 0-255.  With --downsample k only every k-th
point is kept.  Chunks which are not valid hex are skipped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(pointCloudFlags(cmd, &downsample, &previewSize))
			if err != nil {
				return err
			}
			return run(cmd, command.HexToXYZ{
				Input:       args[0],
				Output:      argOr(args, 1, "output.xyz"),
				Downsample:  cfg.PointCloud.Downsample,
				Preview:     preview,
				PreviewSize: cfg.PointCloud.PreviewSize,
			}, logger)
		},
	}
	cmd.Flags().IntVarP(&downsample, "downsample", "k", 1, "keep every k-th point, 1-10")
	cmd.Flags().StringVar(&preview, "preview", "", "also write a top view of the points to this image file")
	cmd.Flags().IntVar(&previewSize, "preview-size", 800, "edge length of the preview image in pixels")
	return cmd
}

// PLY returns the ply sub-command.
func PLY(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ply <input.xyz> [output.ply]",
		Short: "Convert an XYZ point cloud into an ASCII PLY file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := g.setup(nil)
			if err != nil {
				return err
			}
			return run(cmd, command.XYZToPLY{
				Input:  args[0],
				Output: argOr(args, 1, "output.ply"),
			}, logger)
		},
	}
}

// Convert returns the convert sub-command.
func Convert(g *globalFlags) *cobra.Command {
	var downsample int
	var hexFile, xyzFile, plyFile string
	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a file to hex, XYZ and optionally PLY in one go",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(pointCloudFlags(cmd, &downsample, nil))
			if err != nil {
				return err
			}
			return run(cmd, command.Convert{
				Input:      args[0],
				Hex:        hexFile,
				XYZ:        xyzFile,
				PLY:        plyFile,
				Downsample: cfg.PointCloud.Downsample,
			}, logger)
		},
	}
	cmd.Flags().IntVarP(&downsample, "downsample", "k", 1, "keep every k-th point, 1-10")
	cmd.Flags().StringVar(&hexFile, "hex", "output.hex", "hex output file")
	cmd.Flags().StringVar(&xyzFile, "xyz", "output.xyz", "XYZ output file")
	cmd.Flags().StringVar(&plyFile, "ply", "", "PLY output file (empty: no PLY file)")
	return cmd
}

// pointCloudFlags copies changed point cloud flags into the config.
// previewSize may be nil.
func pointCloudFlags(cmd *cobra.Command, downsample, previewSize *int) func(*config.Config) error {
	return func(cfg *config.Config) error {
		if cmd.Flags().Changed("downsample") {
			cfg.PointCloud.Downsample = *downsample
		}
		if previewSize != nil && cmd.Flags().Changed("preview-size") {
			cfg.PointCloud.PreviewSize = *previewSize
		}
		return nil
	}
}
