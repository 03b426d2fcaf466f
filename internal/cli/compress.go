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

// Compress returns the compress sub-command.
func Compress(g *globalFlags) *cobra.Command {
	var tool string
	cmd := &cobra.Command{
		Use:   "compress <input.glb> [output.glb]",
		Short: "Compress a mesh file with an external tool",
		Long: `Compress a mesh file by running an external tool, by default
"meshopt -c <input> <output>".  The tool must be on the PATH.  The tool
and its arguments can be changed in the compress section of the config
file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(func(cfg *config.Config) error {
				if cmd.Flags().Changed("tool") {
					cfg.Compress.Tool = tool
				}
				return nil
			})
			if err != nil {
				return err
			}
			return run(cmd, command.Compress{
				Input:      args[0],
				Output:     argOr(args, 1, "compressed.glb"),
				Compressor: cfg.Compress.Compressor(),
			}, logger)
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "meshopt", "name or path of the compression tool")
	return cmd
}
