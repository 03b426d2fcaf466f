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

// Package cli defines the binviz command line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seehuhn.de/go/byteplot/internal/command"
	"seehuhn.de/go/byteplot/internal/config"
	"seehuhn.de/go/byteplot/internal/logging"
)

// globalFlags are shared by all sub-commands.
type globalFlags struct {
	configFile string
	logLevel   string
}

// Root returns the binviz root command with all sub-commands attached.
func Root() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "binviz",
		Short: "Visualise binary files",
		Long: `binviz turns binary files into images and point clouds: colour byteplots
ordered along space-filling curves, bit grids, hex dumps, XYZ and PLY
point clouds, and compressed meshes via an external tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.configFile, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error or none")

	root.AddCommand(
		Byteplot(g),
		BitGrid(g),
		Hex(g),
		XYZ(g),
		PLY(g),
		Convert(g),
		Compress(g),
		Version(),
	)
	return root
}

// setup loads the configuration, lets apply override settings from the
// command line, validates the result and configures logging.
func (g *globalFlags) setup(apply func(*config.Config) error) (config.Config, zerolog.Logger, error) {
	cfg := config.Default()
	if g.configFile != "" {
		var err error
		cfg, err = config.Load(g.configFile)
		if err != nil {
			return cfg, zerolog.Nop(), err
		}
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if apply != nil {
		if err := apply(&cfg); err != nil {
			return cfg, zerolog.Nop(), err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, zerolog.Nop(), err
	}
	return cfg, logging.Setup(os.Stderr, cfg.LogLevel), nil
}

// run executes c with the context of the cobra command.
func run(cmd *cobra.Command, c command.Command, logger zerolog.Logger) error {
	return command.Run(cmd.Context(), c, logger)
}

// argOr returns args[i], or def if there are not enough arguments.
func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}
