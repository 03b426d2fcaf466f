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

// Package config holds the settings of all binviz commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/byteplot"
	"seehuhn.de/go/byteplot/meshopt"
	"seehuhn.de/go/byteplot/pointcloud"
)

// Config represents the binviz configuration.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Byteplot   ByteplotConfig   `yaml:"byteplot"`
	PointCloud PointCloudConfig `yaml:"pointcloud"`
	Compress   CompressConfig   `yaml:"compress"`
}

// ByteplotConfig contains the rendering settings for byteplots and bit grids.
type ByteplotConfig struct {
	Curve   string   `yaml:"curve"`        // hilbert, natural, zigzag, zorder or column
	Palette []string `yaml:"palette"`      // #RRGGBB colours indexed by byte value; empty derives colours from the data
	Width   int      `yaml:"width"`        // output width in pixels, 0 = one pixel per byte
	Height  int      `yaml:"height"`       // output height in pixels, 0 = one pixel per row
	Quality int      `yaml:"jpeg_quality"` // 1-100, 0 = default
}

// PointCloudConfig contains the settings for hex to point conversion.
type PointCloudConfig struct {
	Downsample  int `yaml:"downsample"`   // 1-10
	PreviewSize int `yaml:"preview_size"` // edge length of the preview image in pixels
}

// CompressConfig describes the external mesh compressor.
type CompressConfig struct {
	Tool string   `yaml:"tool"`
	Args []string `yaml:"args"` // "{in}" and "{out}" are replaced by the file names
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Byteplot: ByteplotConfig{
			Curve: byteplot.Natural.String(),
		},
		PointCloud: PointCloudConfig{
			Downsample:  1,
			PreviewSize: 800,
		},
		Compress: CompressConfig{
			Tool: meshopt.DefaultTool,
			Args: []string{"-c", "{in}", "{out}"},
		},
	}
}

// Load reads a YAML configuration file.  Settings missing from the file
// keep their default values.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

var logLevels = []string{"debug", "info", "warn", "error", "none"}

// Validate checks all settings.  It does not touch the file system.
func (c Config) Validate() error {
	var errs []error
	if !isLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	if _, err := c.Byteplot.CurveValue(); err != nil {
		errs = append(errs, fmt.Errorf("byteplot.curve: %w", err))
	}
	if _, err := c.Byteplot.PaletteValue(); err != nil {
		errs = append(errs, fmt.Errorf("byteplot.palette: %w", err))
	}
	if err := byteplot.CheckImageSize(c.Byteplot.Width, c.Byteplot.Height); err != nil {
		errs = append(errs, fmt.Errorf("byteplot.width/height: %w", err))
	}
	if c.Byteplot.Quality < 0 || c.Byteplot.Quality > 100 {
		errs = append(errs, fmt.Errorf("byteplot.jpeg_quality: %d not in range 1-100", c.Byteplot.Quality))
	}
	if err := pointcloud.CheckDownsample(c.PointCloud.Downsample); err != nil {
		errs = append(errs, fmt.Errorf("pointcloud.downsample: %w", err))
	}
	if err := byteplot.CheckImageSize(c.PointCloud.PreviewSize, 0); err != nil {
		errs = append(errs, fmt.Errorf("pointcloud.preview_size: %w", err))
	}
	if c.Compress.Tool == "" {
		errs = append(errs, errors.New("compress.tool must not be empty"))
	}
	for _, p := range []string{"{in}", "{out}"} {
		if !slices.ContainsFunc(c.Compress.Args, func(a string) bool { return strings.Contains(a, p) }) {
			errs = append(errs, fmt.Errorf("compress.args: missing %s", p))
		}
	}
	return errors.Join(errs...)
}

func isLogLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}

// CurveValue returns the configured curve.
func (b ByteplotConfig) CurveValue() (byteplot.Curve, error) {
	return byteplot.ParseCurve(b.Curve)
}

// PaletteValue returns the configured palette, or nil if the colours
// are to be derived from the data.
func (b ByteplotConfig) PaletteValue() (byteplot.Palette, error) {
	if len(b.Palette) == 0 {
		return nil, nil
	}
	return byteplot.ParsePalette(strings.Join(b.Palette, ","))
}

// Compressor returns the configured mesh compressor.
func (c CompressConfig) Compressor() *meshopt.Compressor {
	tmpl := c.Args
	return &meshopt.Compressor{
		Tool: c.Tool,
		Args: func(in, out string) []string {
			args := make([]string, len(tmpl))
			r := strings.NewReplacer("{in}", in, "{out}", out)
			for i, a := range tmpl {
				args[i] = r.Replace(a)
			}
			return args
		},
	}
}
