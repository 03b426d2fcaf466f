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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/byteplot"
	"seehuhn.de/go/byteplot/pointcloud"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binviz.yaml")
	content := `
log_level: debug
byteplot:
  curve: zigzag
  palette: ["#000000", "#ffffff"]
  width: 1200
pointcloud:
  downsample: 4
compress:
  tool: gltfpack
  args: ["-i", "{in}", "-o", "{out}", "-cc"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "debug", cfg.LogLevel)
	curve, err := cfg.Byteplot.CurveValue()
	require.NoError(t, err)
	require.Equal(t, byteplot.Zigzag, curve)

	p, err := cfg.Byteplot.PaletteValue()
	require.NoError(t, err)
	require.Len(t, p, 2)
	require.Equal(t, 1200, cfg.Byteplot.Width)
	require.Equal(t, 0, cfg.Byteplot.Height)
	require.Equal(t, 4, cfg.PointCloud.Downsample)
	require.Equal(t, 800, cfg.PointCloud.PreviewSize, "default kept")

	c := cfg.Compress.Compressor()
	require.Equal(t, "gltfpack", c.Tool)
	require.Equal(t, []string{"-i", "a.glb", "-o", "b.glb", "-cc"}, c.Args("a.glb", "b.glb"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("byteplot: [1, 2"), 0644))
	_, err = Load(path)
	require.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"curve":      func(c *Config) { c.Byteplot.Curve = "peano" },
		"palette":    func(c *Config) { c.Byteplot.Palette = []string{"red"} },
		"width":      func(c *Config) { c.Byteplot.Width = -1 },
		"quality":    func(c *Config) { c.Byteplot.Quality = 101 },
		"downsample": func(c *Config) { c.PointCloud.Downsample = 11 },
		"zero":       func(c *Config) { c.PointCloud.Downsample = 0 },
		"log level":  func(c *Config) { c.LogLevel = "loud" },
		"tool":       func(c *Config) { c.Compress.Tool = "" },
		"preview":    func(c *Config) { c.PointCloud.PreviewSize = -5 },
		"huge":       func(c *Config) { c.Byteplot.Width, c.Byteplot.Height = 1000000, 1000000 },
		"huge prev":  func(c *Config) { c.PointCloud.PreviewSize = byteplot.MaxImageSize + 1 },
		"no args":    func(c *Config) { c.Compress.Args = nil },
		"no output":  func(c *Config) { c.Compress.Args = []string{"-c", "{in}"} },
		"no input":   func(c *Config) { c.Compress.Args = []string{"--out={out}"} },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.PointCloud.Downsample = -1
	require.ErrorIs(t, cfg.Validate(), pointcloud.ErrDownsample)

	cfg = Default()
	cfg.Byteplot.Height = byteplot.MaxImageSize + 1
	require.ErrorIs(t, cfg.Validate(), byteplot.ErrImageSize)

	cfg = Default()
	cfg.Byteplot.Width, cfg.Byteplot.Height = byteplot.MaxImageSize, byteplot.MaxImageSize
	cfg.Compress.Args = []string{"--in={in}", "--out={out}"}
	require.NoError(t, cfg.Validate())
}
