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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/byteplot/pointcloud"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--log-level", "none"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestByteplotCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte("\x7fELF"), 200), 0644))
	out := filepath.Join(dir, "plot.png")

	_, err := execute(t, "byteplot", in, out, "--curve", "zigzag", "--width", "512")
	require.NoError(t, err)
	require.FileExists(t, out)

	_, err = execute(t, "byteplot", in, out, "--curve", "peano")
	require.ErrorContains(t, err, "unknown curve")
}

func TestByteplotCommandConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(in, []byte{0, 1, 1, 0}, 0644))
	cfgFile := filepath.Join(dir, "binviz.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
byteplot:
  curve: hilbert
  palette: ["#000000", "#ffffff"]
`), 0644))

	out := filepath.Join(dir, "plot.bmp")
	_, err := execute(t, "--config", cfgFile, "byteplot", in, out)
	require.NoError(t, err)
	require.FileExists(t, out)

	// a flag overrides the palette from the file
	_, err = execute(t, "--config", cfgFile, "byteplot", in, out, "--palette", "#000000")
	require.ErrorContains(t, err, "outside palette")
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(in, []byte{1, 2, 3, 4, 5, 6}, 0644))
	hexFile := filepath.Join(dir, "o.hex")
	xyzFile := filepath.Join(dir, "o.xyz")
	plyFile := filepath.Join(dir, "o.ply")

	_, err := execute(t, "convert", in, "--hex", hexFile, "--xyz", xyzFile, "--ply", plyFile, "-k", "1")
	require.NoError(t, err)

	ply, err := os.ReadFile(plyFile)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(ply), "ply\nformat ascii 1.0\nelement vertex 2\n"))
}

func TestDownsampleRejected(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.hex")
	out := filepath.Join(dir, "o.xyz")

	for _, k := range []string{"0", "11", "-1"} {
		_, err := execute(t, "xyz", in, out, "--downsample", k)
		require.ErrorIs(t, err, pointcloud.ErrDownsample, "factor %s", k)
	}
	_, err := execute(t, "xyz", in, out, "--downsample", "abc")
	require.Error(t, err)
	require.NoFileExists(t, out)
}

func TestCompressCommandMissingTool(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.glb")
	require.NoError(t, os.WriteFile(in, []byte("glTF"), 0644))

	_, err := execute(t, "compress", in, filepath.Join(dir, "out.glb"), "--tool", "binviz-no-such-compressor")
	require.ErrorContains(t, err, "not found")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "binviz")
}
