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

// Package fileio writes output files atomically and handles
// zstd-compressed files.
//
// Output is first written to a temporary file in the target directory
// and only renamed into place by Commit, so a failed operation never
// leaves a partial output file behind.  Paths ending in ".zst" are
// compressed on write and decompressed on read.
package fileio

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is the file name extension of compressed files.
const ZstdExt = ".zst"

// IsCompressed reports whether path names a zstd-compressed file.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ZstdExt)
}

// File is an output file which becomes visible under its final name
// only after Commit.
type File struct {
	path string
	tmp  *os.File
	zw   *zstd.Encoder
	w    io.Writer
	done bool
}

// createTemp creates a new temporary file next to path.  Unlike
// os.CreateTemp, the file gets the permissions os.Create would use,
// since it is renamed to path later.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	for range 10000 {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(uint64(rand.Uint32()), 10))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: path, Err: fs.ErrExist}
}

// Create starts writing the file at path.
func Create(path string) (*File, error) {
	tmp, err := createTemp(path)
	if err != nil {
		return nil, err
	}
	f := &File{path: path, tmp: tmp, w: tmp}
	if IsCompressed(path) {
		zw, err := zstd.NewWriter(tmp, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			f.Abort()
			return nil, err
		}
		f.zw = zw
		f.w = zw
	}
	return f, nil
}

// Write implements the io.Writer interface.
func (f *File) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

// Commit finishes the file and moves it to its final name.
func (f *File) Commit() error {
	if f.done {
		return os.ErrClosed
	}
	f.done = true

	var err error
	if f.zw != nil {
		err = f.zw.Close()
	}
	if cerr := f.tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(f.tmp.Name(), f.path)
	}
	if err != nil {
		os.Remove(f.tmp.Name())
	}
	return err
}

// Abort discards the file.  It does nothing after Commit, so it can be
// deferred right after Create.
func (f *File) Abort() {
	if f.done {
		return
	}
	f.done = true
	if f.zw != nil {
		f.zw.Close()
	}
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}

// WriteFile creates path and fills it using write.  If write fails, no
// file is created.
func WriteFile(path string, write func(w io.Writer) error) error {
	f, err := Create(path)
	if err != nil {
		return err
	}
	defer f.Abort()

	if err := write(f); err != nil {
		return err
	}
	return f.Commit()
}

// WriteNamed is like WriteFile for writers which need a file name
// instead of an io.Writer.  The file written by write is moved to path
// once write returns without error.  Compression is not supported.
func WriteNamed(path string, write func(tmpName string) error) (err error) {
	tmp, err := createTemp(path)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if err := write(tmpName); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// ReadFile reads the whole file, decompressing ".zst" files.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil || !IsCompressed(path) {
		return data, err
	}

	zr, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
