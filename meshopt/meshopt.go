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

// Package meshopt runs an external mesh compression tool.
package meshopt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTool is the name of the compressor looked up on the PATH.
const DefaultTool = "meshopt"

// waitDelay bounds the wait for the output of a killed tool.
const waitDelay = 2 * time.Second

// ErrToolNotFound is returned if the compressor is not installed.
var ErrToolNotFound = errors.New("meshopt: compression tool not found")

// ToolError reports a compressor run which exited with a nonzero status.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Tool, e.ExitCode, msg)
}

// Compressor describes how to invoke the compression tool.
// The zero value runs "meshopt -c <in> <out>".
type Compressor struct {
	// Tool is the executable name or path.
	Tool string

	// Args returns the command line arguments for the given input and
	// output paths.
	Args func(in, out string) []string
}

func (c *Compressor) tool() string {
	if c.Tool == "" {
		return DefaultTool
	}
	return c.Tool
}

func (c *Compressor) args(in, out string) []string {
	if c.Args == nil {
		return []string{"-c", in, out}
	}
	return c.Args(in, out)
}

// Available reports the resolved path of the tool, or ErrToolNotFound.
func (c *Compressor) Available() (string, error) {
	path, err := exec.LookPath(c.tool())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrToolNotFound, c.tool(), err)
	}
	return path, nil
}

// Compress runs the tool to compress the mesh file in into out.
// The call blocks until the tool exits.  If ctx is cancelled, the tool
// is killed and the error from ctx is returned.
func (c *Compressor) Compress(ctx context.Context, in, out string) error {
	path, err := c.Available()
	if err != nil {
		return err
	}
	if _, err := os.Stat(in); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, path, c.args(in, out)...)
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err = cmd.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{
			Tool:     c.tool(),
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr.String(),
		}
	}
	return err
}
