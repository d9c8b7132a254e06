package openscad

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gorim/pkg/sphere"
)

// ErrNotInstalled is returned when the openscad binary is not on PATH.
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// Renderer runs the external openscad binary
type Renderer struct {
	workDir string
}

// NewRenderer creates a renderer that resolves relative paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		workDir: workDir,
	}
}

// Available reports whether openscad can be executed
func Available() bool {
	_, err := exec.LookPath("openscad")
	return err == nil
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// RenderToSTL renders an OpenSCAD file to STL
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	if !Available() {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, "openscad", "-o", r.abs(outputFile), r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		fmt.Fprintf(&msg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(stdout.String())
		}
		return errors.New(msg.String())
	}
	return nil
}

// RenderSet writes the union script of set next to outputFile and renders it.
// The script is kept as <outputFile without extension>.scad.
func (r *Renderer) RenderSet(ctx context.Context, set *sphere.Set, segments int, outputFile string) error {
	scadFile := strings.TrimSuffix(r.abs(outputFile), filepath.Ext(outputFile)) + ".scad"

	file, err := os.Create(scadFile)
	if err != nil {
		return fmt.Errorf("failed to create script: %w", err)
	}
	if err := WriteScript(file, set, segments); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", scadFile, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	return r.RenderToSTL(ctx, scadFile, outputFile)
}
