package clients

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrToolNotConfigured is returned when rendering is requested without a graph tool
var ErrToolNotConfigured = errors.New("graph tool path is not configured")

// GraphvizClient renders DOT files to images with an external Graphviz binary
type GraphvizClient struct {
	runner   Runner
	toolPath string
}

// NewGraphvizClient creates a client for the Graphviz binary at toolPath
func NewGraphvizClient(runner Runner, toolPath string) *GraphvizClient {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &GraphvizClient{
		runner:   runner,
		toolPath: toolPath,
	}
}

// ImagePath returns the path the rendered image of dotFile is written to
func ImagePath(dotFile, format string) string {
	return strings.TrimSuffix(dotFile, filepath.Ext(dotFile)) + "." + format
}

// Render converts dotFile into an image of the given format (e.g. "png")
// next to it and returns the image path.
func (c *GraphvizClient) Render(ctx context.Context, dotFile, format string) (string, error) {
	if c.toolPath == "" {
		return "", ErrToolNotConfigured
	}

	out := ImagePath(dotFile, format)
	if _, err := c.runner.Run(ctx, c.toolPath, "-T"+format, "-o", out, dotFile); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", dotFile, err)
	}

	return out, nil
}
