package artifacts

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prdsync/internal/logging"
)

// Renderer renders mermaid diagram source to an image artifact.
type Renderer interface {
	Render(ctx context.Context, diagramSource, outputPath string) error
}

// MermaidRenderer shells out to the mermaid CLI (mmdc).
type MermaidRenderer struct {
	binary string
}

// NewMermaidRenderer creates a renderer using the given mmdc binary path.
func NewMermaidRenderer(binary string) *MermaidRenderer {
	return &MermaidRenderer{binary: binary}
}

// Render writes the diagram source next to the output and invokes mmdc.
func (r *MermaidRenderer) Render(ctx context.Context, diagramSource, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0700); err != nil {
		return err
	}

	sourcePath := outputPath + ".mmd"
	if err := os.WriteFile(sourcePath, []byte(diagramSource), 0600); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, r.binary, "-i", sourcePath, "-o", outputPath+".png")
	if out, err := cmd.CombinedOutput(); err != nil {
		return &renderError{output: strings.TrimSpace(string(out)), err: err}
	}
	return nil
}

type renderError struct {
	output string
	err    error
}

func (e *renderError) Error() string {
	if e.output == "" {
		return e.err.Error()
	}
	return e.err.Error() + ": " + e.output
}

func (e *renderError) Unwrap() error { return e.err }

// ChartWriter saves a changed PRD's quadrant chart under the charts
// directory, best-effort.
type ChartWriter struct {
	renderer Renderer
	dir      string
	logger   *logging.Logger
}

// NewChartWriter creates a writer rendering into dir. A nil renderer
// disables rendering; chart sources are still written to disk.
func NewChartWriter(renderer Renderer, dir string, logger *logging.Logger) *ChartWriter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ChartWriter{renderer: renderer, dir: dir, logger: logger.Named("artifacts")}
}

// Write renders the chart for the named document. Empty chart source is
// skipped silently; render failures are logged and swallowed.
func (w *ChartWriter) Write(ctx context.Context, docName, chartSource string) {
	if strings.TrimSpace(chartSource) == "" {
		return
	}

	base := strings.TrimSuffix(docName, filepath.Ext(docName))
	outputPath := filepath.Join(w.dir, base)

	if w.renderer == nil {
		if err := os.MkdirAll(w.dir, 0700); err == nil {
			err = os.WriteFile(outputPath+".mmd", []byte(chartSource), 0600)
			if err == nil {
				return
			}
			w.logger.Warn(ctx, "failed to write chart source", zap.String("doc", docName), zap.Error(err))
			return
		}
		return
	}

	if err := w.renderer.Render(ctx, chartSource, outputPath); err != nil {
		w.logger.Warn(ctx, "failed to render competitive analysis chart",
			zap.String("doc", docName), zap.Error(err))
	}
}
