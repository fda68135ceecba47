package artifacts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// recordingRenderer captures Render calls.
type recordingRenderer struct {
	mu      sync.Mutex
	sources []string
	outputs []string
	err     error
}

func (r *recordingRenderer) Render(ctx context.Context, diagramSource, outputPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, diagramSource)
	r.outputs = append(r.outputs, outputPath)
	return r.err
}

func TestChartWriterRenders(t *testing.T) {
	renderer := &recordingRenderer{}
	dir := t.TempDir()
	w := NewChartWriter(renderer, dir, nil)

	w.Write(context.Background(), "prd-1.json", "quadrantChart\n    title Demo")

	require.Len(t, renderer.outputs, 1)
	assert.Equal(t, filepath.Join(dir, "prd-1"), renderer.outputs[0])
	assert.Equal(t, "quadrantChart\n    title Demo", renderer.sources[0])
}

func TestChartWriterSkipsEmptySource(t *testing.T) {
	renderer := &recordingRenderer{}
	w := NewChartWriter(renderer, t.TempDir(), nil)

	w.Write(context.Background(), "prd-1.json", "   \n")

	assert.Empty(t, renderer.outputs)
}

func TestChartWriterSwallowsRenderFailure(t *testing.T) {
	renderer := &recordingRenderer{err: errors.New("mmdc not found")}
	w := NewChartWriter(renderer, t.TempDir(), nil)

	// Must not panic or propagate
	w.Write(context.Background(), "prd-1.json", "quadrantChart")

	assert.Len(t, renderer.outputs, 1)
}

func TestChartWriterNilRendererWritesSource(t *testing.T) {
	dir := t.TempDir()
	w := NewChartWriter(nil, dir, nil)

	w.Write(context.Background(), "prd-1.json", "quadrantChart\n    title Demo")

	data, err := os.ReadFile(filepath.Join(dir, "prd-1.mmd"))
	require.NoError(t, err)
	assert.Equal(t, "quadrantChart\n    title Demo", string(data))
}

func TestMermaidRendererWritesSource(t *testing.T) {
	// Use /bin/true as a stand-in binary so only the source write is exercised
	r := NewMermaidRenderer("true")
	out := filepath.Join(t.TempDir(), "charts", "prd-1")

	err := r.Render(context.Background(), "quadrantChart", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out + ".mmd")
	require.NoError(t, err)
	assert.Equal(t, "quadrantChart", string(data))
}

func TestMermaidRendererMissingBinary(t *testing.T) {
	r := NewMermaidRenderer(filepath.Join(t.TempDir(), "no-such-mmdc"))
	out := filepath.Join(t.TempDir(), "prd-1")

	err := r.Render(context.Background(), "quadrantChart", out)
	require.Error(t, err)
}

func TestExporter(t *testing.T) {
	store, err := docstore.NewFileStore(t.TempDir(), "resources/prd")
	require.NoError(t, err)
	e := NewExporter(store, nil)

	document := &prd.PRD{
		Language:    "en_us",
		ProjectName: "snake_game",
	}
	e.Export(context.Background(), "prd-1.json", document)

	exported, err := store.Get(context.Background(), "prd-1.md")
	require.NoError(t, err)
	assert.Contains(t, exported.Content, "## Project Name")
	assert.Contains(t, exported.Content, "snake_game")
}

func TestExporterNilStore(t *testing.T) {
	e := NewExporter(nil, nil)

	// Disabled exporter is a no-op
	e.Export(context.Background(), "prd-1.json", &prd.PRD{})
}

func TestExporterSwallowsSaveFailure(t *testing.T) {
	store, err := docstore.NewFileStore(t.TempDir(), "resources/prd")
	require.NoError(t, err)
	e := NewExporter(store, nil)

	// Invalid target name after suffix swap; failure is logged, not returned
	e.Export(context.Background(), "/", &prd.PRD{})
}
