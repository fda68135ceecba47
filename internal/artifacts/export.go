package artifacts

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prdsync/internal/docstore"
	"github.com/fyrsmithlabs/prdsync/internal/logging"
	"github.com/fyrsmithlabs/prdsync/internal/prd"
)

// Exporter writes changed PRDs into an export collection as Markdown,
// best-effort.
type Exporter struct {
	store  docstore.Store
	logger *logging.Logger
}

// NewExporter creates an exporter over the export collection store. A nil
// store disables export.
func NewExporter(store docstore.Store, logger *logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Exporter{store: store, logger: logger.Named("artifacts")}
}

// Export renders the document to Markdown and saves it under the document's
// name with a .md suffix. Failures are logged and swallowed.
func (e *Exporter) Export(ctx context.Context, docName string, document *prd.PRD) {
	if e.store == nil {
		return
	}

	content, err := document.EncodeMarkdown()
	if err != nil {
		e.logger.Warn(ctx, "failed to encode export document",
			zap.String("doc", docName), zap.Error(err))
		return
	}

	name := strings.TrimSuffix(docName, filepath.Ext(docName)) + ".md"
	if err := e.store.Save(ctx, name, content); err != nil {
		e.logger.Warn(ctx, "failed to export document",
			zap.String("doc", docName), zap.Error(err))
	}
}
