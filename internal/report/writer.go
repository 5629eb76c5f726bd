package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

const timestampLayout = "20060102_150405"

// Writer serializes one report into the configured output directory.
// Filenames embed the generation timestamp so prior runs are never
// overwritten. Each output format is attempted independently: a
// failure writing one file must not prevent the others.
type Writer struct {
	outputDir  string
	exportXLSX bool
	logger     *slog.Logger
}

func NewWriter(outputDir string, exportXLSX bool, logger *slog.Logger) (*Writer, error) {
	if outputDir == "" {
		outputDir = "outputs"
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{outputDir: outputDir, exportXLSX: exportXLSX, logger: logger}, nil
}

// Write renders and writes every configured format. It returns the
// paths written; err is non-nil if any format failed.
func (w *Writer) Write(rep domain.Report) ([]string, error) {
	ts := rep.GeneratedAt.Format(timestampLayout)

	type output struct {
		name   string
		render func(domain.Report) ([]byte, error)
	}
	outputs := []output{
		{
			name:   fmt.Sprintf("analysis_results_%s.json", ts),
			render: RenderJSON,
		},
		{
			name: fmt.Sprintf("summary_report_%s.md", ts),
			render: func(r domain.Report) ([]byte, error) {
				return RenderMarkdown(r), nil
			},
		},
	}
	if w.exportXLSX {
		outputs = append(outputs, output{
			name:   fmt.Sprintf("analysis_results_%s.xlsx", ts),
			render: RenderXLSX,
		})
	}

	var written []string
	var errs []error
	for _, o := range outputs {
		path := filepath.Join(w.outputDir, o.name)
		if err := w.writeOne(rep, path, o.render); err != nil {
			w.logger.Error("report_write_failed", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		w.logger.Info("report_written", "path", path)
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}

func (w *Writer) writeOne(rep domain.Report, path string, render func(domain.Report) ([]byte, error)) error {
	data, err := render(rep)
	if err != nil {
		return domain.WrapError(domain.ErrSerialization, "render report", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.WrapError(domain.ErrSerialization, "write report file", err)
	}
	return nil
}
