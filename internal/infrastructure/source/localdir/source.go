package localdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

// Source enumerates PDF files in a single directory, non-recursive.
// Files with any other extension are ignored.
type Source struct {
	dir string
}

func New(dir string) (*Source, error) {
	if dir == "" {
		dir = "pdf-inputs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}
	return &Source{dir: dir}, nil
}

func (s *Source) List(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var docs []domain.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		docs = append(docs, domain.Document{
			Filename: name,
			Path:     filepath.Join(s.dir, name),
			Status:   domain.StatusLoaded,
		})
	}
	return docs, nil
}
