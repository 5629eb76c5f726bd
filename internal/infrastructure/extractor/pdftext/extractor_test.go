package pdftext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

func TestExtractMissingFileReturnsExtractionError(t *testing.T) {
	e := New()
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected extraction error kind, got %v", err)
	}
}

func TestExtractCorruptFileReturnsExtractionError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	e := New()
	_, err := e.Extract(context.Background(), path)
	if err == nil {
		t.Fatalf("expected error for corrupt file")
	}
	if !domain.IsKind(err, domain.ErrExtraction) {
		t.Fatalf("expected extraction error kind, got %v", err)
	}
}

func TestExtractHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New()
	if _, err := e.Extract(ctx, "whatever.pdf"); err == nil {
		t.Fatalf("expected context error")
	}
}
