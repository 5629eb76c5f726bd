package ports

import (
	"context"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

// DocumentSource enumerates candidate input files.
type DocumentSource interface {
	List(ctx context.Context) ([]domain.Document, error)
}

// TextExtractor pulls plain text out of a source file.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Classifier assigns a document exactly one content type from the
// closed set. Implementations must coerce arbitrary model output.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.ContentType, error)
}

// Summarizer produces the content-type-specific analysis for a
// document's text.
type Summarizer interface {
	Summarize(ctx context.Context, contentType domain.ContentType, text string) (domain.AnalysisResult, error)
}

// Chunker splits text into pieces sized for embedding.
type Chunker interface {
	Split(text string) []string
}

// Embedder builds vectors for text chunks.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorIndex stores embedded document chunks for later similarity
// search.
type VectorIndex interface {
	IndexChunks(ctx context.Context, doc *domain.Document, chunks []string, vectors [][]float32) error
}
