package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
	"github.com/rubendecampos/pdf-summarization/internal/core/ports"
	"github.com/rubendecampos/pdf-summarization/internal/observability/metrics"
)

const serviceName = "pdf-analyzer"

// degradedSummaryChars caps the raw-text excerpt used when the model
// call fails and the document falls back to a summary-only record.
const degradedSummaryChars = 400

// AnalyzeFolderUseCase is the whole pipeline: enumerate PDFs, extract,
// classify, summarize, optionally index embeddings, and aggregate one
// report. Documents are processed one at a time; a failing file is
// skipped or degraded, never fatal to the run.
type AnalyzeFolderUseCase struct {
	source     ports.DocumentSource
	extractor  ports.TextExtractor
	classifier ports.Classifier
	summarizer ports.Summarizer

	// Embedding index is optional; all three are nil when disabled.
	chunker  ports.Chunker
	embedder ports.Embedder
	index    ports.VectorIndex

	metrics *metrics.PipelineMetrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewAnalyzeFolderUseCase(
	source ports.DocumentSource,
	extractor ports.TextExtractor,
	classifier ports.Classifier,
	summarizer ports.Summarizer,
	logger *slog.Logger,
) *AnalyzeFolderUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeFolderUseCase{
		source:     source,
		extractor:  extractor,
		classifier: classifier,
		summarizer: summarizer,
		logger:     logger,
		now:        time.Now,
	}
}

// WithEmbeddingIndex enables the optional chunk-embed-index step.
func (uc *AnalyzeFolderUseCase) WithEmbeddingIndex(chunker ports.Chunker, embedder ports.Embedder, index ports.VectorIndex) *AnalyzeFolderUseCase {
	uc.chunker = chunker
	uc.embedder = embedder
	uc.index = index
	return uc
}

// WithMetrics attaches run metrics.
func (uc *AnalyzeFolderUseCase) WithMetrics(m *metrics.PipelineMetrics) *AnalyzeFolderUseCase {
	uc.metrics = m
	return uc
}

// Run processes every discovered document and returns the aggregated
// report. The returned error is non-nil only for setup-level failures
// (unreadable input directory); per-document failures are recorded in
// the report instead.
func (uc *AnalyzeFolderUseCase) Run(ctx context.Context) (domain.Report, error) {
	docs, err := uc.source.List(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("list input documents: %w", err)
	}
	uc.logger.Info("run_started", "documents", len(docs))

	var results []domain.DocumentResult
	var skips []domain.SkipRecord

	for i := range docs {
		doc := &docs[i]
		if err := ctx.Err(); err != nil {
			return domain.Report{}, err
		}

		uc.metrics.StartDocument()
		result, skip := uc.processDocument(ctx, doc)
		switch {
		case skip != nil:
			doc.Status = domain.StatusSkipped
			skips = append(skips, *skip)
			uc.metrics.FinishDocument(serviceName, "skipped")
		case result.Analysis.Degraded:
			doc.Status = domain.StatusReported
			results = append(results, result)
			uc.metrics.FinishDocument(serviceName, "degraded")
		default:
			doc.Status = domain.StatusReported
			results = append(results, result)
			uc.metrics.FinishDocument(serviceName, "analyzed")
		}
	}

	rep := domain.BuildReport(results, skips, uc.now(), uuid.NewString())
	uc.logger.Info("run_finished",
		"analyzed", rep.TotalDocuments(),
		"skipped", len(rep.Skips),
	)
	return rep, nil
}

func (uc *AnalyzeFolderUseCase) processDocument(ctx context.Context, doc *domain.Document) (domain.DocumentResult, *domain.SkipRecord) {
	text, err := uc.extractor.Extract(ctx, doc.Path)
	if err != nil {
		uc.logger.Warn("document_skipped", "filename", doc.Filename, "error", err)
		return domain.DocumentResult{}, &domain.SkipRecord{Filename: doc.Filename, Reason: err.Error()}
	}
	if strings.TrimSpace(text) == "" {
		uc.logger.Warn("document_skipped", "filename", doc.Filename, "error", "empty extracted text")
		return domain.DocumentResult{}, &domain.SkipRecord{Filename: doc.Filename, Reason: "empty extracted text"}
	}
	doc.Text = text

	doc.ContentType = uc.classify(ctx, doc)
	doc.Status = domain.StatusClassified

	doc.Analysis = uc.summarize(ctx, doc)
	doc.Status = domain.StatusSummarized

	uc.indexEmbeddings(ctx, doc)

	return domain.DocumentResult{Filename: doc.Filename, Analysis: doc.Analysis}, nil
}

// classify never fails a document: when the model call itself fails,
// the document proceeds as "general" and the summarize step decides
// whether the run degrades it.
func (uc *AnalyzeFolderUseCase) classify(ctx context.Context, doc *domain.Document) domain.ContentType {
	start := uc.now()
	ct, err := uc.classifier.Classify(ctx, doc.Text)
	uc.metrics.ObserveLLMCall(serviceName, "classify", uc.now().Sub(start), err)
	if err != nil {
		uc.logger.Warn("classification_failed", "filename", doc.Filename, "error", err)
		return domain.ContentTypeGeneral
	}
	uc.logger.Debug("document_classified", "filename", doc.Filename, "content_type", ct)
	return ct
}

func (uc *AnalyzeFolderUseCase) summarize(ctx context.Context, doc *domain.Document) domain.AnalysisResult {
	start := uc.now()
	analysis, err := uc.summarizer.Summarize(ctx, doc.ContentType, doc.Text)
	uc.metrics.ObserveLLMCall(serviceName, "summarize", uc.now().Sub(start), err)
	if err != nil {
		uc.logger.Warn("summarization_degraded", "filename", doc.Filename, "error", err)
		return degradedResult(doc)
	}
	analysis.ContentType = doc.ContentType
	return analysis
}

// degradedResult is the minimal summary-only record for a document
// whose model call exhausted its retry budget.
func degradedResult(doc *domain.Document) domain.AnalysisResult {
	excerpt := strings.TrimSpace(doc.Text)
	if runes := []rune(excerpt); len(runes) > degradedSummaryChars {
		excerpt = strings.TrimSpace(string(runes[:degradedSummaryChars])) + "…"
	}
	return domain.AnalysisResult{
		ContentType: doc.ContentType,
		Summary:     excerpt,
		Degraded:    true,
	}
}

func (uc *AnalyzeFolderUseCase) indexEmbeddings(ctx context.Context, doc *domain.Document) {
	if uc.chunker == nil || uc.embedder == nil || uc.index == nil {
		return
	}

	chunks := uc.chunker.Split(doc.Text)
	if len(chunks) == 0 {
		return
	}

	start := uc.now()
	vectors, err := uc.embedder.Embed(ctx, chunks)
	uc.metrics.ObserveLLMCall(serviceName, "embed", uc.now().Sub(start), err)
	if err != nil {
		uc.logger.Warn("embedding_failed", "filename", doc.Filename, "error", err)
		return
	}

	if err := uc.index.IndexChunks(ctx, doc, chunks, vectors); err != nil {
		uc.logger.Warn("index_failed", "filename", doc.Filename, "error", err)
	}
}
