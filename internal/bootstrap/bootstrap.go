package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rubendecampos/pdf-summarization/internal/config"
	"github.com/rubendecampos/pdf-summarization/internal/core/usecase"
	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/chunking"
	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/extractor/pdftext"
	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/llm/openai"
	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/resilience"
	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/source/localdir"
	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/vector/qdrant"
	"github.com/rubendecampos/pdf-summarization/internal/observability/metrics"
	"github.com/rubendecampos/pdf-summarization/internal/report"
)

type App struct {
	Config config.Config

	AnalyzeUC *usecase.AnalyzeFolderUseCase
	Writer    *report.Writer
	Metrics   *metrics.PipelineMetrics
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, err := localdir.New(cfg.InputFolder)
	if err != nil {
		return nil, fmt.Errorf("init input source: %w", err)
	}

	writer, err := report.NewWriter(cfg.OutputFolder, cfg.ExportXLSX, logger)
	if err != nil {
		return nil, fmt.Errorf("init report writer: %w", err)
	}

	exec := resilience.NewExecutor(resilience.DefaultConfig())
	client := openai.New(openai.Config{
		APIKey:            cfg.OpenAIAPIKey,
		BaseURL:           cfg.OpenAIBaseURL,
		Model:             cfg.OpenAIModel,
		EmbedModel:        cfg.OpenAIEmbedModel,
		Temperature:       cfg.OpenAITemperature,
		MaxTokens:         cfg.OpenAIMaxTokens,
		RequestsPerMinute: cfg.LLMRequestsPerMinute,
		Timeout:           120 * time.Second,
	}, exec)

	pipelineMetrics := metrics.NewPipelineMetrics("pdf-analyzer")

	analyzeUC := usecase.NewAnalyzeFolderUseCase(
		source,
		pdftext.New(),
		openai.NewClassifier(client),
		openai.NewSummarizer(client),
		logger,
	).WithMetrics(pipelineMetrics)

	if cfg.EmbeddingsEnabled {
		analyzeUC = analyzeUC.WithEmbeddingIndex(
			chunking.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
			client,
			qdrant.New(cfg.QdrantURL, cfg.QdrantCollection),
		)
	}

	return &App{
		Config:    cfg,
		AnalyzeUC: analyzeUC,
		Writer:    writer,
		Metrics:   pipelineMetrics,
	}, nil
}
