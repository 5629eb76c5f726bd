package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rubendecampos/pdf-summarization/internal/bootstrap"
	"github.com/rubendecampos/pdf-summarization/internal/config"
	"github.com/rubendecampos/pdf-summarization/internal/observability/logging"
)

func main() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewJSONLogger("pdf-analyzer", cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsPort != "" {
		go func() {
			addr := ":" + cfg.MetricsPort
			mux := http.NewServeMux()
			mux.Handle("/metrics", app.Metrics.Handler())
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Warn("metrics_server_stopped", "error", err)
			}
		}()
	}

	rep, err := app.AnalyzeUC.Run(ctx)
	if err != nil {
		logger.Error("analysis_failed", "error", err)
		os.Exit(1)
	}

	if rep.TotalDocuments() == 0 && len(rep.Skips) == 0 {
		logger.Warn("no_documents_found", "input_folder", cfg.InputFolder)
		return
	}

	written, err := app.Writer.Write(rep)
	if err != nil && len(written) == 0 {
		logger.Error("report_write_failed", "error", err)
		os.Exit(1)
	}

	logger.Info("analysis_complete",
		"analyzed", rep.TotalDocuments(),
		"skipped", len(rep.Skips),
		"outputs", written,
	)
}
