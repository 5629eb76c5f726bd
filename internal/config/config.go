package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/rubendecampos/pdf-summarization/internal/core/domain"
)

type Config struct {
	LogLevel string

	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAIEmbedModel  string
	OpenAITemperature float64
	OpenAIMaxTokens   int

	LLMRequestsPerMinute int

	InputFolder  string
	OutputFolder string
	ExportXLSX   bool

	EmbeddingsEnabled bool
	ChunkSize         int
	ChunkOverlap      int
	QdrantURL         string
	QdrantCollection  string

	MetricsPort string
}

func Load() Config {
	return Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		OpenAIAPIKey:      mustEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     mustEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       mustEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIEmbedModel:  mustEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		OpenAITemperature: mustEnvFloat("OPENAI_TEMPERATURE", 0.3),
		OpenAIMaxTokens:   mustEnvInt("OPENAI_MAX_TOKENS", 1024),

		LLMRequestsPerMinute: mustEnvInt("LLM_REQUESTS_PER_MINUTE", 0),

		InputFolder:  mustEnv("PDF_INPUT_FOLDER", "pdf-inputs"),
		OutputFolder: mustEnv("OUTPUT_FOLDER", "outputs"),
		ExportXLSX:   mustEnvBool("EXPORT_XLSX", false),

		EmbeddingsEnabled: mustEnvBool("EMBEDDINGS_ENABLED", false),
		ChunkSize:         mustEnvInt("CHUNK_SIZE", 1000),
		ChunkOverlap:      mustEnvInt("CHUNK_OVERLAP", 200),
		QdrantURL:         mustEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:  mustEnv("QDRANT_COLLECTION", "pdf_documents"),

		MetricsPort: mustEnv("METRICS_PORT", ""),
	}
}

// Validate rejects configurations the run cannot start with. Every
// other option has a usable default.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return domain.WrapError(domain.ErrConfiguration, "validate config", errors.New("OPENAI_API_KEY is required"))
	}
	if c.OpenAITemperature < 0 || c.OpenAITemperature > 2 {
		return domain.WrapError(domain.ErrConfiguration, "validate config", errors.New("OPENAI_TEMPERATURE must be in [0, 2]"))
	}
	return nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
