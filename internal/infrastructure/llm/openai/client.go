package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rubendecampos/pdf-summarization/internal/infrastructure/resilience"
)

type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	EmbedModel        string
	Temperature       float64
	MaxTokens         int
	RequestsPerMinute int
	Timeout           time.Duration
}

// Client talks to an OpenAI-compatible chat-completions and embeddings
// API. Calls run through the resilience executor and, when configured,
// a request rate limiter.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	exec       *resilience.Executor
}

func New(cfg Config, exec *resilience.Executor) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if exec == nil {
		exec = resilience.NewExecutor(resilience.DefaultConfig())
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		exec:       exec,
	}
}

// Complete runs one chat completion and returns the raw assistant
// text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, "chat_completion", prompt, false)
}

// CompleteJSON runs one chat completion in JSON mode, for prompts
// whose output must be a single JSON object.
func (c *Client) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, "chat_completion_json", prompt, true)
}

func (c *Client) complete(ctx context.Context, operation, prompt string, jsonMode bool) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}
	if c.cfg.MaxTokens > 0 {
		body["max_tokens"] = c.cfg.MaxTokens
	}
	if jsonMode {
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	err := c.exec.Execute(ctx, operation, func(callCtx context.Context) error {
		return c.postJSON(callCtx, "/chat/completions", body, &response, operation)
	}, classifyOpenAIError)
	if err != nil {
		return "", wrapAPIError(operation, err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices in response", operation)
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// Embed builds one vector per input text.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	body := map[string]any{
		"model": c.cfg.EmbedModel,
		"input": texts,
	}

	var response struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	err := c.exec.Execute(ctx, "embeddings", func(callCtx context.Context) error {
		return c.postJSON(callCtx, "/embeddings", body, &response, "embeddings")
	}, classifyOpenAIError)
	if err != nil {
		return nil, wrapAPIError("embeddings", err)
	}

	vectors := make([][]float32, 0, len(response.Data))
	for _, d := range response.Data {
		vectors = append(vectors, d.Embedding)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embeddings: vectors/input mismatch: %d/%d", len(vectors), len(texts))
	}
	return vectors, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}
