package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/culinarycode/backend/config"
)

// OllamaClient implements Client against a local Ollama server. Used for
// development and self-hosted deployments where no hosted API is available.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewOllamaClient creates an Ollama-backed client.
func NewOllamaClient(cfg *config.Config, logger *zap.Logger) *OllamaClient {
	logger.Info("ollama client initialized",
		zap.String("base_url", cfg.OllamaHost),
		zap.String("model", cfg.OllamaModel),
		zap.Duration("timeout", cfg.LLMTimeout))

	return &OllamaClient{
		baseURL: cfg.OllamaHost,
		model:   cfg.OllamaModel,
		client:  &http.Client{Timeout: cfg.LLMTimeout},
		logger:  logger.Named("ollama"),
	}
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// GenerateRecipe sends the prompt and returns the raw model text.
func (c *OllamaClient) GenerateRecipe(ctx context.Context, prompt string) (string, error) {
	reqBody := ollamaGenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ollamaGenerateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("ollama completion",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_bytes", len(result.Response)))

	return result.Response, nil
}
