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

// DeepSeekClient implements Client against the hosted DeepSeek chat API.
type DeepSeekClient struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewDeepSeekClient creates a DeepSeek-backed client.
func NewDeepSeekClient(cfg *config.Config, logger *zap.Logger) (*DeepSeekClient, error) {
	if cfg.DeepSeekAPIKey == "" {
		return nil, fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
	}

	return &DeepSeekClient{
		apiKey: cfg.DeepSeekAPIKey,
		apiURL: cfg.DeepSeekAPIURL,
		client: &http.Client{Timeout: cfg.LLMTimeout},
		logger: logger.Named("deepseek"),
	}, nil
}

// message represents a message in the chat
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest represents a request to the DeepSeek API
type chatRequest struct {
	Model            string    `json:"model"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateRecipe sends the prompt and returns the raw model text.
func (c *DeepSeekClient) GenerateRecipe(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: "deepseek-chat",
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:      0.9, // Higher temperature for more creativity
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

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
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	c.logger.Debug("deepseek completion",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_bytes", len(result.Choices[0].Message.Content)))

	return result.Choices[0].Message.Content, nil
}
