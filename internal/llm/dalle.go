package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/culinarycode/backend/config"
)

// DalleClient generates recipe images through the OpenAI images API.
// With no API key configured the client is disabled and GenerateImage
// returns nil bytes without error.
type DalleClient struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewDalleClient creates a DALL-E image client.
func NewDalleClient(cfg *config.Config, logger *zap.Logger) *DalleClient {
	return &DalleClient{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.ImageAPIURL,
		client: &http.Client{Timeout: 2 * time.Minute},
		logger: logger.Named("dalle"),
	}
}

// Enabled reports whether an API key is configured.
func (c *DalleClient) Enabled() bool {
	return c.apiKey != ""
}

type imageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageGenerationResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL     string `json:"url,omitempty"`
		B64JSON string `json:"b64_json,omitempty"`
	} `json:"data"`
}

// GenerateImage returns the raw PNG bytes for the prompt, or nil when the
// client is disabled.
func (c *DalleClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if !c.Enabled() {
		return nil, nil
	}

	reqBody := imageGenerationRequest{
		Model:          "dall-e-3",
		Prompt:         "A professional food photograph of: " + prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result imageGenerationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("no image in API response")
	}

	imgBytes, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	c.logger.Debug("image generated", zap.Int("bytes", len(imgBytes)))
	return imgBytes, nil
}
