package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

const defaultAnthropicBaseURL = "https://api.anthropic.com/v1"

// AnthropicClient implements the Client interface for the Anthropic messages API
type AnthropicClient struct {
	apiKey    string
	baseURL   string
	client    *http.Client
	model     string
	maxTokens int
}

// Anthropic API request/response structures
type anthropicRequest struct {
	Model     string             `json:"model"`
	Messages  []anthropicMessage `json:"messages"`
	System    string             `json:"system,omitempty"`
	MaxTokens int                `json:"max_tokens"`
	// Pointer so an explicit 0.0 still goes on the wire instead of
	// falling back to the API default.
	Temperature *float64 `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	ID         string             `json:"id"`
	Content    []anthropicContent `json:"content"`
	Model      string             `json:"model"`
	StopReason string             `json:"stop_reason,omitempty"`
	Usage      anthropicUsage     `json:"usage"`
	Error      *anthropicError    `json:"error,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewAnthropicClient creates a new Anthropic client from configuration
func NewAnthropicClient(cfg Config) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewMissingAPIKeyError("anthropic")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "claude-haiku-4-5-20251015"
	}

	// The messages API requires max_tokens
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &AnthropicClient{
		apiKey:    cfg.APIKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 120 * time.Second},
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Generate implements Client.Generate
func (c *AnthropicClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	startTime := time.Now()

	anthReq := c.buildRequest(req)

	reqBody, err := json.Marshal(anthReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProviderAPI, "anthropic request failed", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden {
		return nil, errors.NewProviderAuthError("anthropic")
	}

	if httpResp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("anthropic error: %s", errResp.Error.Message))
		}
		return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("anthropic http error %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(respBody, &anthResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return nil, errors.New(errors.ErrCodeProviderEmpty, "anthropic returned no content")
	}

	return &GenerateResponse{
		Content:      anthResp.Content[0].Text,
		Model:        anthResp.Model,
		InputTokens:  anthResp.Usage.InputTokens,
		OutputTokens: anthResp.Usage.OutputTokens,
		TokensUsed:   anthResp.Usage.InputTokens + anthResp.Usage.OutputTokens,
		Latency:      time.Since(startTime),
		FinishReason: anthResp.StopReason,
		Provider:     "anthropic",
	}, nil
}

// buildRequest constructs an Anthropic API request from our GenerateRequest
func (c *AnthropicClient) buildRequest(req *GenerateRequest) *anthropicRequest {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	return &anthropicRequest{
		Model:       model,
		Messages:    []anthropicMessage{{Role: "user", Content: req.Prompt}},
		System:      req.SystemPrompt,
		MaxTokens:   maxTokens,
		Temperature: &req.Temperature,
	}
}

// Info implements Client.Info
func (c *AnthropicClient) Info() Info {
	return Info{
		Name:         "anthropic",
		BaseURL:      c.baseURL,
		DefaultModel: c.model,
		Description:  "Anthropic messages API",
	}
}

// IsAvailable implements Client.IsAvailable
func (c *AnthropicClient) IsAvailable() bool {
	return c.apiKey != ""
}

// Health implements Client.Health
func (c *AnthropicClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("create health check request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// Close implements Client.Close
func (c *AnthropicClient) Close() error {
	return nil
}
