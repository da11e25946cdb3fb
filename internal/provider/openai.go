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

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIClient implements the Client interface for the OpenAI chat API
type OpenAIClient struct {
	apiKey    string
	baseURL   string
	client    *http.Client
	model     string
	maxTokens int
}

// OpenAI API request/response structures
type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
	// Pointer so an explicit 0.0 still goes on the wire; the API
	// defaults to 1.0 when the field is absent.
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []openAIChoice `json:"choices"`
	Usage   openAIUsage    `json:"usage"`
	Error   *openAIError   `json:"error,omitempty"`
}

type openAIChoice struct {
	Index        int           `json:"index"`
	Message      openAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason,omitempty"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewOpenAIClient creates a new OpenAI client from configuration
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewMissingAPIKeyError("openai")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		apiKey:    cfg.APIKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 120 * time.Second},
		model:     model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Generate implements Client.Generate
func (c *OpenAIClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	startTime := time.Now()

	oaiReq := c.buildRequest(req)

	reqBody, err := json.Marshal(oaiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProviderAPI, "openai request failed", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden {
		return nil, errors.NewProviderAuthError("openai")
	}

	if httpResp.StatusCode != http.StatusOK {
		var errResp openAIResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("openai error: %s", errResp.Error.Message))
		}
		return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("openai http error %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var oaiResp openAIResponse
	if err := json.Unmarshal(respBody, &oaiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(oaiResp.Choices) == 0 {
		return nil, errors.New(errors.ErrCodeProviderEmpty, "openai returned no choices")
	}

	return &GenerateResponse{
		Content:      oaiResp.Choices[0].Message.Content,
		Model:        oaiResp.Model,
		InputTokens:  oaiResp.Usage.PromptTokens,
		OutputTokens: oaiResp.Usage.CompletionTokens,
		TokensUsed:   oaiResp.Usage.TotalTokens,
		Latency:      time.Since(startTime),
		FinishReason: oaiResp.Choices[0].FinishReason,
		Provider:     "openai",
	}, nil
}

// buildRequest constructs an OpenAI API request from our GenerateRequest
func (c *OpenAIClient) buildRequest(req *GenerateRequest) *openAIRequest {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}

	messages := []openAIMessage{}
	if req.SystemPrompt != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: req.Prompt})

	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	return &openAIRequest{
		Model:       model,
		Messages:    messages,
		Temperature: &req.Temperature,
		MaxTokens:   maxTokens,
	}
}

// Info implements Client.Info
func (c *OpenAIClient) Info() Info {
	return Info{
		Name:         "openai",
		BaseURL:      c.baseURL,
		DefaultModel: c.model,
		Description:  "OpenAI chat completions API",
	}
}

// IsAvailable implements Client.IsAvailable
func (c *OpenAIClient) IsAvailable() bool {
	return c.apiKey != ""
}

// Health implements Client.Health
func (c *OpenAIClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("create health check request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

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
func (c *OpenAIClient) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
