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

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient implements the Client interface for the Google Gemini API
type GeminiClient struct {
	apiKey    string
	baseURL   string
	client    *http.Client
	model     string
	maxTokens int
}

// Gemini API request/response structures
type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata,omitempty"`
	ModelVersion  string            `json:"modelVersion,omitempty"`
	Error         *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
	Index        int           `json:"index"`
}

type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewGeminiClient creates a new Gemini client from configuration
func NewGeminiClient(cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewMissingAPIKeyError("gemini")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiClient{
		apiKey:    cfg.APIKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: 120 * time.Second},
		model:     model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Generate implements Client.Generate
func (c *GeminiClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	startTime := time.Now()

	geminiReq := c.buildRequest(req)

	reqBody, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	modelName := c.model
	if req.Model != "" {
		modelName = req.Model
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, modelName, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProviderAPI, "gemini request failed", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden {
		return nil, errors.NewProviderAuthError("gemini")
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("gemini http error %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return nil, errors.New(errors.ErrCodeProviderAPI, fmt.Sprintf("gemini error: %s (code: %d)", geminiResp.Error.Message, geminiResp.Error.Code))
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New(errors.ErrCodeProviderEmpty, "gemini returned no candidates")
	}

	content := ""
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		content += part.Text
	}

	resp := &GenerateResponse{
		Content:      content,
		Model:        modelName,
		Latency:      time.Since(startTime),
		FinishReason: geminiResp.Candidates[0].FinishReason,
		Provider:     "gemini",
	}
	if geminiResp.ModelVersion != "" {
		resp.Model = geminiResp.ModelVersion
	}
	if geminiResp.UsageMetadata != nil {
		resp.InputTokens = geminiResp.UsageMetadata.PromptTokenCount
		resp.OutputTokens = geminiResp.UsageMetadata.CandidatesTokenCount
		resp.TokensUsed = geminiResp.UsageMetadata.TotalTokenCount
	}

	return resp, nil
}

// buildRequest constructs a Gemini API request from our GenerateRequest
func (c *GeminiClient) buildRequest(req *GenerateRequest) *geminiRequest {
	geminiReq := &geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: req.Prompt}},
			},
		},
	}

	if req.SystemPrompt != "" {
		geminiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}

	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	if req.Temperature > 0 || maxTokens > 0 {
		cfg := &geminiGenerationConfig{MaxOutputTokens: maxTokens}
		if req.Temperature > 0 {
			temp := req.Temperature
			cfg.Temperature = &temp
		}
		geminiReq.GenerationConfig = cfg
	}

	return geminiReq
}

// Info implements Client.Info
func (c *GeminiClient) Info() Info {
	return Info{
		Name:         "gemini",
		BaseURL:      c.baseURL,
		DefaultModel: c.model,
		Description:  "Google Gemini generateContent API",
	}
}

// IsAvailable implements Client.IsAvailable
func (c *GeminiClient) IsAvailable() bool {
	return c.apiKey != ""
}

// Health implements Client.Health
func (c *GeminiClient) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/models?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create health check request: %w", err)
	}

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
func (c *GeminiClient) Close() error {
	return nil
}
