package provider

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

func TestNewOpenAIClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{Name: "openai", APIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{Name: "openai"},
			wantErr: true,
		},
		{
			name:    "custom base url",
			config:  Config{Name: "openai", APIKey: "test-key", BaseURL: "http://localhost:9999/v1"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewOpenAIClient(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewOpenAIClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && client == nil {
				t.Error("NewOpenAIClient() returned nil client without error")
			}
		})
	}
}

func TestNewOpenAIClientMissingKeyIsConfigError(t *testing.T) {
	_, err := NewOpenAIClient(Config{Name: "openai"})
	var lcErr *errors.LettercraftError
	if !stderrors.As(err, &lcErr) {
		t.Fatalf("expected LettercraftError, got %T", err)
	}
	if !lcErr.IsConfiguration() {
		t.Errorf("expected a configuration error, got code %s", lcErr.Code)
	}
}

func TestOpenAIClientGenerate(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}

		var req openAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		if req.Model != "gpt-4o-mini" {
			t.Errorf("unexpected model: %s", req.Model)
		}
		if req.Temperature == nil || *req.Temperature != 0.2 {
			t.Errorf("expected temperature to be forwarded, got %v", req.Temperature)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("expected system + user messages, got %d", len(req.Messages))
		}
		if req.Messages[0].Role != "system" || req.Messages[0].Content != "You are a letter writer." {
			t.Errorf("unexpected system message: %+v", req.Messages[0])
		}
		if req.Messages[1].Role != "user" || req.Messages[1].Content != "Write the letter." {
			t.Errorf("unexpected user message: %+v", req.Messages[1])
		}

		resp := openAIResponse{
			ID:    "chatcmpl-123",
			Model: "gpt-4o-mini",
			Choices: []openAIChoice{
				{
					Message:      openAIMessage{Role: "assistant", Content: "Dear Ananya Brown,"},
					FinishReason: "stop",
				},
			},
			Usage: openAIUsage{PromptTokens: 40, CompletionTokens: 12, TotalTokens: 52},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))

	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	resp, err := client.Generate(context.Background(), &GenerateRequest{
		SystemPrompt: "You are a letter writer.",
		Prompt:       "Write the letter.",
		Temperature:  0.2,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Content != "Dear Ananya Brown," {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.TokensUsed != 52 {
		t.Errorf("unexpected token count: %d", resp.TokensUsed)
	}
	if resp.Provider != "openai" {
		t.Errorf("unexpected provider: %s", resp.Provider)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("unexpected finish reason: %s", resp.FinishReason)
	}
}

func TestOpenAIClientGenerateAuthFailure(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "bad-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	_, err = client.Generate(context.Background(), &GenerateRequest{Prompt: "x"})
	var lcErr *errors.LettercraftError
	if !stderrors.As(err, &lcErr) {
		t.Fatalf("expected LettercraftError, got %T: %v", err, err)
	}
	if lcErr.Code != errors.ErrCodeProviderAuth {
		t.Errorf("expected auth error code, got %s", lcErr.Code)
	}
}

func TestOpenAIClientGenerateAPIError(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(openAIResponse{
			Error: &openAIError{Message: "rate limit exceeded", Type: "rate_limit_error"},
		})
	}))

	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	_, err = client.Generate(context.Background(), &GenerateRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}

	var lcErr *errors.LettercraftError
	if !stderrors.As(err, &lcErr) || lcErr.Code != errors.ErrCodeProviderAPI {
		t.Errorf("expected PROVIDER-004, got: %v", err)
	}
}

func TestOpenAIClientGenerateNoChoices(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(openAIResponse{Model: "gpt-4o-mini"})
	}))

	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	_, err = client.Generate(context.Background(), &GenerateRequest{Prompt: "x"})
	var lcErr *errors.LettercraftError
	if !stderrors.As(err, &lcErr) || lcErr.Code != errors.ErrCodeProviderEmpty {
		t.Errorf("expected PROVIDER-005, got: %v", err)
	}
}

func TestOpenAIClientRequestModelOverride(t *testing.T) {
	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "k", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	req := client.buildRequest(&GenerateRequest{Model: "gpt-4o", Prompt: "x"})
	if req.Model != "gpt-4o" {
		t.Errorf("expected request model to win, got %s", req.Model)
	}

	req = client.buildRequest(&GenerateRequest{Prompt: "x"})
	if req.Model != "gpt-4o-mini" {
		t.Errorf("expected configured default model, got %s", req.Model)
	}
}

func TestOpenAIClientHealth(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestOpenAIClientGenerateSendsZeroTemperature(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		temp, ok := body["temperature"]
		if !ok {
			t.Error("temperature 0.0 missing from request body")
		} else if temp != 0.0 {
			t.Errorf("unexpected temperature: %v", temp)
		}

		resp := openAIResponse{
			Model:   "gpt-4o-mini",
			Choices: []openAIChoice{{Message: openAIMessage{Role: "assistant", Content: "ok"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))

	client, err := NewOpenAIClient(Config{Name: "openai", APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	if _, err := client.Generate(context.Background(), &GenerateRequest{Prompt: "x", Temperature: 0}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}
