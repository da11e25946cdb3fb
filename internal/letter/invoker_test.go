package letter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
	"github.com/felixgeelhaar/lettercraft/internal/provider"
)

type stubProvider struct {
	lastReq *provider.GenerateRequest
	resp    *provider.GenerateResponse
	err     error
}

func (s *stubProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubProvider) Info() provider.Info   { return provider.Info{Name: "stub"} }
func (s *stubProvider) IsAvailable() bool     { return true }
func (s *stubProvider) Health(context.Context) error { return nil }
func (s *stubProvider) Close() error          { return nil }

func TestProviderInvokerThreadsAgentIntoRequest(t *testing.T) {
	stub := &stubProvider{resp: &provider.GenerateResponse{Content: "DRAFT"}}
	invoker := NewProviderInvoker(stub)

	agent := NewAgentFactory().Build("gpt-4o-mini", 0.2).Generator
	out, err := invoker.Invoke(context.Background(), agent, "the user prompt")
	require.NoError(t, err)

	assert.Equal(t, "DRAFT", out)
	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "gpt-4o-mini", stub.lastReq.Model)
	assert.Equal(t, 0.2, stub.lastReq.Temperature)
	assert.Equal(t, agent.SystemPrompt(), stub.lastReq.SystemPrompt)
	assert.Equal(t, "the user prompt", stub.lastReq.Prompt)
}

func TestProviderInvokerPropagatesProviderError(t *testing.T) {
	authErr := errors.NewProviderAuthError("openai")
	stub := &stubProvider{err: authErr}
	invoker := NewProviderInvoker(stub)

	agent := NewAgentFactory().Build("gpt-4o-mini", 0.2).Generator
	_, err := invoker.Invoke(context.Background(), agent, "prompt")

	require.ErrorIs(t, err, authErr)
}
