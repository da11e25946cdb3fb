package letter

import (
	"context"

	"github.com/felixgeelhaar/lettercraft/internal/provider"
)

// ProviderInvoker bridges the pipeline's Invoker capability to a provider
// client. The agent's persona becomes the system prompt; model and
// temperature are threaded through to the request.
type ProviderInvoker struct {
	client provider.Client
}

// NewProviderInvoker wraps a provider client as an Invoker.
func NewProviderInvoker(client provider.Client) *ProviderInvoker {
	return &ProviderInvoker{client: client}
}

// Invoke implements Invoker.
func (p *ProviderInvoker) Invoke(ctx context.Context, agent Agent, prompt string) (string, error) {
	resp, err := p.client.Generate(ctx, &provider.GenerateRequest{
		Model:        agent.Model,
		SystemPrompt: agent.SystemPrompt(),
		Prompt:       prompt,
		Temperature:  agent.Temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
