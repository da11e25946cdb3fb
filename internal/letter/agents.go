package letter

import (
	"fmt"
	"sync"
)

// Agent is a role/goal/persona descriptor bound to a model. Agents are
// logically stateless; the factory memoizes them per (model, temperature)
// purely to avoid rebuilding.
type Agent struct {
	Name        string
	Role        string
	Goal        string
	Backstory   string
	Model       string
	Temperature float64
}

// SystemPrompt renders the agent persona as the system-level instruction
// for the model call.
func (a Agent) SystemPrompt() string {
	return fmt.Sprintf("You are %s. %s\n\nYour goal: %s", a.Role, a.Backstory, a.Goal)
}

// AgentSet holds the three stage agents of one pipeline run, in stage order.
type AgentSet struct {
	Generator  Agent
	Formatter  Agent
	Compliance Agent
}

type agentKey struct {
	model       string
	temperature float64
}

// AgentFactory builds the three stage agents for a (model, temperature)
// pair. Identical inputs always yield descriptors with identical text, so
// previously built sets are reused.
type AgentFactory struct {
	mu    sync.Mutex
	cache map[agentKey]AgentSet
}

// NewAgentFactory creates an empty factory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{
		cache: make(map[agentKey]AgentSet),
	}
}

// Build returns the agent set for the given model and temperature,
// constructing it on first use.
func (f *AgentFactory) Build(model string, temperature float64) AgentSet {
	key := agentKey{model: model, temperature: temperature}

	f.mu.Lock()
	defer f.mu.Unlock()

	if set, ok := f.cache[key]; ok {
		return set
	}

	set := AgentSet{
		Generator: Agent{
			Name: "generator",
			Role: "Insurance Letter Generator",
			Goal: "Generate a complete insurance letter using canonical instructions and provided inputs.",
			Backstory: "You are a senior insurance correspondence specialist. " +
				"You strictly follow the canonical instruction set and produce clear, complete letters.",
			Model:       model,
			Temperature: temperature,
		},
		Formatter: Agent{
			Name: "formatter",
			Role: "Insurance Letter Formatter",
			Goal: "Ensure the letter is cleanly formatted with consistent headings, spacing, and sections.",
			Backstory: "You are an expert in professional insurance document formatting. " +
				"You preserve content but improve structure and readability.",
			Model:       model,
			Temperature: temperature,
		},
		Compliance: Agent{
			Name: "compliance",
			Role: "Insurance Compliance Reviewer",
			Goal: "Ensure the letter includes required compliance/regulatory language and correct references.",
			Backstory: "You are an insurance compliance officer. " +
				"You check for regulatory notice, appeal rights, timelines, and that identifiers are present.",
			Model:       model,
			Temperature: temperature,
		},
	}

	f.cache[key] = set
	return set
}
