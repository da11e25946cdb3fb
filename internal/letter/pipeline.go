package letter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/lettercraft/internal/log"
)

// Invoker is the capability the pipeline needs from the model layer:
// one synchronous call per stage. Invocation failures propagate to the
// caller unmodified; the pipeline never retries or classifies them.
type Invoker interface {
	Invoke(ctx context.Context, agent Agent, prompt string) (string, error)
}

// Stage names, in execution order.
const (
	StageGenerate   = "generate"
	StageFormat     = "format"
	StageCompliance = "compliance"
)

// StageRecord describes one completed stage of a run.
type StageRecord struct {
	Name    string
	Role    string
	Latency time.Duration
	Chars   int
}

// RunResult is the output artifact of one pipeline run.
type RunResult struct {
	ID          string
	Final       string
	Stages      []StageRecord
	Model       string
	Temperature float64
	Duration    time.Duration
}

// RunParams collects everything one run needs.
type RunParams struct {
	InstructionsPath string
	Request          Request
	Model            string
	Temperature      float64
}

// Runner executes the three-stage letter pipeline: Generator → Formatter
// → Compliance Reviewer, strictly in sequence. Each stage's prompt embeds
// the previous stage's literal output, so no stage can start before its
// predecessor finishes.
type Runner struct {
	invoker Invoker
	factory *AgentFactory
	logger  *log.Logger

	// OnStage, when set, is called with the stage name just before each
	// invocation. Used by the CLI to drive progress display.
	OnStage func(stage string)
}

// NewRunner creates a pipeline runner on top of an invoker.
func NewRunner(invoker Invoker, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Runner{
		invoker: invoker,
		factory: NewAgentFactory(),
		logger:  logger,
	}
}

// Run executes one full pipeline run. The canonical instruction file is
// loaded fresh; a missing file aborts the run before any model call.
// There is no partial result: a failure in any stage fails the run.
func (r *Runner) Run(ctx context.Context, params RunParams) (*RunResult, error) {
	start := time.Now()

	normalized := params.Request.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	instructions, err := LoadInstructions(params.InstructionsPath)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := r.logger.With("run_id", runID, "model", params.Model)
	logger.Info("pipeline run started",
		"letter_type", normalized.LetterType,
		"policy", normalized.PolicyNumber,
		"claim", normalized.ClaimNumber,
	)

	agents := r.factory.Build(params.Model, params.Temperature)

	stages := []struct {
		name   string
		agent  Agent
		prompt func(prev string) string
	}{
		{
			name:  StageGenerate,
			agent: agents.Generator,
			prompt: func(string) string {
				return buildGeneratePrompt(instructions, normalized)
			},
		},
		{
			name:   StageFormat,
			agent:  agents.Formatter,
			prompt: buildFormatPrompt,
		},
		{
			name:  StageCompliance,
			agent: agents.Compliance,
			prompt: func(prev string) string {
				return buildCompliancePrompt(prev, normalized)
			},
		},
	}

	result := &RunResult{
		ID:          runID,
		Model:       params.Model,
		Temperature: params.Temperature,
	}

	text := ""
	for _, stage := range stages {
		if r.OnStage != nil {
			r.OnStage(stage.name)
		}

		stageStart := time.Now()
		logger.Debug("stage started", "stage", stage.name, "role", stage.agent.Role)

		out, err := r.invoker.Invoke(ctx, stage.agent, stage.prompt(text))
		if err != nil {
			logger.WithError(err).Error("stage failed", "stage", stage.name)
			return nil, err
		}

		latency := time.Since(stageStart)
		logger.Info("stage complete", "stage", stage.name, "latency", latency, "chars", len(out))

		result.Stages = append(result.Stages, StageRecord{
			Name:    stage.name,
			Role:    stage.agent.Role,
			Latency: latency,
			Chars:   len(out),
		})
		text = out
	}

	result.Final = text
	result.Duration = time.Since(start)
	logger.Info("pipeline run complete", "duration", result.Duration)

	return result, nil
}
