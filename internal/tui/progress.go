package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/lettercraft/internal/letter"
)

// stageLabels maps pipeline stage names to the text shown next to the
// spinner while the stage runs.
var stageLabels = map[string]string{
	letter.StageGenerate:   "Generating letter draft",
	letter.StageFormat:     "Formatting letter",
	letter.StageCompliance: "Reviewing compliance",
}

type stageMsg string

type runDoneMsg struct {
	result *letter.RunResult
	err    error
}

// progressStyles holds the lipgloss styles for the progress display.
type progressStyles struct {
	Stage   lipgloss.Style
	Done    lipgloss.Style
	Error   lipgloss.Style
	Spinner lipgloss.Style
}

func defaultProgressStyles() progressStyles {
	return progressStyles{
		Stage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")), // Cyan
		Done: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")), // Purple
	}
}

// progressModel renders a spinner with the currently running pipeline
// stage, then the completion or failure line.
type progressModel struct {
	spinner   spinner.Model
	current   string
	completed []string
	done      bool
	result    *letter.RunResult
	err       error
	styles    progressStyles
}

func newProgressModel() progressModel {
	styles := defaultProgressStyles()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return progressModel{
		spinner: s,
		styles:  styles,
	}
}

// Init starts the spinner tick loop.
func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles stage transitions, run completion, and spinner ticks.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		if m.current != "" {
			m.completed = append(m.completed, m.current)
		}
		m.current = string(msg)
		return m, nil

	case runDoneMsg:
		if m.current != "" && msg.err == nil {
			m.completed = append(m.completed, m.current)
		}
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = context.Canceled
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders one line per completed stage plus the active spinner line.
func (m progressModel) View() string {
	var b strings.Builder

	for _, stage := range m.completed {
		b.WriteString(m.styles.Done.Render("✓ "))
		b.WriteString(stageLabel(stage))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("✗ pipeline failed"))
		b.WriteString("\n")
	case m.done:
		b.WriteString(m.styles.Done.Render("✓ Letter ready"))
		b.WriteString("\n")
	case m.current != "":
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Stage.Render(stageLabel(m.current)))
		b.WriteString("\n")
	default:
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Stage.Render("Starting pipeline"))
		b.WriteString("\n")
	}

	return b.String()
}

func stageLabel(stage string) string {
	if label, ok := stageLabels[stage]; ok {
		return label
	}
	return stage
}

// RunWithProgress executes the pipeline while showing a stage spinner.
// The pipeline runs in a goroutine; stage callbacks and the final result
// are forwarded into the program as messages.
func RunWithProgress(ctx context.Context, runner *letter.Runner, params letter.RunParams) (*letter.RunResult, error) {
	p := tea.NewProgram(newProgressModel(), tea.WithContext(ctx))

	runner.OnStage = func(stage string) {
		p.Send(stageMsg(stage))
	}

	go func() {
		result, err := runner.Run(ctx, params)
		p.Send(runDoneMsg{result: result, err: err})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run progress display: %w", err)
	}

	m, ok := finalModel.(progressModel)
	if !ok {
		return nil, fmt.Errorf("invalid final model type")
	}

	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
