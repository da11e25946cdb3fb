package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/felixgeelhaar/lettercraft/internal/letter"
)

// FormValues carries everything the interactive form collects: the
// letter request plus the run settings.
type FormValues struct {
	Request          letter.Request
	Model            string
	Temperature      float64
	InstructionsPath string
}

// DefaultFormValues returns the values the form starts from.
func DefaultFormValues() FormValues {
	return FormValues{
		Request: letter.Request{
			LetterType:           letter.TypeDenial,
			CompanyName:          "Cascade Assurance",
			InsuredName:          "Ananya Brown",
			PolicyNumber:         "P-4903497",
			ClaimNumber:          "C-8627060",
			ContactPhone:         "1-800-555-1234",
			ResponseDeadlineDays: 30,
		},
		Model:            "gpt-4o-mini",
		Temperature:      0.2,
		InstructionsPath: letter.DefaultInstructionsPath,
	}
}

// RunForm displays the interactive letter form seeded with defaults and
// returns the completed values. Ctrl+C aborts with huh.ErrUserAborted.
func RunForm(defaults FormValues) (*FormValues, error) {
	values := defaults
	deadline := strconv.Itoa(values.Request.ResponseDeadlineDays)
	temperature := strconv.FormatFloat(values.Temperature, 'f', -1, 64)

	options := make([]huh.Option[string], len(letter.LetterTypes))
	for i, t := range letter.LetterTypes {
		options[i] = huh.NewOption(t, t)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Letter type").
				Options(options...).
				Value(&values.Request.LetterType),

			huh.NewInput().
				Title("Company name").
				Value(&values.Request.CompanyName).
				Validate(validateRequired("company name")),

			huh.NewInput().
				Title("Insured name").
				Value(&values.Request.InsuredName).
				Validate(validateRequired("insured name")),

			huh.NewInput().
				Title("Policy number").
				Value(&values.Request.PolicyNumber).
				Validate(validateRequired("policy number")),

			huh.NewInput().
				Title("Claim number").
				Value(&values.Request.ClaimNumber).
				Validate(validateRequired("claim number")),
		).Title("Letter details"),

		huh.NewGroup(
			huh.NewInput().
				Title("Claims department phone").
				Description("Leave blank for N/A").
				Value(&values.Request.ContactPhone),

			huh.NewInput().
				Title("Response deadline (days)").
				Value(&deadline).
				Validate(validateDeadline),

			huh.NewText().
				Title("Additional notes").
				Description("Leave blank for None").
				Value(&values.Request.CustomNotes),
		).Title("Contact and deadline"),

		huh.NewGroup(
			huh.NewInput().
				Title("Model").
				Description("e.g. gpt-4o-mini, claude-haiku-4-5-20251015, gemini-2.0-flash").
				Value(&values.Model).
				Validate(validateRequired("model")),

			huh.NewInput().
				Title("Temperature").
				Value(&temperature).
				Validate(validateTemperature),
		).Title("Generation settings"),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("letter form: %w", err)
	}

	values.Request.ResponseDeadlineDays, _ = strconv.Atoi(strings.TrimSpace(deadline))
	values.Temperature, _ = strconv.ParseFloat(strings.TrimSpace(temperature), 64)

	return &values, nil
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateDeadline(s string) error {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of days")
	}
	if days < 1 || days > 90 {
		return fmt.Errorf("deadline must be between 1 and 90 days")
	}
	return nil
}

func validateTemperature(s string) error {
	temp, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number like 0.2")
	}
	if temp < 0 || temp > 2 {
		return fmt.Errorf("temperature must be between 0.0 and 2.0")
	}
	return nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if the interactive form should be shown.
// Prompts are disabled in CI environments or when stdin is not a terminal.
func ShouldPrompt() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return IsInteractive()
}
