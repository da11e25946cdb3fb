package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Configuration errors (CONFIG-001 to CONFIG-099)
	// These abort a run before any model invocation is attempted.
	ErrCodeInstructionsNotFound ErrorCode = "CONFIG-001"
	ErrCodeMissingAPIKey        ErrorCode = "CONFIG-002"
	ErrCodeConfigInvalid        ErrorCode = "CONFIG-003"
	ErrCodeConfigUnmarshal      ErrorCode = "CONFIG-004"

	// Input errors (INPUT-001 to INPUT-099)
	ErrCodeInputFieldMissing    ErrorCode = "INPUT-001"
	ErrCodeInputDeadlineInvalid ErrorCode = "INPUT-002"
	ErrCodeInputTempInvalid     ErrorCode = "INPUT-003"

	// Provider errors (PROVIDER-001 to PROVIDER-099)
	// Invocation failures surface with these codes and abort the run;
	// the pipeline never classifies them further.
	ErrCodeProviderNotFound ErrorCode = "PROVIDER-001"
	ErrCodeProviderConfig   ErrorCode = "PROVIDER-002"
	ErrCodeProviderAuth     ErrorCode = "PROVIDER-003"
	ErrCodeProviderAPI      ErrorCode = "PROVIDER-004"
	ErrCodeProviderEmpty    ErrorCode = "PROVIDER-005"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
)

// LettercraftError represents an enhanced error with code, suggestions, and documentation
type LettercraftError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *LettercraftError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *LettercraftError) Unwrap() error {
	return e.Cause
}

// IsConfiguration reports whether the error is a configuration error,
// i.e. one that must surface before any model invocation is attempted.
func (e *LettercraftError) IsConfiguration() bool {
	return strings.HasPrefix(string(e.Code), "CONFIG-")
}

// New creates a new LettercraftError
func New(code ErrorCode, message string) *LettercraftError {
	return &LettercraftError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new LettercraftError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *LettercraftError {
	return &LettercraftError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *LettercraftError) WithSuggestion(suggestion string) *LettercraftError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *LettercraftError) WithSuggestions(suggestions ...string) *LettercraftError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *LettercraftError) WithDocs(url string) *LettercraftError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewInstructionsNotFoundError creates an instruction file not found error
func NewInstructionsNotFoundError(path string) *LettercraftError {
	return New(ErrCodeInstructionsNotFound, fmt.Sprintf("canonical instruction file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Pass a different path with --instructions").
		WithDocs("https://github.com/felixgeelhaar/lettercraft#canonical-instructions")
}

// NewMissingAPIKeyError creates a missing credential error
func NewMissingAPIKeyError(provider string) *LettercraftError {
	return New(ErrCodeMissingAPIKey, fmt.Sprintf("no API key configured for provider: %s", provider)).
		WithSuggestion(fmt.Sprintf("Set the %s_API_KEY environment variable", strings.ToUpper(provider))).
		WithSuggestion("Or add the key to your lettercraft.yaml config file").
		WithDocs("https://github.com/felixgeelhaar/lettercraft#provider-configuration")
}

// NewProviderAuthError creates a provider authentication error
func NewProviderAuthError(provider string) *LettercraftError {
	return New(ErrCodeProviderAuth, fmt.Sprintf("authentication failed for provider: %s", provider)).
		WithSuggestion("Check if your API key is valid and not expired").
		WithSuggestion("Run 'lettercraft providers' to verify connectivity").
		WithDocs("https://github.com/felixgeelhaar/lettercraft#provider-configuration")
}

// NewProviderNotFoundError creates an unknown provider error
func NewProviderNotFoundError(name string) *LettercraftError {
	return New(ErrCodeProviderNotFound, fmt.Sprintf("provider not found: %s", name)).
		WithSuggestion("Run 'lettercraft providers' to see configured providers").
		WithSuggestion("Use one of: openai, anthropic, gemini")
}

// NewInputFieldMissingError creates a missing required field error
func NewInputFieldMissingError(field string) *LettercraftError {
	return New(ErrCodeInputFieldMissing, fmt.Sprintf("required field is empty: %s", field)).
		WithSuggestion(fmt.Sprintf("Provide a value with --%s or fill it in the form", field))
}

// NewDeadlineInvalidError creates an out-of-range deadline error
func NewDeadlineInvalidError(days int) *LettercraftError {
	return New(ErrCodeInputDeadlineInvalid, fmt.Sprintf("response deadline must be between 1 and 90 days, got %d", days)).
		WithSuggestion("Choose a deadline within the range of 1-90 days")
}

// NewFileWriteError creates a file write error
func NewFileWriteError(path string, cause error) *LettercraftError {
	return Wrap(ErrCodeFileWriteFailed, fmt.Sprintf("failed to write file: %s", path), cause).
		WithSuggestion("Check that the output directory exists and is writable")
}
