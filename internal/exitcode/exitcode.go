package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConfigError indicates a configuration problem (missing instruction
	// file, missing credentials) detected before any model invocation
	ConfigError = 3

	// InputError indicates an invalid letter request (bad deadline, empty field)
	InputError = 4

	// AuthError indicates a provider authentication failure
	AuthError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	// Coded errors map directly from their code family.
	var lcErr *errors.LettercraftError
	if stderrors.As(err, &lcErr) {
		switch {
		case lcErr.Code == errors.ErrCodeProviderAuth:
			return AuthError
		case lcErr.IsConfiguration():
			return ConfigError
		case strings.HasPrefix(string(lcErr.Code), "INPUT-"):
			return InputError
		}
		return GeneralError
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "authentication") || strings.Contains(errMsg, "unauthorized") {
		return AuthError
	}
	if strings.Contains(errMsg, "api key") {
		return AuthError
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}

	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") ||
		strings.Contains(errMsg, "required flag") {
		return UsageError
	}

	return GeneralError
}
