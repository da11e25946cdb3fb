package exitcode

import (
	"fmt"
	"testing"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: Success,
		},
		{
			name: "instructions missing is a config error",
			err:  errors.NewInstructionsNotFoundError("canonical.txt"),
			want: ConfigError,
		},
		{
			name: "missing api key is a config error",
			err:  errors.NewMissingAPIKeyError("openai"),
			want: ConfigError,
		},
		{
			name: "provider auth failure",
			err:  errors.NewProviderAuthError("anthropic"),
			want: AuthError,
		},
		{
			name: "invalid deadline is an input error",
			err:  errors.NewDeadlineInvalidError(0),
			want: InputError,
		},
		{
			name: "wrapped coded error keeps its mapping",
			err:  fmt.Errorf("run failed: %w", errors.NewMissingAPIKeyError("gemini")),
			want: ConfigError,
		},
		{
			name: "plain provider api error",
			err:  errors.New(errors.ErrCodeProviderAPI, "http error 500"),
			want: GeneralError,
		},
		{
			name: "timeout message",
			err:  fmt.Errorf("request timeout after 120s"),
			want: NetworkError,
		},
		{
			name: "unknown flag",
			err:  fmt.Errorf("unknown flag: --frobnicate"),
			want: UsageError,
		},
		{
			name: "generic error",
			err:  fmt.Errorf("something else broke"),
			want: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
