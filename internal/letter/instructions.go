package letter

import (
	"os"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

// DefaultInstructionsPath is where the canonical instruction file is
// looked up when no path is configured.
const DefaultInstructionsPath = "canonical_insurance_letter_instructions.txt"

// LoadInstructions reads the canonical instruction file at path and
// returns its full UTF-8 contents. The file is read fresh on every call;
// a missing file is a configuration error surfaced before any model
// invocation.
func LoadInstructions(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInstructionsNotFoundError(path)
		}
		return "", errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read canonical instructions", err)
	}
	return string(data), nil
}

// PreviewInstructions returns up to limit bytes of the instruction file
// for display, marking truncation the way the preview pane does.
func PreviewInstructions(path string, limit int) (string, error) {
	text, err := LoadInstructions(path)
	if err != nil {
		return "", err
	}
	if limit > 0 && len(text) > limit {
		return text[:limit] + "\n...\n", nil
	}
	return text, nil
}
