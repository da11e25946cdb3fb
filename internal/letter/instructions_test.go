package letter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

func TestLoadInstructionsReturnsFullContents(t *testing.T) {
	content := "SECTION 1\nAlways include policy and claim numbers.\n"
	path := writeInstructions(t, content)

	got, err := LoadInstructions(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadInstructionsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := LoadInstructions(path)

	var lcErr *errors.LettercraftError
	require.ErrorAs(t, err, &lcErr)
	assert.Equal(t, errors.ErrCodeInstructionsNotFound, lcErr.Code)
	assert.True(t, lcErr.IsConfiguration())
	assert.Contains(t, lcErr.Message, path)
}

func TestPreviewInstructionsTruncates(t *testing.T) {
	content := strings.Repeat("x", 100)
	path := writeInstructions(t, content)

	got, err := PreviewInstructions(path, 40)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, strings.Repeat("x", 40)))
	assert.True(t, strings.HasSuffix(got, "\n...\n"))
}

func TestPreviewInstructionsShortFileUnchanged(t *testing.T) {
	path := writeInstructions(t, "short")

	got, err := PreviewInstructions(path, 6000)
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}
