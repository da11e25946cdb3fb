package letter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

func TestArtifactNameIsDeterministic(t *testing.T) {
	req := testRequest()
	assert.Equal(t, "denial_letter_P-4903497_C-8627060.txt", ArtifactName(req))

	req.LetterType = TypeInfoRequest
	assert.Equal(t, "request_for_additional_information_P-4903497_C-8627060.txt", ArtifactName(req))
}

func TestChecksumStableAndHex(t *testing.T) {
	a := Checksum("Dear Ms. Brown,")
	b := Checksum("Dear Ms. Brown,")
	c := Checksum("Dear Mr. Brown,")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestWriteArtifactRoundTrip(t *testing.T) {
	dir := t.TempDir()
	req := testRequest()

	path, err := WriteArtifact(dir, req, "FINAL LETTER TEXT")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "denial_letter_P-4903497_C-8627060.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FINAL LETTER TEXT", string(data))
}

func TestWriteArtifactUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope", "deeper")

	_, err := WriteArtifact(dir, testRequest(), "text")

	var lcErr *errors.LettercraftError
	require.ErrorAs(t, err, &lcErr)
	assert.Equal(t, errors.ErrCodeFileWriteFailed, lcErr.Code)
}
