package letter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/felixgeelhaar/lettercraft/internal/errors"
)

// ArtifactName builds the deterministic filename for a final letter:
// lowercase letter type with spaces collapsed to underscores, then the
// policy and claim numbers.
func ArtifactName(req Request) string {
	letterType := strings.ToLower(strings.ReplaceAll(req.LetterType, " ", "_"))
	return fmt.Sprintf("%s_%s_%s.txt", letterType, req.PolicyNumber, req.ClaimNumber)
}

// Checksum returns the hex BLAKE3 digest of the letter text, reported
// alongside the written artifact for integrity display.
func Checksum(text string) string {
	sum := blake3.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}

// WriteArtifact writes the final letter verbatim into dir under its
// deterministic name and returns the written path.
func WriteArtifact(dir string, req Request, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, ArtifactName(req))

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.NewFileWriteError(path, err)
	}

	return path, nil
}
