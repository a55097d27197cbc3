package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// PlaintextExtractor reads UTF-8 text files as-is
type PlaintextExtractor struct{}

// NewPlaintextExtractor creates the plaintext fallback extractor
func NewPlaintextExtractor() *PlaintextExtractor {
	return &PlaintextExtractor{}
}

func (e *PlaintextExtractor) Name() string {
	return "plaintext"
}

// CanHandle accepts anything: plaintext is the fallback when no
// format-specific extractor claims the file
func (e *PlaintextExtractor) CanHandle(path string) bool {
	return true
}

func (e *PlaintextExtractor) Extract(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	if !utf8.Valid(raw) {
		return "", &ExtractionError{Path: path, Err: fmt.Errorf("not valid UTF-8 text")}
	}
	return strings.TrimRight(string(raw), "\n") + "\n", nil
}
