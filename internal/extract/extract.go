package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extractor converts one document format into raw text. Extraction sits
// outside the analysis core: the pipeline only ever sees the returned string,
// and an ExtractionError means the document is reported and skipped.
type Extractor interface {
	Name() string
	CanHandle(path string) bool
	Extract(path string) (string, error)
}

// ExtractionError wraps a failure to turn a document into text
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extractors returns the supported extractors in probe order. The plaintext
// extractor goes last as the fallback for unrecognized extensions.
func Extractors() []Extractor {
	return []Extractor{
		NewPDFExtractor(),
		NewHTMLExtractor(),
		NewPlaintextExtractor(),
	}
}

// ForFile selects the extractor for a document path
func ForFile(path string) (Extractor, error) {
	for _, e := range Extractors() {
		if e.CanHandle(path) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no extractor for %s", path)
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
