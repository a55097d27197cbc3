package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls plain text out of PDF contracts
type PDFExtractor struct{}

// NewPDFExtractor creates the PDF extractor
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Name() string {
	return "pdf"
}

func (e *PDFExtractor) CanHandle(path string) bool {
	return ext(path) == ".pdf"
}

func (e *PDFExtractor) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	return buf.String(), nil
}
