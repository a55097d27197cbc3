package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForFile_SelectsByExtension(t *testing.T) {
	cases := map[string]string{
		"contract.pdf":  "pdf",
		"contract.HTML": "html",
		"contract.htm":  "html",
		"contract.txt":  "plaintext",
		"contract":      "plaintext",
	}

	for path, want := range cases {
		e, err := ForFile(path)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", path, err)
		}
		if e.Name() != want {
			t.Errorf("%s: expected extractor %s, got %s", path, want, e.Name())
		}
	}
}

func TestPlaintextExtractor_ReadsUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	content := "1. The Client shall pay all fees within thirty days.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := NewPlaintextExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if text != content {
		t.Errorf("Expected verbatim text, got %q", text)
	}
}

func TestPlaintextExtractor_RejectsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewPlaintextExtractor().Extract(path)
	if err == nil {
		t.Fatal("Expected error for binary content")
	}
	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("Expected ExtractionError, got %T", err)
	}
}

func TestHTMLExtractor_VisibleTextWithParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.html")
	content := `<html><head><style>p { color: red; }</style></head><body>
	<p>The Supplier accepts unlimited liability for any breach of contract terms.</p>
	<p>Either party may terminate this Agreement with ninety days written notice.</p>
	<script>alert("ignored")</script>
	</body></html>`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := NewHTMLExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if !strings.Contains(text, "unlimited liability") {
		t.Errorf("Expected paragraph text, got %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Errorf("Expected scripts and styles to be skipped, got %q", text)
	}
	// Paragraphs must stay separated so the segmenter sees two clauses
	if !strings.Contains(text, "\n\n") {
		t.Errorf("Expected paragraph breaks in extracted text, got %q", text)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := NewPlaintextExtractor().Extract(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}
