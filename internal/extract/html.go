package extract

import (
	"os"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor extracts visible text from HTML documents, preserving
// paragraph structure so the segmenter still sees clause boundaries
type HTMLExtractor struct{}

// NewHTMLExtractor creates the HTML extractor
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

func (e *HTMLExtractor) Name() string {
	return "html"
}

func (e *HTMLExtractor) CanHandle(path string) bool {
	switch ext(path) {
	case ".html", ".htm":
		return true
	}
	return false
}

func (e *HTMLExtractor) Extract(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}

	doc, err := html.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}

	var buf strings.Builder
	walkVisibleText(doc, &buf)
	return buf.String(), nil
}

// walkVisibleText collects text nodes, skipping non-content elements and
// emitting a blank line after block elements so paragraphs stay separated
func walkVisibleText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "iframe", "head":
			return
		}
	}

	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			buf.WriteString(text)
			buf.WriteString(" ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkVisibleText(c, buf)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "section", "article", "br",
			"h1", "h2", "h3", "h4", "h5", "h6", "tr":
			buf.WriteString("\n\n")
		}
	}
}
