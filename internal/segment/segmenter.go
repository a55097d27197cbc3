package segment

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/mkoval/clausewise/internal/model"
)

// DefaultMinClauseLength is the floor below which fragments are discarded
const DefaultMinClauseLength = 50

var (
	// One or more consecutive blank lines act as a single paragraph break
	paragraphBreak = regexp.MustCompile(`\r?\n[ \t]*(?:\r?\n[ \t]*)+`)

	// Line-leading numbered or lettered markers: "1.", "2)", "a." followed by
	// whitespace. A split point is inserted immediately before the marker,
	// so the marker stays with the clause it introduces.
	clauseMarker = regexp.MustCompile(`(?m)^[ \t]*(?:\d+|[A-Za-z])[.)][ \t]`)
)

// Segmenter turns raw contract text into an ordered sequence of clauses.
// It is a pure function of its input and safe for concurrent use.
type Segmenter struct {
	minLen int
}

// New creates a segmenter. minClauseLength <= 0 selects the default floor.
func New(minClauseLength int) *Segmenter {
	if minClauseLength <= 0 {
		minClauseLength = DefaultMinClauseLength
	}
	return &Segmenter{minLen: minClauseLength}
}

// Segment splits raw text on paragraph breaks and clause markers, trims the
// fragments, drops those under the length floor, and numbers the survivors
// 1..N in document order. Offsets index into the original text, so clause
// text is always a verbatim substring. Empty input yields an empty slice.
func (s *Segmenter) Segment(raw string) []model.Clause {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	cuts := []int{0, len(raw)}
	for _, loc := range paragraphBreak.FindAllStringIndex(raw, -1) {
		cuts = append(cuts, loc[0], loc[1])
	}
	for _, loc := range clauseMarker.FindAllStringIndex(raw, -1) {
		cuts = append(cuts, loc[0])
	}
	sort.Ints(cuts)

	var clauses []model.Clause
	for i := 0; i+1 < len(cuts); i++ {
		start, end := cuts[i], cuts[i+1]
		if start >= end {
			continue
		}
		// Skip fragments that are entirely inside a paragraph separator
		frag := raw[start:end]
		trimmed := strings.TrimSpace(frag)
		if len(trimmed) < s.minLen {
			continue
		}
		lead := len(frag) - len(strings.TrimLeftFunc(frag, unicode.IsSpace))
		clauses = append(clauses, model.Clause{
			ID:          len(clauses) + 1,
			Text:        trimmed,
			StartOffset: start + lead,
			EndOffset:   start + lead + len(trimmed),
		})
	}

	return clauses
}
