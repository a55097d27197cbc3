package segment

import (
	"strings"
	"testing"
)

const (
	clauseA = "1. The Company shall indemnify and hold harmless the Client against any and all claims without limitation."
	clauseB = "2. This Agreement may be terminated by either party with 30 days written notice."
)

func TestSegmenter_NumberedClauses(t *testing.T) {
	s := New(0)

	raw := clauseA + "\n" + clauseB
	clauses := s.Segment(raw)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].Text != clauseA {
		t.Errorf("Clause 1 text mismatch: %q", clauses[0].Text)
	}
	if clauses[1].Text != clauseB {
		t.Errorf("Clause 2 text mismatch: %q", clauses[1].Text)
	}
	if clauses[0].ID != 1 || clauses[1].ID != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", clauses[0].ID, clauses[1].ID)
	}
}

func TestSegmenter_ParagraphBreaks(t *testing.T) {
	s := New(0)

	para1 := "The parties agree to the terms and conditions set out in this master services agreement."
	para2 := "All notices must be delivered in writing to the registered address of the receiving party."
	raw := para1 + "\n\n\n\n" + para2

	clauses := s.Segment(raw)
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].Text != para1 || clauses[1].Text != para2 {
		t.Errorf("Paragraph texts not preserved: %q / %q", clauses[0].Text, clauses[1].Text)
	}
}

func TestSegmenter_OffsetsAreVerbatim(t *testing.T) {
	s := New(0)

	raw := "   " + clauseA + "\n\n" + clauseB + "  \n"
	clauses := s.Segment(raw)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	for _, c := range clauses {
		if raw[c.StartOffset:c.EndOffset] != c.Text {
			t.Errorf("Clause %d offsets [%d:%d] do not recover its text", c.ID, c.StartOffset, c.EndOffset)
		}
	}
}

func TestSegmenter_LengthFloor(t *testing.T) {
	s := New(0)

	raw := "Short heading\n\n" + clauseA + "\n\nNotes:\n\n" + clauseB
	clauses := s.Segment(raw)

	if len(clauses) != 2 {
		t.Fatalf("Expected short fragments discarded, got %d clauses", len(clauses))
	}
	for _, c := range clauses {
		if len(c.Text) < DefaultMinClauseLength {
			t.Errorf("Clause %d shorter than floor: %d bytes", c.ID, len(c.Text))
		}
	}
	// IDs are assigned after discarding, so the sequence has no gaps
	if clauses[0].ID != 1 || clauses[1].ID != 2 {
		t.Errorf("Expected contiguous IDs after discards, got %d and %d", clauses[0].ID, clauses[1].ID)
	}
}

func TestSegmenter_EmptyInput(t *testing.T) {
	s := New(0)

	for _, raw := range []string{"", "   \n\n\t  ", "too short"} {
		if clauses := s.Segment(raw); len(clauses) != 0 {
			t.Errorf("Expected no clauses for %q, got %d", raw, len(clauses))
		}
	}
}

func TestSegmenter_SingleUnbrokenText(t *testing.T) {
	s := New(0)

	raw := "The Provider grants the Client a non-exclusive license to use the deliverables for internal business purposes only."
	clauses := s.Segment(raw)

	if len(clauses) != 1 {
		t.Fatalf("Expected whole text as one clause, got %d", len(clauses))
	}
	if clauses[0].Text != raw {
		t.Errorf("Expected verbatim clause text")
	}
}

func TestSegmenter_CRLFLineEndings(t *testing.T) {
	s := New(0)

	raw := clauseA + "\r\n\r\n" + clauseB
	clauses := s.Segment(raw)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses with CRLF input, got %d", len(clauses))
	}
}

func TestSegmenter_LetteredMarkers(t *testing.T) {
	s := New(0)

	raw := "a. The Client shall pay all undisputed invoices within thirty days of the invoice date.\n" +
		"b) Late payments accrue interest at the statutory rate applicable in the governing jurisdiction."
	clauses := s.Segment(raw)

	if len(clauses) != 2 {
		t.Fatalf("Expected 2 lettered clauses, got %d", len(clauses))
	}
	if !strings.HasPrefix(clauses[0].Text, "a.") || !strings.HasPrefix(clauses[1].Text, "b)") {
		t.Errorf("Markers should stay with their clauses: %q / %q", clauses[0].Text, clauses[1].Text)
	}
}

func TestSegmenter_MarkerMidSentenceDoesNotSplit(t *testing.T) {
	s := New(0)

	// "30." inside a sentence is not at a line start, so no split happens
	raw := "The warranty period is 30. days from delivery, as agreed by the parties in the order form."
	clauses := s.Segment(raw)
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause, got %d", len(clauses))
	}
}

func TestSegmenter_Idempotence(t *testing.T) {
	s := New(0)

	raw := clauseA + "\n" + clauseB + "\n\nThe parties agree that this Agreement constitutes the entire understanding between them."
	first := s.Segment(raw)

	texts := make([]string, len(first))
	for i, c := range first {
		texts[i] = c.Text
	}

	second := s.Segment(strings.Join(texts, "\n\n"))
	if len(second) != len(first) {
		t.Fatalf("Re-segmenting changed clause count: %d vs %d", len(second), len(first))
	}
	for i := range first {
		if second[i].Text != first[i].Text {
			t.Errorf("Clause %d changed after re-segmenting: %q vs %q", i+1, second[i].Text, first[i].Text)
		}
	}
}
