package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mkoval/clausewise/internal/model"
)

// Renderer serializes analysis results for the two export surfaces: JSON for
// machine consumers and a plain-text report grouped by tier for review.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// MarshalResult produces the canonical JSON serialization of a result.
// Identical results marshal to identical bytes.
func (r *Renderer) MarshalResult(result *model.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// RenderJSON writes the JSON export to path
func (r *Renderer) RenderJSON(result *model.AnalysisResult, path string) error {
	data, err := r.MarshalResult(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}
	return nil
}

// RenderText writes the plain-text report to path
func (r *Renderer) RenderText(result *model.AnalysisResult, path string) error {
	if err := os.WriteFile(path, []byte(r.TextReport(result)), 0644); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}

// TextReport builds the review report: a summary followed by one section per
// tier, findings listed in document order within each section
func (r *Renderer) TextReport(result *model.AnalysisResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	b.WriteString("CONTRACT RISK ANALYSIS REPORT\n")
	b.WriteString(rule + "\n")
	if result.Source != "" {
		fmt.Fprintf(&b, "Source:   %s\n", result.Source)
	}
	fmt.Fprintf(&b, "Rule set: %s\n\n", result.RulesVersion)

	if result.NoClausesFound {
		b.WriteString("No clauses found: the document is empty or contains no text\n")
		b.WriteString("segments long enough to review.\n")
		return b.String()
	}

	grouped := result.FindingsByTier()

	b.WriteString("SUMMARY\n-------\n")
	fmt.Fprintf(&b, "Clauses analyzed: %d\n", len(result.Clauses))
	fmt.Fprintf(&b, "Findings:         %d\n", len(result.Findings))
	for _, tier := range model.Tiers {
		fmt.Fprintf(&b, "  %-6s %d\n", string(tier)+":", len(grouped[tier]))
	}

	for _, tier := range model.Tiers {
		findings := grouped[tier]
		if len(findings) == 0 {
			continue
		}
		header := strings.ToUpper(string(tier)) + " RISK"
		fmt.Fprintf(&b, "\n%s\n%s\n", header, strings.Repeat("-", len(header)))

		for _, f := range findings {
			fmt.Fprintf(&b, "\nClause #%d: %s (score %d)\n", f.ClauseID, f.Category, f.Score)
			if clause, ok := result.ClauseByID(f.ClauseID); ok {
				fmt.Fprintf(&b, "  Text: %s\n", snippet(clause.Text, 200))
			}
			fmt.Fprintf(&b, "  Matched: %s\n", formatTerms(f.MatchedTerms))
			fmt.Fprintf(&b, "  Rationale: %s\n", f.Rationale)
			fmt.Fprintf(&b, "  Suggested redline: %s\n", f.SuggestedRedline)
		}
	}

	if len(result.Findings) == 0 {
		b.WriteString("\nNo risk findings for this document.\n")
	}

	if r.includeFooter {
		b.WriteString("\n" + rule + "\n")
		b.WriteString("Generated by clausewise. Lexical rule matching only; not legal advice.\n")
	}

	return b.String()
}

// RenderSummary prints a short result overview to stderr
func (r *Renderer) RenderSummary(result *model.AnalysisResult) {
	if result.NoClausesFound {
		fmt.Fprintln(os.Stderr, "No clauses found in document")
		return
	}
	grouped := result.FindingsByTier()
	fmt.Fprintf(os.Stderr, "Clauses: %d  Findings: %d (High %d / Medium %d / Low %d)\n",
		len(result.Clauses), len(result.Findings),
		len(grouped[model.TierHigh]), len(grouped[model.TierMedium]), len(grouped[model.TierLow]))
}

func snippet(text string, max int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if len(collapsed) <= max {
		return collapsed
	}
	return collapsed[:max] + "..."
}

func formatTerms(terms []model.MatchedTerm) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		if t.Suppressed {
			parts[i] = fmt.Sprintf("%s (suppressed)", t.Term)
		} else {
			parts[i] = fmt.Sprintf("%s (%d)", t.Term, t.Weight)
		}
	}
	return strings.Join(parts, ", ")
}

// RenderReport writes the configured outputs for a result
func (p *Pipeline) RenderReport(result *model.AnalysisResult, jsonPath, textPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", jsonPath)
		}
	}
	if textPath != "" {
		if err := p.renderer.RenderText(result, textPath); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote report: %s\n", textPath)
		}
	}
	p.renderer.RenderSummary(result)
	return nil
}
