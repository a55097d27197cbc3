package score

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkoval/clausewise/internal/model"
	"github.com/mkoval/clausewise/internal/rules"
)

// Scorer evaluates clauses against a compiled rule set. Compilation builds a
// first-token index over every keyword and phrase, so scoring is one
// tokenization pass per clause plus constant-time candidate lookups per token
// instead of a nested scan over all categories and terms.
//
// A Scorer is immutable after construction and safe for concurrent use.
type Scorer struct {
	ruleSet *rules.RuleSet
	cats    []compiledCategory
	index   map[string][]candidate
}

type compiledCategory struct {
	name    string
	tier    model.Tier
	markers [][]string // tokenized negation markers
}

type candidate struct {
	cat    int      // index into cats
	term   string   // term as configured, used in matched_terms and rationale
	tokens []string // lower-cased token sequence
	weight int
	phrase bool
}

// NewScorer compiles the rule set into an indexed matcher
func NewScorer(rs *rules.RuleSet) *Scorer {
	s := &Scorer{
		ruleSet: rs,
		cats:    make([]compiledCategory, len(rs.Categories)),
		index:   make(map[string][]candidate),
	}

	for i, cat := range rs.Categories {
		cc := compiledCategory{name: cat.Name, tier: cat.Tier}
		for _, marker := range cat.NegationMarkers {
			if toks := lowerTokens(marker); len(toks) > 0 {
				cc.markers = append(cc.markers, toks)
			}
		}
		s.cats[i] = cc

		for term, weight := range cat.Keywords {
			s.addCandidate(i, term, weight, false)
		}
		for phrase, weight := range cat.Phrases {
			s.addCandidate(i, phrase, weight, true)
		}
	}

	// Candidate order at a given position must not depend on map iteration:
	// phrases before keywords, longer matches before shorter, then by term.
	for token, cands := range s.index {
		sort.Slice(cands, func(a, b int) bool {
			if cands[a].cat != cands[b].cat {
				return cands[a].cat < cands[b].cat
			}
			if cands[a].phrase != cands[b].phrase {
				return cands[a].phrase
			}
			if len(cands[a].tokens) != len(cands[b].tokens) {
				return len(cands[a].tokens) > len(cands[b].tokens)
			}
			return cands[a].term < cands[b].term
		})
		s.index[token] = cands
	}

	return s
}

func (s *Scorer) addCandidate(cat int, term string, weight int, phrase bool) {
	toks := lowerTokens(term)
	if len(toks) == 0 {
		return
	}
	s.index[toks[0]] = append(s.index[toks[0]], candidate{
		cat:    cat,
		term:   term,
		tokens: toks,
		weight: weight,
		phrase: phrase,
	})
}

func lowerTokens(term string) []string {
	raw := Tokenize(term)
	toks := make([]string, len(raw))
	for i, t := range raw {
		toks[i] = t.Lower
	}
	return toks
}

type categoryState struct {
	score    int
	matches  []model.MatchedTerm
	consumed map[int]bool // token positions claimed by a match for this category
}

// Score evaluates one clause against every category and returns findings in
// category declaration order. SuggestedRedline is left empty; the redline
// generator fills it in. Output is deterministic for identical input.
func (s *Scorer) Score(clause model.Clause) []model.Finding {
	tokens := Tokenize(clause.Text)
	if len(tokens) == 0 {
		return nil
	}

	states := make([]categoryState, len(s.cats))

	for pos := range tokens {
		for _, c := range s.index[tokens[pos].Lower] {
			if !matchAt(tokens, pos, c.tokens) {
				continue
			}
			st := &states[c.cat]
			if st.spanTaken(pos, len(c.tokens)) {
				continue
			}

			suppressed := false
			if !c.phrase {
				suppressed = s.negated(tokens, pos, c.cat)
			}

			st.claim(pos, len(c.tokens))
			st.matches = append(st.matches, model.MatchedTerm{
				Term:       c.term,
				Weight:     c.weight,
				Suppressed: suppressed,
			})
			if !suppressed {
				st.score += c.weight
			}
		}
	}

	var findings []model.Finding
	for i, st := range states {
		if st.score < s.ruleSet.FlagThreshold {
			continue
		}
		findings = append(findings, model.Finding{
			ClauseID:     clause.ID,
			Category:     s.cats[i].name,
			Tier:         s.cats[i].tier,
			Score:        st.score,
			MatchedTerms: st.matches,
			Rationale:    rationale(s.cats[i].name, st.matches),
		})
	}
	return findings
}

// matchAt reports whether the candidate token sequence occurs at pos
func matchAt(tokens []Token, pos int, want []string) bool {
	if pos+len(want) > len(tokens) {
		return false
	}
	for i, w := range want {
		if tokens[pos+i].Lower != w {
			return false
		}
	}
	return true
}

// negated reports whether a negation marker for the category ends within the
// window of tokens before pos
func (s *Scorer) negated(tokens []Token, pos, cat int) bool {
	window := s.ruleSet.NegationWindow
	from := pos - window
	if from < 0 {
		from = 0
	}
	for _, marker := range s.cats[cat].markers {
		for j := from; j+len(marker) <= pos; j++ {
			if matchAt(tokens, j, marker) {
				return true
			}
		}
	}
	return false
}

func (st *categoryState) spanTaken(pos, n int) bool {
	for i := pos; i < pos+n; i++ {
		if st.consumed[i] {
			return true
		}
	}
	return false
}

func (st *categoryState) claim(pos, n int) {
	if st.consumed == nil {
		st.consumed = make(map[int]bool)
	}
	for i := pos; i < pos+n; i++ {
		st.consumed[i] = true
	}
}

// rationale builds the standard explanation sentence from the non-suppressed
// matches, each distinct term listed once in order of first occurrence
func rationale(category string, matches []model.MatchedTerm) string {
	seen := make(map[string]bool)
	var terms []string
	for _, m := range matches {
		if m.Suppressed || seen[m.Term] {
			continue
		}
		seen[m.Term] = true
		terms = append(terms, m.Term)
	}
	return fmt.Sprintf("This clause contains %s-risk language: %s.", category, strings.Join(terms, ", "))
}
