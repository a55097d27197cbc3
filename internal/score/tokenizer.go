package score

import "unicode"

// Token is one word of clause text with its byte span, retained so negation
// windows can be checked against token positions.
type Token struct {
	Text  string // Original casing
	Lower string // ASCII lower-case fold, used for all matching
	Start int
	End   int
}

// Tokenize splits text on word boundaries. A token is a maximal run of
// letters or digits; everything else separates tokens. Casing is folded with
// a plain ASCII map so results never depend on locale.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, newToken(text, start, i))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, newToken(text, start, len(text)))
	}
	return tokens
}

func newToken(text string, start, end int) Token {
	raw := text[start:end]
	return Token{Text: raw, Lower: asciiLower(raw), Start: start, End: end}
}

func asciiLower(s string) string {
	lowered := []byte(s)
	changed := false
	for i := 0; i < len(lowered); i++ {
		if c := lowered[i]; c >= 'A' && c <= 'Z' {
			lowered[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(lowered)
}
