package model

// Tier represents the fixed severity band of a risk category
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// Tiers lists all severity bands from most to least severe,
// the order used by grouped report output.
var Tiers = []Tier{TierHigh, TierMedium, TierLow}

// MatchedTerm records one keyword or phrase hit inside a clause.
// Suppressed hits are kept for rationale transparency but contribute no score.
type MatchedTerm struct {
	Term       string `json:"term"`
	Weight     int    `json:"weight"`
	Suppressed bool   `json:"suppressed"`
}

// Finding represents one (clause, category) pair that crossed the flag threshold
type Finding struct {
	ClauseID         int           `json:"clause_id"`
	Category         string        `json:"category"`
	Tier             Tier          `json:"tier"`
	Score            int           `json:"score"`             // Accumulated weight after negation suppression
	MatchedTerms     []MatchedTerm `json:"matched_terms"`     // In order of first occurrence
	Rationale        string        `json:"rationale"`         // Built from the non-suppressed terms
	SuggestedRedline string        `json:"suggested_redline"` // Replacement wording for the category
}
