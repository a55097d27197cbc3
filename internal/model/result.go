package model

// AnalysisResult is the complete output of one pipeline run.
// Clauses and Findings are both in document order; Findings additionally
// follow category declaration order within a clause.
//
// The result carries no timestamps: analyzing the same text under the same
// rule set serializes byte-identically, which also makes results cacheable
// by content digest.
type AnalysisResult struct {
	Source       string `json:"source,omitempty"` // Document name or path, when known
	RulesVersion string `json:"rules_version"`

	Clauses  []Clause  `json:"clauses"`
	Findings []Finding `json:"findings"`

	// NoClausesFound is set when segmentation produced zero clauses.
	// It is a status flag, not an error: downstream decides how to present it.
	NoClausesFound bool `json:"no_clauses_found"`
}

// FindingsByTier groups findings by severity band, preserving finding order
// within each band.
func (r *AnalysisResult) FindingsByTier() map[Tier][]Finding {
	grouped := make(map[Tier][]Finding)
	for _, f := range r.Findings {
		grouped[f.Tier] = append(grouped[f.Tier], f)
	}
	return grouped
}

// ClauseByID returns the clause a finding points at, or false if the ID is
// unknown. IDs are contiguous 1..N, so this is an index lookup.
func (r *AnalysisResult) ClauseByID(id int) (Clause, bool) {
	if id < 1 || id > len(r.Clauses) {
		return Clause{}, false
	}
	return r.Clauses[id-1], true
}
