package rules

import "github.com/mkoval/clausewise/internal/model"

// Tunables filled in when a rule-set file omits them
const (
	DefaultFlagThreshold  = 1
	DefaultNegationWindow = 8
)

// DefaultRuleSet returns the builtin rule set: eight risk categories with
// weighted keywords and phrases, negation markers, and one conservative
// redline template per category.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version:        "builtin-1",
		FlagThreshold:  DefaultFlagThreshold,
		NegationWindow: DefaultNegationWindow,
		Categories: []Category{
			{
				Name: "Liability",
				Tier: model.TierHigh,
				Keywords: map[string]int{
					"indemnify":       2,
					"indemnification": 2,
					"liable":          2,
					"liability":       1,
				},
				Phrases: map[string]int{
					"unlimited liability":   5,
					"any and all liability": 5,
					"hold harmless":         4,
					"without limitation":    4,
					"to the fullest extent": 4,
					"no limitation":         4,
				},
				NegationMarkers: []string{"shall not", "except", "excluding"},
			},
			{
				Name: "IPRights",
				Tier: model.TierHigh,
				Keywords: map[string]int{
					"assign":      1,
					"waive":       2,
					"irrevocable": 2,
				},
				Phrases: map[string]int{
					"assign all intellectual property": 5,
					"exclusive rights":                 4,
					"work for hire":                    4,
					"transfer of ownership":            4,
					"waive all rights":                 4,
					"all rights":                       3,
				},
				NegationMarkers: []string{"shall not", "except", "excluding"},
			},
			{
				Name: "Warranty",
				Tier: model.TierHigh,
				Keywords: map[string]int{
					"disclaim":  2,
					"disclaims": 2,
				},
				Phrases: map[string]int{
					"disclaim all warranties": 5,
					"no warranty":             4,
					"without warranty":        4,
					"no guarantee":            4,
					"as is":                   3,
					"express or implied":      3,
				},
				NegationMarkers: []string{"except", "excluding"},
			},
			{
				Name: "Termination",
				Tier: model.TierMedium,
				Keywords: map[string]int{
					"terminate":   1,
					"termination": 1,
				},
				Phrases: map[string]int{
					"termination for convenience": 4,
					"terminate at will":           4,
					"immediate termination":       4,
					"without cause":               3,
					"without notice":              3,
					"no notice":                   3,
				},
				NegationMarkers: []string{"shall not", "may not", "except"},
			},
			{
				Name: "Confidentiality",
				Tier: model.TierMedium,
				Keywords: map[string]int{
					"indefinite":   2,
					"indefinitely": 2,
					"perpetual":    2,
					"forever":      2,
				},
				Phrases: map[string]int{
					"perpetual confidentiality": 4,
					"in perpetuity":             4,
					"no time limit":             4,
				},
				NegationMarkers: []string{"except", "excluding"},
			},
			{
				Name: "Payment",
				Tier: model.TierMedium,
				Keywords: map[string]int{
					"upfront":    2,
					"prepayment": 2,
				},
				Phrases: map[string]int{
					"non-refundable":    4,
					"no refunds":        4,
					"payment in full":   3,
					"upfront payment":   3,
					"immediate payment": 3,
				},
				NegationMarkers: []string{"except", "excluding"},
			},
			{
				Name: "DisputeResolution",
				Tier: model.TierMedium,
				Keywords: map[string]int{
					"arbitration":  1,
					"jurisdiction": 1,
					"venue":        1,
				},
				Phrases: map[string]int{
					"waive right to jury":    5,
					"exclusive jurisdiction": 4,
					"mandatory arbitration":  4,
					"binding arbitration":    4,
					"foreign jurisdiction":   4,
				},
				NegationMarkers: []string{"shall not", "except"},
			},
			{
				Name: "ForceMajeure",
				Tier: model.TierLow,
				Phrases: map[string]int{
					"no force majeure":      4,
					"limited force majeure": 4,
					"excludes pandemic":     4,
					"narrow force majeure":  4,
				},
				NegationMarkers: []string{"except"},
			},
		},
		Templates: map[string]string{
			"Liability":         `Party's total liability under this Agreement shall be limited to direct damages only and shall not exceed the total fees paid by Client in the twelve (12) months preceding the claim.`,
			"IPRights":          `Client shall own intellectual property specifically created for this project. Provider retains ownership of pre-existing IP, tools, methodologies, and any general knowledge or experience gained.`,
			"Warranty":          `Provider warrants that deliverables will conform to specifications and be fit for their intended purpose for ninety (90) days. Provider will remedy any defects at no additional cost during this period.`,
			"Termination":       `Either party may terminate this Agreement for convenience upon ninety (90) days prior written notice. In case of material breach, termination may occur with thirty (30) days notice and opportunity to cure.`,
			"Confidentiality":   `Confidentiality obligations shall survive for three (3) years following termination, except for information that: (a) is publicly available, (b) was known prior to disclosure, or (c) is independently developed.`,
			"Payment":           `Payment shall be made in installments based on project milestones: 30% upon signing, 40% upon milestone completion, 30% upon final delivery and acceptance.`,
			"DisputeResolution": `Disputes shall first be addressed through good-faith negotiation, followed by mediation if necessary. If unresolved, disputes may proceed to arbitration under mutually agreed rules in a neutral jurisdiction.`,
			"ForceMajeure":      `Neither party shall be liable for delays or failures due to force majeure events including natural disasters, pandemics, war, government actions, or other events beyond reasonable control.`,
		},
	}
}
