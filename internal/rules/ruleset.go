package rules

import (
	"fmt"
	"os"
	"sort"

	"github.com/mkoval/clausewise/internal/model"
	"gopkg.in/yaml.v3"
)

// RuleSet is the versioned, immutable configuration driving risk detection.
// It is loaded and validated once, then shared read-only across analysis runs.
type RuleSet struct {
	Version        string            `yaml:"version"`
	FlagThreshold  int               `yaml:"flag_threshold"`
	NegationWindow int               `yaml:"negation_window"`
	Categories     []Category        `yaml:"categories"`
	Templates      map[string]string `yaml:"templates"`
}

// Category is one risk category with its matching signals.
// Category order in the rule set determines finding order per clause.
type Category struct {
	Name            string         `yaml:"name"`
	Tier            model.Tier     `yaml:"tier"`
	Keywords        map[string]int `yaml:"keywords"`         // term -> weight
	Phrases         map[string]int `yaml:"phrases"`          // phrase -> weight
	NegationMarkers []string       `yaml:"negation_markers"` // suppress keyword hits in a pre-window
}

// InvalidRuleSetError identifies the category that makes a rule set unusable
type InvalidRuleSetError struct {
	Category string
	Reason   string
}

func (e *InvalidRuleSetError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("invalid rule set: %s", e.Reason)
	}
	return fmt.Sprintf("invalid rule set: category %q: %s", e.Category, e.Reason)
}

// Load returns the rule set at path, or the builtin defaults when path is
// empty. The returned rule set is fully validated: every category has usable
// signals and a redline template.
func Load(path string) (*RuleSet, error) {
	if path == "" {
		rs := DefaultRuleSet()
		if err := rs.Validate(); err != nil {
			return nil, err
		}
		return rs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}

	if rs.FlagThreshold == 0 {
		rs.FlagThreshold = DefaultFlagThreshold
	}
	if rs.NegationWindow == 0 {
		rs.NegationWindow = DefaultNegationWindow
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate rejects configurations that would make a category permanently
// unable to flag anything, or leave a finding without a redline template.
func (rs *RuleSet) Validate() error {
	if len(rs.Categories) == 0 {
		return &InvalidRuleSetError{Reason: "no categories defined"}
	}
	if rs.FlagThreshold < 1 {
		return &InvalidRuleSetError{Reason: fmt.Sprintf("flag_threshold must be >= 1, got %d", rs.FlagThreshold)}
	}
	if rs.NegationWindow < 0 {
		return &InvalidRuleSetError{Reason: fmt.Sprintf("negation_window must be >= 0, got %d", rs.NegationWindow)}
	}

	seen := make(map[string]bool, len(rs.Categories))
	for _, cat := range rs.Categories {
		if cat.Name == "" {
			return &InvalidRuleSetError{Reason: "category with empty name"}
		}
		if seen[cat.Name] {
			return &InvalidRuleSetError{Category: cat.Name, Reason: "duplicate category"}
		}
		seen[cat.Name] = true

		switch cat.Tier {
		case model.TierHigh, model.TierMedium, model.TierLow:
		default:
			return &InvalidRuleSetError{Category: cat.Name, Reason: fmt.Sprintf("unknown tier %q", cat.Tier)}
		}

		if len(cat.Keywords) == 0 && len(cat.Phrases) == 0 {
			return &InvalidRuleSetError{Category: cat.Name, Reason: "no keywords or phrases"}
		}

		maxKeyword := 0
		for term, w := range cat.Keywords {
			if term == "" {
				return &InvalidRuleSetError{Category: cat.Name, Reason: "empty keyword"}
			}
			if w <= 0 {
				return &InvalidRuleSetError{Category: cat.Name, Reason: fmt.Sprintf("keyword %q has non-positive weight %d", term, w)}
			}
			if w > maxKeyword {
				maxKeyword = w
			}
		}
		for phrase, w := range cat.Phrases {
			if phrase == "" {
				return &InvalidRuleSetError{Category: cat.Name, Reason: "empty phrase"}
			}
			if w <= 0 {
				return &InvalidRuleSetError{Category: cat.Name, Reason: fmt.Sprintf("phrase %q has non-positive weight %d", phrase, w)}
			}
			// Phrases are stronger evidence than any isolated keyword
			if w <= maxKeyword {
				return &InvalidRuleSetError{Category: cat.Name, Reason: fmt.Sprintf("phrase %q weight %d must exceed every keyword weight (max %d)", phrase, w, maxKeyword)}
			}
		}

		// A category without a template would fail only when first flagged;
		// surface the defect at load time instead.
		if _, ok := rs.Templates[cat.Name]; !ok {
			return &InvalidRuleSetError{Category: cat.Name, Reason: "no redline template"}
		}
	}

	return nil
}

// Template returns the redline template for a category. The ok result is
// false only for categories outside the rule set, which Validate makes
// unreachable for findings produced from this rule set.
func (rs *RuleSet) Template(category string) (string, bool) {
	t, ok := rs.Templates[category]
	return t, ok
}

// CategoryNames returns the category names in declaration order
func (rs *RuleSet) CategoryNames() []string {
	names := make([]string, len(rs.Categories))
	for i, cat := range rs.Categories {
		names[i] = cat.Name
	}
	return names
}

// SortedKeywords returns a category's keywords in deterministic order,
// for display surfaces like `rules show`.
func SortedKeywords(terms map[string]int) []string {
	out := make([]string, 0, len(terms))
	for term := range terms {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}
