package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkoval/clausewise/internal/model"
)

func TestDefaultRuleSet_Valid(t *testing.T) {
	rs := DefaultRuleSet()
	if err := rs.Validate(); err != nil {
		t.Fatalf("Default rule set must validate, got %v", err)
	}
	if len(rs.Categories) != 8 {
		t.Errorf("Expected 8 categories, got %d", len(rs.Categories))
	}
}

func TestDefaultRuleSet_TierTable(t *testing.T) {
	want := map[string]model.Tier{
		"Liability":         model.TierHigh,
		"IPRights":          model.TierHigh,
		"Warranty":          model.TierHigh,
		"Termination":       model.TierMedium,
		"Confidentiality":   model.TierMedium,
		"Payment":           model.TierMedium,
		"DisputeResolution": model.TierMedium,
		"ForceMajeure":      model.TierLow,
	}

	rs := DefaultRuleSet()
	for _, cat := range rs.Categories {
		if cat.Tier != want[cat.Name] {
			t.Errorf("Category %s: expected tier %s, got %s", cat.Name, want[cat.Name], cat.Tier)
		}
		delete(want, cat.Name)
	}
	if len(want) != 0 {
		t.Errorf("Missing categories: %v", want)
	}
}

func TestValidate_RejectsEmptyCategory(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Categories = append(rs.Categories, Category{Name: "Empty", Tier: model.TierLow})
	rs.Templates["Empty"] = "replacement"

	var ruleErr *InvalidRuleSetError
	err := rs.Validate()
	if !errors.As(err, &ruleErr) {
		t.Fatalf("Expected InvalidRuleSetError, got %v", err)
	}
	if ruleErr.Category != "Empty" {
		t.Errorf("Error must identify the offending category, got %q", ruleErr.Category)
	}
}

func TestValidate_RejectsNonPositiveWeight(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Categories[0].Keywords["worthless"] = 0

	if err := rs.Validate(); err == nil {
		t.Fatal("Expected error for zero weight")
	}
}

func TestValidate_RejectsWeakPhrase(t *testing.T) {
	rs := DefaultRuleSet()
	// Phrase weight must strictly exceed every keyword weight in the category
	rs.Categories[0].Phrases["weak phrase"] = 1

	if err := rs.Validate(); err == nil {
		t.Fatal("Expected error for phrase weaker than keywords")
	}
}

func TestValidate_RejectsMissingTemplate(t *testing.T) {
	rs := DefaultRuleSet()
	delete(rs.Templates, "Payment")

	var ruleErr *InvalidRuleSetError
	err := rs.Validate()
	if !errors.As(err, &ruleErr) {
		t.Fatalf("Expected InvalidRuleSetError, got %v", err)
	}
	if ruleErr.Category != "Payment" {
		t.Errorf("Expected Payment flagged, got %q", ruleErr.Category)
	}
}

func TestValidate_RejectsUnknownTier(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Categories[0].Tier = "Extreme"

	if err := rs.Validate(); err == nil {
		t.Fatal("Expected error for unknown tier")
	}
}

func TestValidate_RejectsDuplicateCategory(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Categories = append(rs.Categories, rs.Categories[0])

	if err := rs.Validate(); err == nil {
		t.Fatal("Expected error for duplicate category")
	}
}

func TestLoad_Defaults(t *testing.T) {
	rs, err := Load("")
	if err != nil {
		t.Fatalf("Expected builtin rules to load, got %v", err)
	}
	if rs.Version != "builtin-1" {
		t.Errorf("Expected builtin version, got %q", rs.Version)
	}
	if rs.FlagThreshold != DefaultFlagThreshold || rs.NegationWindow != DefaultNegationWindow {
		t.Errorf("Unexpected tunables: threshold %d, window %d", rs.FlagThreshold, rs.NegationWindow)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `version: custom-1
categories:
  - name: Liability
    tier: High
    keywords:
      liable: 2
    phrases:
      unlimited liability: 5
    negation_markers: ["shall not"]
templates:
  Liability: "Liability shall be capped at fees paid."
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rs, err := Load(path)
	if err != nil {
		t.Fatalf("Expected custom rules to load, got %v", err)
	}
	if rs.Version != "custom-1" {
		t.Errorf("Expected custom version, got %q", rs.Version)
	}
	// Omitted tunables fall back to the defaults
	if rs.FlagThreshold != DefaultFlagThreshold {
		t.Errorf("Expected default threshold, got %d", rs.FlagThreshold)
	}
	if rs.NegationWindow != DefaultNegationWindow {
		t.Errorf("Expected default window, got %d", rs.NegationWindow)
	}
	if len(rs.Categories) != 1 || rs.Categories[0].Name != "Liability" {
		t.Errorf("Unexpected categories: %+v", rs.Categories)
	}
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	content := `version: broken-1
categories:
  - name: Liability
    tier: High
    keywords:
      liable: 2
templates: {}
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Expected validation error for missing template")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
