package redline

import (
	"fmt"

	"github.com/mkoval/clausewise/internal/model"
	"github.com/mkoval/clausewise/internal/rules"
)

// Generator maps a finding's category to its suggested replacement wording.
// Templates are standalone balanced clauses with no clause-text interpolation,
// so the mapping is a pure lookup.
type Generator struct {
	templates map[string]string
}

// UnknownCategoryError indicates a finding whose category has no template.
// Rule-set validation checks every category at load time, so hitting this at
// request time means an internal consistency defect, not bad user input.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no redline template for category %q", e.Category)
}

// NewGenerator creates a generator backed by the rule set's template table
func NewGenerator(rs *rules.RuleSet) *Generator {
	return &Generator{templates: rs.Templates}
}

// Suggest returns the replacement wording for the finding's category
func (g *Generator) Suggest(finding model.Finding) (string, error) {
	t, ok := g.templates[finding.Category]
	if !ok {
		return "", &UnknownCategoryError{Category: finding.Category}
	}
	return t, nil
}
