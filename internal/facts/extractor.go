// Package facts derives verifiable fact sets (skills, organizations, dates,
// titles) from plain résumé text using lexicon and pattern rules.
//
// Extraction is total: it never fails, and absence of matches yields empty
// sets. Identical input always yields an identical FactSet.
package facts

import (
	"strings"

	"github.com/sanaai/job-assistant/internal/types"
)

// Minimum lengths for accepted candidates, applied during the merge step.
const (
	minOrganizationLen = 3
	minTitleLen        = 4
)

// Extractor runs an ordered list of independent matcher rules and merges
// their candidates into a FactSet.
type Extractor struct {
	rules []Rule
}

// NewExtractor builds an Extractor from the embedded lexicons.
func NewExtractor() *Extractor {
	loadLexicons()
	return &Extractor{
		rules: []Rule{
			newSkillRule(loadedSkills.Skills),
			newOrganizationRule(),
			newDateRule(),
			newTitleRule(loadedTitles.Qualifiers, loadedTitles.Roles),
		},
	}
}

// Rules returns the matcher rules, primarily for per-rule testing.
func (e *Extractor) Rules() []Rule {
	return e.rules
}

// Extract derives a new FactSet from plain text. The input document is
// never mutated and each call produces a fresh FactSet.
func (e *Extractor) Extract(text string) *types.FactSet {
	facts := types.NewFactSet()
	for _, rule := range e.rules {
		for _, candidate := range rule.Match(text) {
			addCandidate(facts, rule.Category, candidate)
		}
	}
	return facts
}

// addCandidate normalizes a candidate for its category and adds it to the
// fact set. Candidates that fail the category filter are dropped.
func addCandidate(facts *types.FactSet, category Category, candidate string) {
	candidate = strings.TrimSpace(candidate)
	switch category {
	case CategorySkills:
		facts.Skills.Add(strings.ToLower(candidate))
	case CategoryOrganizations:
		if len(candidate) >= minOrganizationLen {
			facts.Organizations.Add(candidate)
		}
	case CategoryDates:
		facts.Dates.Add(candidate)
	case CategoryTitles:
		if len(candidate) >= minTitleLen {
			facts.Titles.Add(candidate)
		}
	}
}
