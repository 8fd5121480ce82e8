package facts

import (
	"regexp"
	"strings"
)

// Category identifies which FactSet field a rule feeds.
type Category string

// Fact categories
const (
	CategorySkills        Category = "skills"
	CategoryOrganizations Category = "organizations"
	CategoryDates         Category = "dates"
	CategoryTitles        Category = "titles"
)

// Rule is an independent matcher that produces candidate facts from plain
// text. Rules never fail; no matches yields an empty slice. Candidates are
// merged and normalized by the Extractor.
type Rule struct {
	Name     string
	Category Category
	Match    func(text string) []string
}

// newSkillRule builds the lexicon-based skill matcher. Matching is
// case-insensitive and whole-word; boundaries are only asserted next to
// word characters so terms like "C++" and "C#" still match.
func newSkillRule(terms []string) Rule {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		parts = append(parts, termPattern(term))
	}
	pattern := regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)

	return Rule{
		Name:     "skill-lexicon",
		Category: CategorySkills,
		Match: func(text string) []string {
			return pattern.FindAllString(text, -1)
		},
	}
}

// termPattern quotes a lexicon term and adds word boundaries where the
// term starts or ends with a word character.
func termPattern(term string) string {
	quoted := regexp.QuoteMeta(term)
	if isWordByte(term[0]) {
		quoted = `\b` + quoted
	}
	if isWordByte(term[len(term)-1]) {
		quoted += `\b`
	}
	return quoted
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// organizationPatterns are positional heuristics for organization names:
// a capitalized word run adjacent to "at", "|", "-", or "(".
var organizationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`at\s+([A-Z][A-Za-z\s&]+)`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&]+)\s*\|`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&]+)\s*-\s*`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&]+)\s*\(`),
}

// newOrganizationRule applies the positional heuristics line by line.
func newOrganizationRule() Rule {
	return Rule{
		Name:     "organization-heuristics",
		Category: CategoryOrganizations,
		Match: func(text string) []string {
			var candidates []string
			for _, line := range strings.Split(text, "\n") {
				for _, pattern := range organizationPatterns {
					for _, m := range pattern.FindAllStringSubmatch(line, -1) {
						candidates = append(candidates, m[1])
					}
				}
			}
			return candidates
		},
	}
}

// datePatterns match numeric month/year forms, named-month-plus-year forms,
// and bare 4-digit years. Bare years are kept even when subsumed by a
// fuller date; the permissiveness is intentional.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/-]\d{4}`),
	regexp.MustCompile(`\d{4}[/-]\d{1,2}`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`),
	regexp.MustCompile(`\d{4}`),
}

func newDateRule() Rule {
	return Rule{
		Name:     "date-patterns",
		Category: CategoryDates,
		Match: func(text string) []string {
			var candidates []string
			for _, pattern := range datePatterns {
				candidates = append(candidates, pattern.FindAllString(text, -1)...)
			}
			return candidates
		},
	}
}

// newTitleRule builds the title matcher from the qualifier and role
// lexicons: zero or more qualifiers, a role noun, and an optional
// "of"/"in" plus capitalized phrase.
func newTitleRule(qualifiers, roles []string) Rule {
	quals := strings.Join(quoteAll(qualifiers), "|")
	nouns := strings.Join(quoteAll(roles), "|")
	pattern := regexp.MustCompile(
		`\b(?:(?i:` + quals + `)\s+)*(?i:` + nouns + `)\b(?:\s+(?i:of|in)\s+[A-Z][A-Za-z\s&]*)?`)

	return Rule{
		Name:     "title-lexicon",
		Category: CategoryTitles,
		Match: func(text string) []string {
			return pattern.FindAllString(text, -1)
		},
	}
}

func quoteAll(terms []string) []string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}
	return quoted
}
