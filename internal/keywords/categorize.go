// Package keywords categorizes job-posting terms into core, tool, and
// secondary tiers and enforces keyword-frequency minimums on candidate
// documents.
//
// Categorization is deterministic and total: any input yields a bucket,
// possibly with empty tiers. Caps apply after deduplication, truncating
// the discovery-ordered sequence.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sanaai/job-assistant/internal/types"
)

// orderedSet deduplicates case-insensitively while preserving
// first-discovery order, up to a cap.
type orderedSet struct {
	cap    int
	seen   map[string]bool
	values []string
}

func newOrderedSet(cap int) *orderedSet {
	return &orderedSet{cap: cap, seen: make(map[string]bool)}
}

func (s *orderedSet) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	key := strings.ToLower(value)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	if len(s.values) < s.cap {
		s.values = append(s.values, value)
	}
}

func (s *orderedSet) has(value string) bool {
	return s.seen[strings.ToLower(strings.TrimSpace(value))]
}

// Categorize derives a KeywordBucket from a posting's text.
func Categorize(postingText string) *types.KeywordBucket {
	tools := extractTools(postingText)
	core := extractCore(postingText, tools)
	secondary := extractSecondary(postingText, tools, core)

	return &types.KeywordBucket{
		Core:      core.values,
		Tools:     tools.values,
		Secondary: secondary.values,
	}
}

// toolPatterns are precompiled whole-word matchers for the tool lexicon.
var toolPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(toolLexicon))
	for _, tool := range toolLexicon {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+wholeWordPattern(tool)))
	}
	return patterns
}()

// extractTools collects tool-lexicon hits and acronym-shaped tokens.
// Lexicon hits are ordered by first appearance in the posting, not by
// lexicon position, so the cap keeps the earliest-mentioned tools.
func extractTools(text string) *orderedSet {
	set := newOrderedSet(types.MaxToolKeywords)

	type toolHit struct {
		canonical string
		offset    int
	}
	var hits []toolHit
	for i, pattern := range toolPatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			hits = append(hits, toolHit{canonical: toolLexicon[i], offset: loc[0]})
		}
	}
	sort.Slice(hits, func(a, b int) bool { return hits[a].offset < hits[b].offset })
	for _, hit := range hits {
		set.add(hit.canonical)
	}

	for _, acronym := range acronymPattern.FindAllString(text, -1) {
		set.add(acronym)
	}
	return set
}

// extractCore collects domain-concept phrases and multi-word capitalized
// phrases not claimed by the tool tier and not made of filler words.
func extractCore(text string, tools *orderedSet) *orderedSet {
	set := newOrderedSet(types.MaxCoreKeywords)
	for _, pattern := range corePhrasePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			set.add(m)
		}
	}
	for _, phrase := range capitalizedPhrasePattern.FindAllString(text, -1) {
		if containsFiller(phrase) || tools.has(phrase) {
			continue
		}
		set.add(phrase)
	}
	return set
}

// extractSecondary collects soft-skill phrases plus remaining capitalized
// tokens not already claimed by the tool or core tiers.
func extractSecondary(text string, tools, core *orderedSet) *orderedSet {
	set := newOrderedSet(types.MaxSecondaryKeywords)
	for _, pattern := range secondaryPhrasePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			set.add(m)
		}
	}
	for _, token := range capitalizedTokenPattern.FindAllString(text, -1) {
		if containsFiller(token) || tools.has(token) || core.has(token) {
			continue
		}
		set.add(token)
	}
	return set
}

func containsFiller(phrase string) bool {
	for _, word := range strings.Fields(phrase) {
		if fillerWords[strings.ToLower(word)] {
			return true
		}
	}
	return false
}

// wholeWordPattern quotes a term for whole-word matching. Boundaries are
// only asserted next to word characters so terms like "Node.js" and "C++"
// still match.
func wholeWordPattern(term string) string {
	pattern := regexp.QuoteMeta(term)
	if isWordByte(term[0]) {
		pattern = `\b` + pattern
	}
	if isWordByte(term[len(term)-1]) {
		pattern += `\b`
	}
	return pattern
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
