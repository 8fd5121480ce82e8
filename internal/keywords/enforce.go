package keywords

import (
	"fmt"
	"strings"
)

// Shortfall records a required keyword whose occurrence count in the
// candidate text fell below the minimum.
type Shortfall struct {
	Keyword string `json:"keyword"`
	Found   int    `json:"found"`
	Need    int    `json:"need"`
}

func (s Shortfall) String() string {
	return fmt.Sprintf("%s (found %d, need %d)", s.Keyword, s.Found, s.Need)
}

// CountOccurrences returns the case-insensitive substring count of keyword
// in text. An empty keyword counts zero.
func CountOccurrences(text, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), keyword)
}

// EnforceMinimums reports the keywords whose occurrence count in the
// candidate text is below minCount, in the order given.
func EnforceMinimums(candidateText string, required []string, minCount int) []Shortfall {
	var shortfalls []Shortfall
	for _, keyword := range required {
		if strings.TrimSpace(keyword) == "" {
			continue
		}
		count := CountOccurrences(candidateText, keyword)
		if count < minCount {
			shortfalls = append(shortfalls, Shortfall{
				Keyword: keyword,
				Found:   count,
				Need:    minCount,
			})
		}
	}
	return shortfalls
}

// ShortfallStrings renders shortfalls in the "keyword (found N, need M)"
// form used in diagnostics.
func ShortfallStrings(shortfalls []Shortfall) []string {
	out := make([]string, 0, len(shortfalls))
	for _, s := range shortfalls {
		out = append(out, s.String())
	}
	return out
}
