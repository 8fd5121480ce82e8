package types

import (
	"sort"
	"strings"
)

// StringSet is a case-insensitive set of strings that remembers the
// first-seen display form of each member.
type StringSet struct {
	members map[string]string // lowercase key → first-seen display form
}

// NewStringSet creates a StringSet containing the given values.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{members: make(map[string]string)}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value. Empty strings are ignored; membership is
// case-insensitive and the first-seen form wins.
func (s *StringSet) Add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	key := strings.ToLower(value)
	if _, exists := s.members[key]; !exists {
		s.members[key] = value
	}
}

// Contains reports whether value is a member, ignoring case.
func (s *StringSet) Contains(value string) bool {
	_, ok := s.members[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// Len returns the number of members.
func (s *StringSet) Len() int {
	return len(s.members)
}

// Values returns the display forms of all members, sorted for determinism.
func (s *StringSet) Values() []string {
	values := make([]string, 0, len(s.members))
	for _, v := range s.members {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Difference returns the members of s that are not members of other,
// sorted for determinism.
func (s *StringSet) Difference(other *StringSet) []string {
	var diff []string
	for key, display := range s.members {
		if _, ok := other.members[key]; !ok {
			diff = append(diff, display)
		}
	}
	sort.Strings(diff)
	return diff
}

// SubsetOf reports whether every member of s is also a member of other.
func (s *StringSet) SubsetOf(other *StringSet) bool {
	for key := range s.members {
		if _, ok := other.members[key]; !ok {
			return false
		}
	}
	return true
}

// FactSet holds the verifiable attributes extracted from a document.
// A new FactSet is produced for each extraction; extraction never mutates
// an existing one.
type FactSet struct {
	Skills        *StringSet `json:"-"`
	Organizations *StringSet `json:"-"`
	Dates         *StringSet `json:"-"`
	Titles        *StringSet `json:"-"`
}

// NewFactSet creates an empty FactSet.
func NewFactSet() *FactSet {
	return &FactSet{
		Skills:        NewStringSet(),
		Organizations: NewStringSet(),
		Dates:         NewStringSet(),
		Titles:        NewStringSet(),
	}
}

// CacheEntry associates a document fingerprint with its derived artifacts.
type CacheEntry struct {
	Fingerprint    string
	NormalizedText string
	Facts          *FactSet
}
