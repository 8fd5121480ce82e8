package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    int
	}{
		{"case insensitive", "Docker docker DOCKER", "Docker", 3},
		{"substring matches count", "dockerized docker", "docker", 2},
		{"absent keyword", "Python and Go", "Rust", 0},
		{"empty keyword", "anything", "", 0},
		{"empty text", "", "docker", 0},
		{"keyword with surrounding space", "uses Docker daily", "  Docker  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountOccurrences(tt.text, tt.keyword))
		})
	}
}

func TestEnforceMinimums(t *testing.T) {
	text := "Docker appears here once. Python python python."

	shortfalls := EnforceMinimums(text, []string{"Docker", "Python"}, 3)

	require.Len(t, shortfalls, 1)
	assert.Equal(t, "Docker", shortfalls[0].Keyword)
	assert.Equal(t, 1, shortfalls[0].Found)
	assert.Equal(t, 3, shortfalls[0].Need)
}

func TestEnforceMinimums_AllMet(t *testing.T) {
	text := "go go go go go"

	shortfalls := EnforceMinimums(text, []string{"go"}, 5)

	assert.Empty(t, shortfalls)
}

func TestEnforceMinimums_PreservesOrder(t *testing.T) {
	shortfalls := EnforceMinimums("", []string{"beta", "alpha", "gamma"}, 1)

	require.Len(t, shortfalls, 3)
	assert.Equal(t, "beta", shortfalls[0].Keyword)
	assert.Equal(t, "alpha", shortfalls[1].Keyword)
	assert.Equal(t, "gamma", shortfalls[2].Keyword)
}

func TestEnforceMinimums_SkipsBlankKeywords(t *testing.T) {
	shortfalls := EnforceMinimums("text", []string{"", "  ", "real"}, 2)

	require.Len(t, shortfalls, 1)
	assert.Equal(t, "real", shortfalls[0].Keyword)
}

func TestShortfallString(t *testing.T) {
	s := Shortfall{Keyword: "Docker", Found: 1, Need: 3}

	assert.Equal(t, "Docker (found 1, need 3)", s.String())
}

func TestShortfallStrings(t *testing.T) {
	out := ShortfallStrings([]Shortfall{
		{Keyword: "Docker", Found: 1, Need: 3},
		{Keyword: "Kafka", Found: 0, Need: 3},
	})

	assert.Equal(t, []string{"Docker (found 1, need 3)", "Kafka (found 0, need 3)"}, out)
}
