package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanaai/job-assistant/internal/types"
)

func TestIsLaTeX(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "documentclass preamble",
			text: `\documentclass{article}\begin{document}Hello\end{document}`,
			want: true,
		},
		{
			name: "section command only",
			text: `\section{Experience} Software Engineer at Acme Corp`,
			want: true,
		},
		{
			name: "textbf inline",
			text: `My resume uses \textbf{bold} text`,
			want: true,
		},
		{
			name: "plain text",
			text: "Software Engineer at Acme Corp 2019-2021 using Python.",
			want: false,
		},
		{
			name: "empty input",
			text: "",
			want: false,
		},
		{
			name: "backslash without known command",
			text: `path\to\file is not markup`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLaTeX(tt.text))
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, types.FormatLaTeX, DetectFormat(`\documentclass{article}`))
	assert.Equal(t, types.FormatText, DetectFormat("plain resume text"))
}
