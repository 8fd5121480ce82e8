// Package latex provides format detection and text extraction for LaTeX documents.
package latex

import (
	"strings"

	"github.com/sanaai/job-assistant/internal/types"
)

// indicators are the markers whose presence classifies a document as LaTeX.
var indicators = []string{
	`\documentclass`,
	`\begin{document}`,
	`\section`,
	`\textbf`,
	`\textit`,
	`\usepackage`,
}

// IsLaTeX reports whether the text contains any LaTeX indicator.
func IsLaTeX(text string) bool {
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}

// DetectFormat classifies a document as LaTeX or plain text.
func DetectFormat(text string) types.Format {
	if IsLaTeX(text) {
		return types.FormatLaTeX
	}
	return types.FormatText
}
