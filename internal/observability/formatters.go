// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/sanaai/job-assistant/internal/keywords"
	"github.com/sanaai/job-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFactSet outputs a human-readable summary of extracted facts.
func (p *Printer) PrintFactSet(facts *types.FactSet) {
	if facts == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:         %d\n", facts.Skills.Len()))
	sb.WriteString(fmt.Sprintf("Organizations:  %d\n", facts.Organizations.Len()))
	sb.WriteString(fmt.Sprintf("Titles:         %d\n", facts.Titles.Len()))
	sb.WriteString(fmt.Sprintf("Dates:          %d\n", facts.Dates.Len()))

	if skills := facts.Skills.Values(); len(skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
		}
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED FACTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordBucket outputs the categorized job posting keywords.
func (p *Printer) PrintKeywordBucket(bucket *types.KeywordBucket) {
	if bucket == nil {
		return
	}

	var sb strings.Builder
	writeGroup := func(label string, values []string) {
		if len(values) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(values)))
		count := min(len(values), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", values[i]))
		}
		if len(values) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(values)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeGroup("Core", bucket.Core)
	writeGroup("Tools", bucket.Tools)
	writeGroup("Secondary", bucket.Secondary)

	p.printBox("JOB POSTING KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShortfalls outputs keywords still under-represented in the rewrite.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintShortfalls(shortfalls []keywords.Shortfall) {
	if len(shortfalls) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL KEYWORD MINIMUMS MET")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d keywords under-represented:\n\n", len(shortfalls)))

	count := min(len(shortfalls), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", shortfalls[i].String()))
	}
	if len(shortfalls) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(shortfalls)-maxItemsToShow))
	}

	p.printBox("KEYWORD SHORTFALLS", sb.String())
}

// PrintValidationReport outputs the hallucination-guard findings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	if report.Passed && len(report.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ VALIDATION PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	if report.Passed {
		sb.WriteString("Passed with warnings\n\n")
	} else {
		sb.WriteString("FAILED\n\n")
	}

	for i, change := range report.Changes {
		msg := change
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", msg))
		if i < len(report.Changes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
