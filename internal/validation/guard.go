// Package validation compares pre- and post-rewrite fact sets to detect
// fabricated content in rewritten résumés.
package validation

import (
	"fmt"
	"strings"

	"github.com/sanaai/job-assistant/internal/types"
)

// Itemization caps keep report entries readable; only the first few
// offending values are named per check.
const (
	maxReportedSkills        = 5
	maxReportedOrganizations = 5
	maxReportedTitles        = 3
	maxReportedDates         = 3
)

// Extractor derives a FactSet from plain text.
type Extractor interface {
	Extract(text string) *types.FactSet
}

// Guard validates rewritten text against the original document's facts.
type Guard struct {
	extractor Extractor
}

// NewGuard creates a Guard using the given extractor.
func NewGuard(extractor Extractor) *Guard {
	return &Guard{extractor: extractor}
}

// Validate extracts facts from the rewritten text and diffs them against
// the original fact set.
//
// New organizations, new titles, and new skills are hard failures. Original
// dates absent from the rewritten text are warnings only. The report is
// advisory: it never aborts the pipeline.
func (g *Guard) Validate(original *types.FactSet, rewrittenText string) *types.ValidationReport {
	report := &types.ValidationReport{Passed: true}
	rewritten := g.extractor.Extract(rewrittenText)

	if newSkills := rewritten.Skills.Difference(original.Skills); len(newSkills) > 0 {
		fail(report, fmt.Sprintf("New skills detected that were not in original resume: %s",
			itemize(newSkills, maxReportedSkills)))
	}

	if newOrgs := rewritten.Organizations.Difference(original.Organizations); len(newOrgs) > 0 {
		fail(report, fmt.Sprintf("New companies detected that were not in original resume: %s",
			itemize(newOrgs, maxReportedOrganizations)))
	}

	if newTitles := rewritten.Titles.Difference(original.Titles); len(newTitles) > 0 {
		fail(report, fmt.Sprintf("New job titles detected: %s",
			itemize(newTitles, maxReportedTitles)))
	}

	// Plain substring containment against the raw rewritten text: a date can
	// survive even when the surrounding phrasing changed.
	var missingDates []string
	for _, date := range original.Dates.Values() {
		if !strings.Contains(rewrittenText, date) {
			missingDates = append(missingDates, date)
		}
	}
	if len(missingDates) > 0 {
		warn(report, fmt.Sprintf("Some original dates may be missing: %s",
			itemize(missingDates, maxReportedDates)))
	}

	if report.Passed && len(report.Errors) == 0 && len(report.Warnings) == 0 {
		report.Changes = append(report.Changes, "Validation passed: no unauthorized changes detected")
	}

	return report
}

func fail(report *types.ValidationReport, msg string) {
	msg = "ERROR: " + msg
	report.Errors = append(report.Errors, msg)
	report.Changes = append(report.Changes, msg)
	report.Passed = false
}

func warn(report *types.ValidationReport, msg string) {
	msg = "WARNING: " + msg
	report.Warnings = append(report.Warnings, msg)
	report.Changes = append(report.Changes, msg)
}

func itemize(values []string, max int) string {
	if len(values) > max {
		values = values[:max]
	}
	return strings.Join(values, ", ")
}
