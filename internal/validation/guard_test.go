package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanaai/job-assistant/internal/facts"
)

func TestValidate_NoChanges(t *testing.T) {
	extractor := facts.NewExtractor()
	guard := NewGuard(extractor)

	text := "Software Engineer at Acme Corp 2019-2021 using Python and Docker."
	original := extractor.Extract(text)

	report := guard.Validate(original, text)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	require.Len(t, report.Changes, 1)
	assert.Equal(t, "Validation passed: no unauthorized changes detected", report.Changes[0])
}

func TestValidate_NewSkillIsHardFailure(t *testing.T) {
	extractor := facts.NewExtractor()
	guard := NewGuard(extractor)

	original := extractor.Extract("Worked at Acme Corp 2019-2021 using Python.")
	rewritten := "Worked at Acme Corp 2019-2021 using Python and Rust."

	report := guard.Validate(original, rewritten)

	assert.False(t, report.Passed)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "New skills detected that were not in original resume")
	assert.Contains(t, report.Errors[0], "rust")
}

func TestValidate_NewOrganizationIsHardFailure(t *testing.T) {
	extractor := facts.NewExtractor()
	guard := NewGuard(extractor)

	original := extractor.Extract("Engineer at Acme Corp using Python.")
	rewritten := "Engineer at Acme Corp and at Globex Industries using Python."

	report := guard.Validate(original, rewritten)

	assert.False(t, report.Passed)
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "New companies detected") && strings.Contains(e, "Globex Industries") {
			found = true
		}
	}
	assert.True(t, found, "errors: %v", report.Errors)
}

func TestValidate_NewTitleIsHardFailure(t *testing.T) {
	extractor := facts.NewExtractor()
	guard := NewGuard(extractor)

	original := extractor.Extract("Worked on backend services using Python.")
	rewritten := "Senior Software Engineer working on backend services using Python."

	report := guard.Validate(original, rewritten)

	assert.False(t, report.Passed)
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "New job titles detected") && strings.Contains(e, "Senior Software Engineer") {
			found = true
		}
	}
	assert.True(t, found, "errors: %v", report.Errors)
}

func TestValidate_MissingDateIsWarningOnly(t *testing.T) {
	extractor := facts.NewExtractor()
	guard := NewGuard(extractor)

	original := extractor.Extract("Worked at Acme Corp. Started in 2019. Used Python.")
	rewritten := "Worked at Acme Corp. Used Python."

	report := guard.Validate(original, rewritten)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Errors)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "Some original dates may be missing")
	assert.Contains(t, report.Warnings[0], "2019")
}

func TestValidate_DroppedContentIsNotFailure(t *testing.T) {
	extractor := facts.NewExtractor()
	guard := NewGuard(extractor)

	// The guard is asymmetric: removing skills is allowed, adding is not.
	original := extractor.Extract("Used Python, Docker, and Kubernetes at Acme Corp.")
	rewritten := "Used Python at Acme Corp."

	report := guard.Validate(original, rewritten)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Errors)
}
