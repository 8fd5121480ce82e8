package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanaai/job-assistant/internal/keywords"
	"github.com/sanaai/job-assistant/internal/types"
)

func TestPrintFactSet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	facts := types.NewFactSet()
	facts.Skills.Add("python")
	facts.Skills.Add("go")
	facts.Organizations.Add("Acme Corp")
	facts.Titles.Add("Software Engineer")
	facts.Dates.Add("2019")

	p.PrintFactSet(facts)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED FACTS")
	assert.Contains(t, output, "Skills:         2")
	assert.Contains(t, output, "Organizations:  1")
	assert.Contains(t, output, "python")
}

func TestPrintFactSet_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFactSet(nil)

	assert.Empty(t, buf.String())
}

func TestPrintKeywordBucket(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	bucket := &types.KeywordBucket{
		Core:      []string{"machine learning", "distributed systems"},
		Tools:     []string{"Docker", "Kubernetes"},
		Secondary: []string{"communication"},
	}

	p.PrintKeywordBucket(bucket)
	output := buf.String()

	assert.Contains(t, output, "JOB POSTING KEYWORDS")
	assert.Contains(t, output, "Core (2)")
	assert.Contains(t, output, "machine learning")
	assert.Contains(t, output, "Docker")
	assert.Contains(t, output, "communication")
}

func TestPrintShortfalls(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	shortfalls := []keywords.Shortfall{
		{Keyword: "Docker", Found: 1, Need: 3},
	}

	p.PrintShortfalls(shortfalls)
	output := buf.String()

	assert.Contains(t, output, "KEYWORD SHORTFALLS")
	assert.Contains(t, output, "Docker (found 1, need 3)")
}

func TestPrintShortfalls_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintShortfalls(nil)

	assert.Contains(t, buf.String(), "ALL KEYWORD MINIMUMS MET")
}

func TestPrintValidationReport_Passed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(&types.ValidationReport{Passed: true})

	assert.Contains(t, buf.String(), "VALIDATION PASSED")
}

func TestPrintValidationReport_Failed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ValidationReport{
		Passed:  false,
		Changes: []string{"ERROR: New skills detected that were not in original resume: rust"},
		Errors:  []string{"ERROR: New skills detected that were not in original resume: rust"},
	}

	p.PrintValidationReport(report)
	output := buf.String()

	assert.Contains(t, output, "VALIDATION REPORT")
	assert.Contains(t, output, "FAILED")
	assert.Contains(t, output, "New skills detected")
}
