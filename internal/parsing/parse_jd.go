// Package parsing extracts a structured ParsedJD from raw job posting text
// using the Generator, validating the response against a JSON Schema.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sanaai/job-assistant/internal/llm"
	"github.com/sanaai/job-assistant/internal/prompts"
	"github.com/sanaai/job-assistant/internal/schemas"
	"github.com/sanaai/job-assistant/internal/types"
)

// ParseJD asks the Generator to parse a job description into structured
// form. The response is located via direct-parse with brace-block fallback
// and schema-validated before being returned.
func ParseJD(ctx context.Context, client llm.Client, postingText string) (*types.ParsedJD, error) {
	if strings.TrimSpace(postingText) == "" {
		return nil, &llm.ParseError{Message: "job description is empty"}
	}

	prompt := prompts.Format(prompts.MustGet("parsing.json", "parse-jd"), map[string]string{
		"JobDescription": postingText,
	})
	systemPrompt := prompts.MustGet("parsing.json", "parse-jd-system")

	response, err := client.CompleteJSON(ctx, prompt, systemPrompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	jsonText, err := llm.ExtractJSONObject(response)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.ParsedJDSchema, jsonText); err != nil {
		return nil, err
	}

	var parsed types.ParsedJD
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, &llm.ParseError{Message: "failed to parse job description JSON", Cause: err}
	}
	return &parsed, nil
}
