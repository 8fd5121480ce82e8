// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import (
	"encoding/json"
	"strings"
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ExtractJSONObject returns the JSON object text embedded in a model
// response. It first tries the fence-cleaned text directly, then falls
// back to the first brace-delimited block. Both failing is a ParseError.
func ExtractJSONObject(text string) (string, error) {
	cleaned := CleanJSONBlock(text)
	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	block, ok := firstBraceBlock(cleaned)
	if !ok {
		return "", &ParseError{Message: "no JSON object found in response"}
	}
	if !json.Valid([]byte(block)) {
		return "", &ParseError{Message: "failed to parse JSON from response"}
	}
	return block, nil
}

// UnmarshalJSONResponse parses a model response into v using
// ExtractJSONObject to locate the JSON payload.
func UnmarshalJSONResponse(text string, v any) error {
	jsonText, err := ExtractJSONObject(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(jsonText), v); err != nil {
		return &ParseError{Message: "failed to parse JSON from response", Cause: err}
	}
	return nil
}

// firstBraceBlock returns the substring from the first '{' to the last '}'.
func firstBraceBlock(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
