package llm

import "fmt"

// APICallError represents a failure calling the generative-text provider.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LLM API error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("LLM API error: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a failure to parse a structured model response.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("response parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("response parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
