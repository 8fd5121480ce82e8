package types

// ValidationReport is the outcome of comparing the original and rewritten
// fact sets. It is constructed once per rewrite attempt and advisory to the
// caller: a failed report never aborts the pipeline.
type ValidationReport struct {
	Passed   bool     `json:"passed"`
	Changes  []string `json:"changes"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}
