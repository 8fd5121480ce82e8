// Package types provides type definitions for structured data used throughout the job-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Format identifies the syntax of a candidate document.
type Format string

// Supported document formats
const (
	// FormatLaTeX indicates the document is LaTeX source
	FormatLaTeX Format = "latex"
	// FormatText indicates the document is plain text
	FormatText Format = "text"
)

