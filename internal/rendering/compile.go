// Package rendering compiles LaTeX source to PDF via the pdflatex binary.
package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the maximum wall-clock time per pdflatex pass.
	CompilationTimeout = 30 * time.Second
	// maxLogOutput bounds captured diagnostics in errors.
	maxLogOutput = 500
)

// CompilePDF compiles LaTeX source to a PDF, returning the PDF bytes.
// pdflatex runs twice so cross-references resolve. Work happens in a
// scoped temporary directory that is removed on every exit path.
func CompilePDF(ctx context.Context, latexSource string) ([]byte, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &CompilationError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "latex-compile-*")
	if err != nil {
		return nil, &CompilationError{Message: "failed to create temporary working directory", Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(latexSource), 0644); err != nil {
		return nil, &CompilationError{Message: "failed to write LaTeX source", Cause: err}
	}

	// Two passes: the first may leave unresolved references.
	var logOutput string
	var runErr error
	for pass := 0; pass < 2; pass++ {
		logOutput, runErr = runPass(ctx, workDir, texPath)
		if runErr != nil && ctx.Err() != nil {
			break
		}
	}

	pdfPath := filepath.Join(workDir, "resume.pdf")
	pdfBytes, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		return nil, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: truncateLog(logOutput),
			Cause:     firstError(runErr, readErr),
		}
	}

	// pdflatex can exit non-zero yet still emit a usable PDF; a produced
	// PDF counts as success.
	return pdfBytes, nil
}

// runPass executes a single pdflatex invocation with a timeout.
func runPass(ctx context.Context, workDir, texPath string) (logOutput string, err error) {
	passCtx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	cmd := exec.CommandContext(passCtx, "pdflatex",
		"-interaction=nonstopmode", "-output-directory", workDir, texPath)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	if passCtx.Err() == context.DeadlineExceeded {
		return logOutput, &CompilationError{
			Message: fmt.Sprintf("LaTeX compilation timed out after %s", CompilationTimeout),
			Cause:   passCtx.Err(),
		}
	}
	return logOutput, runErr
}

func truncateLog(logOutput string) string {
	if len(logOutput) > maxLogOutput {
		return logOutput[:maxLogOutput]
	}
	return logOutput
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
