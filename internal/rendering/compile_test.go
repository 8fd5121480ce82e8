package rendering

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePDF_MissingBinary(t *testing.T) {
	if _, err := exec.LookPath("pdflatex"); err == nil {
		t.Skip("pdflatex is installed")
	}

	_, err := CompilePDF(context.Background(), `\documentclass{article}\begin{document}hi\end{document}`)
	require.Error(t, err)

	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, compErr.Message, "pdflatex not found")
}

func TestCompilePDF_InvalidSource(t *testing.T) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		t.Skip("pdflatex not installed")
	}

	_, err := CompilePDF(context.Background(), `\begin{document} missing preamble`)
	require.Error(t, err)

	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, compErr.Message, "PDF was not generated")
}

func TestCompilationError_Error(t *testing.T) {
	err := &CompilationError{Message: "something broke"}
	assert.Equal(t, "LaTeX compilation error: something broke", err.Error())

	cause := os.ErrNotExist
	wrapped := &CompilationError{Message: "missing file", Cause: cause}
	assert.Contains(t, wrapped.Error(), "missing file")
	assert.True(t, errors.Is(wrapped, cause))
}

func TestTruncateLog(t *testing.T) {
	short := "a short log"
	assert.Equal(t, short, truncateLog(short))

	long := make([]byte, maxLogOutput*2)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, truncateLog(string(long)), maxLogOutput)
}

func TestFirstError(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	assert.Equal(t, e1, firstError(nil, e1, e2))
	assert.NoError(t, firstError(nil, nil))
}
