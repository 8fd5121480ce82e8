package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`
			<html><body>
				<nav>Navigation</nav>
				<div class="job-description">
					<h2>Requirements</h2>
					<p>5 years experience in Go</p>
				</div>
				<footer>Footer</footer>
			</body></html>`))
	}))
	defer server.Close()

	text, err := PostingText(context.Background(), server.URL, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years experience")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestPostingText_InvalidURL(t *testing.T) {
	_, err := PostingText(context.Background(), "not-a-valid-url", false)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestPostingText_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := PostingText(context.Background(), server.URL, false)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_WithMainElement(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Main Content</h1>
				<p>This is the important text.</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Main Content")
	assert.Contains(t, text, "important text")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestExtractMainText_JobDescriptionBeatsMain(t *testing.T) {
	html := `
	<html>
		<body>
			<main>Generic page shell</main>
			<div class="job-description">
				<h2>Responsibilities</h2>
				<p>Build backend services.</p>
			</div>
		</body>
	</html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Responsibilities")
	assert.Contains(t, text, "backend services")
	assert.NotContains(t, text, "Generic page shell")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>Some content here.</div>
		</body>
	</html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestExtractMainText_RemovesNoiseElements(t *testing.T) {
	html := `
	<html>
		<body>
			<script>var tracking = true;</script>
			<div class="sidebar">Sidebar junk</div>
			<div class="cookie-banner">Accept cookies</div>
			<main>
				<p>Actual posting text.</p>
			</main>
		</body>
	</html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Actual posting text")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "Sidebar junk")
	assert.NotContains(t, text, "Accept cookies")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  First line  \n\n\n   Second line\n\t\n Third line  "
	got := cleanWhitespace(input)
	assert.Equal(t, "First line\nSecond line\nThird line", got)
}

func TestError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &Error{URL: "https://example.com", Message: "boom", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "https://example.com")
}
