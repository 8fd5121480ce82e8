// Package fetch retrieves job postings over HTTP and extracts their main
// text content from HTML.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies the client to job boards.
const defaultUserAgent = "Mozilla/5.0 (compatible; JobAssistant/1.0)"

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PostingText fetches a job posting URL and returns its extracted text.
// When useBrowser is set, pages whose extracted text looks too short for a
// posting are re-fetched through a headless browser.
func PostingText(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	platform := DetectPlatform(urlStr)
	text, err := extractWithSelectors(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	if useBrowser && looksUnrendered(text) {
		renderedHTML, browserErr := renderWithBrowser(ctx, urlStr, DefaultTimeout)
		if browserErr != nil {
			return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: browserErr}
		}
		if renderedText, extractErr := extractWithSelectors(renderedHTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)); extractErr == nil {
			text = renderedText
		}
	}

	return text, nil
}

// fetchHTML retrieves the raw HTML for a URL.
func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

// jobPostingSelectors locate posting content on common job boards, most
// specific first.
var jobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractMainText parses HTML and returns the posting's main body text,
// with navigation, scripts, and similar noise removed.
func ExtractMainText(html string) (string, error) {
	return extractWithSelectors(html, jobPostingSelectors, nil)
}

// extractWithSelectors extracts body text using an ordered content-selector
// list and optional extra noise selectors.
func extractWithSelectors(html string, contentSelectors, noiseSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()
	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims each line and drops blank ones.
func cleanWhitespace(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
