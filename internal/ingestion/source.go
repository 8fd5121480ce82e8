package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sanaai/job-assistant/internal/fetch"
)

// LoadPosting returns cleaned job posting text from a file path or URL.
// URLs are fetched and reduced to their main content; files are read
// as-is. Both go through CleanText.
func LoadPosting(ctx context.Context, source string, useBrowser bool) (string, error) {
	if source == "" {
		return "", fmt.Errorf("job posting source is empty")
	}

	if IsURL(source) {
		text, err := fetch.PostingText(ctx, source, useBrowser)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read job posting file %s: %w", source, err)
	}
	return CleanText(string(data)), nil
}

// IsURL reports whether a posting source is a URL rather than a file path.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
