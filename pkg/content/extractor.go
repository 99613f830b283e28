// Package content retrieves article pages and extracts their readable text.
package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/fetch"
)

// maxBodySize caps how much of a page is read, some articles embed huge assets
const maxBodySize = 10 * 1024 * 1024

// HTTPExtractor extracts article text from URLs using trafilatura with a
// plain paragraph-join fallback for pages trafilatura can't handle.
type HTTPExtractor struct {
	client        *http.Client
	userAgent     string
	minTextLength int
	maxChars      int
}

// Params holds extractor settings.
type Params struct {
	Timeout       time.Duration
	UserAgent     string
	MinTextLength int // extraction below this length is an error
	MaxChars      int // longer text is truncated
}

// NewHTTPExtractor creates a new content extractor.
func NewHTTPExtractor(p Params) *HTTPExtractor {
	if p.Timeout == 0 {
		p.Timeout = 30 * time.Second
	}
	if p.UserAgent == "" {
		p.UserAgent = "Mozilla/5.0 (compatible; newsdigest/1.0)"
	}
	if p.MinTextLength == 0 {
		p.MinTextLength = 100
	}
	if p.MaxChars == 0 {
		p.MaxChars = 50000
	}
	return &HTTPExtractor{
		client:        &http.Client{Timeout: p.Timeout},
		userAgent:     p.UserAgent,
		minTextLength: p.MinTextLength,
		maxChars:      p.MaxChars,
	}
}

// Extract retrieves and extracts text content from the given URL.
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	fetch.PageHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	// buffer the page, both trafilatura and the fallback need to read it
	page, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body from %s: %w", urlStr, err)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	content := ""
	if result, exErr := trafilatura.Extract(strings.NewReader(string(page)), opts); exErr == nil && result != nil {
		content = strings.TrimSpace(result.ContentText)
	}

	if content == "" {
		// trafilatura found nothing, join plain <p> text instead
		content = extractParagraphs(string(page))
	}

	if len(content) < e.minTextLength {
		return "", fmt.Errorf("no usable text content extracted from %s (%d chars)", urlStr, len(content))
	}

	if len(content) > e.maxChars {
		content = domain.TruncateText(content, e.maxChars) + "...[truncated]"
	}

	return content, nil
}

// extractParagraphs joins the text of all <p> elements in the document.
func extractParagraphs(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n")
}
