// Package feed collects article candidates from RSS/Atom feeds.
package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/fetch"
)

// Collector fetches candidates from a set of RSS/Atom feed URLs.
type Collector struct {
	urls      []string
	maxItems  int
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewCollector creates an RSS collector for the given feed URLs.
// maxItems limits how many entries are taken from each feed.
func NewCollector(urls []string, maxItems int, timeout time.Duration, userAgent string) *Collector {
	if maxItems <= 0 {
		maxItems = 5
	}
	return &Collector{
		urls:     urls,
		maxItems: maxItems,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Name identifies the collector in logs.
func (c *Collector) Name() string { return "rss" }

// Collect fetches all configured feeds and returns their candidates.
// A failure on one feed is logged and doesn't stop collection from the others;
// an error is returned only when every feed failed.
func (c *Collector) Collect(ctx context.Context) ([]domain.Candidate, error) {
	var result []domain.Candidate
	failed := 0

	for _, url := range c.urls {
		items, err := c.collectFeed(ctx, url)
		if err != nil {
			lgr.Printf("[WARN] failed to collect feed %s: %v", url, err)
			failed++
			continue
		}
		result = append(result, items...)
	}

	if len(c.urls) > 0 && failed == len(c.urls) {
		return result, fmt.Errorf("all %d feeds failed", failed)
	}
	return result, nil
}

// collectFeed fetches and parses a single feed URL.
func (c *Collector) collectFeed(ctx context.Context, url string) ([]domain.Candidate, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	source := CleanDomain(url)

	items := parsed.Items
	if len(items) > c.maxItems {
		items = items[:c.maxItems]
	}

	candidates := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		if item.Link == "" {
			lgr.Printf("[DEBUG] skipping feed item without link in %s: %q", url, item.Title)
			continue
		}

		cand := domain.Candidate{
			Title:   strings.TrimSpace(item.Title),
			URL:     strings.TrimSpace(item.Link),
			Summary: c.cleanText(firstNonEmpty(item.Description, item.Content)),
			Source:  source,
		}

		if item.PublishedParsed != nil {
			cand.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			cand.Published = *item.UpdatedParsed
		}

		candidates = append(candidates, cand)
	}

	return candidates, nil
}

// fetch retrieves feed content from a URL
func (c *Collector) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	fetch.FeedHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// cleanText strips HTML tags and entities from feed descriptions and
// truncates the result to a size fit for a database summary property.
func (c *Collector) cleanText(s string) string {
	const maxSummary = 2000

	text := html.UnescapeString(c.sanitizer.Sanitize(s))
	text = strings.Join(strings.Fields(text), " ") // collapse whitespace
	return domain.TruncateText(text, maxSummary)
}

// CleanDomain extracts a display domain from a URL. The www. prefix is
// stripped; substack.com subdomains are kept because the subdomain is the
// actual publication name.
func CleanDomain(url string) string {
	s := url
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "www.")
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
