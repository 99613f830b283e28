// Package hackernews collects article candidates from the HackerNews
// Firebase API (top stories endpoint plus per-item details).
package hackernews

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newsdigest/pkg/domain"
)

// DefaultBaseURL is the public HackerNews Firebase API endpoint.
const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// Client fetches top stories from the HackerNews API.
type Client struct {
	client    *resty.Client
	maxItems  int
	sanitizer *bluemonday.Policy
}

// story is the wire format of a HackerNews item.
type story struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Text        string `json:"text"`
	Time        int64  `json:"time"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Type        string `json:"type"`
}

// NewClient creates a HackerNews collector. Empty baseURL uses the public API.
func NewClient(baseURL string, maxItems int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if maxItems <= 0 {
		maxItems = 5
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)

	return &Client{client: client, maxItems: maxItems, sanitizer: bluemonday.StrictPolicy()}
}

// Name identifies the collector in logs.
func (c *Client) Name() string { return "hackernews" }

// Collect returns up to maxItems top stories as candidates. The id list is
// over-fetched because some stories lack a title or URL and get skipped.
func (c *Client) Collect(ctx context.Context) ([]domain.Candidate, error) {
	ids, err := c.topStories(ctx, c.maxItems*3)
	if err != nil {
		return nil, fmt.Errorf("fetch top stories: %w", err)
	}

	candidates := make([]domain.Candidate, 0, c.maxItems)
	for _, id := range ids {
		if len(candidates) >= c.maxItems {
			break
		}

		st, err := c.storyDetails(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return candidates, ctx.Err()
			}
			lgr.Printf("[WARN] failed to fetch story %d, skipping: %v", id, err)
			continue
		}
		if st == nil { // story skipped, not an error
			continue
		}

		candidates = append(candidates, c.toCandidate(st))
	}

	return candidates, nil
}

// topStories returns up to limit story ids.
func (c *Client) topStories(ctx context.Context, limit int) ([]int64, error) {
	var ids []int64
	resp, err := c.client.R().SetContext(ctx).SetResult(&ids).Get("/topstories.json")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// storyDetails fetches a single story; returns nil for stories that don't
// qualify as article candidates (no title, or neither url nor text).
func (c *Client) storyDetails(ctx context.Context, id int64) (*story, error) {
	var st story
	resp, err := c.client.R().SetContext(ctx).SetResult(&st).Get(fmt.Sprintf("/item/%d.json", id))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	if st.Title == "" || (st.URL == "" && st.Text == "") {
		return nil, nil
	}
	return &st, nil
}

// toCandidate normalizes a story into the common candidate record.
func (c *Client) toCandidate(st *story) domain.Candidate {
	link := st.URL
	if link == "" {
		// Ask/Show HN stories have no external link
		link = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", st.ID)
	}

	// Ask/Show HN text arrives as escaped HTML markup
	summary := c.cleanText(st.Text)
	if summary == "" {
		summary = fmt.Sprintf("HackerNews discussion with %d comments and %d points.", st.Descendants, st.Score)
	}

	cand := domain.Candidate{
		Title:    st.Title,
		URL:      link,
		Summary:  summary,
		Source:   extractDomain(link),
		Score:    st.Score,
		Comments: st.Descendants,
	}
	if st.Time > 0 {
		cand.Published = time.Unix(st.Time, 0)
	}
	return cand
}

// cleanText strips HTML tags and entities from story text and truncates
// the result to a size fit for a database summary property.
func (c *Client) cleanText(s string) string {
	const maxSummary = 2000

	text := html.UnescapeString(c.sanitizer.Sanitize(s))
	text = strings.Join(strings.Fields(text), " ") // collapse whitespace
	return domain.TruncateText(text, maxSummary)
}

// extractDomain pulls the host out of a URL, stripping the www. prefix.
func extractDomain(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Host, "www.")
}
