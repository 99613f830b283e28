// Package notion is the external database client. Article records live as
// pages in a Notion database; the processing status is kept in the
// "AI Processing" select property.
package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jomei/notionapi"

	"github.com/umputun/newsdigest/pkg/domain"
)

// property names in the target database
const (
	propTitle     = "Name"
	propURL       = "URL"
	propSummary   = "Summary"
	propCategory  = "Category"
	propSource    = "Source"
	propPublished = "Published Date"
	propStatus    = "AI Processing"
)

// errTerminal marks request failures that retrying can't fix (auth, bad request)
var errTerminal = errors.New("terminal notion error")

// Client wraps the Notion API for article records.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

// NewClient creates a Notion client for the given integration token and database.
func NewClient(token, databaseID string, httpClient *http.Client) *Client {
	opts := []notionapi.ClientOption{}
	if httpClient != nil {
		opts = append(opts, notionapi.WithHTTPClient(httpClient))
	}
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(token), opts...),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

// CreateRecord creates a page for the candidate with status "Not Started"
// and returns the new page id. The client does no server-side dedupe; callers
// are expected to pre-filter against the seen-URL cache.
func (c *Client) CreateRecord(ctx context.Context, cand domain.Candidate, category domain.Category) (string, error) {
	properties := notionapi.Properties{
		propTitle:    notionapi.TitleProperty{Title: richText(cand.Title)},
		propURL:      notionapi.URLProperty{URL: cand.URL},
		propSummary:  notionapi.RichTextProperty{RichText: richText(cand.Summary)},
		propCategory: notionapi.SelectProperty{Select: notionapi.Option{Name: string(category)}},
		propSource:   notionapi.SelectProperty{Select: notionapi.Option{Name: cand.Source}},
		propStatus:   notionapi.SelectProperty{Select: notionapi.Option{Name: string(domain.StatusNotStarted)}},
	}
	if !cand.Published.IsZero() {
		start := notionapi.Date(cand.Published)
		properties[propPublished] = notionapi.DateProperty{Date: &notionapi.DateObject{Start: &start}}
	}

	var page *notionapi.Page
	err := c.retrier().Do(ctx, func() error {
		var reqErr error
		page, reqErr = c.api.Page.Create(ctx, &notionapi.PageCreateRequest{
			Parent:     notionapi.Parent{Type: notionapi.ParentTypeDatabaseID, DatabaseID: c.databaseID},
			Properties: properties,
		})
		return classify(reqErr)
	}, errTerminal)
	if err != nil {
		return "", fmt.Errorf("create record for %s: %w", cand.URL, err)
	}

	return page.ID.String(), nil
}

// ListRecords returns all records with the given status, following pagination.
func (c *Client) ListRecords(ctx context.Context, status domain.Status) ([]domain.Record, error) {
	var records []domain.Record
	var cursor notionapi.Cursor

	for {
		req := &notionapi.DatabaseQueryRequest{
			Filter: notionapi.PropertyFilter{
				Property: propStatus,
				Select:   &notionapi.SelectFilterCondition{Equals: string(status)},
			},
			StartCursor: cursor,
		}

		resp, err := c.api.Database.Query(ctx, c.databaseID, req)
		if err != nil {
			return nil, fmt.Errorf("query records with status %q: %w", status, err)
		}

		for _, page := range resp.Results {
			records = append(records, toRecord(&page, status))
		}

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	return records, nil
}

// SetStatus updates the record's status property.
func (c *Client) SetStatus(ctx context.Context, pageID string, status domain.Status) error {
	err := c.retrier().Do(ctx, func() error {
		_, reqErr := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
			Properties: notionapi.Properties{
				propStatus: notionapi.SelectProperty{Select: notionapi.Option{Name: string(status)}},
			},
		})
		return classify(reqErr)
	}, errTerminal)
	if err != nil {
		return fmt.Errorf("set status %q on %s: %w", status, pageID, err)
	}
	return nil
}

// AppendAnalysis converts the three analysis documents to blocks and appends
// them to the record page.
func (c *Client) AppendAnalysis(ctx context.Context, pageID string, analysis domain.Analysis) error {
	docs := []string{
		"# Detailed Summary\n" + analysis.Summary,
		"# Report Outline\n" + analysis.Outline,
		"# Insights and Questions\n" + analysis.Insights,
	}

	for _, doc := range docs {
		blocks := markdownToBlocks(doc)
		if len(blocks) == 0 {
			continue
		}

		err := c.retrier().Do(ctx, func() error {
			_, reqErr := c.api.Block.AppendChildren(ctx, notionapi.BlockID(pageID),
				&notionapi.AppendBlockChildrenRequest{Children: blocks})
			return classify(reqErr)
		}, errTerminal)
		if err != nil {
			return fmt.Errorf("append analysis blocks to %s: %w", pageID, err)
		}
	}

	return nil
}

// retrier builds the standard backoff policy for write requests.
func (c *Client) retrier() *repeater.Repeater {
	return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
}

// classify marks non-retryable API failures as terminal so the repeater
// stops early. Rate limits and server-side errors stay retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return err
		default:
			return fmt.Errorf("%w: %w", errTerminal, err)
		}
	}
	return err // network-level errors are retryable
}

// toRecord maps a Notion page to the domain record.
func toRecord(page *notionapi.Page, status domain.Status) domain.Record {
	rec := domain.Record{ID: page.ID.String(), Status: status}

	if p, ok := page.Properties[propTitle].(*notionapi.TitleProperty); ok && len(p.Title) > 0 {
		rec.Title = p.Title[0].PlainText
		if rec.Title == "" && p.Title[0].Text != nil {
			rec.Title = p.Title[0].Text.Content
		}
	}
	if p, ok := page.Properties[propURL].(*notionapi.URLProperty); ok {
		rec.URL = p.URL
	}

	return rec
}

// richText wraps a plain string into Notion's rich text form.
func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{{Text: &notionapi.Text{Content: s}}}
}
