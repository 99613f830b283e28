// Package proc runs the per-invocation pipeline: collect new articles,
// register unseen ones in the external database, then process records
// flagged "Processing" through content extraction and LLM analysis.
package proc

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . Collector
//go:generate moq -out mocks/seen_cache.go -pkg mocks -skip-ensure -fmt goimports . SeenCache
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/analyst.go -pkg mocks -skip-ensure -fmt goimports . Analyst
//go:generate moq -out mocks/content_cache.go -pkg mocks -skip-ensure -fmt goimports . ContentCache

// Collector produces article candidates from one source (RSS, aggregator).
type Collector interface {
	Name() string
	Collect(ctx context.Context) ([]domain.Candidate, error)
}

// SeenCache is the persisted set of already-registered article URLs.
type SeenCache interface {
	Seen(url string) bool
	MarkSeen(url string) error
}

// Database is the external article database (Notion).
type Database interface {
	CreateRecord(ctx context.Context, cand domain.Candidate, category domain.Category) (string, error)
	ListRecords(ctx context.Context, status domain.Status) ([]domain.Record, error)
	SetStatus(ctx context.Context, pageID string, status domain.Status) error
	AppendAnalysis(ctx context.Context, pageID string, analysis domain.Analysis) error
}

// Extractor retrieves readable article text for a URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Analyst generates the three analysis documents for article text.
type Analyst interface {
	Summarize(ctx context.Context, text string) (string, error)
	Outline(ctx context.Context, text string) (string, error)
	Insights(ctx context.Context, text string) (string, error)
}

// ContentCache stores fetched article text between runs.
type ContentCache interface {
	Get(ctx context.Context, url string) (text string, found bool, err error)
	Put(ctx context.Context, url, text string) error
}

// Processor orchestrates one run. Strictly sequential, one external call at
// a time; failures on individual sources or records are logged and skipped,
// never fatal to the run.
type Processor struct {
	collectors   []Collector
	seen         SeenCache
	db           Database
	extractor    Extractor
	analyst      Analyst
	contentCache ContentCache // optional, nil disables caching
	autoProcess  map[string]bool
	recordDelay  time.Duration
	dryRun       bool
}

// Params holds Processor dependencies and run options.
type Params struct {
	Collectors   []Collector
	Seen         SeenCache
	DB           Database
	Extractor    Extractor
	Analyst      Analyst
	ContentCache ContentCache
	AutoProcess  map[string]bool // collector name -> flip new records to Processing
	RecordDelay  time.Duration   // pause between processed records
	DryRun       bool
}

// New creates a processor with the provided dependencies.
func New(p Params) *Processor {
	return &Processor{
		collectors:   p.Collectors,
		seen:         p.Seen,
		db:           p.DB,
		extractor:    p.Extractor,
		analyst:      p.Analyst,
		contentCache: p.ContentCache,
		autoProcess:  p.AutoProcess,
		recordDelay:  p.RecordDelay,
		dryRun:       p.DryRun,
	}
}

// Run executes one full pass: registration of new articles, then processing
// of records flagged "Processing". Individual failures don't fail the run;
// the returned error is non-nil only on context cancellation.
func (p *Processor) Run(ctx context.Context) error {
	checked, registered := p.registerNewArticles(ctx)
	processed, failed := p.processPendingRecords(ctx)

	lgr.Printf("[INFO] run completed: %d candidates checked, %d registered, %d processed, %d left in processing",
		checked, registered, processed, failed)

	return ctx.Err()
}

// registerNewArticles collects from every source and registers candidates
// not present in the seen-URL cache. A candidate is marked seen only after
// the database write succeeded, so a failed write is retried on a later run.
func (p *Processor) registerNewArticles(ctx context.Context) (checked, registered int) {
	for _, collector := range p.collectors {
		if ctx.Err() != nil {
			return checked, registered
		}

		candidates, err := collector.Collect(ctx)
		if err != nil {
			lgr.Printf("[WARN] %v from %s: %v", ErrCollection, collector.Name(), err)
			// a collector may return partial results along with the error
		}
		lgr.Printf("[INFO] collected %d candidates from %s", len(candidates), collector.Name())

		for _, cand := range candidates {
			checked++
			if cand.URL == "" {
				lgr.Printf("[DEBUG] skipping candidate without url: %q", cand.Title)
				continue
			}
			if p.seen.Seen(cand.URL) {
				lgr.Printf("[DEBUG] already processed: %s", cand.URL)
				continue
			}

			if p.dryRun {
				lgr.Printf("[INFO] dry run: would register %q (%s)", cand.Title, cand.URL)
				continue
			}

			if p.registerCandidate(ctx, collector.Name(), cand) {
				registered++
			}
		}
	}
	return checked, registered
}

// registerCandidate creates the database record for one candidate.
func (p *Processor) registerCandidate(ctx context.Context, source string, cand domain.Candidate) bool {
	category := domain.Categorize(cand.Title, cand.Summary)

	id, err := p.db.CreateRecord(ctx, cand, category)
	if err != nil {
		// not marked seen, the candidate will be re-offered next run
		lgr.Printf("[WARN] %v for %s: %v", ErrRegistration, cand.URL, err)
		return false
	}

	if err := p.seen.MarkSeen(cand.URL); err != nil {
		lgr.Printf("[WARN] failed to mark %s seen, expect a duplicate next run: %v", cand.URL, err)
	}
	lgr.Printf("[INFO] registered %q [%s] as %s", cand.Title, category, id)

	if p.autoProcess[source] {
		if err := p.db.SetStatus(ctx, id, domain.StatusProcessing); err != nil {
			lgr.Printf("[WARN] failed to flip %s to processing: %v", id, err)
		}
	}
	return true
}

// processPendingRecords walks records flagged "Processing" one by one.
func (p *Processor) processPendingRecords(ctx context.Context) (processed, failed int) {
	records, err := p.db.ListRecords(ctx, domain.StatusProcessing)
	if err != nil {
		lgr.Printf("[ERROR] failed to list processing records: %v", err)
		return 0, 0
	}
	if len(records) == 0 {
		lgr.Printf("[INFO] no records in processing")
		return 0, 0
	}
	lgr.Printf("[INFO] found %d records to process", len(records))

	if p.dryRun {
		for _, rec := range records {
			lgr.Printf("[INFO] dry run: would process %q (%s)", rec.Title, rec.URL)
		}
		return 0, 0
	}

	for i, rec := range records {
		if ctx.Err() != nil {
			return processed, failed + len(records) - i
		}
		if i > 0 && p.recordDelay > 0 {
			// spread the external API calls out a bit
			select {
			case <-ctx.Done():
				return processed, failed + len(records) - i
			case <-time.After(p.recordDelay):
			}
		}

		if err := p.processRecord(ctx, rec); err != nil {
			// status untouched, the record stays in processing for a future run
			lgr.Printf("[WARN] record %s (%s) left in processing: %v", rec.ID, rec.URL, err)
			failed++
			continue
		}
		lgr.Printf("[INFO] completed %q (%s)", rec.Title, rec.ID)
		processed++
	}
	return processed, failed
}

// processRecord fetches content and runs all three analyses; the record is
// advanced to "Completed" only when everything succeeded.
func (p *Processor) processRecord(ctx context.Context, rec domain.Record) error {
	if rec.URL == "" {
		return fmt.Errorf("%w: record has no url", ErrFetch)
	}

	text, err := p.articleText(ctx, rec.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	var analysis domain.Analysis
	if analysis.Summary, err = p.analyst.Summarize(ctx, text); err != nil {
		return fmt.Errorf("%w: summary: %w", ErrAnalysis, err)
	}
	if analysis.Outline, err = p.analyst.Outline(ctx, text); err != nil {
		return fmt.Errorf("%w: outline: %w", ErrAnalysis, err)
	}
	if analysis.Insights, err = p.analyst.Insights(ctx, text); err != nil {
		return fmt.Errorf("%w: insights: %w", ErrAnalysis, err)
	}

	if err := p.db.AppendAnalysis(ctx, rec.ID, analysis); err != nil {
		return fmt.Errorf("append analysis: %w", err)
	}
	if err := p.db.SetStatus(ctx, rec.ID, domain.StatusCompleted); err != nil {
		return fmt.Errorf("set status completed: %w", err)
	}
	return nil
}

// articleText returns the record's readable text, preferring the local
// content cache so retried records don't re-download the page.
func (p *Processor) articleText(ctx context.Context, url string) (string, error) {
	if p.contentCache != nil {
		text, found, err := p.contentCache.Get(ctx, url)
		if err != nil {
			lgr.Printf("[WARN] content cache lookup failed for %s: %v", url, err)
		}
		if found {
			lgr.Printf("[DEBUG] using cached content for %s", url)
			return text, nil
		}
	}

	text, err := p.extractor.Extract(ctx, url)
	if err != nil {
		return "", err
	}

	if p.contentCache != nil {
		if err := p.contentCache.Put(ctx, url, text); err != nil {
			lgr.Printf("[WARN] failed to cache content for %s: %v", url, err)
		}
	}
	return text, nil
}
