// Package enrich fills nearby pages with cleaned intro extracts. It
// coordinates the extract service, the HTML cleaner, and the markdown
// converter over a bounded worker pool.
package enrich

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dtomczyk/placelist"
	"github.com/dtomczyk/placelist/wikipedia"
	"golang.org/x/sync/errgroup"
)

// Enricher fetches and attaches intro extracts to pages.
type Enricher struct {
	Extracts  placelist.ExtractService
	Extractor placelist.Extractor
	Converter placelist.Converter

	// Concurrency bounds the number of in-flight extract fetches.
	// Defaults to 4.
	Concurrency int

	// RetryDelays overrides the backoff schedule for extract fetches.
	RetryDelays []time.Duration
}

// EnrichPages fills Page.Extract for each page whose intro extract can
// be fetched, cleaned, and converted. Enrichment is best effort: a page
// that fails any step is left un-enriched and never fails the batch.
// Returns the number of pages enriched.
func (e *Enricher) EnrichPages(ctx context.Context, pages []*placelist.Page) int {
	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	fetch := func(ctx context.Context, title string) (string, error) {
		if e.RetryDelays != nil {
			return wikipedia.ExtractWithRetryDelays(ctx, title, e.Extracts.IntroExtract, e.RetryDelays)
		}
		return wikipedia.ExtractWithRetry(ctx, title, e.Extracts.IntroExtract)
	}

	var enriched atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, page := range pages {
		g.Go(func() error {
			html, err := fetch(gctx, page.Title)
			if err != nil {
				return nil
			}

			cleaned, err := e.Extractor.Extract(html)
			if err != nil {
				return nil
			}

			markdown, err := e.Converter.Convert(cleaned)
			if err != nil {
				return nil
			}

			page.Extract = strings.TrimSpace(markdown)
			enriched.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(enriched.Load())
}
