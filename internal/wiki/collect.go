package wiki

import (
	"context"
	"fmt"
	"time"

	"github.com/liammcnabb/spider-man-villain-viz/internal/extract"
	"github.com/liammcnabb/spider-man-villain-viz/internal/villains"
)

// PageExtractor is the slice of the extractor the fetch loop needs.
type PageExtractor interface {
	ExtractPage(markup string) extract.Page
}

type CollectOptions struct {
	Series string
	First  int
	Last   int
	Delay  time.Duration

	// OnPage is called once per attempted issue, fetched or not.
	OnPage func(rec villains.Record, err error)
}

// Collect runs the sequential fetch loop over the issue range, waiting
// Delay between requests. A failed fetch contributes a record with an
// empty antagonist list instead of aborting the run; only context
// cancellation stops it early. Records come back in ascending issue order,
// ready for aggregation.
func Collect(ctx context.Context, f Fetcher, ex PageExtractor, opts CollectOptions) ([]villains.Record, error) {
	records := make([]villains.Record, 0, opts.Last-opts.First+1)

	for issue := opts.First; issue <= opts.Last; issue++ {
		if issue > opts.First && opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return records, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}

		rec := villains.Record{
			Issue:       issue,
			Title:       fmt.Sprintf("%s #%d (unavailable)", opts.Series, issue),
			Antagonists: []string{},
		}

		markup, err := f.FetchIssue(ctx, opts.Series, issue)
		if err == nil {
			page := ex.ExtractPage(markup)
			if page.Title != "" {
				rec.Title = page.Title
			} else {
				rec.Title = fmt.Sprintf("%s #%d", opts.Series, issue)
			}
			rec.Antagonists = page.Names
		} else if ctx.Err() != nil {
			return records, ctx.Err()
		}

		if opts.OnPage != nil {
			opts.OnPage(rec, err)
		}

		records = append(records, rec)
	}

	return records, nil
}
