package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/kwfeed/pkg/domain"
)

// errNoRows triggers another content attempt
var errNoRows = errors.New("no result rows")

// Retrier repeats a whole fetch+parse cycle while it produces zero rows.
// Upstream may answer 200 with an empty result container.
type Retrier struct {
	Attempts int
	Delay    time.Duration
}

// UntilRows calls attempt until it returns at least one row. Errors returned by
// attempt are fatal and not retried. When all attempts come back empty the result
// is *domain.ScrapeTimeoutError carrying query.
func UntilRows[T any](ctx context.Context, r Retrier, query string, attempt func(ctx context.Context) ([]T, error)) ([]T, error) {
	attempts := max(r.Attempts, 1)

	var rows []T
	var fatal error
	n := 0
	err := repeater.NewFixed(attempts, r.Delay).Do(ctx, func() error {
		n++
		res, err := attempt(ctx)
		if err != nil {
			fatal = err
			return nil
		}
		if len(res) == 0 {
			lgr.Printf("[DEBUG] no rows for %q, attempt %d/%d", query, n, attempts)
			return errNoRows
		}
		rows = res
		return nil
	})

	if fatal != nil {
		return nil, fatal
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &domain.ScrapeTimeoutError{Query: query, Attempts: n}
	}
	return rows, nil
}
