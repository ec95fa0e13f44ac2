package source

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/kwfeed/pkg/domain"
	"github.com/umputun/kwfeed/pkg/listing"
	"github.com/umputun/kwfeed/pkg/scrape"
)

// Comments searches the comment aggregation site
type Comments struct {
	getter    Getter
	searchURL string
	site      *url.URL
	retrier   scrape.Retrier
	loc       *time.Location
	now       func() time.Time
}

// CommentsParams defines Comments settings
type CommentsParams struct {
	SearchURL string // template, %s is replaced with escaped keyword
	SiteURL   string // base for relative links and images
	Retry     scrape.Retrier
	Location  *time.Location // zone of absolute dates on the site
	Now       func() time.Time
}

// NewComments makes comment site source
func NewComments(getter Getter, params CommentsParams) (*Comments, error) {
	site, err := url.Parse(params.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("parse site url %q: %w", params.SiteURL, err)
	}
	if params.Location == nil {
		params.Location = time.UTC
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Comments{
		getter:    getter,
		searchURL: params.SearchURL,
		site:      site,
		retrier:   params.Retry,
		loc:       params.Location,
		now:       params.Now,
	}, nil
}

// QueryURL returns the search page url for keyword
func (c *Comments) QueryURL(keyword string) string {
	return queryURL(c.searchURL, keyword)
}

// Search fetches the listing for keyword, retrying while the page has no result rows.
// Rows without title or link are dropped after the retry decision.
func (c *Comments) Search(ctx context.Context, keyword string) ([]domain.Item, error) {
	u := c.QueryURL(keyword)
	rows, err := scrape.UntilRows(ctx, c.retrier, keyword, func(ctx context.Context) ([]listing.RawRow, error) {
		body, err := c.getter.Get(ctx, u)
		if err != nil {
			return nil, err
		}
		return listing.ParseRows(body)
	})
	if err != nil {
		return nil, fmt.Errorf("search comments for %q: %w", keyword, err)
	}

	items := listing.Items(rows, c.site, c.now(), c.loc)
	lgr.Printf("[DEBUG] comments %q: %d rows, %d items", keyword, len(rows), len(items))
	return items, nil
}
