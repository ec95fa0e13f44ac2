// Package source adapts the scraped sites to feed items: query urls, page
// fetching and mapping of extracted records.
package source

import (
	"context"
	"net/url"
	"strings"
)

// Getter fetches a page body
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// queryURL substitutes the escaped keyword for the first %s of the template,
// or appends it if there is no placeholder. Templates may carry other escapes like %3D.
func queryURL(tmpl, keyword string) string {
	esc := url.QueryEscape(keyword)
	if strings.Contains(tmpl, "%s") {
		return strings.Replace(tmpl, "%s", esc, 1)
	}
	return tmpl + esc
}
