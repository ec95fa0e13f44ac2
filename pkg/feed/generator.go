package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/kwfeed/pkg/domain"
)

// Generator renders feeds as RSS 2.0
type Generator struct {
	policy *bluemonday.Policy
	now    func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator() *Generator {
	// descriptions are built from scraped text and may carry an inline thumbnail
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("referrerpolicy").Matching(bluemonday.SpaceSeparatedTokens).OnElements("img")
	return &Generator{policy: policy, now: time.Now}
}

// GenerateRSS creates an RSS 2.0 document for the feed. selfLink is the url the feed is served from,
// ttl is advertised to readers as refresh hint when positive.
func (g *Generator) GenerateRSS(f domain.Feed, selfLink string, ttl time.Duration) (string, error) {
	items := make([]*RSSItem, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, g.convertToRSSItem(item))
	}

	doc := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         f.Title,
			Link:          f.Link,
			Description:   fmt.Sprintf("Search results for %s", f.Title),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			TTL:           int(ttl / time.Minute),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a domain item to an RSS item, link doubles as guid
func (g *Generator) convertToRSSItem(item domain.Item) *RSSItem {
	return &RSSItem{
		Title:       item.Title,
		Link:        item.Link,
		GUID:        item.Link,
		Description: g.policy.Sanitize(item.Description),
		Author:      item.Author,
		PubDate:     item.Published.Format(time.RFC1123Z),
	}
}
