// Package listing extracts result rows from the comment search page.
//
// Fields are taken by position, not by semantic markup: author is the 1st paragraph,
// date text the 2nd and description text the 3rd. All positional knowledge lives in
// ParseRow, markup changes should touch only that function.
package listing

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"github.com/umputun/kwfeed/pkg/datetime"
	"github.com/umputun/kwfeed/pkg/domain"
)

// RowSelector matches a single result row on the listing page
const RowSelector = "#result > div"

// paragraph positions inside a row
const (
	authorPos = 0
	datePos   = 1
	textPos   = 2
)

// RawRow is a listing row as found on the page, all fields may be empty
type RawRow struct {
	Title    string
	Author   string
	DateText string
	Text     string
	Href     string
	ImageSrc string
}

// ParseRows parses a listing page and returns every candidate row, including rows
// missing title or link. The count of candidates is what the caller retries on.
func ParseRows(page []byte) ([]RawRow, error) {
	root, err := xhtml.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	sel := doc.Find(RowSelector)
	rows := make([]RawRow, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, ParseRow(s))
	})
	return rows, nil
}

// ParseRowHTML parses a single row html fragment
func ParseRowHTML(fragment string) (RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return RawRow{}, fmt.Errorf("parse row: %w", err)
	}
	return ParseRow(doc.Selection), nil
}

// ParseRow extracts fields of one row by their fixed structural positions
func ParseRow(s *goquery.Selection) RawRow {
	p := s.Find("p")
	href, _ := s.Find("a").First().Attr("href")
	img, _ := s.Find("img").First().Attr("src")
	return RawRow{
		Title:    strings.TrimSpace(s.Find("h5").First().Text()),
		Author:   strings.TrimSpace(p.Eq(authorPos).Text()),
		DateText: strings.TrimSpace(p.Eq(datePos).Text()),
		Text:     strings.TrimSpace(p.Eq(textPos).Text()),
		Href:     strings.TrimSpace(href),
		ImageSrc: strings.TrimSpace(img),
	}
}

// Item converts the row into a feed item. Relative href and image src are resolved
// against base, unparseable date text becomes now. Rows without title or href
// are rejected with ok=false.
func (r RawRow) Item(base *url.URL, now time.Time, loc *time.Location) (domain.Item, bool) {
	var link string
	if r.Href != "" {
		resolved, err := resolve(base, r.Href)
		if err != nil {
			return domain.Item{}, false
		}
		link = resolved
	}

	desc := html.EscapeString(r.Text)
	if r.ImageSrc != "" {
		if img, err := resolve(base, r.ImageSrc); err == nil {
			desc = ImageDescription(img, desc)
		}
	}

	item := domain.Item{
		Title:       r.Title,
		Author:      r.Author,
		Description: desc,
		Published:   datetime.Resolve(r.DateText, now, loc),
		Link:        link,
	}
	return item, item.Valid()
}

// Items converts rows to items, dropping rows without title or link
func Items(rows []RawRow, base *url.URL, now time.Time, loc *time.Location) []domain.Item {
	res := make([]domain.Item, 0, len(rows))
	for _, r := range rows {
		if item, ok := r.Item(base, now, loc); ok {
			res = append(res, item)
		}
	}
	return res
}

// ImageDescription prefixes text with an inline image loaded without referrer
func ImageDescription(imageURL, text string) string {
	return fmt.Sprintf(`<img src="%s" referrerpolicy="no-referrer"><br>%s`, html.EscapeString(imageURL), text)
}

func resolve(base *url.URL, ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", ref, err)
	}
	if base == nil {
		return u.String(), nil
	}
	return base.ResolveReference(u).String(), nil
}
