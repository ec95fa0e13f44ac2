package source

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/tidwall/gjson"

	"github.com/umputun/kwfeed/pkg/datetime"
	"github.com/umputun/kwfeed/pkg/domain"
	"github.com/umputun/kwfeed/pkg/initdata"
	"github.com/umputun/kwfeed/pkg/listing"
)

// rendererKey marks a single video result in the search page data
const rendererKey = "videoRenderer"

// Videos searches the video platform by scraping its embedded initial data
type Videos struct {
	getter    Getter
	searchURL string
	watchURL  string
	extractor *initdata.Extractor
	now       func() time.Time
}

// VideosParams defines Videos settings
type VideosParams struct {
	SearchURL string // template, %s is replaced with escaped keyword
	WatchURL  string // video page, id is passed as v query param
	Marker    string // global variable holding initial data
	Now       func() time.Time
}

// NewVideos makes video search source
func NewVideos(getter Getter, params VideosParams) *Videos {
	if params.Marker == "" {
		params.Marker = initdata.DefaultMarker
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Videos{
		getter:    getter,
		searchURL: params.SearchURL,
		watchURL:  params.WatchURL,
		extractor: initdata.NewExtractor(params.Marker),
		now:       params.Now,
	}
}

// QueryURL returns the search page url for keyword
func (v *Videos) QueryURL(keyword string) string {
	return queryURL(v.searchURL, keyword)
}

// Search fetches results for keyword. With minDuration > 0 videos not longer than
// minDuration are dropped, videos without duration label are kept.
func (v *Videos) Search(ctx context.Context, keyword string, minDuration time.Duration) ([]domain.Item, error) {
	body, err := v.getter.Get(ctx, v.QueryURL(keyword))
	if err != nil {
		return nil, fmt.Errorf("search videos for %q: %w", keyword, err)
	}

	root, err := v.extractor.Extract(body)
	if err != nil {
		return nil, fmt.Errorf("search videos for %q: %w", keyword, err)
	}

	now := v.now()
	renderers := initdata.Collect(root, rendererKey)
	items := make([]domain.Item, 0, len(renderers))
	for _, r := range renderers {
		if minDuration > 0 {
			if d, ok := ParseDuration(r.Get("lengthText.simpleText").String()); ok && d <= minDuration {
				continue
			}
		}
		if item, ok := v.item(r, now); ok {
			items = append(items, item)
		}
	}
	lgr.Printf("[DEBUG] videos %q: %d renderers, %d items", keyword, len(renderers), len(items))
	return items, nil
}

// item maps a renderer record, records without video id have no link and are skipped
func (v *Videos) item(r gjson.Result, now time.Time) (domain.Item, bool) {
	var link string
	if id := r.Get("videoId").String(); id != "" {
		link = v.watchURL + "?v=" + url.QueryEscape(id)
	}

	title := firstNonEmpty(r.Get("title.runs.0.text").String(), r.Get("title.simpleText").String(), "No Title")
	author := firstNonEmpty(r.Get("ownerText.runs.0.text").String(), "Unknown")

	var snippet strings.Builder
	for _, run := range r.Get("detailedMetadataSnippets.0.snippetText.runs").Array() {
		snippet.WriteString(run.Get("text").String())
	}
	desc := html.EscapeString(snippet.String())
	if thumb := r.Get("thumbnail.thumbnails.0.url").String(); thumb != "" {
		desc = listing.ImageDescription(thumb, desc)
	}

	pubText := r.Get("publishedTimeText.simpleText").String()
	item := domain.Item{
		Title:         title,
		Author:        author,
		Description:   desc,
		Published:     datetime.Resolve(pubText, now, time.UTC),
		Link:          link,
		PublishedText: pubText,
	}
	return item, item.Valid()
}

// ParseDuration parses a "MM:SS" or "H:MM:SS" label
func ParseDuration(label string) (time.Duration, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	parts := strings.Split(label, ":")
	if len(parts) > 3 {
		return 0, false
	}
	secs := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, false
		}
		secs = secs*60 + n
	}
	return time.Duration(secs) * time.Second, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
