// Package initdata locates a JSON blob assigned to a global variable inside an html page
// and collects nested records from it regardless of their depth.
package initdata

import (
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/umputun/kwfeed/pkg/domain"
)

// DefaultMarker is the variable carrying initial data on the video search page
const DefaultMarker = "ytInitialData"

// Extractor finds `var <marker> = {...};</script>` assignments
type Extractor struct {
	marker string
	re     *regexp.Regexp
}

// NewExtractor makes an extractor for the given global variable name
func NewExtractor(marker string) *Extractor {
	return &Extractor{
		marker: marker,
		re:     regexp.MustCompile(`(?s)var ` + regexp.QuoteMeta(marker) + `\s*=\s*(\{.*?\});\s*</script>`),
	}
}

// Extract returns the parsed JSON tree. A missing assignment is reported as
// *domain.MarkupNotFoundError, malformed JSON as a plain error.
func (e *Extractor) Extract(page []byte) (gjson.Result, error) {
	m := e.re.FindSubmatch(page)
	if m == nil || len(m[1]) == 0 {
		return gjson.Result{}, &domain.MarkupNotFoundError{Marker: e.marker}
	}
	if !gjson.ValidBytes(m[1]) {
		return gjson.Result{}, fmt.Errorf("invalid %s json", e.marker)
	}
	return gjson.ParseBytes(m[1]), nil
}
