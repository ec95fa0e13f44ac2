// Package datetime normalizes source-specific date text into absolute timestamps.
// Both parsers report ok=false for text they can't understand, callers substitute fetch time.
package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const day = 24 * time.Hour

// units maps relative-time suffixes to their duration. month and year are approximations.
var units = map[string]time.Duration{
	"秒":  time.Second,
	"分":  time.Minute,
	"時間": time.Hour,
	"日":  day,
	"週":  7 * day,
	"か月": 30 * day,
	"ヶ月": 30 * day,
	"カ月": 30 * day,
	"年":  365 * day,
}

var (
	relativeRe = regexp.MustCompile(`(\d+)\s*(秒|分|時間|日|週|か月|ヶ月|カ月|年)前`)
	localeDate = regexp.MustCompile(`(\d{4})\s*[年/.]\s*(\d{1,2})\s*[月/.]\s*(\d{1,2})\s*日?`)
	weekdayRe  = regexp.MustCompile(`[(（][月火水木金土日][)）]`)
)

// ParseRelative parses "<n><unit>前" text, e.g. "3時間前", into now minus n units
func ParseRelative(text string, now time.Time) (time.Time, bool) {
	m := relativeRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	return now.Add(-time.Duration(n) * units[m[2]]), true
}

// ParseAbsolute parses a locale formatted date like "2024年5月3日 12:34" or "2024/05/03 12:34".
// Text without explicit zone is interpreted in loc.
func ParseAbsolute(text string, loc *time.Location) (time.Time, bool) {
	s := normalize(text)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Resolve tries the relative scheme first, then the absolute one, and falls back to now
func Resolve(text string, now time.Time, loc *time.Location) time.Time {
	if t, ok := ParseRelative(text, now); ok {
		return t
	}
	if t, ok := ParseAbsolute(text, loc); ok {
		return t
	}
	return now
}

// normalize rewrites locale separators into an iso-like "2006-01-02 15:04" form
func normalize(text string) string {
	s := strings.TrimSpace(text)
	s = weekdayRe.ReplaceAllString(s, " ")
	s = localeDate.ReplaceAllStringFunc(s, func(match string) string {
		m := localeDate.FindStringSubmatch(match)
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("%04d-%02d-%02d ", y, mo, d)
	})
	s = strings.NewReplacer("時", ":", "分", "", "秒", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
