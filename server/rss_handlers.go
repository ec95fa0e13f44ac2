package server

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/kwfeed/pkg/domain"
)

type feedFunc func(ctx context.Context, ttl time.Duration, keyword string) (domain.Feed, error)

// feedHandler serves the feed built by load as RSS. Routes without ttl pass zero ttl.
func (s *Server) feedHandler(withTTL bool, load feedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := strings.TrimSpace(r.PathValue("keyword"))
		if keyword == "" {
			renderError(w, r, fmt.Errorf("%w: empty keyword", errBadRequest), http.StatusBadRequest)
			return
		}

		var ttl time.Duration
		if withTTL {
			defaultTTL, minTTL := s.config.TTLBounds()
			ttl = parseTTL(r.PathValue("ttl"), defaultTTL, minTTL)
		}

		f, err := load(r.Context(), ttl, keyword)
		if err != nil {
			code := statusCode(err)
			lgr.Printf("[WARN] failed to build feed for %s: %v", r.URL.Path, err)
			renderError(w, r, err, code)
			return
		}

		rss, err := s.generator.GenerateRSS(f, s.selfLink(r), ttl)
		if err != nil {
			lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
			http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		if _, err := w.Write([]byte(rss)); err != nil {
			lgr.Printf("[ERROR] failed to write RSS response: %v", err)
		}
	}
}

// parseTTL converts ttl seconds from the path. Non-numeric values, values below minTTL
// and values not representable as a duration fall back to defaultTTL.
func parseTTL(raw string, defaultTTL, minTTL time.Duration) time.Duration {
	secs, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || secs > math.MaxInt64/int64(time.Second) {
		return defaultTTL
	}
	ttl := time.Duration(secs) * time.Second
	if ttl < minTTL {
		return defaultTTL
	}
	return ttl
}

// selfLink is the public url of the requested feed
func (s *Server) selfLink(r *http.Request) string {
	base := strings.TrimSuffix(s.config.GetBaseURL(), "/")
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + r.URL.EscapedPath()
}
