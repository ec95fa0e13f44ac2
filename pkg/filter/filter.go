// Package filter drops feed items by author/title blocklists and freshness.
// Every stage keeps the order of surviving items.
package filter

import (
	"strings"
	"time"

	"github.com/umputun/kwfeed/pkg/domain"
)

// Stage transforms an item list
type Stage func(items []domain.Item) []domain.Item

// Apply runs stages in order
func Apply(items []domain.Item, stages ...Stage) []domain.Item {
	for _, s := range stages {
		items = s(items)
	}
	return items
}

// Authors drops items whose author contains any of the blocklist entries
func Authors(blocklist []string) Stage {
	return keep(func(it domain.Item) bool { return !containsAny(it.Author, blocklist) })
}

// Titles drops items whose title contains any of the blocklist entries
func Titles(blocklist []string) Stage {
	return keep(func(it domain.Item) bool { return !containsAny(it.Title, blocklist) })
}

// Fresh drops items older than window. Items without published text or with
// liveMarker in it are always kept, live broadcasts have no meaningful age.
func Fresh(now time.Time, window time.Duration, liveMarker string) Stage {
	return keep(func(it domain.Item) bool {
		if it.PublishedText == "" || (liveMarker != "" && strings.Contains(it.PublishedText, liveMarker)) {
			return true
		}
		return now.Sub(it.Published) <= window
	})
}

func keep(pred func(domain.Item) bool) Stage {
	return func(items []domain.Item) []domain.Item {
		res := make([]domain.Item, 0, len(items))
		for _, it := range items {
			if pred(it) {
				res = append(res, it)
			}
		}
		return res
	}
}

// containsAny is a substring match, a partial name blocks every alias of a channel
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
