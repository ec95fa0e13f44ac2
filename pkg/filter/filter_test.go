package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/kwfeed/pkg/domain"
)

func titles(items []domain.Item) []string {
	res := make([]string, 0, len(items))
	for _, it := range items {
		res = append(res, it.Title)
	}
	return res
}

func TestAuthorsAndTitles(t *testing.T) {
	items := []domain.Item{
		{Title: "one", Author: "Good Channel"},
		{Title: "two", Author: "Spam Channel Official"},
		{Title: "切り抜き three", Author: "Other"},
		{Title: "four", Author: ""},
		{Title: "five", Author: "Good Channel"},
	}

	res := Apply(items, Authors([]string{"Spam Channel"}), Titles([]string{"切り抜き"}))
	assert.Equal(t, []string{"one", "four", "five"}, titles(res), "order preserved")

	assert.Equal(t, items, Apply(items), "no stages keeps everything")
	assert.Len(t, Apply(items, Authors(nil), Titles([]string{""})), 5, "empty entries never match")
}

func TestFresh(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	items := []domain.Item{
		{Title: "recent", Published: now.Add(-time.Hour), PublishedText: "1時間前"},
		{Title: "old", Published: now.Add(-72 * time.Hour), PublishedText: "3日前"},
		{Title: "old live", Published: now.Add(-72 * time.Hour), PublishedText: "3日前 ライブ配信"},
		{Title: "no text", Published: now.Add(-100 * time.Hour)},
		{Title: "edge", Published: now.Add(-48 * time.Hour), PublishedText: "2日前"},
	}

	res := Apply(items, Fresh(now, 48*time.Hour, "ライブ"))
	assert.Equal(t, []string{"recent", "old live", "no text", "edge"}, titles(res))
}
