package listing

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div id="result">
  <div>
    <a href="/comment/detail/123"><h5>猫の動画まとめ</h5></a>
    <img src="/img/thumb1.jpg">
    <p>配信者A</p>
    <p>2024/05/03 12:34</p>
    <p>かわいい猫が <b>たくさん</b></p>
  </div>
  <div>
    <a href="https://example.com/abs"><h5>second</h5></a>
    <p>author B</p>
    <p>not a date</p>
    <p>plain text</p>
  </div>
  <div>
    <h5>no link here</h5>
    <p>author C</p>
  </div>
  <div>
    <a href="/only-link"></a>
  </div>
</div>
<div class="other"><div><a href="/x"><h5>outside</h5></a></div></div>
</body></html>`

func TestParseRows(t *testing.T) {
	rows, err := ParseRows([]byte(page))
	require.NoError(t, err)
	require.Len(t, rows, 4, "all direct children of #result are candidates")

	assert.Equal(t, RawRow{
		Title:    "猫の動画まとめ",
		Author:   "配信者A",
		DateText: "2024/05/03 12:34",
		Text:     "かわいい猫が たくさん",
		Href:     "/comment/detail/123",
		ImageSrc: "/img/thumb1.jpg",
	}, rows[0])
	assert.Equal(t, "", rows[2].Href)
	assert.Equal(t, "", rows[3].Title)
}

func TestParseRows_Empty(t *testing.T) {
	rows, err := ParseRows([]byte(`<html><body><div id="result"></div></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseRowHTML(t *testing.T) {
	row, err := ParseRowHTML(`<div><a href="/a"><h5> t </h5></a><p>x</p><p>y</p><p>z</p></div>`)
	require.NoError(t, err)
	assert.Equal(t, RawRow{Title: "t", Author: "x", DateText: "y", Text: "z", Href: "/a"}, row)
}

func TestItems(t *testing.T) {
	base, err := url.Parse("https://comments.example.com")
	require.NoError(t, err)
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	jst := time.FixedZone("JST", 9*60*60)

	rows, err := ParseRows([]byte(page))
	require.NoError(t, err)

	items := Items(rows, base, now, jst)
	require.Len(t, items, 2, "rows without title or link are dropped")

	assert.Equal(t, "猫の動画まとめ", items[0].Title)
	assert.Equal(t, "配信者A", items[0].Author)
	assert.Equal(t, "https://comments.example.com/comment/detail/123", items[0].Link)
	assert.Equal(t, `<img src="https://comments.example.com/img/thumb1.jpg" referrerpolicy="no-referrer"><br>かわいい猫が たくさん`,
		items[0].Description)
	assert.True(t, time.Date(2024, 5, 3, 12, 34, 0, 0, jst).Equal(items[0].Published))

	assert.Equal(t, "https://example.com/abs", items[1].Link)
	assert.Equal(t, "plain text", items[1].Description)
	assert.Equal(t, now, items[1].Published, "unparseable date falls back to now")
}

func TestRawRow_ItemEscapesText(t *testing.T) {
	row := RawRow{Title: "t", Href: "https://example.com/a", Text: `<script>alert(1)</script>`}
	item, ok := row.Item(nil, time.Now(), time.UTC)
	require.True(t, ok)
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", item.Description)
}

func TestRawRow_ItemRejectsIncomplete(t *testing.T) {
	_, ok := RawRow{Title: "t"}.Item(nil, time.Now(), time.UTC)
	assert.False(t, ok)
	_, ok = RawRow{Href: "/a"}.Item(nil, time.Now(), time.UTC)
	assert.False(t, ok)
}

func TestRawRow_ItemRelativeDate(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	row := RawRow{Title: "t", Href: "/a", DateText: "3時間前"}
	item, ok := row.Item(nil, now, time.UTC)
	require.True(t, ok)
	assert.Equal(t, now.Add(-3*time.Hour), item.Published)
	assert.True(t, item.Valid())
}

func TestRawRow_ItemRejectsEmptyHrefWithBase(t *testing.T) {
	base, err := url.Parse("https://comments.example.com/search")
	require.NoError(t, err)
	_, ok := RawRow{Title: "t"}.Item(base, time.Now(), time.UTC)
	assert.False(t, ok, "empty href must not resolve to the base page")
}
