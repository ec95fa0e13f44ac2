package initdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/umputun/kwfeed/pkg/domain"
)

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor(DefaultMarker)

	t.Run("found", func(t *testing.T) {
		page := `<html><script>var foo = 1;</script><script>var ytInitialData = {"a":{"b":"};"}};</script><script>var x = {};</script></html>`
		res, err := e.Extract([]byte(page))
		require.NoError(t, err)
		assert.Equal(t, "};", res.Get("a.b").String())
	})

	t.Run("missing marker", func(t *testing.T) {
		_, err := e.Extract([]byte(`<html><script>var other = {"a":1};</script></html>`))
		require.Error(t, err)
		var markupErr *domain.MarkupNotFoundError
		require.ErrorAs(t, err, &markupErr)
		assert.Equal(t, "ytInitialData", markupErr.Marker)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := e.Extract([]byte(`<script>var ytInitialData = {"a": [1, };</script>`))
		require.Error(t, err)
		var markupErr *domain.MarkupNotFoundError
		assert.False(t, errors.As(err, &markupErr), "malformed json is not a markup error")
	})
}

func TestCollect_MixedDepths(t *testing.T) {
	// renderers at the root, inside an array and deep inside a shelf
	doc := `{"videoRenderer":{"videoId":"d0"},` +
		`"contents":{"list":[{"videoRenderer":{"videoId":"d2"}},` +
		`{"shelf":{"items":[{"inner":{"deeper":{"videoRenderer":{"videoId":"d5"}}}}]}}]},` +
		`"other":[1,"two",null,{"channelRenderer":{"id":"c"}}]}`

	root, err := NewExtractor("data").Extract([]byte(`<script>var data = ` + doc + `;</script>`))
	require.NoError(t, err)

	found := Collect(root, "videoRenderer")
	ids := make([]string, 0, len(found))
	for _, r := range found {
		ids = append(ids, r.Get("videoId").String())
	}
	assert.Equal(t, []string{"d0", "d2", "d5"}, ids)
}

func TestCollect_NestedRecords(t *testing.T) {
	root, err := NewExtractor("d").Extract([]byte(`<script>var d = {"r":{"id":1,"x":{"r":{"id":2}}}};</script>`))
	require.NoError(t, err)
	found := Collect(root, "r")
	require.Len(t, found, 2)
	assert.Equal(t, int64(1), found[0].Get("id").Int())
	assert.Equal(t, int64(2), found[1].Get("id").Int())
}

func TestWalk_Kinds(t *testing.T) {
	root, err := NewExtractor("d").Extract([]byte(`<script>var d = {"a":[1,{"b":true}]};</script>`))
	require.NoError(t, err)

	counts := map[Kind]int{}
	Walk(root, func(n gjson.Result) { counts[KindOf(n)]++ })
	assert.Equal(t, 2, counts[Object])
	assert.Equal(t, 1, counts[Array])
	assert.Equal(t, 2, counts[Scalar])
}
