package goquery_test

import (
	"testing"

	"github.com/taimg1/game-platform-analyzer/goquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("strips scripts styles and page chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>.a{color:red}</style></head><body>
			<header>Store Header</header>
			<script>alert("hi")</script>
			<main><h1>Hollow Knight</h1><p>$14.99</p></main>
			<aside>Ads</aside>
			<form><input name="q"></form>
			<footer>© Store</footer>
		</body></html>`

		out, err := goquery.NewCleaner().Clean(html)
		require.NoError(t, err)

		assert.Contains(t, out, "Hollow Knight")
		assert.Contains(t, out, "$14.99")
		assert.NotContains(t, out, "alert")
		assert.NotContains(t, out, "color:red")
		assert.NotContains(t, out, "Store Header")
		assert.NotContains(t, out, "Ads")
		assert.NotContains(t, out, "© Store")
		assert.NotContains(t, out, "<form")
	})

	t.Run("keeps nav marked as pagination by attributes", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<nav class="site-menu"><a href="/about">About</a><a href="/news">News</a></nav>
			<nav class="pagination"><a href="?page=2">2</a></nav>
		</body>`

		out, err := goquery.NewCleaner().Clean(html)
		require.NoError(t, err)

		assert.Contains(t, out, `class="pagination"`)
		assert.NotContains(t, out, "site-menu")
	})

	t.Run("keeps nav with next link text", func(t *testing.T) {
		t.Parallel()

		html := `<body><nav><a href="?page=2">Next »</a></nav></body>`

		out, err := goquery.NewCleaner().Clean(html)
		require.NoError(t, err)

		assert.Contains(t, out, "Next »")
	})

	t.Run("keeps nav with numbered page links", func(t *testing.T) {
		t.Parallel()

		html := `<body><nav><a href="?page=1">1</a><a href="?page=2">2</a></nav></body>`

		out, err := goquery.NewCleaner().Clean(html)
		require.NoError(t, err)

		assert.Contains(t, out, `href="?page=2"`)
	})

	t.Run("keeps nav with next page aria-label", func(t *testing.T) {
		t.Parallel()

		html := `<body><nav><a href="?page=2" aria-label="Next page">→</a></nav></body>`

		out, err := goquery.NewCleaner().Clean(html)
		require.NoError(t, err)

		assert.Contains(t, out, "Next page")
	})

	t.Run("removes large navs even with matching text", func(t *testing.T) {
		t.Parallel()

		var links string
		for i := 0; i < 25; i++ {
			links += `<a href="/c">Next Big Sale</a>`
		}
		html := `<body><nav id="mega-menu">` + links + `</nav><p>content</p></body>`

		out, err := goquery.NewCleaner().Clean(html)
		require.NoError(t, err)

		assert.NotContains(t, out, "mega-menu")
		assert.Contains(t, out, "content")
	})
}
