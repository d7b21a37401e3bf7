package scrape_test

import (
	"testing"
	"time"

	"github.com/taimg1/game-platform-analyzer/scrape"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding prose", "Here you go:\n```json\n{\"a\":1}\n```\nDone.", `{"a":1}`},
		{"whitespace only", "  \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.StripCodeFence(tt.input))
		})
	}
}

func TestBuildLinkPrompt(t *testing.T) {
	t.Parallel()

	prompt := scrape.BuildLinkPrompt("<div>games</div>", 7, "https://store.example.com/search?page=2")

	assert.Contains(t, prompt, "Return up to 7 URLs")
	assert.Contains(t, prompt, "https://store.example.com/search?page=2")
	assert.Contains(t, prompt, `"game_urls"`)
	assert.Contains(t, prompt, `"next_page_selector"`)
	assert.Contains(t, prompt, "<div>games</div>")
}

func TestBuildExtractPrompt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	prompt := scrape.BuildExtractPrompt("<div>page</div>", "https://store.example.com/app/1", now)

	assert.Contains(t, prompt, "https://store.example.com/app/1")
	assert.Contains(t, prompt, "2025-06-01T12:00:00Z")
	assert.Contains(t, prompt, `"availability_status"`)
	assert.Contains(t, prompt, `"price_in_usd"`)
	assert.Contains(t, prompt, "<div>page</div>")
}
