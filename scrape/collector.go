// Package scrape provides the scrape orchestration pipeline: URL
// collection over paginated category pages, per-item structured
// extraction, game identity resolution, and the request-level state
// machine with its per-URL outcome ledger.
package scrape

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// DefaultMaxPages is the safety ceiling on pagination iterations, guarding
// against extraction responses that keep returning stale next-page hints.
const DefaultMaxPages = 50

// Ensure Collector implements gpa.URLCollector at compile time.
var _ gpa.URLCollector = (*Collector)(nil)

// Collector discovers game detail URLs by walking a platform's paginated
// category listing. It renders each page, cleans the HTML, and asks the
// extraction service for candidate URLs plus a next-page selector.
type Collector struct {
	Fetcher    gpa.Fetcher
	Cleaner    gpa.Cleaner
	Extraction gpa.ExtractionClient

	// Limiter, if set, paces page loads per domain.
	Limiter gpa.DomainLimiter

	// MaxPages caps pagination iterations. Defaults to DefaultMaxPages.
	MaxPages int

	// Logger, if set, records soft terminations. Collection failures that
	// end the loop early are not errors; the URLs gathered so far are
	// still returned.
	Logger *slog.Logger
}

// linkExtraction is the wire shape of the extraction service's response to
// a link-collection prompt.
type linkExtraction struct {
	GameURLs         []string `json:"game_urls"`
	NextPageSelector *string  `json:"next_page_selector"`
}

// Collect walks the paginated listing starting at startURL and returns up
// to limit deduplicated game URLs in first-seen order.
func (c *Collector) Collect(ctx context.Context, startURL string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, gpa.Errorf(gpa.EINVALID, "limit must be positive")
	}

	if err := c.wait(ctx, startURL); err != nil {
		return nil, err
	}

	session, err := c.Fetcher.Open(ctx, startURL)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	seen := make(map[string]bool)
	var collected []string

	for page := 0; page < maxPages && len(collected) < limit; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := session.HTML(ctx)
		if err != nil {
			return nil, err
		}
		cleaned, err := c.Cleaner.Clean(html)
		if err != nil {
			return nil, err
		}

		result, err := c.extractLinks(ctx, cleaned, limit-len(collected), session.URL())
		if err != nil {
			return nil, err
		}

		progress := false
		for _, raw := range result.GameURLs {
			if len(collected) >= limit {
				break
			}
			u := normalizeURL(raw)
			if u == "" || seen[u] {
				continue
			}
			seen[u] = true
			collected = append(collected, u)
			progress = true
		}

		if len(collected) >= limit {
			break
		}
		if result.NextPageSelector == nil || *result.NextPageSelector == "" {
			if !progress {
				c.log("collection exhausted", "url", session.URL(), "collected", len(collected))
			}
			break
		}

		if err := c.wait(ctx, session.URL()); err != nil {
			return nil, err
		}

		// Pagination failure is a soft termination, not a fatal error.
		if err := session.Activate(ctx, *result.NextPageSelector); err != nil {
			c.log("pagination failed", "selector", *result.NextPageSelector, "err", err)
			break
		}
	}

	return collected, nil
}

// extractLinks asks the extraction service for links and parses the
// response. A malformed or empty response yields an empty extraction
// rather than an error; only upstream call failures propagate.
func (c *Collector) extractLinks(ctx context.Context, cleanHTML string, remaining int, currentURL string) (*linkExtraction, error) {
	text, err := c.Extraction.Generate(ctx, BuildLinkPrompt(cleanHTML, remaining, currentURL))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return &linkExtraction{}, nil
	}

	var result linkExtraction
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &result); err != nil {
		c.log("unparseable link extraction", "url", currentURL, "err", err)
		return &linkExtraction{}, nil
	}
	return &result, nil
}

// wait applies the per-domain rate limit, if configured.
func (c *Collector) wait(ctx context.Context, rawURL string) error {
	if c.Limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return c.Limiter.Wait(ctx, u.Host)
}

func (c *Collector) log(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Info(msg, args...)
	}
}

// normalizeURL strips fragments so URLs differing only by fragment
// deduplicate to one entry.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}
