package scrape

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// requiredFields are the extraction schema fields that must be present and
// non-null. Absences are logged and down-normalized to sentinels.
var requiredFields = []string{"name", "price", "price_in_usd", "availability_status"}

// Ensure ItemExtractor implements gpa.GameExtractor at compile time.
var _ gpa.GameExtractor = (*ItemExtractor)(nil)

// ItemExtractor turns one game detail URL into a normalized GameExtract.
// Malformed extraction output degrades to the sentinel "unknown" record;
// callers never see decode errors, only a record whose missing name
// signals not-found.
type ItemExtractor struct {
	Fetcher    gpa.Fetcher
	Cleaner    gpa.Cleaner
	Extraction gpa.ExtractionClient

	// Limiter, if set, paces page loads per domain.
	Limiter gpa.DomainLimiter

	// Now supplies the timestamp injected into extraction prompts so
	// relative discount end-dates resolve to absolute ones. Defaults to
	// time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// gameExtractWire is the declared JSON schema of an extraction response.
// Pointer fields distinguish null from zero.
type gameExtractWire struct {
	Name               *string         `json:"name"`
	Description        *string         `json:"description"`
	Price              *float64        `json:"price"`
	Currency           *string         `json:"currency"`
	PriceInUSD         *float64        `json:"price_in_usd"`
	AvailabilityStatus *string         `json:"availability_status"`
	URLOnPlatform      *string         `json:"url_on_platform"`
	Rating             *float64        `json:"rating"`
	ReviewsCount       json.RawMessage `json:"reviews_count"`
	SpecialContent     map[string]any  `json:"special_content_json"`
	DiscountInfo       map[string]any  `json:"discount_info_json"`
	Metadata           map[string]any  `json:"metadata_json"`
}

// Extract renders the page, cleans it, and issues one extraction request.
// The raw return value carries the extraction response text whenever one
// was obtained, for ledger bookkeeping.
func (e *ItemExtractor) Extract(ctx context.Context, gameURL string) (*gpa.GameExtract, string, error) {
	if e.Limiter != nil {
		if host := hostOf(gameURL); host != "" {
			if err := e.Limiter.Wait(ctx, host); err != nil {
				return nil, "", err
			}
		}
	}

	html, err := e.Fetcher.Fetch(ctx, gameURL)
	if err != nil {
		return nil, "", err
	}
	cleaned, err := e.Cleaner.Clean(html)
	if err != nil {
		return nil, "", err
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	text, err := e.Extraction.Generate(ctx, BuildExtractPrompt(cleaned, gameURL, now()))
	if err != nil {
		return nil, "", err
	}
	if text == "" {
		return gpa.UnknownGameExtract(gameURL), "", nil
	}

	raw := StripCodeFence(text)

	var wire gameExtractWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		e.log("unparseable extraction response", "url", gameURL, "err", err)
		return gpa.UnknownGameExtract(gameURL), raw, nil
	}

	e.warnMissingRequired(gameURL, &wire)

	return normalizeExtract(&wire, gameURL), raw, nil
}

// warnMissingRequired logs required schema fields the service left missing
// or null. The record is still usable; sentinels fill the gaps.
func (e *ItemExtractor) warnMissingRequired(gameURL string, wire *gameExtractWire) {
	missing := func(field string) bool {
		switch field {
		case "name":
			return wire.Name == nil || *wire.Name == ""
		case "price":
			return wire.Price == nil
		case "price_in_usd":
			return wire.PriceInUSD == nil
		case "availability_status":
			return wire.AvailabilityStatus == nil
		}
		return false
	}
	for _, field := range requiredFields {
		if missing(field) {
			e.log("required field missing in extraction response", "url", gameURL, "field", field)
		}
	}
}

func (e *ItemExtractor) log(msg string, args ...any) {
	if e.Logger != nil {
		e.Logger.Warn(msg, args...)
	}
}

// normalizeExtract converts the wire payload into the validated domain
// record, applying sentinel values and down-normalizing out-of-schema
// content.
func normalizeExtract(wire *gameExtractWire, gameURL string) *gpa.GameExtract {
	out := gpa.UnknownGameExtract(gameURL)

	if wire.Name != nil {
		out.Name = strings.TrimSpace(*wire.Name)
	}
	if wire.Description != nil {
		out.Description = *wire.Description
	}
	if wire.Price != nil {
		out.Price = *wire.Price
	}
	if wire.Currency != nil {
		out.Currency = strings.ToUpper(strings.TrimSpace(*wire.Currency))
	}
	if wire.PriceInUSD != nil {
		out.PriceUSD = *wire.PriceInUSD
	}
	if wire.AvailabilityStatus != nil {
		out.Availability = gpa.NormalizeAvailability(*wire.AvailabilityStatus)
	}
	if wire.URLOnPlatform != nil && *wire.URLOnPlatform != "" {
		out.URLOnPlatform = *wire.URLOnPlatform
	}
	out.Rating = normalizeRating(wire.Rating)
	out.ReviewsCount = normalizeReviewsCount(wire.ReviewsCount)
	out.SpecialContent = wire.SpecialContent
	out.DiscountInfo = wire.DiscountInfo
	out.Metadata = wire.Metadata

	return out
}

// normalizeRating maps a rating onto the 0-5 scale. Scores that look like
// 10-point or percentage scales are scaled down; anything else out of
// range is dropped.
func normalizeRating(r *float64) *float64 {
	if r == nil {
		return nil
	}
	v := *r
	switch {
	case v < 0:
		return nil
	case v <= 5:
	case v <= 10:
		v /= 2
	case v <= 100:
		v /= 20
	default:
		return nil
	}
	v = math.Round(v*100) / 100
	return &v
}

// normalizeReviewsCount accepts an integer, a float, or a compact-notation
// string like "1.2K" and returns the count as an integer.
func normalizeReviewsCount(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return nil
		}
		v := int(n)
		return &v
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return parseCompactCount(s)
}

// parseCompactCount parses counts like "1.2K", "3M", or "1,204".
func parseCompactCount(s string) *int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}

	mult := 1.0
	switch {
	case strings.HasSuffix(strings.ToUpper(s), "K"):
		mult = 1_000
		s = s[:len(s)-1]
	case strings.HasSuffix(strings.ToUpper(s), "M"):
		mult = 1_000_000
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return nil
	}
	v := int(n * mult)
	return &v
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
