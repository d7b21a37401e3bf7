package gpa

import "context"

// ExtractionClient sends a prompt to an external structured-extraction
// service and returns the raw text response. Implementations own bounded
// retry with backoff for transient upstream failures; non-transient
// failures propagate immediately.
//
// An empty response means "no data" and must never be parsed by callers.
// Callers are responsible for stripping code-fence wrapping before parsing
// the response as JSON.
type ExtractionClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GameExtract is the normalized record produced by extracting a single
// game-detail page. Field values outside the declared schema are
// down-normalized rather than rejected: unknown prices use the UnknownPrice
// sentinel and unrecognized availability statuses become
// AvailabilityUnknown.
type GameExtract struct {
	Name           string
	Description    string
	Price          float64 // UnknownPrice when undetermined
	Currency       string
	PriceUSD       float64 // UnknownPrice when unconvertible
	Availability   Availability
	URLOnPlatform  string
	Rating         *float64 // normalized to a 0-5 scale
	ReviewsCount   *int
	SpecialContent map[string]any
	DiscountInfo   map[string]any
	Metadata       map[string]any
}

// Found reports whether the extraction located a game on the page.
// A missing name is the canonical not-found signal.
func (e *GameExtract) Found() bool {
	return e != nil && e.Name != ""
}

// UnknownGameExtract returns the well-defined sentinel record used when
// the extraction service produced malformed or empty output for a page.
func UnknownGameExtract(url string) *GameExtract {
	return &GameExtract{
		Price:         UnknownPrice,
		PriceUSD:      UnknownPrice,
		Availability:  AvailabilityUnknown,
		URLOnPlatform: url,
	}
}

// GameExtractor turns a single game-detail URL into a normalized record.
// The raw return value carries the extraction service's response text for
// bookkeeping, and is populated whenever a response was obtained, even if
// it could not be parsed.
type GameExtractor interface {
	Extract(ctx context.Context, url string) (extract *GameExtract, raw string, err error)
}
