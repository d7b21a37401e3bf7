package gpa

import "context"

// Fetcher retrieves rendered HTML from storefront URLs.
// Implementations use browser automation to handle JavaScript-rendered
// content, scroll-driven lazy loading, and interstitial dismissal.
type Fetcher interface {
	// Fetch navigates to the URL, waits for dynamic content to render,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Open navigates to the URL and returns a live page session for
	// paginated crawling. The caller owns the session and must close it.
	Open(ctx context.Context, url string) (PageSession, error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageSession is a live browser page used by the URL collector to walk a
// paginated category listing without re-navigating.
type PageSession interface {
	// HTML returns the current rendered HTML of the page.
	HTML(ctx context.Context) (string, error)

	// URL returns the page's current address, which may change as
	// pagination controls are activated.
	URL() string

	// Activate locates the element matching the CSS selector, scrolls it
	// into view, triggers it, and waits for the page to settle.
	// Returns an error if the element cannot be found or triggered.
	Activate(ctx context.Context, selector string) error

	// Close releases the page.
	Close() error
}

// Cleaner strips non-content markup (scripts, styling, chrome) and
// navigation elements from HTML while preserving the pagination controls
// needed for crawling.
type Cleaner interface {
	Clean(html string) (string, error)
}

// Converter converts HTML to Markdown. Used by the CLI's page preview to
// show operators what a cleaned page looks like.
type Converter interface {
	Convert(html string) (string, error)
}

// DomainLimiter provides per-domain rate limiting between page renders.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
