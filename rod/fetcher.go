// Package rod implements page fetching using Chrome browser automation.
package rod

import (
	"context"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds a single page render.
const DefaultTimeout = 90 * time.Second

// stabilizeWait is how long the DOM must stay quiet after scrolling or
// activating a pagination control before the page is considered settled.
const stabilizeWait = 2 * time.Second

// Ensure Fetcher implements gpa.Fetcher at compile time.
var _ gpa.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
// Each fetch owns its own page; the underlying browser is recycled
// periodically by the BrowserManager. Fetcher is safe for concurrent use.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration

	// interstitial, when set, is a CSS selector for a known overlay
	// (cookie banner, region gate) dismissed once per page, best effort.
	interstitial string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout overrides the per-page render timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) { f.timeout = d }
}

// WithInterstitialSelector sets a CSS selector for a known interstitial
// element that is dismissed once, best effort, after navigation.
func WithInterstitialSelector(selector string) FetcherOption {
	return func(f *Fetcher) { f.interstitial = selector }
}

// NewFetcher creates a new Fetcher backed by a managed headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	manager, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		manager: manager,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL, triggers lazy-loaded content by scrolling,
// and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	session, err := f.Open(ctx, url)
	if err != nil {
		return "", err
	}
	defer session.Close()

	return session.HTML(ctx)
}

// Open navigates to the URL and returns a live page session for paginated
// crawling. The caller owns the session and must close it.
func (f *Fetcher) Open(ctx context.Context, url string) (gpa.PageSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, gpa.Errorf(gpa.EUNAVAILABLE, "failed to open page: %v", err)
	}
	page = page.Context(ctx).Timeout(f.timeout)

	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, gpa.Errorf(gpa.EUNAVAILABLE, "failed to navigate to %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, gpa.Errorf(gpa.EUNAVAILABLE, "page load failed for %s: %v", url, err)
	}

	s := &session{page: page, url: url}
	if f.interstitial != "" {
		s.dismiss(f.interstitial)
	}
	f.manager.IncrementPageCount()

	return s, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// session wraps a live rod page.
type session struct {
	page *rod.Page
	url  string
}

var _ gpa.PageSession = (*session)(nil)

// HTML scrolls through the page to trigger lazy-loaded content, waits for
// the DOM to settle, and returns the rendered HTML.
func (s *session) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Scroll-driven lazy loading: jump to the bottom and let async
	// content render. Failures here degrade to whatever already loaded.
	if _, err := s.page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err == nil {
		_ = s.page.WaitDOMStable(stabilizeWait, 0.1)
	}

	html, err := s.page.HTML()
	if err != nil {
		return "", gpa.Errorf(gpa.EUNAVAILABLE, "failed to read page HTML: %v", err)
	}
	return html, nil
}

// URL returns the page's current address.
func (s *session) URL() string {
	info, err := s.page.Info()
	if err != nil || info.URL == "" {
		return s.url
	}
	return info.URL
}

// Activate locates the pagination element, scrolls it into view, clicks
// it, and waits for the page to settle.
func (s *session) Activate(ctx context.Context, selector string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	el, err := s.page.Element(selector)
	if err != nil {
		return gpa.Errorf(gpa.ENOTFOUND, "pagination element %q not found: %v", selector, err)
	}
	if err := el.ScrollIntoView(); err != nil {
		return gpa.Errorf(gpa.EUNAVAILABLE, "failed to scroll to %q: %v", selector, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return gpa.Errorf(gpa.EUNAVAILABLE, "failed to click %q: %v", selector, err)
	}

	_ = s.page.WaitDOMStable(stabilizeWait, 0.1)
	return nil
}

// Close releases the page.
func (s *session) Close() error {
	return s.page.Close()
}

// dismiss clicks a known interstitial once, best effort. Absence of the
// element is the common case and not an error.
func (s *session) dismiss(selector string) {
	el, err := s.page.Timeout(2 * time.Second).Element(selector)
	if err != nil {
		return
	}
	_ = el.Click(proto.InputMouseButtonLeft, 1)
	_ = s.page.WaitDOMStable(time.Second, 0.1)
}
