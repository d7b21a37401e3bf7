package mock

import (
	"context"

	gpa "github.com/taimg1/game-platform-analyzer"
)

var _ gpa.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of gpa.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	OpenFn  func(ctx context.Context, url string) (gpa.PageSession, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Open(ctx context.Context, url string) (gpa.PageSession, error) {
	return f.OpenFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ gpa.PageSession = (*PageSession)(nil)

// PageSession is a mock implementation of gpa.PageSession.
type PageSession struct {
	HTMLFn     func(ctx context.Context) (string, error)
	URLFn      func() string
	ActivateFn func(ctx context.Context, selector string) error
	CloseFn    func() error
}

func (s *PageSession) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}

func (s *PageSession) URL() string {
	return s.URLFn()
}

func (s *PageSession) Activate(ctx context.Context, selector string) error {
	return s.ActivateFn(ctx, selector)
}

func (s *PageSession) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ gpa.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of gpa.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}

var _ gpa.Converter = (*Converter)(nil)

// Converter is a mock implementation of gpa.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ gpa.ExtractionClient = (*ExtractionClient)(nil)

// ExtractionClient is a mock implementation of gpa.ExtractionClient.
type ExtractionClient struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (c *ExtractionClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.GenerateFn(ctx, prompt)
}

var _ gpa.URLCollector = (*URLCollector)(nil)

// URLCollector is a mock implementation of gpa.URLCollector.
type URLCollector struct {
	CollectFn func(ctx context.Context, startURL string, limit int) ([]string, error)
}

func (c *URLCollector) Collect(ctx context.Context, startURL string, limit int) ([]string, error) {
	return c.CollectFn(ctx, startURL, limit)
}

var _ gpa.GameExtractor = (*GameExtractor)(nil)

// GameExtractor is a mock implementation of gpa.GameExtractor.
type GameExtractor struct {
	ExtractFn func(ctx context.Context, url string) (*gpa.GameExtract, string, error)
}

func (e *GameExtractor) Extract(ctx context.Context, url string) (*gpa.GameExtract, string, error) {
	return e.ExtractFn(ctx, url)
}

var _ gpa.GameResolver = (*GameResolver)(nil)

// GameResolver is a mock implementation of gpa.GameResolver.
type GameResolver struct {
	ResolveFn func(ctx context.Context, name, description string, metadata map[string]any) (*gpa.Game, error)
}

func (r *GameResolver) Resolve(ctx context.Context, name, description string, metadata map[string]any) (*gpa.Game, error) {
	return r.ResolveFn(ctx, name, description, metadata)
}

var _ gpa.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of gpa.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
