package main

import (
	"context"
	"io"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
	"github.com/taimg1/game-platform-analyzer/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB

	Platforms gpa.PlatformService
	Games     gpa.GameService
	Listings  gpa.ListingService
	Requests  gpa.ScrapeRequestService
	Details   gpa.ScrapeDetailService
	Results   gpa.ScrapeResultService

	// Scraper runs one scrape request. Wired only for the scrape command.
	Scraper Scraper

	// Fetcher, Cleaner, and Converter are wired only for the inspect
	// command. Snapshots is wired when the inspect command saves output.
	Fetcher   gpa.Fetcher
	Cleaner   gpa.Cleaner
	Converter gpa.Converter
	Snapshots SnapshotWriter
}

// SnapshotWriter saves a rendered page to disk and returns the written
// path.
type SnapshotWriter interface {
	WriteSnapshot(sourceURL, content string, fetchedAt time.Time) (string, error)
}

// Scraper abstracts the orchestrator for command-level testing.
type Scraper interface {
	ScrapeGamesForPlatform(ctx context.Context, platformID string, limit int) (*gpa.ScrapeOutcome, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Platform PlatformCmd `cmd:"" help:"Manage storefront platforms"`
	Games    GamesCmd    `cmd:"" help:"List known games"`
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape game listings from one or more platforms"`
	Requests RequestsCmd `cmd:"" help:"Inspect scrape requests"`
	Inspect  InspectCmd  `cmd:"" help:"Render a page the way the extraction pipeline sees it"`
}

// PlatformCmd groups the platform subcommands.
type PlatformCmd struct {
	Add  PlatformAddCmd  `cmd:"" help:"Register a platform"`
	List PlatformListCmd `cmd:"" help:"List registered platforms"`
	Rm   PlatformRmCmd   `cmd:"" help:"Remove a platform"`
}

// PlatformAddCmd is the "platform add" subcommand.
type PlatformAddCmd struct {
	Name     string `arg:"" help:"Platform name"`
	BaseURL  string `arg:"" name:"base-url" help:"Platform base URL"`
	Search   string `arg:"" name:"search-url" help:"Search or category page URL to start collection from"`
	Selector string `short:"s" help:"CSS selector hint for game data on listing pages"`
}

// PlatformListCmd is the "platform list" subcommand.
type PlatformListCmd struct{}

// PlatformRmCmd is the "platform rm" subcommand.
type PlatformRmCmd struct {
	Name  string `arg:"" help:"Platform name"`
	Force bool   `help:"Confirm deletion"`
}

// GamesCmd is the "games" subcommand.
type GamesCmd struct {
	Name string `short:"n" help:"Filter by exact game name"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Platforms []string `arg:"" name:"platform" help:"Platform names to scrape"`
	Limit     int      `short:"l" default:"20" help:"Maximum games to collect per platform"`
}

// RequestsCmd groups the request inspection subcommands.
type RequestsCmd struct {
	List RequestsListCmd `cmd:"" help:"List scrape requests"`
	Show RequestsShowCmd `cmd:"" help:"Show one request with its per-URL ledger"`
}

// RequestsListCmd is the "requests list" subcommand.
type RequestsListCmd struct {
	Platform string `short:"p" help:"Filter by platform name"`
	Status   string `short:"s" help:"Filter by status (pending, in_progress, completed, failed)"`
}

// RequestsShowCmd is the "requests show" subcommand.
type RequestsShowCmd struct {
	ID string `arg:"" help:"Scrape request ID"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Raw    bool   `help:"Print cleaned HTML instead of Markdown"`
	Static bool   `help:"Fetch over plain HTTP without a browser (static sites only)"`
	Out    string `short:"o" help:"Directory to save the rendered page under, as markdown"`
}
