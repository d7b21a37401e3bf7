package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	gpa "github.com/taimg1/game-platform-analyzer"
	"github.com/taimg1/game-platform-analyzer/fs"
	"github.com/taimg1/game-platform-analyzer/gemini"
	"github.com/taimg1/game-platform-analyzer/goquery"
	"github.com/taimg1/game-platform-analyzer/htmltomarkdown"
	"github.com/taimg1/game-platform-analyzer/http"
	"github.com/taimg1/game-platform-analyzer/rod"
	"github.com/taimg1/game-platform-analyzer/scrape"
	gpaslog "github.com/taimg1/game-platform-analyzer/slog"
	"github.com/taimg1/game-platform-analyzer/sqlite"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PlatformService gpa.PlatformService
	GameService     gpa.GameService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gpa"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gpa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GPA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PlatformService = sqlite.NewPlatformService(m.DB)
	m.GameService = sqlite.NewGameService(m.DB)
	deps.DB = m.DB
	deps.Platforms = m.PlatformService
	deps.Games = m.GameService
	deps.Listings = sqlite.NewListingService(m.DB)
	deps.Requests = sqlite.NewScrapeRequestService(m.DB)
	deps.Details = sqlite.NewScrapeDetailService(m.DB)
	deps.Results = sqlite.NewScrapeResultService(m.DB)

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire command-specific dependencies based on command
	if cmd == "inspect" {
		var fetcher gpa.Fetcher
		if cli.Inspect.Static {
			fetcher = http.NewFetcher()
		} else {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static for plain HTTP")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browser
		}
		defer fetcher.Close()

		deps.Fetcher = gpaslog.NewLoggingFetcher(fetcher, logger)
		deps.Cleaner = goquery.NewCleaner()
		deps.Converter = htmltomarkdown.NewConverter()
		if cli.Inspect.Out != "" {
			deps.Snapshots = fs.NewWriter(cli.Inspect.Out)
		}
	}

	if cmd == "scrape" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		loggedFetcher := gpaslog.NewLoggingFetcher(fetcher, logger)
		cleaner := goquery.NewCleaner()
		extraction := gpaslog.NewLoggingExtractionClient(
			gemini.NewClient(client, os.Getenv("GPA_MODEL"), gemini.DefaultRetryPolicy()),
			logger,
		)

		// One page per second per storefront.
		limiter := scrape.NewDomainLimiter(1.0)

		deps.Scraper = &scrape.Orchestrator{
			Platforms: deps.Platforms,
			Requests:  deps.Requests,
			Results:   deps.Results,
			Details:   deps.Details,
			Listings:  deps.Listings,
			Collector: gpaslog.NewLoggingCollector(&scrape.Collector{
				Fetcher:    loggedFetcher,
				Cleaner:    cleaner,
				Extraction: extraction,
				Limiter:    limiter,
				Logger:     logger,
			}, logger),
			Extractor: &scrape.ItemExtractor{
				Fetcher:    loggedFetcher,
				Cleaner:    cleaner,
				Extraction: extraction,
				Limiter:    limiter,
				Logger:     logger,
			},
			Resolver: &scrape.Resolver{Games: deps.Games},
			Logger:   logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GPA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gpa.db"
	}
	dir := filepath.Join(home, ".gpa")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gpa.db")
}
