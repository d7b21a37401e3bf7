package main

import (
	"fmt"
	"sync"

	gpa "github.com/taimg1/game-platform-analyzer"

	"golang.org/x/sync/errgroup"
)

// Run executes the "scrape" command. Platforms are scraped concurrently;
// each one gets its own request record and its own terminal state, so one
// platform failing does not abort the others.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.Limit <= 0 {
		err := fmt.Errorf("limit must be positive")
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	platforms := make([]*gpa.Platform, 0, len(c.Platforms))
	for _, name := range c.Platforms {
		platform, err := findPlatformByName(deps, name)
		if err != nil {
			return err
		}
		platforms = append(platforms, platform)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(deps.Ctx)

	for _, platform := range platforms {
		g.Go(func() error {
			outcome, err := deps.Scraper.ScrapeGamesForPlatform(ctx, platform.ID, c.Limit)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error scraping %s: %s\n", platform.Name, gpa.ErrorMessage(err))
				return err
			}
			printOutcome(deps, platform, outcome)
			return nil
		})
	}

	return g.Wait()
}

// printOutcome summarizes one finished request.
func printOutcome(deps *Dependencies, platform *gpa.Platform, outcome *gpa.ScrapeOutcome) {
	req := outcome.Request
	fmt.Fprintf(deps.Stdout, "%s: %s  request %s\n", platform.Name, req.Status, req.ID)
	fmt.Fprintf(deps.Stdout, "  %d found, %d scraped, %d failed\n",
		req.TotalGames, req.SuccessfulScrapes, req.FailedScrapes)
	if req.ErrorMessage != "" {
		fmt.Fprintf(deps.Stderr, "  %s\n", req.ErrorMessage)
	}
	for _, listing := range outcome.Listings {
		fmt.Fprintf(deps.Stdout, "  + %s (%s %.2f)\n", listing.NameOnPlatform, listing.Currency, listing.Price)
	}
}
