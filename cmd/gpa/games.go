package main

import (
	"fmt"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Run executes the "games" command.
func (c *GamesCmd) Run(deps *Dependencies) error {
	filter := gpa.GameFilter{}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	games, err := deps.Games.FindGames(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	if len(games) == 0 {
		fmt.Fprintln(deps.Stdout, "No games found. Run 'gpa scrape' to discover some.")
		return nil
	}

	for _, g := range games {
		listings, err := deps.Listings.FindListings(deps.Ctx, gpa.ListingFilter{GameID: &g.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  (%d listings)\n", g.ID, g.Name, len(listings))
	}

	return nil
}
