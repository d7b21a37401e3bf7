package main

import (
	"fmt"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Run executes the "platform add" command.
func (c *PlatformAddCmd) Run(deps *Dependencies) error {
	platform := &gpa.Platform{
		Name:              c.Name,
		BaseURL:           c.BaseURL,
		SearchURLTemplate: c.Search,
		GameDataSelector:  c.Selector,
	}

	if err := deps.Platforms.CreatePlatform(deps.Ctx, platform); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added platform %q (%s)\n", c.Name, platform.ID)
	return nil
}

// Run executes the "platform list" command.
func (c *PlatformListCmd) Run(deps *Dependencies) error {
	platforms, err := deps.Platforms.FindPlatforms(deps.Ctx, gpa.PlatformFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	if len(platforms) == 0 {
		fmt.Fprintln(deps.Stdout, "No platforms found. Use 'gpa platform add' to register one.")
		return nil
	}

	for _, p := range platforms {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.ID, p.Name, p.BaseURL)
	}

	return nil
}

// Run executes the "platform rm" command.
func (c *PlatformRmCmd) Run(deps *Dependencies) error {
	platform, err := findPlatformByName(deps, c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		err := fmt.Errorf("removing a platform deletes its scrape history; pass --force to confirm")
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := deps.Platforms.DeletePlatform(deps.Ctx, platform.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed platform %q\n", c.Name)
	return nil
}

// findPlatformByName resolves a platform name to its record, printing a
// hint to stderr when it does not exist.
func findPlatformByName(deps *Dependencies, name string) (*gpa.Platform, error) {
	platforms, err := deps.Platforms.FindPlatforms(deps.Ctx, gpa.PlatformFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return nil, err
	}
	if len(platforms) == 0 {
		err := fmt.Errorf("platform %q not found", name)
		fmt.Fprintf(deps.Stderr, "error: %s. Run 'gpa platform list' to see registered platforms.\n", err)
		return nil, err
	}
	return platforms[0], nil
}
