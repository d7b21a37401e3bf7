package main

import (
	"fmt"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Run executes the "inspect" command: fetch a page, apply the same noise
// filtering the pipeline uses, and print it as Markdown so a human can see
// what the extraction service receives.
func (c *InspectCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	cleaned, err := deps.Cleaner.Clean(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	output := cleaned
	if !c.Raw {
		output, err = deps.Converter.Convert(cleaned)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
			return err
		}
	}

	if c.Out != "" {
		path, err := deps.Snapshots.WriteSnapshot(c.URL, output, time.Now())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
		return nil
	}

	fmt.Fprintln(deps.Stdout, output)
	return nil
}
