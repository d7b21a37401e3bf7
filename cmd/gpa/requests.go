package main

import (
	"fmt"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Run executes the "requests list" command.
func (c *RequestsListCmd) Run(deps *Dependencies) error {
	filter := gpa.ScrapeRequestFilter{}
	if c.Platform != "" {
		platform, err := findPlatformByName(deps, c.Platform)
		if err != nil {
			return err
		}
		filter.PlatformID = &platform.ID
	}
	if c.Status != "" {
		status := gpa.RequestStatus(c.Status)
		filter.Status = &status
	}

	requests, err := deps.Requests.FindScrapeRequests(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	if len(requests) == 0 {
		fmt.Fprintln(deps.Stdout, "No scrape requests found.")
		return nil
	}

	for _, r := range requests {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d/%d ok  %s\n",
			r.ID, r.Status, r.SuccessfulScrapes, r.TotalGames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

// Run executes the "requests show" command.
func (c *RequestsShowCmd) Run(deps *Dependencies) error {
	req, err := deps.Requests.FindScrapeRequestByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Request %s\n", req.ID)
	fmt.Fprintf(deps.Stdout, "  status:     %s\n", req.Status)
	fmt.Fprintf(deps.Stdout, "  platform:   %s\n", req.PlatformID)
	fmt.Fprintf(deps.Stdout, "  found:      %d\n", req.TotalGames)
	fmt.Fprintf(deps.Stdout, "  processed:  %d (%d ok, %d failed)\n",
		req.ProcessedGames, req.SuccessfulScrapes, req.FailedScrapes)
	if req.ErrorMessage != "" {
		fmt.Fprintf(deps.Stdout, "  error:      %s\n", req.ErrorMessage)
	}

	if result, err := deps.Results.FindScrapeResultByRequestID(deps.Ctx, req.ID); err == nil {
		fmt.Fprintf(deps.Stdout, "  not found:  %d\n", result.NotFound)
		fmt.Fprintf(deps.Stdout, "  duration:   %s\n", result.CompletedAt.Sub(result.StartedAt))
	} else if gpa.ErrorCode(err) != gpa.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	details, err := deps.Details.FindScrapeDetails(deps.Ctx, gpa.ScrapeDetailFilter{ScrapeRequestID: &req.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gpa.ErrorMessage(err))
		return err
	}

	if len(details) > 0 {
		fmt.Fprintln(deps.Stdout, "Details:")
		for i, d := range details {
			line := fmt.Sprintf("  %d. %s", i+1, d.Status)
			if d.ErrorMessage != "" {
				line += "  " + d.ErrorMessage
			}
			fmt.Fprintln(deps.Stdout, line)
		}
	}

	return nil
}
