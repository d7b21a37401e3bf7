package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/cespare/xxhash/v2"
)

// Orchestrator owns the scrape request lifecycle: it creates the request
// record, collects candidate URLs, processes them one at a time in
// discovery order, records one detail per URL unconditionally, computes
// aggregate tallies, and finalizes the request status.
//
// Apart from the unknown-platform precondition, the caller always receives
// a ScrapeOutcome describing what was accomplished, never a raw error: a
// mid-run failure degrades the aggregate outcome but does not discard the
// details and listings persisted so far.
type Orchestrator struct {
	Platforms gpa.PlatformService
	Requests  gpa.ScrapeRequestService
	Results   gpa.ScrapeResultService
	Details   gpa.ScrapeDetailService
	Listings  gpa.ListingService

	Collector gpa.URLCollector
	Extractor gpa.GameExtractor
	Resolver  gpa.GameResolver

	Logger *slog.Logger

	// Now supplies timestamps for the state machine. Defaults to time.Now.
	Now func() time.Time
}

// itemOutcome is the tagged per-URL classification: exactly one of
// success (listing set), not_found, or failure (err set). raw carries the
// extraction response text when one was obtained.
type itemOutcome struct {
	status  gpa.DetailStatus
	listing *gpa.Listing
	raw     string
	err     error
}

// tally accumulates per-URL classifications into the request aggregates.
type tally struct {
	successful int
	failed     int
	notFound   int
}

func (t *tally) add(status gpa.DetailStatus) {
	switch status {
	case gpa.DetailSuccess:
		t.successful++
	case gpa.DetailFailure:
		t.failed++
	case gpa.DetailNotFound:
		t.notFound++
	}
}

// processed counts items that went through the full pipeline; not-found
// pages are skipped, not processed.
func (t *tally) processed() int {
	return t.successful + t.failed
}

// ScrapeGamesForPlatform runs one scrape request for (platform, limit).
//
// The unknown-platform precondition is the only synchronous error; once
// the request record exists, every failure is captured in the request's
// terminal state instead of being returned.
func (o *Orchestrator) ScrapeGamesForPlatform(ctx context.Context, platformID string, limit int) (*gpa.ScrapeOutcome, error) {
	platform, err := o.Platforms.FindPlatformByID(ctx, platformID)
	if err != nil {
		if gpa.ErrorCode(err) == gpa.ENOTFOUND {
			return nil, gpa.Errorf(gpa.ENOTFOUND, "platform %q not found for scraping", platformID)
		}
		return nil, err
	}

	req := &gpa.ScrapeRequest{
		PlatformID: platform.ID,
		Status:     gpa.RequestPending,
	}
	if err := o.Requests.CreateScrapeRequest(ctx, req); err != nil {
		return nil, err
	}

	outcome := &gpa.ScrapeOutcome{Request: req}
	var counts tally

	runErr := o.run(ctx, platform, req, limit, outcome, &counts)
	o.finalize(ctx, req, &counts, runErr)
	outcome.Request = req

	return outcome, nil
}

// run executes the request-level flow: transition to IN_PROGRESS, collect
// URLs, process each one, and create the aggregate result. Any error it
// returns becomes the request's FAILED terminal state.
func (o *Orchestrator) run(ctx context.Context, platform *gpa.Platform, req *gpa.ScrapeRequest, limit int, outcome *gpa.ScrapeOutcome, counts *tally) error {
	started := o.now()
	if err := o.update(ctx, req, gpa.ScrapeRequestUpdate{
		Status:    statusPtr(gpa.RequestInProgress),
		StartedAt: &started,
	}); err != nil {
		return err
	}

	urls, err := o.Collector.Collect(ctx, platform.SearchURLTemplate, limit)
	if err != nil {
		return fmt.Errorf("url collection: %w", err)
	}

	// total_games is set once, before any item is processed.
	total := len(urls)
	if err := o.update(ctx, req, gpa.ScrapeRequestUpdate{TotalGames: &total}); err != nil {
		return err
	}

	for i, url := range urls {
		out := o.processURL(ctx, platform, i, url)
		counts.add(out.status)
		if out.listing != nil {
			outcome.Listings = append(outcome.Listings, out.listing)
		}

		// Ledger bookkeeping is unconditional and must not abort the
		// loop for the remaining URLs.
		detail := o.recordDetail(ctx, req.ID, out)
		outcome.Details = append(outcome.Details, detail)
	}

	result := &gpa.ScrapeResult{
		ScrapeRequestID:   req.ID,
		PlatformID:        platform.ID,
		TotalGames:        total,
		SuccessfulScrapes: counts.successful,
		FailedScrapes:     counts.failed,
		NotFound:          counts.notFound,
		StartedAt:         started,
		CompletedAt:       o.now(),
	}
	if err := o.Results.CreateScrapeResult(ctx, result); err != nil {
		return fmt.Errorf("result aggregation: %w", err)
	}
	outcome.Result = result

	return nil
}

// processURL classifies one candidate URL. It is a pure classification
// step: ledger writes happen separately in recordDetail.
func (o *Orchestrator) processURL(ctx context.Context, platform *gpa.Platform, position int, url string) itemOutcome {
	extract, raw, err := o.Extractor.Extract(ctx, url)
	if err != nil {
		return itemOutcome{status: gpa.DetailFailure, raw: raw, err: err}
	}
	if !extract.Found() {
		return itemOutcome{status: gpa.DetailNotFound, raw: raw}
	}

	game, err := o.Resolver.Resolve(ctx, extract.Name, extract.Description, extract.Metadata)
	if err != nil {
		return itemOutcome{status: gpa.DetailFailure, raw: raw, err: err}
	}

	pos := position + 1
	listing := &gpa.Listing{
		NameOnPlatform: extract.Name,
		Price:          extract.Price,
		PriceUSD:       extract.PriceUSD,
		Currency:       extract.Currency,
		Availability:   extract.Availability,
		URLOnPlatform:  extract.URLOnPlatform,
		Rating:         extract.Rating,
		ReviewsCount:   extract.ReviewsCount,
		SearchPosition: &pos,
		SpecialContent: extract.SpecialContent,
		DiscountInfo:   extract.DiscountInfo,
		GameID:         game.ID,
		PlatformID:     platform.ID,
	}
	if err := o.Listings.CreateListing(ctx, listing); err != nil {
		return itemOutcome{status: gpa.DetailFailure, raw: raw, err: err}
	}

	return itemOutcome{status: gpa.DetailSuccess, listing: listing, raw: raw}
}

// recordDetail creates exactly one ledger entry for a classified URL. A
// failure writing the detail is logged and processing continues; the
// in-memory record is still reported to the caller.
func (o *Orchestrator) recordDetail(ctx context.Context, requestID string, out itemOutcome) *gpa.ScrapeDetail {
	detail := &gpa.ScrapeDetail{
		ScrapeRequestID: requestID,
		Status:          out.status,
		RawPayload:      out.raw,
	}
	if out.raw != "" {
		detail.RawHash = fmt.Sprintf("%x", xxhash.Sum64String(out.raw))
	}
	if out.err != nil {
		detail.ErrorMessage = out.err.Error()
	}
	if out.listing != nil {
		detail.ListingID = &out.listing.ID
	}

	if err := o.Details.CreateScrapeDetail(ctx, detail); err != nil {
		o.log("failed to record scrape detail", "request", requestID, "status", out.status, "err", err)
	}
	return detail
}

// finalize is the terminal transition. It always runs, always stamps the
// aggregate counters and completion time, and never propagates its own
// failures beyond logging.
func (o *Orchestrator) finalize(ctx context.Context, req *gpa.ScrapeRequest, counts *tally, runErr error) {
	completed := o.now()
	status := gpa.RequestCompleted
	var errMsg *string
	if runErr != nil {
		status = gpa.RequestFailed
		msg := runErr.Error()
		errMsg = &msg
		o.log("scrape request failed", "request", req.ID, "err", runErr)
	}

	processed := counts.processed()
	if err := o.update(ctx, req, gpa.ScrapeRequestUpdate{
		Status:            &status,
		ProcessedGames:    &processed,
		SuccessfulScrapes: &counts.successful,
		FailedScrapes:     &counts.failed,
		ErrorMessage:      errMsg,
		CompletedAt:       &completed,
	}); err != nil {
		o.log("failed to finalize scrape request", "request", req.ID, "err", err)
	}
}

// update applies an update to the request record and mirrors it into the
// in-memory request so the response reflects the final state even when a
// later persistence call fails.
func (o *Orchestrator) update(ctx context.Context, req *gpa.ScrapeRequest, upd gpa.ScrapeRequestUpdate) error {
	applyRequestUpdate(req, upd)
	updated, err := o.Requests.UpdateScrapeRequest(ctx, req.ID, upd)
	if err != nil {
		return err
	}
	*req = *updated
	return nil
}

// applyRequestUpdate mirrors an update into the in-memory request.
func applyRequestUpdate(req *gpa.ScrapeRequest, upd gpa.ScrapeRequestUpdate) {
	if upd.Status != nil {
		req.Status = *upd.Status
	}
	if upd.TotalGames != nil {
		req.TotalGames = *upd.TotalGames
	}
	if upd.ProcessedGames != nil {
		req.ProcessedGames = *upd.ProcessedGames
	}
	if upd.SuccessfulScrapes != nil {
		req.SuccessfulScrapes = *upd.SuccessfulScrapes
	}
	if upd.FailedScrapes != nil {
		req.FailedScrapes = *upd.FailedScrapes
	}
	if upd.ErrorMessage != nil {
		req.ErrorMessage = *upd.ErrorMessage
	}
	if upd.StartedAt != nil {
		req.StartedAt = upd.StartedAt
	}
	if upd.CompletedAt != nil {
		req.CompletedAt = upd.CompletedAt
	}
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

func (o *Orchestrator) log(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Error(msg, args...)
	}
}

func statusPtr(s gpa.RequestStatus) *gpa.RequestStatus { return &s }
