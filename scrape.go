package gpa

import (
	"context"
	"time"
)

// RequestStatus is the scrape request state machine. A request starts
// PENDING, moves to IN_PROGRESS immediately before URL collection, and
// always terminates in COMPLETED or FAILED.
type RequestStatus string

// Request statuses.
const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestFailed     RequestStatus = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestFailed
}

// DetailStatus classifies the outcome of one candidate URL within a scrape
// request.
type DetailStatus string

// Detail statuses.
const (
	DetailPending  DetailStatus = "pending"
	DetailSuccess  DetailStatus = "success"
	DetailFailure  DetailStatus = "failure"
	DetailNotFound DetailStatus = "not_found"
)

// ScrapeRequest is one invocation of the orchestrator for a
// (platform, limit) pair. It is created at invocation start and mutated
// only by the orchestrator.
type ScrapeRequest struct {
	ID                string        `json:"id"`
	PlatformID        string        `json:"platformId"`
	Status            RequestStatus `json:"status"`
	TotalGames        int           `json:"totalGames"`
	ProcessedGames    int           `json:"processedGames"`
	SuccessfulScrapes int           `json:"successfulScrapes"`
	FailedScrapes     int           `json:"failedScrapes"`
	ErrorMessage      string        `json:"errorMessage"`
	StartedAt         *time.Time    `json:"startedAt"`
	CompletedAt       *time.Time    `json:"completedAt"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// Validate returns an error if the request contains invalid fields.
func (r *ScrapeRequest) Validate() error {
	if r.PlatformID == "" {
		return Errorf(EINVALID, "scrape request platform ID required")
	}
	return nil
}

// ScrapeRequestUpdate represents fields that can be updated on a scrape
// request.
type ScrapeRequestUpdate struct {
	Status            *RequestStatus `json:"status"`
	TotalGames        *int           `json:"totalGames"`
	ProcessedGames    *int           `json:"processedGames"`
	SuccessfulScrapes *int           `json:"successfulScrapes"`
	FailedScrapes     *int           `json:"failedScrapes"`
	ErrorMessage      *string        `json:"errorMessage"`
	StartedAt         *time.Time     `json:"startedAt"`
	CompletedAt       *time.Time     `json:"completedAt"`
}

// ScrapeRequestService represents a service for managing scrape requests.
type ScrapeRequestService interface {
	// CreateScrapeRequest creates a new scrape request in PENDING state.
	CreateScrapeRequest(ctx context.Context, req *ScrapeRequest) error

	// FindScrapeRequestByID retrieves a request by ID.
	// Returns ENOTFOUND if the request does not exist.
	FindScrapeRequestByID(ctx context.Context, id string) (*ScrapeRequest, error)

	// FindScrapeRequests retrieves requests matching the filter.
	FindScrapeRequests(ctx context.Context, filter ScrapeRequestFilter) ([]*ScrapeRequest, error)

	// UpdateScrapeRequest updates an existing request.
	// Returns ENOTFOUND if the request does not exist.
	UpdateScrapeRequest(ctx context.Context, id string, upd ScrapeRequestUpdate) (*ScrapeRequest, error)
}

// ScrapeRequestFilter represents a filter for FindScrapeRequests.
type ScrapeRequestFilter struct {
	PlatformID *string        `json:"platformId"`
	Status     *RequestStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ScrapeDetail is the per-URL outcome ledger entry for one scrape request.
// Exactly one detail is created per candidate URL, in discovery order,
// regardless of how processing of that URL ended. Details are append-only.
type ScrapeDetail struct {
	ID              string       `json:"id"`
	ScrapeRequestID string       `json:"scrapeRequestId"`
	Status          DetailStatus `json:"status"`
	ErrorMessage    string       `json:"errorMessage"`
	RawPayload      string       `json:"rawPayload"`
	RawHash         string       `json:"rawHash"`
	ListingID       *string      `json:"listingId"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Validate returns an error if the detail contains invalid fields.
func (d *ScrapeDetail) Validate() error {
	if d.ScrapeRequestID == "" {
		return Errorf(EINVALID, "scrape detail request ID required")
	}
	return nil
}

// ScrapeDetailService represents a service for managing scrape details.
type ScrapeDetailService interface {
	// CreateScrapeDetail creates a new detail record.
	CreateScrapeDetail(ctx context.Context, detail *ScrapeDetail) error

	// FindScrapeDetails retrieves details matching the filter, ordered by
	// creation order.
	FindScrapeDetails(ctx context.Context, filter ScrapeDetailFilter) ([]*ScrapeDetail, error)
}

// ScrapeDetailFilter represents a filter for FindScrapeDetails.
type ScrapeDetailFilter struct {
	ScrapeRequestID *string       `json:"scrapeRequestId"`
	Status          *DetailStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ScrapeResult is the aggregate summary for one completed scrape request.
// At most one result exists per request.
type ScrapeResult struct {
	ID                string    `json:"id"`
	ScrapeRequestID   string    `json:"scrapeRequestId"`
	PlatformID        string    `json:"platformId"`
	TotalGames        int       `json:"totalGames"`
	SuccessfulScrapes int       `json:"successfulScrapes"`
	FailedScrapes     int       `json:"failedScrapes"`
	NotFound          int       `json:"notFound"`
	StartedAt         time.Time `json:"startedAt"`
	CompletedAt       time.Time `json:"completedAt"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *ScrapeResult) Validate() error {
	if r.ScrapeRequestID == "" {
		return Errorf(EINVALID, "scrape result request ID required")
	}
	if r.PlatformID == "" {
		return Errorf(EINVALID, "scrape result platform ID required")
	}
	return nil
}

// ScrapeResultService represents a service for managing scrape results.
type ScrapeResultService interface {
	// CreateScrapeResult creates the aggregate result for a request.
	// Returns ECONFLICT if a result already exists for the request.
	CreateScrapeResult(ctx context.Context, result *ScrapeResult) error

	// FindScrapeResultByRequestID retrieves the result for a request.
	// Returns ENOTFOUND if no result exists.
	FindScrapeResultByRequestID(ctx context.Context, requestID string) (*ScrapeResult, error)
}

// URLCollector discovers candidate game-detail URLs for a platform by
// driving a paginated crawl. The returned slice is deduplicated, in
// first-seen order, and never longer than limit.
type URLCollector interface {
	Collect(ctx context.Context, startURL string, limit int) ([]string, error)
}

// ScrapeOutcome is what the orchestrator returns to its caller: the
// finalized request together with everything that was accomplished, even
// when the request terminated FAILED.
type ScrapeOutcome struct {
	Request  *ScrapeRequest  `json:"request"`
	Result   *ScrapeResult   `json:"result"`
	Listings []*Listing      `json:"listings"`
	Details  []*ScrapeDetail `json:"details"`
}
