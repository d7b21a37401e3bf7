package sqlite

import (
	"context"
	"database/sql"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/google/uuid"
)

var _ gpa.ScrapeResultService = (*ScrapeResultService)(nil)

// ScrapeResultService implements gpa.ScrapeResultService using SQLite. The
// scrape_request_id column is unique so a request can have at most one
// aggregate result.
type ScrapeResultService struct {
	db *DB
}

// NewScrapeResultService creates a new ScrapeResultService.
func NewScrapeResultService(db *DB) *ScrapeResultService {
	return &ScrapeResultService{db: db}
}

// CreateScrapeResult creates the aggregate result for a request.
func (s *ScrapeResultService) CreateScrapeResult(ctx context.Context, result *gpa.ScrapeResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	result.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrape_results (
			id, scrape_request_id, platform_id, total_games,
			successful_scrapes, failed_scrapes, not_found,
			started_at, completed_at, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.ScrapeRequestID, result.PlatformID, result.TotalGames,
		result.SuccessfulScrapes, result.FailedScrapes, result.NotFound,
		result.StartedAt.UTC().Format(time.RFC3339), result.CompletedAt.UTC().Format(time.RFC3339),
		result.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return gpa.Errorf(gpa.ECONFLICT, "result already exists for scrape request %q", result.ScrapeRequestID)
	}
	return err
}

// FindScrapeResultByRequestID retrieves the result for a request.
func (s *ScrapeResultService) FindScrapeResultByRequestID(ctx context.Context, requestID string) (*gpa.ScrapeResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, scrape_request_id, platform_id, total_games,
			successful_scrapes, failed_scrapes, not_found,
			started_at, completed_at, created_at
		FROM scrape_results
		WHERE scrape_request_id = ?
	`, requestID)

	var result gpa.ScrapeResult
	var startedAt, completedAt, createdAt string

	err := row.Scan(&result.ID, &result.ScrapeRequestID, &result.PlatformID, &result.TotalGames,
		&result.SuccessfulScrapes, &result.FailedScrapes, &result.NotFound,
		&startedAt, &completedAt, &createdAt)
	if err == sql.ErrNoRows {
		return nil, gpa.Errorf(gpa.ENOTFOUND, "scrape result not found")
	}
	if err != nil {
		return nil, err
	}

	if result.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if result.CompletedAt, err = parseRFC3339(completedAt, "completed_at"); err != nil {
		return nil, err
	}
	if result.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &result, nil
}
