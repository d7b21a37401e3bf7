package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/google/uuid"
)

var _ gpa.ScrapeRequestService = (*ScrapeRequestService)(nil)

// ScrapeRequestService implements gpa.ScrapeRequestService using SQLite.
type ScrapeRequestService struct {
	db *DB
}

// NewScrapeRequestService creates a new ScrapeRequestService.
func NewScrapeRequestService(db *DB) *ScrapeRequestService {
	return &ScrapeRequestService{db: db}
}

// CreateScrapeRequest creates a new scrape request in PENDING state.
func (s *ScrapeRequestService) CreateScrapeRequest(ctx context.Context, req *gpa.ScrapeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	req.ID = uuid.New().String()
	if req.Status == "" {
		req.Status = gpa.RequestPending
	}
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrape_requests (
			id, platform_id, status, total_games, processed_games,
			successful_scrapes, failed_scrapes, error_message,
			started_at, completed_at, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, req.ID, req.PlatformID, string(req.Status), req.TotalGames, req.ProcessedGames,
		req.SuccessfulScrapes, req.FailedScrapes, req.ErrorMessage,
		formatTime(req.StartedAt), formatTime(req.CompletedAt),
		req.CreatedAt.Format(time.RFC3339), req.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindScrapeRequestByID retrieves a request by ID.
func (s *ScrapeRequestService) FindScrapeRequestByID(ctx context.Context, id string) (*gpa.ScrapeRequest, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, platform_id, status, total_games, processed_games,
			successful_scrapes, failed_scrapes, error_message,
			started_at, completed_at, created_at, updated_at
		FROM scrape_requests
		WHERE id = ?
	`, id)

	req, err := scanScrapeRequest(row.Scan)
	if err == sql.ErrNoRows {
		return nil, gpa.Errorf(gpa.ENOTFOUND, "scrape request not found")
	}
	return req, err
}

// FindScrapeRequests retrieves requests matching the filter, newest first.
func (s *ScrapeRequestService) FindScrapeRequests(ctx context.Context, filter gpa.ScrapeRequestFilter) ([]*gpa.ScrapeRequest, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, platform_id, status, total_games, processed_games,
		successful_scrapes, failed_scrapes, error_message,
		started_at, completed_at, created_at, updated_at
		FROM scrape_requests WHERE 1=1`)

	if filter.PlatformID != nil {
		query.WriteString(" AND platform_id = ?")
		args = append(args, *filter.PlatformID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*gpa.ScrapeRequest
	for rows.Next() {
		req, err := scanScrapeRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

// UpdateScrapeRequest updates an existing request.
func (s *ScrapeRequestService) UpdateScrapeRequest(ctx context.Context, id string, upd gpa.ScrapeRequestUpdate) (*gpa.ScrapeRequest, error) {
	req, err := s.FindScrapeRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}

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

	req.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE scrape_requests
		SET status = ?, total_games = ?, processed_games = ?,
			successful_scrapes = ?, failed_scrapes = ?, error_message = ?,
			started_at = ?, completed_at = ?, updated_at = ?
		WHERE id = ?
	`, string(req.Status), req.TotalGames, req.ProcessedGames,
		req.SuccessfulScrapes, req.FailedScrapes, req.ErrorMessage,
		formatTime(req.StartedAt), formatTime(req.CompletedAt),
		req.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// scanScrapeRequest scans one request row.
func scanScrapeRequest(scan func(...any) error) (*gpa.ScrapeRequest, error) {
	var req gpa.ScrapeRequest
	var status string
	var startedAt, completedAt sql.NullString
	var createdAt, updatedAt string

	if err := scan(&req.ID, &req.PlatformID, &status, &req.TotalGames, &req.ProcessedGames,
		&req.SuccessfulScrapes, &req.FailedScrapes, &req.ErrorMessage,
		&startedAt, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	req.Status = gpa.RequestStatus(status)

	var err error
	if req.StartedAt, err = scanTime(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if req.CompletedAt, err = scanTime(completedAt, "completed_at"); err != nil {
		return nil, err
	}
	if req.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if req.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &req, nil
}
