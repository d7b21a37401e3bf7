package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/google/uuid"
)

var _ gpa.ScrapeDetailService = (*ScrapeDetailService)(nil)

// ScrapeDetailService implements gpa.ScrapeDetailService using SQLite.
// Details are append-only and retrieved in insertion order, which matches
// URL discovery order.
type ScrapeDetailService struct {
	db *DB
}

// NewScrapeDetailService creates a new ScrapeDetailService.
func NewScrapeDetailService(db *DB) *ScrapeDetailService {
	return &ScrapeDetailService{db: db}
}

// CreateScrapeDetail creates a new detail record.
func (s *ScrapeDetailService) CreateScrapeDetail(ctx context.Context, detail *gpa.ScrapeDetail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	detail.ID = uuid.New().String()
	if detail.Status == "" {
		detail.Status = gpa.DetailPending
	}
	detail.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrape_details (
			id, scrape_request_id, status, error_message, raw_payload, raw_hash,
			listing_id, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, detail.ID, detail.ScrapeRequestID, string(detail.Status), detail.ErrorMessage,
		detail.RawPayload, detail.RawHash, detail.ListingID,
		detail.CreatedAt.Format(time.RFC3339))

	return err
}

// FindScrapeDetails retrieves details matching the filter in insertion
// order.
func (s *ScrapeDetailService) FindScrapeDetails(ctx context.Context, filter gpa.ScrapeDetailFilter) ([]*gpa.ScrapeDetail, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, scrape_request_id, status, error_message, raw_payload, raw_hash,
		listing_id, created_at
		FROM scrape_details WHERE 1=1`)

	if filter.ScrapeRequestID != nil {
		query.WriteString(" AND scrape_request_id = ?")
		args = append(args, *filter.ScrapeRequestID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*gpa.ScrapeDetail
	for rows.Next() {
		detail, err := scanScrapeDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, rows.Err()
}

// scanScrapeDetail scans one detail row.
func scanScrapeDetail(scan func(...any) error) (*gpa.ScrapeDetail, error) {
	var detail gpa.ScrapeDetail
	var status string
	var listingID sql.NullString
	var createdAt string

	if err := scan(&detail.ID, &detail.ScrapeRequestID, &status, &detail.ErrorMessage,
		&detail.RawPayload, &detail.RawHash, &listingID, &createdAt); err != nil {
		return nil, err
	}

	detail.Status = gpa.DetailStatus(status)
	if listingID.Valid {
		detail.ListingID = &listingID.String
	}

	var err error
	if detail.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &detail, nil
}
