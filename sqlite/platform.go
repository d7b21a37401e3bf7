package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ gpa.PlatformService = (*PlatformService)(nil)

// PlatformService implements gpa.PlatformService using SQLite.
type PlatformService struct {
	db *DB
}

// NewPlatformService creates a new PlatformService.
func NewPlatformService(db *DB) *PlatformService {
	return &PlatformService{db: db}
}

// CreatePlatform creates a new platform.
func (s *PlatformService) CreatePlatform(ctx context.Context, platform *gpa.Platform) error {
	if err := platform.Validate(); err != nil {
		return err
	}

	platform.ID = uuid.New().String()
	now := time.Now().UTC()
	platform.CreatedAt = now
	platform.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO platforms (id, name, base_url, search_url_template, game_data_selector, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, platform.ID, platform.Name, platform.BaseURL, platform.SearchURLTemplate, platform.GameDataSelector,
		platform.CreatedAt.Format(time.RFC3339), platform.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return gpa.Errorf(gpa.ECONFLICT, "platform with name %q already exists", platform.Name)
	}
	return err
}

// FindPlatformByID retrieves a platform by ID.
func (s *PlatformService) FindPlatformByID(ctx context.Context, id string) (*gpa.Platform, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, base_url, search_url_template, game_data_selector, created_at, updated_at
		FROM platforms
		WHERE id = ?
	`, id)

	platform, err := scanPlatform(row.Scan)
	if err == sql.ErrNoRows {
		return nil, gpa.Errorf(gpa.ENOTFOUND, "platform not found")
	}
	return platform, err
}

// FindPlatforms retrieves platforms matching the filter.
func (s *PlatformService) FindPlatforms(ctx context.Context, filter gpa.PlatformFilter) ([]*gpa.Platform, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, base_url, search_url_template, game_data_selector, created_at, updated_at FROM platforms WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var platforms []*gpa.Platform
	for rows.Next() {
		platform, err := scanPlatform(rows.Scan)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, platform)
	}

	return platforms, rows.Err()
}

// UpdatePlatform updates an existing platform.
func (s *PlatformService) UpdatePlatform(ctx context.Context, id string, upd gpa.PlatformUpdate) (*gpa.Platform, error) {
	platform, err := s.FindPlatformByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		platform.Name = *upd.Name
	}
	if upd.BaseURL != nil {
		platform.BaseURL = *upd.BaseURL
	}
	if upd.SearchURLTemplate != nil {
		platform.SearchURLTemplate = *upd.SearchURLTemplate
	}
	if upd.GameDataSelector != nil {
		platform.GameDataSelector = *upd.GameDataSelector
	}

	if err := platform.Validate(); err != nil {
		return nil, err
	}

	platform.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE platforms
		SET name = ?, base_url = ?, search_url_template = ?, game_data_selector = ?, updated_at = ?
		WHERE id = ?
	`, platform.Name, platform.BaseURL, platform.SearchURLTemplate, platform.GameDataSelector,
		platform.UpdatedAt.Format(time.RFC3339), id)

	if isUniqueViolation(err) {
		return nil, gpa.Errorf(gpa.ECONFLICT, "platform with name %q already exists", platform.Name)
	}
	if err != nil {
		return nil, err
	}

	return platform, nil
}

// DeletePlatform permanently removes a platform.
func (s *PlatformService) DeletePlatform(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM platforms WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return gpa.Errorf(gpa.ENOTFOUND, "platform not found")
	}

	return nil
}

// scanPlatform scans one platform row.
func scanPlatform(scan func(...any) error) (*gpa.Platform, error) {
	var platform gpa.Platform
	var createdAt, updatedAt string

	if err := scan(&platform.ID, &platform.Name, &platform.BaseURL, &platform.SearchURLTemplate,
		&platform.GameDataSelector, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if platform.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if platform.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &platform, nil
}
