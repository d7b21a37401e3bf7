package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/google/uuid"
)

var _ gpa.GameService = (*GameService)(nil)

// GameService implements gpa.GameService using SQLite.
type GameService struct {
	db *DB
}

// NewGameService creates a new GameService.
func NewGameService(db *DB) *GameService {
	return &GameService{db: db}
}

// CreateGame creates a new game. Returns ECONFLICT if a game with the same
// name already exists, which the identity resolver relies on to detect
// creation races.
func (s *GameService) CreateGame(ctx context.Context, game *gpa.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}

	game.ID = uuid.New().String()
	now := time.Now().UTC()
	game.CreatedAt = now
	game.UpdatedAt = now

	metadata, err := marshalJSON(game.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, name, description, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, game.ID, game.Name, game.Description, metadata,
		game.CreatedAt.Format(time.RFC3339), game.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return gpa.Errorf(gpa.ECONFLICT, "game with name %q already exists", game.Name)
	}
	return err
}

// FindGameByID retrieves a game by ID.
func (s *GameService) FindGameByID(ctx context.Context, id string) (*gpa.Game, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, metadata, created_at, updated_at
		FROM games
		WHERE id = ?
	`, id)

	game, err := scanGame(row.Scan)
	if err == sql.ErrNoRows {
		return nil, gpa.Errorf(gpa.ENOTFOUND, "game not found")
	}
	return game, err
}

// FindGameByName retrieves a game by its exact name.
func (s *GameService) FindGameByName(ctx context.Context, name string) (*gpa.Game, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, metadata, created_at, updated_at
		FROM games
		WHERE name = ?
	`, name)

	game, err := scanGame(row.Scan)
	if err == sql.ErrNoRows {
		return nil, gpa.Errorf(gpa.ENOTFOUND, "game not found")
	}
	return game, err
}

// FindGames retrieves games matching the filter.
func (s *GameService) FindGames(ctx context.Context, filter gpa.GameFilter) ([]*gpa.Game, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, description, metadata, created_at, updated_at FROM games WHERE 1=1")

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

	var games []*gpa.Game
	for rows.Next() {
		game, err := scanGame(rows.Scan)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, rows.Err()
}

// DeleteGame permanently removes a game and its listings.
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return gpa.Errorf(gpa.ENOTFOUND, "game not found")
	}

	return nil
}

// scanGame scans one game row.
func scanGame(scan func(...any) error) (*gpa.Game, error) {
	var game gpa.Game
	var metadata sql.NullString
	var createdAt, updatedAt string

	if err := scan(&game.ID, &game.Name, &game.Description, &metadata, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if game.Metadata, err = unmarshalJSON(metadata, "metadata"); err != nil {
		return nil, err
	}
	if game.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if game.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &game, nil
}
