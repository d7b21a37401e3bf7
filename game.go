package gpa

import (
	"context"
	"time"
)

// Game is a name-addressed domain entity representing one title,
// independent of any platform. Games are created lazily by the identity
// resolver on first sighting and are never deleted by the scrape flow.
type Game struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Validate returns an error if the game contains invalid fields.
func (g *Game) Validate() error {
	if g.Name == "" {
		return Errorf(EINVALID, "game name required")
	}
	return nil
}

// GameService represents a service for managing games.
// Game names are unique; CreateGame returns ECONFLICT when a game with the
// same name already exists, which callers resolve by re-reading.
type GameService interface {
	// CreateGame creates a new game.
	// Returns ECONFLICT if a game with the same name already exists.
	CreateGame(ctx context.Context, game *Game) error

	// FindGameByID retrieves a game by ID.
	// Returns ENOTFOUND if the game does not exist.
	FindGameByID(ctx context.Context, id string) (*Game, error)

	// FindGameByName retrieves a game by its exact name.
	// Returns ENOTFOUND if the game does not exist.
	FindGameByName(ctx context.Context, name string) (*Game, error)

	// FindGames retrieves games matching the filter.
	FindGames(ctx context.Context, filter GameFilter) ([]*Game, error)

	// DeleteGame permanently removes a game and its listings.
	// Returns ENOTFOUND if the game does not exist.
	DeleteGame(ctx context.Context, id string) error
}

// GameFilter represents a filter for FindGames.
type GameFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// GameResolver maps an extracted game name to a canonical Game entity,
// creating one if necessary. Creation races are resolved by re-reading
// after a uniqueness conflict; a resolver never silently creates
// duplicates.
type GameResolver interface {
	// Resolve returns the game with the given name, creating it if absent.
	// The description and metadata hints are used only when a new game is
	// created. Returns a non-nil game on success.
	Resolve(ctx context.Context, name, description string, metadata map[string]any) (*Game, error)
}
