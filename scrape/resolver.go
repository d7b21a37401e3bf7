package scrape

import (
	"context"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Ensure Resolver implements gpa.GameResolver at compile time.
var _ gpa.GameResolver = (*Resolver)(nil)

// Resolver is the only place the system performs get-or-create for games.
// Concurrent scrapes of the same title from different platforms race on
// creation; the storage layer's uniqueness constraint serializes them and
// the loser re-reads.
type Resolver struct {
	Games gpa.GameService
}

// Resolve returns the game with the given name, creating it on first
// sighting. The description and metadata hints seed a newly created game
// only.
func (r *Resolver) Resolve(ctx context.Context, name, description string, metadata map[string]any) (*gpa.Game, error) {
	if name == "" {
		return nil, gpa.Errorf(gpa.EINVALID, "game name required")
	}

	game, err := r.Games.FindGameByName(ctx, name)
	if err == nil {
		return game, nil
	}
	if gpa.ErrorCode(err) != gpa.ENOTFOUND {
		return nil, err
	}

	game = &gpa.Game{
		Name:        name,
		Description: description,
		Metadata:    metadata,
	}
	err = r.Games.CreateGame(ctx, game)
	if err == nil {
		return game, nil
	}
	if gpa.ErrorCode(err) != gpa.ECONFLICT {
		return nil, err
	}

	// Lost a creation race; the winner's row must exist now. If it does
	// not, the conflict was not a benign race.
	game, err = r.Games.FindGameByName(ctx, name)
	if err != nil {
		if gpa.ErrorCode(err) == gpa.ENOTFOUND {
			return nil, gpa.Errorf(gpa.EINTERNAL, "game %q conflicted on create but cannot be read back", name)
		}
		return nil, err
	}
	return game, nil
}
