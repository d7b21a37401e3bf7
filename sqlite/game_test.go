package sqlite_test

import (
	"context"
	"testing"

	gpa "github.com/taimg1/game-platform-analyzer"
	"github.com/taimg1/game-platform-analyzer/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameService_CreateGame(t *testing.T) {
	t.Parallel()

	t.Run("creates game with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		game := &gpa.Game{
			Name:        "Hollow Knight",
			Description: "A metroidvania.",
			Metadata:    map[string]any{"genre": "metroidvania"},
		}

		err := svc.CreateGame(ctx, game)
		require.NoError(t, err)

		assert.NotEmpty(t, game.ID, "ID should be generated")
		assert.False(t, game.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for missing name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		err := svc.CreateGame(ctx, &gpa.Game{})
		require.Error(t, err)
		assert.Equal(t, gpa.EINVALID, gpa.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		createTestGame(t, db, "Celeste")

		err := svc.CreateGame(ctx, &gpa.Game{Name: "Celeste"})
		require.Error(t, err)
		assert.Equal(t, gpa.ECONFLICT, gpa.ErrorCode(err))
	})
}

func TestGameService_FindGameByName(t *testing.T) {
	t.Parallel()

	t.Run("returns game when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		game := createTestGame(t, db, "Celeste")

		found, err := svc.FindGameByName(ctx, "Celeste")
		require.NoError(t, err)
		assert.Equal(t, game.ID, found.ID)
		assert.Equal(t, "Celeste", found.Name)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		_, err := svc.FindGameByName(ctx, "Nonexistent Game")
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})

	t.Run("name match is exact", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		createTestGame(t, db, "Celeste")

		_, err := svc.FindGameByName(ctx, "celeste")
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})
}

func TestGameService_FindGameByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips metadata", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		game := &gpa.Game{
			Name:     "Factorio",
			Metadata: map[string]any{"developer": "Wube", "year": float64(2020)},
		}
		require.NoError(t, svc.CreateGame(ctx, game))

		found, err := svc.FindGameByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.Metadata, found.Metadata)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		_, err := svc.FindGameByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})
}

func TestGameService_FindGames(t *testing.T) {
	t.Parallel()

	t.Run("returns all games sorted by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		createTestGame(t, db, "Celeste")
		createTestGame(t, db, "Anodyne")
		createTestGame(t, db, "Braid")

		games, err := svc.FindGames(ctx, gpa.GameFilter{})
		require.NoError(t, err)
		require.Len(t, games, 3)
		assert.Equal(t, "Anodyne", games[0].Name)
		assert.Equal(t, "Braid", games[1].Name)
		assert.Equal(t, "Celeste", games[2].Name)
	})
}

func TestGameService_DeleteGame(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing game", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		game := createTestGame(t, db, "Celeste")

		require.NoError(t, svc.DeleteGame(ctx, game.ID))

		_, err := svc.FindGameByID(ctx, game.ID)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGameService(db)
		ctx := context.Background()

		err := svc.DeleteGame(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})
}
