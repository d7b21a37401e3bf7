package sqlite_test

import (
	"context"
	"testing"

	gpa "github.com/taimg1/game-platform-analyzer"
	"github.com/taimg1/game-platform-analyzer/sqlite"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestPlatform(t *testing.T, db *sqlite.DB, name string) *gpa.Platform {
	t.Helper()
	platform := &gpa.Platform{
		Name:              name,
		BaseURL:           "https://" + name + ".example.com",
		SearchURLTemplate: "https://" + name + ".example.com/search?q={query}",
	}
	require.NoError(t, sqlite.NewPlatformService(db).CreatePlatform(context.Background(), platform))
	return platform
}

func createTestGame(t *testing.T, db *sqlite.DB, name string) *gpa.Game {
	t.Helper()
	game := &gpa.Game{Name: name}
	require.NoError(t, sqlite.NewGameService(db).CreateGame(context.Background(), game))
	return game
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()

		for _, table := range []string{
			"platforms", "games", "scraped_game_data",
			"scrape_requests", "scrape_details", "scrape_results",
		} {
			var count int
			err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
			require.NoError(t, err, "table %s should exist", table)
		}
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
