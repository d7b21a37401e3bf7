package sqlite_test

import (
	"context"
	"testing"

	gpa "github.com/taimg1/game-platform-analyzer"
	"github.com/taimg1/game-platform-analyzer/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformService_CreatePlatform(t *testing.T) {
	t.Parallel()

	t.Run("creates platform with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		platform := &gpa.Platform{
			Name:              "steam",
			BaseURL:           "https://store.steampowered.com",
			SearchURLTemplate: "https://store.steampowered.com/search/?term={query}",
		}

		err := svc.CreatePlatform(ctx, platform)
		require.NoError(t, err)

		assert.NotEmpty(t, platform.ID, "ID should be generated")
		assert.False(t, platform.CreatedAt.IsZero(), "CreatedAt should be set")
		assert.False(t, platform.UpdatedAt.IsZero(), "UpdatedAt should be set")
	})

	t.Run("returns error for invalid platform", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		err := svc.CreatePlatform(ctx, &gpa.Platform{})
		require.Error(t, err)
		assert.Equal(t, gpa.EINVALID, gpa.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		createTestPlatform(t, db, "steam")

		err := svc.CreatePlatform(ctx, &gpa.Platform{
			Name:              "steam",
			BaseURL:           "https://other.example.com",
			SearchURLTemplate: "https://other.example.com/search?q={query}",
		})
		require.Error(t, err)
		assert.Equal(t, gpa.ECONFLICT, gpa.ErrorCode(err))
	})
}

func TestPlatformService_FindPlatformByID(t *testing.T) {
	t.Parallel()

	t.Run("returns platform when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		platform := createTestPlatform(t, db, "gog")

		found, err := svc.FindPlatformByID(ctx, platform.ID)
		require.NoError(t, err)
		assert.Equal(t, platform.ID, found.ID)
		assert.Equal(t, platform.Name, found.Name)
		assert.Equal(t, platform.BaseURL, found.BaseURL)
		assert.Equal(t, platform.SearchURLTemplate, found.SearchURLTemplate)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		_, err := svc.FindPlatformByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})
}

func TestPlatformService_FindPlatforms(t *testing.T) {
	t.Parallel()

	t.Run("returns all platforms with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		createTestPlatform(t, db, "steam")
		createTestPlatform(t, db, "gog")
		createTestPlatform(t, db, "epic")

		platforms, err := svc.FindPlatforms(ctx, gpa.PlatformFilter{})
		require.NoError(t, err)
		assert.Len(t, platforms, 3)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		createTestPlatform(t, db, "steam")
		createTestPlatform(t, db, "gog")

		name := "gog"
		platforms, err := svc.FindPlatforms(ctx, gpa.PlatformFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, platforms, 1)
		assert.Equal(t, "gog", platforms[0].Name)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
			createTestPlatform(t, db, name)
		}

		platforms, err := svc.FindPlatforms(ctx, gpa.PlatformFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, platforms, 2)
	})
}

func TestPlatformService_UpdatePlatform(t *testing.T) {
	t.Parallel()

	t.Run("updates platform fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		platform := createTestPlatform(t, db, "steam")

		newName := "steam-store"
		newSelector := "div.game-card a"
		updated, err := svc.UpdatePlatform(ctx, platform.ID, gpa.PlatformUpdate{
			Name:             &newName,
			GameDataSelector: &newSelector,
		})
		require.NoError(t, err)

		assert.Equal(t, "steam-store", updated.Name)
		assert.Equal(t, "div.game-card a", updated.GameDataSelector)
		assert.Equal(t, platform.BaseURL, updated.BaseURL, "unset fields should be unchanged")
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		name := "test"
		_, err := svc.UpdatePlatform(ctx, "nonexistent-id", gpa.PlatformUpdate{Name: &name})
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})
}

func TestPlatformService_DeletePlatform(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing platform", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		platform := createTestPlatform(t, db, "steam")

		err := svc.DeletePlatform(ctx, platform.ID)
		require.NoError(t, err)

		_, err = svc.FindPlatformByID(ctx, platform.ID)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPlatformService(db)
		ctx := context.Background()

		err := svc.DeletePlatform(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})
}
