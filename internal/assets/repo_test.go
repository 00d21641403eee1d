package assets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/graceline/byom-backend/pkg/db/models"
	"github.com/graceline/byom-backend/pkg/enums"
)

func setupAssetsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS asset_entries (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  image_url TEXT NOT NULL,
  kind TEXT NOT NULL DEFAULT 'builtin',
  owner_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func TestRepositoryListBuiltins(t *testing.T) {
	db := setupAssetsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.AssetEntry{Name: "Flame", ImageURL: "https://cdn.example.com/flame.png", Kind: enums.AssetKindBuiltin})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.AssetEntry{Name: "Star", ImageURL: "https://cdn.example.com/star.png", Kind: enums.AssetKindBuiltin})
	require.NoError(t, err)

	ownerID := uuid.New()
	_, err = repo.Create(ctx, &models.AssetEntry{Name: "Mine", ImageURL: "https://cdn.example.com/mine.png", Kind: enums.AssetKindCustom, OwnerID: &ownerID})
	require.NoError(t, err)

	builtins, err := repo.ListBuiltins(ctx)
	require.NoError(t, err)
	require.Len(t, builtins, 2)
	assert.Equal(t, "Flame", builtins[0].Name)
	assert.Equal(t, "Star", builtins[1].Name)
}

func TestRepositoryListForOwnerScopesByOwner(t *testing.T) {
	db := setupAssetsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	_, err := repo.Create(ctx, &models.AssetEntry{Name: "Mine", ImageURL: "https://cdn.example.com/mine.png", Kind: enums.AssetKindCustom, OwnerID: &owner})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.AssetEntry{Name: "Theirs", ImageURL: "https://cdn.example.com/theirs.png", Kind: enums.AssetKindCustom, OwnerID: &other})
	require.NoError(t, err)

	entries, err := repo.ListForOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mine", entries[0].Name)
}

func TestRepositoryFindByID(t *testing.T) {
	db := setupAssetsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.AssetEntry{Name: "Flame", ImageURL: "https://cdn.example.com/flame.png", Kind: enums.AssetKindBuiltin})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
