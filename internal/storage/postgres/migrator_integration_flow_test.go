package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMigrationStatus(t *testing.T, store *Store, wantVersion int64, wantCount int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	version, count, err := store.MigrationStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, wantVersion, version, "version")
	require.Equal(t, wantCount, count, "applied count")
}

func TestMigrator_CatalogLifecycle(t *testing.T) {
	store := rawTestStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	require.NoError(t, store.MigrateDown(ctx, 100), "reset")
	requireMigrationStatus(t, store, 0, 0)

	require.NoError(t, store.MigrateUp(ctx, 1))
	requireMigrationStatus(t, store, 1, 1)
	products, err := NewCatalogRepository(store).ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products, "schema without seed")

	require.NoError(t, store.MigrateUp(ctx, 0))
	requireMigrationStatus(t, store, 2, 2)

	// Повторный up ничего не меняет.
	require.NoError(t, store.MigrateUp(ctx, 0))
	requireMigrationStatus(t, store, 2, 2)
	products, err = NewCatalogRepository(store).ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 3)

	require.NoError(t, store.MigrateDown(ctx, 1))
	requireMigrationStatus(t, store, 1, 1)

	require.NoError(t, store.MigrateDown(ctx, 0))
	requireMigrationStatus(t, store, 0, 0)

	require.NoError(t, store.MigrateDown(ctx, 1), "down on empty state is a no-op")

	// Оставляем схему в рабочем состоянии для остальных тестов.
	require.NoError(t, store.MigrateUp(ctx, 0))
}

func TestMigrator_Guards(t *testing.T) {
	var nilStore *Store
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, nilStore.MigrateUp(ctx, 0))
	assert.Error(t, nilStore.MigrateDown(ctx, 1))
	_, _, err := nilStore.MigrationStatus(ctx)
	assert.Error(t, err)

	store := rawTestStore(t)
	assert.Error(t, store.migrate(ctx, migrationDirection("sideways"), 0))
}
