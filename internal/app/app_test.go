package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/board-service/internal/cache"
	"jobmate/board-service/internal/config"
	"jobmate/board-service/internal/store"
)

func TestOpen_SQLiteWithoutRedis(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "nested", "board.db"),
		SeedDemo:    true,
	}
	ctx := context.Background()

	d, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, cache.Noop{}, d.Publisher)
	assert.Equal(t, cache.Noop{}, d.Recs)

	jobs, err := d.Store.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, len(store.DemoJobs))
}

func TestOpen_SeedsOnlyOnce(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "board.db"),
		SeedDemo:    true,
	}
	ctx := context.Background()

	d, err := Open(ctx, cfg)
	require.NoError(t, err)
	d.Close()

	d, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer d.Close()

	jobs, err := d.Store.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, len(store.DemoJobs))
}
