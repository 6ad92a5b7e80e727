package pg_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optguard/internal/db/migrations"
	"github.com/dmitrymomot/optguard/pkg/optionstore"
	"github.com/dmitrymomot/optguard/pkg/pg"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.False(t, pg.IsNotFoundError(nil))
	assert.False(t, pg.IsNotFoundError(errors.New("other")))
	assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
	assert.True(t, pg.IsNotFoundError(errors.Join(errors.New("query"), pgx.ErrNoRows)))
}

func TestConnect_Config(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestMigrate_MissingPath(t *testing.T) {
	t.Parallel()

	err := pg.Migrate(context.Background(), nil, pg.Config{}, slog.Default())
	assert.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)

	err = pg.Migrate(context.Background(), nil, pg.Config{MigrationsPath: "does/not/exist"}, slog.Default())
	assert.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)
}

func TestPostgresStore_Live(t *testing.T) {
	url := os.Getenv("PG_CONN_URL")
	if url == "" {
		t.Skip("PG_CONN_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := pg.Config{
		ConnectionString: url,
		MaxOpenConns:     2,
		RetryAttempts:    1,
		MigrationsTable:  "schema_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.MigrateFS(ctx, pool, migrations.FS, cfg, slog.Default()))
	require.NoError(t, pg.Healthcheck(pool, time.Second)(ctx))

	store := optionstore.NewPostgresStore(pool)
	t.Cleanup(func() { _ = store.Delete(context.Background(), "pg_test_option") })

	require.NoError(t, store.Set(ctx, "pg_test_option", map[string]any{"title": "Hi"}))
	got, err := store.Get(ctx, "pg_test_option")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Hi"}, got)
}
