package optionstore_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/optguard/pkg/optionstore"
)

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = r.data
	return nil
}

// fakeQuerier interprets the store's three statements against a map.
type fakeQuerier struct {
	rows map[string][]byte
	err  error
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{rows: make(map[string][]byte)}
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if q.err != nil {
		return pgconn.CommandTag{}, q.err
	}
	name := args[0].(string)
	switch {
	case strings.HasPrefix(sql, "INSERT"):
		q.rows[name] = args[1].([]byte)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(sql, "DELETE"):
		delete(q.rows, name)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, errors.New("unexpected statement")
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if q.err != nil {
		return fakeRow{err: q.err}
	}
	data, ok := q.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{data: data}
}

func TestPostgresStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		db := newFakeQuerier()
		s := optionstore.NewPostgresStore(db)

		require.NoError(t, s.Set(ctx, "theme_opts", map[string]any{"color": "http://x"}))
		assert.JSONEq(t, `{"color":"http://x"}`, string(db.rows["theme_opts"]))

		got, err := s.Get(ctx, "theme_opts")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"color": "http://x"}, got)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		s := optionstore.NewPostgresStore(newFakeQuerier())
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, optionstore.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		db := newFakeQuerier()
		s := optionstore.NewPostgresStore(db)
		require.NoError(t, s.Set(ctx, "a", 1))
		require.NoError(t, s.Delete(ctx, "a"))
		assert.Empty(t, db.rows)
	})

	t.Run("backend errors", func(t *testing.T) {
		t.Parallel()
		db := newFakeQuerier()
		db.err = errors.New("conn closed")
		s := optionstore.NewPostgresStore(db)

		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, optionstore.ErrBackend)
		assert.ErrorIs(t, s.Set(ctx, "a", 1), optionstore.ErrBackend)
		assert.ErrorIs(t, s.Delete(ctx, "a"), optionstore.ErrBackend)
	})
}
