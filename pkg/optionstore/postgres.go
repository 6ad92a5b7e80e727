package optionstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/optguard/pkg/pg"
)

const (
	pgSelectOption = `SELECT value FROM options WHERE name = $1`
	pgUpsertOption = `INSERT INTO options (name, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	pgDeleteOption = `DELETE FROM options WHERE name = $1`
)

// Querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx the store needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps options in the options table.
type PostgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, name string) (any, error) {
	var data []byte
	if err := s.db.QueryRow(ctx, pgSelectOption, name).Scan(&data); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrBackend, err)
	}
	return decode(data)
}

func (s *PostgresStore) Set(ctx context.Context, name string, value any) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, pgUpsertOption, name, data); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	if _, err := s.db.Exec(ctx, pgDeleteOption, name); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}
