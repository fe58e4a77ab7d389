package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool opens a connection pool against the given Postgres URL.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
