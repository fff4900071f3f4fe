package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the part of *pgxpool.Pool the repositories query through.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
