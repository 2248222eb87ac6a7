package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the record store runs on.
// pgxmock pools satisfy it as well.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}
