//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx alike, so the fixtures
// below can seed rows both outside and inside a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
