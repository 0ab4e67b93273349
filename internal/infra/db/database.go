package db

import (
	"context"

	"beads-store/db"
	"beads-store/internal/pkg/config"
	"beads-store/internal/pkg/errs"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the common query surface of *pgxpool.Pool and pgx.Tx; repositories
// accept it so the same code runs inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool builds a pgxpool with the shopspring decimal codec registered on
// every connection, so NUMERIC columns scan directly into decimal.Decimal.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse database config")
	}

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "failed to ping database")
	}

	if cfg.Migrate {
		if _, err := pool.Exec(ctx, db.Schema); err != nil {
			pool.Close()
			return nil, errs.Wrap(err, "failed to apply schema")
		}
	}

	return pool, nil
}
