package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts pgxpool.Pool and pgx.Tx so repositories can be tested
// against pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres error codes the repositories map to domain sentinels.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
	// Raised by trigger functions via RAISE EXCEPTION, e.g. the profile
	// limit trigger.
	codeRaiseException = "P0001"
)
