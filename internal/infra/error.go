package infra

import (
	"errors"

	"beads-store/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

// WrapRepoErr classifies a driver error into a repository error kind.
// pgx.ErrNoRows maps to NOT_FOUND and unique violations to DUPLICATE_KEY;
// everything else is a DB_FAILURE unless an explicit kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	if err == nil {
		return nil
	}

	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	return RepositoryError{Kind: k, msg: msg, err: errs.Wrap(err, msg)}
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return KindDuplicateKey
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
