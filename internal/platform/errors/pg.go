package errors

// Postgres helpers for the archive sink: SQLSTATE classification into ErrorCode

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrUniqueViolation      = "23505"
	pgErrNotNullViolation     = "23502"
	pgErrInvalidTextRepr      = "22P02"
	pgErrStringTruncation     = "22001"
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrCannotConnectNow     = "57P03"
	pgErrTooManyConnections   = "53300"
)

// ExtractPgError returns the *pgconn.PgError found in err's chain
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique constraint violation (e.g. re-archiving a run)
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// PGCode maps a Postgres error to an ErrorCode; ok is false for non-Postgres errors
func PGCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrNotNullViolation, pgErrInvalidTextRepr, pgErrStringTruncation:
		return ErrorCodeInvalidArgument, true
	case pgErrCannotConnectNow, pgErrTooManyConnections:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeStorage, true
}

// FromPostgres wraps a pg error with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := PGCode(err)
	if !ok {
		code = ErrorCodeStorage
	}
	return Wrap(err, code, msg)
}

func isRetryablePG(err error) bool {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return false
	}
	switch pgErr.Code {
	case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrCannotConnectNow, pgErrTooManyConnections:
		return true
	}
	return false
}
