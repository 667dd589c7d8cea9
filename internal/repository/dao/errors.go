package dao

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrDecorationNotFound = errors.New("decoration not found")
	ErrDuplicateRow       = errors.New("row already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// classify maps postgres failures onto the package sentinels and leaves any other error untouched.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicateRow, pgErr.ConstraintName)
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code),
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, pgErr.Message)
	}
	return err
}
