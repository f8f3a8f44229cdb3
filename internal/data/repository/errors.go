package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violated")
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
	ErrCheckViolation      = errors.New("check constraint violated")

	// ErrNoRowsAffected is returned by writes that matched nothing.
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrUnavailable marks failures worth retrying later: the database could not be reached
	// or the query was cut short.
	ErrUnavailable = errors.New("database unavailable")
)

// classify tags err with one of the sentinels above while keeping the original in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return errors.Join(ErrUniqueViolation, err)
		case pgErr.Code == "23503":
			return errors.Join(ErrForeignKeyViolation, err)
		case pgErr.Code == "23514":
			return errors.Join(ErrCheckViolation, err)
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "22":
			// data exception, e.g. 22003 numeric value out of range
			return errors.Join(ErrCheckViolation, err)
		case len(pgErr.Code) == 5 && (pgErr.Code[:2] == "08" || pgErr.Code[:2] == "57" || pgErr.Code[:2] == "53"):
			// connection exception, operator intervention, insufficient resources
			return errors.Join(ErrUnavailable, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		pgconn.Timeout(err):
		return errors.Join(ErrUnavailable, err)
	}

	return err
}

// wrap classifies err and prefixes it with what the repository was doing.
func wrap(err error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, classify(err))...)
}
