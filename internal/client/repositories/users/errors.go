package users

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/dmitrijs2005/cleazy-chat/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind is the closed set of failure meanings the gateway reports.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUndefinedTable
	KindNotFound
	KindDuplicate
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindUndefinedTable:
		return "undefined_table"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Postgres SQLSTATE codes the gateway understands.
const (
	codeUndefinedTable  = "42P01"
	codeUniqueViolation = "23505"
)

// Error is returned by every Repository method on failure.
type Error struct {
	Op   string
	Kind ErrorKind
	// Code is the SQLSTATE reported by Postgres, if any.
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("users %s: %s (%s): %v", e.Op, e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("users %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, common.ErrorNotFound) and friends work on gateway errors.
func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrorNotFound:
		return e.Kind == KindNotFound
	case common.ErrorAlreadyExists:
		return e.Kind == KindDuplicate
	}
	return false
}

// KindOf extracts the ErrorKind of err. Errors that did not come from this
// package are KindUnknown; nil is KindUnknown too.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	e := &Error{Op: op, Err: err}
	e.Kind, e.Code = classify(err)
	return e
}

func classify(err error) (ErrorKind, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUndefinedTable:
			return KindUndefinedTable, pgErr.Code
		case pgErr.Code == codeUniqueViolation:
			return KindDuplicate, pgErr.Code
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
			// class 08: connection exception
			return KindUnavailable, pgErr.Code
		}
		return KindUnknown, pgErr.Code
	}

	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound, ""
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindUnavailable, ""
	}

	return KindUnknown, ""
}
