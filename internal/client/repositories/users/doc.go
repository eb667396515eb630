// Package users is the persistence gateway for the remote cleazy_users table.
//
// The table lives in a hosted Postgres database and is reached through the
// pgx database/sql driver. Every failure leaving this package is an *Error
// carrying a closed ErrorKind, so callers branch on what went wrong (table
// missing, row missing, duplicate, backend unreachable) instead of on
// driver-specific codes.
package users
