// Package client opens the two databases the chat client talks to.
//
// # Local
//
// InitDatabase opens (or creates) the SQLite file that backs the local
// cache and applies the embedded goose migrations from migrations/local.
//
// # Remote
//
// OpenRemote opens the hosted Postgres database through the pgx stdlib
// driver. It does not touch the schema: a missing users table is a state the
// session controller must observe (setup required). MigrateRemote applies
// migrations/remote and is only called by the cleazy-setup operator tool.
//
// Goose output is routed through the project logger; see GooseLogger.
package client
