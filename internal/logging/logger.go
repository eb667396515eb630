// Package logging is the logger every client layer receives at construction:
// the session controller, the webhook responder, the local cache and the
// setup tool. Output is diagnostic only and goes to stderr, never into the
// chat transcript.
package logging

import "context"

// Logger takes a message plus alternating key and value args, in the
// log/slog convention:
//
//	log.Warn(ctx, "bot reply failed", "error", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	// Error is for failures the user sees the effect of, such as an
	// unreachable webhook or an unwritable cache.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a Logger that adds args to every record.
	With(args ...any) Logger
}
