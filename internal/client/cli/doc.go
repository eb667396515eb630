// Package cli provides the interactive Cleazy chat client.
//
// It wires configuration, the local cache, the remote users table, the bot
// webhook and the session controller, then drives them from a terminal REPL.
// Typical flow: check the database (showing the setup screen until the users
// table exists), prompt for credentials, then chat.
//
// Key features:
//   - Setup screen with retry while the users table is missing
//   - Login / Logout, with the last username offered as default
//   - Chat with coloured message bubbles and the pinned examples
//   - Admin settings: list, add and delete users
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
