// Package session holds the chat client's application state and the
// transitions that change it.
//
// A Controller owns the database status, the authenticated user, the visible
// transcript, the cached user list and the loading indicator. Views never
// mutate that state directly: they call a transition (Startup, Login,
// SendMessage, AddUser, ...) and read the result through Snapshot.
//
// # Sessions
//
// Every successful Login starts a new session with a fresh identifier. Work
// that completes after the session it was issued under has ended (a bot reply
// arriving after Logout, for instance) is dropped and reported as
// ErrSessionChanged instead of leaking into whoever is logged in now.
//
// # Remote failures
//
// The table check at startup collapses every failure into StatusSetupRequired. A
// missing users table is logged as a warning, anything else as an error, so an
// operator can tell a fresh install from a network problem in the logs.
package session
