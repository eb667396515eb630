// Package remote embeds the goose migrations that provision the hosted
// users table. They are applied by cleazy-setup, never by the chat client.
package remote

import "embed"

//go:embed *.sql
var Migrations embed.FS
