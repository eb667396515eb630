// Package local embeds the goose migrations of the on-disk chat cache.
package local

import "embed"

//go:embed *.sql
var Migrations embed.FS
