// Package migrations holds the Postgres schema in golang-migrate layout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
