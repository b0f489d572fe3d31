// Package migrations holds the SQL schema, embedded so the binary can migrate
// a database without shipping extra files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
