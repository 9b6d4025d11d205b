// Package migrations embeds the archive DDL for the migrate command and the
// test suites. Production archives arrive pre-populated from the import
// pipeline; this schema only bootstraps empty development databases.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
