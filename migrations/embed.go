package migrations

import "embed"

// Files holds the backend schema, applied in version order by db.OpenSQLite.
//
//go:embed *.sql
var Files embed.FS
