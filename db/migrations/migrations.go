package migrations

import "embed"

// FS embeds the SQL migrations of the storefront catalog schema. They are
// read by golang-migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
