// Package demo holds the demo catalog used to seed a database and to run
// the service from a file.
package demo

import _ "embed"

// Catalog is the YAML demo catalog.
//
//go:embed catalog.yaml
var Catalog []byte
