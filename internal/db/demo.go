package db

import (
	"storefront-offers/db/demo"
	"storefront-offers/internal/adapter/file"
	"storefront-offers/internal/core/domain"
)

// demoDocument decodes the embedded demo catalog. It panics on a malformed
// document since the file ships with the binary.
func demoDocument() file.Document {
	doc, err := file.Decode(demo.Catalog)
	if err != nil {
		panic(err)
	}
	return doc
}

// DemoCatalog returns the embedded demo catalog.
func DemoCatalog() domain.Catalog { return demoDocument().Catalog() }

// DemoProfiles returns the embedded demo member profiles.
func DemoProfiles() []domain.MemberProfile { return demoDocument().Profiles }
