package port

import (
	"context"

	"storefront-offers/internal/core/domain"
)

// CatalogRepository is the outbound port that supplies campaigns, products,
// configured offers, flags and member profiles. Implementations must be
// safe for concurrent use. The returned catalog is owned by the caller's
// read path and must not be mutated.
type CatalogRepository interface {
	// LoadCatalog returns the full catalog with campaigns in precedence
	// order.
	LoadCatalog(ctx context.Context) (domain.Catalog, error)
	// GetProfile returns the profile with the given id, or nil when there
	// is none.
	GetProfile(ctx context.Context, id string) (*domain.MemberProfile, error)
	// ListProfiles returns every profile in a stable order.
	ListProfiles(ctx context.Context) ([]domain.MemberProfile, error)
}
