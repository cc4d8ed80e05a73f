package offer

import (
	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/targeting"
)

// Placement is a campaign-product together with the section it shows in.
type Placement struct {
	CampaignProduct domain.CampaignProduct
	Section         string
}

// Placements lists a campaign's campaign-products in discovery order: the
// featured section first, then each named section, each in list order.
// Entries of the featured section are marked featured.
func Placements(c domain.Campaign) []Placement {
	out := make([]Placement, 0, len(c.FeaturedOffersSection.Products))
	for _, cp := range c.FeaturedOffersSection.Products {
		cp.IsFeatured = true
		out = append(out, Placement{CampaignProduct: cp, Section: SectionFor(cp, c.FeaturedOffersSection)})
	}
	for _, s := range c.Sections {
		for _, cp := range s.Products {
			out = append(out, Placement{CampaignProduct: cp, Section: SectionFor(cp, s)})
		}
	}
	return out
}

// AggregateOffersFromAllCampaigns evaluates every live campaign against
// profile and returns the offers to show, in discovery order.
//
// Campaigns are visited in the given order, which is also their precedence:
// when several campaigns show the same product, the earliest one wins and
// the others are dropped, so a product is offered at most once.
func AggregateOffersFromAllCampaigns(campaigns []domain.Campaign, profile domain.MemberProfile, products []domain.Product) []domain.Offer {
	catalog := indexProducts(products)
	seen := make(map[string]struct{})
	offers := make([]domain.Offer, 0)

	for _, c := range campaigns {
		if !c.IsLive() {
			continue
		}
		for _, p := range Placements(c) {
			if _, taken := seen[p.CampaignProduct.ProductID]; taken {
				continue
			}
			eval := targeting.EvaluateCampaignProduct(p.CampaignProduct, profile)
			if !eval.Show {
				continue
			}
			seen[p.CampaignProduct.ProductID] = struct{}{}
			offers = append(offers, GenerateOfferFromCampaignProduct(c.ID, p.CampaignProduct, catalog[p.CampaignProduct.ProductID], eval, p.Section))
		}
	}
	return offers
}

// SelectActiveCampaign picks the campaign used by the single-campaign demo
// preview: the first live perpetual campaign, else the first live campaign.
func SelectActiveCampaign(campaigns []domain.Campaign) (domain.Campaign, bool) {
	var fallback *domain.Campaign
	for i := range campaigns {
		c := campaigns[i]
		if !c.IsLive() {
			continue
		}
		if c.Type == domain.CampaignPerpetual {
			return c, true
		}
		if fallback == nil {
			fallback = &c
		}
	}
	if fallback == nil {
		return domain.Campaign{}, false
	}
	return *fallback, true
}

// GenerateOffersForCampaign evaluates a single campaign against profile.
// There is no cross-campaign deduplication on this path.
func GenerateOffersForCampaign(c domain.Campaign, profile domain.MemberProfile, products []domain.Product) []domain.Offer {
	catalog := indexProducts(products)
	offers := make([]domain.Offer, 0)
	for _, p := range Placements(c) {
		eval := targeting.EvaluateCampaignProduct(p.CampaignProduct, profile)
		if !eval.Show {
			continue
		}
		offers = append(offers, GenerateOfferFromCampaignProduct(c.ID, p.CampaignProduct, catalog[p.CampaignProduct.ProductID], eval, p.Section))
	}
	return offers
}

// DanglingReference is a campaign-product whose product is not in the
// catalog.
type DanglingReference struct {
	CampaignID        string
	CampaignProductID string
	ProductID         string
}

// FindDanglingReferences lists the campaign-products of live campaigns that
// reference unknown products. Offers are still generated for them; callers
// use this to report the data problem.
func FindDanglingReferences(campaigns []domain.Campaign, products []domain.Product) []DanglingReference {
	catalog := indexProducts(products)
	var out []DanglingReference
	for _, c := range campaigns {
		if !c.IsLive() {
			continue
		}
		for _, p := range Placements(c) {
			if _, ok := catalog[p.CampaignProduct.ProductID]; ok {
				continue
			}
			out = append(out, DanglingReference{
				CampaignID:        c.ID,
				CampaignProductID: p.CampaignProduct.ID,
				ProductID:         p.CampaignProduct.ProductID,
			})
		}
	}
	return out
}

// indexProducts maps product ids to copies of the products. The first
// product with a given id wins.
func indexProducts(products []domain.Product) map[string]*domain.Product {
	idx := make(map[string]*domain.Product, len(products))
	for i := range products {
		if _, dup := idx[products[i].ID]; dup {
			continue
		}
		p := products[i]
		idx[p.ID] = &p
	}
	return idx
}
