// Package offer turns evaluated campaign-products into storefront offers and
// merges the offers of every live campaign into one ordered list.
package offer

import (
	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/targeting"
)

// GenerateOfferFromCampaignProduct projects an eligible campaign-product into
// an offer. Each text field resolves to the campaign-product override, then
// the catalog product, then "". product may be nil when the campaign-product
// points at a product that no longer exists; the offer is still produced from
// the overrides alone.
//
// sectionName is the section the offer is shown in, usually cp.SectionName
// or else the name of the section cp is listed under (see SectionFor).
func GenerateOfferFromCampaignProduct(
	campaignID string,
	cp domain.CampaignProduct,
	product *domain.Product,
	eval targeting.Evaluation,
	sectionName string,
) domain.Offer {
	var base domain.Product
	if product != nil {
		base = *product
	}

	o := domain.Offer{
		ID:          cp.ID + "-" + campaignID,
		Title:       firstNonEmpty(eval.Overrides.Headline, base.Title),
		Description: firstNonEmpty(eval.Overrides.Description, base.Description),
		Section:     sectionName,
		IsFeatured:  cp.IsFeatured,
		IsRedeemed:  false,
		ImageURL:    base.ImageURL,
		CTALink:     base.CTALink,
		Origin: &domain.Origin{
			CampaignID:        campaignID,
			CampaignProductID: cp.ID,
			ProductID:         cp.ProductID,
		},
	}
	if o.IsFeatured {
		o.FeaturedHeadline = o.Title
		o.FeaturedDescription = o.Description
		if len(eval.Overrides.Attributes) > 0 {
			o.Attributes = append([]string(nil), eval.Overrides.Attributes...)
		}
	}
	return o
}

// SectionFor returns the section a campaign-product is displayed in.
func SectionFor(cp domain.CampaignProduct, parent domain.Section) string {
	return firstNonEmpty(cp.SectionName, parent.Name)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
