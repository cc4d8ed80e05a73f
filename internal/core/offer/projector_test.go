package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/targeting"
)

var autoRefi = domain.Product{
	ID:          "auto-refi",
	Title:       "Auto Refinance",
	Description: "Lower your monthly payment.",
	ImageURL:    "/img/auto.png",
	CTALink:     "/apply/auto",
}

func TestGenerateOffer_FallsBackToProduct(t *testing.T) {
	cp := domain.CampaignProduct{ID: "cp-1", ProductID: autoRefi.ID}
	eval := targeting.Evaluation{Show: true}

	got := GenerateOfferFromCampaignProduct("camp-1", cp, &autoRefi, eval, "Auto Loans & Offers")

	assert.Equal(t, domain.Offer{
		ID:          "cp-1-camp-1",
		Title:       "Auto Refinance",
		Description: "Lower your monthly payment.",
		Section:     "Auto Loans & Offers",
		ImageURL:    "/img/auto.png",
		CTALink:     "/apply/auto",
		Origin:      &domain.Origin{CampaignID: "camp-1", CampaignProductID: "cp-1", ProductID: "auto-refi"},
	}, got)
	assert.True(t, got.Generated())
}

func TestGenerateOffer_OverridesWin(t *testing.T) {
	cp := domain.CampaignProduct{ID: "cp-1", ProductID: autoRefi.ID, IsFeatured: true}
	eval := targeting.Evaluation{
		Show: true,
		Overrides: domain.DisplayOverrides{
			Headline:   "Drive for less",
			Attributes: []string{"No fees", "Fast approval"},
		},
	}

	got := GenerateOfferFromCampaignProduct("camp-1", cp, &autoRefi, eval, "Featured")

	assert.Equal(t, "Drive for less", got.Title)
	assert.Equal(t, "Lower your monthly payment.", got.Description)
	assert.True(t, got.IsFeatured)
	assert.False(t, got.IsRedeemed)
	assert.Equal(t, "Drive for less", got.FeaturedHeadline)
	assert.Equal(t, "Lower your monthly payment.", got.FeaturedDescription)
	assert.Equal(t, []string{"No fees", "Fast approval"}, got.Attributes)

	got.Attributes[0] = "mutated"
	assert.Equal(t, "No fees", eval.Overrides.Attributes[0])
}

func TestGenerateOffer_DanglingProduct(t *testing.T) {
	cp := domain.CampaignProduct{ID: "cp-9", ProductID: "removed"}
	eval := targeting.Evaluation{Show: true, Overrides: domain.DisplayOverrides{Description: "Still here"}}

	got := GenerateOfferFromCampaignProduct("camp-1", cp, nil, eval, "Special Offers")

	assert.Equal(t, "", got.Title)
	assert.Equal(t, "Still here", got.Description)
	assert.Equal(t, "", got.ImageURL)
	assert.Equal(t, "removed", got.Origin.ProductID)
}

func TestSectionFor(t *testing.T) {
	parent := domain.Section{Name: "Credit Cards"}
	assert.Equal(t, "Credit Cards", SectionFor(domain.CampaignProduct{}, parent))
	assert.Equal(t, "Your Prequalified Offers", SectionFor(domain.CampaignProduct{SectionName: "Your Prequalified Offers"}, parent))
}
