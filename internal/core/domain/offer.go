package domain

// Offer is a displayable storefront entry. Offers authored directly in the
// admin console have a nil Origin; offers generated from campaign targeting
// always carry the campaign-product they came from.
type Offer struct {
	ID                  string   `json:"id" yaml:"id"`
	Title               string   `json:"title" yaml:"title"`
	Description         string   `json:"description" yaml:"description"`
	Section             string   `json:"section" yaml:"section"`
	IsFeatured          bool     `json:"isFeatured" yaml:"isFeatured"`
	IsRedeemed          bool     `json:"isRedeemed" yaml:"isRedeemed"`
	FeaturedHeadline    string   `json:"featuredHeadline,omitempty" yaml:"featuredHeadline,omitempty"`
	FeaturedDescription string   `json:"featuredDescription,omitempty" yaml:"featuredDescription,omitempty"`
	Attributes          []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	ImageURL            string   `json:"imageUrl" yaml:"imageUrl"`
	CTALink             string   `json:"ctaLink" yaml:"ctaLink"`
	Origin              *Origin  `json:"origin,omitempty" yaml:"-"`
}

// Origin records which campaign-product produced a generated offer.
type Origin struct {
	CampaignID        string `json:"campaignId"`
	CampaignProductID string `json:"campaignProductId"`
	ProductID         string `json:"productId"`
}

// Generated reports whether o was produced by rule evaluation.
func (o Offer) Generated() bool { return o.Origin != nil }
