package domain

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft CampaignStatus = "draft"
	CampaignLive  CampaignStatus = "live"
	CampaignEnded CampaignStatus = "ended"
)

// CampaignType distinguishes always-on campaigns from time-boxed ones.
type CampaignType string

const (
	CampaignPerpetual CampaignType = "perpetual"
	CampaignScheduled CampaignType = "scheduled"
	CampaignSeasonal  CampaignType = "seasonal"
)

// Campaign is a collection of targeted product offers authored in the admin
// console. Only live campaigns take part in evaluation, and the order of
// campaigns in a list decides which one wins when two offer the same product.
type Campaign struct {
	ID     string         `json:"id" yaml:"id"`
	Name   string         `json:"name" yaml:"name"`
	Status CampaignStatus `json:"status" yaml:"status"`
	Type   CampaignType   `json:"type" yaml:"type"`
	// FeaturedOffersSection holds the campaign-products eligible for the
	// featured carousel. They never also appear in Sections.
	FeaturedOffersSection Section   `json:"featuredOffersSection" yaml:"featuredOffersSection"`
	Sections              []Section `json:"sections" yaml:"sections"`
}

// IsLive reports whether the campaign participates in evaluation.
func (c Campaign) IsLive() bool { return c.Status == CampaignLive }

// Section is a named, ordered group of campaign-products.
type Section struct {
	Name     string            `json:"name" yaml:"name"`
	Products []CampaignProduct `json:"products" yaml:"products"`
}

// CampaignProduct binds one catalog product to a campaign with a targeting
// rule and optional presentation overrides.
type CampaignProduct struct {
	ID        string    `json:"id" yaml:"id"`
	ProductID string    `json:"productId" yaml:"productId"`
	Targeting Targeting `json:"targeting" yaml:"targeting"`
	// SectionName, when set, places the offer in a section other than the
	// one the campaign-product is listed under.
	SectionName string           `json:"sectionName,omitempty" yaml:"sectionName,omitempty"`
	IsFeatured  bool             `json:"isFeatured,omitempty" yaml:"isFeatured,omitempty"`
	Overrides   DisplayOverrides `json:"overrides" yaml:"overrides"`
}

// DisplayOverrides replace catalog product copy for one campaign-product.
// Empty strings mean "not overridden".
type DisplayOverrides struct {
	Headline    string   `json:"headline,omitempty" yaml:"headline,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Attributes  []string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Clone returns a copy that shares no storage with o.
func (o DisplayOverrides) Clone() DisplayOverrides {
	out := o
	if o.Attributes != nil {
		out.Attributes = append([]string(nil), o.Attributes...)
	}
	return out
}
