package domain

// FlagCreditMountain enables the Credit Mountain storefront experience.
const FlagCreditMountain = "storefront_creditMountain"

// FeatureFlags maps flag names to their state. Unknown flags are off.
type FeatureFlags map[string]bool

// Enabled reports whether the named flag is on.
func (f FeatureFlags) Enabled(name string) bool { return f[name] }

// Catalog is one consistent snapshot of everything the storefront is built
// from. It is treated as immutable: edits produce a new Catalog.
type Catalog struct {
	Campaigns []Campaign   `json:"campaigns" yaml:"campaigns"`
	Products  []Product    `json:"products" yaml:"products"`
	Offers    []Offer      `json:"offers" yaml:"offers"`
	Flags     FeatureFlags `json:"flags" yaml:"flags"`
}

// LiveCampaigns returns the live campaigns in list order.
func (c Catalog) LiveCampaigns() []Campaign {
	out := make([]Campaign, 0, len(c.Campaigns))
	for _, camp := range c.Campaigns {
		if camp.IsLive() {
			out = append(out, camp)
		}
	}
	return out
}

// Campaign returns the campaign with the given id.
func (c Catalog) Campaign(id string) (Campaign, bool) {
	for _, camp := range c.Campaigns {
		if camp.ID == id {
			return camp, true
		}
	}
	return Campaign{}, false
}
