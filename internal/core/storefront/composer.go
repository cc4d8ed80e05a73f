// Package storefront arranges offers into what the storefront renders: the
// featured carousel and an ordered list of named sections.
package storefront

import (
	"slices"

	"storefront-offers/internal/core/domain"
)

// Well-known section names.
const (
	SectionPrequalified   = "Your Prequalified Offers"
	SectionCreditMountain = "Credit Mountain"
)

// sectionPriority is the display order of sections when no profile is
// selected. Sections not listed here follow, in discovery order.
var sectionPriority = []string{
	"Prequalified Offers",
	"Auto Loans & Offers",
	"Home Loans & Offers",
	"Credit Cards",
	"Savings & Deposits",
	"Retirement & Savings",
	"Special Offers",
}

// Mode selects how offers are produced for a selected profile.
type Mode string

const (
	// ModeLive aggregates every live campaign.
	ModeLive Mode = "live"
	// ModeDemo previews a single campaign.
	ModeDemo Mode = "demo"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == ModeLive || m == ModeDemo }

// Input is everything Compose needs.
type Input struct {
	Mode Mode
	// Profile is the selected member, or nil.
	Profile *domain.MemberProfile
	// Generated are the rule-driven offers for Profile. Ignored when
	// Profile is nil.
	Generated []domain.Offer
	// Configured are the admin-authored offers used without a profile.
	Configured    []domain.Offer
	Flags         domain.FeatureFlags
	LiveCampaigns int
}

// Section is one named group of offers.
type Section struct {
	Name             string         `json:"name"`
	Offers           []domain.Offer `json:"offers"`
	IsCreditMountain bool           `json:"isCreditMountain,omitempty"`
}

// Presentation is the composed storefront.
type Presentation struct {
	FeaturedOffers           []domain.Offer `json:"featuredOffers"`
	Sections                 []Section      `json:"sections"`
	IsCreditMountainGraduate bool           `json:"isCreditMountainGraduate"`
	IsLiveMode               bool           `json:"isLiveMode"`
	HasOffers                bool           `json:"hasOffers"`
	LiveCampaignsCount       int            `json:"liveCampaignsCount"`
}

// Compose builds the presentation. The overrides are decided up front:
//
//	graduate (profile graduated and flag on)  only the Credit Mountain section
//	flag on                                   no carousel, Credit Mountain section last
//	flag off                                  carousel, no Credit Mountain section
//
// and only then are the remaining offers grouped into sections.
func Compose(in Input) Presentation {
	creditMountain := in.Flags.Enabled(domain.FlagCreditMountain)
	graduate := creditMountain && in.Profile != nil && in.Profile.IsCreditMountainGraduate()

	source := in.Configured
	if in.Profile != nil {
		source = in.Generated
	}

	p := Presentation{
		FeaturedOffers:           []domain.Offer{},
		Sections:                 []Section{},
		IsCreditMountainGraduate: graduate,
		IsLiveMode:               in.Mode == ModeLive && in.Profile != nil,
		LiveCampaignsCount:       in.LiveCampaigns,
	}

	switch {
	case graduate:
		p.Sections = append(p.Sections, creditMountainSection(source))
	default:
		if !creditMountain {
			p.FeaturedOffers = featured(source, in.Profile == nil)
		}
		p.Sections = groupSections(source, in.Profile != nil)
		if creditMountain {
			p.Sections = append(p.Sections, creditMountainSection(source))
		}
	}

	p.HasOffers = len(p.FeaturedOffers) > 0
	for _, s := range p.Sections {
		if len(s.Offers) > 0 {
			p.HasOffers = true
		}
	}
	return p
}

// featured returns the carousel offers. Configured offers are ordered with
// redeemed ones last before filtering.
func featured(source []domain.Offer, configured bool) []domain.Offer {
	candidates := source
	if configured {
		candidates = slices.Clone(source)
		slices.SortStableFunc(candidates, func(a, b domain.Offer) int {
			return boolRank(a.IsRedeemed) - boolRank(b.IsRedeemed)
		})
	}
	out := []domain.Offer{}
	for _, o := range candidates {
		if o.IsFeatured && !o.IsRedeemed {
			out = append(out, cloneOffer(o))
		}
	}
	return out
}

// groupSections groups non-featured, non-redeemed offers by section, leaving
// out the Credit Mountain section.
func groupSections(source []domain.Offer, profileSelected bool) []Section {
	var sections []Section
	index := make(map[string]int)
	for _, o := range source {
		if o.IsFeatured || o.IsRedeemed || o.Section == SectionCreditMountain {
			continue
		}
		i, ok := index[o.Section]
		if !ok {
			i = len(sections)
			index[o.Section] = i
			sections = append(sections, Section{Name: o.Section})
		}
		sections[i].Offers = append(sections[i].Offers, cloneOffer(o))
	}

	if profileSelected {
		if i, ok := index[SectionPrequalified]; ok && i > 0 {
			hoisted := sections[i]
			sections = slices.Delete(sections, i, i+1)
			sections = slices.Insert(sections, 0, hoisted)
		}
	} else {
		slices.SortStableFunc(sections, func(a, b Section) int {
			return priority(a.Name) - priority(b.Name)
		})
	}
	if sections == nil {
		sections = []Section{}
	}
	return sections
}

func creditMountainSection(source []domain.Offer) Section {
	s := Section{Name: SectionCreditMountain, Offers: []domain.Offer{}, IsCreditMountain: true}
	for _, o := range source {
		if o.Section == SectionCreditMountain && !o.IsRedeemed {
			s.Offers = append(s.Offers, cloneOffer(o))
		}
	}
	return s
}

// priority ranks a section name for the no-profile ordering. The
// prequalified section ranks first under either of its names.
func priority(name string) int {
	if name == SectionPrequalified {
		return 0
	}
	if i := slices.Index(sectionPriority, name); i >= 0 {
		return i
	}
	return len(sectionPriority)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func cloneOffer(o domain.Offer) domain.Offer {
	o.Attributes = slices.Clone(o.Attributes)
	if o.Origin != nil {
		origin := *o.Origin
		o.Origin = &origin
	}
	return o
}
