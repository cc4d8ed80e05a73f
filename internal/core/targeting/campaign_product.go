package targeting

import "storefront-offers/internal/core/domain"

// Evaluation is the show/hide decision for one campaign-product and one
// profile.
type Evaluation struct {
	// Show is true when the targeting rule matched. Campaign-products
	// without a rule always show.
	Show bool
	// MatchedRule is true only when a non-empty rule matched, so
	// untargeted offers can be told apart from earned ones.
	MatchedRule bool
	// Overrides are the campaign-product's display overrides. Fields left
	// empty fall back to the catalog product when the offer is projected.
	Overrides domain.DisplayOverrides
	Reasons   []string
}

// EvaluateCampaignProduct applies cp's targeting rule to profile. It knows
// nothing about sections, campaigns or other campaign-products, so the live
// aggregate and the single-campaign demo path share it.
func EvaluateCampaignProduct(cp domain.CampaignProduct, profile domain.MemberProfile) Evaluation {
	res := Evaluate(cp.Targeting.Rule, profile)
	return Evaluation{
		Show:        res.Matched,
		MatchedRule: res.Matched && !domain.IsEmpty(cp.Targeting.Rule),
		Overrides:   cp.Overrides.Clone(),
		Reasons:     res.Reasons,
	}
}
