package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-offers/internal/core/domain"
)

func TestEvaluateCampaignProduct(t *testing.T) {
	targeted := domain.CampaignProduct{
		ID:        "cp-1",
		ProductID: "auto-refi",
		Targeting: domain.Targeting{Rule: domain.Leaf(domain.AttrCreditScore, domain.OpGte, domain.Number(700))},
		Overrides: domain.DisplayOverrides{Headline: "Refinance and save", Attributes: []string{"Low APR"}},
	}

	t.Run("matching rule shows", func(t *testing.T) {
		eval := EvaluateCampaignProduct(targeted, member())
		assert.True(t, eval.Show)
		assert.True(t, eval.MatchedRule)
		assert.Equal(t, targeted.Overrides, eval.Overrides)
	})

	t.Run("failing rule hides", func(t *testing.T) {
		low := member()
		low.Attributes[domain.AttrCreditScore] = domain.Number(640)
		eval := EvaluateCampaignProduct(targeted, low)
		assert.False(t, eval.Show)
		assert.False(t, eval.MatchedRule)
	})

	t.Run("untargeted always shows", func(t *testing.T) {
		demo := domain.CampaignProduct{ID: "cp-2", ProductID: "savings"}
		eval := EvaluateCampaignProduct(demo, domain.MemberProfile{})
		assert.True(t, eval.Show)
		assert.False(t, eval.MatchedRule)
	})

	t.Run("overrides are copied", func(t *testing.T) {
		eval := EvaluateCampaignProduct(targeted, member())
		eval.Overrides.Attributes[0] = "changed"
		assert.Equal(t, "Low APR", targeted.Overrides.Attributes[0])
	})
}
