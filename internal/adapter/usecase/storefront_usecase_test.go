package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/port"
	"storefront-offers/internal/core/port/mocks"
	"storefront-offers/internal/core/storefront"
)

type spyRecorder struct {
	modes    []string
	offers   []int
	dangling int
}

func (s *spyRecorder) ObserveStorefront(mode string, _ bool, offers int, _ time.Duration) {
	s.modes = append(s.modes, mode)
	s.offers = append(s.offers, offers)
}

func (s *spyRecorder) AddDanglingReferences(n int) { s.dangling += n }

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Campaigns: []domain.Campaign{
			{
				ID:     "seasonal",
				Name:   "Spring Rates",
				Status: domain.CampaignLive,
				Type:   domain.CampaignSeasonal,
				Sections: []domain.Section{{
					Name: "Auto Loans & Offers",
					Products: []domain.CampaignProduct{{
						ID: "s-auto", ProductID: "auto",
						Targeting: domain.Targeting{Rule: domain.Leaf(domain.AttrCreditScore, domain.OpGte, domain.Number(700))},
						Overrides: domain.DisplayOverrides{Headline: "Spring auto rates"},
					}},
				}},
			},
			{
				ID:     "always-on",
				Name:   "Always On",
				Status: domain.CampaignLive,
				Type:   domain.CampaignPerpetual,
				FeaturedOffersSection: domain.Section{
					Name:     "Featured",
					Products: []domain.CampaignProduct{{ID: "p-card", ProductID: "card"}},
				},
				Sections: []domain.Section{{
					Name: "Auto Loans & Offers",
					Products: []domain.CampaignProduct{
						{ID: "p-auto", ProductID: "auto"},
						{ID: "p-ghost", ProductID: "ghost"},
					},
				}},
			},
			{
				ID:     "draft",
				Name:   "Next Quarter",
				Status: domain.CampaignDraft,
				Type:   domain.CampaignScheduled,
				Sections: []domain.Section{{
					Name: "Savings & Deposits",
					Products: []domain.CampaignProduct{{
						ID: "d-save", ProductID: "save",
						Targeting: domain.Targeting{Rule: domain.Leaf(domain.AttrDirectDeposit, domain.OpEq, domain.Bool(true))},
					}},
				}},
			},
		},
		Products: []domain.Product{
			{ID: "auto", Title: "Auto Loan"},
			{ID: "card", Title: "Rewards Card"},
			{ID: "save", Title: "High Yield Savings"},
		},
		Offers: []domain.Offer{
			{ID: "cfg-1", Title: "Configured featured", Section: "Featured", IsFeatured: true},
			{ID: "cfg-2", Title: "Configured card", Section: "Credit Cards"},
		},
		Flags: domain.FeatureFlags{},
	}
}

func goodProfile() *domain.MemberProfile {
	return &domain.MemberProfile{ID: "m-1", Name: "Avery", Attributes: domain.Attributes{
		domain.AttrCreditScore: domain.Number(740),
	}}
}

func TestStorefront_LiveAggregatesAllCampaigns(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	rec := &spyRecorder{}

	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)
	repo.EXPECT().GetProfile(mock.Anything, "m-1").Return(goodProfile(), nil)

	svc := NewStorefrontUseCase(repo, rec, nil)
	resp, err := svc.Storefront(context.Background(), port.StorefrontReq{ProfileID: "m-1"})
	require.NoError(t, err)

	assert.Equal(t, "m-1", resp.ProfileID)
	assert.True(t, resp.IsLiveMode)
	assert.Equal(t, 2, resp.LiveCampaignsCount)
	require.Len(t, resp.FeaturedOffers, 1)
	assert.Equal(t, "Rewards Card", resp.FeaturedOffers[0].Title)
	require.Len(t, resp.Sections, 1)

	// The seasonal campaign is listed first, so its auto offer wins.
	titles := []string{}
	for _, o := range resp.Sections[0].Offers {
		titles = append(titles, o.Title)
	}
	assert.Equal(t, []string{"Spring auto rates", ""}, titles)

	assert.Equal(t, []string{"live"}, rec.modes)
	assert.Equal(t, []int{3}, rec.offers)
	assert.Equal(t, 1, rec.dangling)
}

func TestStorefront_DemoUsesActiveCampaign(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)

	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)
	repo.EXPECT().GetProfile(mock.Anything, "m-1").Return(goodProfile(), nil)

	svc := NewStorefrontUseCase(repo, nil, nil)
	resp, err := svc.Storefront(context.Background(), port.StorefrontReq{ProfileID: "m-1", Mode: storefront.ModeDemo})
	require.NoError(t, err)

	assert.False(t, resp.IsLiveMode)
	require.Len(t, resp.Sections, 1)
	require.NotEmpty(t, resp.Sections[0].Offers)
	assert.Equal(t, "always-on", resp.Sections[0].Offers[0].Origin.CampaignID)
}

func TestStorefront_NoProfileUsesConfiguredOffers(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)

	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)

	svc := NewStorefrontUseCase(repo, nil, nil)
	resp, err := svc.Storefront(context.Background(), port.StorefrontReq{})
	require.NoError(t, err)

	assert.False(t, resp.IsLiveMode)
	require.Len(t, resp.FeaturedOffers, 1)
	assert.Equal(t, "cfg-1", resp.FeaturedOffers[0].ID)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "Credit Cards", resp.Sections[0].Name)
}

func TestStorefront_Errors(t *testing.T) {
	t.Run("invalid mode", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepository(t)
		svc := NewStorefrontUseCase(repo, nil, nil)
		_, err := svc.Storefront(context.Background(), port.StorefrontReq{Mode: "preview"})
		assert.ErrorIs(t, err, port.ErrInvalidPreviewMode)
	})

	t.Run("unknown profile", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepository(t)
		repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)
		repo.EXPECT().GetProfile(mock.Anything, "nobody").Return(nil, nil)

		svc := NewStorefrontUseCase(repo, nil, nil)
		_, err := svc.Storefront(context.Background(), port.StorefrontReq{ProfileID: "nobody"})
		assert.ErrorIs(t, err, port.ErrProfileNotFound)
	})

	t.Run("catalog failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		repo := mocks.NewMockCatalogRepository(t)
		repo.EXPECT().LoadCatalog(mock.Anything).Return(domain.Catalog{}, boom)

		svc := NewStorefrontUseCase(repo, nil, nil)
		_, err := svc.Storefront(context.Background(), port.StorefrontReq{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestPreviewCampaign_DraftWithoutProfile(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)

	svc := NewStorefrontUseCase(repo, nil, nil)
	resp, err := svc.PreviewCampaign(context.Background(), port.PreviewReq{CampaignID: "draft"})
	require.NoError(t, err)

	assert.Equal(t, port.CampaignSummary{ID: "draft", Name: "Next Quarter", Status: domain.CampaignDraft, Type: domain.CampaignScheduled}, resp.Campaign)
	require.Len(t, resp.Products, 1)
	pv := resp.Products[0]
	assert.Equal(t, "Savings & Deposits", pv.Section)
	assert.False(t, pv.Show)
	assert.Nil(t, pv.Offer)
	assert.Equal(t, []string{"directDeposit: attribute missing from profile"}, pv.Reasons)
}

func TestPreviewCampaign_WithProfile(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)
	repo.EXPECT().GetProfile(mock.Anything, "m-1").Return(goodProfile(), nil)

	svc := NewStorefrontUseCase(repo, nil, nil)
	resp, err := svc.PreviewCampaign(context.Background(), port.PreviewReq{CampaignID: "always-on", ProfileID: "m-1"})
	require.NoError(t, err)

	require.Len(t, resp.Products, 3)
	assert.True(t, resp.Products[0].IsFeatured)
	assert.Equal(t, "Featured", resp.Products[0].Section)
	for _, pv := range resp.Products {
		assert.True(t, pv.Show)
		assert.False(t, pv.MatchedRule)
		require.NotNil(t, pv.Offer)
	}
	assert.Equal(t, "Rewards Card", resp.Products[0].Offer.Title)
}

func TestPreviewCampaign_NotFound(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)

	svc := NewStorefrontUseCase(repo, nil, nil)
	_, err := svc.PreviewCampaign(context.Background(), port.PreviewReq{CampaignID: "missing"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestListCampaignsAndProfiles(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(testCatalog(), nil)
	repo.EXPECT().ListProfiles(mock.Anything).Return(nil, nil)

	svc := NewStorefrontUseCase(repo, nil, nil)

	campaigns, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "seasonal", campaigns[0].ID)
	assert.Equal(t, domain.CampaignDraft, campaigns[2].Status)

	profiles, err := svc.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}
