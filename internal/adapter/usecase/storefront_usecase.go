package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/offer"
	"storefront-offers/internal/core/port"
	"storefront-offers/internal/core/storefront"
	"storefront-offers/internal/core/targeting"
)

// Recorder receives service measurements. metrics.Recorder implements it.
type Recorder interface {
	ObserveStorefront(mode string, profiled bool, offers int, elapsed time.Duration)
	AddDanglingReferences(n int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveStorefront(string, bool, int, time.Duration) {}
func (nopRecorder) AddDanglingReferences(int)                         {}

// StorefrontUseCase orchestrates the catalog repository and the offer engine
// to implement port.StorefrontUseCase.
type StorefrontUseCase struct {
	repo    port.CatalogRepository
	metrics Recorder
	logger  *slog.Logger
}

// NewStorefrontUseCase creates a use-case over repo. rec may be nil.
func NewStorefrontUseCase(repo port.CatalogRepository, rec Recorder, logger *slog.Logger) *StorefrontUseCase {
	if rec == nil {
		rec = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StorefrontUseCase{repo: repo, metrics: rec, logger: logger}
}

// Storefront composes the storefront for an optional profile. With a
// profile, live mode aggregates every live campaign and demo mode previews
// the active campaign only. Without a profile the configured offers are
// shown.
func (u *StorefrontUseCase) Storefront(ctx context.Context, req port.StorefrontReq) (*port.StorefrontResp, error) {
	start := time.Now()

	mode := req.Mode
	if mode == "" {
		mode = storefront.ModeLive
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", port.ErrInvalidPreviewMode, mode)
	}

	cat, err := u.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	profile, err := u.profile(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	live := cat.LiveCampaigns()
	in := storefront.Input{
		Mode:          mode,
		Profile:       profile,
		Configured:    cat.Offers,
		Flags:         cat.Flags,
		LiveCampaigns: len(live),
	}
	if profile != nil {
		in.Generated = u.generate(mode, live, *profile, cat.Products)
		u.reportDangling(live, cat.Products)
	}

	presentation := storefront.Compose(in)
	u.metrics.ObserveStorefront(string(mode), profile != nil, len(in.Generated), time.Since(start))

	return &port.StorefrontResp{ProfileID: req.ProfileID, Presentation: presentation}, nil
}

func (u *StorefrontUseCase) generate(mode storefront.Mode, live []domain.Campaign, profile domain.MemberProfile, products []domain.Product) []domain.Offer {
	if mode == storefront.ModeLive {
		return offer.AggregateOffersFromAllCampaigns(live, profile, products)
	}
	active, ok := offer.SelectActiveCampaign(live)
	if !ok {
		return []domain.Offer{}
	}
	return offer.GenerateOffersForCampaign(active, profile, products)
}

func (u *StorefrontUseCase) reportDangling(live []domain.Campaign, products []domain.Product) {
	refs := offer.FindDanglingReferences(live, products)
	for _, ref := range refs {
		u.logger.Warn("campaign product references unknown product",
			slog.String("campaign_id", ref.CampaignID),
			slog.String("campaign_product_id", ref.CampaignProductID),
			slog.String("product_id", ref.ProductID),
		)
	}
	if len(refs) > 0 {
		u.metrics.AddDanglingReferences(len(refs))
	}
}

// PreviewCampaign evaluates each campaign-product of one campaign for a
// profile, regardless of the campaign's status. Without a profile the rules
// are evaluated against an empty attribute bag.
func (u *StorefrontUseCase) PreviewCampaign(ctx context.Context, req port.PreviewReq) (*port.PreviewResp, error) {
	cat, err := u.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c, ok := cat.Campaign(req.CampaignID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrCampaignNotFound, req.CampaignID)
	}

	var member domain.MemberProfile
	profile, err := u.profile(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		member = *profile
	}

	products := make(map[string]*domain.Product, len(cat.Products))
	for i := range cat.Products {
		if _, dup := products[cat.Products[i].ID]; !dup {
			products[cat.Products[i].ID] = &cat.Products[i]
		}
	}

	resp := &port.PreviewResp{
		Campaign:  summarize(c),
		ProfileID: req.ProfileID,
		Products:  []port.ProductPreview{},
	}
	for _, p := range offer.Placements(c) {
		cp := p.CampaignProduct
		eval := targeting.EvaluateCampaignProduct(cp, member)
		pv := port.ProductPreview{
			CampaignProductID: cp.ID,
			ProductID:         cp.ProductID,
			Section:           p.Section,
			IsFeatured:        cp.IsFeatured,
			Show:              eval.Show,
			MatchedRule:       eval.MatchedRule,
			Reasons:           eval.Reasons,
		}
		if eval.Show {
			o := offer.GenerateOfferFromCampaignProduct(c.ID, cp, products[cp.ProductID], eval, p.Section)
			pv.Offer = &o
		}
		resp.Products = append(resp.Products, pv)
	}
	return resp, nil
}

// ListProfiles returns the demo member profiles.
func (u *StorefrontUseCase) ListProfiles(ctx context.Context) ([]domain.MemberProfile, error) {
	profiles, err := u.repo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []domain.MemberProfile{}
	}
	return profiles, nil
}

// ListCampaigns summarises the catalog's campaigns in precedence order.
func (u *StorefrontUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignSummary, error) {
	cat, err := u.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	out := make([]port.CampaignSummary, 0, len(cat.Campaigns))
	for _, c := range cat.Campaigns {
		out = append(out, summarize(c))
	}
	return out, nil
}

// profile loads the profile with the given id. An empty id means no profile.
func (u *StorefrontUseCase) profile(ctx context.Context, id string) (*domain.MemberProfile, error) {
	if id == "" {
		return nil, nil
	}
	p, err := u.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrProfileNotFound, id)
	}
	return p, nil
}

func summarize(c domain.Campaign) port.CampaignSummary {
	return port.CampaignSummary{ID: c.ID, Name: c.Name, Status: c.Status, Type: c.Type}
}
