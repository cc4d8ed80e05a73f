package port

import (
	"context"
	"errors"

	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/storefront"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidPreviewMode = errors.New("invalid preview mode")
)

// StorefrontUseCase is the primary port of the storefront service. It turns
// the current catalog and an optional member profile into what the
// storefront page renders, and lets admins preview a single campaign.
type StorefrontUseCase interface {
	// Storefront composes the storefront. Without a profile the configured
	// offers are shown. An unknown mode yields ErrInvalidPreviewMode and an
	// unknown profile ErrProfileNotFound.
	Storefront(ctx context.Context, req StorefrontReq) (*StorefrontResp, error)

	// PreviewCampaign evaluates every campaign-product of one campaign,
	// whatever its status, and explains each decision. It returns
	// ErrCampaignNotFound or ErrProfileNotFound for unknown ids.
	PreviewCampaign(ctx context.Context, req PreviewReq) (*PreviewResp, error)

	// ListProfiles returns the demo member profiles.
	ListProfiles(ctx context.Context) ([]domain.MemberProfile, error)

	// ListCampaigns summarises every campaign in precedence order.
	ListCampaigns(ctx context.Context) ([]CampaignSummary, error)
}

type StorefrontReq struct {
	// ProfileID is optional.
	ProfileID string
	// Mode defaults to live when empty.
	Mode storefront.Mode
}

// StorefrontResp is the composed page together with the profile it was
// evaluated for.
type StorefrontResp struct {
	ProfileID string `json:"profileId,omitempty"`
	storefront.Presentation
}

type PreviewReq struct {
	CampaignID string
	ProfileID  string
}

// PreviewResp explains how a campaign renders for a profile.
type PreviewResp struct {
	Campaign  CampaignSummary  `json:"campaign"`
	ProfileID string           `json:"profileId,omitempty"`
	Products  []ProductPreview `json:"products"`
}

// ProductPreview is the evaluation of one campaign-product.
type ProductPreview struct {
	CampaignProductID string        `json:"campaignProductId"`
	ProductID         string        `json:"productId"`
	Section           string        `json:"section"`
	IsFeatured        bool          `json:"isFeatured"`
	Show              bool          `json:"show"`
	MatchedRule       bool          `json:"matchedRule"`
	Reasons           []string      `json:"reasons"`
	Offer             *domain.Offer `json:"offer,omitempty"`
}

type CampaignSummary struct {
	ID     string                `json:"id"`
	Name   string                `json:"name"`
	Status domain.CampaignStatus `json:"status"`
	Type   domain.CampaignType   `json:"type"`
}
