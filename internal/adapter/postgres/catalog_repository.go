package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-offers/internal/core/domain"
)

// CatalogRepository implements port.CatalogRepository using pgxpool for
// PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// LoadCatalog reads the whole catalog inside one read-only repeatable-read
// transaction so that campaigns, products and offers are mutually
// consistent.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (cat domain.Catalog, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return cat, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if cat.Products, err = loadProducts(ctx, tx); err != nil {
		return cat, err
	}
	if cat.Campaigns, err = loadCampaigns(ctx, tx); err != nil {
		return cat, err
	}
	if cat.Offers, err = loadOffers(ctx, tx); err != nil {
		return cat, err
	}
	if cat.Flags, err = loadFlags(ctx, tx); err != nil {
		return cat, err
	}
	return cat, nil
}

func loadProducts(ctx context.Context, tx pgx.Tx) ([]domain.Product, error) {
	rows, err := tx.Query(ctx, `
        SELECT id, title, description, image_url, cta_link
        FROM products
        ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CTALink)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

// loadCampaigns assembles campaigns, their sections and campaign-products
// from three ordered queries. Campaigns keep their position order, which is
// their precedence.
func loadCampaigns(ctx context.Context, tx pgx.Tx) ([]domain.Campaign, error) {
	rows, err := tx.Query(ctx, `
        SELECT id, name, status, type
        FROM campaigns
        ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Status, &c.Type)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	byID := make(map[string]int, len(campaigns))
	for i, c := range campaigns {
		byID[c.ID] = i
	}

	type sectionRow struct {
		ID, CampaignID, Name string
		IsFeatured           bool
	}
	rows, err = tx.Query(ctx, `
        SELECT id, campaign_id, name, is_featured
        FROM campaign_sections
        ORDER BY campaign_id, position, id`)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	sections, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (sectionRow, error) {
		var s sectionRow
		err := row.Scan(&s.ID, &s.CampaignID, &s.Name, &s.IsFeatured)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan sections: %w", err)
	}

	// sectionRef locates a section inside campaigns; index -1 is the
	// featured section.
	type sectionRef struct{ campaign, index int }
	refs := make(map[string]sectionRef, len(sections))
	for _, s := range sections {
		ci, ok := byID[s.CampaignID]
		if !ok {
			continue
		}
		if s.IsFeatured {
			campaigns[ci].FeaturedOffersSection.Name = s.Name
			refs[s.ID] = sectionRef{campaign: ci, index: -1}
			continue
		}
		campaigns[ci].Sections = append(campaigns[ci].Sections, domain.Section{Name: s.Name})
		refs[s.ID] = sectionRef{campaign: ci, index: len(campaigns[ci].Sections) - 1}
	}

	type productRow struct {
		SectionID string
		CP        domain.CampaignProduct
	}
	rows, err = tx.Query(ctx, `
        SELECT section_id, id, product_id, section_name, is_featured, targeting, overrides
        FROM campaign_products
        ORDER BY section_id, position, id`)
	if err != nil {
		return nil, fmt.Errorf("query campaign products: %w", err)
	}
	cps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (productRow, error) {
		var (
			pr                        productRow
			targetingRaw, overrideRaw []byte
		)
		if err := row.Scan(&pr.SectionID, &pr.CP.ID, &pr.CP.ProductID, &pr.CP.SectionName,
			&pr.CP.IsFeatured, &targetingRaw, &overrideRaw); err != nil {
			return pr, err
		}
		if err := json.Unmarshal(targetingRaw, &pr.CP.Targeting); err != nil {
			return pr, fmt.Errorf("campaign product %s targeting: %w", pr.CP.ID, err)
		}
		if err := json.Unmarshal(overrideRaw, &pr.CP.Overrides); err != nil {
			return pr, fmt.Errorf("campaign product %s overrides: %w", pr.CP.ID, err)
		}
		return pr, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaign products: %w", err)
	}
	for _, pr := range cps {
		ref, ok := refs[pr.SectionID]
		if !ok {
			continue
		}
		c := &campaigns[ref.campaign]
		if ref.index < 0 {
			c.FeaturedOffersSection.Products = append(c.FeaturedOffersSection.Products, pr.CP)
			continue
		}
		c.Sections[ref.index].Products = append(c.Sections[ref.index].Products, pr.CP)
	}
	return campaigns, nil
}

func loadOffers(ctx context.Context, tx pgx.Tx) ([]domain.Offer, error) {
	rows, err := tx.Query(ctx, `
        SELECT id, title, description, section, is_featured, is_redeemed,
               featured_headline, featured_description, attributes, image_url, cta_link
        FROM offers
        ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}
	offers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Offer, error) {
		var o domain.Offer
		err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Section, &o.IsFeatured, &o.IsRedeemed,
			&o.FeaturedHeadline, &o.FeaturedDescription, &o.Attributes, &o.ImageURL, &o.CTALink)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan offers: %w", err)
	}
	return offers, nil
}

func loadFlags(ctx context.Context, tx pgx.Tx) (domain.FeatureFlags, error) {
	rows, err := tx.Query(ctx, `SELECT name, enabled FROM feature_flags`)
	if err != nil {
		return nil, fmt.Errorf("query flags: %w", err)
	}
	type flag struct {
		Name    string
		Enabled bool
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[flag])
	if err != nil {
		return nil, fmt.Errorf("scan flags: %w", err)
	}
	flags := make(domain.FeatureFlags, len(list))
	for _, f := range list {
		flags[f.Name] = f.Enabled
	}
	return flags, nil
}

// GetProfile returns a member profile by id, or nil when it does not exist.
func (r *CatalogRepository) GetProfile(ctx context.Context, id string) (*domain.MemberProfile, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, attributes FROM member_profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProfiles returns every member profile ordered by name.
func (r *CatalogRepository) ListProfiles(ctx context.Context) ([]domain.MemberProfile, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, attributes FROM member_profiles ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MemberProfile, error) {
		return scanProfile(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan profiles: %w", err)
	}
	return profiles, nil
}

func scanProfile(row pgx.Row) (domain.MemberProfile, error) {
	var (
		p   domain.MemberProfile
		raw []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &raw); err != nil {
		return p, err
	}
	if err := json.Unmarshal(raw, &p.Attributes); err != nil {
		return p, fmt.Errorf("profile %s attributes: %w", p.ID, err)
	}
	return p, nil
}
