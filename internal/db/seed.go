package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-offers/internal/core/domain"
)

// seedNamespace scopes the name-based ids of the demo rows so that seeding
// twice updates nothing and inserts nothing.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("storefront-offers/seed"))

func seedID(kind, name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+"/"+name)).String()
}

// Seed inserts a demo catalog into the storefront database: products, two
// live campaigns and a draft one, configured offers, demo member profiles
// and the Credit Mountain flag (off).
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	cat, profiles := DemoCatalog(), DemoProfiles()
	return pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for _, p := range cat.Products {
			if _, err := tx.Exec(ctx, `INSERT INTO products (id, title, description, image_url, cta_link)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
				p.ID, p.Title, p.Description, p.ImageURL, p.CTALink); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID, err)
			}
		}

		for pos, c := range cat.Campaigns {
			if err := seedCampaign(ctx, tx, pos, c); err != nil {
				return fmt.Errorf("seed campaign %s: %w", c.Name, err)
			}
		}

		for pos, o := range cat.Offers {
			attributes := o.Attributes
			if attributes == nil {
				attributes = []string{}
			}
			if _, err := tx.Exec(ctx, `INSERT INTO offers
(id, title, description, section, is_featured, is_redeemed, featured_headline, featured_description,
 attributes, image_url, cta_link, position)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
				o.ID, o.Title, o.Description, o.Section, o.IsFeatured, o.IsRedeemed, o.FeaturedHeadline,
				o.FeaturedDescription, attributes, o.ImageURL, o.CTALink, pos); err != nil {
				return fmt.Errorf("seed offer %s: %w", o.ID, err)
			}
		}

		for _, m := range profiles {
			attrs, err := json.Marshal(m.Attributes)
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, `INSERT INTO member_profiles (id, name, attributes)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, m.ID, m.Name, attrs); err != nil {
				return fmt.Errorf("seed profile %s: %w", m.Name, err)
			}
		}

		for name, enabled := range cat.Flags {
			if _, err := tx.Exec(ctx, `INSERT INTO feature_flags (name, enabled)
VALUES ($1,$2) ON CONFLICT DO NOTHING`, name, enabled); err != nil {
				return fmt.Errorf("seed flag %s: %w", name, err)
			}
		}
		return nil
	})
}

func seedCampaign(ctx context.Context, tx pgx.Tx, pos int, c domain.Campaign) error {
	if _, err := tx.Exec(ctx, `INSERT INTO campaigns (id, name, status, type, position)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`, c.ID, c.Name, c.Status, c.Type, pos); err != nil {
		return err
	}

	sections := append([]domain.Section{c.FeaturedOffersSection}, c.Sections...)
	for i, s := range sections {
		featured := i == 0
		sectionID := seedID("section", fmt.Sprintf("%s/%d", c.ID, i))
		if _, err := tx.Exec(ctx, `INSERT INTO campaign_sections (id, campaign_id, name, is_featured, position)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`, sectionID, c.ID, s.Name, featured, i); err != nil {
			return err
		}
		for j, cp := range s.Products {
			targeting, err := json.Marshal(cp.Targeting)
			if err != nil {
				return err
			}
			overrides, err := json.Marshal(cp.Overrides)
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, `INSERT INTO campaign_products
(id, section_id, product_id, section_name, is_featured, targeting, overrides, position)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
				cp.ID, sectionID, cp.ProductID, cp.SectionName, cp.IsFeatured || featured, targeting, overrides, j); err != nil {
				return err
			}
		}
	}
	return nil
}
