// Package file serves the catalog from a YAML document on disk and watches
// it for edits.
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"storefront-offers/internal/core/domain"
)

// Document is the YAML form of a catalog together with the demo member
// profiles.
type Document struct {
	Products  []domain.Product       `yaml:"products"`
	Campaigns []domain.Campaign      `yaml:"campaigns"`
	Offers    []domain.Offer         `yaml:"offers"`
	Flags     domain.FeatureFlags    `yaml:"flags"`
	Profiles  []domain.MemberProfile `yaml:"profiles"`
}

// Catalog returns the catalog part of the document.
func (d Document) Catalog() domain.Catalog {
	return domain.Catalog{
		Campaigns: d.Campaigns,
		Products:  d.Products,
		Offers:    d.Offers,
		Flags:     d.Flags,
	}
}

// Decode parses a YAML catalog document. Unknown keys are rejected.
func Decode(b []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.validate(); err != nil {
		return Document{}, err
	}
	if doc.Flags == nil {
		doc.Flags = domain.FeatureFlags{}
	}
	return doc, nil
}

// validate checks what the engine cannot tolerate: missing or duplicate
// ids and unknown campaign states. References to unknown products are
// allowed.
func (d Document) validate() error {
	campaigns := make(map[string]struct{}, len(d.Campaigns))
	for _, c := range d.Campaigns {
		if c.ID == "" {
			return fmt.Errorf("campaign %q: missing id", c.Name)
		}
		if _, dup := campaigns[c.ID]; dup {
			return fmt.Errorf("campaign %s: duplicate id", c.ID)
		}
		campaigns[c.ID] = struct{}{}

		switch c.Status {
		case domain.CampaignDraft, domain.CampaignLive, domain.CampaignEnded:
		default:
			return fmt.Errorf("campaign %s: unknown status %q", c.ID, c.Status)
		}
		switch c.Type {
		case domain.CampaignPerpetual, domain.CampaignScheduled, domain.CampaignSeasonal:
		default:
			return fmt.Errorf("campaign %s: unknown type %q", c.ID, c.Type)
		}

		seen := make(map[string]struct{})
		for _, s := range append([]domain.Section{c.FeaturedOffersSection}, c.Sections...) {
			for _, cp := range s.Products {
				if cp.ID == "" || cp.ProductID == "" {
					return fmt.Errorf("campaign %s section %q: campaign product needs id and productId", c.ID, s.Name)
				}
				if _, dup := seen[cp.ID]; dup {
					return fmt.Errorf("campaign %s: duplicate campaign product %s", c.ID, cp.ID)
				}
				seen[cp.ID] = struct{}{}
			}
		}
	}

	profiles := make(map[string]struct{}, len(d.Profiles))
	for _, p := range d.Profiles {
		if p.ID == "" {
			return fmt.Errorf("profile %q: missing id", p.Name)
		}
		if _, dup := profiles[p.ID]; dup {
			return fmt.Errorf("profile %s: duplicate id", p.ID)
		}
		profiles[p.ID] = struct{}{}
	}
	return nil
}

// CatalogSource implements port.CatalogRepository over a YAML file. The
// file is read by NewCatalogSource and again on every Reload. A failed
// reload keeps the last good document.
type CatalogSource struct {
	path   string
	logger *slog.Logger

	mu  sync.RWMutex
	doc Document
}

// NewCatalogSource reads the catalog at path.
func NewCatalogSource(path string, logger *slog.Logger) (*CatalogSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CatalogSource{path: path, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the watched file.
func (s *CatalogSource) Path() string { return s.path }

// Reload re-reads the file.
func (s *CatalogSource) Reload() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	doc, err := Decode(b)
	if err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.logger.Info("catalog file loaded",
		slog.String("path", s.path),
		slog.Int("campaigns", len(doc.Campaigns)),
		slog.Int("products", len(doc.Products)),
		slog.Int("profiles", len(doc.Profiles)),
	)
	return nil
}

// LoadCatalog returns the last successfully loaded catalog.
func (s *CatalogSource) LoadCatalog(_ context.Context) (domain.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Catalog(), nil
}

// GetProfile returns a profile by id, or nil when there is none.
func (s *CatalogSource) GetProfile(_ context.Context, id string) (*domain.MemberProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.doc.Profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// ListProfiles returns the profiles in file order.
func (s *CatalogSource) ListProfiles(_ context.Context) ([]domain.MemberProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.MemberProfile(nil), s.doc.Profiles...), nil
}
