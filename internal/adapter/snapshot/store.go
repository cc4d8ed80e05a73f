// Package snapshot caches the catalog so that storefront requests read an
// immutable, consistent copy instead of querying the source every time.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/port"
)

// RefreshObserver is told about every refresh attempt.
type RefreshObserver interface {
	ObserveCatalogRefresh(err error)
}

// Store implements port.CatalogRepository by serving the last loaded
// catalog of the wrapped repository. Profiles are not cached.
type Store struct {
	src     port.CatalogRepository
	obs     RefreshObserver
	logger  *slog.Logger
	current atomic.Pointer[domain.Catalog]

	refreshMu sync.Mutex

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// New wraps src. obs may be nil.
func New(src port.CatalogRepository, obs RefreshObserver, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		src:    src,
		obs:    obs,
		logger: logger.With("component", "catalog.snapshot"),
		cron:   cron.New(),
	}
}

// Refresh loads a new snapshot from the wrapped repository. On failure the
// previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	start := time.Now()
	cat, err := s.src.LoadCatalog(ctx)
	if s.obs != nil {
		s.obs.ObserveCatalogRefresh(err)
	}
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	s.current.Store(&cat)

	s.logger.Debug("catalog snapshot refreshed",
		slog.Int("campaigns", len(cat.Campaigns)),
		slog.Int("products", len(cat.Products)),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

// LoadCatalog returns the current snapshot, loading the first one on
// demand.
func (s *Store) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	if cat := s.current.Load(); cat != nil {
		return *cat, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return domain.Catalog{}, err
	}
	return *s.current.Load(), nil
}

// GetProfile delegates to the wrapped repository.
func (s *Store) GetProfile(ctx context.Context, id string) (*domain.MemberProfile, error) {
	return s.src.GetProfile(ctx, id)
}

// ListProfiles delegates to the wrapped repository.
func (s *Store) ListProfiles(ctx context.Context) ([]domain.MemberProfile, error) {
	return s.src.ListProfiles(ctx)
}

// Start refreshes the snapshot on schedule, a standard cron expression or
// a descriptor such as "@every 30s". An empty schedule disables periodic
// refresh. The scheduler stops when ctx is done.
func (s *Store) Start(ctx context.Context, schedule string) error {
	if schedule == "" {
		return nil
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("snapshot refresh already running")
	}
	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("scheduled catalog refresh failed", slog.Any("error", err))
		}
	}); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	s.cron.Start()
	s.running = true
	s.logger.Info("catalog refresh scheduled", slog.String("schedule", schedule))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop stops periodic refresh and waits for a running refresh to finish.
func (s *Store) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
}
