package snapshot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront-offers/internal/core/domain"
	"storefront-offers/internal/core/port/mocks"
)

type refreshSpy struct {
	mu       sync.Mutex
	ok, fail int
}

func (r *refreshSpy) ObserveCatalogRefresh(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.fail++
		return
	}
	r.ok++
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func catalogWith(ids ...string) domain.Catalog {
	cat := domain.Catalog{Flags: domain.FeatureFlags{}}
	for _, id := range ids {
		cat.Campaigns = append(cat.Campaigns, domain.Campaign{ID: id, Status: domain.CampaignLive})
	}
	return cat
}

func TestStore_LoadsOnceAndServesSnapshot(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(catalogWith("a"), nil).Once()

	store := New(repo, nil, discard())
	ctx := context.Background()

	for range 3 {
		cat, err := store.LoadCatalog(ctx)
		require.NoError(t, err)
		require.Len(t, cat.Campaigns, 1)
	}
}

func TestStore_FailedRefreshKeepsPrevious(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	spy := &refreshSpy{}
	repo.EXPECT().LoadCatalog(mock.Anything).Return(catalogWith("a"), nil).Once()
	repo.EXPECT().LoadCatalog(mock.Anything).Return(domain.Catalog{}, errors.New("timeout")).Once()
	repo.EXPECT().LoadCatalog(mock.Anything).Return(catalogWith("a", "b"), nil).Once()

	store := New(repo, spy, discard())
	ctx := context.Background()

	require.NoError(t, store.Refresh(ctx))
	assert.Error(t, store.Refresh(ctx))

	cat, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, cat.Campaigns, 1)

	require.NoError(t, store.Refresh(ctx))
	cat, err = store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, cat.Campaigns, 2)

	assert.Equal(t, 2, spy.ok)
	assert.Equal(t, 1, spy.fail)
}

func TestStore_FirstLoadError(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	repo.EXPECT().LoadCatalog(mock.Anything).Return(domain.Catalog{}, errors.New("down"))

	_, err := New(repo, nil, discard()).LoadCatalog(context.Background())
	assert.Error(t, err)
}

func TestStore_DelegatesProfiles(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	profile := &domain.MemberProfile{ID: "m-1"}
	repo.EXPECT().GetProfile(mock.Anything, "m-1").Return(profile, nil)
	repo.EXPECT().ListProfiles(mock.Anything).Return([]domain.MemberProfile{*profile}, nil)

	store := New(repo, nil, discard())
	got, err := store.GetProfile(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	list, err := store.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_ScheduledRefresh(t *testing.T) {
	repo := mocks.NewMockCatalogRepository(t)
	spy := &refreshSpy{}
	repo.EXPECT().LoadCatalog(mock.Anything).Return(catalogWith("a"), nil)

	store := New(repo, spy, discard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.Start(ctx, "@every 1s"))
	assert.Error(t, store.Start(ctx, "@every 1s"))

	assert.Eventually(t, func() bool {
		spy.mu.Lock()
		defer spy.mu.Unlock()
		return spy.ok > 0
	}, 3*time.Second, 50*time.Millisecond)
	store.Stop()
}

func TestStore_StartValidatesSchedule(t *testing.T) {
	store := New(mocks.NewMockCatalogRepository(t), nil, discard())
	assert.Error(t, store.Start(context.Background(), "every now and then"))
	assert.NoError(t, store.Start(context.Background(), ""))
}
