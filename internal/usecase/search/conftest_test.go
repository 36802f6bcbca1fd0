package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/smart"
)

type mockConfig struct {
	snapshotFn func(ctx context.Context) (domain.Flags, error)
	called     bool
}

func (m *mockConfig) Snapshot(ctx context.Context) (domain.Flags, error) {
	m.called = true
	return m.snapshotFn(ctx)
}

type mockPartners struct {
	sharedWithFn func(ctx context.Context, userID string) ([]domain.Partner, error)
}

func (m *mockPartners) SharedWith(ctx context.Context, userID string) ([]domain.Partner, error) {
	return m.sharedWithFn(ctx, userID)
}

type mockEncoder struct {
	encodeFn func(ctx context.Context, text string) ([]float32, error)
	called   bool
}

func (m *mockEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	m.called = true
	return m.encodeFn(ctx, text)
}

type mockAssets struct {
	searchFn func(ctx context.Context, query string, userIDs []string, numResults int) ([]domain.Asset, error)
	called   bool
}

func (m *mockAssets) SearchMetadata(ctx context.Context, query string, userIDs []string, numResults int) ([]domain.Asset, error) {
	m.called = true
	return m.searchFn(ctx, query, userIDs, numResults)
}

type mockSmart struct {
	searchFn func(ctx context.Context, p smart.Pagination, f smart.Filter) (smart.Page, error)
	called   bool
}

func (m *mockSmart) Search(ctx context.Context, p smart.Pagination, f smart.Filter) (smart.Page, error) {
	m.called = true
	return m.searchFn(ctx, p, f)
}

type mockAlbums struct {
	searchFn func(ctx context.Context, query string, userIDs []string) ([]domain.Album, error)
}

func (m *mockAlbums) Search(ctx context.Context, query string, userIDs []string) ([]domain.Album, error) {
	return m.searchFn(ctx, query, userIDs)
}

type mockPeople struct {
	searchFn func(ctx context.Context, ownerID, name string, withHidden bool) ([]domain.Person, error)
}

func (m *mockPeople) SearchByName(ctx context.Context, ownerID, name string, withHidden bool) ([]domain.Person, error) {
	return m.searchFn(ctx, ownerID, name, withHidden)
}

// deps bundles mocks wired with permissive defaults so each test only
// overrides what it asserts on.
type deps struct {
	config   *mockConfig
	partners *mockPartners
	encoder  *mockEncoder
	assets   *mockAssets
	smart    *mockSmart
	albums   *mockAlbums
	people   *mockPeople
}

func newDeps() *deps {
	return &deps{
		config: &mockConfig{
			snapshotFn: func(context.Context) (domain.Flags, error) {
				return domain.Flags{
					domain.FlagSmartSearch:     true,
					domain.FlagSmartSearchCLIP: true,
				}, nil
			},
		},
		partners: &mockPartners{
			sharedWithFn: func(context.Context, string) ([]domain.Partner, error) {
				return nil, nil
			},
		},
		encoder: &mockEncoder{
			encodeFn: func(context.Context, string) ([]float32, error) {
				return []float32{0.1, 0.2, 0.3}, nil
			},
		},
		assets: &mockAssets{
			searchFn: func(context.Context, string, []string, int) ([]domain.Asset, error) {
				return nil, nil
			},
		},
		smart: &mockSmart{
			searchFn: func(context.Context, smart.Pagination, smart.Filter) (smart.Page, error) {
				return smart.Page{}, nil
			},
		},
		albums: &mockAlbums{
			searchFn: func(context.Context, string, []string) ([]domain.Album, error) {
				return nil, nil
			},
		},
		people: &mockPeople{
			searchFn: func(context.Context, string, string, bool) ([]domain.Person, error) {
				return nil, nil
			},
		},
	}
}

func (d *deps) service() *Service {
	return New(d.config, d.partners, d.encoder, d.assets, d.smart, d.albums, d.people, zap.NewNop())
}
