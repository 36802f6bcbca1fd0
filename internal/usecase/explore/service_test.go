package explore

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/domain"
)

type mockPartners struct {
	sharedWithFn func(ctx context.Context, userID string) ([]domain.Partner, error)
}

func (m *mockPartners) SharedWith(ctx context.Context, userID string) ([]domain.Partner, error) {
	return m.sharedWithFn(ctx, userID)
}

type mockGrouper struct {
	byCityFn func(ctx context.Context, userIDs []string) (domain.IDGroup, error)
	byTagFn  func(ctx context.Context, userIDs []string) (domain.IDGroup, error)
}

func (m *mockGrouper) GroupByCity(ctx context.Context, userIDs []string) (domain.IDGroup, error) {
	return m.byCityFn(ctx, userIDs)
}

func (m *mockGrouper) GroupByTag(ctx context.Context, userIDs []string) (domain.IDGroup, error) {
	return m.byTagFn(ctx, userIDs)
}

type mockAssets struct {
	getFn func(ctx context.Context, ids []string) ([]domain.Asset, error)
	calls int
}

func (m *mockAssets) GetByIDsWithRelations(ctx context.Context, ids []string) ([]domain.Asset, error) {
	m.calls++
	return m.getFn(ctx, ids)
}

func newService(partners *mockPartners, grouper *mockGrouper, assets *mockAssets) *Service {
	if partners == nil {
		partners = &mockPartners{
			sharedWithFn: func(context.Context, string) ([]domain.Partner, error) { return nil, nil },
		}
	}
	return New(partners, grouper, assets, zap.NewNop())
}

func TestExplore(t *testing.T) {
	grouper := &mockGrouper{
		byCityFn: func(_ context.Context, userIDs []string) (domain.IDGroup, error) {
			if len(userIDs) != 1 || userIDs[0] != "u1" {
				t.Errorf("city scope = %v", userIDs)
			}
			return domain.IDGroup{
				FieldName: domain.ExploreFieldCity,
				Items: []domain.IDGroupItem{
					{Value: "Oslo", AssetID: "a1"},
					{Value: "Lisbon", AssetID: "a2"},
				},
			}, nil
		},
		byTagFn: func(_ context.Context, _ []string) (domain.IDGroup, error) {
			return domain.IDGroup{
				FieldName: domain.ExploreFieldTag,
				Items: []domain.IDGroupItem{
					{Value: "beach", AssetID: "a2"}, // shared with the city group
					{Value: "dog", AssetID: "a3"},
				},
			}, nil
		},
	}

	var gotIDs []string
	assets := &mockAssets{
		getFn: func(_ context.Context, ids []string) ([]domain.Asset, error) {
			gotIDs = ids
			return []domain.Asset{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}, nil
		},
	}

	groups, err := newService(nil, grouper, assets).Explore(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}

	if assets.calls != 1 {
		t.Errorf("hydration calls = %d, want 1 batched read", assets.calls)
	}
	if len(gotIDs) != 3 {
		t.Errorf("hydrated ids = %v, want 3 deduplicated", gotIDs)
	}

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].FieldName != domain.ExploreFieldCity || len(groups[0].Items) != 2 {
		t.Errorf("city group = %+v", groups[0])
	}
	if groups[0].Items[0].Value != "Oslo" || groups[0].Items[0].Data.ID != "a1" {
		t.Errorf("city item = %+v", groups[0].Items[0])
	}
	if groups[1].FieldName != domain.ExploreFieldTag || len(groups[1].Items) != 2 {
		t.Errorf("tag group = %+v", groups[1])
	}
}

func TestExploreDropsVanishedAssets(t *testing.T) {
	grouper := &mockGrouper{
		byCityFn: func(context.Context, []string) (domain.IDGroup, error) {
			return domain.IDGroup{
				FieldName: domain.ExploreFieldCity,
				Items: []domain.IDGroupItem{
					{Value: "Oslo", AssetID: "a1"},
					{Value: "Lisbon", AssetID: "gone"},
				},
			}, nil
		},
		byTagFn: func(context.Context, []string) (domain.IDGroup, error) {
			return domain.IDGroup{FieldName: domain.ExploreFieldTag}, nil
		},
	}
	assets := &mockAssets{
		getFn: func(context.Context, []string) ([]domain.Asset, error) {
			return []domain.Asset{{ID: "a1"}}, nil
		},
	}

	groups, err := newService(nil, grouper, assets).Explore(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Explore: %v", err)
	}
	if len(groups[0].Items) != 1 || groups[0].Items[0].Value != "Oslo" {
		t.Errorf("city group = %+v, want only Oslo", groups[0])
	}
}

func TestExplorePartnerScope(t *testing.T) {
	partners := &mockPartners{
		sharedWithFn: func(_ context.Context, userID string) ([]domain.Partner, error) {
			return []domain.Partner{{SharedByID: "u2", SharedWithID: userID}}, nil
		},
	}

	var gotScope []string
	grouper := &mockGrouper{
		byCityFn: func(_ context.Context, userIDs []string) (domain.IDGroup, error) {
			gotScope = userIDs
			return domain.IDGroup{FieldName: domain.ExploreFieldCity}, nil
		},
		byTagFn: func(context.Context, []string) (domain.IDGroup, error) {
			return domain.IDGroup{FieldName: domain.ExploreFieldTag}, nil
		},
	}
	assets := &mockAssets{
		getFn: func(context.Context, []string) ([]domain.Asset, error) { return nil, nil },
	}

	if _, err := newService(partners, grouper, assets).Explore(context.Background(), "u1"); err != nil {
		t.Fatalf("Explore: %v", err)
	}
	if len(gotScope) != 2 || gotScope[0] != "u1" || gotScope[1] != "u2" {
		t.Errorf("scope = %v, want [u1 u2]", gotScope)
	}
}

func TestExploreGroupFailure(t *testing.T) {
	wantErr := errors.New("aggregate failed")
	grouper := &mockGrouper{
		byCityFn: func(context.Context, []string) (domain.IDGroup, error) {
			return domain.IDGroup{}, wantErr
		},
		byTagFn: func(context.Context, []string) (domain.IDGroup, error) {
			return domain.IDGroup{}, nil
		},
	}
	assets := &mockAssets{
		getFn: func(context.Context, []string) ([]domain.Asset, error) { return nil, nil },
	}

	_, err := newService(nil, grouper, assets).Explore(context.Background(), "u1")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
	if assets.calls != 0 {
		t.Error("hydration must not run when aggregation fails")
	}
}
