package album

import (
	"context"
	"errors"
	"testing"

	"github.com/lumenvault/lumenvault/internal/db"
)

type mockStore struct {
	searchTextFn func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func TestSearch(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)

	var gotQuery *db.TextQuery
	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{{
				Key:    KeyPrefix + "album-1",
				Fields: map[string]string{"$": `{"id": "album-1", "ownerId": "user-1", "albumName": "Lisbon 2024", "assetCount": 12}`},
			}},
		}, nil
	}

	albums, err := repo.Search(context.Background(), "lisbon", []string{"user-1"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery.IndexName != IndexName {
		t.Errorf("index = %q", gotQuery.IndexName)
	}
	if len(albums) != 1 || albums[0].Name != "Lisbon 2024" || albums[0].AssetCount != 12 {
		t.Errorf("albums = %+v", albums)
	}
}

func TestSearchNoMatches(t *testing.T) {
	repo := New(&mockStore{})
	albums, err := repo.Search(context.Background(), "nothing", []string{"user-1"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(albums) != 0 {
		t.Errorf("albums = %+v, want empty", albums)
	}
}

func TestSearchPropagatesError(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)
	wantErr := errors.New("store down")
	ms.searchTextFn = func(context.Context, *db.TextQuery) (*db.SearchResult, error) {
		return nil, wantErr
	}

	if _, err := repo.Search(context.Background(), "q", []string{"u"}); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}
