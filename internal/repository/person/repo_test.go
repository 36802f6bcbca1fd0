package person

import (
	"context"
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

func TestSearchByName(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)

	var gotQuery *db.TextQuery
	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{{
				Key:    KeyPrefix + "person-1",
				Fields: map[string]string{"$": `{"id": "person-1", "ownerId": "user-1", "name": "Ana"}`},
			}},
		}, nil
	}

	people, err := repo.SearchByName(context.Background(), "user-1", "Ana", false)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if gotQuery.Query != "Ana" {
		t.Errorf("query = %q", gotQuery.Query)
	}
	if len(gotQuery.Filters.MustNot()) != 1 {
		t.Error("hidden people should be excluded by default")
	}
	if len(people) != 1 || people[0].Name != "Ana" {
		t.Errorf("people = %+v", people)
	}
}

func TestSearchByNameWithHidden(t *testing.T) {
	ms := &mockStore{}
	repo := New(ms)

	var gotQuery *db.TextQuery
	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{}, nil
	}

	if _, err := repo.SearchByName(context.Background(), "user-1", "Ana", true); err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(gotQuery.Filters.MustNot()) != 0 {
		t.Error("withHidden should drop the hidden exclusion")
	}
}
