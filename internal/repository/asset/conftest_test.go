package asset

import (
	"context"
	"testing"

	"github.com/lumenvault/lumenvault/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchTextFn    func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	searchGroupByFn func(ctx context.Context, q *db.GroupByQuery) ([]db.GroupRow, error)
	jsonGetMultiFn  func(ctx context.Context, keys []string, path string) ([][]byte, error)
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchGroupBy(ctx context.Context, q *db.GroupByQuery) ([]db.GroupRow, error) {
	if m.searchGroupByFn != nil {
		return m.searchGroupByFn(ctx, q)
	}
	return nil, nil
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error) {
	if m.jsonGetMultiFn != nil {
		return m.jsonGetMultiFn(ctx, keys, path)
	}
	return make([][]byte, len(keys)), nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
