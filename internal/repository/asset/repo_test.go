package asset

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lumenvault/lumenvault/internal/db"
	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/logger"
)

const assetJSON = `{
	"id": "asset-1",
	"ownerId": "user-1",
	"type": "image",
	"originalPath": "/library/IMG_0001.jpg",
	"originalFileName": "IMG_0001.jpg",
	"description": "sunset over the bay",
	"isArchived": false,
	"isFavorite": true,
	"createdAt": "2024-03-10T17:04:05Z",
	"exifInfo": {"make": "Canon", "city": "Lisbon"},
	"smartInfo": {"tags": ["sunset", "sea"]},
	"people": ["person-1"]
}`

func TestSearchMetadata(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotQuery *db.TextQuery
	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		gotQuery = q
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{
				{Key: Key("asset-1"), Fields: map[string]string{"$": assetJSON}},
			},
		}, nil
	}

	assets, err := repo.SearchMetadata(context.Background(), "sunset", []string{"user-1", "user-2"}, 250)
	if err != nil {
		t.Fatalf("SearchMetadata: %v", err)
	}

	if gotQuery.IndexName != IndexName {
		t.Errorf("index = %q", gotQuery.IndexName)
	}
	if gotQuery.TopK != 250 {
		t.Errorf("topK = %d, want 250", gotQuery.TopK)
	}
	if len(gotQuery.Filters.Must()) != 1 {
		t.Fatal("expected one owner-scope filter")
	}
	if got := gotQuery.Filters.Must()[0].Values(); len(got) != 2 || got[0] != "user-1" {
		t.Errorf("owner scope = %v", got)
	}

	if len(assets) != 1 {
		t.Fatalf("assets = %d, want 1", len(assets))
	}
	a := assets[0]
	if a.ID != "asset-1" || a.OwnerID != "user-1" {
		t.Errorf("unexpected asset: %+v", a)
	}
	if a.Exif == nil || a.Exif.City != "Lisbon" {
		t.Error("exif not hydrated")
	}
	if len(a.Tags) != 2 || a.Tags[0] != "sunset" {
		t.Errorf("tags = %v", a.Tags)
	}
}

func TestSearchMetadataPropagatesError(t *testing.T) {
	repo, ms := newTestRepo(t)
	wantErr := errors.New("index gone")
	ms.searchTextFn = func(context.Context, *db.TextQuery) (*db.SearchResult, error) {
		return nil, wantErr
	}

	if _, err := repo.SearchMetadata(context.Background(), "q", []string{"u"}, 10); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestSearchMetadataCorruptDocSkippedAndLogged(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				{Key: Key("asset-1"), Fields: map[string]string{"$": assetJSON}},
				{Key: Key("asset-2"), Fields: map[string]string{"$": "{broken"}},
			},
		}, nil
	}

	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logger.ContextWithLogger(context.Background(), zap.New(core))

	assets, err := repo.SearchMetadata(ctx, "sunset", []string{"user-1"}, 250)
	if err != nil {
		t.Fatalf("SearchMetadata: %v", err)
	}
	if len(assets) != 1 || assets[0].ID != "asset-1" {
		t.Errorf("assets = %+v, want the decodable hit only", assets)
	}

	entries := logs.FilterMessage("Skipping undecodable asset document").All()
	if len(entries) != 1 {
		t.Fatalf("warn logs = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["key"]; got != Key("asset-2") {
		t.Errorf("logged key = %v", got)
	}
}

func TestGetByIDsWithRelations(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotKeys []string
	ms.jsonGetMultiFn = func(_ context.Context, keys []string, path string) ([][]byte, error) {
		gotKeys = keys
		if path != "$" {
			t.Errorf("path = %q, want $", path)
		}
		// JSON.MGET wraps each document in an array; second key is missing.
		return [][]byte{[]byte("[" + assetJSON + "]"), nil}, nil
	}

	assets, err := repo.GetByIDsWithRelations(context.Background(), []string{"asset-1", "asset-2"})
	if err != nil {
		t.Fatalf("GetByIDsWithRelations: %v", err)
	}
	if len(gotKeys) != 2 || gotKeys[0] != Key("asset-1") {
		t.Errorf("keys = %v", gotKeys)
	}
	if len(assets) != 1 || assets[0].ID != "asset-1" {
		t.Errorf("assets = %+v", assets)
	}
}

func TestGetByIDsWithRelationsEmpty(t *testing.T) {
	repo, ms := newTestRepo(t)
	called := false
	ms.jsonGetMultiFn = func(context.Context, []string, string) ([][]byte, error) {
		called = true
		return nil, nil
	}

	assets, err := repo.GetByIDsWithRelations(context.Background(), nil)
	if err != nil || assets != nil {
		t.Errorf("want nil, nil; got %v, %v", assets, err)
	}
	if called {
		t.Error("store should not be hit for an empty id list")
	}
}

func TestGroupByCity(t *testing.T) {
	repo, ms := newTestRepo(t)

	var gotQuery *db.GroupByQuery
	ms.searchGroupByFn = func(_ context.Context, q *db.GroupByQuery) ([]db.GroupRow, error) {
		gotQuery = q
		return []db.GroupRow{
			{Value: "Lisbon", ID: "asset-1"},
			{Value: "Paris", ID: "asset-2"},
			{Value: "Unindexed", ID: ""},
		}, nil
	}

	group, err := repo.GroupByCity(context.Background(), []string{"user-1"})
	if err != nil {
		t.Fatalf("GroupByCity: %v", err)
	}
	if gotQuery.GroupField != FieldCity || gotQuery.IDField != FieldID {
		t.Errorf("query fields = %q/%q", gotQuery.GroupField, gotQuery.IDField)
	}
	if len(gotQuery.Filters.MustNot()) != 1 {
		t.Error("explore scope should exclude archived assets")
	}
	if group.FieldName != domain.ExploreFieldCity {
		t.Errorf("field name = %q", group.FieldName)
	}
	if len(group.Items) != 2 || group.Items[0].AssetID != "asset-1" {
		t.Errorf("items = %+v", group.Items)
	}
}

func TestGroupByTagPropagatesError(t *testing.T) {
	repo, ms := newTestRepo(t)
	wantErr := errors.New("aggregate failed")
	ms.searchGroupByFn = func(context.Context, *db.GroupByQuery) ([]db.GroupRow, error) {
		return nil, wantErr
	}

	if _, err := repo.GroupByTag(context.Background(), []string{"u"}); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}
