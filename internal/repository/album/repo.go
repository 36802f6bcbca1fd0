// Package album adapts the metadata store for lexical album search.
package album

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/db"
	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/filter"
	"github.com/lumenvault/lumenvault/internal/logger"
)

// Key scheme and schema aliases for album documents.
const (
	KeyPrefix = domain.KeyPrefix + "album:"
	IndexName = domain.KeyPrefix + "album:idx"

	FieldOwner = "ownerId"
)

// maxResults caps a single album search page.
const maxResults = 100

// IndexDefinition builds the FT index over album documents.
func IndexDefinition() (*db.IndexDefinition, error) {
	return db.NewIndex(IndexName).
		Prefix(KeyPrefix).
		Tag("$.ownerId", FieldOwner).
		Text("$.albumName", "name").
		Text("$.description", "description").
		Build()
}

// store is the consumer interface for album search (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements the album-store contract of the search usecase.
type Repo struct {
	store store
}

// New creates an album repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search matches free text against album names and descriptions, scoped to
// the given owners. Albums are always matched lexically.
func (r *Repo) Search(ctx context.Context, query string, userIDs []string) ([]domain.Album, error) {
	owner, err := filter.NewMatch(FieldOwner, userIDs...)
	if err != nil {
		return nil, fmt.Errorf("owner filter: %w", err)
	}
	expr, err := filter.NewExpression([]filter.Condition{owner}, nil)
	if err != nil {
		return nil, fmt.Errorf("owner filter: %w", err)
	}

	res, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName:    IndexName,
		Query:        query,
		Filters:      expr,
		TopK:         maxResults,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search albums: %w", err)
	}

	albums := make([]domain.Album, 0, len(res.Entries))
	for _, entry := range res.Entries {
		var a domain.Album
		if err := json.Unmarshal([]byte(entry.Fields["$"]), &a); err != nil {
			logger.FromContext(ctx).Warn("Skipping undecodable album document",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		albums = append(albums, a)
	}
	return albums, nil
}
