// Package person adapts the metadata store for person-by-name search.
package person

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

// Key scheme and schema aliases for person documents.
const (
	KeyPrefix = domain.KeyPrefix + "person:"
	IndexName = domain.KeyPrefix + "person:idx"

	FieldOwner  = "ownerId"
	FieldHidden = "hidden"
)

// maxResults caps a person-name search, matching the UI's suggestion list.
const maxResults = 20

// IndexDefinition builds the FT index over person documents.
func IndexDefinition() (*db.IndexDefinition, error) {
	return db.NewIndex(IndexName).
		Prefix(KeyPrefix).
		Tag("$.ownerId", FieldOwner).
		Tag("$.isHidden", FieldHidden).
		Text("$.name", "name").
		Build()
}

// store is the consumer interface for person search (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements the person-store contract of the search usecase.
type Repo struct {
	store store
}

// New creates a person repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchByName matches a display name within one owner's people. Hidden
// people are excluded unless withHidden is set.
func (r *Repo) SearchByName(
	ctx context.Context, ownerID, name string, withHidden bool,
) ([]domain.Person, error) {
	owner, err := filter.NewMatch(FieldOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("owner filter: %w", err)
	}

	var mustNot []filter.Condition
	if !withHidden {
		hidden, err := filter.NewMatch(FieldHidden, "true")
		if err != nil {
			return nil, fmt.Errorf("hidden filter: %w", err)
		}
		mustNot = append(mustNot, hidden)
	}

	expr, err := filter.NewExpression([]filter.Condition{owner}, mustNot)
	if err != nil {
		return nil, fmt.Errorf("person filter: %w", err)
	}

	res, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName:    IndexName,
		Query:        name,
		Filters:      expr,
		TopK:         maxResults,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}

	people := make([]domain.Person, 0, len(res.Entries))
	for _, entry := range res.Entries {
		var p domain.Person
		if err := json.Unmarshal([]byte(entry.Fields["$"]), &p); err != nil {
			logger.FromContext(ctx).Warn("Skipping undecodable person document",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		people = append(people, p)
	}
	return people, nil
}
