// Package asset adapts the metadata store for lexical asset search, facet
// groupings and batched hydration.
package asset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/db"
	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/filter"
	"github.com/lumenvault/lumenvault/internal/logger"
)

// Key scheme and schema aliases for asset documents.
const (
	KeyPrefix = domain.KeyPrefix + "asset:"
	IndexName = domain.KeyPrefix + "asset:idx"

	FieldID       = "id"
	FieldOwner    = "ownerId"
	FieldArchived = "archived"
	FieldFileName = "fileName"
	FieldDescr    = "description"
	FieldCity     = "city"
	FieldTags     = "tags"
	FieldPeople   = "personIds"
	FieldTakenAt  = "takenAt"
	FieldVector   = "embedding"
)

// IndexDefinition builds the FT index over asset documents. dim is the CLIP
// embedding dimensionality; m and efConstruct tune the HNSW graph.
func IndexDefinition(dim, m, efConstruct int) (*db.IndexDefinition, error) {
	return db.NewIndex(IndexName).
		Prefix(KeyPrefix).
		Tag("$.id", FieldID).
		Tag("$.ownerId", FieldOwner).
		Tag("$.isArchived", FieldArchived).
		Tag("$.exifInfo.city", FieldCity).
		Tag("$.smartInfo.tags[*]", FieldTags).
		Tag("$.people[*]", FieldPeople).
		Text("$.originalFileName", FieldFileName).
		Text("$.description", FieldDescr).
		Text("$.exifInfo.make", "make").
		Text("$.exifInfo.model", "model").
		Numeric("$.takenAtSec", FieldTakenAt).
		VectorHNSW("$.clipEmbedding", FieldVector, dim, db.DistanceCosine, m, efConstruct).
		Build()
}

// Key returns the document key for an asset id.
func Key(id string) string { return KeyPrefix + id }

// store is the consumer interface for asset operations (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	SearchGroupBy(ctx context.Context, q *db.GroupByQuery) ([]db.GroupRow, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
}

// Repo implements the metadata-store contracts of the search and explore usecases.
type Repo struct {
	store store
}

// New creates an asset repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchMetadata matches free text against the asset TEXT fields (filename,
// description, EXIF make/model), scoped to the given owners. Single page,
// capped at numResults, index order preserved.
func (r *Repo) SearchMetadata(
	ctx context.Context, query string, userIDs []string, numResults int,
) ([]domain.Asset, error) {
	expr, err := ownerScope(userIDs)
	if err != nil {
		return nil, err
	}

	res, err := r.store.SearchText(ctx, &db.TextQuery{
		IndexName:    IndexName,
		Query:        query,
		Filters:      expr,
		TopK:         numResults,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search asset metadata: %w", err)
	}

	assets := make([]domain.Asset, 0, len(res.Entries))
	for _, entry := range res.Entries {
		doc, err := parseAssetJSON([]byte(entry.Fields["$"]))
		if err != nil {
			logger.FromContext(ctx).Warn("Skipping undecodable asset document",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		assets = append(assets, doc.toDomain())
	}
	return assets, nil
}

// GetByIDsWithRelations hydrates full asset records (EXIF, tags, people) for
// the given ids in one batched lookup, preserving input order. Missing ids
// are skipped.
func (r *Repo) GetByIDsWithRelations(ctx context.Context, ids []string) ([]domain.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = Key(id)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys, "$")
	if err != nil {
		return nil, fmt.Errorf("get assets by ids: %w", err)
	}

	assets := make([]domain.Asset, 0, len(ids))
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		doc, err := parseAssetJSON(raw)
		if err != nil {
			logger.FromContext(ctx).Warn("Skipping undecodable asset document",
				zap.String("key", keys[i]), zap.Error(err))
			continue
		}
		assets = append(assets, doc.toDomain())
	}
	return assets, nil
}

// GroupByCity returns one representative asset id per distinct EXIF city.
func (r *Repo) GroupByCity(ctx context.Context, userIDs []string) (domain.IDGroup, error) {
	return r.groupBy(ctx, userIDs, FieldCity, domain.ExploreFieldCity)
}

// GroupByTag returns one representative asset id per distinct smart-info tag.
func (r *Repo) GroupByTag(ctx context.Context, userIDs []string) (domain.IDGroup, error) {
	return r.groupBy(ctx, userIDs, FieldTags, domain.ExploreFieldTag)
}

func (r *Repo) groupBy(
	ctx context.Context, userIDs []string, groupField, fieldName string,
) (domain.IDGroup, error) {
	expr, err := exploreScope(userIDs)
	if err != nil {
		return domain.IDGroup{}, err
	}

	rows, err := r.store.SearchGroupBy(ctx, &db.GroupByQuery{
		IndexName:  IndexName,
		Filters:    expr,
		GroupField: groupField,
		IDField:    FieldID,
		Limit:      maxExploreBuckets,
	})
	if err != nil {
		return domain.IDGroup{}, fmt.Errorf("group assets by %s: %w", groupField, err)
	}

	group := domain.IDGroup{FieldName: fieldName, Items: make([]domain.IDGroupItem, 0, len(rows))}
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		group.Items = append(group.Items, domain.IDGroupItem{Value: row.Value, AssetID: row.ID})
	}
	return group, nil
}

// maxExploreBuckets caps distinct values per explore facet.
const maxExploreBuckets = 100

// ownerScope restricts a query to the visible owners.
func ownerScope(userIDs []string) (filter.Expression, error) {
	owner, err := filter.NewMatch(FieldOwner, userIDs...)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("owner filter: %w", err)
	}
	return filter.NewExpression([]filter.Condition{owner}, nil)
}

// exploreScope is the owner scope with archived assets excluded.
func exploreScope(userIDs []string) (filter.Expression, error) {
	owner, err := filter.NewMatch(FieldOwner, userIDs...)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("owner filter: %w", err)
	}
	archived, err := filter.NewMatch(FieldArchived, "true")
	if err != nil {
		return filter.Expression{}, fmt.Errorf("archived filter: %w", err)
	}
	return filter.NewExpression([]filter.Condition{owner}, []filter.Condition{archived})
}
