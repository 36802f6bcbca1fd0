// Package smart adapts the vector index for paginated nearest-neighbor
// retrieval over asset CLIP embeddings.
package smart

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/db"
	"github.com/lumenvault/lumenvault/internal/domain/search/filter"
	"github.com/lumenvault/lumenvault/internal/domain/search/smart"
	"github.com/lumenvault/lumenvault/internal/logger"
	assetrepo "github.com/lumenvault/lumenvault/internal/repository/asset"
)

// DefaultPageSize bounds a smart-search page when the caller passes none.
const DefaultPageSize = 100

// store is the consumer interface for smart search (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Repo implements the smart-search contract of the search usecase.
type Repo struct {
	store store
}

// New creates a smart-search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs a KNN query over the asset embedding index. It fetches one hit
// beyond the requested page to derive HasNextPage, and returns hits in
// distance order.
func (r *Repo) Search(ctx context.Context, page smart.Pagination, f smart.Filter) (smart.Page, error) {
	size := page.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	p := page.Page
	if p < 1 {
		p = 1
	}
	offset := (p - 1) * size

	expr, err := buildFilter(f)
	if err != nil {
		return smart.Page{}, err
	}

	res, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    assetrepo.IndexName,
		Filters:      expr,
		Vector:       f.Embedding,
		K:            offset + size + 1,
		Offset:       offset,
		Limit:        size + 1,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return smart.Page{}, fmt.Errorf("search smart index: %w", err)
	}

	// Pagination derives from the raw hit count, before decoding, so a
	// corrupt document cannot drop the lookahead row and end the feed early.
	entries := res.Entries
	out := smart.Page{}
	if len(entries) > size {
		entries = entries[:size]
		out.HasNextPage = true
	}

	for _, entry := range entries {
		asset, err := assetrepo.DecodeDoc([]byte(entry.Fields["$"]))
		if err != nil {
			logger.FromContext(ctx).Warn("Skipping undecodable asset document",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		out.Items = append(out.Items, asset)
	}
	return out, nil
}

// buildFilter translates the smart filter into an index pre-filter: owner
// scope always, archived excluded unless requested, optional date range and
// city/tag/person constraints.
func buildFilter(f smart.Filter) (filter.Expression, error) {
	owner, err := filter.NewMatch(assetrepo.FieldOwner, f.UserIDs...)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("owner filter: %w", err)
	}
	must := []filter.Condition{owner}

	if f.TakenAfter != nil || f.TakenBefore != nil {
		var gte, lte *float64
		if f.TakenAfter != nil {
			v := float64(f.TakenAfter.Unix())
			gte = &v
		}
		if f.TakenBefore != nil {
			v := float64(f.TakenBefore.Unix())
			lte = &v
		}
		rng, err := filter.NewRangeBounds(gte, lte)
		if err != nil {
			return filter.Expression{}, fmt.Errorf("date filter: %w", err)
		}
		cond, err := filter.NewRange(assetrepo.FieldTakenAt, rng)
		if err != nil {
			return filter.Expression{}, fmt.Errorf("date filter: %w", err)
		}
		must = append(must, cond)
	}

	for _, opt := range []struct {
		field string
		value string
	}{
		{assetrepo.FieldCity, f.City},
		{assetrepo.FieldTags, f.Tag},
		{assetrepo.FieldPeople, f.PersonID},
	} {
		if opt.value == "" {
			continue
		}
		cond, err := filter.NewMatch(opt.field, opt.value)
		if err != nil {
			return filter.Expression{}, fmt.Errorf("%s filter: %w", opt.field, err)
		}
		must = append(must, cond)
	}

	var mustNot []filter.Condition
	if !f.WithArchived {
		cond, err := filter.NewMatch(assetrepo.FieldArchived, strconv.FormatBool(true))
		if err != nil {
			return filter.Expression{}, fmt.Errorf("archived filter: %w", err)
		}
		mustNot = append(mustNot, cond)
	}

	return filter.NewExpression(must, mustNot)
}
