// Package explore builds the library overview: distinct cities and tags,
// each fronted by one representative asset.
package explore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lumenvault/lumenvault/internal/domain"
)

// Service aggregates a user's visible libraries into explore groups.
type Service struct {
	partners PartnerReader
	grouper  AssetGrouper
	assets   AssetReader
	logger   *zap.Logger
}

// New creates an explore service.
func New(partners PartnerReader, grouper AssetGrouper, assets AssetReader, logger *zap.Logger) *Service {
	return &Service{partners: partners, grouper: grouper, assets: assets, logger: logger}
}

// Explore returns the city and tag groupings for everything userID can
// see. Representative assets are hydrated in one batched read; buckets
// whose asset vanished between aggregation and hydration are dropped.
func (s *Service) Explore(ctx context.Context, userID string) ([]domain.ExploreGroup, error) {
	scope, err := s.visibleUserIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	cities, err := s.grouper.GroupByCity(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("group by city: %w", err)
	}
	tags, err := s.grouper.GroupByTag(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("group by tag: %w", err)
	}

	assets, err := s.hydrate(ctx, cities, tags)
	if err != nil {
		return nil, err
	}

	groups := []domain.ExploreGroup{
		buildGroup(cities, assets),
		buildGroup(tags, assets),
	}

	s.logger.Debug("explore aggregated",
		zap.Int("cities", len(groups[0].Items)),
		zap.Int("tags", len(groups[1].Items)))

	return groups, nil
}

// hydrate loads every representative asset referenced by the groups in a
// single batched read, deduplicating shared IDs first.
func (s *Service) hydrate(ctx context.Context, groups ...domain.IDGroup) (map[string]domain.Asset, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, g := range groups {
		for _, item := range g.Items {
			if _, ok := seen[item.AssetID]; ok {
				continue
			}
			seen[item.AssetID] = struct{}{}
			ids = append(ids, item.AssetID)
		}
	}

	assets, err := s.assets.GetByIDsWithRelations(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate explore assets: %w", err)
	}

	byID := make(map[string]domain.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	return byID, nil
}

// buildGroup substitutes hydrated assets into a group, preserving
// aggregation order.
func buildGroup(g domain.IDGroup, assets map[string]domain.Asset) domain.ExploreGroup {
	out := domain.ExploreGroup{
		FieldName: g.FieldName,
		Items:     make([]domain.ExploreItem, 0, len(g.Items)),
	}
	for _, item := range g.Items {
		asset, ok := assets[item.AssetID]
		if !ok {
			continue
		}
		out.Items = append(out.Items, domain.ExploreItem{Value: item.Value, Data: asset})
	}
	return out
}

func (s *Service) visibleUserIDs(ctx context.Context, userID string) ([]string, error) {
	partners, err := s.partners.SharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load partners: %w", err)
	}

	seen := map[string]struct{}{userID: {}}
	scope := make([]string, 1, len(partners)+1)
	scope[0] = userID
	for _, p := range partners {
		if _, ok := seen[p.SharedByID]; ok {
			continue
		}
		seen[p.SharedByID] = struct{}{}
		scope = append(scope, p.SharedByID)
	}
	return scope, nil
}
