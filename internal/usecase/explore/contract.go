package explore

import (
	"context"

	"github.com/lumenvault/lumenvault/internal/domain"
)

// PartnerReader lists partners who shared their library with a user.
type PartnerReader interface {
	SharedWith(ctx context.Context, userID string) ([]domain.Partner, error)
}

// AssetGrouper aggregates a library into distinct-value buckets, each
// holding a representative asset ID.
type AssetGrouper interface {
	GroupByCity(ctx context.Context, userIDs []string) (domain.IDGroup, error)
	GroupByTag(ctx context.Context, userIDs []string) (domain.IDGroup, error)
}

// AssetReader hydrates assets by ID with their exif and tag relations.
type AssetReader interface {
	GetByIDsWithRelations(ctx context.Context, ids []string) ([]domain.Asset, error)
}
