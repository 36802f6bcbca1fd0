package search

import (
	"context"

	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/smart"
)

// ConfigSource reads the current feature-flag snapshot.
type ConfigSource interface {
	Snapshot(ctx context.Context) (domain.Flags, error)
}

// PartnerReader lists partners who shared their library with a user.
type PartnerReader interface {
	SharedWith(ctx context.Context, userID string) ([]domain.Partner, error)
}

// Encoder vectorizes query text into the CLIP embedding space.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// AssetSearcher runs full-text search over asset metadata.
type AssetSearcher interface {
	SearchMetadata(ctx context.Context, query string, userIDs []string, numResults int) ([]domain.Asset, error)
}

// SmartSearcher runs vector KNN search over asset embeddings.
type SmartSearcher interface {
	Search(ctx context.Context, p smart.Pagination, f smart.Filter) (smart.Page, error)
}

// AlbumSearcher runs full-text search over album names and descriptions.
type AlbumSearcher interface {
	Search(ctx context.Context, query string, userIDs []string) ([]domain.Album, error)
}

// PersonSearcher finds people by name within one owner's library.
type PersonSearcher interface {
	SearchByName(ctx context.Context, ownerID, name string, withHidden bool) ([]domain.Person, error)
}
