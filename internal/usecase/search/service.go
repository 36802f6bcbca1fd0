// Package search orchestrates hybrid library search: lexical metadata
// search and CLIP-based smart search, fanned out with album search.
package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/mode"
	"github.com/lumenvault/lumenvault/internal/domain/search/request"
	"github.com/lumenvault/lumenvault/internal/domain/search/result"
	"github.com/lumenvault/lumenvault/internal/domain/search/smart"
)

const (
	// smartPageSize is the fixed page size for vector search.
	smartPageSize = 100
	// metadataResultCap bounds a single lexical search response.
	metadataResultCap = 250
)

// Service handles library search across metadata and smart modes.
type Service struct {
	config   ConfigSource
	partners PartnerReader
	encoder  Encoder
	assets   AssetSearcher
	smart    SmartSearcher
	albums   AlbumSearcher
	people   PersonSearcher
	logger   *zap.Logger
}

// New creates a search service.
func New(
	config ConfigSource,
	partners PartnerReader,
	encoder Encoder,
	assets AssetSearcher,
	smartSearch SmartSearcher,
	albums AlbumSearcher,
	people PersonSearcher,
	logger *zap.Logger,
) *Service {
	return &Service{
		config:   config,
		partners: partners,
		encoder:  encoder,
		assets:   assets,
		smart:    smartSearch,
		albums:   albums,
		people:   people,
		logger:   logger,
	}
}

// Search runs one search request on behalf of userID and returns assets
// and albums together. Albums are always matched lexically regardless of
// the requested mode.
func (s *Service) Search(ctx context.Context, userID string, req *request.Request) (result.Envelope, error) {
	if strings.TrimSpace(req.Query()) == "" {
		return result.Envelope{}, domain.ErrMissingQuery
	}

	// The feature gate runs before any provider or index work so a
	// disabled deployment never reaches the encoder.
	if req.Mode() == mode.Smart {
		flags, err := s.config.Snapshot(ctx)
		if err != nil {
			return result.Envelope{}, fmt.Errorf("load feature flags: %w", err)
		}
		if !flags.Enabled(domain.FlagSmartSearch, domain.FlagSmartSearchCLIP) {
			return result.Envelope{}, domain.ErrSmartSearchDisabled
		}
	}

	scope, err := s.visibleUserIDs(ctx, userID)
	if err != nil {
		return result.Envelope{}, err
	}

	var (
		assets result.Page[domain.Asset]
		albums result.Page[domain.Album]
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		switch req.Mode() {
		case mode.Smart:
			assets, err = s.searchSmart(gctx, scope, req)
		default:
			assets, err = s.searchMetadata(gctx, scope, req)
		}
		return err
	})

	g.Go(func() error {
		found, err := s.albums.Search(gctx, req.Query(), scope)
		if err != nil {
			return fmt.Errorf("search albums: %w", err)
		}
		albums = result.NewPage(found)
		return nil
	})

	if err := g.Wait(); err != nil {
		return result.Envelope{}, err
	}

	s.logger.Debug("search completed",
		zap.String("mode", string(req.Mode())),
		zap.Int("assets", assets.Count),
		zap.Int("albums", albums.Count))

	return result.Envelope{Assets: assets, Albums: albums}, nil
}

// SearchPerson finds people by name in the requester's own library.
// Hidden people are excluded unless withHidden is set.
func (s *Service) SearchPerson(ctx context.Context, userID, name string, withHidden bool) ([]domain.Person, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrMissingQuery
	}

	people, err := s.people.SearchByName(ctx, userID, name, withHidden)
	if err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}
	return people, nil
}

// searchMetadata runs the lexical branch. Results are capped, not
// paginated: the response never advertises a next page.
func (s *Service) searchMetadata(
	ctx context.Context, scope []string, req *request.Request,
) (result.Page[domain.Asset], error) {
	found, err := s.assets.SearchMetadata(ctx, req.Query(), scope, metadataResultCap)
	if err != nil {
		return result.Page[domain.Asset]{}, fmt.Errorf("search metadata: %w", err)
	}
	return result.NewPage(found), nil
}

// searchSmart encodes the query and runs KNN over asset embeddings.
func (s *Service) searchSmart(
	ctx context.Context, scope []string, req *request.Request,
) (result.Page[domain.Asset], error) {
	vector, err := s.encoder.Encode(ctx, req.Query())
	if err != nil {
		return result.Page[domain.Asset]{}, fmt.Errorf("encode query: %w", err)
	}

	p := smart.Pagination{Page: req.Page(), Size: smartPageSize}
	f := smart.Filter{
		UserIDs:      scope,
		Embedding:    vector,
		WithArchived: req.WithArchived(),
		TakenAfter:   req.TakenAfter(),
		TakenBefore:  req.TakenBefore(),
		City:         req.City(),
		Tag:          req.Tag(),
		PersonID:     req.PersonID(),
	}

	page, err := s.smart.Search(ctx, p, f)
	if err != nil {
		return result.Page[domain.Asset]{}, fmt.Errorf("search smart: %w", err)
	}

	out := result.NewPage(page.Items)
	if page.HasNextPage {
		next := req.Page() + 1
		out.NextPage = &next
	}
	return out, nil
}

// visibleUserIDs returns the requester's scope: their own library plus
// every partner who shared theirs. The requester comes first; duplicates
// collapse.
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
