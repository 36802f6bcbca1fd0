// Package partner adapts the store holding library-sharing relationships.
package partner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lumenvault/lumenvault/internal/db"
	"github.com/lumenvault/lumenvault/internal/domain"
)

// KeyPrefix namespaces partner documents: one JSON array per shared-with user.
const KeyPrefix = domain.KeyPrefix + "partners:"

// Key returns the document key holding the partners visible to userID.
func Key(userID string) string { return KeyPrefix + userID }

// store is the consumer interface for partner lookups (ISP).
type store interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
}

// Repo implements the partner-store contract of the search and explore usecases.
type Repo struct {
	store store
}

// New creates a partner repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SharedWith returns the partners who granted userID visibility into their
// libraries, in store order. A user without partners yields an empty list;
// store failures propagate.
func (r *Repo) SharedWith(ctx context.Context, userID string) ([]domain.Partner, error) {
	raw, err := r.store.JSONGet(ctx, Key(userID), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load partners for %s: %w", userID, err)
	}

	// JSON.GET with path "$" wraps the stored array in another array.
	var nested [][]domain.Partner
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}

	var partners []domain.Partner
	if err := json.Unmarshal(raw, &partners); err != nil {
		return nil, fmt.Errorf("decode partners for %s: %w", userID, err)
	}
	return partners, nil
}
