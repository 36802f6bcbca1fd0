// Package sysconfig reads runtime feature flags from the key-value store.
package sysconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumenvault/lumenvault/internal/db"
	"github.com/lumenvault/lumenvault/internal/domain"
)

// KeyPrefix namespaces flag keys in the store.
const KeyPrefix = domain.KeyPrefix + "config:"

// Key returns the store key for a feature flag.
func Key(flag domain.FlagKey) string { return KeyPrefix + string(flag) }

type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Store implements the config-source contract of the search usecase.
type Store struct {
	store store
}

func New(s store) *Store {
	return &Store{store: s}
}

// Snapshot loads every known flag in one pass. Absent keys read as
// disabled; anything other than the literal "true" reads as disabled too.
func (s *Store) Snapshot(ctx context.Context) (domain.Flags, error) {
	flags := make(domain.Flags, len(domain.AllFlagKeys))
	for _, key := range domain.AllFlagKeys {
		raw, err := s.store.Get(ctx, Key(key))
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				flags[key] = false
				continue
			}
			return nil, fmt.Errorf("load flag %s: %w", key, err)
		}
		flags[key] = string(raw) == "true"
	}
	return flags, nil
}
