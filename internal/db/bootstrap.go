package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// EnsureIndexes brings the FT indexes up to the given definitions on boot.
// Existing indexes are left untouched unless recreate is set, in which
// case they are dropped and rebuilt (documents survive; the server
// re-indexes them from the stored JSON).
func EnsureIndexes(
	ctx context.Context, m IndexManager, defs []*IndexDefinition, recreate bool, logger *zap.Logger,
) error {
	for _, def := range defs {
		exists, err := m.IndexExists(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("probe index %s: %w", def.Name, err)
		}

		if exists {
			if !recreate {
				logger.Debug("Index already exists", zap.String("index", def.Name))
				continue
			}
			if err := m.DropIndex(ctx, def.Name); err != nil {
				return fmt.Errorf("drop index %s: %w", def.Name, err)
			}
			logger.Info("Dropped index for rebuild", zap.String("index", def.Name))
		}

		if err := m.CreateIndex(ctx, def); err != nil {
			// Another instance may have created the index between the
			// probe and the create.
			if errors.Is(err, ErrIndexExists) {
				logger.Debug("Index already exists", zap.String("index", def.Name))
				continue
			}
			return fmt.Errorf("create index %s: %w", def.Name, err)
		}
		logger.Info("Created index", zap.String("index", def.Name))
	}
	return nil
}
