// Package smart holds the value types passed to the smart (CLIP) search
// adapter. The query embedding is opaque to every other component.
package smart

import (
	"time"

	"github.com/lumenvault/lumenvault/internal/domain"
)

// Pagination selects a page of smart-search hits, 1-based.
type Pagination struct {
	Page int
	Size int
}

// Filter scopes a smart search to visible owners and optional constraints.
type Filter struct {
	UserIDs      []string
	Embedding    []float32
	WithArchived bool
	TakenAfter   *time.Time
	TakenBefore  *time.Time
	City         string
	Tag          string
	PersonID     string
}

// Page is one page of smart-search hits. HasNextPage is authoritative for
// pagination: the caller derives its next-page token from it.
type Page struct {
	Items       []domain.Asset
	HasNextPage bool
}
