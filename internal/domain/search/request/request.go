// Package request models a validated asset search request.
package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/lumenvault/lumenvault/internal/domain"
	"github.com/lumenvault/lumenvault/internal/domain/search/mode"
)

// MaxQueryLength is the maximum allowed search query length.
const MaxQueryLength = 4096

// Options carries the optional search parameters.
type Options struct {
	WithArchived bool
	// Page selects the smart-search page, 1-based. Ignored in metadata mode.
	Page        int
	TakenAfter  *time.Time
	TakenBefore *time.Time
	City        string
	Tag         string
	PersonID    string
}

// Request is a validated search request. Fields that only apply to one
// search mode are unreachable on the other path.
type Request struct {
	query      string
	searchMode mode.Mode
	opts       Options
}

// New validates and normalizes search parameters.
// The query must be non-empty after trimming. Defaults: mode=metadata, page=1.
func New(query string, m mode.Mode, opts Options) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, domain.ErrMissingQuery
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if m == "" {
		m = mode.Metadata
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("invalid search mode: %q", m)
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.TakenAfter != nil && opts.TakenBefore != nil && opts.TakenAfter.After(*opts.TakenBefore) {
		return Request{}, fmt.Errorf("takenAfter must not be later than takenBefore")
	}

	return Request{query: query, searchMode: m, opts: opts}, nil
}

// Query returns the trimmed search query text.
func (r *Request) Query() string { return r.query }

// Mode returns the search strategy.
func (r *Request) Mode() mode.Mode { return r.searchMode }

// WithArchived reports whether archived assets are included.
func (r *Request) WithArchived() bool { return r.opts.WithArchived }

// Page returns the 1-based smart-search page.
func (r *Request) Page() int { return r.opts.Page }

// TakenAfter returns the lower capture-date bound, if any.
func (r *Request) TakenAfter() *time.Time { return r.opts.TakenAfter }

// TakenBefore returns the upper capture-date bound, if any.
func (r *Request) TakenBefore() *time.Time { return r.opts.TakenBefore }

// City returns the EXIF city filter, if any.
func (r *Request) City() string { return r.opts.City }

// Tag returns the tag filter, if any.
func (r *Request) Tag() string { return r.opts.Tag }

// PersonID returns the person filter, if any.
func (r *Request) PersonID() string { return r.opts.PersonID }
