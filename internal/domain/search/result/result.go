// Package result models the paginated response envelope returned by search.
package result

import "github.com/lumenvault/lumenvault/internal/domain"

// FacetCount is one value bucket inside a facet summary.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facet summarizes a result set along one grouping dimension.
type Facet struct {
	FieldName string       `json:"fieldName"`
	Counts    []FacetCount `json:"counts"`
}

// Page is one page of search hits. Count always equals len(Items);
// NextPage is set only when the backing store reports more pages.
type Page[T any] struct {
	Total    int     `json:"total"`
	Count    int     `json:"count"`
	Items    []T     `json:"items"`
	Facets   []Facet `json:"facets"`
	NextPage *int    `json:"nextPage"`
}

// NewPage wraps a single-shot result set: total == count == len(items),
// no facets, no next page.
func NewPage[T any](items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Total:  len(items),
		Count:  len(items),
		Items:  items,
		Facets: []Facet{},
	}
}

// Envelope pairs the independently queried asset and album pages.
type Envelope struct {
	Assets Page[domain.Asset] `json:"assets"`
	Albums Page[domain.Album] `json:"albums"`
}
