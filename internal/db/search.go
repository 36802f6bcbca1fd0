package db

import "github.com/lumenvault/lumenvault/internal/domain/search/filter"

// KNNQuery is the input for vector similarity search. Offset/Limit select a
// window inside the K nearest candidates, ordered by distance.
type KNNQuery struct {
	IndexName    string
	Filters      filter.Expression
	Vector       []float32
	K            int
	Offset       int
	Limit        int
	ReturnFields []string
}

// TextQuery is the input for full-text search across the index's TEXT fields.
type TextQuery struct {
	IndexName    string
	Query        string
	Filters      filter.Expression
	TopK         int
	ReturnFields []string
}

// GroupByQuery is the input for a distinct-value aggregation: for each
// distinct value of GroupField, report the first value of IDField.
type GroupByQuery struct {
	IndexName  string
	Query      string
	Filters    filter.Expression
	GroupField string
	IDField    string
	Limit      int
}

// GroupRow is one bucket of a group-by aggregation.
type GroupRow struct {
	Value string
	ID    string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
