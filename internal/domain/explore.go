package domain

// Explore facet field names, matching the asset document layout.
const (
	ExploreFieldCity = "exifInfo.city"
	ExploreFieldTag  = "smartInfo.tags"
)

// IDGroupItem pairs one distinct facet value with a representative asset id.
type IDGroupItem struct {
	Value   string
	AssetID string
}

// IDGroup is a raw distinct-value grouping as reported by the metadata store.
type IDGroup struct {
	FieldName string
	Items     []IDGroupItem
}

// ExploreItem pairs one distinct facet value with its hydrated representative asset.
type ExploreItem struct {
	Value string `json:"value"`
	Data  Asset  `json:"data"`
}

// ExploreGroup is one facet's distinct values, each with a representative asset.
type ExploreGroup struct {
	FieldName string        `json:"fieldName"`
	Items     []ExploreItem `json:"items"`
}
