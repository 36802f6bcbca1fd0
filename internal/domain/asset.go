package domain

import "time"

// AssetType distinguishes media kinds in the library.
type AssetType string

// Asset media kinds.
const (
	AssetImage AssetType = "image"
	AssetVideo AssetType = "video"
)

// ExifInfo holds the camera metadata attached to an asset.
type ExifInfo struct {
	Make      string `json:"make,omitempty"`
	Model     string `json:"model,omitempty"`
	LensModel string `json:"lensModel,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Country   string `json:"country,omitempty"`
}

// Asset is a single media record in a user's library.
// Exif, Tags and People are populated only by hydrated (with-relations) reads.
type Asset struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	Type             AssetType `json:"type"`
	OriginalPath     string    `json:"originalPath"`
	OriginalFileName string    `json:"originalFileName"`
	Description      string    `json:"description,omitempty"`
	IsArchived       bool      `json:"isArchived"`
	IsFavorite       bool      `json:"isFavorite"`
	CreatedAt        time.Time `json:"createdAt"`
	Exif             *ExifInfo `json:"exifInfo,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	People           []string  `json:"people,omitempty"`
}

// Album is a user-curated collection of assets.
type Album struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"albumName"`
	Description string `json:"description,omitempty"`
	AssetCount  int    `json:"assetCount"`
	ThumbnailID string `json:"albumThumbnailAssetId,omitempty"`
}

// Person is a recognized face cluster with an optional display name.
type Person struct {
	ID            string `json:"id"`
	OwnerID       string `json:"ownerId"`
	Name          string `json:"name"`
	IsHidden      bool   `json:"isHidden"`
	ThumbnailPath string `json:"thumbnailPath,omitempty"`
}

// Partner is a sharing relationship: SharedByID's library is visible to SharedWithID.
type Partner struct {
	SharedByID   string `json:"sharedById"`
	SharedWithID string `json:"sharedWithId"`
}
