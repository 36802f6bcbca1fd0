package asset

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumenvault/lumenvault/internal/domain"
)

// assetDoc is the stored JSON layout of an asset. Tags nest under smartInfo
// and the capture time is duplicated as epoch seconds for NUMERIC filtering.
type assetDoc struct {
	ID               string           `json:"id"`
	OwnerID          string           `json:"ownerId"`
	Type             string           `json:"type"`
	OriginalPath     string           `json:"originalPath"`
	OriginalFileName string           `json:"originalFileName"`
	Description      string           `json:"description,omitempty"`
	IsArchived       bool             `json:"isArchived"`
	IsFavorite       bool             `json:"isFavorite"`
	CreatedAt        time.Time        `json:"createdAt"`
	TakenAtSec       int64            `json:"takenAtSec,omitempty"`
	Exif             *domain.ExifInfo `json:"exifInfo,omitempty"`
	SmartInfo        *smartInfoDoc    `json:"smartInfo,omitempty"`
	People           []string         `json:"people,omitempty"`
	ClipEmbedding    []float32        `json:"clipEmbedding,omitempty"`
}

type smartInfoDoc struct {
	Tags []string `json:"tags,omitempty"`
}

func (d *assetDoc) toDomain() domain.Asset {
	a := domain.Asset{
		ID:               d.ID,
		OwnerID:          d.OwnerID,
		Type:             domain.AssetType(d.Type),
		OriginalPath:     d.OriginalPath,
		OriginalFileName: d.OriginalFileName,
		Description:      d.Description,
		IsArchived:       d.IsArchived,
		IsFavorite:       d.IsFavorite,
		CreatedAt:        d.CreatedAt,
		Exif:             d.Exif,
		People:           d.People,
	}
	if d.SmartInfo != nil {
		a.Tags = d.SmartInfo.Tags
	}
	return a
}

// DecodeDoc decodes a stored asset document into its domain record. Shared
// with the smart repository, which reads the same documents.
func DecodeDoc(raw []byte) (domain.Asset, error) {
	doc, err := parseAssetJSON(raw)
	if err != nil {
		return domain.Asset{}, err
	}
	return doc.toDomain(), nil
}

// parseAssetJSON decodes an asset document. JSON.MGET with path "$" wraps the
// document in a one-element array; FT.SEARCH RETURN "$" does not.
func parseAssetJSON(raw []byte) (*assetDoc, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty asset document")
	}

	if raw[0] == '[' {
		var docs []assetDoc
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, fmt.Errorf("decode asset document: %w", err)
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("empty asset document")
		}
		return &docs[0], nil
	}

	var doc assetDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode asset document: %w", err)
	}
	return &doc, nil
}
