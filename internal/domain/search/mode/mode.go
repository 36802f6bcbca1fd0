package mode

// Mode is the asset search strategy.
type Mode string

// Search mode constants.
const (
	// Metadata matches the query against structured text fields
	// (filename, description, EXIF).
	Metadata Mode = "metadata"
	// Smart runs nearest-neighbor retrieval over CLIP embeddings.
	Smart Mode = "smart"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Metadata || m == Smart
}
