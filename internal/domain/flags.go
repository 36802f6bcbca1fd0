package domain

// FlagKey names a boolean feature flag in the external system-config store.
type FlagKey string

// Feature flags read by this service.
const (
	// FlagSmartSearch is the global machine-learning switch.
	FlagSmartSearch FlagKey = "smart_search.enabled"
	// FlagSmartSearchCLIP enables the CLIP smart-search feature specifically.
	FlagSmartSearchCLIP FlagKey = "smart_search.clip.enabled"
)

// AllFlagKeys lists every flag this service resolves on snapshot.
var AllFlagKeys = []FlagKey{FlagSmartSearch, FlagSmartSearchCLIP}

// Flags is an immutable snapshot of feature flags taken at the start of a
// request. Keys absent from the snapshot are disabled.
type Flags map[FlagKey]bool

// Enabled reports whether every named flag is present and true.
func (f Flags) Enabled(keys ...FlagKey) bool {
	for _, k := range keys {
		if !f[k] {
			return false
		}
	}
	return true
}
