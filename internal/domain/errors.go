package domain

import "errors"

var (
	// ErrMissingQuery signals an empty search query.
	ErrMissingQuery = errors.New("missing query")
	// ErrSmartSearchDisabled signals that smart search is turned off in the system config.
	ErrSmartSearchDisabled = errors.New("smart search is not enabled")
	// ErrEncoderUnavailable signals a CLIP text-encoder failure.
	ErrEncoderUnavailable = errors.New("encoder unavailable")
	// ErrAssetNotFound signals a missing asset record.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
