package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrModelNotFound indicates the requested model page does not exist.
	ErrModelNotFound = errors.New("model not found")

	// ErrSampleNotFound indicates the requested sample input does not exist.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
