package assets

// AssetLoader defines the contract for loading model pages and sample inputs.
type AssetLoader interface {
	// LoadModel loads a model HTML page by name (without .html extension).
	// Returns ErrModelNotFound if the model doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadModel(name string) (string, error)

	// LoadSample loads a sample articles file by name (without .txt extension).
	// Returns ErrSampleNotFound if the sample doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadSample(name string) (string, error)

	// ListModels returns the names of the available models, sorted.
	ListModels() []string
}
