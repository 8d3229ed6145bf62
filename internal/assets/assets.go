package assets

// DefaultModelName is the name of the built-in model page.
const DefaultModelName = "articol"

// DefaultSampleName is the name of the built-in sample input.
const DefaultSampleName = "articles"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadModel loads a model page by name using the default embedded loader.
// Returns ErrModelNotFound if the model does not exist.
func LoadModel(name string) (string, error) {
	return defaultLoader.LoadModel(name)
}

// LoadSample loads a sample input by name using the default embedded loader.
// Returns ErrSampleNotFound if the sample does not exist.
func LoadSample(name string) (string, error) {
	return defaultLoader.LoadSample(name)
}

// ListModels returns the names of the built-in model pages.
func ListModels() []string {
	return defaultLoader.ListModels()
}
