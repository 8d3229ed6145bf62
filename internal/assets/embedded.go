package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed models/*
var models embed.FS

//go:embed samples/*
var samples embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadModel loads a model page from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadModel(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := models.ReadFile("models/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}

	return string(content), nil
}

// LoadSample loads a sample articles file from embedded assets by name.
// The name should not include the .txt extension.
func (e *EmbeddedLoader) LoadSample(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := samples.ReadFile("samples/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSampleNotFound, name)
	}

	return string(content), nil
}

// ListModels returns the embedded model names, sorted.
func (e *EmbeddedLoader) ListModels() []string {
	entries, err := fs.ReadDir(models, "models")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".html"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
