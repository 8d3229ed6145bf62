package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-txt2html/internal/config"
)

// envPrefix is the prefix of every environment variable read by txt2html.
const envPrefix = "TXT2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TXT2HTML_CONFIG: config file name or path
	Model      string // TXT2HTML_MODEL: model page path or name
	Input      string // TXT2HTML_INPUT: articles file
	OutputDir  string // TXT2HTML_OUTPUT_DIR: output directory
	Policy     string // TXT2HTML_POLICY: diacritics policy
	Domain     string // TXT2HTML_DOMAIN: site domain
}

// knownEnvVars lists valid TXT2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TXT2HTML_CONFIG":     true,
	"TXT2HTML_MODEL":      true,
	"TXT2HTML_INPUT":      true,
	"TXT2HTML_OUTPUT_DIR": true,
	"TXT2HTML_POLICY":     true,
	"TXT2HTML_DOMAIN":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized TXT2HTML_* values.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("TXT2HTML_CONFIG"),
		Model:      os.Getenv("TXT2HTML_MODEL"),
		Input:      os.Getenv("TXT2HTML_INPUT"),
		OutputDir:  os.Getenv("TXT2HTML_OUTPUT_DIR"),
		Policy:     os.Getenv("TXT2HTML_POLICY"),
		Domain:     os.Getenv("TXT2HTML_DOMAIN"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized TXT2HTML_* variables.
// Helps catch typos like TXT2HTML_OUTPUT instead of TXT2HTML_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file value, giving:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Model != "" {
		cfg.ModelFile = env.Model
	}
	if env.Input != "" {
		cfg.InputFile = env.Input
	}
	if env.OutputDir != "" {
		cfg.OutputDir = env.OutputDir
	}
	if env.Policy != "" {
		cfg.DiacriticsPolicy = env.Policy
	}
	if env.Domain != "" {
		cfg.Site.Domain = env.Domain
	}
}
