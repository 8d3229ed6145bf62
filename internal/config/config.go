package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	txt2html "github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxPolicyLength = 30   // "strip-to-ascii", "repair-and-keep"
	MaxDomainLength = 253  // RFC 1035
	MaxBrandLength  = 100  // <title> suffix
	MaxClassLength  = 100  // CSS class attribute
	MaxPrefixLength = 200  // body line prefix
	MaxStyleRules   = 50
)

// ConfigDirName is the directory searched under os.UserConfigDir.
const ConfigDirName = "go-txt2html"

// Config holds all configuration for a conversion run.
type Config struct {
	ModelFile        string       `yaml:"modelFile"`        // Path or embedded model name (empty = embedded default)
	InputFile        string       `yaml:"inputFile"`        // Articles file (empty = must specify)
	OutputDir        string       `yaml:"outputDir"`        // Empty = current directory
	DiacriticsPolicy string       `yaml:"diacriticsPolicy"` // "strip-to-ascii" or "repair-and-keep"
	Site             SiteConfig   `yaml:"site"`
	Styles           StylesConfig `yaml:"styles"`
}

// SiteConfig defines the website the pages are published to.
type SiteConfig struct {
	Domain    string `yaml:"domain"`    // Host name without scheme, e.g. neculaifantanaru.com
	Brand     string `yaml:"brand"`     // <title> suffix after "| "
	FlagImage string `yaml:"flagImage"` // Image wrapped by the self-referencing flag link
}

// StylesConfig defines the paragraph classes of the article body.
type StylesConfig struct {
	Default  string      `yaml:"default"`  // Class of plain body lines
	Emphasis string      `yaml:"emphasis"` // Class of the description paragraph
	Rules    []StyleRule `yaml:"rules"`    // First matching prefix wins
}

// StyleRule maps a body line prefix to a paragraph class.
type StyleRule struct {
	Prefix string `yaml:"prefix"`
	Class  string `yaml:"class"`
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("modelFile", c.ModelFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("inputFile", c.InputFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("outputDir", c.OutputDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("diacriticsPolicy", c.DiacriticsPolicy, MaxPolicyLength); err != nil {
		return err
	}
	if _, err := txt2html.ParsePolicy(c.DiacriticsPolicy); err != nil {
		return fmt.Errorf("diacriticsPolicy: %w", err)
	}

	// Validate site fields
	if err := validateFieldLength("site.domain", c.Site.Domain, MaxDomainLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.brand", c.Site.Brand, MaxBrandLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.flagImage", c.Site.FlagImage, MaxPathLength); err != nil {
		return err
	}
	if c.Site.Domain != "" {
		if strings.Contains(c.Site.Domain, "://") || strings.ContainsAny(c.Site.Domain, "/ \"") {
			return fmt.Errorf("site.domain: %w: %q must be a host name without scheme or path", txt2html.ErrInvalidSite, c.Site.Domain)
		}
	}

	// Validate styles
	if err := validateFieldLength("styles.default", c.Styles.Default, MaxClassLength); err != nil {
		return err
	}
	if err := validateFieldLength("styles.emphasis", c.Styles.Emphasis, MaxClassLength); err != nil {
		return err
	}
	if len(c.Styles.Rules) > MaxStyleRules {
		return fmt.Errorf("styles.rules: %w: %d rules, max %d", txt2html.ErrInvalidStyles, len(c.Styles.Rules), MaxStyleRules)
	}
	for i, rule := range c.Styles.Rules {
		if err := validateFieldLength(fmt.Sprintf("styles.rules[%d].prefix", i), rule.Prefix, MaxPrefixLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("styles.rules[%d].class", i), rule.Class, MaxClassLength); err != nil {
			return err
		}
		if rule.Prefix == "" || rule.Class == "" {
			return fmt.Errorf("styles.rules[%d]: %w: prefix and class are required", i, txt2html.ErrInvalidStyles)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration of the site the built-in model
// page comes from.
func DefaultConfig() *Config {
	site := txt2html.DefaultSite()
	styles := txt2html.DefaultStyles()

	rules := make([]StyleRule, len(styles.Rules))
	for i, r := range styles.Rules {
		rules[i] = StyleRule{Prefix: r.Prefix, Class: r.Class}
	}

	return &Config{
		ModelFile:        "",
		InputFile:        "",
		OutputDir:        "",
		DiacriticsPolicy: string(txt2html.DefaultPolicy),
		Site: SiteConfig{
			Domain:    site.Domain,
			Brand:     site.Brand,
			FlagImage: site.FlagImage,
		},
		Styles: StylesConfig{
			Default:  styles.Default,
			Emphasis: styles.Emphasis,
			Rules:    rules,
		},
	}
}

// Policy returns the parsed diacritics policy.
// An empty value yields the default policy.
func (c *Config) Policy() (txt2html.Policy, error) {
	return txt2html.ParsePolicy(c.DiacriticsPolicy)
}

// SiteSettings returns the site settings, with empty fields taken from
// txt2html.DefaultSite.
func (c *Config) SiteSettings() txt2html.Site {
	site := txt2html.DefaultSite()
	if c.Site.Domain != "" {
		site.Domain = c.Site.Domain
	}
	if c.Site.Brand != "" {
		site.Brand = c.Site.Brand
	}
	if c.Site.FlagImage != "" {
		site.FlagImage = c.Site.FlagImage
	}
	return site
}

// StyleSettings returns the paragraph styles, with empty fields taken from
// txt2html.DefaultStyles. A nil rule list keeps the default rules; an
// explicit empty list disables them.
func (c *Config) StyleSettings() txt2html.Styles {
	styles := txt2html.DefaultStyles()
	if c.Styles.Default != "" {
		styles.Default = c.Styles.Default
	}
	if c.Styles.Emphasis != "" {
		styles.Emphasis = c.Styles.Emphasis
	}
	if c.Styles.Rules != nil {
		styles.Rules = make([]txt2html.StyleRule, len(c.Styles.Rules))
		for i, r := range c.Styles.Rules {
			styles.Rules[i] = txt2html.StyleRule{Prefix: r.Prefix, Class: r.Class}
		}
	}
	return styles
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Encode returns the configuration as a YAML document preceded by header
// as comment lines.
func (c *Config) Encode(header string) ([]byte, error) {
	return yamlutil.MarshalWithHeader(c, header)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-txt2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, ConfigDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
