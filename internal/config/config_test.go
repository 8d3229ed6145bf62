package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	txt2html "github.com/alnah/go-txt2html"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.ModelFile != "" {
		t.Errorf("ModelFile = %q, want empty", cfg.ModelFile)
	}
	if cfg.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty", cfg.OutputDir)
	}
	if cfg.DiacriticsPolicy != string(txt2html.PolicyStripToASCII) {
		t.Errorf("DiacriticsPolicy = %q, want %q", cfg.DiacriticsPolicy, txt2html.PolicyStripToASCII)
	}
	if cfg.Site.Domain != "neculaifantanaru.com" {
		t.Errorf("Site.Domain = %q, want %q", cfg.Site.Domain, "neculaifantanaru.com")
	}
	if len(cfg.Styles.Rules) == 0 {
		t.Error("Styles.Rules should hold the default prefix rules")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() unexpected error: %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "1234567890", maxLength: 10},
		{name: "value over limit returns error", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Policy, site and styles validation
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
		wantMsg string
	}{
		{
			name:   "empty config is valid",
			mutate: func(c *Config) { *c = Config{} },
		},
		{
			name:   "repair-and-keep policy is valid",
			mutate: func(c *Config) { c.DiacriticsPolicy = "repair-and-keep" },
		},
		{
			name:   "policy is case-insensitive",
			mutate: func(c *Config) { c.DiacriticsPolicy = "Strip-To-ASCII" },
		},
		{
			name:    "unknown policy",
			mutate:  func(c *Config) { c.DiacriticsPolicy = "keep" },
			wantErr: txt2html.ErrInvalidPolicy,
			wantMsg: "diacriticsPolicy",
		},
		{
			name:    "domain with scheme",
			mutate:  func(c *Config) { c.Site.Domain = "https://example.com" },
			wantErr: txt2html.ErrInvalidSite,
			wantMsg: "site.domain",
		},
		{
			name:    "domain with path",
			mutate:  func(c *Config) { c.Site.Domain = "example.com/en" },
			wantErr: txt2html.ErrInvalidSite,
		},
		{
			name:    "domain too long",
			mutate:  func(c *Config) { c.Site.Domain = strings.Repeat("a", MaxDomainLength+1) },
			wantErr: ErrFieldTooLong,
			wantMsg: "site.domain",
		},
		{
			name:    "brand too long",
			mutate:  func(c *Config) { c.Site.Brand = strings.Repeat("b", MaxBrandLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "rule without class",
			mutate:  func(c *Config) { c.Styles.Rules = []StyleRule{{Prefix: "Note:"}} },
			wantErr: txt2html.ErrInvalidStyles,
			wantMsg: "styles.rules[0]",
		},
		{
			name: "rule prefix too long",
			mutate: func(c *Config) {
				c.Styles.Rules = []StyleRule{{Prefix: strings.Repeat("p", MaxPrefixLength+1), Class: "x"}}
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "too many rules",
			mutate: func(c *Config) {
				c.Styles.Rules = make([]StyleRule, MaxStyleRules+1)
			},
			wantMsg: "styles.rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil && tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Settings - Conversion to library settings
// ---------------------------------------------------------------------------

func TestConfig_SiteSettings(t *testing.T) {
	t.Parallel()

	cfg := &Config{Site: SiteConfig{Domain: "example.org"}}
	site := cfg.SiteSettings()

	if site.Domain != "example.org" {
		t.Errorf("Domain = %q, want %q", site.Domain, "example.org")
	}
	if site.Brand != txt2html.DefaultSite().Brand {
		t.Errorf("Brand = %q, want default %q", site.Brand, txt2html.DefaultSite().Brand)
	}
	if site.FlagImage != txt2html.DefaultSite().FlagImage {
		t.Errorf("FlagImage = %q, want default", site.FlagImage)
	}
}

// Notes:
// - nil rules inherit the defaults; an explicit empty list turns them off.
func TestConfig_StyleSettings(t *testing.T) {
	t.Parallel()

	t.Run("nil rules keep defaults", func(t *testing.T) {
		t.Parallel()

		styles := (&Config{Styles: StylesConfig{Default: "plain"}}).StyleSettings()
		if styles.Default != "plain" {
			t.Errorf("Default = %q, want %q", styles.Default, "plain")
		}
		if styles.Emphasis != txt2html.DefaultStyles().Emphasis {
			t.Errorf("Emphasis = %q, want default", styles.Emphasis)
		}
		if len(styles.Rules) != len(txt2html.DefaultStyles().Rules) {
			t.Errorf("Rules = %v, want defaults", styles.Rules)
		}
	})

	t.Run("empty rules disable prefixes", func(t *testing.T) {
		t.Parallel()

		styles := (&Config{Styles: StylesConfig{Rules: []StyleRule{}}}).StyleSettings()
		if len(styles.Rules) != 0 {
			t.Errorf("Rules = %v, want none", styles.Rules)
		}
	})

	t.Run("custom rules replace defaults", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Styles: StylesConfig{Rules: []StyleRule{{Prefix: "Nota:", Class: "nota"}}}}
		styles := cfg.StyleSettings()
		if len(styles.Rules) != 1 || styles.Rules[0].Class != "nota" {
			t.Errorf("Rules = %v, want the single custom rule", styles.Rules)
		}
	})
}

func TestConfig_Policy(t *testing.T) {
	t.Parallel()

	p, err := (&Config{}).Policy()
	if err != nil {
		t.Fatalf("Policy() unexpected error: %v", err)
	}
	if p != txt2html.DefaultPolicy {
		t.Errorf("Policy() = %q, want %q", p, txt2html.DefaultPolicy)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading and name resolution
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "site.yaml", `modelFile: index.html
inputFile: articles.txt
outputDir: output
diacriticsPolicy: repair-and-keep
site:
  domain: example.com
  brand: Example
  flagImage: img/flag_en.jpg
styles:
  default: body
  emphasis: lead
  rules:
    - prefix: "Note:"
      class: note
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.ModelFile != "index.html" {
			t.Errorf("ModelFile = %q, want %q", cfg.ModelFile, "index.html")
		}
		if cfg.InputFile != "articles.txt" {
			t.Errorf("InputFile = %q, want %q", cfg.InputFile, "articles.txt")
		}
		if cfg.OutputDir != "output" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "output")
		}
		if cfg.DiacriticsPolicy != "repair-and-keep" {
			t.Errorf("DiacriticsPolicy = %q, want %q", cfg.DiacriticsPolicy, "repair-and-keep")
		}
		if cfg.Site.FlagImage != "img/flag_en.jpg" {
			t.Errorf("Site.FlagImage = %q, want %q", cfg.Site.FlagImage, "img/flag_en.jpg")
		}
		if len(cfg.Styles.Rules) != 1 || cfg.Styles.Rules[0].Prefix != "Note:" {
			t.Errorf("Styles.Rules = %v, want one Note: rule", cfg.Styles.Rules)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "invalid.yaml", "site: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "outputDir: out\ntemplate: index.html\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid policy fails validation", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "policy.yaml", "diacriticsPolicy: ascii\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, txt2html.ErrInvalidPolicy) {
			t.Errorf("error = %v, want ErrInvalidPolicy", err)
		}
	})

	t.Run("unreadable file returns read error not ErrConfigNotFound", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permissions are not enforced for root")
		}
		path := writeConfig(t, t.TempDir(), "unreadable.yaml", "outputDir: out\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		defer os.Chmod(path, 0o600)

		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("expected error for unreadable file")
		}
		if errors.Is(err, ErrConfigNotFound) {
			t.Error("error should not be ErrConfigNotFound for permission error")
		}
	})

	t.Run("config name resolves yaml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "myconfig.yaml", "outputDir: fromname\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("myconfig")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.OutputDir != "fromname" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "fromname")
		}
	})

	t.Run("config name resolves yml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "other.yml", "outputDir: fromyml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("other")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.OutputDir != "fromyml" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "fromyml")
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("missing-config-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "missing-config-xyz.yaml") {
			t.Errorf("error %q should list the tried paths", err)
		}
	})
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"site", false},
		{"./site", true},
		{"configs/site", true},
		{"site.yaml", true},
		{"site.yml", true},
	}

	for _, tt := range tests {
		if got := isFilePath(tt.input); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConfig_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := DefaultConfig().Encode("generated")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# generated\n") {
		t.Errorf("Encode() output should start with the header:\n%s", data)
	}
	if !strings.Contains(string(data), "diacriticsPolicy: strip-to-ascii") {
		t.Errorf("Encode() output missing policy:\n%s", data)
	}

	path := writeConfig(t, t.TempDir(), "default.yaml", string(data))
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(marshaled default) error = %v", err)
	}
	if cfg.Site != DefaultConfig().Site {
		t.Errorf("Site = %+v, want %+v", cfg.Site, DefaultConfig().Site)
	}
}
