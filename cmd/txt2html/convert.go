package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	txt2html "github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/assets"
	"github.com/alnah/go-txt2html/internal/config"
	"github.com/alnah/go-txt2html/internal/fileutil"
	"github.com/alnah/go-txt2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no articles file specified")
	ErrReadModel   = errors.New("failed to read model file")
	ErrReadInput   = errors.New("failed to read articles file")
	ErrOutputDir   = errors.New("failed to create output directory")
	ErrWriteHTML   = errors.New("failed to write HTML file")
	ErrBatchFailed = errors.New("conversion(s) failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxModelSize caps the model page read from disk (4MB).
const maxModelSize = 4 << 20

// modelExtensions mark a --model value as a file rather than a built-in name.
var modelExtensions = []string{".html", ".htm"}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	// Load configuration (flag wins over TXT2HTML_CONFIG)
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Environment, then CLI flags, override the config file
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	service, err := newService(cfg)
	if err != nil {
		return err
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Read the model once for the whole batch
	model, err := resolveModel(cfg.ModelFile, env.AssetLoader)
	if err != nil {
		return err
	}

	content, err := fileutil.ReadText(inputPath, fileutil.MaxTextSize)
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrReadInput, err, inputHint(err))
	}

	chunks := txt2html.Split(content)
	if len(chunks) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "warning: no articles found in %s%s\n", inputPath, hints.ForNoArticles())
		}
		return nil
	}

	// Resolve and create output directory
	outputDir := resolveOutputDir(flags.output, cfg)
	if !flags.dryRun {
		if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
		}
	}

	params := &batchParams{
		model:     model,
		outputDir: outputDir,
		dryRun:    flags.dryRun,
		quiet:     flags.common.quiet,
		verbose:   flags.common.verbose,
	}

	results := convertBatch(ctx, service, chunks, params, env)

	failedCount := printSummary(results, flags.common.quiet, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failedCount, len(results))
	}

	return nil
}

// loadConfig loads the config named by the flag or, failing that, by
// TXT2HTML_CONFIG. Without either, an empty config is returned so that
// library defaults apply.
func loadConfig(flagConfig, envConfig string) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfig
	}
	if name == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) {
			hint = hints.ForConfigNotFound(searchedConfigPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// searchedConfigPaths lists where a config name is looked up.
func searchedConfigPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, config.ConfigDirName, name+".yaml"))
	}
	return paths
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.model != "" {
		cfg.ModelFile = flags.model
	}
	if flags.output != "" {
		cfg.OutputDir = flags.output
	}
	if flags.policy != "" {
		cfg.DiacriticsPolicy = flags.policy
	}

	// Site flags
	if flags.site.domain != "" {
		cfg.Site.Domain = flags.site.domain
	}
	if flags.site.brand != "" {
		cfg.Site.Brand = flags.site.brand
	}
	if flags.site.flagImage != "" {
		cfg.Site.FlagImage = flags.site.flagImage
	}
}

// newService builds the rendering service from validated config.
func newService(cfg *config.Config) (*txt2html.Service, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	return txt2html.New(
		txt2html.WithPolicy(policy),
		txt2html.WithSite(cfg.SiteSettings()),
		txt2html.WithStyles(cfg.StyleSettings()),
	)
}

// resolveInputPath determines the articles file from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.InputFile != "" {
		return cfg.InputFile, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForInputFile())
}

// resolveOutputDir determines the output directory from flag or config.
// Empty means the current directory.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return "."
}

// resolveModel returns the model page content.
// A value that looks like a file path is read from disk; any other value
// names a built-in model. Empty selects the default built-in model.
func resolveModel(nameOrPath string, loader assets.AssetLoader) (string, error) {
	if nameOrPath == "" {
		nameOrPath = assets.DefaultModelName
	}

	var model string
	if fileutil.IsFilePath(nameOrPath, modelExtensions...) {
		content, err := fileutil.ReadText(nameOrPath, maxModelSize)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadModel, err)
		}
		model = content
	} else {
		content, err := loader.LoadModel(nameOrPath)
		if err != nil {
			if errors.Is(err, assets.ErrModelNotFound) {
				return "", fmt.Errorf("%w%s", err, hints.ForModelNotFound(loader.ListModels()))
			}
			return "", err
		}
		model = content
	}

	if model == "" {
		return "", fmt.Errorf("%w: %s", txt2html.ErrEmptyModel, nameOrPath)
	}
	return model, nil
}

// inputHint returns a hint for a missing articles file.
func inputHint(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return hints.ForInputFile()
	}
	return ""
}
