package main

import (
	"errors"
	"os"

	txt2html "github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/assets"
	"github.com/alnah/go-txt2html/internal/config"
	"github.com/alnah/go-txt2html/internal/fileutil"
)

// Exit codes for txt2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All articles converted
	ExitGeneral = 1 // Some articles failed, or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Model, input or output not readable/writable
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrFileTooLarge) ||
		errors.Is(err, fileutil.ErrNotRegular) ||
		errors.Is(err, ErrReadModel) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrFileExists) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, assets.ErrModelNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, txt2html.ErrEmptyModel) ||
		errors.Is(err, txt2html.ErrInvalidPolicy) ||
		errors.Is(err, txt2html.ErrInvalidSite) ||
		errors.Is(err, txt2html.ErrInvalidStyles) {
		return ExitUsage
	}

	return ExitGeneral
}
