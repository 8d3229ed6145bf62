// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxTextSize caps the size of text files read by ReadText (32MB).
const MaxTextSize = 32 << 20

// Sentinel errors for file utility operations.
var (
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	ErrNotRegular   = errors.New("not a regular file")
)

// ReadText reads the whole file at path, refusing files larger than
// maxSize bytes. The file is closed before returning.
func ReadText(path string, maxSize int64) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	// Read one byte past the limit to detect files that grew after Stat.
	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %s (max %d bytes)", ErrFileTooLarge, path, maxSize)
	}
	return string(data), nil
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, then renames it over path. Readers see either the old or the
// new content. The temporary file is removed on failure.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) or ending in one of exts
// (compared case-insensitively) is treated as a path.
//
// Examples, with exts = [".html"]:
//   - "articol" -> false (name)
//   - "index.html" -> true (file in current directory)
//   - "./model.html" -> true (relative path)
//   - "/absolute/model" -> true (absolute)
//   - "C:\site\index.html" -> true (Windows)
func IsFilePath(s string, exts ...string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	lower := strings.ToLower(s)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
