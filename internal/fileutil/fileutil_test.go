package fileutil_test

// Notes:
// - WriteFileAtomic write and close error branches are not tested because
//   triggering disk write failures is platform-specific.
// - Permission-based failures are skipped when running as root.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-txt2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestReadText - Size-capped file reads
// ---------------------------------------------------------------------------

func TestReadText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	small := filepath.Join(dir, "articles.txt")
	if err := os.WriteFile(small, []byte("Titlu\n\nDescriere\nCorp"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		maxSize int64
		want    string
		wantErr error
	}{
		{
			name:    "reads file under limit",
			path:    small,
			maxSize: 1024,
			want:    "Titlu\n\nDescriere\nCorp",
		},
		{
			name:    "reads file at limit",
			path:    small,
			maxSize: int64(len("Titlu\n\nDescriere\nCorp")),
			want:    "Titlu\n\nDescriere\nCorp",
		},
		{
			name:    "rejects file over limit",
			path:    small,
			maxSize: 4,
			wantErr: fileutil.ErrFileTooLarge,
		},
		{
			name:    "missing file reports not exist",
			path:    filepath.Join(dir, "missing.txt"),
			maxSize: 1024,
			wantErr: os.ErrNotExist,
		},
		{
			name:    "directory is rejected",
			path:    dir,
			maxSize: 1024,
			wantErr: fileutil.ErrNotRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ReadText(tt.path, tt.maxSize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadText() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadText() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Temp file plus rename
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file with content and permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<html></html>"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result: %v", err)
		}
		if string(got) != "<html></html>" {
			t.Errorf("content = %q, want %q", got, "<html></html>")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o644 {
			t.Errorf("permissions = %o, want %o", perm, 0o644)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"a.html", "b.html"} {
			if err := fileutil.WriteFileAtomic(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
				t.Fatalf("WriteFileAtomic(%s) error = %v", name, err)
			}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".tmp") {
				t.Errorf("temp file %s left in directory", e.Name())
			}
		}
		if len(entries) != 2 {
			t.Errorf("directory holds %d entries, want 2", len(entries))
		}
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "page.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("rename onto directory fails and cleans up", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "page.html")
		if err := os.Mkdir(target, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(filepath.Join(target, "keep"), nil, 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fileutil.WriteFileAtomic(target, []byte("x"), 0o644); err == nil {
			t.Fatal("expected error when target is a non-empty directory")
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("directory holds %d entries, want only the target", len(entries))
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file returns true", path: testFile, want: true},
		{name: "directory returns false", path: tempDir, want: false},
		{name: "nonexistent path returns false", path: filepath.Join(tempDir, "nonexistent"), want: false},
		{name: "empty path returns false", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	exts := []string{".html", ".htm"}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple name returns false", input: "articol", want: false},
		{name: "hyphenated name returns false", input: "articol-en", want: false},
		{name: "empty string returns false", input: "", want: false},
		{name: "file in current directory returns true", input: "index.html", want: true},
		{name: "extension is case-insensitive", input: "INDEX.HTM", want: true},
		{name: "relative path returns true", input: "./model", want: true},
		{name: "absolute path returns true", input: "/srv/site/model.html", want: true},
		{name: "windows path returns true", input: "C:\\site\\model", want: true},
		{name: "other extension without separator returns false", input: "model.txt", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input, exts...); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
