package main

// Notes:
// - This file contains test helpers shared across command tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	txt2html "github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/assets"
)

// testModel is a minimal model page with every marker region.
const testModel = `<!DOCTYPE html>
<html>
<head>
<meta charset="windows-1252">
<title>X | Neculai Fantanaru</title>
<meta name="description" content="X">
<link rel="canonical" href="https://neculaifantanaru.com/x.html" />
</head>
<body>
<a href="https://neculaifantanaru.com/x.html"><img src="index_files/flag_lang_ro.jpg" title="ro" alt="ro" width="28" height="19" /></a>
<!-- ARTICOL START -->
<div align="justify">
<table width="100%" border="0" cellspacing="0" cellpadding="0">
<tr>
<td><h1 class="den_articol" itemprop="name">X</h1></td>
</tr>
</table>
<p class="text_obisnuit">X</p>
</div>
<p align="justify" class="text_obisnuit style3">&nbsp;</p>
<!-- ARTICOL FINAL -->
</body>
</html>
`

// testEnv returns an environment writing to buffers with a frozen clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return &Environment{
		Now:         func() time.Time { return now },
		Stdout:      stdout,
		Stderr:      stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}, stdout, stderr
}

// writeTestFile writes content to name inside dir and returns the path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// readTestFile returns the content of path or fails the test.
func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// newTestService returns a service with default settings.
func newTestService(t *testing.T, opts ...txt2html.Option) *txt2html.Service {
	t.Helper()
	svc, err := txt2html.New(opts...)
	if err != nil {
		t.Fatalf("txt2html.New() error = %v", err)
	}
	return svc
}

// staticRenderer is a Renderer returning a fixed page or error.
type staticRenderer struct {
	fileName string
	warnings []txt2html.Warning
	err      error
	calls    int
}

func (r *staticRenderer) Render(_ string, a txt2html.Article) (*txt2html.Result, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	name := r.fileName
	if name == "" {
		name = "page.html"
	}
	return &txt2html.Result{Article: a, FileName: name, HTML: "<html></html>", Warnings: r.warnings}, nil
}
