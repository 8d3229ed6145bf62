package main

// Notes:
// - notifyContext: we test context creation, cancellation via stop() and
//   parent propagation. Real OS signal delivery is not tested: it is
//   non-deterministic and platform specific.
// - A cancelled context stops a running convert before any page is written.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNotifyContext - Context creation and cancellation behavior
// ---------------------------------------------------------------------------

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts not cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if ctx.Err() != nil {
			t.Fatalf("ctx.Err() = %v, want nil", ctx.Err())
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		<-ctx.Done()
	})

	t.Run("inherits parent cancellation", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()

		select {
		case <-ctx.Done():
		default:
			t.Fatal("context should be cancelled when parent is cancelled")
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvert_Interrupted - Cancelled run writes nothing
// ---------------------------------------------------------------------------

func TestConvert_Interrupted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTestFile(t, dir, "articles.txt", "---\nOne\n\nD\nB\n---\nTwo\n\nD\nB\n")

	ctx, stop := notifyContext(context.Background())
	stop()

	env, _, _ := testEnv()
	code := run(ctx, []string{"convert", input, "-o", dir}, env)

	if code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	for _, name := range []string{"one.html", "two.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should not be written after cancellation", name)
		}
	}
}
