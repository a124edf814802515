package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	if err == nil {
		t.Fatal("want error when no roots provided")
	}
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.tiff", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}
	cancel()

	seen := map[string]bool{}
	for p := range evCh {
		seen[filepath.Base(p)] = true
	}
	if !seen["a.pdf"] || !seen["c.txt"] {
		t.Errorf("initial scan missed allowed files: %v", seen)
	}
	if seen["b.tiff"] {
		t.Error("initial scan emitted unsupported extension")
	}
}
