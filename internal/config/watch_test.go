package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("seed: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("seed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				// A write can be observed half done; wait for the next event.
				continue
			}
			if r.Config.Seed == 2 {
				return
			}
		case <-deadline:
			t.Fatal("no reload after writing the config file")
		}
	}
}

func TestWatchReportsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("seed: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("display:\n  cell_width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Truncation may be seen first as an empty, valid file.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				return
			}
		case <-deadline:
			t.Fatal("invalid config was never reported")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("seed: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("seed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Updates():
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchCloseClosesUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	select {
	case _, ok := <-w.Updates():
		if ok {
			t.Error("updates channel should be closed")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("updates channel not closed")
	}
}
