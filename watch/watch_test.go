package watch

import (
	"github.com/isunjn/snlc/logging"

	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "p.snl")
	if err := os.WriteFile(file, []byte("program p;"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, file, 100*time.Millisecond, logging.Discard(), func() {
			calls <- struct{}{}
		})
	}()

	wait := func(what string) {
		t.Helper()
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %v", what)
		}
	}
	wait("the first check")

	// another file in the same directory is ignored
	if err := os.WriteFile(filepath.Join(dir, "other.snl"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(file, []byte("program p; begin x := 1 end."), 0644); err != nil {
			t.Fatal(err)
		}
	}
	wait("the check after writing")

	select {
	case <-calls:
		t.Error("a burst of writes should trigger a single check")
	case <-time.After(500 * time.Millisecond):
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() error = %v", err)
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "none", "p.snl"), time.Millisecond, logging.Discard(), func() {})
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
