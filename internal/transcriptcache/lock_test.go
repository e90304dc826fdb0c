package transcriptcache

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"ytfetch/internal/transcript"
)

func TestMutationFailsFastWhenLockHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	previous := lockWaitTimeout
	lockWaitTimeout = 250 * time.Millisecond
	t.Cleanup(func() { lockWaitTimeout = previous })

	holder := flock.New(path + ".lock")
	if err := holder.Lock(); err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	t.Cleanup(func() { _ = holder.Unlock() })

	start := time.Now()
	err = store.Store(context.Background(), "en", transcript.Result{
		VideoID:  "dQw4w9WgXcQ",
		Language: "en",
		Segments: []transcript.Segment{{Text: "hi", Start: 0, Duration: 1}},
	})
	if err == nil {
		t.Fatal("expected error while lock is held")
	}
	if !strings.Contains(err.Error(), "held by another process") {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("lock wait not bounded: %s", elapsed)
	}
}

func TestMutationRespectsCallerCancellation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	holder := flock.New(path + ".lock")
	if err := holder.Lock(); err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	t.Cleanup(func() { _ = holder.Unlock() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Clear(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !strings.Contains(err.Error(), "acquire cache lock") {
		t.Fatalf("unexpected error: %v", err)
	}
}
