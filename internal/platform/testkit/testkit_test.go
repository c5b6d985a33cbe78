package testkit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "tweet_id,author_id,created_at", "author_id")
	MustNotContain(t, "tweet_id,author_id", "places")
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(p, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := ReadFile(t, p); got != "hello" {
		t.Fatalf("ReadFile = %q", got)
	}
}

var clock = func() string { return "real" }

func TestSwap(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clock, func() string { return "fake" })
		if clock() != "fake" {
			t.Fatalf("Swap did not replace")
		}
	})
	if clock() != "real" {
		t.Fatalf("Swap did not restore")
	}
}
