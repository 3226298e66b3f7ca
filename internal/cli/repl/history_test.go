package repl

import (
	"path/filepath"
	"testing"
)

func TestHistory_AddAndGet(t *testing.T) {
	h := NewHistoryFile(filepath.Join(t.TempDir(), "history"))

	h.Add("set a 1")
	h.Add("get a")

	if h.Get(0) != "get a" {
		t.Fatalf("Get(0) = %q, want %q", h.Get(0), "get a")
	}
	if h.Get(1) != "set a 1" {
		t.Fatalf("Get(1) = %q, want %q", h.Get(1), "set a 1")
	}
	if h.Get(2) != "" {
		t.Fatalf("Get(2) = %q, want empty", h.Get(2))
	}
	if h.Get(-1) != "" {
		t.Fatalf("Get(-1) = %q, want empty", h.Get(-1))
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistoryFile(filepath.Join(t.TempDir(), "history"))
	h.maxSize = 2

	h.Add("one")
	h.Add("two")
	h.Add("three")

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if h.Get(0) != "three" || h.Get(1) != "two" {
		t.Fatalf("oldest entry not dropped: %q, %q", h.Get(0), h.Get(1))
	}
}

func TestHistory_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history")

	h := NewHistoryFile(path)
	h.Add("set a 1")
	h.Add("scan")
	if err := h.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	h2 := NewHistoryFile(path)
	if err := h2.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h2.Len() != 2 {
		t.Fatalf("loaded %d entries, want 2", h2.Len())
	}
	if h2.Get(0) != "scan" {
		t.Fatalf("Get(0) = %q, want %q", h2.Get(0), "scan")
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistoryFile(filepath.Join(t.TempDir(), "absent"))
	if err := h.Load(); err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("Len = %d, want 0", h.Len())
	}
}
