package storage

import (
	"fmt"
	"testing"
)

func TestSearchHistoryRecordAndOrder(t *testing.T) {
	history, err := NewSearchHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewSearchHistory failed: %v", err)
	}

	for _, kw := range []string{"guitar", "piano", "violin"} {
		if err := history.Record(kw); err != nil {
			t.Fatalf("Record(%q) failed: %v", kw, err)
		}
	}

	entries := history.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Keyword != "violin" || entries[2].Keyword != "guitar" {
		t.Errorf("entries not most-recent-first: %v", entries)
	}
}

func TestSearchHistoryDeduplicatesCaseInsensitive(t *testing.T) {
	history, err := NewSearchHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewSearchHistory failed: %v", err)
	}

	history.Record("Guitar")
	history.Record("piano")
	history.Record("GUITAR")

	entries := history.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	if entries[0].Keyword != "GUITAR" {
		t.Errorf("repeat search should move to front, got %q", entries[0].Keyword)
	}
}

func TestSearchHistoryCapsAtEight(t *testing.T) {
	history, err := NewSearchHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewSearchHistory failed: %v", err)
	}

	for i := 0; i < 12; i++ {
		if err := history.Record(fmt.Sprintf("keyword-%d", i)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries := history.Entries()
	if len(entries) != maxHistoryEntries {
		t.Fatalf("got %d entries, want %d", len(entries), maxHistoryEntries)
	}
	if entries[0].Keyword != "keyword-11" {
		t.Errorf("newest entry = %q, want keyword-11", entries[0].Keyword)
	}
	if entries[len(entries)-1].Keyword != "keyword-4" {
		t.Errorf("oldest surviving entry = %q, want keyword-4", entries[len(entries)-1].Keyword)
	}
}

func TestSearchHistoryRejectsEmptyKeyword(t *testing.T) {
	history, err := NewSearchHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewSearchHistory failed: %v", err)
	}

	if err := history.Record("   "); err == nil {
		t.Error("expected an error for a blank keyword")
	}
}

func TestSearchHistoryPersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()

	history, err := NewSearchHistory(dir)
	if err != nil {
		t.Fatalf("NewSearchHistory failed: %v", err)
	}
	history.Record("drums")
	history.Record("bass")

	reopened, err := NewSearchHistory(dir)
	if err != nil {
		t.Fatalf("reopening history failed: %v", err)
	}

	entries := reopened.Entries()
	if len(entries) != 2 || entries[0].Keyword != "bass" {
		t.Errorf("reloaded entries = %v, want [bass drums]", entries)
	}
}

func TestSearchHistoryClear(t *testing.T) {
	history, err := NewSearchHistory(t.TempDir())
	if err != nil {
		t.Fatalf("NewSearchHistory failed: %v", err)
	}

	history.Record("banjo")
	if err := history.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if entries := history.Entries(); len(entries) != 0 {
		t.Errorf("entries after clear = %v, want none", entries)
	}
}
