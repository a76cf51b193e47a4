package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// maxHistoryEntries bounds the search history to the most recent searches.
const maxHistoryEntries = 8

// HistoryEntry is one remembered keyword search.
type HistoryEntry struct {
	Keyword    string    `json:"keyword"`
	SearchedAt time.Time `json:"searched_at"`
}

// SearchHistory manages a persistent, most-recent-first list of analyzed
// keywords. Repeating a search moves the keyword to the front instead of
// adding a duplicate.
type SearchHistory struct {
	filePath string
	entries  []HistoryEntry
	mu       sync.RWMutex
}

// NewSearchHistory creates a search history backed by a JSON file under dataDir.
func NewSearchHistory(dataDir string) (*SearchHistory, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	history := &SearchHistory{
		filePath: filepath.Join(dataDir, "search_history.json"),
	}

	if err := history.load(); err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}

	return history, nil
}

// Record puts a keyword at the front of the history, collapsing any earlier
// entry for the same keyword regardless of case.
func (sh *SearchHistory) Record(keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("cannot record an empty keyword")
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()

	kept := make([]HistoryEntry, 0, len(sh.entries)+1)
	kept = append(kept, HistoryEntry{Keyword: keyword, SearchedAt: time.Now()})
	for _, entry := range sh.entries {
		if strings.EqualFold(entry.Keyword, keyword) {
			continue
		}
		kept = append(kept, entry)
	}
	if len(kept) > maxHistoryEntries {
		kept = kept[:maxHistoryEntries]
	}
	sh.entries = kept

	return sh.save()
}

// Entries returns the history, most recent first.
func (sh *SearchHistory) Entries() []HistoryEntry {
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	out := make([]HistoryEntry, len(sh.entries))
	copy(out, sh.entries)
	return out
}

// Clear drops every remembered search.
func (sh *SearchHistory) Clear() error {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.entries = nil
	return sh.save()
}

func (sh *SearchHistory) load() error {
	file, err := os.Open(sh.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var entries []HistoryEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return fmt.Errorf("failed to decode history data: %w", err)
	}

	if len(entries) > maxHistoryEntries {
		entries = entries[:maxHistoryEntries]
	}
	sh.entries = entries

	return nil
}

func (sh *SearchHistory) save() error {
	file, err := os.Create(sh.filePath)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	entries := sh.entries
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return encoder.Encode(entries)
}
