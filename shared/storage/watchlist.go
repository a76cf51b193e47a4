package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// WatchedKeyword is a keyword the digest agent re-analyzes on schedule,
// together with the scores from its last run so deltas can be reported.
type WatchedKeyword struct {
	Keyword         string    `json:"keyword"`
	AddedAt         time.Time `json:"added_at"`
	LastOpportunity int       `json:"last_opportunity"`
	LastDemand      int       `json:"last_demand"`
	LastCompetition int       `json:"last_competition"`
	LastCheckedAt   time.Time `json:"last_checked_at"`
}

// Watchlist manages the persistent set of watched keywords.
type Watchlist struct {
	filePath string
	keywords map[string]WatchedKeyword
	mu       sync.RWMutex
}

// NewWatchlist creates a watchlist backed by a JSON file under dataDir.
func NewWatchlist(dataDir string) (*Watchlist, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	wl := &Watchlist{
		filePath: filepath.Join(dataDir, "watchlist.json"),
		keywords: make(map[string]WatchedKeyword),
	}

	if err := wl.load(); err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	return wl, nil
}

// Add starts watching a keyword. Adding an existing keyword is a no-op.
func (wl *Watchlist) Add(keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("cannot watch an empty keyword")
	}

	wl.mu.Lock()
	defer wl.mu.Unlock()

	key := strings.ToLower(keyword)
	if _, exists := wl.keywords[key]; exists {
		return nil
	}

	wl.keywords[key] = WatchedKeyword{Keyword: keyword, AddedAt: time.Now()}
	return wl.save()
}

// Remove stops watching a keyword.
func (wl *Watchlist) Remove(keyword string) error {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(keyword))
	if _, exists := wl.keywords[key]; !exists {
		return nil
	}

	delete(wl.keywords, key)
	return wl.save()
}

// UpdateScores records the latest analysis scores for a watched keyword.
func (wl *Watchlist) UpdateScores(keyword string, opportunity, demand, competition int) error {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(keyword))
	watched, exists := wl.keywords[key]
	if !exists {
		return fmt.Errorf("keyword %q is not on the watchlist", keyword)
	}

	watched.LastOpportunity = opportunity
	watched.LastDemand = demand
	watched.LastCompetition = competition
	watched.LastCheckedAt = time.Now()
	wl.keywords[key] = watched

	return wl.save()
}

// Keywords returns every watched keyword, oldest first.
func (wl *Watchlist) Keywords() []WatchedKeyword {
	wl.mu.RLock()
	defer wl.mu.RUnlock()

	out := make([]WatchedKeyword, 0, len(wl.keywords))
	for _, watched := range wl.keywords {
		out = append(out, watched)
	}
	sortByAddedAt(out)
	return out
}

// Count returns the number of watched keywords.
func (wl *Watchlist) Count() int {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	return len(wl.keywords)
}

func sortByAddedAt(keywords []WatchedKeyword) {
	sort.Slice(keywords, func(i, j int) bool {
		return keywords[i].AddedAt.Before(keywords[j].AddedAt)
	})
}

func (wl *Watchlist) load() error {
	file, err := os.Open(wl.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open watchlist file: %w", err)
	}
	defer file.Close()

	var keywords []WatchedKeyword
	if err := json.NewDecoder(file).Decode(&keywords); err != nil {
		return fmt.Errorf("failed to decode watchlist data: %w", err)
	}

	for _, watched := range keywords {
		wl.keywords[strings.ToLower(watched.Keyword)] = watched
	}

	return nil
}

func (wl *Watchlist) save() error {
	keywords := wl.keywords
	out := make([]WatchedKeyword, 0, len(keywords))
	for _, watched := range keywords {
		out = append(out, watched)
	}
	sortByAddedAt(out)

	file, err := os.Create(wl.filePath)
	if err != nil {
		return fmt.Errorf("failed to create watchlist file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
