package keyword

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"creator-tools/internal/models"
)

// ErrNoData is the only analysis error surfaced to callers: no video survived
// filtering across every query variant.
var ErrNoData = errors.New("no results for this keyword")

// Source is the content-source port. Implementations may fail per call and
// may return overlapping results for different queries.
type Source interface {
	Search(ctx context.Context, query string) ([]*models.Video, error)
}

// queryVariants derives the fixed set of searches issued for one keyword.
func queryVariants(kw string) []string {
	return []string{
		kw,
		kw + " tutorial",
		kw + " guide",
		"how to " + kw,
		kw + " tips",
	}
}

// buildCorpus merges all query variants into one deduplicated, filtered,
// view-sorted working set capped at maxSize.
//
// Every variant is dispatched before any is awaited, and each failure is
// isolated: a rejected query logs and contributes zero items. Only a
// completely empty result set is an error.
func buildCorpus(ctx context.Context, source Source, kw string, minViews int64, maxSize int) ([]*models.Video, error) {
	variants := queryVariants(kw)

	var wg sync.WaitGroup
	var mu sync.Mutex
	merged := make([][]*models.Video, len(variants))

	for i, query := range variants {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			videos, err := source.Search(ctx, query)
			if err != nil {
				log.Printf("Query %q failed, continuing without it: %v", query, err)
				return
			}
			mu.Lock()
			merged[i] = videos
			mu.Unlock()
		}(i, query)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("corpus build cancelled: %w", err)
	}

	// Dedup by ID keeping the first occurrence in variant order, dropping
	// low-signal items as we go.
	seen := make(map[string]bool)
	var corpus []*models.Video
	for _, videos := range merged {
		for _, video := range videos {
			if video.ViewCount < minViews {
				continue
			}
			if seen[video.ID] {
				continue
			}
			seen[video.ID] = true
			corpus = append(corpus, video)
		}
	}

	if len(corpus) == 0 {
		return nil, ErrNoData
	}

	sort.SliceStable(corpus, func(a, b int) bool {
		return corpus[a].ViewCount > corpus[b].ViewCount
	})

	if len(corpus) > maxSize {
		corpus = corpus[:maxSize]
	}

	return corpus, nil
}
