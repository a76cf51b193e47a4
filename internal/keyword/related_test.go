package keyword

import (
	"fmt"
	"testing"

	"creator-tools/internal/models"
)

func TestRelatedKeywordsExcludesSeed(t *testing.T) {
	corpus := []*models.Video{
		{
			ID:    "a",
			Title: "Cooking pasta like an Italian nonna",
			Tags:  []string{"cooking", "pasta", "italian"},
		},
		{
			ID:    "b",
			Title: "COOKING on a budget",
			Tags:  []string{"Cooking"},
		},
	}

	related := relatedKeywords(corpus, "cooking", false)

	for _, kw := range related {
		if kw == "cooking" {
			t.Fatalf("seed keyword leaked into related list: %v", related)
		}
	}
	if len(related) == 0 {
		t.Fatal("expected non-seed candidates to survive")
	}
}

func TestRelatedKeywordsFiltering(t *testing.T) {
	corpus := []*models.Video{
		{
			ID:    "a",
			Title: "My top gear for 4k drone photography this year",
			Tags:  []string{"dji", "a-very-long-tag-over-nineteen-chars", "drone"},
		},
	}

	related := relatedKeywords(corpus, "photography", false)

	for _, kw := range related {
		if len(kw) < 4 || len(kw) > 19 {
			t.Errorf("candidate %q violates length bounds", kw)
		}
		if stopWords[kw] {
			t.Errorf("stop word %q leaked through", kw)
		}
	}

	// "dji" (3 chars), "top"/"for"/"my" (short) and the oversized tag must
	// all be gone; "drone" survives.
	found := false
	for _, kw := range related {
		if kw == "drone" {
			found = true
		}
		if kw == "dji" {
			t.Error("3-character token should be excluded")
		}
	}
	if !found {
		t.Errorf("expected drone in %v", related)
	}
}

func TestRelatedKeywordsFirstSeenOrderAndCap(t *testing.T) {
	var corpus []*models.Video
	for i := 0; i < 20; i++ {
		corpus = append(corpus, &models.Video{
			ID:   fmt.Sprintf("v%d", i),
			Tags: []string{fmt.Sprintf("topic%02d", i)},
		})
	}

	related := relatedKeywords(corpus, "seed", false)

	if len(related) != 12 {
		t.Fatalf("got %d related keywords, want cap of 12", len(related))
	}
	for i, kw := range related {
		if want := fmt.Sprintf("topic%02d", i); kw != want {
			t.Errorf("related[%d] = %q, want %q (first-seen order)", i, kw, want)
		}
	}
}

func TestRelatedKeywordsDeduplicates(t *testing.T) {
	corpus := []*models.Video{
		{ID: "a", Title: "Espresso espresso ESPRESSO", Tags: []string{"espresso"}},
	}

	related := relatedKeywords(corpus, "coffee", false)

	count := 0
	for _, kw := range related {
		if kw == "espresso" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("espresso appears %d times, want 1", count)
	}
}

func TestRelatedKeywordsFrequencyRanked(t *testing.T) {
	corpus := []*models.Video{
		{ID: "a", Tags: []string{"rare", "common"}},
		{ID: "b", Tags: []string{"common"}},
		{ID: "c", Tags: []string{"common", "rare", "common"}},
	}

	t.Run("DefaultKeepsFirstSeen", func(t *testing.T) {
		related := relatedKeywords(corpus, "seed", false)
		if len(related) != 2 || related[0] != "rare" {
			t.Errorf("related = %v, want first-seen order with rare first", related)
		}
	})

	t.Run("FlagRanksByFrequency", func(t *testing.T) {
		related := relatedKeywords(corpus, "seed", true)
		if len(related) != 2 || related[0] != "common" {
			t.Errorf("related = %v, want common ranked first", related)
		}
	})
}
