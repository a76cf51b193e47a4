package keyword

import (
	"fmt"
	"testing"
	"time"

	"creator-tools/internal/models"
)

func corpusWithRecentShare(total, recent int) []*models.Video {
	now := time.Now()
	var corpus []*models.Video
	for i := 0; i < total; i++ {
		published := now.AddDate(0, 0, -120)
		if i < recent {
			published = now.AddDate(0, 0, -5)
		}
		corpus = append(corpus, &models.Video{
			ID:          fmt.Sprintf("r%d", i),
			PublishedAt: published,
		})
	}
	return corpus
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		recent   int
		expected string
	}{
		{"ClearlyRising", 10, 8, TrendRising},
		{"JustAboveRisingBoundary", 100, 31, TrendRising},
		{"ExactlyPoint3IsStable", 10, 3, TrendStable},
		{"MiddleIsStable", 10, 2, TrendStable},
		{"ExactlyPoint1IsStable", 10, 1, TrendStable},
		{"JustBelowDecliningBoundary", 100, 9, TrendDeclining},
		{"NothingRecent", 10, 0, TrendDeclining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newCorpusStats(corpusWithRecentShare(tt.total, tt.recent), "kw", time.Now())
			if got := classifyTrend(s); got != tt.expected {
				t.Errorf("classifyTrend(%d/%d recent) = %s, want %s", tt.recent, tt.total, got, tt.expected)
			}
		})
	}
}
