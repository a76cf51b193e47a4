package keyword

import (
	"strings"
	"time"

	"creator-tools/internal/models"
)

// Publication windows used by scoring and trend classification.
const (
	recentWindow = 30 * 24 * time.Hour
	growthWindow = 90 * 24 * time.Hour
)

// corpusStats is the single-pass aggregate every scorer reads from. Computing
// it once keeps the per-factor formulas free of repeated loops and guarantees
// they all see the same numbers.
type corpusStats struct {
	size             int
	meanViews        float64
	meanLikes        float64
	recent30Count    int     // published within the last 30 days
	recent90Count    int     // published within the last 90 days
	recent90MeanView float64 // mean views of the 90-day slice
	dominantChannels int     // channels appearing more than twice
	titleMatches     int     // items with the keyword in the title
}

func newCorpusStats(corpus []*models.Video, kw string, now time.Time) corpusStats {
	stats := corpusStats{size: len(corpus)}
	if stats.size == 0 {
		return stats
	}

	kwLower := strings.ToLower(kw)
	cutoff30 := now.Add(-recentWindow)
	cutoff90 := now.Add(-growthWindow)

	var viewSum, likeSum, recent90ViewSum int64
	channelCounts := make(map[string]int)

	for _, video := range corpus {
		viewSum += video.ViewCount
		likeSum += video.LikeCount

		if video.PublishedAt.After(cutoff30) {
			stats.recent30Count++
		}
		if video.PublishedAt.After(cutoff90) {
			stats.recent90Count++
			recent90ViewSum += video.ViewCount
		}

		channelCounts[video.ChannelID]++

		if strings.Contains(strings.ToLower(video.Title), kwLower) {
			stats.titleMatches++
		}
	}

	stats.meanViews = float64(viewSum) / float64(stats.size)
	stats.meanLikes = float64(likeSum) / float64(stats.size)
	if stats.recent90Count > 0 {
		stats.recent90MeanView = float64(recent90ViewSum) / float64(stats.recent90Count)
	}

	for channelID, count := range channelCounts {
		if channelID != "" && count > 2 {
			stats.dominantChannels++
		}
	}

	return stats
}

func (s corpusStats) recentRatio() float64 {
	if s.size == 0 {
		return 0
	}
	return float64(s.recent30Count) / float64(s.size)
}

func (s corpusStats) titleMatchRate() float64 {
	if s.size == 0 {
		return 0
	}
	return float64(s.titleMatches) / float64(s.size)
}
