package keyword

import (
	"sort"
	"time"

	"creator-tools/internal/models"
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// uploadDistribution buckets the corpus by (weekday, hour) of publication in
// the given reference zone. Every item lands in exactly one bucket, so the
// bucket counts always sum to the corpus size. Buckets come back in
// (day index, hour) order for deterministic output.
func uploadDistribution(corpus []*models.Video, loc *time.Location) []models.UploadTimeBucket {
	type key struct {
		day  int
		hour int
	}

	counts := make(map[key]int)
	viewSums := make(map[key]int64)

	for _, video := range corpus {
		published := video.PublishedAt.In(loc)
		k := key{day: int(published.Weekday()), hour: published.Hour()}
		counts[k]++
		viewSums[k] += video.ViewCount
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].day != keys[b].day {
			return keys[a].day < keys[b].day
		}
		return keys[a].hour < keys[b].hour
	})

	buckets := make([]models.UploadTimeBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, models.UploadTimeBucket{
			Day:      weekdayNames[k.day],
			Hour:     k.hour,
			Count:    counts[k],
			AvgViews: float64(viewSums[k]) / float64(counts[k]),
		})
	}

	return buckets
}

// bestTimes ranks buckets by average views and proposes up to three distinct
// best days plus the single strongest (day, hour) slot. Ties break on higher
// count, then bucket order, so the result is stable.
func bestTimes(buckets []models.UploadTimeBucket) models.BestTimes {
	if len(buckets) == 0 {
		return models.BestTimes{Days: []string{}}
	}

	ranked := make([]models.UploadTimeBucket, len(buckets))
	copy(ranked, buckets)
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].AvgViews != ranked[b].AvgViews {
			return ranked[a].AvgViews > ranked[b].AvgViews
		}
		return ranked[a].Count > ranked[b].Count
	})

	best := models.BestTimes{
		Days:        []string{},
		OptimalDay:  ranked[0].Day,
		OptimalHour: ranked[0].Hour,
	}

	seen := make(map[string]bool)
	for _, bucket := range ranked[:min(3, len(ranked))] {
		if seen[bucket.Day] {
			continue
		}
		seen[bucket.Day] = true
		best.Days = append(best.Days, bucket.Day)
	}

	return best
}
