package models

import "time"

// Score holds one composite score on a 0-100 scale with its qualitative label.
type Score struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// UploadTimeBucket aggregates uploads that landed on the same weekday and
// hour of day in the configured reference timezone.
type UploadTimeBucket struct {
	Day      string  `json:"day"`
	Hour     int     `json:"hour"`
	Count    int     `json:"count"`
	AvgViews float64 `json:"avg_views"`
}

// BestTimes summarises the strongest upload slots derived from the buckets.
type BestTimes struct {
	Days        []string `json:"days"`         // up to 3 distinct days, best first
	OptimalDay  string   `json:"optimal_day"`  // single best (day, hour) pair
	OptimalHour int      `json:"optimal_hour"`
}

// KeywordInsights carries the derived averages and percentages shown
// alongside the scores.
type KeywordInsights struct {
	VideoCount        int     `json:"video_count"`
	AverageViews      float64 `json:"average_views"`
	AverageLikes      float64 `json:"average_likes"`
	EngagementRate    float64 `json:"engagement_rate"`     // likes per view, 0-1
	RecentUploadRatio float64 `json:"recent_upload_ratio"` // share published in last 30 days
	TitleMatchRate    float64 `json:"title_match_rate"`    // share with keyword in title
}

// KeywordAnalysis is the immutable result of one analysis request. A new
// request produces a new value; nothing downstream mutates it.
type KeywordAnalysis struct {
	Keyword         string             `json:"keyword"`
	Opportunity     Score              `json:"opportunity"`
	Demand          Score              `json:"demand"`
	Competition     Score              `json:"competition"`
	Trend           string             `json:"trend"`
	RelatedKeywords []string           `json:"related_keywords"`
	UploadTimes     []UploadTimeBucket `json:"upload_times"`
	BestTimes       BestTimes          `json:"best_times"`
	TopVideos       []*Video           `json:"top_videos"`
	Insights        KeywordInsights    `json:"insights"`
	Recommendations []string           `json:"recommendations"`
	Summary         string             `json:"summary"`
	AnalyzedAt      time.Time          `json:"analyzed_at"`
}
