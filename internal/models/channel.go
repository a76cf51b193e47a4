package models

import "time"

// Channel holds the public statistics block for one channel.
type Channel struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ThumbnailURL    string `json:"thumbnail_url"`
	SubscriberCount int64  `json:"subscriber_count"`
	ViewCount       int64  `json:"view_count"`
	VideoCount      int64  `json:"video_count"`
}

// ChannelReport is one channel's derived metrics inside a comparison.
type ChannelReport struct {
	Channel           Channel `json:"channel"`
	AvgViewsPerVideo  float64 `json:"avg_views_per_video"`
	ViewsPerSub       float64 `json:"views_per_subscriber"`
	SubsPerVideo      float64 `json:"subscribers_per_video"`
	EngagementScore   float64 `json:"engagement_score"`
	Rank              int     `json:"rank"`
}

// ChannelComparison ranks two or more channels against each other.
type ChannelComparison struct {
	Reports    []ChannelReport `json:"reports"`
	Winner     string          `json:"winner"` // channel title of rank 1
	ComparedAt time.Time       `json:"compared_at"`
}
