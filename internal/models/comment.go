package models

import "time"

// Comment is one top-level comment on a video.
type Comment struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"author_id"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"like_count"`
	PublishedAt time.Time `json:"published_at"`
}

// GiveawayResult holds the winners drawn from a video's commenters.
type GiveawayResult struct {
	VideoID        string    `json:"video_id"`
	RequiredPhrase string    `json:"required_phrase,omitempty"`
	TotalComments  int       `json:"total_comments"`
	Eligible       int       `json:"eligible"`
	Winners        []Comment `json:"winners"`
	DrawnAt        time.Time `json:"drawn_at"`
}
