// Package giveaway draws comment winners for creator giveaways.
package giveaway

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"creator-tools/internal/models"
)

// Draw picks winnerCount winners from a video's comments. An optional
// requiredPhrase restricts eligibility to comments containing it
// (case-insensitive). Each author can win at most once. The seed makes a draw
// reproducible; pass a time-based seed for a real drawing.
func Draw(videoID string, comments []models.Comment, requiredPhrase string, winnerCount int, seed int64) (*models.GiveawayResult, error) {
	if winnerCount < 1 {
		return nil, fmt.Errorf("winner count must be at least 1, got %d", winnerCount)
	}

	eligible := eligibleComments(comments, requiredPhrase)
	if len(eligible) == 0 {
		return nil, fmt.Errorf("no eligible comments to draw from")
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if winnerCount > len(eligible) {
		winnerCount = len(eligible)
	}

	return &models.GiveawayResult{
		VideoID:        videoID,
		RequiredPhrase: requiredPhrase,
		TotalComments:  len(comments),
		Eligible:       len(eligible),
		Winners:        eligible[:winnerCount],
		DrawnAt:        time.Now(),
	}, nil
}

// eligibleComments filters by the required phrase and keeps one comment per
// author, the earliest one, so repeat commenters get no extra chances.
func eligibleComments(comments []models.Comment, requiredPhrase string) []models.Comment {
	phrase := strings.ToLower(strings.TrimSpace(requiredPhrase))

	seen := make(map[string]bool)
	var eligible []models.Comment
	for _, comment := range comments {
		if phrase != "" && !strings.Contains(strings.ToLower(comment.Text), phrase) {
			continue
		}
		authorKey := comment.AuthorID
		if authorKey == "" {
			authorKey = strings.ToLower(comment.Author)
		}
		if seen[authorKey] {
			continue
		}
		seen[authorKey] = true
		eligible = append(eligible, comment)
	}
	return eligible
}
