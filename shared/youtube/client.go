package youtube

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"creator-tools/internal/models"
	"creator-tools/shared/config"
	"creator-tools/shared/metrics"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API v3 for public-data reads. Everything it
// returns has passed through the normalization boundary: counts are numeric,
// tag lists are never nil, durations are parsed to seconds. Malformed fields
// degrade to zero values instead of erroring.
type Client struct {
	service    *youtube.Service
	maxResults int64
}

func NewClient(cfg *config.YouTubeConfig) (*Client, error) {
	ctx := context.Background()

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	maxResults := cfg.MaxSearchResults
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 50
	}

	return &Client{
		service:    service,
		maxResults: maxResults,
	}, nil
}

// Search runs one search query and hydrates the hits with full snippet,
// duration and statistics data.
func (c *Client) Search(ctx context.Context, query string) ([]*models.Video, error) {
	searchCall := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Order("relevance").
		MaxResults(c.maxResults).
		Context(ctx)

	searchResponse, err := searchCall.Do()
	if err != nil {
		metrics.SourceQueriesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("search for %q failed: %w", query, err)
	}
	metrics.SourceQueriesTotal.WithLabelValues("success").Inc()

	var videoIDs []string
	for _, item := range searchResponse.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}

	if len(videoIDs) == 0 {
		return []*models.Video{}, nil
	}

	return c.videoDetails(ctx, videoIDs)
}

// videoDetails fetches snippet, contentDetails and statistics for the given
// IDs in batches of 50 (the API list limit).
func (c *Client) videoDetails(ctx context.Context, videoIDs []string) ([]*models.Video, error) {
	var videos []*models.Video
	batchSize := 50

	for i := 0; i < len(videoIDs); i += batchSize {
		end := i + batchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		videosCall := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(strings.Join(videoIDs[i:end], ",")).
			Context(ctx)

		videosResponse, err := videosCall.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get video details: %w", err)
		}

		for _, item := range videosResponse.Items {
			videos = append(videos, normalizeVideo(item))
		}
	}

	return videos, nil
}

// normalizeVideo converts one raw API item into the typed model. This is the
// only place loosely-typed platform data enters the system; downstream
// analytics assume every field is well-formed and non-nil.
func normalizeVideo(item *youtube.Video) *models.Video {
	video := &models.Video{
		ID:   item.Id,
		Tags: []string{},
		URL:  fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id),
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = item.Snippet.Description
		video.ChannelID = item.Snippet.ChannelId
		video.ChannelTitle = item.Snippet.ChannelTitle
		video.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
		if len(item.Snippet.Tags) > 0 {
			video.Tags = item.Snippet.Tags
		}
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			video.PublishedAt = publishedAt
		}
	}

	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
		video.DurationSeconds = parseDurationSeconds(item.ContentDetails.Duration)
	}

	if item.Statistics != nil {
		video.ViewCount = int64(item.Statistics.ViewCount)
		video.LikeCount = int64(item.Statistics.LikeCount)
	}

	return video
}

func bestThumbnail(thumbnails *youtube.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	if thumbnails.High != nil && thumbnails.High.Url != "" {
		return thumbnails.High.Url
	}
	if thumbnails.Medium != nil && thumbnails.Medium.Url != "" {
		return thumbnails.Medium.Url
	}
	if thumbnails.Default != nil && thumbnails.Default.Url != "" {
		return thumbnails.Default.Url
	}
	return ""
}

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

func parseDurationSeconds(duration string) int {
	if duration == "" {
		return 0
	}

	// Parse ISO 8601 duration format (e.g., "PT1M30S", "PT45S", "PT2H15M30S")
	matches := durationPattern.FindStringSubmatch(duration)
	if len(matches) == 0 {
		return 0
	}

	var totalSeconds int

	if matches[1] != "" {
		if hours, err := strconv.Atoi(matches[1]); err == nil {
			totalSeconds += hours * 3600
		}
	}

	if matches[2] != "" {
		if minutes, err := strconv.Atoi(matches[2]); err == nil {
			totalSeconds += minutes * 60
		}
	}

	if matches[3] != "" {
		if seconds, err := strconv.Atoi(matches[3]); err == nil {
			totalSeconds += seconds
		}
	}

	return totalSeconds
}

// GetVideo fetches one video by ID.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	videos, err := c.videoDetails(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}
	return videos[0], nil
}

// GetChannels fetches the public statistics block for the given channel IDs.
// Channels the API does not return (deleted, mistyped) are skipped with a log
// line rather than failing the whole lookup.
func (c *Client) GetChannels(ctx context.Context, channelIDs []string) ([]models.Channel, error) {
	if len(channelIDs) == 0 {
		return []models.Channel{}, nil
	}

	channelsCall := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(strings.Join(channelIDs, ",")).
		Context(ctx)

	channelsResponse, err := channelsCall.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}

	var channels []models.Channel
	for _, item := range channelsResponse.Items {
		channel := models.Channel{ID: item.Id}
		if item.Snippet != nil {
			channel.Title = item.Snippet.Title
			channel.Description = item.Snippet.Description
			channel.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
		}
		if item.Statistics != nil {
			channel.SubscriberCount = int64(item.Statistics.SubscriberCount)
			channel.ViewCount = int64(item.Statistics.ViewCount)
			channel.VideoCount = int64(item.Statistics.VideoCount)
		}
		channels = append(channels, channel)
	}

	if len(channels) < len(channelIDs) {
		log.Printf("Resolved %d of %d requested channels", len(channels), len(channelIDs))
	}

	return channels, nil
}

// GetComments fetches up to maxComments top-level comments for a video,
// following page tokens as needed.
func (c *Client) GetComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error) {
	var comments []models.Comment
	pageToken := ""

	for {
		commentsCall := c.service.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			TextFormat("plainText").
			Order("time").
			MaxResults(100).
			Context(ctx)
		if pageToken != "" {
			commentsCall = commentsCall.PageToken(pageToken)
		}

		response, err := commentsCall.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get comments for video %s: %w", videoID, err)
		}

		for _, item := range response.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			snippet := item.Snippet.TopLevelComment.Snippet

			comment := models.Comment{
				ID:        item.Snippet.TopLevelComment.Id,
				Author:    snippet.AuthorDisplayName,
				Text:      snippet.TextDisplay,
				LikeCount: snippet.LikeCount,
			}
			if snippet.AuthorChannelId != nil {
				comment.AuthorID = snippet.AuthorChannelId.Value
			}
			if publishedAt, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
				comment.PublishedAt = publishedAt
			}
			comments = append(comments, comment)

			if len(comments) >= maxComments {
				return comments, nil
			}
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return comments, nil
}
