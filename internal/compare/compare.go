// Package compare ranks channels against each other using their public
// statistics blocks.
package compare

import (
	"fmt"
	"sort"
	"time"

	"creator-tools/internal/models"
)

// Compare derives per-channel efficiency metrics and ranks the channels.
// At least two channels are required for a meaningful comparison.
func Compare(channels []*models.Channel) (*models.ChannelComparison, error) {
	if len(channels) < 2 {
		return nil, fmt.Errorf("need at least 2 channels to compare, got %d", len(channels))
	}

	reports := make([]models.ChannelReport, 0, len(channels))
	for _, channel := range channels {
		if channel == nil {
			return nil, fmt.Errorf("channel cannot be nil")
		}
		reports = append(reports, buildReport(channel))
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].EngagementScore != reports[j].EngagementScore {
			return reports[i].EngagementScore > reports[j].EngagementScore
		}
		if reports[i].AvgViewsPerVideo != reports[j].AvgViewsPerVideo {
			return reports[i].AvgViewsPerVideo > reports[j].AvgViewsPerVideo
		}
		return reports[i].Channel.SubscriberCount > reports[j].Channel.SubscriberCount
	})
	for i := range reports {
		reports[i].Rank = i + 1
	}

	return &models.ChannelComparison{
		Reports:    reports,
		Winner:     reports[0].Channel.Title,
		ComparedAt: time.Now(),
	}, nil
}

func buildReport(channel *models.Channel) models.ChannelReport {
	report := models.ChannelReport{Channel: *channel}

	if channel.VideoCount > 0 {
		report.AvgViewsPerVideo = float64(channel.ViewCount) / float64(channel.VideoCount)
		report.SubsPerVideo = float64(channel.SubscriberCount) / float64(channel.VideoCount)
	}
	if channel.SubscriberCount > 0 {
		report.ViewsPerSub = float64(channel.ViewCount) / float64(channel.SubscriberCount)
	}

	// Average views per video as a share of the subscriber base. Above 100
	// means a typical upload reaches more viewers than the channel has
	// subscribers.
	if channel.SubscriberCount > 0 {
		report.EngagementScore = report.AvgViewsPerVideo / float64(channel.SubscriberCount) * 100
	}

	return report
}
