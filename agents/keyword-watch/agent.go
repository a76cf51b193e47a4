package keywordwatch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"creator-tools/internal/keyword"
	"creator-tools/internal/models"
	"creator-tools/shared/config"
	"creator-tools/shared/email"
	"creator-tools/shared/metrics"
	"creator-tools/shared/scheduler"
	"creator-tools/shared/storage"
	"creator-tools/shared/youtube"
)

type keywordAnalyzer interface {
	Analyze(ctx context.Context, kw string) (*models.KeywordAnalysis, error)
}

type digestSender interface {
	SendDigest(digest *models.WatchDigest) error
}

// WatchAgent implements the scheduler.Agent interface. Each run it re-analyzes
// every keyword on the watchlist and emails a digest with score deltas.
type WatchAgent struct {
	config      *config.Config
	analyzer    keywordAnalyzer
	emailSender digestSender
	watchlist   *storage.Watchlist

	// pause between keywords to stay friendly to the API quota
	pause time.Duration
}

// RunMetrics summarizes one scheduled run for the monitor.
type RunMetrics struct {
	Analyzed int
	Failed   int
}

func (m RunMetrics) GetSummary() string {
	return fmt.Sprintf("%d keywords analyzed, %d failed", m.Analyzed, m.Failed)
}

func NewWatchAgent(cfg *config.Config) *WatchAgent {
	return &WatchAgent{
		config: cfg,
		pause:  2 * time.Second,
	}
}

func (w *WatchAgent) Name() string {
	return "Keyword Watch"
}

func (w *WatchAgent) Initialize() error {
	log.Printf("Initializing %s...", w.Name())

	if w.analyzer == nil {
		client, err := youtube.NewClient(&w.config.YouTube)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		w.analyzer = keyword.NewAnalyzer(client, w.config)
		log.Println("Keyword analyzer initialized")
	}

	if w.emailSender == nil {
		w.emailSender = email.NewSender(&w.config.Email)
		log.Println("Email sender initialized")
	}

	if w.watchlist == nil {
		wl, err := storage.NewWatchlist(w.config.Watchlist.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open watchlist: %w", err)
		}
		w.watchlist = wl
		log.Printf("Watchlist loaded (%d keywords)", wl.Count())
	}

	return nil
}

func (w *WatchAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()

	watched := w.watchlist.Keywords()
	if len(watched) == 0 {
		log.Println("Watchlist is empty, nothing to do")
		if events != nil && events.OnSuccess != nil {
			events.OnSuccess(RunMetrics{}, time.Since(startTime))
		}
		return nil
	}

	log.Printf("Analyzing %d watched keywords...", len(watched))

	digest := &models.WatchDigest{Date: time.Now()}

	for i, item := range watched {
		log.Printf("Analyzing keyword %d/%d: %s", i+1, len(watched), item.Keyword)

		analysis, err := w.analyzer.Analyze(ctx, item.Keyword)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("watchlist run interrupted: %w", err)
			}
			log.Printf("Warning: failed to analyze %q: %v", item.Keyword, err)
			digest.Failures = append(digest.Failures, item.Keyword)
			continue
		}

		entry := models.DigestEntry{
			Keyword:     item.Keyword,
			Opportunity: analysis.Opportunity.Value,
			Demand:      analysis.Demand.Value,
			Competition: analysis.Competition.Value,
			Trend:       analysis.Trend,
			Summary:     analysis.Summary,
		}
		if !item.LastCheckedAt.IsZero() {
			entry.OpportunityDelta = analysis.Opportunity.Value - item.LastOpportunity
		}
		digest.Entries = append(digest.Entries, entry)

		if err := w.watchlist.UpdateScores(item.Keyword,
			analysis.Opportunity.Value, analysis.Demand.Value, analysis.Competition.Value); err != nil {
			log.Printf("Warning: failed to record scores for %q: %v", item.Keyword, err)
		}

		time.Sleep(w.pause)
	}

	if len(digest.Entries) == 0 {
		err := fmt.Errorf("all %d watched keywords failed to analyze", len(watched))
		metrics.WatchlistRunsTotal.WithLabelValues("failure").Inc()
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(err, time.Since(startTime))
		}
		return err
	}

	log.Printf("Sending digest with %d keywords", len(digest.Entries))
	if err := w.emailSender.SendDigest(digest); err != nil {
		metrics.WatchlistRunsTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to send digest email: %w", err)
	}
	metrics.WatchlistRunsTotal.WithLabelValues("success").Inc()

	duration := time.Since(startTime)
	metrics := RunMetrics{Analyzed: len(digest.Entries), Failed: len(digest.Failures)}
	if len(digest.Failures) > 0 {
		if events != nil && events.OnPartialFailure != nil {
			events.OnPartialFailure(fmt.Errorf("%d keywords failed to analyze", len(digest.Failures)), duration)
		}
	}
	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, duration)
	}

	log.Printf("Run complete: %s", metrics.GetSummary())
	return nil
}
