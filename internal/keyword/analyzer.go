package keyword

import (
	"context"
	"log"
	"strings"
	"time"

	"creator-tools/internal/models"
	"creator-tools/shared/config"
)

const topVideoCount = 10

// Analyzer orchestrates the full keyword analysis pipeline: corpus build,
// scoring, temporal distribution, trend classification, related-keyword
// mining and recommendations. It holds no per-request state; every call
// produces a fresh immutable result.
type Analyzer struct {
	source          Source
	loc             *time.Location
	minSignalViews  int64
	maxCorpusSize   int
	rankByFrequency bool
	now             func() time.Time
}

func NewAnalyzer(source Source, cfg *config.Config) *Analyzer {
	return &Analyzer{
		source:          source,
		loc:             cfg.Location(),
		minSignalViews:  cfg.Analysis.MinSignalViews,
		maxCorpusSize:   cfg.Analysis.MaxCorpusSize,
		rankByFrequency: cfg.Analysis.RankRelatedByFrequency,
		now:             time.Now,
	}
}

// Analyze runs one full analysis. The only failure modes are ErrNoData (no
// video survived filtering) and context cancellation; every downstream stage
// is a total function over the non-empty corpus.
func (a *Analyzer) Analyze(ctx context.Context, kw string) (*models.KeywordAnalysis, error) {
	kw = strings.TrimSpace(kw)
	startTime := a.now()

	corpus, err := buildCorpus(ctx, a.source, kw, a.minSignalViews, a.maxCorpusSize)
	if err != nil {
		return nil, err
	}

	stats := newCorpusStats(corpus, kw, startTime)

	opportunity := scoreOpportunity(stats)
	demand := scoreDemand(stats)
	competition := scoreCompetition(stats)

	buckets := uploadDistribution(corpus, a.loc)
	best := bestTimes(buckets)
	trend := classifyTrend(stats)
	related := relatedKeywords(corpus, kw, a.rankByFrequency)

	top := corpus
	if len(top) > topVideoCount {
		top = top[:topVideoCount]
	}

	demandLbl := demandLabel(demand)
	competitionLbl := demandLabel(competition)

	result := &models.KeywordAnalysis{
		Keyword:         kw,
		Opportunity:     models.Score{Value: opportunity, Label: opportunityLabel(opportunity)},
		Demand:          models.Score{Value: demand, Label: demandLbl},
		Competition:     models.Score{Value: competition, Label: competitionLbl},
		Trend:           trend,
		RelatedKeywords: related,
		UploadTimes:     buckets,
		BestTimes:       best,
		TopVideos:       top,
		Insights: models.KeywordInsights{
			VideoCount:        stats.size,
			AverageViews:      stats.meanViews,
			AverageLikes:      stats.meanLikes,
			EngagementRate:    stats.meanLikes / max(1, stats.meanViews),
			RecentUploadRatio: stats.recentRatio(),
			TitleMatchRate:    stats.titleMatchRate(),
		},
		Recommendations: recommendations(kw, opportunity, demand, competition, trend, best, stats, top, a.loc.String()),
		Summary:         summarize(kw, demandLbl, competitionLbl, trend, stats.meanViews),
		AnalyzedAt:      startTime,
	}

	log.Printf("Analyzed keyword %q: %d videos, opportunity=%d, demand=%d, competition=%d, trend=%s",
		kw, stats.size, opportunity, demand, competition, trend)

	return result, nil
}
