package keyword

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"creator-tools/internal/models"
	"creator-tools/shared/config"
)

func newTestAnalyzer(source Source) *Analyzer {
	fixedNow := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &Analyzer{
		source:         source,
		loc:            time.UTC,
		minSignalViews: 100,
		maxCorpusSize:  100,
		now:            func() time.Time { return fixedNow },
	}
}

func analysisCorpus(n int) []*models.Video {
	var videos []*models.Video
	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		videos = append(videos, &models.Video{
			ID:           fmt.Sprintf("v%d", i),
			Title:        fmt.Sprintf("Watercolor lesson %d", i),
			ChannelID:    fmt.Sprintf("chan%d", i%4),
			ChannelTitle: "Paint Co",
			ViewCount:    int64(1000 * (i + 1)),
			LikeCount:    int64(50 * (i + 1)),
			PublishedAt:  base.Add(time.Duration(i*13) * time.Hour),
			Tags:         []string{"painting", "art supplies"},
		})
	}
	return videos
}

func TestAnalyzeAssemblesResult(t *testing.T) {
	source := &fakeSource{
		results: map[string][]*models.Video{
			"watercolor": analysisCorpus(25),
		},
	}

	result, err := newTestAnalyzer(source).Analyze(context.Background(), "watercolor")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Keyword != "watercolor" {
		t.Errorf("Keyword = %q", result.Keyword)
	}
	for name, score := range map[string]models.Score{
		"opportunity": result.Opportunity,
		"demand":      result.Demand,
		"competition": result.Competition,
	} {
		if score.Value < 0 || score.Value > 100 {
			t.Errorf("%s score %d out of range", name, score.Value)
		}
		if score.Label == "" {
			t.Errorf("%s score has no label", name)
		}
	}

	if len(result.TopVideos) != 10 {
		t.Errorf("TopVideos = %d entries, want 10", len(result.TopVideos))
	}
	if result.TopVideos[0].ViewCount != 25000 {
		t.Errorf("top video views = %d, want the corpus maximum", result.TopVideos[0].ViewCount)
	}

	bucketSum := 0
	for _, bucket := range result.UploadTimes {
		bucketSum += bucket.Count
	}
	if bucketSum != result.Insights.VideoCount {
		t.Errorf("bucket counts sum to %d, corpus holds %d", bucketSum, result.Insights.VideoCount)
	}

	if len(result.Recommendations) != 5 {
		t.Errorf("got %d recommendations, want 5", len(result.Recommendations))
	}
	if result.Summary == "" {
		t.Error("missing summary sentence")
	}
	if len(result.RelatedKeywords) == 0 || len(result.RelatedKeywords) > 12 {
		t.Errorf("related keywords = %d entries, want 1-12", len(result.RelatedKeywords))
	}
	for _, kw := range result.RelatedKeywords {
		if kw == "watercolor" {
			t.Error("seed keyword leaked into related keywords")
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	source := &fakeSource{
		results: map[string][]*models.Video{
			"watercolor":          analysisCorpus(40),
			"watercolor tutorial": analysisCorpus(10),
		},
	}
	analyzer := newTestAnalyzer(source)

	first, err := analyzer.Analyze(context.Background(), "watercolor")
	if err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}
	second, err := analyzer.Analyze(context.Background(), "watercolor")
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Error("two analyses against an unchanged source are not identical")
	}
}

func TestAnalyzeNoData(t *testing.T) {
	source := &fakeSource{results: map[string][]*models.Video{}}

	_, err := newTestAnalyzer(source).Analyze(context.Background(), "nonexistent")
	if !errors.Is(err, ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}

func TestNewAnalyzerUsesConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Analysis.Timezone = "UTC"

	analyzer := NewAnalyzer(&fakeSource{}, cfg)

	if analyzer.minSignalViews != 100 {
		t.Errorf("minSignalViews = %d, want default 100", analyzer.minSignalViews)
	}
	if analyzer.maxCorpusSize != 100 {
		t.Errorf("maxCorpusSize = %d, want default 100", analyzer.maxCorpusSize)
	}
	if analyzer.loc != time.UTC {
		t.Errorf("loc = %v, want UTC", analyzer.loc)
	}
}
