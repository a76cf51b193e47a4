package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"creator-tools/internal/compare"
	"creator-tools/internal/giveaway"
	"creator-tools/internal/keyword"
	"creator-tools/internal/models"
	"creator-tools/shared/metrics"
	"creator-tools/shared/storage"

	"github.com/gin-gonic/gin"
)

// KeywordAnalyzer runs the full analysis pipeline for one keyword.
type KeywordAnalyzer interface {
	Analyze(ctx context.Context, kw string) (*models.KeywordAnalysis, error)
}

// VideoSource is the subset of the platform client the handlers need beyond
// keyword search.
type VideoSource interface {
	GetVideo(ctx context.Context, videoID string) (*models.Video, error)
	GetChannels(ctx context.Context, channelIDs []string) ([]models.Channel, error)
	GetComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error)
}

// SafetyScreener checks a video's metadata for brand-safety concerns.
type SafetyScreener interface {
	ScreenVideo(ctx context.Context, video *models.Video) (*models.SafetyReport, error)
}

// Handlers carries the dependencies for every API endpoint. The screener may
// be nil when no AI key is configured; its endpoint then returns 503.
type Handlers struct {
	analyzer  KeywordAnalyzer
	source    VideoSource
	screener  SafetyScreener
	history   *storage.SearchHistory
	watchlist *storage.Watchlist
}

func NewHandlers(analyzer KeywordAnalyzer, source VideoSource, screener SafetyScreener,
	history *storage.SearchHistory, watchlist *storage.Watchlist) *Handlers {
	return &Handlers{
		analyzer:  analyzer,
		source:    source,
		screener:  screener,
		history:   history,
		watchlist: watchlist,
	}
}

func (h *Handlers) AnalyzeKeyword(c *gin.Context) {
	kw := c.Query("keyword")
	log.Printf("[INFO] AnalyzeKeyword called with keyword=%q", kw)

	if kw == "" {
		log.Printf("[WARN] Missing keyword")
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(c.Request.Context(), kw)
	metrics.KeywordAnalysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, keyword.ErrNoData):
			metrics.KeywordAnalysesTotal.WithLabelValues("no_data").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "no results for this keyword"})
		case errors.Is(err, context.Canceled):
			// The browser aborted a superseded request; nothing to report.
			metrics.KeywordAnalysesTotal.WithLabelValues("canceled").Inc()
			c.Status(499)
		default:
			log.Printf("[ERROR] Analyze failed for %q: %v", kw, err)
			metrics.KeywordAnalysesTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	metrics.KeywordAnalysesTotal.WithLabelValues("success").Inc()

	if h.history != nil {
		if err := h.history.Record(kw); err != nil {
			log.Printf("[WARN] Failed to record search history: %v", err)
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.history.Entries())
}

func (h *Handlers) AddHistory(c *gin.Context) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	if err := h.history.Record(req.Keyword); err != nil {
		log.Printf("[ERROR] Failed to record history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.history.Entries())
}

func (h *Handlers) ClearHistory(c *gin.Context) {
	if err := h.history.Clear(); err != nil {
		log.Printf("[ERROR] Failed to clear history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) GetWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.watchlist.Keywords())
}

func (h *Handlers) AddWatchlistKeyword(c *gin.Context) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Keyword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	if err := h.watchlist.Add(req.Keyword); err != nil {
		log.Printf("[ERROR] Failed to add watchlist keyword: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.watchlist.Keywords())
}

func (h *Handlers) RemoveWatchlistKeyword(c *gin.Context) {
	kw := c.Query("keyword")
	if kw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keyword is required"})
		return
	}

	if err := h.watchlist.Remove(kw); err != nil {
		log.Printf("[ERROR] Failed to remove watchlist keyword: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.watchlist.Keywords())
}

func (h *Handlers) CompareChannels(c *gin.Context) {
	var req struct {
		ChannelIDs []string `json:"channel_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	log.Printf("[INFO] CompareChannels called with %d channels", len(req.ChannelIDs))

	if len(req.ChannelIDs) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least 2 channel_ids are required"})
		return
	}

	channels, err := h.source.GetChannels(c.Request.Context(), req.ChannelIDs)
	if err != nil {
		log.Printf("[ERROR] GetChannels failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	refs := make([]*models.Channel, len(channels))
	for i := range channels {
		refs[i] = &channels[i]
	}

	comparison, err := compare.Compare(refs)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (h *Handlers) DrawGiveaway(c *gin.Context) {
	var req struct {
		VideoID        string `json:"video_id"`
		RequiredPhrase string `json:"required_phrase"`
		Winners        int    `json:"winners"`
		MaxComments    int    `json:"max_comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.VideoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id is required"})
		return
	}
	if req.Winners <= 0 {
		req.Winners = 1
	}
	if req.MaxComments <= 0 || req.MaxComments > 2000 {
		req.MaxComments = 500
	}
	log.Printf("[INFO] DrawGiveaway called for video=%s winners=%d", req.VideoID, req.Winners)

	comments, err := h.source.GetComments(c.Request.Context(), req.VideoID, req.MaxComments)
	if err != nil {
		log.Printf("[ERROR] GetComments failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := giveaway.Draw(req.VideoID, comments, req.RequiredPhrase, req.Winners, time.Now().UnixNano())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handlers) ScreenVideo(c *gin.Context) {
	videoID := c.Query("video_id")
	log.Printf("[INFO] ScreenVideo called with video_id=%q", videoID)

	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_id is required"})
		return
	}
	if h.screener == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "safety screening is not configured"})
		return
	}

	video, err := h.source.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		log.Printf("[ERROR] GetVideo failed: %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	report, err := h.screener.ScreenVideo(c.Request.Context(), video)
	if err != nil {
		log.Printf("[ERROR] ScreenVideo failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
