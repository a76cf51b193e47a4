package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "creator-tools"

func Setup(h *Handlers) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(PrometheusMiddleware(serviceName))

	r.GET("/api/keywords/analyze", h.AnalyzeKeyword)

	r.GET("/api/history", h.GetHistory)
	r.POST("/api/history", h.AddHistory)
	r.DELETE("/api/history", h.ClearHistory)

	r.GET("/api/watchlist", h.GetWatchlist)
	r.POST("/api/watchlist", h.AddWatchlistKeyword)
	r.DELETE("/api/watchlist", h.RemoveWatchlistKeyword)

	r.POST("/api/channels/compare", h.CompareChannels)
	r.POST("/api/giveaway", h.DrawGiveaway)
	r.GET("/api/safety", h.ScreenVideo)

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": serviceName})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
