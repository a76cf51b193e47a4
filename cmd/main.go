package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	keywordwatch "creator-tools/agents/keyword-watch"
	"creator-tools/internal/keyword"
	"creator-tools/server"
	"creator-tools/shared/ai"
	"creator-tools/shared/config"
	"creator-tools/shared/metrics"
	"creator-tools/shared/scheduler"
	"creator-tools/shared/storage"
	"creator-tools/shared/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics.Init("creator-tools", "1.0.0", cfg.Server.Env)

	client, err := youtube.NewClient(&cfg.YouTube)
	if err != nil {
		log.Fatalf("Failed to create YouTube client: %v", err)
	}

	analyzer := keyword.NewAnalyzer(client, cfg)

	history, err := storage.NewSearchHistory(cfg.Watchlist.DataDir)
	if err != nil {
		log.Fatalf("Failed to open search history: %v", err)
	}
	watchlist, err := storage.NewWatchlist(cfg.Watchlist.DataDir)
	if err != nil {
		log.Fatalf("Failed to open watchlist: %v", err)
	}

	var screener server.SafetyScreener
	if cfg.AI.GeminiAPIKey != "" {
		s, err := ai.NewScreener(cfg)
		if err != nil {
			log.Fatalf("Failed to create safety screener: %v", err)
		}
		screener = s
		log.Println("Safety screener enabled")
	} else {
		log.Println("No Gemini API key configured, safety screening disabled")
	}

	handlers := server.NewHandlers(analyzer, client, screener, history, watchlist)
	r := server.Setup(handlers)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the watchlist digest agent alongside the API when enabled
	if cfg.Watchlist.Enabled {
		agent := keywordwatch.NewWatchAgent(cfg)
		s := scheduler.New(cfg, agent)
		go func() {
			if err := s.Start(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Watchlist scheduler stopped: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Printf("Creator tools API starting on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Creator tools API stopped")
}
