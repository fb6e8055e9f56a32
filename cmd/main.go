// Package main provides the entry point for the Recipe Grabber service.
// @title Recipe Grabber API
// @version 1.0
// @description Fetches YouTube video metadata and extracts recipes from video descriptions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/denisAlshanov/recipeGrab/docs" // Import for swagger docs
	"github.com/denisAlshanov/recipeGrab/internal/api/handlers"
	"github.com/denisAlshanov/recipeGrab/internal/api/router"
	"github.com/denisAlshanov/recipeGrab/internal/config"
	"github.com/denisAlshanov/recipeGrab/internal/services/recipe"
	"github.com/denisAlshanov/recipeGrab/internal/services/youtube"
	"github.com/denisAlshanov/recipeGrab/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting Recipe Grabber service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	youtubeClient, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		logger.Fatalf("Failed to initialize YouTube client: %v", err)
	}
	if !youtubeClient.Configured() {
		logger.Warn("YOUTUBE_API_KEY is not set - video lookups will fail")
	}

	extractor := recipe.NewExtractor(&cfg.OpenAI)
	if !extractor.Configured() {
		logger.Warn("OPENAI_API_KEY is not set - recipe parsing will return empty results")
	}

	videoHandler := handlers.NewVideoHandler(youtubeClient)
	recipeHandler := handlers.NewRecipeHandler(extractor)
	healthHandler := handlers.NewHealthHandler(youtubeClient, extractor)

	server := router.NewRouter(cfg, videoHandler, recipeHandler, healthHandler).Server()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infof("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("Server error: %v", err)
	}

	logger.Info("Server shutdown complete")
}
