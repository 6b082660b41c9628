package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bertiemoogle/ethical-gift-finder/config"
	httpDelivery "github.com/bertiemoogle/ethical-gift-finder/internal/delivery/http"
	"github.com/bertiemoogle/ethical-gift-finder/internal/infrastructure/ethics"
	"github.com/bertiemoogle/ethical-gift-finder/internal/infrastructure/pdftext"
	"github.com/bertiemoogle/ethical-gift-finder/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg)

	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("starting ethical gift finder backend v1.0.0")

	// Initialize infrastructure dependencies
	directory := ethics.NewDirectory()

	extractor := pdftext.NewExtractor()
	if cfg.Server.Environment == "development" {
		extractor.SetDebug(true)
		log.Info().Msg("pdf extractor debug mode enabled")
	}

	// Initialize usecase layer
	wishlistService := usecase.NewWishlistService(
		extractor,
		directory,
		directory,
		usecase.WishlistServiceConfig{
			EnableDebugLogging: cfg.Parser.DebugLogging,
		},
	)

	log.Info().
		Int("upload_max_mb", cfg.Upload.MaxSizeMB).
		Int("ratelimit_per_ip", cfg.RateLimit.PerIP).
		Bool("parser_debug", cfg.Parser.DebugLogging).
		Msg("pipeline configured")

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(wishlistService, int64(cfg.Upload.MaxSizeMB)<<20)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// setupLogging applies the configured log level and, in development, a
// human-readable console writer
func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Server.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
