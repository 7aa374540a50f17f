package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/auth"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/config"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/database"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/health"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/logging"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/posts"
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "development" {
		if err := database.SeedDevData(db); err != nil {
			logger.Warn("dev seed failed", "error", err)
		}
	}

	st := store.New(db)
	resolver := &auth.Resolver{
		Enabled:  cfg.AuthEnabled,
		Verifier: auth.NewJWTVerifier(cfg.JWTSecret),
		Source:   st,
		Log:      logger,
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", health.Handler)

	splitHandler := posts.NewHandler(cfg, logger)
	router.POST("/split-calendar", auth.Guard(resolver), splitHandler.SplitCalendar)

	logger.Info("server starting",
		"port", cfg.Port, "env", cfg.Env, "auth_enabled", cfg.AuthEnabled,
		"approved_status", cfg.ApprovedStatus, "post_reset_status", cfg.PostResetStatus)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
