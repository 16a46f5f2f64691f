package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/alexbanham/fantasyapp-sub005/internal/api/handlers"
	"github.com/alexbanham/fantasyapp-sub005/internal/config"
	"github.com/alexbanham/fantasyapp-sub005/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure via the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithComponent("server").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting lineup engine service")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	lineupHandler := handlers.NewLineupHandler(structuredLogger)
	healthHandler := handlers.NewHealthHandler(structuredLogger)

	router.GET("/health", healthHandler.Health)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/lineup/optimal", lineupHandler.OptimalLineup)
		v1.POST("/lineup/efficiency", lineupHandler.Efficiency)
		v1.POST("/lineup/bench-impact", lineupHandler.BenchImpact)
		v1.POST("/league/efficiency", lineupHandler.LeagueEfficiency)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithComponent("server").Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithComponent("server").Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithComponent("server").Errorf("Forced shutdown: %v", err)
	}
}
