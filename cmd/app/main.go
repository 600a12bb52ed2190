package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"yourscinema-backend/internal/assessment"
	"yourscinema-backend/internal/config"
	"yourscinema-backend/internal/controller"
	"yourscinema-backend/internal/db"
	"yourscinema-backend/internal/repository"
	"yourscinema-backend/internal/service"
	"yourscinema-backend/pkg/middleware"
	"yourscinema-backend/utilities"
)

const version = "1.0.0"

func main() {
	printStartUpBanner()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utilities.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to initialise logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.APIConfig, logger *zap.Logger) error {
	conn, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	if sqlDB, err := conn.DB(); err == nil {
		defer sqlDB.Close()
	}

	movies, err := prepareCatalog(conn, cfg.DB.Initialize, logger)
	if err != nil {
		return err
	}

	// Create repositories.
	moodRepo := repository.NewMoodRepository(conn)
	watchRepo := repository.NewWatchRepository(conn)

	bus := utilities.NewEventBus(logger)
	service.NewRecorder(moodRepo, watchRepo, logger).InitRecorderEventListeners(bus)

	// Create services.
	assessmentService, err := service.NewAssessmentService(assessment.DefaultQuestions(), movies, bus, logger,
		service.AssessmentOptions{
			SessionTTL:          cfg.SessionTTL(),
			RecommendationLimit: cfg.Recommendation.Limit,
		})
	if err != nil {
		return err
	}
	historyService := service.NewHistoryService(moodRepo, watchRepo)
	tokens := utilities.NewTokenManager(cfg.Authentication.TokenSecret, cfg.TokenTTL())

	// Initialize Gin router.
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware(logger))
	}
	r.Use(utilities.AuthMiddleware(tokens, cfg.Authentication.EnableTokenAuth))

	controller.RegisterRoutes(r, controller.Services{
		Tokens:     tokens,
		Assessment: assessmentService,
		Catalog:    service.NewCatalogService(movies),
		History:    historyService,
		Report:     service.NewReportService(historyService, cfg.Location()),
		Health:     controller.NewHealthController(conn, version),
		Location:   cfg.Location(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweep(ctx, assessmentService, limiter)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// let pending mood and watch records reach the database
	bus.Wait()
	return nil
}

// sweep evicts idle assessment sessions and rate limiter entries.
func sweep(ctx context.Context, sessions service.AssessmentService, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sessions.EvictIdle(now)
			if limiter != nil {
				limiter.Sweep(now)
			}
		}
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("YOURS CINEMA", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("YOURS CINEMA API (v%s)\n\n", version)
}
