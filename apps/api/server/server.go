package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fiscalia/fiscalia-api/apps/api/handlers"
	"github.com/fiscalia/fiscalia-api/libs/go/db"
	"github.com/fiscalia/fiscalia-api/libs/go/logger"
	"github.com/fiscalia/fiscalia-api/libs/go/middleware"
	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Run wires the API together and serves until interrupted.
func Run() error {
	// .env is only present in local development; missing file is fine.
	_ = godotenv.Load()

	stage := getEnv("STAGE", "local")
	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()

	if stage == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		return err
	}
	defer pool.Close()

	queries := db.New(pool)
	common := handlers.NewCommonServices(queries, logger.Log)

	scheduler := services.NewSnapshotScheduler(queries)
	scheduler.Start()
	defer scheduler.Stop()

	router := newRouter(common)

	srv := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: router,
	}

	go func() {
		logger.Info("Starting API server", zap.String("addr", srv.Addr), zap.String("stage", stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newRouter builds the gin engine with middleware and routes.
func newRouter(common *handlers.CommonServices) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnv("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.CorrelationIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := handlers.NewHealthHandler()
	resultHandler := handlers.NewResultHandler(common)
	cashFlowHandler := handlers.NewCashFlowHandler(common)
	forecastHandler := handlers.NewForecastHandler(common)
	opportunityHandler := handlers.NewOpportunityHandler(common)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/results", resultHandler.GetBusinessResult)
		v1.GET("/cashflow/current", cashFlowHandler.GetCurrentSnapshot)
		v1.POST("/forecasts", forecastHandler.CreateForecast)
		v1.GET("/forecasts/:id", forecastHandler.GetForecast)
		v1.PUT("/forecasts/:id/periods/:index", forecastHandler.UpdateForecastPeriod)
		v1.GET("/opportunities", opportunityHandler.GetOpportunityReport)
	}

	return router
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
