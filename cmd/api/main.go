package main

import (
	"fmt"
	"log"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/api/handlers"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/api/middleware"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/config"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/logging"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/pipeline"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/recorder"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/scoring"
	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Environment variables may live in a local .env during development.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// Run history is optional; without a database path every run is analyzed
	// and forgotten.
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			logger.Fatal("open run recorder", zap.Error(err))
		}
		rec = sqliteRec
		logger.Info("run recorder enabled", zap.String("path", cfg.Database.SQLitePath))
	}
	defer rec.Close()

	engine := pipeline.New(scoring.NewHeuristic(cfg.ScoringConfig()))
	store := session.NewStore()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler())

	analyzeHandler := handlers.NewAnalyzeHandler(engine, store, rec, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/detect", analyzeHandler.Detect)
		api.GET("/analyses/:id", analyzeHandler.GetAnalysis)
		api.GET("/analyses/:id/report.csv", analyzeHandler.DownloadReport)
		api.GET("/brokers", handlers.ListBrokers)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
