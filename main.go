package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"startup-validator/api/router"
	"startup-validator/community"
	"startup-validator/config"
	"startup-validator/db"
	"startup-validator/eventbus"
	"startup-validator/llm"
	"startup-validator/logger"
	"startup-validator/repositories"
	"startup-validator/scraper"
	"startup-validator/search"
	"startup-validator/services"
)

// @title           Startup Idea Validator API
// @version         1.0
// @description     AI-powered startup idea validation using Gemini, Serper, and Firecrawl
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("configuration error: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()

	client, database, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Log.Errorf("failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Warnf("mongo disconnect: %v", err)
		}
	}()

	gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.APITimeout())
	if err != nil {
		logger.Log.Errorf("failed to create Gemini client: %v", err)
		os.Exit(1)
	}

	serper := search.NewSerperClient(cfg.SerperAPIKey, cfg.APITimeout())
	news := search.NewNewsClient(cfg.APITimeout())
	reddit := community.NewRedditClient(cfg.APITimeout())

	var pageScraper scraper.Scraper
	if cfg.FirecrawlAPIKey != "" {
		pageScraper = scraper.NewFirecrawlClient(cfg.FirecrawlAPIKey, cfg.APITimeout())
	} else {
		logger.Log.Warn("no Firecrawl API key configured, scraping locally with headless Chrome")
		pageScraper = scraper.NewChromeScraper(os.Getenv("CHROME_PATH"), cfg.APITimeout())
	}

	var bus eventbus.Publisher = eventbus.Noop{}
	if cfg.Kafka.Brokers != "" {
		kp, err := eventbus.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix)
		if err != nil {
			logger.Log.Warnf("kafka disabled: %v", err)
		} else {
			bus = kp
		}
	}
	defer bus.Close()

	repo := repositories.NewReportRepository(database)

	normalizer := services.NewNormalizer(gemini)
	research := services.NewResearchService(serper, news, pageScraper, cfg.MaxSearchResults, cfg.MaxScrapeURLs)
	synthesizer := services.NewSynthesizer(gemini)

	deps := router.Deps{
		Database:   database,
		Validation: services.NewValidationService(normalizer, research, synthesizer, repo, bus),
		Reports:    services.NewReportService(repo, bus),
		Discovery:  services.NewDiscoveryService(gemini, reddit),
		Comments:   services.NewCommentAnalysisService(gemini, reddit),
	}

	handler := cors.AllowAll().Handler(router.New(deps))
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("Startup Idea Validator API listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Leave the goroutine on a listen failure so the deferred mongo
	// disconnect and producer flush still run.
	select {
	case err := <-serverErr:
		logger.Log.Errorf("server error: %v", err)
	case <-quit:
	}

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Warnf("server shutdown: %v", err)
	}
}
