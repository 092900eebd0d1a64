package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Emilioaguirre7/MarketPulse/internal/adapters/config"
	"github.com/Emilioaguirre7/MarketPulse/internal/adapters/news"
	"github.com/Emilioaguirre7/MarketPulse/internal/adapters/price"
	"github.com/Emilioaguirre7/MarketPulse/internal/analysis"
	"github.com/Emilioaguirre7/MarketPulse/internal/cache"
	"github.com/Emilioaguirre7/MarketPulse/internal/sentiment"
	"github.com/Emilioaguirre7/MarketPulse/internal/server"
	"github.com/Emilioaguirre7/MarketPulse/pkg/logger"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Run application
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("MarketPulse sentiment service starting",
		zap.String("port", cfg.Server.Port),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
	)

	// One cache memoizes both headline and price fetches
	memoCache := cache.New(cfg.Cache.TTL)

	// Headline acquisition: primary feed, then fallback feed, then demo data
	newsService := news.NewService(memoCache,
		news.NewGoogleNewsProvider(cfg.News.Timeout, cfg.News.MaxItems),
		news.NewYahooFinanceProvider(cfg.News.Timeout, cfg.News.MaxItems),
	)

	priceService := price.NewService(memoCache,
		price.NewYahooChartProvider(cfg.Prices.Timeout, cfg.Prices.WindowDays, cfg.Prices.MaxPoints),
	)

	analysisService := analysis.NewService(newsService, sentiment.NewAnalyzer())

	srv := server.New(cfg.Server.Port, cfg.CORS.WebOrigin, newsService, priceService, analysisService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
