package news

import (
	"context"

	"go.uber.org/zap"

	"github.com/Emilioaguirre7/MarketPulse/internal/cache"
	"github.com/Emilioaguirre7/MarketPulse/pkg/logger"
	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// Service acquires headlines for a ticker through a fixed fallback chain:
// cache, then each provider in order, then demo data. Callers always get at
// least one headline; upstream failures never escape this layer.
type Service struct {
	cache     *cache.Cache
	providers []Provider
}

// NewService creates new headline acquisition service. Providers are tried
// in the order given.
func NewService(c *cache.Cache, providers ...Provider) *Service {
	return &Service{
		cache:     c,
		providers: providers,
	}
}

// Fetch returns headlines for an already-validated ticker
func (s *Service) Fetch(ctx context.Context, ticker string) []models.Headline {
	key := "headlines_" + ticker

	if cached, ok := s.cache.Get(key); ok {
		if headlines, ok := cached.([]models.Headline); ok {
			return headlines
		}
	}

	for _, provider := range s.providers {
		headlines, err := provider.FetchHeadlines(ctx, ticker)
		if err != nil {
			logger.Warn("headline provider failed",
				zap.String("provider", provider.Name()),
				zap.String("ticker", ticker),
				zap.Error(err),
			)
			continue
		}
		if len(headlines) == 0 {
			logger.Warn("headline provider returned no usable items",
				zap.String("provider", provider.Name()),
				zap.String("ticker", ticker),
			)
			continue
		}

		s.cache.Set(key, headlines)
		return headlines
	}

	logger.Warn("all headline providers exhausted, serving demo headlines",
		zap.String("ticker", ticker),
	)

	headlines := DemoHeadlines(ticker)
	s.cache.Set(key, headlines)
	return headlines
}
