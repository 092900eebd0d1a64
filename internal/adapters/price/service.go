package price

import (
	"context"

	"go.uber.org/zap"

	"github.com/Emilioaguirre7/MarketPulse/internal/cache"
	"github.com/Emilioaguirre7/MarketPulse/pkg/logger"
	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// Service acquires price history for a ticker: cache, then the history
// provider, then demo data on failure or an empty series. Callers always get
// at least one point; upstream failures never escape this layer.
type Service struct {
	cache    *cache.Cache
	provider HistoryProvider
}

// NewService creates new price acquisition service
func NewService(c *cache.Cache, provider HistoryProvider) *Service {
	return &Service{
		cache:    c,
		provider: provider,
	}
}

// Fetch returns daily closes for an already-validated ticker
func (s *Service) Fetch(ctx context.Context, ticker string) []models.PricePoint {
	key := "prices_" + ticker

	if cached, ok := s.cache.Get(key); ok {
		if points, ok := cached.([]models.PricePoint); ok {
			return points
		}
	}

	points, err := s.provider.FetchDaily(ctx, ticker)
	if err != nil {
		logger.Warn("price history fetch failed, serving demo prices",
			zap.String("provider", s.provider.Name()),
			zap.String("ticker", ticker),
			zap.Error(err),
		)
		points = DemoPrices(ticker)
	} else if len(points) == 0 {
		logger.Warn("price history empty, serving demo prices",
			zap.String("provider", s.provider.Name()),
			zap.String("ticker", ticker),
		)
		points = DemoPrices(ticker)
	}

	s.cache.Set(key, points)
	return points
}
