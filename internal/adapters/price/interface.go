package price

import (
	"context"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// HistoryProvider provides daily closing price history for a ticker
type HistoryProvider interface {
	// Name returns provider name
	Name() string

	// FetchDaily returns up to the trailing 30 trading days in ascending
	// date order. An empty result is not an error.
	FetchDaily(ctx context.Context, ticker string) ([]models.PricePoint, error)
}
