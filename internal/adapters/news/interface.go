package news

import (
	"context"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// Provider represents a single upstream headline feed
type Provider interface {
	// Name returns provider name
	Name() string

	// FetchHeadlines fetches recent headlines for a ticker. An error means
	// the feed could not be reached or parsed; a well-formed feed with zero
	// usable items is an empty slice and a nil error.
	FetchHeadlines(ctx context.Context, ticker string) ([]models.Headline, error)
}
