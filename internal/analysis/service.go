package analysis

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Emilioaguirre7/MarketPulse/internal/sentiment"
	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// Scorer produces a compound polarity score in [-1, 1] for a piece of text
type Scorer interface {
	PolarityScore(text string) float64
}

// HeadlineSource acquires headlines for a ticker and never fails
type HeadlineSource interface {
	Fetch(ctx context.Context, ticker string) []models.Headline
}

// Service combines acquired headlines with per-headline polarity scores
// into an overall ticker sentiment report.
type Service struct {
	headlines HeadlineSource
	scorer    Scorer
	now       func() time.Time
}

// NewService creates new analysis service
func NewService(headlines HeadlineSource, scorer Scorer) *Service {
	return &Service{
		headlines: headlines,
		scorer:    scorer,
		now:       time.Now,
	}
}

// Analyze builds the sentiment report for an already-validated ticker.
// The aggregate is the mean of the unrounded per-headline scores.
func (s *Service) Analyze(ctx context.Context, ticker string) models.AnalyzeResponse {
	headlines := s.headlines.Fetch(ctx, ticker)

	analyzed := make([]models.Headline, 0, len(headlines))
	var total float64

	for _, h := range headlines {
		score := s.scorer.PolarityScore(h.Title)
		total += score

		rounded := round3(score)
		h.Score = &rounded
		h.Label = sentiment.Label(score)
		analyzed = append(analyzed, h)
	}

	avg := 0.0
	if len(analyzed) > 0 {
		avg = total / float64(len(analyzed))
	}

	return models.AnalyzeResponse{
		Ticker:    ticker,
		UpdatedAt: s.now().UTC().Format("2006-01-02T15:04:05Z"),
		Aggregate: models.AggregateSentiment{
			Score: round3(avg),
			Label: sentiment.Label(avg),
		},
		Headlines: analyzed,
	}
}

func round3(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(3).Float64()
	return f
}
