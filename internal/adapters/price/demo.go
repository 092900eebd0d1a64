package price

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// DemoPrices returns 10 deterministic placeholder points over the trailing
// 10 calendar days: a per-day cumulative trend plus an alternating offset.
func DemoPrices(ticker string) []models.PricePoint {
	base := 100.0
	if ticker == "AAPL" {
		base = 150.0
	}

	points := make([]models.PricePoint, 0, 10)
	for i := 0; i < 10; i++ {
		date := time.Now().AddDate(0, 0, -(9 - i))

		variation := float64(i)*2.5 - 3.0
		if i%2 == 0 {
			variation = float64(i)*2.5 + 5.0
		}

		points = append(points, models.PricePoint{
			Date:  date.Format("2006-01-02"),
			Close: round2(base + variation),
		})
	}

	return points
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
