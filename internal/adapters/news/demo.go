package news

import (
	"fmt"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// DemoHeadlines returns deterministic placeholder headlines, served when
// every upstream feed fails or comes back empty.
func DemoHeadlines(ticker string) []models.Headline {
	now := nowUTC()

	return []models.Headline{
		{
			Title:       fmt.Sprintf("%s stock shows strong performance in latest trading session", ticker),
			URL:         "https://example.com/demo1",
			PublishedAt: now,
		},
		{
			Title:       fmt.Sprintf("Market analysts remain optimistic about %s prospects", ticker),
			URL:         "https://example.com/demo2",
			PublishedAt: now,
		},
		{
			Title:       fmt.Sprintf("%s earnings report expected to drive investor sentiment", ticker),
			URL:         "https://example.com/demo3",
			PublishedAt: now,
		},
	}
}
