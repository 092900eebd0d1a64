package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

const yahooFinanceFeedURL = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// YahooFinanceProvider fetches headlines from the per-ticker Yahoo Finance feed
type YahooFinanceProvider struct {
	feedURL  string
	maxItems int
	parser   *gofeed.Parser
}

// NewYahooFinanceProvider creates new Yahoo Finance provider
func NewYahooFinanceProvider(timeout time.Duration, maxItems int) *YahooFinanceProvider {
	parser := gofeed.NewParser()
	parser.UserAgent = browserUserAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &YahooFinanceProvider{
		feedURL:  yahooFinanceFeedURL,
		maxItems: maxItems,
		parser:   parser,
	}
}

func (y *YahooFinanceProvider) Name() string {
	return "yahoo_finance"
}

func (y *YahooFinanceProvider) FetchHeadlines(ctx context.Context, ticker string) ([]models.Headline, error) {
	feed, err := y.parser.ParseURLWithContext(fmt.Sprintf(y.feedURL, url.QueryEscape(ticker)), ctx)
	if err != nil {
		return nil, fmt.Errorf("yahoo finance fetch failed: %w", err)
	}

	return normalizeItems(feed.Items, y.maxItems, publishedOffset), nil
}
