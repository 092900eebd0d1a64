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

const googleNewsFeedURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// GoogleNewsProvider fetches headlines from the Google News RSS search feed,
// restricted to the finance sites the original feed query targets.
type GoogleNewsProvider struct {
	feedURL  string
	maxItems int
	parser   *gofeed.Parser
}

// NewGoogleNewsProvider creates new Google News provider
func NewGoogleNewsProvider(timeout time.Duration, maxItems int) *GoogleNewsProvider {
	parser := gofeed.NewParser()
	parser.UserAgent = browserUserAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &GoogleNewsProvider{
		feedURL:  googleNewsFeedURL,
		maxItems: maxItems,
		parser:   parser,
	}
}

func (g *GoogleNewsProvider) Name() string {
	return "google_news"
}

func (g *GoogleNewsProvider) FetchHeadlines(ctx context.Context, ticker string) ([]models.Headline, error) {
	query := url.QueryEscape(fmt.Sprintf("%s stock site:finance.yahoo.com OR site:cnbc.com", ticker))

	feed, err := g.parser.ParseURLWithContext(fmt.Sprintf(g.feedURL, query), ctx)
	if err != nil {
		return nil, fmt.Errorf("google news fetch failed: %w", err)
	}

	return normalizeItems(feed.Items, g.maxItems, publishedUTC), nil
}
