package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

const yahooChartBaseURL = "https://query1.finance.yahoo.com"

// Feed endpoints answer browser user agents more reliably than the Go default
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// YahooChartProvider implements HistoryProvider using the Yahoo Finance v8
// chart API (free, no API key needed). The query window is padded past the
// wanted trading days to absorb weekends and holidays.
type YahooChartProvider struct {
	baseURL    string
	client     *http.Client
	windowDays int
	maxPoints  int
}

// NewYahooChartProvider creates new Yahoo chart provider
func NewYahooChartProvider(timeout time.Duration, windowDays, maxPoints int) *YahooChartProvider {
	return &YahooChartProvider{
		baseURL:    yahooChartBaseURL,
		client:     &http.Client{Timeout: timeout},
		windowDays: windowDays,
		maxPoints:  maxPoints,
	}
}

func (p *YahooChartProvider) Name() string {
	return "yahoo_chart"
}

// chartResponse mirrors the slice of the v8 chart payload we consume.
// Closes are pointers: the API reports missing sessions as nulls.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (p *YahooChartProvider) FetchDaily(ctx context.Context, ticker string) ([]models.PricePoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -p.windowDays)

	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		p.baseURL, url.PathEscape(ticker), start.Unix(), end.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var result chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Chart.Error != nil {
		return nil, fmt.Errorf("chart API rejected %s: %v", ticker, result.Chart.Error)
	}
	if len(result.Chart.Result) == 0 || len(result.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	series := result.Chart.Result[0]
	closes := series.Indicators.Quote[0].Close

	points := make([]models.PricePoint, 0, len(series.Timestamp))
	for i, ts := range series.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: round2(*closes[i]),
		})
	}

	// Most recent trading days only, order preserved
	if len(points) > p.maxPoints {
		points = points[len(points)-p.maxPoints:]
	}

	return points, nil
}
