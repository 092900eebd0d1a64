package models

// Headline represents a single normalized news headline for a ticker.
// Score and Label stay empty until the analysis aggregator attaches them.
type Headline struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"publishedAt"`
	Score       *float64 `json:"score,omitempty"`
	Label       string   `json:"label,omitempty"`
}

// PricePoint represents one trading day's closing price
type PricePoint struct {
	Date  string  `json:"date"`  // YYYY-MM-DD
	Close float64 `json:"close"` // rounded to 2 decimals
}

// AggregateSentiment represents the combined sentiment across a headline batch
type AggregateSentiment struct {
	Score float64 `json:"score"` // rounded to 3 decimals
	Label string  `json:"label"` // positive, neutral or negative
}

// AnalyzeResponse is the full sentiment report for a ticker
type AnalyzeResponse struct {
	Ticker    string             `json:"ticker"`
	UpdatedAt string             `json:"updatedAt"`
	Aggregate AggregateSentiment `json:"aggregate"`
	Headlines []Headline         `json:"headlines"`
}

// PricesResponse is the price history payload for a ticker
type PricesResponse struct {
	Ticker string       `json:"ticker"`
	Series []PricePoint `json:"series"`
}

// HealthResponse is the liveness probe payload
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the structured body returned on request validation failure
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
