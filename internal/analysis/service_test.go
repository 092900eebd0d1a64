package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

type stubHeadlines struct {
	headlines []models.Headline
}

func (s *stubHeadlines) Fetch(ctx context.Context, ticker string) []models.Headline {
	return s.headlines
}

// scoreByTitle maps exact titles to fixed polarity scores
type scoreByTitle map[string]float64

func (s scoreByTitle) PolarityScore(text string) float64 {
	return s[text]
}

func TestAnalyze_AttachesScoresAndLabels(t *testing.T) {
	source := &stubHeadlines{headlines: []models.Headline{
		{Title: "good news", URL: "https://example.com/1", PublishedAt: "2024-03-01T00:00:00Z"},
		{Title: "bad news", URL: "https://example.com/2", PublishedAt: "2024-03-01T00:00:00Z"},
		{Title: "plain news", URL: "https://example.com/3", PublishedAt: "2024-03-01T00:00:00Z"},
	}}
	scorer := scoreByTitle{"good news": 0.51234, "bad news": -0.3, "plain news": 0.0}

	svc := NewService(source, scorer)
	report := svc.Analyze(context.Background(), "AAPL")

	if report.Ticker != "AAPL" {
		t.Errorf("unexpected ticker %q", report.Ticker)
	}
	if len(report.Headlines) != 3 {
		t.Fatalf("expected 3 analyzed headlines, got %d", len(report.Headlines))
	}

	first := report.Headlines[0]
	if first.Score == nil || *first.Score != 0.512 {
		t.Errorf("expected score rounded to 3 decimals, got %v", first.Score)
	}
	if first.Label != "positive" {
		t.Errorf("expected positive label, got %q", first.Label)
	}
	if report.Headlines[1].Label != "negative" || report.Headlines[2].Label != "neutral" {
		t.Errorf("unexpected labels: %q, %q", report.Headlines[1].Label, report.Headlines[2].Label)
	}

	// Mean of 0.51234, -0.3, 0.0 rounded to 3 decimals
	if report.Aggregate.Score != 0.071 {
		t.Errorf("expected aggregate 0.071, got %v", report.Aggregate.Score)
	}
	if report.Aggregate.Label != "positive" {
		t.Errorf("expected positive aggregate, got %q", report.Aggregate.Label)
	}
}

func TestAnalyze_EmptyHeadlines(t *testing.T) {
	svc := NewService(&stubHeadlines{}, scoreByTitle{})
	report := svc.Analyze(context.Background(), "AAPL")

	if report.Aggregate.Score != 0 {
		t.Errorf("expected aggregate score 0 for empty list, got %v", report.Aggregate.Score)
	}
	if report.Aggregate.Label != "neutral" {
		t.Errorf("expected neutral label for empty list, got %q", report.Aggregate.Label)
	}
	if len(report.Headlines) != 0 {
		t.Errorf("expected no headlines, got %d", len(report.Headlines))
	}
}

func TestAnalyze_UpdatedAtIsUTC(t *testing.T) {
	svc := NewService(&stubHeadlines{}, scoreByTitle{})
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	svc.now = func() time.Time { return fixed }

	report := svc.Analyze(context.Background(), "AAPL")
	if report.UpdatedAt != "2024-03-01T14:30:00Z" {
		t.Errorf("expected UTC timestamp with Z suffix, got %s", report.UpdatedAt)
	}
}

func TestAnalyze_SourceHeadlinesNotMutated(t *testing.T) {
	original := []models.Headline{{Title: "good news", URL: "https://example.com/1"}}
	svc := NewService(&stubHeadlines{headlines: original}, scoreByTitle{"good news": 0.5})

	svc.Analyze(context.Background(), "AAPL")

	if original[0].Score != nil || original[0].Label != "" {
		t.Error("analysis must not mutate the acquired headline batch")
	}
}
