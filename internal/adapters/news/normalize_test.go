package news

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trim and collapse newlines", "  Hello\nWorld\r  ", "Hello World"},
		{"plain title untouched", "AAPL beats estimates", "AAPL beats estimates"},
		{"inner carriage return", "a\rb", "a b"},
		{"whitespace only", "  \n\r  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeTitle(tt.input); got != tt.want {
				t.Errorf("sanitizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTitle_TruncatesTo500(t *testing.T) {
	long := strings.Repeat("x", 600)

	got := sanitizeTitle(long)
	if len([]rune(got)) != 500 {
		t.Errorf("expected exactly 500 chars, got %d", len([]rune(got)))
	}
}

func TestNormalizeItems(t *testing.T) {
	published := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	items := []*gofeed.Item{
		{Title: "AAPL rallies on earnings", Link: "https://example.com/1", PublishedParsed: &published},
		{Title: "AAPL rallies on earnings", Link: "https://example.com/other"}, // duplicate title
		{Title: "", Link: "https://example.com/2"},                             // missing title
		{Title: "No link item"},                                                // missing link
		{Title: "  \n  ", Link: "https://example.com/3"},                       // sanitizes to empty
		{Title: "Second story", Link: "https://example.com/4"},                 // no publish date
	}

	headlines := normalizeItems(items, 15, publishedUTC)

	if len(headlines) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(headlines))
	}

	first := headlines[0]
	if first.Title != "AAPL rallies on earnings" || first.URL != "https://example.com/1" {
		t.Errorf("duplicate should keep the first occurrence, got %+v", first)
	}
	if first.PublishedAt != "2024-03-01T12:30:00Z" {
		t.Errorf("unexpected publish timestamp: %s", first.PublishedAt)
	}

	// Missing publish dates fall back to the current UTC time
	fallback, err := time.Parse(isoUTCLayout, headlines[1].PublishedAt)
	if err != nil {
		t.Fatalf("fallback timestamp not parseable: %v", err)
	}
	if time.Since(fallback) > time.Minute {
		t.Errorf("fallback timestamp should be roughly now, got %v", fallback)
	}
}

func TestNormalizeItems_CapsScannedItems(t *testing.T) {
	items := make([]*gofeed.Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, &gofeed.Item{
			Title: "Story " + strings.Repeat("a", i+1),
			Link:  "https://example.com/story",
		})
	}

	headlines := normalizeItems(items, 15, publishedUTC)
	if len(headlines) != 15 {
		t.Errorf("expected cap at 15 items, got %d", len(headlines))
	}
}

func TestPublishedOffsetKeepsZone(t *testing.T) {
	published := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("", 0))

	if got := publishedOffset(published); got != "2024-03-01T12:30:00+00:00" {
		t.Errorf("unexpected offset timestamp: %s", got)
	}
}
