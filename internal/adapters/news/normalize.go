package news

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

const (
	maxTitleLen = 500

	// Feeds answer browser user agents more reliably than the Go default
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	isoUTCLayout    = "2006-01-02T15:04:05Z"
	isoOffsetLayout = "2006-01-02T15:04:05-07:00"
)

// sanitizeTitle trims, collapses newlines to spaces and truncates to 500 chars
func sanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")

	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen])
	}

	return title
}

// publishedUTC renders a feed timestamp the way the primary feed does:
// naive UTC with a trailing Z.
func publishedUTC(t time.Time) string {
	return t.UTC().Format(isoUTCLayout)
}

// publishedOffset renders a feed timestamp offset-aware, matching the
// secondary feed's zoned publish dates.
func publishedOffset(t time.Time) string {
	return t.Format(isoOffsetLayout)
}

func nowUTC() string {
	return time.Now().UTC().Format(isoUTCLayout)
}

// normalizeItems maps raw feed items onto Headline values. It scans at most
// maxItems entries, skips items missing a title or link, sanitizes titles and
// drops exact duplicates keeping the first occurrence. Items without a
// parseable publish date get the current UTC time.
func normalizeItems(items []*gofeed.Item, maxItems int, published func(time.Time) string) []models.Headline {
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	headlines := make([]models.Headline, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}

		title := sanitizeTitle(item.Title)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}

		publishedAt := nowUTC()
		if item.PublishedParsed != nil {
			publishedAt = published(*item.PublishedParsed)
		}

		headlines = append(headlines, models.Headline{
			Title:       title,
			URL:         item.Link,
			PublishedAt: publishedAt,
		})
	}

	return headlines
}
