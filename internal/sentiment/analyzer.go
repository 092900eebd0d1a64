package sentiment

import (
	"strings"
)

// Label thresholds shared by per-headline and aggregate classification
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Label classifies a compound polarity score
func Label(score float64) string {
	switch {
	case score >= positiveThreshold:
		return "positive"
	case score <= negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Analyzer performs lexicon-based sentiment analysis on headline text
type Analyzer struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
}

// NewAnalyzer creates new sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positiveWords: buildPositiveWords(),
		negativeWords: buildNegativeWords(),
	}
}

// PolarityScore analyzes text and returns a compound score (-1.0 to 1.0)
func (a *Analyzer) PolarityScore(text string) float64 {
	if text == "" {
		return 0.0
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0.0
	}

	var score float64
	matchCount := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"")

		if weight, ok := a.positiveWords[word]; ok {
			score += weight
			matchCount++
		}

		if weight, ok := a.negativeWords[word]; ok {
			score -= weight
			matchCount++
		}
	}

	if matchCount == 0 {
		return 0.0
	}

	// Normalize by headline length
	normalizedScore := score / float64(len(words))

	// Clamp to -1.0 to 1.0
	if normalizedScore > 1.0 {
		normalizedScore = 1.0
	} else if normalizedScore < -1.0 {
		normalizedScore = -1.0
	}

	return normalizedScore
}

// buildPositiveWords returns positive keywords for equity headlines
func buildPositiveWords() map[string]float64 {
	return map[string]float64{
		// General positive
		"rally":      0.9,
		"surge":      0.8,
		"surges":     0.8,
		"soar":       0.8,
		"soars":      0.8,
		"jump":       0.7,
		"jumps":      0.7,
		"climb":      0.6,
		"climbs":     0.6,
		"gain":       0.6,
		"gains":      0.6,
		"profit":     0.6,
		"profits":    0.6,
		"strong":     0.5,
		"record":     0.5,
		"growth":     0.5,
		"grow":       0.5,
		"rise":       0.5,
		"rises":      0.5,
		"up":         0.5,
		"high":       0.4,
		"positive":   0.5,
		"optimistic": 0.5,
		"bullish":    1.0,

		// Equities specific
		"beat":       0.7,
		"beats":      0.7,
		"upgrade":    0.7,
		"upgraded":   0.7,
		"outperform": 0.7,
		"buyback":    0.6,
		"dividend":   0.5,
		"breakout":   0.7,
		"approved":   0.6,
		"expansion":  0.5,
		"partnership": 0.5,
	}
}

// buildNegativeWords returns negative keywords for equity headlines
func buildNegativeWords() map[string]float64 {
	return map[string]float64{
		// General negative
		"crash":       1.0,
		"crashes":     1.0,
		"plunge":      0.8,
		"plunges":     0.8,
		"tumble":      0.8,
		"tumbles":     0.8,
		"slump":       0.7,
		"slumps":      0.7,
		"sink":        0.7,
		"sinks":       0.7,
		"fall":        0.6,
		"falls":       0.6,
		"drop":        0.6,
		"drops":       0.6,
		"decline":     0.6,
		"declines":    0.6,
		"loss":        0.7,
		"losses":      0.7,
		"weak":        0.5,
		"down":        0.5,
		"low":         0.4,
		"negative":    0.5,
		"pessimistic": 0.5,
		"fear":        0.6,
		"panic":       0.8,
		"selloff":     0.7,
		"bearish":     1.0,

		// Equities specific
		"miss":          0.7,
		"misses":        0.7,
		"downgrade":     0.7,
		"downgraded":    0.7,
		"underperform":  0.7,
		"lawsuit":       0.7,
		"probe":         0.6,
		"investigation": 0.6,
		"recall":        0.7,
		"layoffs":       0.8,
		"bankruptcy":    1.0,
		"fraud":         1.0,
		"warning":       0.6,
		"cuts":          0.6,
		"short":         0.4,
	}
}
