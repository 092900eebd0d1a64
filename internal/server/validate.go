package server

import (
	"fmt"
	"strings"
)

// InvalidTickerError reports a ticker that failed format validation
type InvalidTickerError struct {
	Ticker string
}

func (e *InvalidTickerError) Error() string {
	return fmt.Sprintf("Ticker '%s' is not a valid format. Must be 1-5 letters only.", e.Ticker)
}

// ValidateTicker trims and uppercases the raw path ticker, rejecting
// anything empty, longer than five characters, or not purely letters.
func ValidateTicker(raw string) (string, error) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))

	if ticker == "" || len(ticker) > 5 || !isAlpha(ticker) {
		return "", &InvalidTickerError{Ticker: ticker}
	}

	return ticker, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
