package server

import (
	"strings"
	"testing"
)

func TestValidateTicker_Accepts(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"AAPL", "AAPL"},
		{"aapl", "AAPL"},
		{"A", "A"},
		{"GOOGL", "GOOGL"},
		{" msft ", "MSFT"},
	}

	for _, tt := range tests {
		got, err := ValidateTicker(tt.raw)
		if err != nil {
			t.Errorf("ValidateTicker(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateTicker(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestValidateTicker_Rejects(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"ABCDEF", // too long
		"BF.B",   // non-letter
		"A1",
		"123",
		"aapl!",
		"AA PL",
	}

	for _, raw := range tests {
		if _, err := ValidateTicker(raw); err == nil {
			t.Errorf("ValidateTicker(%q) should fail", raw)
		}
	}
}

func TestValidateTicker_ErrorNamesTicker(t *testing.T) {
	_, err := ValidateTicker("toolong")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "'TOOLONG'") {
		t.Errorf("error should name the offending ticker: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "1-5 letters") {
		t.Errorf("error should state the format rule: %s", err.Error())
	}
}
