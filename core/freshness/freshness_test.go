package freshness

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		total     float64
		want      float64
	}{
		{"full life", 10, 10, 100},
		{"half life", 5, 10, 50},
		{"expired", 0, 10, 0},
		{"zero total", 5, 0, 0},
		{"over total clamps", 12, 10, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.remaining, tc.total); got != tc.want {
				t.Errorf("Score(%v, %v) = %v, want %v", tc.remaining, tc.total, got, tc.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(12, 3); got != 9 {
		t.Errorf("Remaining(12, 3) = %v, want 9", got)
	}
	if got := Remaining(12, 15); got != 0 {
		t.Errorf("remaining life cannot be negative, got %v", got)
	}
}

func TestMarkdownTiers(t *testing.T) {
	base := decimal.RequireFromString("10.00")

	tests := []struct {
		score float64
		want  string
	}{
		{95, "10.00"},
		{80, "10.00"},
		{79.9, "8.50"},
		{50, "8.50"},
		{49.9, "6.00"},
		{25, "6.00"},
		{24.9, "3.00"},
		{0, "3.00"},
	}
	for _, tc := range tests {
		got := Markdown(base, tc.score).StringFixed(2)
		if got != tc.want {
			t.Errorf("Markdown(10.00, %v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestMarkdownRounding(t *testing.T) {
	base := decimal.RequireFromString("4.99")
	got := Markdown(base, 60).StringFixed(2) // 4.99 * 0.85 = 4.2415
	if got != "4.24" {
		t.Errorf("Markdown(4.99, 60) = %s, want 4.24", got)
	}
}
