package renderer

import (
	"strings"
	"testing"
)

func TestDetailMarkdown(t *testing.T) {
	d := &Detail{
		Title: "Retirement",
		AsOf:  "2014-03-01T10:00",
		Rows: []DetailRow{
			{Ticker: "AAPL", Quantity: "100"},
			{Ticker: "GOOG", Quantity: "5"},
		},
		CostBasis: "$3,500.00",
	}

	got := DetailMarkdown(d)
	for _, want := range []string{
		"# Portfolio Retirement",
		"As of 2014-03-01T10:00.",
		"| AAPL | 100 |",
		"| GOOG | 5 |",
		"Cost basis: $3,500.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DetailMarkdown missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Market value") {
		t.Errorf("DetailMarkdown shows a market value without one:\n%s", got)
	}

	d.MarketValue = "$4,200.00"
	got = DetailMarkdown(d)
	if !strings.Contains(got, "Market value: $4,200.00") {
		t.Errorf("DetailMarkdown missing market value in:\n%s", got)
	}
}

func TestStrategiesMarkdown(t *testing.T) {
	s := &Strategies{Portfolio: "Retirement"}

	got := StrategiesMarkdown(s)
	if !strings.Contains(got, "No strategy defined.") {
		t.Errorf("empty list not reported in:\n%s", got)
	}

	s.Entries = []StrategyEntry{
		{Name: "balanced", Allocation: "AAPL 60.00%, GOOG 40.00%", Amount: "$2,000.00", Commission: "$5.00"},
	}
	got = StrategiesMarkdown(s)
	for _, want := range []string{
		"# Strategies of Retirement",
		"| balanced | AAPL 60.00%, GOOG 40.00% | $2,000.00 | $5.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("StrategiesMarkdown missing %q in:\n%s", want, got)
		}
	}
}
