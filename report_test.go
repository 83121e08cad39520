package stockemu

import (
	"errors"
	"testing"
)

func TestNewDetailReport(t *testing.T) {
	p := newTestPortfolio(t, "Retirement")
	at := MustParseDatetime("2014-02-03T10:00")
	if err := p.BuyByAmount("GOOG", M(500), at, M(0)); err != nil {
		t.Fatal(err)
	}
	if err := p.BuyByAmount("AAPL", M(300), at, M(0)); err != nil {
		t.Fatal(err)
	}

	report, err := NewDetailReport(p, MustParseDatetime("2014-03-01T10:00"), false)
	if err != nil {
		t.Fatalf("NewDetailReport failed: %v", err)
	}

	if report.Title != "Retirement" {
		t.Errorf("title = %q, want Retirement", report.Title)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(report.Rows))
	}
	// Rows come out sorted by ticker regardless of purchase order.
	if report.Rows[0].Ticker != "AAPL" || report.Rows[1].Ticker != "GOOG" {
		t.Errorf("rows = [%s %s], want [AAPL GOOG]", report.Rows[0].Ticker, report.Rows[1].Ticker)
	}
	if report.CostBasis == "" {
		t.Error("cost basis is empty")
	}
	if report.MarketValue != "" {
		t.Errorf("market value = %q, want empty without pricing", report.MarketValue)
	}
}

func TestNewDetailReport_WithValue(t *testing.T) {
	p := newTestPortfolio(t, "Priced")
	if err := p.BuyByAmount("AAPL", M(300), MustParseDatetime("2014-02-03T10:00"), M(0)); err != nil {
		t.Fatal(err)
	}

	report, err := NewDetailReport(p, MustParseDatetime("2014-03-01T10:00"), true)
	if err != nil {
		t.Fatalf("NewDetailReport failed: %v", err)
	}
	if report.MarketValue == "" {
		t.Error("market value is empty with pricing enabled")
	}

	// No AAPL price from 2016 on: the priced report fails instead of
	// showing a partial value.
	if _, err := NewDetailReport(p, MustParseDatetime("2017-03-06T10:00"), true); !errors.Is(err, ErrQuoteUnavailable) {
		t.Errorf("NewDetailReport error = %v, want ErrQuoteUnavailable", err)
	}
}

func TestNewStrategiesReport(t *testing.T) {
	p := newTestPortfolio(t, "Main")

	report := NewStrategiesReport(p)
	if len(report.Entries) != 0 {
		t.Fatalf("got %d entries on a fresh portfolio, want 0", len(report.Entries))
	}

	s, err := NewStrategy("balanced", map[string]Percent{"AAPL": 60, "GOOG": 40}, M(2000), M(5))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.DefineStrategy(s); err != nil {
		t.Fatal(err)
	}

	report = NewStrategiesReport(p)
	if len(report.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(report.Entries))
	}
	entry := report.Entries[0]
	if entry.Name != "balanced" {
		t.Errorf("name = %q, want balanced", entry.Name)
	}
	if entry.Allocation != "AAPL 60.00%, GOOG 40.00%" {
		t.Errorf("allocation = %q, want %q", entry.Allocation, "AAPL 60.00%, GOOG 40.00%")
	}
}
