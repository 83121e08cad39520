package stockemu

import "testing"

// testQuotes returns the fixed quote table shared by the package tests:
// AAPL trades flat at $30 before 2016, GOOG flat at $100 forever.
func testQuotes() *TableQuoteSource {
	return NewTableQuoteSource().
		SetUntil("AAPL", MustParseDate("2016-01-01"), M(30)).
		Set("GOOG", M(100))
}

// newTestPortfolio builds an empty portfolio backed by testQuotes.
func newTestPortfolio(t *testing.T, title string) *Portfolio {
	t.Helper()
	p, err := NewPortfolio(title, testQuotes())
	if err != nil {
		t.Fatalf("NewPortfolio(%q) failed: %v", title, err)
	}
	return p
}
