package stockemu

import (
	"errors"
	"testing"
)

func TestTableQuoteSource_Bands(t *testing.T) {
	quotes := testQuotes()

	tests := []struct {
		name    string
		on      string
		ticker  string
		want    Money
		wantErr error
	}{
		{"first band", "2014-02-03", "AAPL", M(30), nil},
		{"day before bound", "2015-12-31", "AAPL", M(30), nil},
		{"bound excluded", "2016-01-01", "AAPL", Money{}, ErrMarketClosed},
		{"after last band", "2020-06-15", "AAPL", Money{}, ErrMarketClosed},
		{"unbounded band", "2030-01-01", "GOOG", M(100), nil},
		{"unknown ticker", "2014-02-03", "MSFT", Money{}, ErrQuoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quotes.Price(MustParseDate(tt.on), tt.ticker)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Price(%s, %s) error = %v, want %v", tt.on, tt.ticker, err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.want) {
				t.Errorf("Price(%s, %s) = %s, want %s", tt.on, tt.ticker, got, tt.want)
			}
		})
	}
}

func TestTableQuoteSource_Holiday(t *testing.T) {
	quotes := testQuotes().Close(MustParseDate("2014-07-04"))

	if _, err := quotes.Price(MustParseDate("2014-07-04"), "GOOG"); !errors.Is(err, ErrMarketClosed) {
		t.Errorf("Price on a holiday = %v, want ErrMarketClosed", err)
	}
	if _, err := quotes.Price(MustParseDate("2014-07-07"), "GOOG"); err != nil {
		t.Errorf("Price after the holiday failed: %v", err)
	}
}
