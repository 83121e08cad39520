package stockemu

import (
	"errors"
	"fmt"
	"sort"
)

// QuoteSource answers "what did one share of this ticker cost on this day".
// It is the engine's only I/O dependency. Implementations must be
// deterministic for a given (day, ticker) within one session and must return
// a distinguishable error when no data exists for the day.
type QuoteSource interface {
	// Price returns the per-share opening price of ticker on the given day.
	// It fails with ErrQuoteNotFound for unknown tickers, ErrMarketClosed
	// for days without data (weekends, holidays), and ErrRateLimited when
	// the underlying provider refuses to answer.
	Price(on Date, ticker string) (Money, error)
}

// Errors a QuoteSource implementation can return.
var (
	ErrQuoteNotFound = errors.New("quote not found")
	ErrMarketClosed  = errors.New("market closed")
	ErrRateLimited   = errors.New("rate limited")
)

// tableEntry is one price band of a TableQuoteSource: price holds strictly
// before until (zero until means forever).
type tableEntry struct {
	until Date
	price Money
}

// TableQuoteSource is a fixed-table QuoteSource for tests and offline use.
// Prices are defined as bands: a price holds for every day strictly before
// its upper bound. Individual days can be declared closed (holidays).
type TableQuoteSource struct {
	bands  map[string][]tableEntry
	closed map[Date]bool
}

// NewTableQuoteSource returns an empty fixed table.
func NewTableQuoteSource() *TableQuoteSource {
	return &TableQuoteSource{
		bands:  make(map[string][]tableEntry),
		closed: make(map[Date]bool),
	}
}

// SetUntil declares that ticker trades at price on every day strictly before
// until. Bands are matched in ascending order of their bound.
func (s *TableQuoteSource) SetUntil(ticker string, until Date, price Money) *TableQuoteSource {
	s.bands[ticker] = append(s.bands[ticker], tableEntry{until: until, price: price})
	sort.Slice(s.bands[ticker], func(i, j int) bool {
		return s.bands[ticker][i].until.Before(s.bands[ticker][j].until)
	})
	return s
}

// Set declares a flat price for ticker with no upper bound.
func (s *TableQuoteSource) Set(ticker string, price Money) *TableQuoteSource {
	s.bands[ticker] = append(s.bands[ticker], tableEntry{price: price})
	return s
}

// Close declares a single day as a market holiday.
func (s *TableQuoteSource) Close(on Date) *TableQuoteSource {
	s.closed[on] = true
	return s
}

// Price implements QuoteSource.
func (s *TableQuoteSource) Price(on Date, ticker string) (Money, error) {
	if s.closed[on] {
		return Money{}, fmt.Errorf("%w: %s is a holiday", ErrMarketClosed, on)
	}
	bands, ok := s.bands[ticker]
	if !ok {
		return Money{}, fmt.Errorf("%w: unknown ticker %q", ErrQuoteNotFound, ticker)
	}
	for _, band := range bands {
		if band.until.IsZero() || on.Before(band.until) {
			return band.price, nil
		}
	}
	return Money{}, fmt.Errorf("%w: no data for %s on %s", ErrMarketClosed, ticker, on)
}
