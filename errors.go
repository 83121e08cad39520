package stockemu

import "errors"

// Sentinel errors for the failure kinds the engine can report. Callers
// classify failures with errors.Is; the wrapped message carries the detail.
var (
	// ErrIllegalInput is returned when an operation receives an argument
	// that fails validation (ticker format, non-positive amount, negative
	// commission, blank or duplicate name, weight sum off). It is always
	// detected before any mutation.
	ErrIllegalInput = errors.New("illegal input")

	// ErrInvalidTradingTime is returned for timestamps that fall outside
	// trading days or hours, or in the future.
	ErrInvalidTradingTime = errors.New("invalid trading time")

	// ErrInvalidPortfolioIndex is returned when a portfolio index is out of range.
	ErrInvalidPortfolioIndex = errors.New("invalid portfolio index")

	// ErrInvalidStrategyName is returned when a strategy lookup fails.
	ErrInvalidStrategyName = errors.New("invalid strategy name")

	// ErrQuoteUnavailable wraps any failure from the QuoteSource. The engine
	// never retries or substitutes a fallback price.
	ErrQuoteUnavailable = errors.New("quote unavailable")
)
