package stockemu

import (
	"fmt"
	"regexp"
)

// tickerPattern is the accepted ticker format: 1 to 5 capital letters.
var tickerPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// checkTicker validates the ticker symbol format.
func checkTicker(ticker string) error {
	if ticker == "" {
		return fmt.Errorf("%w: ticker name cannot be empty", ErrIllegalInput)
	}
	if !tickerPattern.MatchString(ticker) {
		return fmt.Errorf("%w: invalid format for ticker name %q", ErrIllegalInput, ticker)
	}
	return nil
}

// checkAmount validates a strictly positive dollar amount.
func checkAmount(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrIllegalInput, amount)
	}
	return nil
}

// checkCommission validates a non-negative commission.
func checkCommission(commission Money) error {
	if commission.IsNegative() {
		return fmt.Errorf("%w: commission cannot be negative, got %s", ErrIllegalInput, commission)
	}
	return nil
}

// Lot records one purchase of a quantity of a ticker at a specific timestamp
// and unit cost. A Lot is immutable once created: corrections are modeled as
// new lots, never as edits.
type Lot struct {
	Ticker     string
	Time       Datetime
	UnitCost   Money
	Quantity   Quantity
	Commission Money
}

// CostBasis is the total paid for the lot: principal plus commission.
func (l Lot) CostBasis() Money {
	return l.UnitCost.Mul(l.Quantity).Add(l.Commission)
}

// MarshalJSON implements the json.Marshaler interface, writing fields in the
// persistence record order.
func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", l.Ticker)
	w.Append("purchaseDate", l.Time)
	w.Append("costPerUnit", l.UnitCost)
	w.Append("quantity", l.Quantity)
	w.Append("commission", l.Commission)
	return w.MarshalJSON()
}
