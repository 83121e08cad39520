package stockemu

import (
	"fmt"
	"maps"
	"slices"
)

// Strategy is a reusable weighted-allocation template: it spreads a fixed
// investment amount across tickers according to percentage weights, paying a
// flat commission per resulting purchase. A Strategy is an immutable value:
// the weight map is copied on construction so later mutations by the caller
// cannot reach it.
type Strategy struct {
	name       string
	weights    map[string]Percent
	amount     Money
	commission Money
}

// NewStrategy validates and builds a Strategy. The name must be non-blank,
// every weight in (0,100] with the sum within 0.01 of 100, the amount
// strictly positive and the commission non-negative.
func NewStrategy(name string, weights map[string]Percent, amount, commission Money) (Strategy, error) {
	if name == "" {
		return Strategy{}, fmt.Errorf("%w: strategy name cannot be empty", ErrIllegalInput)
	}
	if err := checkWeights(weights); err != nil {
		return Strategy{}, err
	}
	if err := checkAmount(amount); err != nil {
		return Strategy{}, err
	}
	if err := checkCommission(commission); err != nil {
		return Strategy{}, err
	}
	return Strategy{
		name:       name,
		weights:    maps.Clone(weights),
		amount:     amount,
		commission: commission,
	}, nil
}

// Name returns the strategy name.
func (s Strategy) Name() string { return s.name }

// Amount returns the total investment amount of one application.
func (s Strategy) Amount() Money { return s.amount }

// Commission returns the flat commission paid per resulting purchase.
func (s Strategy) Commission() Money { return s.commission }

// Weights returns a copy of the ticker→weight allocation.
func (s Strategy) Weights() map[string]Percent { return maps.Clone(s.weights) }

// Tickers returns the allocated tickers in alphabetical order.
func (s Strategy) Tickers() []string {
	return slices.Sorted(maps.Keys(s.weights))
}

// IsZero reports whether s is the zero value (no strategy).
func (s Strategy) IsZero() bool { return s.name == "" }

// MarshalJSON implements the json.Marshaler interface, writing fields in the
// persistence record order.
func (s Strategy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("strategyName", s.name)
	w.Append("tickerWeightsMap", s.weights)
	w.Append("investmentAmount", s.amount)
	w.Append("commission", s.commission)
	return w.MarshalJSON()
}
