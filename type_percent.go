package stockemu

import "fmt"

// Percent is an allocation weight expressed in percentage points (50 means 50%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// weightSumTolerance is how far from 100 a strategy's weight sum may drift.
const weightSumTolerance = 0.01

// checkWeights validates a ticker→weight allocation map: tickers well formed,
// each weight in (0,100], and the sum within tolerance of 100.
func checkWeights(weights map[string]Percent) error {
	if len(weights) == 0 {
		return fmt.Errorf("%w: ticker weights cannot be empty", ErrIllegalInput)
	}
	var sum Percent
	for ticker, weight := range weights {
		if err := checkTicker(ticker); err != nil {
			return err
		}
		if weight <= 0 {
			return fmt.Errorf("%w: weight of %s has to be more than 0", ErrIllegalInput, ticker)
		}
		if weight > 100 {
			return fmt.Errorf("%w: weight of %s cannot exceed 100", ErrIllegalInput, ticker)
		}
		sum += weight
	}
	diff := float64(sum - 100)
	if diff < 0 {
		diff = -diff
	}
	if diff > weightSumTolerance {
		return fmt.Errorf("%w: ticker weights sum to %v, want 100", ErrIllegalInput, sum)
	}
	return nil
}
