package stockemu

import (
	"fmt"
	"time"
)

// Replayer applies strategies to portfolios, either as one-time buys or as a
// periodic dollar-cost-average schedule. The zero value is ready to use.
type Replayer struct {
	// Progress, when set, is called after each successful strategy
	// application with the timestamp that was invested. It lets an
	// interactive caller drive a progress display without the engine
	// knowing about terminals.
	Progress func(on Datetime)
}

// InvestOnce applies the strategy to the portfolio at the given timestamp:
// the strategy amount is split across its weighted tickers and bought at the
// next trading moment.
func (r *Replayer) InvestOnce(p *Portfolio, s Strategy, on Datetime) error {
	if err := p.InvestWeighted(on, s.Amount(), s.Weights(), s.Commission()); err != nil {
		return err
	}
	if r.Progress != nil {
		r.Progress(on)
	}
	return nil
}

// DollarCostAverage applies the strategy every frequencyDays from start until
// end (exclusive). A step landing on a weekend slides forward one day at a
// time before investing, so no lot is ever dated on a Saturday or Sunday. A
// zero end means "now".
//
// A failed step (typically an unavailable quote) aborts the remaining
// schedule; the buys already made are kept, not rolled back.
func (r *Replayer) DollarCostAverage(p *Portfolio, s Strategy, start, end Datetime, frequencyDays int) error {
	if frequencyDays <= 0 {
		return fmt.Errorf("%w: investment frequency cannot be negative or 0", ErrIllegalInput)
	}
	if start.IsZero() {
		return fmt.Errorf("%w: start date cannot be zero", ErrIllegalInput)
	}
	if end.IsZero() {
		end = Now()
	}

	current := start
	for current.Before(end) {
		switch current.Weekday() {
		case time.Saturday, time.Sunday:
			current = current.AddDays(1)
			continue
		}
		if err := r.InvestOnce(p, s, current); err != nil {
			return err
		}
		current = current.AddDays(frequencyDays)
	}
	return nil
}
