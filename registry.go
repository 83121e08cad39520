package stockemu

import (
	"fmt"
	"strings"
)

// Registry owns the set of named portfolios and is the facade a UI or CLI
// layer calls. Portfolios are identified by a zero-based index into insertion
// order; no removal operation exists, so indices stay stable for the
// registry's lifetime.
//
// Like the rest of the engine, a Registry assumes a single logical caller and
// provides no internal locking.
type Registry struct {
	portfolios []*Portfolio
	quotes     QuoteSource
	replayer   Replayer
}

// NewRegistry creates an empty registry. Every portfolio it creates prices
// its purchases through quotes.
func NewRegistry(quotes QuoteSource) *Registry {
	return &Registry{quotes: quotes}
}

// checkIndex validates a zero-based portfolio index.
func (r *Registry) checkIndex(index int) error {
	if index < 0 || index >= len(r.portfolios) {
		return fmt.Errorf("%w: %d (have %d portfolios)", ErrInvalidPortfolioIndex, index, len(r.portfolios))
	}
	return nil
}

// CreatePortfolio appends a new empty portfolio with the given title. The
// title must be non-blank after trimming and not already in use (exact,
// case-sensitive match). Returns true on success.
func (r *Registry) CreatePortfolio(title string) (bool, error) {
	if strings.TrimSpace(title) == "" {
		return false, fmt.Errorf("%w: portfolio title cannot be blank", ErrIllegalInput)
	}
	for _, p := range r.portfolios {
		if p.Title() == title {
			return false, fmt.Errorf("%w: portfolio title %q already exists", ErrIllegalInput, title)
		}
	}
	p, err := NewPortfolio(title, r.quotes)
	if err != nil {
		return false, err
	}
	r.portfolios = append(r.portfolios, p)
	return true, nil
}

// AddPortfolio appends an already-built portfolio (typically decoded from a
// file). The same title-uniqueness rule as CreatePortfolio applies.
func (r *Registry) AddPortfolio(p *Portfolio) error {
	for _, q := range r.portfolios {
		if q.Title() == p.Title() {
			return fmt.Errorf("%w: portfolio title %q already exists", ErrIllegalInput, p.Title())
		}
	}
	r.portfolios = append(r.portfolios, p)
	return nil
}

// Portfolio returns the portfolio at the given index.
func (r *Registry) Portfolio(index int) (*Portfolio, error) {
	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	return r.portfolios[index], nil
}

// Count returns the number of portfolios.
func (r *Registry) Count() int { return len(r.portfolios) }

// ListPortfolios returns the portfolio titles in insertion order.
func (r *Registry) ListPortfolios() []string {
	titles := make([]string, len(r.portfolios))
	for i, p := range r.portfolios {
		titles[i] = p.Title()
	}
	return titles
}

// BuyStock purchases amount dollars of ticker in the indexed portfolio.
func (r *Registry) BuyStock(index int, ticker string, amount Money, at Datetime, commission Money) error {
	p, err := r.Portfolio(index)
	if err != nil {
		return err
	}
	return p.BuyByAmount(ticker, amount, at, commission)
}

// ImportStock records a known purchase in the indexed portfolio without a
// quote lookup.
func (r *Registry) ImportStock(index int, ticker string, unitCost Money, quantity Quantity, at Datetime, commission Money) error {
	p, err := r.Portfolio(index)
	if err != nil {
		return err
	}
	return p.ImportLot(ticker, unitCost, quantity, at, commission)
}

// Composition returns the ticker→quantity snapshot of the indexed portfolio.
func (r *Registry) Composition(index int) (map[string]Quantity, error) {
	p, err := r.Portfolio(index)
	if err != nil {
		return nil, err
	}
	return p.Composition(), nil
}

// CostBasis returns the cost basis of the indexed portfolio as of a timestamp.
func (r *Registry) CostBasis(index int, asOf Datetime) (Money, error) {
	p, err := r.Portfolio(index)
	if err != nil {
		return Money{}, err
	}
	return p.CostBasis(asOf), nil
}

// MarketValue returns the market value of the indexed portfolio as of a timestamp.
func (r *Registry) MarketValue(index int, asOf Datetime) (Money, error) {
	p, err := r.Portfolio(index)
	if err != nil {
		return Money{}, err
	}
	return p.MarketValue(asOf)
}

// DefineStrategy validates and stores a strategy in the indexed portfolio,
// overwriting any previous strategy with the same name.
func (r *Registry) DefineStrategy(index int, name string, weights map[string]Percent, amount, commission Money) error {
	p, err := r.Portfolio(index)
	if err != nil {
		return err
	}
	s, err := NewStrategy(name, weights, amount, commission)
	if err != nil {
		return err
	}
	return p.DefineStrategy(s)
}

// ListStrategies returns the strategy names of the indexed portfolio in
// alphabetical order.
func (r *Registry) ListStrategies(index int) ([]string, error) {
	p, err := r.Portfolio(index)
	if err != nil {
		return nil, err
	}
	return p.StrategyNames(), nil
}

// InvestWithStrategy applies the named strategy of the indexed portfolio once
// at the given timestamp.
func (r *Registry) InvestWithStrategy(index int, name string, on Datetime) error {
	p, err := r.Portfolio(index)
	if err != nil {
		return err
	}
	s, err := p.Strategy(name)
	if err != nil {
		return err
	}
	return r.replayer.InvestOnce(p, s, on)
}

// DollarCostAverage replays the named strategy of the indexed portfolio every
// frequencyDays from start until end (zero end means now).
func (r *Registry) DollarCostAverage(index int, name string, start, end Datetime, frequencyDays int) error {
	p, err := r.Portfolio(index)
	if err != nil {
		return err
	}
	s, err := p.Strategy(name)
	if err != nil {
		return err
	}
	return r.replayer.DollarCostAverage(p, s, start, end, frequencyDays)
}

// SetProgress installs a progress callback invoked after each successful
// strategy application during replay.
func (r *Registry) SetProgress(f func(on Datetime)) { r.replayer.Progress = f }
