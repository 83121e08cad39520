package stockemu

import (
	"fmt"
	"maps"
	"slices"
)

// Portfolio is an accumulating ledger of purchase lots. Lots are only ever
// appended, in purchase order (which is not necessarily chronological), and a
// running quantity per ticker is maintained incrementally on every insertion.
//
// A Portfolio also owns its named strategies: a strategy defined here applies
// to this portfolio only.
//
// A Portfolio is not safe for concurrent use; the engine assumes a single
// logical caller.
type Portfolio struct {
	title      string
	lots       []Lot
	holdings   map[string]Quantity
	strategies map[string]Strategy
	quotes     QuoteSource
}

// NewPortfolio creates an empty portfolio with the given title, pricing
// purchases through quotes.
func NewPortfolio(title string, quotes QuoteSource) (*Portfolio, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: portfolio title cannot be empty", ErrIllegalInput)
	}
	if quotes == nil {
		return nil, fmt.Errorf("%w: portfolio requires a quote source", ErrIllegalInput)
	}
	return &Portfolio{
		title:      title,
		holdings:   make(map[string]Quantity),
		strategies: make(map[string]Strategy),
		quotes:     quotes,
	}, nil
}

// Title returns the portfolio title, set once at construction.
func (p *Portfolio) Title() string { return p.title }

// Lots returns a copy of the purchase list, in insertion order.
func (p *Portfolio) Lots() []Lot { return slices.Clone(p.lots) }

// Composition returns a snapshot of the running quantity held per ticker.
func (p *Portfolio) Composition() map[string]Quantity { return maps.Clone(p.holdings) }

// append records a lot and updates the running quantity for its ticker.
func (p *Portfolio) append(l Lot) {
	p.lots = append(p.lots, l)
	p.holdings[l.Ticker] = p.holdings[l.Ticker].Add(l.Quantity)
}

// BuyByAmount purchases amount dollars worth of ticker at the given trading
// moment, paying commission on top. The unit price comes from the portfolio's
// QuoteSource for the day of the timestamp; the resulting quantity is
// amount/price. All validation happens before the quote lookup, so a failed
// buy leaves the portfolio untouched.
func (p *Portfolio) BuyByAmount(ticker string, amount Money, at Datetime, commission Money) error {
	if err := checkTicker(ticker); err != nil {
		return err
	}
	if err := CheckTradingMoment(at); err != nil {
		return err
	}
	if err := checkAmount(amount); err != nil {
		return err
	}
	if err := checkCommission(commission); err != nil {
		return err
	}

	price, err := p.quotes.Price(at.Date(), ticker)
	if err != nil {
		return fmt.Errorf("%w for %s on %s: %w", ErrQuoteUnavailable, ticker, at.Date(), err)
	}

	p.append(Lot{
		Ticker:     ticker,
		Time:       at,
		UnitCost:   price,
		Quantity:   amount.DivPrice(price),
		Commission: commission,
	})
	return nil
}

// ImportLot records a purchase with a known unit cost and quantity, skipping
// the quote lookup. It is the entry point the persistence layer uses to
// rebuild a portfolio from trusted records.
func (p *Portfolio) ImportLot(ticker string, unitCost Money, quantity Quantity, at Datetime, commission Money) error {
	if err := checkTicker(ticker); err != nil {
		return err
	}
	if err := CheckTradingMoment(at); err != nil {
		return err
	}
	if err := checkAmount(unitCost); err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", ErrIllegalInput, quantity)
	}
	if err := checkCommission(commission); err != nil {
		return err
	}

	p.append(Lot{
		Ticker:     ticker,
		Time:       at,
		UnitCost:   unitCost,
		Quantity:   quantity,
		Commission: commission,
	})
	return nil
}

// CostBasis returns the total paid (principal plus commissions) for all lots
// purchased strictly before asOf. A lot purchased exactly at asOf is excluded.
func (p *Portfolio) CostBasis(asOf Datetime) Money {
	var total Money
	for _, l := range p.lots {
		if l.Time.Before(asOf) {
			total = total.Add(l.CostBasis())
		}
	}
	return total
}

// MarketValue returns the mark-to-market worth of all lots purchased strictly
// before asOf, priced on asOf's day. The price is re-queried per lot; caching
// across lots of the same ticker is the QuoteSource's business.
func (p *Portfolio) MarketValue(asOf Datetime) (Money, error) {
	var total Money
	for _, l := range p.lots {
		if !l.Time.Before(asOf) {
			continue
		}
		price, err := p.quotes.Price(asOf.Date(), l.Ticker)
		if err != nil {
			return Money{}, fmt.Errorf("%w for %s on %s: %w", ErrQuoteUnavailable, l.Ticker, asOf.Date(), err)
		}
		total = total.Add(price.Mul(l.Quantity))
	}
	return total, nil
}

// InvestWeighted splits total across the weighted tickers and buys each part
// at the next trading moment on or after the given timestamp. The adjusted
// timestamp is computed once, so all resulting lots share it. Tickers are
// bought in alphabetical order.
//
// Input validation happens before the first buy; a quote failure mid-way
// aborts the remaining buys but keeps the ones already made.
func (p *Portfolio) InvestWeighted(at Datetime, total Money, weights map[string]Percent, commission Money) error {
	if err := checkAmount(total); err != nil {
		return err
	}
	if err := checkCommission(commission); err != nil {
		return err
	}
	if err := checkWeights(weights); err != nil {
		return err
	}

	adjusted := NextTradingMoment(at)
	for _, ticker := range slices.Sorted(maps.Keys(weights)) {
		if err := p.BuyByAmount(ticker, total.Portion(weights[ticker]), adjusted, commission); err != nil {
			return err
		}
	}
	return nil
}

// InvestEqual splits total equally across the tickers currently held and buys
// each part at the next trading moment on or after the given timestamp.
func (p *Portfolio) InvestEqual(at Datetime, total Money, commission Money) error {
	if err := checkAmount(total); err != nil {
		return err
	}
	if err := checkCommission(commission); err != nil {
		return err
	}
	if len(p.holdings) == 0 {
		return fmt.Errorf("%w: portfolio %q holds no stock to invest in", ErrIllegalInput, p.title)
	}

	weights := make(map[string]Percent, len(p.holdings))
	for ticker := range p.holdings {
		weights[ticker] = Percent(100.0 / float64(len(p.holdings)))
	}
	return p.InvestWeighted(at, total, weights, commission)
}

// DefineStrategy stores the strategy under its name, replacing any previous
// strategy of the same name.
func (p *Portfolio) DefineStrategy(s Strategy) error {
	if s.IsZero() {
		return fmt.Errorf("%w: cannot define a zero strategy", ErrIllegalInput)
	}
	p.strategies[s.Name()] = s
	return nil
}

// Strategy returns the named strategy, or ErrInvalidStrategyName.
func (p *Portfolio) Strategy(name string) (Strategy, error) {
	s, ok := p.strategies[name]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: no strategy %q in portfolio %q", ErrInvalidStrategyName, name, p.title)
	}
	return s, nil
}

// StrategyNames returns the names of the defined strategies in alphabetical order.
func (p *Portfolio) StrategyNames() []string {
	return slices.Sorted(maps.Keys(p.strategies))
}
