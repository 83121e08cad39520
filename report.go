package stockemu

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"stockemu/renderer"
)

// NewDetailReport builds the point-in-time report of a portfolio: composition
// as of the timestamp, cost basis, and (when withValue is set) market value.
// Pricing is optional because a detail report must stay available when the
// quote provider is not.
func NewDetailReport(p *Portfolio, asOf Datetime, withValue bool) (*renderer.Detail, error) {
	report := &renderer.Detail{
		Title:     p.Title(),
		AsOf:      asOf.String(),
		CostBasis: p.CostBasis(asOf).String(),
	}

	composition := p.Composition()
	for _, ticker := range slices.Sorted(maps.Keys(composition)) {
		report.Rows = append(report.Rows, renderer.DetailRow{
			Ticker:   ticker,
			Quantity: composition[ticker].String(),
		})
	}

	if withValue {
		value, err := p.MarketValue(asOf)
		if err != nil {
			return nil, err
		}
		report.MarketValue = value.String()
	}
	return report, nil
}

// NewStrategiesReport builds the strategy list report of a portfolio.
func NewStrategiesReport(p *Portfolio) *renderer.Strategies {
	report := &renderer.Strategies{Portfolio: p.Title()}
	for _, name := range p.StrategyNames() {
		s, err := p.Strategy(name)
		if err != nil {
			continue // cannot happen, names come from the same map
		}
		var parts []string
		weights := s.Weights()
		for _, ticker := range s.Tickers() {
			parts = append(parts, fmt.Sprintf("%s %s", ticker, weights[ticker]))
		}
		report.Entries = append(report.Entries, renderer.StrategyEntry{
			Name:       s.Name(),
			Allocation: strings.Join(parts, ", "),
			Amount:     s.Amount().String(),
			Commission: s.Commission().String(),
		})
	}
	return report
}
