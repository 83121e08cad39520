package stockemu

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Money and Quantity are plain JSON numbers in the record formats.
	decimal.MarshalJSONWithoutQuotes = true
}

// This file is the persistence boundary: it serializes portfolios and
// strategies to the flat JSON record formats and rebuilds them strictly
// through the public entry points (ImportLot, NewStrategy). It never reaches
// into internal state, so anything a file can express is also expressible
// through the API, and vice versa.
//
// Record formats:
//
//	portfolio: {"title": ..., "transactions": [{"ticker", "purchaseDate",
//	           "costPerUnit", "quantity", "commission"}, ...]}
//	strategy:  {"strategyName", "tickerWeightsMap", "investmentAmount",
//	           "commission"}

// EncodePortfolio writes the portfolio record to w.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	var obj jsonObjectWriter
	obj.Append("title", p.Title())
	obj.Append("transactions", p.Lots())
	b, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode portfolio %q: %w", p.Title(), err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("cannot encode portfolio %q: %w", p.Title(), err)
	}
	return nil
}

// jtransaction is the on-disk shape of one purchase record.
type jtransaction struct {
	Ticker       string   `json:"ticker"`
	PurchaseDate Datetime `json:"purchaseDate"`
	CostPerUnit  Money    `json:"costPerUnit"`
	Quantity     Quantity `json:"quantity"`
	Commission   Money    `json:"commission"`
}

// DecodePortfolio reads a portfolio record from r and rebuilds the portfolio,
// importing every transaction without re-querying quotes. If any record is
// invalid the partially built portfolio is discarded and an error returned.
func DecodePortfolio(r io.Reader, quotes QuoteSource) (*Portfolio, error) {
	var jp struct {
		Title        string         `json:"title"`
		Transactions []jtransaction `json:"transactions"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jp); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}

	p, err := NewPortfolio(jp.Title, quotes)
	if err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	for i, tx := range jp.Transactions {
		if err := p.ImportLot(tx.Ticker, tx.CostPerUnit, tx.Quantity, tx.PurchaseDate, tx.Commission); err != nil {
			return nil, fmt.Errorf("cannot decode portfolio %q: invalid transaction %d: %w", jp.Title, i, err)
		}
	}
	return p, nil
}

// EncodeStrategy writes the strategy record to w.
func EncodeStrategy(w io.Writer, s Strategy) error {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode strategy %q: %w", s.Name(), err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("cannot encode strategy %q: %w", s.Name(), err)
	}
	return nil
}

// DecodeStrategy reads a strategy record from r and rebuilds the strategy
// through NewStrategy, so file contents go through the same validation as
// user input.
func DecodeStrategy(r io.Reader) (Strategy, error) {
	var js struct {
		StrategyName     string             `json:"strategyName"`
		TickerWeightsMap map[string]Percent `json:"tickerWeightsMap"`
		InvestmentAmount Money              `json:"investmentAmount"`
		Commission       Money              `json:"commission"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&js); err != nil {
		return Strategy{}, fmt.Errorf("cannot decode strategy: %w", err)
	}
	s, err := NewStrategy(js.StrategyName, js.TickerWeightsMap, js.InvestmentAmount, js.Commission)
	if err != nil {
		return Strategy{}, fmt.Errorf("cannot decode strategy: %w", err)
	}
	return s, nil
}
