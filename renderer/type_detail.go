package renderer

// Detail represents a point-in-time portfolio report: the composition held as
// of a date, with the cost basis and market value on that date. All numbers
// arrive preformatted so the renderer stays free of money arithmetic.
type Detail struct {
	// Title of the portfolio.
	Title string `json:"title"`
	// AsOf is the valuation timestamp.
	AsOf string `json:"asOf"`
	// Rows lists the held tickers with their cumulative quantity.
	Rows []DetailRow `json:"rows"`
	// CostBasis is the total paid (principal + commissions) as of AsOf.
	CostBasis string `json:"costBasis"`
	// MarketValue is the mark-to-market worth as of AsOf; empty when the
	// report was built without pricing.
	MarketValue string `json:"marketValue,omitempty"`
}

// DetailRow represents a single held ticker.
type DetailRow struct {
	Ticker   string `json:"ticker"`
	Quantity string `json:"quantity"`
}

// Strategies represents the strategy list of one portfolio.
type Strategies struct {
	Portfolio string
	Entries   []StrategyEntry
}

// StrategyEntry is one named strategy row.
type StrategyEntry struct {
	Name       string
	Allocation string // e.g. "AAPL 50%, GOOG 50%"
	Amount     string
	Commission string
}
