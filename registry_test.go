package stockemu

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistry_CreatePortfolio(t *testing.T) {
	r := NewRegistry(testQuotes())

	ok, err := r.CreatePortfolio("Retirement")
	if err != nil || !ok {
		t.Fatalf("CreatePortfolio = (%v, %v), want (true, nil)", ok, err)
	}
	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", r.Count())
	}

	tests := []struct {
		name  string
		title string
	}{
		{"duplicate title", "Retirement"},
		{"empty title", ""},
		{"blank title", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := r.CreatePortfolio(tt.title)
			if ok || !errors.Is(err, ErrIllegalInput) {
				t.Errorf("CreatePortfolio(%q) = (%v, %v), want (false, ErrIllegalInput)", tt.title, ok, err)
			}
		})
	}

	// A different title is fine.
	if _, err := r.CreatePortfolio("College Fund"); err != nil {
		t.Fatalf("CreatePortfolio failed: %v", err)
	}
	want := []string{"Retirement", "College Fund"}
	if got := r.ListPortfolios(); !slices.Equal(got, want) {
		t.Errorf("ListPortfolios() = %v, want %v", got, want)
	}
}

func TestRegistry_IndexValidation(t *testing.T) {
	r := NewRegistry(testQuotes())
	r.CreatePortfolio("Only")

	for _, index := range []int{-1, 1, 42} {
		if _, err := r.Portfolio(index); !errors.Is(err, ErrInvalidPortfolioIndex) {
			t.Errorf("Portfolio(%d) error = %v, want ErrInvalidPortfolioIndex", index, err)
		}
	}
	if _, err := r.Composition(1); !errors.Is(err, ErrInvalidPortfolioIndex) {
		t.Errorf("Composition(1) error = %v, want ErrInvalidPortfolioIndex", err)
	}
	if err := r.BuyStock(1, "AAPL", M(100), MustParseDatetime("2014-02-03T10:00"), M(0)); !errors.Is(err, ErrInvalidPortfolioIndex) {
		t.Errorf("BuyStock(1, ...) error = %v, want ErrInvalidPortfolioIndex", err)
	}
}

func TestRegistry_BuyAndReport(t *testing.T) {
	r := NewRegistry(testQuotes())
	r.CreatePortfolio("Main")

	at := MustParseDatetime("2014-02-03T10:00")
	if err := r.BuyStock(0, "AAPL", M(3000), at, M(0)); err != nil {
		t.Fatal(err)
	}
	if err := r.ImportStock(0, "GOOG", M(100), Q(30), at, M(0)); err != nil {
		t.Fatal(err)
	}

	comp, err := r.Composition(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := comp["AAPL"]; !got.Within(Q(100), 1e-6) {
		t.Errorf("AAPL quantity = %s, want 100", got)
	}

	asOf := MustParseDatetime("2014-03-01T10:00")
	basis, err := r.CostBasis(0, asOf)
	if err != nil {
		t.Fatal(err)
	}
	if !basis.Equal(M(6000)) {
		t.Errorf("cost basis = %s, want %s", basis, M(6000))
	}

	value, err := r.MarketValue(0, asOf)
	if err != nil {
		t.Fatal(err)
	}
	if !value.Within(M(6000), 1e-6) {
		t.Errorf("market value = %s, want %s", value, M(6000))
	}
}

func TestRegistry_StrategiesArePerPortfolio(t *testing.T) {
	r := NewRegistry(testQuotes())
	r.CreatePortfolio("First")
	r.CreatePortfolio("Second")

	weights := map[string]Percent{"AAPL": 100}
	if err := r.DefineStrategy(0, "growth", weights, M(500), M(0)); err != nil {
		t.Fatal(err)
	}

	got, err := r.ListStrategies(0)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"growth"}) {
		t.Errorf("ListStrategies(0) = %v, want [growth]", got)
	}

	// The strategy does not leak into the other portfolio.
	got, err = r.ListStrategies(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("ListStrategies(1) = %v, want none", got)
	}
	if err := r.InvestWithStrategy(1, "growth", MustParseDatetime("2014-02-03T10:00")); !errors.Is(err, ErrInvalidStrategyName) {
		t.Errorf("InvestWithStrategy on wrong portfolio error = %v, want ErrInvalidStrategyName", err)
	}
}

func TestRegistry_InvestWithStrategy(t *testing.T) {
	r := NewRegistry(testQuotes())
	r.CreatePortfolio("Main")

	if err := r.DefineStrategy(0, "balanced", map[string]Percent{"AAPL": 60, "GOOG": 40}, M(1000), M(0)); err != nil {
		t.Fatal(err)
	}
	if err := r.InvestWithStrategy(0, "balanced", MustParseDatetime("2014-02-03T10:00")); err != nil {
		t.Fatal(err)
	}

	p, err := r.Portfolio(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(p.Lots()); got != 2 {
		t.Errorf("got %d lots, want 2", got)
	}
}

func TestRegistry_DollarCostAverage(t *testing.T) {
	r := NewRegistry(testQuotes())
	r.CreatePortfolio("Main")

	var count int
	r.SetProgress(func(on Datetime) { count++ })

	if err := r.DefineStrategy(0, "balanced", map[string]Percent{"AAPL": 60, "GOOG": 40}, M(1000), M(0)); err != nil {
		t.Fatal(err)
	}
	start := MustParseDatetime("2014-01-01T10:00")
	end := MustParseDatetime("2014-02-01T10:00")
	if err := r.DollarCostAverage(0, "balanced", start, end, 7); err != nil {
		t.Fatal(err)
	}

	if count != 5 {
		t.Errorf("progress called %d times, want 5", count)
	}
	if err := r.DollarCostAverage(0, "unknown", start, end, 7); !errors.Is(err, ErrInvalidStrategyName) {
		t.Errorf("DollarCostAverage with unknown strategy error = %v, want ErrInvalidStrategyName", err)
	}
}
