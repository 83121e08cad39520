package stockemu

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPortfolio_RoundTrip(t *testing.T) {
	p := newTestPortfolio(t, "Retirement")
	if err := p.BuyByAmount("AAPL", M(4000), MustParseDatetime("2014-02-03T12:34"), M(10)); err != nil {
		t.Fatal(err)
	}
	if err := p.ImportLot("GOOG", M(100), Q(30), MustParseDatetime("2014-03-03T11:00"), M(5)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("EncodePortfolio failed: %v", err)
	}

	got, err := DecodePortfolio(&buf, testQuotes())
	if err != nil {
		t.Fatalf("DecodePortfolio failed: %v", err)
	}

	if got.Title() != p.Title() {
		t.Errorf("title = %q, want %q", got.Title(), p.Title())
	}
	if len(got.Lots()) != len(p.Lots()) {
		t.Fatalf("got %d lots, want %d", len(got.Lots()), len(p.Lots()))
	}
	for ticker, want := range p.Composition() {
		if q := got.Composition()[ticker]; !q.Within(want, 1e-9) {
			t.Errorf("%s quantity = %s, want %s", ticker, q, want)
		}
	}
	asOf := MustParseDatetime("2014-04-01T10:00")
	if b, want := got.CostBasis(asOf), p.CostBasis(asOf); !b.Within(want, 1e-9) {
		t.Errorf("cost basis = %s, want %s", b, want)
	}
}

func TestEncodePortfolio_FieldOrder(t *testing.T) {
	p := newTestPortfolio(t, "Ordered")
	if err := p.ImportLot("AAPL", M(30), Q(10), MustParseDatetime("2014-02-03T12:34"), M(0)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// Field order is part of the format, files must diff cleanly.
	fields := []string{`"title"`, `"transactions"`, `"ticker"`, `"purchaseDate"`, `"costPerUnit"`, `"quantity"`, `"commission"`}
	last := -1
	for _, field := range fields {
		i := strings.Index(out, field)
		if i < 0 {
			t.Fatalf("encoded portfolio is missing %s:\n%s", field, out)
		}
		if i < last {
			t.Errorf("field %s out of order in:\n%s", field, out)
		}
		last = i
	}
}

func TestDecodePortfolio_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"bad ticker", `{"title":"X","transactions":[{"ticker":"aapl","purchaseDate":"2014-02-03T12:34","costPerUnit":30,"quantity":10,"commission":0}]}`},
		{"weekend purchase", `{"title":"X","transactions":[{"ticker":"AAPL","purchaseDate":"2014-02-01T12:34","costPerUnit":30,"quantity":10,"commission":0}]}`},
		{"zero quantity", `{"title":"X","transactions":[{"ticker":"AAPL","purchaseDate":"2014-02-03T12:34","costPerUnit":30,"quantity":0,"commission":0}]}`},
		{"missing title", `{"transactions":[]}`},
		{"not json", `not json at all`},
		{"second record invalid", `{"title":"X","transactions":[
			{"ticker":"AAPL","purchaseDate":"2014-02-03T12:34","costPerUnit":30,"quantity":10,"commission":0},
			{"ticker":"GOOG","purchaseDate":"2014-02-03T12:34","costPerUnit":-1,"quantity":10,"commission":0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePortfolio(strings.NewReader(tt.json), testQuotes())
			if err == nil {
				t.Fatal("DecodePortfolio accepted an invalid file")
			}
			// Nothing of a bad file survives.
			if p != nil {
				t.Errorf("DecodePortfolio returned a partial portfolio: %v", p.Title())
			}
		})
	}
}

func TestStrategy_RoundTrip(t *testing.T) {
	s, err := NewStrategy("Tech Heavy", map[string]Percent{"AAPL": 60, "GOOG": 40}, M(2000), M(5))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeStrategy(&buf, s); err != nil {
		t.Fatalf("EncodeStrategy failed: %v", err)
	}

	got, err := DecodeStrategy(&buf)
	if err != nil {
		t.Fatalf("DecodeStrategy failed: %v", err)
	}
	if got.Name() != "Tech Heavy" {
		t.Errorf("name = %q, want Tech Heavy", got.Name())
	}
	if !got.Amount().Equal(M(2000)) || !got.Commission().Equal(M(5)) {
		t.Errorf("amount/commission = %s/%s, want %s/%s", got.Amount(), got.Commission(), M(2000), M(5))
	}
	if w := got.Weights(); !w["AAPL"].Equal(60) || !w["GOOG"].Equal(40) {
		t.Errorf("weights = %v", w)
	}
}

func TestDecodeStrategy_Validates(t *testing.T) {
	// Weights summing to 45 fail file loading exactly like user input.
	bad := `{"strategyName":"short","tickerWeightsMap":{"AAPL":20,"GOOG":25},"investmentAmount":1000,"commission":0}`
	if _, err := DecodeStrategy(strings.NewReader(bad)); !errors.Is(err, ErrIllegalInput) {
		t.Errorf("DecodeStrategy error = %v, want ErrIllegalInput", err)
	}
}
