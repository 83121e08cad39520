package stockemu

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		input   string
		want    Datetime
		wantErr bool
	}{
		{"2014-02-03T12:34", NewDatetime(2014, time.February, 3, 12, 34), false},
		{"2014-02-03T12:34:56", NewDatetime(2014, time.February, 3, 12, 34), false}, // seconds accepted, dropped
		{"2014-02-03", Datetime{}, true},
		{"2014-02-03 12:34", Datetime{}, true},
		{"not a datetime", Datetime{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDatetime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDatetime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDatetime(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDatetime_String(t *testing.T) {
	dt := NewDatetime(2014, time.February, 3, 9, 5)
	if got := dt.String(); got != "2014-02-03T09:05" {
		t.Errorf("String() = %q, want 2014-02-03T09:05", got)
	}
}

func TestDatetime_Date(t *testing.T) {
	dt := MustParseDatetime("2014-02-03T12:34")
	if got := dt.Date(); got != NewDate(2014, time.February, 3) {
		t.Errorf("Date() = %s, want 2014-02-03", got)
	}
}

func TestDatetime_AddDays(t *testing.T) {
	dt := MustParseDatetime("2014-02-27T10:00")
	// Rolls over the month boundary, keeps the clock time.
	if got := dt.AddDays(3); got != MustParseDatetime("2014-03-02T10:00") {
		t.Errorf("AddDays(3) = %s, want 2014-03-02T10:00", got)
	}
}

func TestDatetime_JSON(t *testing.T) {
	dt := MustParseDatetime("2014-02-03T12:34")

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2014-02-03T12:34"` {
		t.Errorf("marshaled datetime = %s", b)
	}

	var got Datetime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got != dt {
		t.Errorf("round trip = %s, want %s", got, dt)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParseDate("2014-02-03")
	b := MustParseDate("2014-02-04")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before() is not a strict order on %s and %s", a, b)
	}
	if !b.After(a) {
		t.Errorf("%s should be after %s", b, a)
	}
}

func TestDate_Add(t *testing.T) {
	d := MustParseDate("2014-12-30")
	if got := d.Add(3); got != MustParseDate("2015-01-02") {
		t.Errorf("Add(3) = %s, want 2015-01-02", got)
	}
}
