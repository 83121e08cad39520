package stockemu

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// DatetimeFormat is the format used for purchase timestamps, minute granularity.
const DatetimeFormat = "2006-01-02T15:04"

// datetimeReadFormats are accepted on input; files written by older revisions
// carry seconds.
var datetimeReadFormats = []string{DatetimeFormat, "2006-01-02T15:04:05"}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in date RFC3339
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// Datetime is a purchase timestamp: a calendar date plus a clock time with
// minute granularity. It carries no timezone, a trading moment reads the same
// everywhere.
type Datetime struct {
	t time.Time
}

// NewDatetime returns a Datetime for the given calendar date and clock time.
func NewDatetime(year int, month time.Month, day, hour, min int) Datetime {
	return Datetime{t: time.Date(year, month, day, hour, min, 0, 0, time.UTC)}
}

// Now returns the current wall-clock moment.
func Now() Datetime {
	n := time.Now()
	return NewDatetime(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute())
}

// Date returns the day portion of the timestamp.
func (dt Datetime) Date() Date { return NewDate(dt.t.Date()) }

// Weekday returns the day of the week.
func (dt Datetime) Weekday() time.Weekday { return dt.t.Weekday() }

// Hour returns the clock hour in [0,23].
func (dt Datetime) Hour() int { return dt.t.Hour() }

// IsZero reports whether dt is the zero value.
func (dt Datetime) IsZero() bool { return dt.t.IsZero() }

// Before reports whether dt is strictly before x.
func (dt Datetime) Before(x Datetime) bool { return dt.t.Before(x.t) }

// After reports whether dt is strictly after x.
func (dt Datetime) After(x Datetime) bool { return dt.t.After(x.t) }

// AddDays returns a new Datetime the given number of days later, same clock time.
func (dt Datetime) AddDays(days int) Datetime { return Datetime{t: dt.t.AddDate(0, 0, days)} }

// String formats the timestamp in its canonical "2006-01-02T15:04" form.
func (dt Datetime) String() string { return dt.t.Format(DatetimeFormat) }

// ParseDatetime parses a purchase timestamp, with or without seconds.
// Seconds are dropped, Datetime is minute-granular.
func ParseDatetime(str string) (Datetime, error) {
	for _, format := range datetimeReadFormats {
		if t, err := time.Parse(format, str); err == nil {
			return NewDatetime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()), nil
		}
	}
	return Datetime{}, fmt.Errorf("invalid datetime %q want format %q", str, DatetimeFormat)
}

// MustParseDatetime is like ParseDatetime but panics on error.
func MustParseDatetime(str string) Datetime {
	dt, err := ParseDatetime(str)
	if err != nil {
		panic(err.Error())
	}
	return dt
}

// MarshalJSON implements the json.Marshaler interface.
func (dt Datetime) MarshalJSON() ([]byte, error) { return json.Marshal(dt.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface.
func (dt *Datetime) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := ParseDatetime(str)
	if err != nil {
		return err
	}
	*dt = p
	return nil
}
