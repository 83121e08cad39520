package stockemu

import (
	"fmt"
	"time"
)

// Trading window bounds, hour granularity. The market opens at 09:00 and any
// timestamp within the 15:xx hour is still accepted, while 16:00 sharp is
// rejected. That is how the emulator has always behaved; files written with
// late-afternoon timestamps rely on it, so the hour-granular close is kept.
const (
	marketOpenHour  = 9
	lastTradingHour = 15
)

// CheckTradingMoment reports whether the timestamp is a valid trading moment:
// a weekday, within market hours, and not in the future. It returns
// ErrInvalidTradingTime otherwise.
func CheckTradingMoment(at Datetime) error {
	if at.IsZero() {
		return fmt.Errorf("%w: timestamp of purchase cannot be zero", ErrInvalidTradingTime)
	}
	switch at.Weekday() {
	case time.Saturday, time.Sunday:
		return fmt.Errorf("%w: cannot trade on weekends (%s)", ErrInvalidTradingTime, at)
	}
	if hour := at.Hour(); hour < marketOpenHour || hour > lastTradingHour {
		return fmt.Errorf("%w: trading is possible only between 9am and 4pm (%s)", ErrInvalidTradingTime, at)
	}
	if at.After(Now()) {
		return fmt.Errorf("%w: cannot trade on a future date or time (%s)", ErrInvalidTradingTime, at)
	}
	return nil
}

// NextTradingMoment advances day by day until the timestamp becomes a valid
// trading moment, keeping the clock time as supplied by the caller. The walk
// stops at the current wall-clock time, so a timestamp that can never become
// valid (e.g. an out-of-hours clock time) is returned as soon as it reaches
// the present.
func NextTradingMoment(at Datetime) Datetime {
	for at.Before(Now()) {
		if CheckTradingMoment(at) == nil {
			break
		}
		at = at.AddDays(1)
	}
	return at
}
