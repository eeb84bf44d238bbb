package scheduling

import (
	"errors"
	"time"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

var (
	// ErrInvalidDate signals an unparseable from date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidDayCount signals a non-positive day count.
	ErrInvalidDayCount = errors.New("number of days must be at least 1")
)

// ParseDateOrDateTime accepts a bare YYYY-MM-DD date, read as local midnight
// in loc, or a full RFC3339 instant.
func ParseDateOrDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(domain.DateISOFormat, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// Window produces numberOfDays consecutive local calendar days, as local
// midnights in loc, starting at from. A start earlier than now is silently
// clamped to the current local day.
func Window(from time.Time, numberOfDays int, loc *time.Location, now time.Time) ([]time.Time, error) {
	if numberOfDays < 1 {
		return nil, ErrInvalidDayCount
	}

	start := from
	if from.Before(now) {
		start = now
	}

	days := make([]time.Time, 0, numberOfDays)
	day := startOfDay(start.In(loc))
	for i := 0; i < numberOfDays; i++ {
		days = append(days, day)
		day = day.AddDate(0, 0, 1)
	}
	return days, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
