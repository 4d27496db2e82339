package delivery

import (
	"fmt"
	"time"

	"embroidery/internal/pkg/errs"
)

const dayLayout = "2006-01-02"

// Day is a UTC calendar date. Deliveries for the same PO on the same Day
// share one document.
type Day struct {
	date time.Time
}

// DayOf returns the UTC calendar date containing t.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{date: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDay reads the YYYY-MM-DD form produced by String.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", fmt.Errorf("%q: %w", s, err))
	}
	return Day{date: t}, nil
}

func (d Day) String() string {
	return d.date.Format(dayLayout)
}

// Start is midnight UTC; End is the next midnight (exclusive).
func (d Day) Start() time.Time { return d.date }

func (d Day) End() time.Time { return d.date.AddDate(0, 0, 1) }

func (d Day) IsZero() bool { return d.date.IsZero() }

func (d Day) Equal(other Day) bool { return d.date.Equal(other.date) }
