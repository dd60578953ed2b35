package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidStayRange = errors.New("check-in must be before check-out")
	ErrStayTooShort     = errors.New("stay is shorter than the property minimum")
	ErrStayTooLong      = errors.New("stay is longer than the property maximum")
)

const (
	daysPerWeek = 7
	// Calendar months are priced as 30-day blocks everywhere in the
	// marketplace; stay-length limits use the same convention.
	daysPerMonth = 30
)

// StayRange is a half-open date interval [checkIn, checkOut): the check-out
// day itself is never occupied. Times of day are insignificant; both ends are
// normalized to midnight UTC.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !in.Before(out) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r StayRange) CheckIn() time.Time  { return r.checkIn }
func (r StayRange) CheckOut() time.Time { return r.checkOut }

// Nights is the inclusive-exclusive day count of the range.
func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Dates lists every occupied date, check-out excluded.
func (r StayRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r StayRange) Contains(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

// ValidateStayLength checks the range against a property's stay constraints.
// A zero minimum or maximum disables that bound.
func (r StayRange) ValidateStayLength(minimumWeeks, maximumMonths int) error {
	nights := r.Nights()
	if minimumWeeks > 0 && nights < minimumWeeks*daysPerWeek {
		return ErrStayTooShort
	}
	if maximumMonths > 0 && nights > maximumMonths*daysPerMonth {
		return ErrStayTooLong
	}
	return nil
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyInt(n int) Money {
	return Money{cents: m.cents * int64(n)}
}
