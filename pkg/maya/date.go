package maya

import (
	"time"

	"github.com/username/mayadate/pkg/dateutil"
)

// Date is an immutable snapshot of one day in every supported calendar.
// All fields derive from the day count; "setting" a date builds a new Date.
type Date struct {
	corr    Correlation
	mdc     int
	greg    Gregorian
	lc      LongCount
	tzolkin Tzolkin
	haab    Haab
	eight   EightCycle
	supp    Supplementary
}

// FromMDC builds the snapshot of a day count.
func (c Correlation) FromMDC(mdc int) Date {
	return Date{
		corr:    c,
		mdc:     mdc,
		greg:    c.MDCToGregorian(mdc),
		lc:      LongCountOf(mdc),
		tzolkin: TzolkinOf(mdc),
		haab:    HaabOf(mdc),
		eight:   EightCycleOf(mdc),
		supp:    SupplementaryOf(mdc),
	}
}

// FromLongCount builds the snapshot of a [baktun, katun, tun, winal, kin]
// slice. Any other length yields MDC 0.
func (c Correlation) FromLongCount(l []int) Date {
	lc, _ := LongCountFromSlice(l)
	return c.FromMDC(lc.MDC())
}

// FromGregorian builds the snapshot of an astronomical Gregorian date.
// Out-of-range fields roll over, so the stored date is always normalized.
func (c Correlation) FromGregorian(day, month, year int) Date {
	return c.FromMDC(c.GregorianToMDC(day, month, year))
}

// FromCivil builds the snapshot of a civil date with an era flag.
func (c Correlation) FromCivil(day, month, year int, bce bool) Date {
	return c.FromGregorian(day, month, CivilToAstronomical(year, bce))
}

// FromTime builds the snapshot of the calendar day of t in its location.
func (c Correlation) FromTime(t time.Time) Date {
	return c.FromGregorian(t.Day(), int(t.Month()), t.Year())
}

// Today builds the snapshot of the current local date.
func (c Correlation) Today() Date {
	return c.FromTime(dateutil.Today())
}

// FromMDC uses the GMT correlation.
func FromMDC(mdc int) Date { return GMT.FromMDC(mdc) }

// FromLongCount uses the GMT correlation.
func FromLongCount(l []int) Date { return GMT.FromLongCount(l) }

// FromGregorian uses the GMT correlation.
func FromGregorian(day, month, year int) Date { return GMT.FromGregorian(day, month, year) }

// FromCivil uses the GMT correlation.
func FromCivil(day, month, year int, bce bool) Date { return GMT.FromCivil(day, month, year, bce) }

// FromTime uses the GMT correlation.
func FromTime(t time.Time) Date { return GMT.FromTime(t) }

// Today uses the GMT correlation.
func Today() Date { return GMT.Today() }

// WithMDC returns the snapshot of another day under the same correlation.
func (d Date) WithMDC(mdc int) Date { return d.corr.FromMDC(mdc) }

// Add moves the date by n days.
func (d Date) Add(n int) Date { return d.WithMDC(d.mdc + n) }

// Next returns the following day.
func (d Date) Next() Date { return d.Add(1) }

// Prev returns the preceding day.
func (d Date) Prev() Date { return d.Add(-1) }

// Station returns the snapshot of the last 819-day station.
func (d Date) Station() Date { return d.WithMDC(d.eight.Station) }

func (d Date) Correlation() Correlation { return d.corr }
func (d Date) MDC() int { return d.mdc }
func (d Date) Gregorian() Gregorian { return d.greg }
func (d Date) LongCount() LongCount { return d.lc }
func (d Date) Tzolkin() Tzolkin { return d.tzolkin }
func (d Date) Haab() Haab { return d.haab }
func (d Date) EightCycle() EightCycle { return d.eight }
func (d Date) Supplementary() Supplementary { return d.supp }
func (d Date) RoundPosition() int { return RoundPositionOf(d.mdc) }
func (d Date) Borders() (first, last int) { return RoundBorders(d.mdc) }
func (d Date) LongCountString() string { return d.lc.String() }
func (d Date) GregorianString() string { return d.greg.String() }
func (d Date) SupplementaryString() string { return d.supp.String() }
func (d Date) EightCycleString(l Language) string { return d.eight.Format(l) }

// CalendarRoundString renders the Tzolk'in and Haab' pair.
func (d Date) CalendarRoundString() string {
	return CalendarRoundString(d.tzolkin, d.haab)
}

// String renders the Long Count followed by the Calendar Round.
func (d Date) String() string {
	return d.LongCountString() + "  " + d.CalendarRoundString()
}
