package maya

import (
	"fmt"

	"github.com/username/mayadate/pkg/mathutil"
)

// Gregorian is a proleptic Gregorian date with an astronomical year:
// 1 BCE is year 0, 2 BCE is year -1.
type Gregorian struct {
	Day   int
	Month int
	Year  int
}

// CivilToAstronomical converts a civil year with an era flag to an astronomical year.
func CivilToAstronomical(year int, bce bool) int {
	if bce {
		return 1 - year
	}
	return year
}

// Civil returns the civil year and whether it is BCE.
func (g Gregorian) Civil() (year int, bce bool) {
	if g.Year <= 0 {
		return 1 - g.Year, true
	}
	return g.Year, false
}

// String renders the date as "August 11, 3114 BCE".
func (g Gregorian) String() string {
	year, bce := g.Civil()
	era := "CE"
	if bce {
		era = "BCE"
	}
	return fmt.Sprintf("%s %d, %d %s", MonthName(g.Month), g.Day, year, era)
}

// GregorianToMDC converts a date under the GMT correlation.
func GregorianToMDC(day, month, year int) int {
	return GMT.GregorianToMDC(day, month, year)
}

// MDCToGregorian converts a day count under the GMT correlation.
func MDCToGregorian(mdc int) Gregorian {
	return GMT.MDCToGregorian(mdc)
}

// GregorianToMDC computes the Julian Day Number of the date and shifts it by
// the correlation. Field ranges are not validated: 31 February is simply
// 3 March (or 2 March in a leap year).
func (c Correlation) GregorianToMDC(day, month, year int) int {
	a := mathutil.FloorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + mathutil.FloorDiv(153*m+2, 5) + 365*y +
		mathutil.FloorDiv(y, 4) - mathutil.FloorDiv(y, 100) + mathutil.FloorDiv(y, 400) - 32045

	return c.MDC(jdn)
}

// MDCToGregorian inverts GregorianToMDC for every integer day count.
func (c Correlation) MDCToGregorian(mdc int) Gregorian {
	// Days since 1 March of astronomical year -4800, split into 400-year,
	// century, 4-year and year cycles.
	a := c.JDN(mdc) + 32044
	b := mathutil.FloorDiv(4*a+3, 146097)
	cc := a - mathutil.FloorDiv(146097*b, 4)
	d := mathutil.FloorDiv(4*cc+3, 1461)
	e := cc - mathutil.FloorDiv(1461*d, 4)
	m := mathutil.FloorDiv(5*e+2, 153)

	return Gregorian{
		Day:   e - mathutil.FloorDiv(153*m+2, 5) + 1,
		Month: m + 3 - 12*(m/10),
		Year:  100*b + d - 4800 + m/10,
	}
}
