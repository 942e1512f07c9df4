// Package maya converts between the Maya day count (MDC), the proleptic
// astronomical Gregorian calendar, the Long Count, the Tzolk'in, the Haab',
// the 819-day station cycle and the non-lunar supplementary series, and
// reconstructs candidate dates from a partial Calendar Round.
//
// All converters are pure. Only the Gregorian conversions depend on the
// correlation constant; the package-level helpers use GMT.
package maya

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Correlation is the Julian Day Number of MDC 0.
type Correlation int

const (
	// GMT is the Goodman-Martinez-Thompson correlation (11 August 3114 BCE).
	GMT Correlation = 584283
	// Lounsbury is the GMT variant two days later.
	Lounsbury Correlation = 584285
	// Spinden places the epoch about 260 years earlier.
	Spinden Correlation = 489384
)

// ErrUnknownCorrelation is returned when a correlation name cannot be resolved
var ErrUnknownCorrelation = errors.New("unknown correlation")

var correlationNames = map[string]Correlation{
	"gmt":       GMT,
	"lounsbury": Lounsbury,
	"spinden":   Spinden,
}

// ParseCorrelation accepts a known correlation name or a raw Julian Day Number.
func ParseCorrelation(s string) (Correlation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return GMT, nil
	}
	if c, ok := correlationNames[key]; ok {
		return c, nil
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCorrelation, s)
	}
	return Correlation(n), nil
}

// String returns the correlation name when it has one.
func (c Correlation) String() string {
	for name, v := range correlationNames {
		if v == c {
			return name
		}
	}
	return strconv.Itoa(int(c))
}

// JDN returns the Julian Day Number of the given MDC.
func (c Correlation) JDN(mdc int) int {
	return mdc + int(c)
}

// MDC returns the day count of the given Julian Day Number.
func (c Correlation) MDC(jdn int) int {
	return jdn - int(c)
}
