package maya

import (
	"errors"
	"fmt"

	"github.com/username/mayadate/pkg/mathutil"
)

// CalendarRoundDays is lcm(260, 365).
const CalendarRoundDays = 18980

// roundPhase aligns Calendar Round position 0 with MDC 0: 19 Haab' years plus
// the Haab' epoch phase.
const roundPhase = 19*HaabDays + haabEpoch

const (
	// LordScanLimit is the joint period of the Calendar Round and the Lords
	// of the Night. EstimateWithLord never scans less.
	LordScanLimit = LordsOfTheNight * CalendarRoundDays

	// MaxCandidates bounds Query.Count.
	MaxCandidates = 498
)

// ErrInvalidQuery is returned by Reconstruct for out-of-range input
var ErrInvalidQuery = errors.New("invalid calendar round query")

// RoundPositionOf returns the day's position in the Calendar Round, [0,18979].
func RoundPositionOf(mdc int) int {
	return mathutil.FloorMod(mdc, CalendarRoundDays)
}

// RoundPosition recovers the Calendar Round position from a Tzolk'in number
// and name index and a Haab' day and month index. Combinations that never
// occur (a Tzolk'in and Haab' of mismatched parity mod 5) still produce a
// position; it just will not render back to the same pair. Query.Validate
// rejects them.
func RoundPosition(number, name, haabDay, haabMonth int) int {
	tpos := mathutil.FloorMod(40*((number-1)-(name-1))+(name-1), TzolkinDays)
	hpos := mathutil.FloorMod(haabDay+20*haabMonth, HaabDays)

	// 365 = 1 (mod 52), so k Haab' years after hpos lands on tpos mod 52.
	k := mathutil.FloorMod(tpos-hpos, 52)
	return mathutil.FloorMod(HaabDays*k+hpos-roundPhase, CalendarRoundDays)
}

// RoundBorders returns the first and last MDC of the Calendar Round containing
// mdc. Negative day counts floor into the preceding round, so RoundBorders(-1)
// is (-18980, -1).
func RoundBorders(mdc int) (first, last int) {
	first = mdc - RoundPositionOf(mdc)
	return first, first + CalendarRoundDays - 1
}

// Estimate lists the first count day counts at or after 0 with the given
// Calendar Round position. A count below 1 is treated as 1.
func Estimate(round, count int) []int {
	if count <= 0 {
		count = 1
	}
	round = RoundPositionOf(round)

	out := make([]int, count)
	for i := range out {
		out[i] = round + i*CalendarRoundDays
	}
	return out
}

// EstimateWithLord is Estimate restricted to days ruled by Lord of the Night
// G<lord>. Lord 9 (and 0) match day counts divisible by nine. Consecutive
// Calendar Rounds step the lord by 2 mod 9, so every nine rounds hold exactly
// one match; a lord outside 0..9 never matches and the result is shorter than
// count.
func EstimateWithLord(round, count, lord int) []int {
	if count <= 0 {
		count = 1
	}
	round = RoundPositionOf(round)
	target := lord
	if target == LordsOfTheNight {
		target = 0
	}

	limit := LordScanLimit
	if need := LordsOfTheNight * count; need > limit {
		limit = need
	}

	out := make([]int, 0, count)
	for z := 0; len(out) < count && z < limit; z++ {
		candidate := round + z*CalendarRoundDays
		if mathutil.FloorMod(candidate, LordsOfTheNight) == target {
			out = append(out, candidate)
		}
	}
	return out
}

// Query describes a partially known date: a Calendar Round with an optional
// Lord of the Night.
type Query struct {
	Number    int // Tzolk'in number, 1..13
	Name      int // Tzolk'in name index, 0..19
	HaabDay   int // 0..19
	HaabMonth int // 0..18
	Count     int // candidates wanted, 1..MaxCandidates
	Lord      int // 0 for any, else 1..9
}

// Validate reports the first out-of-range field, or ErrInvalidQuery when the
// Tzolk'in and Haab' days never fall together.
func (q Query) Validate() error {
	switch {
	case q.Number < 1 || q.Number > 13:
		return fmt.Errorf("%w: tzolk'in number %d not in 1..13", ErrInvalidQuery, q.Number)
	case q.Name < 0 || q.Name >= len(tzolkinNames):
		return fmt.Errorf("%w: tzolk'in name %d not in 0..19", ErrInvalidQuery, q.Name)
	case q.HaabDay < 0 || q.HaabDay > 19:
		return fmt.Errorf("%w: haab' day %d not in 0..19", ErrInvalidQuery, q.HaabDay)
	case q.HaabMonth < 0 || q.HaabMonth >= len(haabNames):
		return fmt.Errorf("%w: haab' month %d not in 0..18", ErrInvalidQuery, q.HaabMonth)
	case q.Count < 1 || q.Count > MaxCandidates:
		return fmt.Errorf("%w: count %d not in 1..%d", ErrInvalidQuery, q.Count, MaxCandidates)
	case q.Lord < 0 || q.Lord > LordsOfTheNight:
		return fmt.Errorf("%w: lord of the night %d not in 0..9", ErrInvalidQuery, q.Lord)
	}

	p := q.RoundPosition()
	tz, hb := TzolkinOf(p), HaabOf(p)
	if tz.Number != q.Number || tz.Name != q.Name || hb.Day != q.HaabDay || hb.Month != q.HaabMonth {
		want := CalendarRoundString(Tzolkin{Number: q.Number, Name: q.Name}, Haab{Day: q.HaabDay, Month: q.HaabMonth})
		return fmt.Errorf("%w: %s never occurs", ErrInvalidQuery, want)
	}
	return nil
}

// RoundPosition returns the Calendar Round position the query names.
func (q Query) RoundPosition() int {
	return RoundPosition(q.Number, q.Name, q.HaabDay, q.HaabMonth)
}

// Candidates returns the matching day counts in ascending order.
func (q Query) Candidates() []int {
	if q.Lord == 0 {
		return Estimate(q.RoundPosition(), q.Count)
	}
	return EstimateWithLord(q.RoundPosition(), q.Count, q.Lord)
}

// Reconstruct validates the query and returns the candidate dates under c.
func (c Correlation) Reconstruct(q Query) ([]Date, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	mdcs := q.Candidates()
	dates := make([]Date, len(mdcs))
	for i, d := range mdcs {
		dates[i] = c.FromMDC(d)
	}
	return dates, nil
}

// Reconstruct uses the GMT correlation.
func Reconstruct(q Query) ([]Date, error) {
	return GMT.Reconstruct(q)
}
