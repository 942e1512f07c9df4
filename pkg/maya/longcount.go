package maya

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/username/mayadate/pkg/mathutil"
)

// Long Count place values in days.
const (
	Kin    = 1
	Winal  = 20 * Kin
	Tun    = 18 * Winal
	Katun  = 20 * Tun
	Baktun = 20 * Katun
)

// ErrInvalidLongCount is returned when text is not a five-place Long Count
var ErrInvalidLongCount = errors.New("invalid long count")

// LongCount is a five-place Long Count. Values derived from a day count are
// the canonical decomposition (kin in [0,19], winal in [0,17]); the higher
// places are unbounded and negative for dates before the epoch.
type LongCount struct {
	Baktun int
	Katun  int
	Tun    int
	Winal  int
	Kin    int
}

// LongCountOf decomposes a day count with floor semantics, so
// LongCountOf(-1) is -1.19.19.17.19.
func LongCountOf(mdc int) LongCount {
	var lc LongCount
	lc.Baktun = mathutil.FloorDiv(mdc, Baktun)
	mdc -= lc.Baktun * Baktun
	lc.Katun = mathutil.FloorDiv(mdc, Katun)
	mdc -= lc.Katun * Katun
	lc.Tun = mathutil.FloorDiv(mdc, Tun)
	mdc -= lc.Tun * Tun
	lc.Winal = mathutil.FloorDiv(mdc, Winal)
	lc.Kin = mdc - lc.Winal*Winal
	return lc
}

// LongCountFromSlice reads [baktun, katun, tun, winal, kin]. A slice of any
// other length yields the zero Long Count and false.
func LongCountFromSlice(l []int) (LongCount, bool) {
	if len(l) != 5 {
		return LongCount{}, false
	}
	return LongCount{Baktun: l[0], Katun: l[1], Tun: l[2], Winal: l[3], Kin: l[4]}, true
}

// ParseLongCount parses "9.12.11.5.18". Places may be negative.
func ParseLongCount(s string) (LongCount, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 5 {
		return LongCount{}, fmt.Errorf("%w: %q has %d places, want 5", ErrInvalidLongCount, s, len(parts))
	}

	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return LongCount{}, fmt.Errorf("%w: %q: %v", ErrInvalidLongCount, s, err)
		}
		values[i] = v
	}

	lc, _ := LongCountFromSlice(values)
	return lc, nil
}

// MDC returns the day count the Long Count denotes. Non-canonical places are
// accepted as-is.
func (lc LongCount) MDC() int {
	return lc.Kin + Winal*lc.Winal + Tun*lc.Tun + Katun*lc.Katun + Baktun*lc.Baktun
}

// Slice returns [baktun, katun, tun, winal, kin].
func (lc LongCount) Slice() []int {
	return []int{lc.Baktun, lc.Katun, lc.Tun, lc.Winal, lc.Kin}
}

func (lc LongCount) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", lc.Baktun, lc.Katun, lc.Tun, lc.Winal, lc.Kin)
}
