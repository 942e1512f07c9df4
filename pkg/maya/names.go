package maya

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Language selects which of the paired quadrant/color tables renders first.
type Language int

const (
	Yucatec Language = iota
	English
)

// ErrUnknownName is returned when a day, month or language name is not recognised
var ErrUnknownName = errors.New("unknown name")

var tzolkinNames = [20]string{
	"Ajaw", "Imix", "Ik'", "Ak'bal", "K'an", "Chikchan", "Kimi", "Manik", "Lamat", "Muluk",
	"Ok", "Chuwen", "Eb'", "Ben", "Ix", "Men", "Kib'", "Kab'an", "Etz'nab'", "Kawak",
}

var haabNames = [19]string{
	"Pop", "Wo", "Sip", "Sots'", "Sek", "Xul", "Yaxk'in", "Mol", "Ch'en", "Yax",
	"Sak", "Keh", "Mak", "K'ank'in", "Muwan", "Pax", "K'ayab", "Kumk'u", "Wayeb",
}

var quadrantNames = [2][4]string{
	Yucatec: {"Elk'ihn", "Xaman", "Ochk'ihn", "Nojo'l"},
	English: {"East", "North", "West", "South"},
}

var colorNames = [2][4]string{
	Yucatec: {"Chak", "Sak", "Ik'", "Kan"},
	English: {"Red", "White", "Black", "Yellow"},
}

// Index 0 is a sentinel for an out-of-range month.
var monthNames = [13]string{
	"ERROR", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseLanguage accepts "yucatec" (or "maya") and "english".
func ParseLanguage(s string) (Language, error) {
	switch fold(s) {
	case "", "yucatec", "maya":
		return Yucatec, nil
	case "english", "en":
		return English, nil
	}
	return 0, fmt.Errorf("%w: language %q", ErrUnknownName, s)
}

func (l Language) String() string {
	if l == English {
		return "english"
	}
	return "yucatec"
}

// other returns the language of the parallel table.
func (l Language) other() Language {
	if l == English {
		return Yucatec
	}
	return English
}

func (l Language) valid() Language {
	if l == English {
		return English
	}
	return Yucatec
}

// TzolkinName returns the day name for a name index in [0,19].
func TzolkinName(i int) string {
	if i < 0 || i >= len(tzolkinNames) {
		return "ERROR"
	}
	return tzolkinNames[i]
}

// HaabName returns the month name for a month index in [0,18].
func HaabName(i int) string {
	if i < 0 || i >= len(haabNames) {
		return "ERROR"
	}
	return haabNames[i]
}

// MonthName returns the Gregorian month name, or "ERROR" outside 1..12.
func MonthName(m int) string {
	if m < 1 || m >= len(monthNames) {
		return monthNames[0]
	}
	return monthNames[m]
}

// QuadrantName returns the world quadrant for a direction index in [0,3].
func QuadrantName(i int, lang Language) string {
	if i < 0 || i > 3 {
		return "ERROR"
	}
	return quadrantNames[lang.valid()][i]
}

// ColorName returns the direction color for a direction index in [0,3].
func ColorName(i int, lang Language) string {
	if i < 0 || i > 3 {
		return "ERROR"
	}
	return colorNames[lang.valid()][i]
}

// TzolkinNameIndex looks up a day name. Matching ignores case and apostrophes,
// so "kaban", "Kab'an" and "KAB’AN" are the same day.
func TzolkinNameIndex(name string) (int, error) {
	return lookup(tzolkinNames[:], name)
}

// HaabMonthIndex looks up a month name the same way as TzolkinNameIndex.
func HaabMonthIndex(name string) (int, error) {
	return lookup(haabNames[:], name)
}

func lookup(table []string, name string) (int, error) {
	key := fold(name)
	for i, n := range table {
		if fold(n) == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

var apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "", "ʼ", "", "`", "")

// fold builds a new Caser per call; casers are stateful.
func fold(s string) string {
	return cases.Fold().String(apostrophes.Replace(strings.TrimSpace(s)))
}
