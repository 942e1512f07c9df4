package maya

import (
	"fmt"

	"github.com/username/mayadate/pkg/mathutil"
)

// Cycle lengths in days.
const (
	TzolkinDays       = 260
	HaabDays          = 365
	StationCycleDays  = 819
	LordsOfTheNight   = 9
	SevenDayCycleDays = 7
)

// Phase of MDC 0 within each cycle.
const (
	tzolkinEpoch = 159 // 4 Ajaw
	haabEpoch    = 348 // 8 Kumk'u
	stationEpoch = 3
)

// Below yearBearerCutoff the Year Bearer is reported as a fixed 8 Kab'an
// instead of being derived from YearStart.
const yearBearerCutoff = 360

// Tzolkin is a day of the 260-day count.
type Tzolkin struct {
	Position int // [0,259]
	Number   int // [1,13]
	Name     int // [0,19], index into the day names
}

// Haab is a day of the 365-day year.
type Haab struct {
	Position int // [0,364]
	Day      int // [0,19]
	Month    int // [0,18]; 18 is Wayeb
}

// EightCycle places a day within the 819-day station cycle.
type EightCycle struct {
	Distance  int // days since the last station, [0,818]
	Station   int // MDC of the last station
	Direction int // quadrant and color index, [0,3]
}

// Supplementary is the non-lunar supplementary series.
type Supplementary struct {
	LordOfNight      int // G1..G9
	YearBearerNumber int
	YearBearerName   int
	SevenDay         int // [1,7]
}

// TzolkinOf projects a day count onto the Tzolk'in.
func TzolkinOf(mdc int) Tzolkin {
	pos := mathutil.FloorMod(mdc+tzolkinEpoch, TzolkinDays)
	return Tzolkin{
		Position: pos,
		Number:   mathutil.Wrap(pos+1, 13),
		Name:     mathutil.FloorMod(pos+1, 20),
	}
}

// NameString returns the day name.
func (t Tzolkin) NameString() string {
	return TzolkinName(t.Name)
}

func (t Tzolkin) String() string {
	return fmt.Sprintf("%d %s", t.Number, TzolkinName(t.Name))
}

// HaabOf projects a day count onto the Haab'.
func HaabOf(mdc int) Haab {
	pos := mathutil.FloorMod(mdc+haabEpoch, HaabDays)
	return Haab{
		Position: pos,
		Day:      pos % 20,
		Month:    pos / 20,
	}
}

// MonthString returns the month name.
func (h Haab) MonthString() string {
	return HaabName(h.Month)
}

func (h Haab) String() string {
	return fmt.Sprintf("%d %s", h.Day, HaabName(h.Month))
}

// CalendarRoundString renders "4 Ajaw 8 Kumk'u".
func CalendarRoundString(t Tzolkin, h Haab) string {
	return t.String() + " " + h.String()
}

// EightCycleOf finds the last 819-day station at or before the day count.
// The direction is the station's Tzolk'in position mod 4.
func EightCycleOf(mdc int) EightCycle {
	dist := mathutil.FloorMod(mdc+stationEpoch, StationCycleDays)
	station := mdc - dist
	return EightCycle{
		Distance:  dist,
		Station:   station,
		Direction: TzolkinOf(station).Position % 4,
	}
}

// Quadrant returns the world quadrant of the station.
func (e EightCycle) Quadrant(lang Language) string {
	return QuadrantName(e.Direction, lang)
}

// Color returns the direction color of the station.
func (e EightCycle) Color(lang Language) string {
	return ColorName(e.Direction, lang)
}

// Format renders the quadrant and color, lang first with the other table in
// parentheses.
func (e EightCycle) Format(lang Language) string {
	alt := lang.other()
	return fmt.Sprintf("Quadrant: %s (%s)   Color: %s (%s)",
		e.Quadrant(lang), e.Quadrant(alt), e.Color(lang), e.Color(alt))
}

func (e EightCycle) String() string {
	return e.Format(Yucatec)
}

// SupplementaryOf computes the Lord of the Night, the Year Bearer and the
// seven-day cycle.
func SupplementaryOf(mdc int) Supplementary {
	s := Supplementary{
		LordOfNight: LordOfNight(mdc),
		SevenDay:    mathutil.Wrap(EightCycleOf(mdc).Distance, SevenDayCycleDays),
	}

	if mdc < yearBearerCutoff {
		s.YearBearerNumber = 8
		s.YearBearerName = 17
		return s
	}

	bearer := TzolkinOf(YearStart(mdc))
	s.YearBearerNumber = bearer.Number
	s.YearBearerName = bearer.Name
	return s
}

// LordOfNight returns G1..G9 for the day count.
func LordOfNight(mdc int) int {
	return mathutil.Wrap(mdc, LordsOfTheNight)
}

// YearStart returns the MDC of 0 Pop of the Haab' year containing mdc.
func YearStart(mdc int) int {
	return mdc - HaabOf(mdc).Position
}

// YearBearer returns the Tzolk'in designation of the Year Bearer.
func (s Supplementary) YearBearer() string {
	return fmt.Sprintf("%d %s", s.YearBearerNumber, TzolkinName(s.YearBearerName))
}

func (s Supplementary) String() string {
	return fmt.Sprintf("Lord of the Night: G%d    7-Cycle: %d    Year Bearer: %s",
		s.LordOfNight, s.SevenDay, s.YearBearer())
}
