package calendar

import (
	"fmt"
	"io"

	"github.com/username/mayadate/pkg/maya"
)

// DateRef is the short form of a date used inside other reports
type DateRef struct {
	MDC           int    `json:"mdc" yaml:"mdc"`
	LongCount     string `json:"long_count" yaml:"long_count"`
	CalendarRound string `json:"calendar_round" yaml:"calendar_round"`
	Gregorian     string `json:"gregorian" yaml:"gregorian"`
	LordOfNight   int    `json:"lord_of_night" yaml:"lord_of_night"`
}

// TzolkinReport is the Tzolk'in of a date
type TzolkinReport struct {
	Position int    `json:"position" yaml:"position"`
	Number   int    `json:"number" yaml:"number"`
	Name     string `json:"name" yaml:"name"`
}

// HaabReport is the Haab' of a date
type HaabReport struct {
	Position int    `json:"position" yaml:"position"`
	Day      int    `json:"day" yaml:"day"`
	Month    string `json:"month" yaml:"month"`
}

// StationReport is the 819-day cycle of a date
type StationReport struct {
	Distance int     `json:"distance" yaml:"distance"`
	Station  DateRef `json:"station" yaml:"station"`
	Quadrant string  `json:"quadrant" yaml:"quadrant"`
	Color    string  `json:"color" yaml:"color"`
	Summary  string  `json:"summary" yaml:"summary"`
}

// SupplementaryReport is the non-lunar supplementary series of a date
type SupplementaryReport struct {
	LordOfNight int    `json:"lord_of_night" yaml:"lord_of_night"`
	YearBearer  string `json:"year_bearer" yaml:"year_bearer"`
	SevenDay    int    `json:"seven_day" yaml:"seven_day"`
}

// DayReport describes one date in every calendar
type DayReport struct {
	Correlation   string              `json:"correlation" yaml:"correlation"`
	MDC           int                 `json:"mdc" yaml:"mdc"`
	Gregorian     string              `json:"gregorian" yaml:"gregorian"`
	GregorianDate [3]int              `json:"gregorian_dmy" yaml:"gregorian_dmy"`
	LongCount     string              `json:"long_count" yaml:"long_count"`
	CalendarRound string              `json:"calendar_round" yaml:"calendar_round"`
	Tzolkin       TzolkinReport       `json:"tzolkin" yaml:"tzolkin"`
	Haab          HaabReport          `json:"haab" yaml:"haab"`
	Supplementary SupplementaryReport `json:"supplementary" yaml:"supplementary"`
	EightCycle    StationReport       `json:"eight_cycle" yaml:"eight_cycle"`
	RoundPosition int                 `json:"round_position" yaml:"round_position"`
	RoundStart    int                 `json:"round_start" yaml:"round_start"`
	RoundEnd      int                 `json:"round_end" yaml:"round_end"`
}

// CandidateReport is one reconstructed date
type CandidateReport struct {
	Index int `json:"index" yaml:"index"`
	DateRef `json:",inline" yaml:",inline"`
}

// RoundReport lists the candidates of a Calendar Round reconstruction
type RoundReport struct {
	CalendarRound string            `json:"calendar_round" yaml:"calendar_round"`
	RoundPosition int               `json:"round_position" yaml:"round_position"`
	LordOfNight   int               `json:"lord_of_night,omitempty" yaml:"lord_of_night,omitempty"`
	Requested     int               `json:"requested" yaml:"requested"`
	Candidates    []CandidateReport `json:"candidates" yaml:"candidates"`
}

// DistanceReport is a Distance Number between two dates
type DistanceReport struct {
	From     DateRef `json:"from" yaml:"from"`
	To       DateRef `json:"to" yaml:"to"`
	Days     int     `json:"days" yaml:"days"`
	Distance string  `json:"distance" yaml:"distance"`
}

// BordersReport is the Calendar Round containing a date
type BordersReport struct {
	MDC           int     `json:"mdc" yaml:"mdc"`
	RoundPosition int     `json:"round_position" yaml:"round_position"`
	First         DateRef `json:"first" yaml:"first"`
	Last          DateRef `json:"last" yaml:"last"`
}

func newDateRef(d maya.Date) DateRef {
	return DateRef{
		MDC:           d.MDC(),
		LongCount:     d.LongCountString(),
		CalendarRound: d.CalendarRoundString(),
		Gregorian:     d.GregorianString(),
		LordOfNight:   d.Supplementary().LordOfNight,
	}
}

func newDayReport(d maya.Date, lang maya.Language) *DayReport {
	g := d.Gregorian()
	tz := d.Tzolkin()
	hb := d.Haab()
	supp := d.Supplementary()
	eight := d.EightCycle()
	first, last := d.Borders()

	return &DayReport{
		Correlation:   d.Correlation().String(),
		MDC:           d.MDC(),
		Gregorian:     d.GregorianString(),
		GregorianDate: [3]int{g.Day, g.Month, g.Year},
		LongCount:     d.LongCountString(),
		CalendarRound: d.CalendarRoundString(),
		Tzolkin:       TzolkinReport{Position: tz.Position, Number: tz.Number, Name: tz.NameString()},
		Haab:          HaabReport{Position: hb.Position, Day: hb.Day, Month: hb.MonthString()},
		Supplementary: SupplementaryReport{
			LordOfNight: supp.LordOfNight,
			YearBearer:  supp.YearBearer(),
			SevenDay:    supp.SevenDay,
		},
		EightCycle: StationReport{
			Distance: eight.Distance,
			Station:  newDateRef(d.Station()),
			Quadrant: eight.Quadrant(lang),
			Color:    eight.Color(lang),
			Summary:  eight.Format(lang),
		},
		RoundPosition: d.RoundPosition(),
		RoundStart:    first,
		RoundEnd:      last,
	}
}

func newRoundReport(q maya.Query, dates []maya.Date) *RoundReport {
	tz := maya.Tzolkin{Number: q.Number, Name: q.Name}
	hb := maya.Haab{Day: q.HaabDay, Month: q.HaabMonth}

	r := &RoundReport{
		CalendarRound: maya.CalendarRoundString(tz, hb),
		RoundPosition: q.RoundPosition(),
		LordOfNight:   q.Lord,
		Requested:     q.Count,
		Candidates:    make([]CandidateReport, len(dates)),
	}
	for i, d := range dates {
		r.Candidates[i] = CandidateReport{Index: i + 1, DateRef: newDateRef(d)}
	}
	return r
}

func newDistanceReport(from, to maya.Date, dist maya.LongCount) *DistanceReport {
	return &DistanceReport{
		From:     newDateRef(from),
		To:       newDateRef(to),
		Days:     dist.MDC(),
		Distance: dist.String(),
	}
}

// WriteText renders the report the way the calculator console prints a day
func (r *DayReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"%s\n\n"+
			"Long Count: %s\n"+
			"Calendar Round: %s\n\n"+
			"Lord of the Night: G%d    7-Cycle: %d    Year Bearer: %s\n"+
			"819-day cycle: %s   %s\n"+
			"%s\n\n"+
			"Mayan Day: %d    Calendar Round: %d\n"+
			"Tzolk'in Day: %d   Haab' Day: %d\n"+
			"Round began: %d   Round will end: %d\n",
		r.Gregorian,
		r.LongCount,
		r.CalendarRound,
		r.Supplementary.LordOfNight, r.Supplementary.SevenDay, r.Supplementary.YearBearer,
		r.EightCycle.Station.LongCount, r.EightCycle.Station.CalendarRound,
		r.EightCycle.Summary,
		r.MDC, r.RoundPosition,
		r.Tzolkin.Position, r.Haab.Position,
		r.RoundStart, r.RoundEnd)
	return err
}

// WriteText renders one line per candidate
func (r *RoundReport) WriteText(w io.Writer) error {
	header := fmt.Sprintf("%d possible instances of %s", r.Requested, r.CalendarRound)
	if r.LordOfNight != 0 {
		header += fmt.Sprintf(" G%d", r.LordOfNight)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, c := range r.Candidates {
		if _, err := fmt.Fprintf(w, "%-4d %-18s %-28s G%d\n",
			c.Index, c.LongCount, c.Gregorian, c.LordOfNight); err != nil {
			return err
		}
	}

	if len(r.Candidates) < r.Requested {
		_, err := fmt.Fprintf(w, "only %d of %d found\n", len(r.Candidates), r.Requested)
		return err
	}
	return nil
}

// WriteText renders the Distance Number between the two dates
func (r *DistanceReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "From: %s  %s  (%s)\nTo:   %s  %s  (%s)\nDistance: %s (%d days)\n",
		r.From.LongCount, r.From.CalendarRound, r.From.Gregorian,
		r.To.LongCount, r.To.CalendarRound, r.To.Gregorian,
		r.Distance, r.Days)
	return err
}

// WriteText renders the first and last day of the round
func (r *BordersReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Mayan Day: %d    Calendar Round: %d\nRound began: %d  %s  %s\nRound will end: %d  %s  %s\n",
		r.MDC, r.RoundPosition,
		r.First.MDC, r.First.LongCount, r.First.Gregorian,
		r.Last.MDC, r.Last.LongCount, r.Last.Gregorian)
	return err
}
