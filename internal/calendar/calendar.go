package calendar

import (
	"fmt"

	"github.com/username/mayadate/internal/config"
	"github.com/username/mayadate/pkg/maya"
	"go.uber.org/zap"
)

// Service builds date snapshots under one correlation and turns them into reports
type Service struct {
	correlation maya.Correlation
	language    maya.Language
	logger      *zap.Logger
}

// NewService creates a new Service
func NewService(correlation maya.Correlation, language maya.Language, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		correlation: correlation,
		language:    language,
		logger:      logger,
	}
}

// NewServiceFromConfig creates a Service from the calendar section of the config
func NewServiceFromConfig(cfg *config.Config, logger *zap.Logger) *Service {
	return NewService(cfg.Calendar.GetCorrelation(), cfg.Calendar.GetLanguage(), logger)
}

// Correlation returns the correlation the service converts with
func (s *Service) Correlation() maya.Correlation {
	return s.correlation
}

// FromMDC returns the snapshot of a day count
func (s *Service) FromMDC(mdc int) maya.Date {
	d := s.correlation.FromMDC(mdc)
	s.logDate("Date set from MDC", d)
	return d
}

// FromLongCount returns the snapshot of a Long Count
func (s *Service) FromLongCount(lc maya.LongCount) maya.Date {
	d := s.correlation.FromLongCount(lc.Slice())
	s.logDate("Date set from Long Count", d, zap.String("input", lc.String()))
	return d
}

// FromGregorian returns the snapshot of a Gregorian date. With bce set the
// year is civil, otherwise astronomical.
func (s *Service) FromGregorian(day, month, year int, bce bool) maya.Date {
	d := s.correlation.FromCivil(day, month, year, bce)
	s.logDate("Date set from Gregorian date", d,
		zap.Int("day", day),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Bool("bce", bce))
	return d
}

// Today returns the snapshot of the current local date
func (s *Service) Today() maya.Date {
	d := s.correlation.Today()
	s.logDate("Date set to today", d)
	return d
}

// Step moves a date by n days, n < 0 stepping backwards
func (s *Service) Step(d maya.Date, n int) maya.Date {
	next := d.Add(n)
	s.logDate("Date stepped", next, zap.Int("days", n))
	return next
}

// Reconstruct finds candidate dates for a partial Calendar Round
func (s *Service) Reconstruct(q maya.Query) (*RoundReport, error) {
	dates, err := s.correlation.Reconstruct(q)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct calendar round: %w", err)
	}

	if len(dates) < q.Count {
		s.logger.Warn("Calendar round reconstruction returned fewer candidates than requested",
			zap.Int("requested", q.Count),
			zap.Int("found", len(dates)),
			zap.Int("lord", q.Lord))
	}

	s.logger.Debug("Calendar round reconstructed",
		zap.Int("round_position", q.RoundPosition()),
		zap.Int("candidates", len(dates)))

	return newRoundReport(q, dates), nil
}

// Describe returns the full report of one date
func (s *Service) Describe(d maya.Date) *DayReport {
	return newDayReport(d, s.language)
}

// Distance returns the Distance Number between two dates
func (s *Service) Distance(from, to maya.Date) *DistanceReport {
	dist := maya.Distance(from.MDC(), to.MDC())
	s.logger.Debug("Distance computed",
		zap.Int("from", from.MDC()),
		zap.Int("to", to.MDC()),
		zap.String("distance", dist.String()))
	return newDistanceReport(from, to, dist)
}

// ApplyDistance counts a Distance Number from a date
func (s *Service) ApplyDistance(base maya.Date, dist maya.LongCount) *DistanceReport {
	to := base.WithMDC(maya.ApplyLongCountDistance(base.LongCount(), dist).MDC())
	s.logDate("Distance applied", to, zap.String("distance", dist.String()))
	return newDistanceReport(base, to, dist)
}

// Borders returns the Calendar Round containing a date
func (s *Service) Borders(d maya.Date) *BordersReport {
	first, last := d.Borders()
	return &BordersReport{
		MDC:           d.MDC(),
		RoundPosition: d.RoundPosition(),
		First:         newDateRef(d.WithMDC(first)),
		Last:          newDateRef(d.WithMDC(last)),
	}
}

func (s *Service) logDate(msg string, d maya.Date, fields ...zap.Field) {
	fields = append(fields,
		zap.Int("mdc", d.MDC()),
		zap.String("long_count", d.LongCountString()),
		zap.String("correlation", s.correlation.String()))
	s.logger.Debug(msg, fields...)
}
