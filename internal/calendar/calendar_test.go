package calendar

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/username/mayadate/internal/config"
	"github.com/username/mayadate/pkg/maya"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return NewService(maya.GMT, maya.Yucatec, logger)
}

func TestService_Describe(t *testing.T) {
	svc := newTestService(t)

	report := svc.Describe(svc.FromMDC(1872000))

	if report.LongCount != "13.0.0.0.0" {
		t.Errorf("LongCount = %q, want 13.0.0.0.0", report.LongCount)
	}
	if report.CalendarRound != "4 Ajaw 3 K'ank'in" {
		t.Errorf("CalendarRound = %q", report.CalendarRound)
	}
	if report.Gregorian != "December 21, 2012 CE" {
		t.Errorf("Gregorian = %q", report.Gregorian)
	}
	if report.GregorianDate != [3]int{21, 12, 2012} {
		t.Errorf("GregorianDate = %v", report.GregorianDate)
	}
	if report.Supplementary.YearBearer != "1 Kab'an" || report.Supplementary.LordOfNight != 9 {
		t.Errorf("Supplementary = %+v", report.Supplementary)
	}
	if report.EightCycle.Station.MDC != 1871412 || report.EightCycle.Quadrant != "Nojo'l" {
		t.Errorf("EightCycle = %+v", report.EightCycle)
	}
	if report.RoundPosition != 11960 || report.RoundStart != 1860040 || report.RoundEnd != 1879019 {
		t.Errorf("round = %d [%d, %d]", report.RoundPosition, report.RoundStart, report.RoundEnd)
	}
	if report.Correlation != "gmt" {
		t.Errorf("Correlation = %q, want gmt", report.Correlation)
	}
}

func TestService_DescribeEnglish(t *testing.T) {
	svc := NewService(maya.GMT, maya.English, zap.NewNop())

	report := svc.Describe(svc.FromMDC(1872000))

	if report.EightCycle.Quadrant != "South" || report.EightCycle.Color != "Yellow" {
		t.Errorf("EightCycle = %+v, want South/Yellow", report.EightCycle)
	}
}

func TestService_Setters(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		date maya.Date
		want int
	}{
		{"long count", svc.FromLongCount(maya.LongCount{Baktun: 13}), 1872000},
		{"civil BCE", svc.FromGregorian(11, 8, 3114, true), 0},
		{"astronomical", svc.FromGregorian(11, 8, -3113, false), 0},
		{"step forward", svc.Step(svc.FromMDC(0), 1), 1},
		{"step back", svc.Step(svc.FromMDC(0), -1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.date.MDC() != tt.want {
				t.Errorf("MDC() = %d, want %d", tt.date.MDC(), tt.want)
			}
		})
	}

	if svc.Today().Correlation() != maya.GMT {
		t.Error("Today() should use the service correlation")
	}
}

func TestService_Correlation(t *testing.T) {
	cfg := config.Default()
	cfg.Calendar.Correlation = "lounsbury"
	svc := NewServiceFromConfig(cfg, nil)

	if svc.Correlation() != maya.Lounsbury {
		t.Fatalf("Correlation() = %v, want lounsbury", svc.Correlation())
	}
	if got := svc.FromGregorian(21, 12, 2012, false).MDC(); got != 1871998 {
		t.Errorf("FromGregorian(21 Dec 2012) under Lounsbury = %d, want 1871998", got)
	}
}

func TestService_Reconstruct(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.Reconstruct(maya.Query{Number: 4, Name: 0, HaabDay: 3, HaabMonth: 13, Count: 3, Lord: 9})
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}

	if report.CalendarRound != "4 Ajaw 3 K'ank'in" {
		t.Errorf("CalendarRound = %q", report.CalendarRound)
	}
	if report.RoundPosition != 11960 {
		t.Errorf("RoundPosition = %d, want 11960", report.RoundPosition)
	}
	if len(report.Candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(report.Candidates))
	}
	for i, c := range report.Candidates {
		if c.Index != i+1 {
			t.Errorf("candidate %d has index %d", i, c.Index)
		}
		if c.LordOfNight != 9 {
			t.Errorf("candidate %d lord = G%d, want G9", i, c.LordOfNight)
		}
		if c.CalendarRound != "4 Ajaw 3 K'ank'in" {
			t.Errorf("candidate %d = %q", i, c.CalendarRound)
		}
	}
	if report.Candidates[0].MDC != 163800 {
		t.Errorf("first candidate = %d, want 163800", report.Candidates[0].MDC)
	}
}

func TestService_ReconstructInvalid(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		query maya.Query
	}{
		{"number out of range", maya.Query{Number: 14, Count: 1}},
		{"ajaw never on 0 pop", maya.Query{Number: 4, Name: 0, HaabDay: 0, HaabMonth: 0, Count: 2}},
		{"wayeb has five days", maya.Query{Number: 4, Name: 0, HaabDay: 8, HaabMonth: 18, Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.Reconstruct(tt.query)
			if !errors.Is(err, maya.ErrInvalidQuery) {
				t.Errorf("Reconstruct() error = %v, want ErrInvalidQuery", err)
			}
			if report != nil {
				t.Errorf("Reconstruct() report = %+v, want nil", report)
			}
		})
	}
}

func TestService_ReconstructFillsLegalQueries(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewService(maya.GMT, maya.Yucatec, zap.New(core))

	report, err := svc.Reconstruct(maya.Query{Number: 1, Name: 1, HaabDay: 4, HaabMonth: 0, Count: 498, Lord: 5})
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if len(report.Candidates) != 498 {
		t.Errorf("got %d candidates, want 498", len(report.Candidates))
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected warnings: %v", logs.All())
	}
}

func TestService_Distance(t *testing.T) {
	svc := newTestService(t)

	report := svc.Distance(svc.FromMDC(0), svc.FromMDC(1872000))
	if report.Distance != "13.0.0.0.0" || report.Days != 1872000 {
		t.Errorf("Distance = %s (%d days)", report.Distance, report.Days)
	}

	back := svc.Distance(svc.FromMDC(10), svc.FromMDC(9))
	if back.Distance != "-1.19.19.17.19" || back.Days != -1 {
		t.Errorf("negative Distance = %s (%d days)", back.Distance, back.Days)
	}

	applied := svc.ApplyDistance(svc.FromMDC(0), maya.LongCount{Baktun: 13})
	if applied.To.MDC != 1872000 || applied.To.LongCount != "13.0.0.0.0" {
		t.Errorf("ApplyDistance().To = %+v", applied.To)
	}
}

func TestService_Borders(t *testing.T) {
	svc := newTestService(t)

	report := svc.Borders(svc.FromMDC(-1))
	if report.First.MDC != -18980 || report.Last.MDC != -1 {
		t.Errorf("Borders(-1) = [%d, %d], want [-18980, -1]", report.First.MDC, report.Last.MDC)
	}
	if report.RoundPosition != 18979 {
		t.Errorf("RoundPosition = %d, want 18979", report.RoundPosition)
	}
}

func TestRender(t *testing.T) {
	svc := newTestService(t)
	report := svc.Describe(svc.FromMDC(0))

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, config.FormatText, report); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		out := buf.String()
		for _, want := range []string{
			"August 11, 3114 BCE",
			"Long Count: 0.0.0.0.0",
			"Calendar Round: 4 Ajaw 8 Kumk'u",
			"Lord of the Night: G9    7-Cycle: 3    Year Bearer: 8 Kab'an",
			"Quadrant: Elk'ihn (East)   Color: Chak (Red)",
			"Mayan Day: 0    Calendar Round: 0",
			"Tzolk'in Day: 159   Haab' Day: 348",
			"Round began: 0   Round will end: 18979",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("text output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, config.FormatJSON, report); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		var decoded DayReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if decoded.LongCount != "0.0.0.0.0" || decoded.Haab.Month != "Kumk'u" {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Render(&buf, config.FormatYAML, report); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		var decoded map[string]interface{}
		if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid yaml: %v", err)
		}
		if decoded["long_count"] != "0.0.0.0.0" {
			t.Errorf("long_count = %v", decoded["long_count"])
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Render(&bytes.Buffer{}, "xml", report); err == nil {
			t.Error("Render() with unknown format: expected error")
		}
	})
}

func TestRenderRoundReportInline(t *testing.T) {
	svc := newTestService(t)
	report, err := svc.Reconstruct(maya.Query{Number: 4, Name: 0, HaabDay: 8, HaabMonth: 17, Count: 2})
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}

	var text bytes.Buffer
	if err := Render(&text, config.FormatText, report); err != nil {
		t.Fatalf("Render(text) error = %v", err)
	}
	if !strings.HasPrefix(text.String(), "2 possible instances of 4 Ajaw 8 Kumk'u\n") {
		t.Errorf("text header = %q", text.String())
	}
	if !strings.Contains(text.String(), "0.0.0.0.0") || !strings.Contains(text.String(), "0.2.12.13.0") {
		t.Errorf("text output missing candidates:\n%s", text.String())
	}

	var buf bytes.Buffer
	if err := Render(&buf, config.FormatYAML, report); err != nil {
		t.Fatalf("Render(yaml) error = %v", err)
	}
	var decoded struct {
		Candidates []map[string]interface{} `yaml:"candidates"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if len(decoded.Candidates) != 2 || decoded.Candidates[1]["mdc"] != 18980 {
		t.Errorf("candidates = %v", decoded.Candidates)
	}
}
