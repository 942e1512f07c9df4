package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/mayadate/pkg/dateutil"
	"github.com/username/mayadate/pkg/maya"
	"go.uber.org/zap"
)

func dateCmd() *cobra.Command {
	var (
		mdc       int
		longCount string
		gregorian string
		bce       bool
		step      int
	)

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Show one day in every calendar (default: today)",
		Example: `  mayadate date --long-count 9.12.11.5.18
  mayadate date --gregorian 11/8/3114 --bce
  mayadate date --mdc 1872000 --step -1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()

			var d maya.Date
			switch {
			case cmd.Flags().Changed("mdc"):
				d = svc.FromMDC(mdc)
			case cmd.Flags().Changed("long-count"):
				lc, err := maya.ParseLongCount(longCount)
				if err != nil {
					return err
				}
				d = svc.FromLongCount(lc)
			case cmd.Flags().Changed("gregorian"):
				day, month, year, err := dateutil.ParseDate(gregorian)
				if err != nil {
					return err
				}
				d = svc.FromGregorian(day, month, year, bce)
			default:
				d = svc.Today()
			}

			if step != 0 {
				d = svc.Step(d, step)
			}

			logger.Info("Date resolved",
				zap.Int("mdc", d.MDC()),
				zap.String("long_count", d.LongCountString()))

			return render(svc.Describe(d))
		},
	}

	cmd.Flags().IntVar(&mdc, "mdc", 0, "Maya day count (days since the epoch)")
	cmd.Flags().StringVar(&longCount, "long-count", "", "Long Count, e.g. 13.0.0.0.0")
	cmd.Flags().StringVar(&gregorian, "gregorian", "", "Gregorian date as D/M/Y or YYYY-MM-DD (astronomical year unless --bce)")
	cmd.Flags().BoolVar(&bce, "bce", false, "Treat the --gregorian year as a civil BCE year")
	cmd.Flags().IntVar(&step, "step", 0, "Move the date by this many days")
	cmd.MarkFlagsMutuallyExclusive("mdc", "long-count", "gregorian")

	return cmd
}

func roundCmd() *cobra.Command {
	var (
		count int
		lord  int
	)

	cmd := &cobra.Command{
		Use:   "round <number> <day-name> <haab-day> <haab-month>",
		Short: "Recover candidate dates from a Calendar Round",
		Example: `  mayadate round 4 Ajaw 8 "Kumk'u" --count 5
  mayadate round 4 ajaw 3 kankin --lord 9`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := parseIndex(args[0], func(s string) (int, error) {
				return 0, fmt.Errorf("invalid tzolk'in number %q", s)
			})
			if err != nil {
				return err
			}
			name, err := parseIndex(args[1], maya.TzolkinNameIndex)
			if err != nil {
				return err
			}
			haabDay, err := parseIndex(args[2], func(s string) (int, error) {
				return 0, fmt.Errorf("invalid haab' day %q", s)
			})
			if err != nil {
				return err
			}
			haabMonth, err := parseIndex(args[3], maya.HaabMonthIndex)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("count") {
				count = cfg.Reconstruct.Count
			}

			report, err := newService().Reconstruct(maya.Query{
				Number:    number,
				Name:      name,
				HaabDay:   haabDay,
				HaabMonth: haabMonth,
				Count:     count,
				Lord:      lord,
			})
			if err != nil {
				return err
			}

			logger.Info("Calendar round recovered",
				zap.String("calendar_round", report.CalendarRound),
				zap.Int("candidates", len(report.Candidates)))

			return render(report)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of candidates to list (default from config)")
	cmd.Flags().IntVarP(&lord, "lord", "g", 0, "Lord of the Night G1..G9 (0 for any)")

	return cmd
}

func distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "distance <from> <to>",
		Short:   "Distance Number between two dates (long counts or day numbers)",
		Example: "  mayadate distance 9.12.11.5.18 13.0.0.0.0\n  mayadate distance -- -10 0",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()

			from, err := parseDateArg(svc, args[0])
			if err != nil {
				return err
			}
			to, err := parseDateArg(svc, args[1])
			if err != nil {
				return err
			}

			return render(svc.Distance(from, to))
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <date> <distance>",
		Short:   "Count a Distance Number forward (or back, if negative) from a date",
		Example: "  mayadate add 9.12.11.5.18 0.0.1.0.0\n  mayadate add 0 -- -1",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()

			base, err := parseDateArg(svc, args[0])
			if err != nil {
				return err
			}
			dist, err := parseDistanceArg(args[1])
			if err != nil {
				return err
			}

			return render(svc.ApplyDistance(base, dist))
		},
	}
}

func bordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "borders <date>",
		Short:   "First and last day of the Calendar Round containing a date",
		Example: "  mayadate borders 13.0.0.0.0\n  mayadate borders -- -1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()

			d, err := parseDateArg(svc, args[0])
			if err != nil {
				return err
			}

			return render(svc.Borders(d))
		},
	}
}
