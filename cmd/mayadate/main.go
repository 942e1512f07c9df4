package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/mayadate/internal/calendar"
	"github.com/username/mayadate/internal/config"
	"github.com/username/mayadate/pkg/maya"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath   string
	outputFormat string
	cfg          *config.Config
	logger       *zap.Logger
	out          io.Writer = os.Stdout
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mayadate",
		Short:         "Maya calendar converter",
		Long:          "Convert between the Long Count, Calendar Round, 819-day cycle, supplementary series and the proleptic Gregorian calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if outputFormat != "" {
				cfg.Output.Format = outputFormat
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./mayadate.yaml, $HOME/.mayadate/config.yaml, /etc/mayadate/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: text, json or yaml")

	rootCmd.AddCommand(dateCmd())
	rootCmd.AddCommand(roundCmd())
	rootCmd.AddCommand(distanceCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(bordersCmd())

	return rootCmd
}

func newService() *calendar.Service {
	return calendar.NewServiceFromConfig(cfg, logger)
}

func render(report calendar.TextWriter) error {
	return calendar.Render(out, cfg.Output.Format, report)
}

// parseDateArg reads a Long Count ("9.12.11.5.18") or a raw day count.
func parseDateArg(svc *calendar.Service, arg string) (maya.Date, error) {
	if strings.Contains(arg, ".") {
		lc, err := maya.ParseLongCount(arg)
		if err != nil {
			return maya.Date{}, err
		}
		return svc.FromLongCount(lc), nil
	}

	mdc, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return maya.Date{}, fmt.Errorf("invalid date %q: expected a long count or a day number", arg)
	}
	return svc.FromMDC(mdc), nil
}

// parseDistanceArg reads a Distance Number as a Long Count or a day count.
func parseDistanceArg(arg string) (maya.LongCount, error) {
	if strings.Contains(arg, ".") {
		return maya.ParseLongCount(arg)
	}

	days, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return maya.LongCount{}, fmt.Errorf("invalid distance %q: expected a long count or a number of days", arg)
	}
	return maya.LongCountOf(days), nil
}

// parseIndex accepts a name from the table or its numeric index.
func parseIndex(arg string, lookup func(string) (int, error)) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		return n, nil
	}
	return lookup(arg)
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core), nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}
