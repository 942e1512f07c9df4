package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/mayadate/pkg/maya"
)

// Config represents application configuration
type Config struct {
	Calendar    CalendarConfig    `mapstructure:"calendar"`
	Output      OutputConfig      `mapstructure:"output"`
	Reconstruct ReconstructConfig `mapstructure:"reconstruct"`
	Log         LogConfig         `mapstructure:"log"`
}

// CalendarConfig represents conversion settings
type CalendarConfig struct {
	Correlation string `mapstructure:"correlation"` // "gmt", "lounsbury", "spinden" or a JDN
	Language    string `mapstructure:"language"`    // "yucatec" or "english"
}

// OutputConfig represents report rendering settings
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text", "json" or "yaml"
}

// ReconstructConfig represents Calendar Round reconstruction defaults
type ReconstructConfig struct {
	Count int `mapstructure:"count"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Calendar:    CalendarConfig{Correlation: "gmt", Language: "yucatec"},
		Output:      OutputConfig{Format: FormatText},
		Reconstruct: ReconstructConfig{Count: 1},
		Log:         LogConfig{Level: "warn"},
	}
}

// SearchPaths lists the config files tried, in order, when no path is given.
// Each is a full file name so that nothing else in those directories (such
// as the mayadate binary itself) is mistaken for a config file.
var SearchPaths = []string{
	"mayadate.yaml",
	"$HOME/.mayadate/config.yaml",
	"/etc/mayadate/config.yaml",
}

func findConfig() string {
	for _, p := range SearchPaths {
		p = os.ExpandEnv(p)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// Load loads configuration from file. An explicit configPath must exist;
// without one the standard locations are searched and defaults apply when
// nothing is found. MAYADATE_* environment variables (including those in a
// local .env file) override file values.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = findConfig()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read environment variables
	v.SetEnvPrefix("MAYADATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if configPath != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("calendar.correlation", d.Calendar.Correlation)
	v.SetDefault("calendar.language", d.Calendar.Language)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("reconstruct.count", d.Reconstruct.Count)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := maya.ParseCorrelation(c.Calendar.Correlation); err != nil {
		return fmt.Errorf("calendar.correlation: %w", err)
	}
	if _, err := maya.ParseLanguage(c.Calendar.Language); err != nil {
		return fmt.Errorf("calendar.language: %w", err)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be 'text', 'json' or 'yaml', got '%s'", c.Output.Format)
	}

	if c.Reconstruct.Count < 1 || c.Reconstruct.Count > maya.MaxCandidates {
		return fmt.Errorf("reconstruct.count must be between 1 and %d", maya.MaxCandidates)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetCorrelation returns the parsed correlation, GMT when unset or invalid
func (c *CalendarConfig) GetCorrelation() maya.Correlation {
	corr, err := maya.ParseCorrelation(c.Correlation)
	if err != nil {
		return maya.GMT
	}
	return corr
}

// GetLanguage returns the parsed name-table language, Yucatec when unset or invalid
func (c *CalendarConfig) GetLanguage() maya.Language {
	lang, err := maya.ParseLanguage(c.Language)
	if err != nil {
		return maya.Yucatec
	}
	return lang
}
