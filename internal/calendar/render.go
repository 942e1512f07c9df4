package calendar

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/username/mayadate/internal/config"
	"gopkg.in/yaml.v3"
)

// TextWriter is implemented by every report
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Render writes a report in the given output format
func Render(w io.Writer, format string, report TextWriter) error {
	switch format {
	case "", config.FormatText:
		return report.WriteText(w)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
