package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter writes a validation result.
type Formatter interface {
	Format(w io.Writer, result *Result, configPath string) error
}

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGreen  = "\033[32m"
	ansiReset  = "\033[0m"
)

// TextFormatter formats results as human-readable text.
type TextFormatter struct {
	useColor bool
}

// NewTextFormatter creates a text formatter. useColor wraps the status
// icons in ANSI colors.
func NewTextFormatter(useColor bool) *TextFormatter {
	return &TextFormatter{useColor: useColor}
}

func (f *TextFormatter) paint(color, s string) string {
	if !f.useColor {
		return s
	}
	return color + s + ansiReset
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result, configPath string) error {
	if _, err := fmt.Fprintf(w, "Validating navigation in: %s\n", configPath); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}

	for _, finding := range result.Findings {
		if err := f.formatFinding(w, finding); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Results:\n  %d locale%s checked\n", result.LocalesTotal, pluralize(result.LocalesTotal)); err != nil {
		return err
	}
	if n := result.ErrorCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d error%s (blocks loading)\n", n, pluralize(n)); err != nil {
			return err
		}
	}
	if n := result.WarningCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d warning%s (should fix)\n", n, pluralize(n)); err != nil {
			return err
		}
	}

	var msg string
	switch {
	case result.HasErrors():
		msg = f.paint(ansiRed, "✗") + " Navigation has errors; the site will not load."
	case result.WarningCount() > 0:
		msg = f.paint(ansiYellow, "⚠") + " Navigation has warnings."
	default:
		msg = f.paint(ansiGreen, "✓") + " Navigation is valid."
	}
	_, err := fmt.Fprintf(w, "\n%s\n", msg)
	return err
}

func (f *TextFormatter) formatFinding(w io.Writer, finding Finding) error {
	var icon string
	switch finding.Severity {
	case SeverityError:
		icon = f.paint(ansiRed, "✗")
	case SeverityWarning:
		icon = f.paint(ansiYellow, "⚠")
	default:
		icon = "ℹ"
	}

	where := finding.Locale
	if finding.Location != "" {
		where += " " + finding.Location
	}
	if _, err := fmt.Fprintf(w, "%s [%s] %s\n", icon, finding.Rule, strings.TrimSpace(where)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s: %s\n", finding.Severity, finding.Message); err != nil {
		return err
	}
	if finding.Fix != "" {
		if _, err := fmt.Fprintf(w, "  Fix: %s\n", finding.Fix); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Config       string        `json:"config,omitempty"`
	LocalesTotal int           `json:"locales_total"`
	ErrorCount   int           `json:"error_count"`
	WarningCount int           `json:"warning_count"`
	Findings     []JSONFinding `json:"findings"`
}

// JSONFinding represents a single finding in JSON format.
type JSONFinding struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Locale   string `json:"locale,omitempty"`
	Route    string `json:"route,omitempty"`
	Location string `json:"location,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// Output converts a result to its JSON shape.
func Output(result *Result, configPath string) JSONOutput {
	out := JSONOutput{
		Config:       configPath,
		LocalesTotal: result.LocalesTotal,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		Findings:     make([]JSONFinding, 0, len(result.Findings)),
	}
	for _, f := range result.Findings {
		out.Findings = append(out.Findings, JSONFinding{
			Severity: f.Severity.String(),
			Rule:     f.Rule,
			Locale:   f.Locale,
			Route:    f.Route,
			Location: f.Location,
			Message:  f.Message,
			Fix:      f.Fix,
		})
	}
	return out
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result, configPath string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Output(result, configPath))
}

// NewFormatter creates the formatter for format ("text" or "json").
func NewFormatter(format string, useColor bool) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter(useColor)
	}
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
