package config

import (
	"fmt"
	"strings"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/route"
)

// NormalizationResult captures adjustments and warnings from the normalization pass.
type NormalizationResult struct{ Warnings []string }

// Normalize canonicalizes enumerated and free-form fields before defaults
// are applied. It mutates c in place.
func Normalize(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, errors.InternalError("config nil").Build()
	}
	res := &NormalizationResult{}

	c.Version = strings.TrimSpace(c.Version)
	if c.Base != "" {
		if b := route.NormalizeBase(c.Base); b != c.Base {
			res.Warnings = append(res.Warnings, warnChanged("base", c.Base, b))
			c.Base = b
		}
	}

	normalizeLogging(&c.Logging, res)

	if raw := string(c.Forge.Type); raw != "" {
		ft, err := NormalizeForgeType(raw)
		if err != nil {
			return nil, errors.ConfigError(errors.CodeInvalidConfig, err.Error()).WithCause(err).Build()
		}
		if ft != c.Forge.Type {
			res.Warnings = append(res.Warnings, warnChanged("forge.type", c.Forge.Type, ft))
			c.Forge.Type = ft
		}
	}
	c.Forge.BaseURL = strings.TrimRight(strings.TrimSpace(c.Forge.BaseURL), "/")
	c.Repo = strings.Trim(strings.TrimSpace(c.Repo), "/")
	c.DocsDir = strings.Trim(strings.TrimSpace(c.DocsDir), "/")

	for i := range c.Locales {
		l := &c.Locales[i]
		l.Code = strings.TrimSpace(l.Code)
		l.Prefix = strings.TrimSpace(l.Prefix)
		l.Pages = trimStringSlice(l.Pages)
	}
	c.Pages = trimStringSlice(c.Pages)
	return res, nil
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if raw := string(l.Level); raw != "" {
		if lvl, ok := logLevelNormalizer.Lookup(raw); ok {
			if lvl != l.Level {
				res.Warnings = append(res.Warnings, warnChanged("logging.level", l.Level, lvl))
			}
			l.Level = lvl
		} else {
			res.Warnings = append(res.Warnings, warnUnknown("logging.level", raw, string(LogLevelInfo)))
			l.Level = LogLevelInfo
		}
	}
	if raw := string(l.Format); raw != "" {
		if f, ok := logFormatNormalizer.Lookup(raw); ok {
			if f != l.Format {
				res.Warnings = append(res.Warnings, warnChanged("logging.format", l.Format, f))
			}
			l.Format = f
		} else {
			res.Warnings = append(res.Warnings, warnUnknown("logging.format", raw, string(LogFormatText)))
			l.Format = LogFormatText
		}
	}
}

// trimStringSlice trims entries and drops empty ones.
func trimStringSlice(in []string) []string {
	if len(in) == 0 {
		return in
	}
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
