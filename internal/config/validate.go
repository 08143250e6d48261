package config

import (
	"fmt"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
)

// Validate checks the structure of a defaulted configuration. Locale
// prefixes and sidebar shapes are checked when the site is built.
func Validate(c *Config) error {
	if c.Version != CurrentVersion {
		return invalid(fmt.Sprintf("unsupported configuration version %q (expected %q)", c.Version, CurrentVersion), "version")
	}
	if len(c.Locales) == 0 {
		return invalid("at least one locale must be configured", "locales")
	}
	for i, l := range c.Locales {
		if l.Code == "" {
			return invalid("locale code is required", fmt.Sprintf("locales[%d].code", i))
		}
		if l.Prefix == "" {
			return invalid("locale prefix is required", fmt.Sprintf("locales[%d].prefix", i))
		}
		for j, item := range l.Nav {
			if item.Text == "" || item.Link == "" {
				return invalid("nav items need text and link", fmt.Sprintf("locales[%d].nav[%d]", i, j))
			}
		}
	}
	if err := c.TOC.Validate(); err != nil {
		return err
	}
	if c.EditLinks && c.Repo == "" {
		return invalid("edit_links requires repo", "repo")
	}
	return nil
}

func invalid(msg, field string) error {
	return errors.ConfigError(errors.CodeInvalidConfig, msg).
		WithContext("field", field).
		Build()
}
