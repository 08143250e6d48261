// Package config loads the docnav site description from YAML, TOML or JSON.
//
// Loading mirrors the rest of the toolchain: .env files are read first
// (never overriding the process environment), ${VAR} references are
// expanded, the document is decoded by file extension, enumerations are
// normalized, defaults are applied and the result is structurally
// validated. Navigation-level checks (dangling links, duplicate routes)
// belong to the validation package and run when the site is built.
package config

import (
	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/navbar"
	"github.com/ChrisShen93/xstate/internal/toc"
)

// CurrentVersion is the only supported configuration version.
const CurrentVersion = "1"

// Config is the site description.
type Config struct {
	Version     string `yaml:"version" toml:"version" json:"version"`
	Title       string `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	// Base is the public path the site is mounted under ("/docs/").
	Base string `yaml:"base,omitempty" toml:"base,omitempty" json:"base,omitempty"`
	Logo string `yaml:"logo,omitempty" toml:"logo,omitempty" json:"logo,omitempty"`

	// Repo ("owner/name") with DocsDir and DocsBranch is used for edit links.
	Repo       string      `yaml:"repo,omitempty" toml:"repo,omitempty" json:"repo,omitempty"`
	DocsDir    string      `yaml:"docs_dir,omitempty" toml:"docs_dir,omitempty" json:"docs_dir,omitempty"`
	DocsBranch string      `yaml:"docs_branch,omitempty" toml:"docs_branch,omitempty" json:"docs_branch,omitempty"`
	EditLinks  bool        `yaml:"edit_links,omitempty" toml:"edit_links,omitempty" json:"edit_links,omitempty"`
	Forge      ForgeConfig `yaml:"forge,omitempty" toml:"forge,omitempty" json:"forge,omitempty"`

	TOC toc.Config `yaml:"toc,omitempty" toml:"toc,omitempty" json:"toc,omitempty"`
	// Pages whitelists routes that exist in every locale without a sidebar entry.
	Pages []string `yaml:"pages,omitempty" toml:"pages,omitempty" json:"pages,omitempty"`
	// Groups declares sidebar groups shared between locales via {ref: name}.
	Groups  map[string]any `yaml:"groups,omitempty" toml:"groups,omitempty" json:"groups,omitempty"`
	Locales []LocaleConfig `yaml:"locales" toml:"locales" json:"locales"`

	Logging LoggingConfig `yaml:"logging,omitempty" toml:"logging,omitempty" json:"logging,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty" toml:"server,omitempty" json:"server,omitempty"`

	// Path is the file the configuration was loaded from.
	Path string `yaml:"-" toml:"-" json:"-"`
}

// LocaleConfig declares one locale with its navigation.
type LocaleConfig struct {
	Code         string `yaml:"code" toml:"code" json:"code"`
	Prefix       string `yaml:"prefix" toml:"prefix" json:"prefix"`
	Label        string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Lang         string `yaml:"lang,omitempty" toml:"lang,omitempty" json:"lang,omitempty"`
	Title        string `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	Description  string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	SelectText   string `yaml:"select_text,omitempty" toml:"select_text,omitempty" json:"select_text,omitempty"`
	LastUpdated  string `yaml:"last_updated,omitempty" toml:"last_updated,omitempty" json:"last_updated,omitempty"`
	EditLinkText string `yaml:"edit_link_text,omitempty" toml:"edit_link_text,omitempty" json:"edit_link_text,omitempty"`

	Nav []NavItem `yaml:"nav,omitempty" toml:"nav,omitempty" json:"nav,omitempty"`
	// Sidebar is the raw entry sequence: route strings and objects with
	// children, path or ref.
	Sidebar []any    `yaml:"sidebar,omitempty" toml:"sidebar,omitempty" json:"sidebar,omitempty"`
	Pages   []string `yaml:"pages,omitempty" toml:"pages,omitempty" json:"pages,omitempty"`
}

// NavItem is one declared nav bar link. External is inferred from the link
// when omitted.
type NavItem struct {
	Text     string `yaml:"text" toml:"text" json:"text"`
	Link     string `yaml:"link" toml:"link" json:"link"`
	External *bool  `yaml:"external,omitempty" toml:"external,omitempty" json:"external,omitempty"`
}

// ForgeConfig selects the forge that hosts Repo.
type ForgeConfig struct {
	Type    ForgeType `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	BaseURL string    `yaml:"base_url,omitempty" toml:"base_url,omitempty" json:"base_url,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty" toml:"level,omitempty" json:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty" toml:"format,omitempty" json:"format,omitempty"`
}

// ServerConfig configures `docnav serve`.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" toml:"addr,omitempty" json:"addr,omitempty"`
}

// Locale returns the locale description without its navigation.
func (l LocaleConfig) Locale() locale.Locale {
	return locale.Locale{
		Code:         l.Code,
		Prefix:       l.Prefix,
		Label:        l.Label,
		Lang:         l.Lang,
		Title:        l.Title,
		Description:  l.Description,
		SelectText:   l.SelectText,
		LastUpdated:  l.LastUpdated,
		EditLinkText: l.EditLinkText,
	}
}

// Links converts the declared nav items.
func (l LocaleConfig) Links() []navbar.Link {
	if len(l.Nav) == 0 {
		return nil
	}
	links := make([]navbar.Link, len(l.Nav))
	for i, item := range l.Nav {
		links[i] = navbar.NewLink(item.Text, item.Link, item.External)
	}
	return links
}

// LocaleList returns every configured locale in declaration order.
func (c *Config) LocaleList() []locale.Locale {
	out := make([]locale.Locale, len(c.Locales))
	for i, l := range c.Locales {
		out[i] = l.Locale()
	}
	return out
}
