// Package site composes the navigation components into the immutable Site a
// renderer queries. Load runs once, single-threaded: it builds the locale
// table, the sidebar of every locale (default first, so others can fall
// back to it), the nav lists, and validates the result. Afterwards every
// query is read-only and safe for concurrent use without locks.
package site

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/ChrisShen93/xstate/internal/config"
	"github.com/ChrisShen93/xstate/internal/editlink"
	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/logfields"
	"github.com/ChrisShen93/xstate/internal/metrics"
	"github.com/ChrisShen93/xstate/internal/navbar"
	"github.com/ChrisShen93/xstate/internal/route"
	"github.com/ChrisShen93/xstate/internal/sidebar"
	"github.com/ChrisShen93/xstate/internal/toc"
	"github.com/ChrisShen93/xstate/internal/util/sets"
	"github.com/ChrisShen93/xstate/internal/validation"
)

// Site is a fully resolved, validated site description.
type Site struct {
	loadID string
	title  string
	base   string

	table    *locale.Table
	trees    map[string]*sidebar.Tree
	fallback map[string]bool
	nav      *navbar.Resolver
	known    map[string]sets.Set[string]
	toc      toc.Config
	edit     *editlink.Builder
	result   *validation.Result
}

type options struct {
	logger   *slog.Logger
	recorder metrics.Recorder
	loadID   string
}

// Option configures Load.
type Option func(*options)

// WithLogger sets the logger used to report validation warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRecorder records fallbacks and validation findings at load.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithLoadID overrides the generated load identifier.
func WithLoadID(id string) Option {
	return func(o *options) { o.loadID = id }
}

// Load builds a Site from cfg. When validation reports errors, Load returns
// no Site, the validation result and an error; warnings are logged and
// returned in the result without failing.
func Load(cfg *config.Config, opts ...Option) (*Site, *validation.Result, error) {
	o := options{logger: slog.Default(), recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.loadID == "" {
		o.loadID = uuid.NewString()
	}

	table, err := locale.NewTable(cfg.LocaleList())
	if err != nil {
		return nil, nil, err
	}
	declared := make(map[string]config.LocaleConfig, len(cfg.Locales))
	for _, lc := range cfg.Locales {
		declared[lc.Code] = lc
	}

	validator := validation.New()
	builder := sidebar.NewBuilder(
		sidebar.WithValidator(validator),
		sidebar.WithSharedGroups(cfg.Groups),
	)

	s := &Site{
		loadID:   o.loadID,
		title:    cfg.Title,
		base:     route.NormalizeBase(cfg.Base),
		table:    table,
		trees:    make(map[string]*sidebar.Tree, table.Len()),
		fallback: make(map[string]bool, table.Len()),
		known:    make(map[string]sets.Set[string], table.Len()),
		toc:      cfg.TOC,
		edit:     editlink.New(cfg),
	}
	if s.toc == (toc.Config{}) {
		s.toc = toc.DefaultConfig()
	}

	// All() lists the default locale first, so its tree exists before any
	// other locale needs it as a fallback.
	var defTree *sidebar.Tree
	navs := make(map[string][]navbar.Link, table.Len())
	for _, loc := range table.All() {
		lc := declared[loc.Code]
		tree, err := builder.Build(loc, lc.Sidebar, defTree)
		if err != nil {
			if findings, ok := validation.FromError(err); ok {
				return nil, &validation.Result{Findings: findings, LocalesTotal: table.Len()}, err
			}
			return nil, nil, err
		}
		if loc.IsDefault() {
			defTree = tree
		}
		s.trees[loc.Code] = tree
		s.fallback[loc.Code] = sidebar.IsFallback(loc, tree)
		if links := lc.Links(); len(links) > 0 {
			navs[loc.Code] = links
		}
	}
	s.nav = navbar.NewResolver(table, navs)

	in := validation.Input{Pages: cfg.Pages, Default: table.Default()}
	for _, loc := range table.All() {
		lc := declared[loc.Code]
		in.Locales = append(in.Locales, validation.LocaleInput{
			Locale:       loc,
			Tree:         s.trees[loc.Code],
			TreeFallback: s.fallback[loc.Code],
			Nav:          navs[loc.Code],
			NavDeclared:  len(navs[loc.Code]) > 0,
			Pages:        lc.Pages,
		})
		s.known[loc.Code] = knownRoutes(loc, table.Default(), s.trees[loc.Code], s.fallback[loc.Code], cfg.Pages, lc.Pages)

		if s.fallback[loc.Code] {
			o.recorder.IncFallback(metrics.FallbackSidebar, loc.Code)
		}
		if s.nav.IsFallback(loc) {
			o.recorder.IncFallback(metrics.FallbackNav, loc.Code)
		}
	}
	s.result = validator.Validate(in)

	o.recorder.SetValidationFindings(validation.SeverityError.String(), s.result.ErrorCount())
	o.recorder.SetValidationFindings(validation.SeverityWarning.String(), s.result.WarningCount())
	for _, f := range s.result.Warnings() {
		o.logger.Warn(f.Message,
			logfields.Rule(f.Rule),
			logfields.Locale(f.Locale),
			logfields.Route(f.Route),
			logfields.LoadID(s.loadID))
	}
	if s.result.HasErrors() {
		return nil, s.result, s.result.Err()
	}

	o.logger.Debug("site loaded",
		logfields.LoadID(s.loadID),
		logfields.Count(table.Len()),
		logfields.ConfigPath(cfg.Path))
	return s, s.result, nil
}

// knownRoutes lists the routes that exist in loc: its own sidebar routes
// (not those of a fallback tree), its root, and the whitelisted pages.
func knownRoutes(loc, def locale.Locale, tree *sidebar.Tree, fallback bool, global, local []string) sets.Set[string] {
	known := sets.New(route.Normalize(loc.Prefix))
	if !fallback {
		for _, r := range tree.Routes() {
			known.Add(r)
		}
	}
	for _, p := range global {
		known.Add(locale.Localize(p, def, loc))
	}
	for _, p := range local {
		known.Add(route.Normalize(p))
	}
	return known
}

// LoadID identifies this load; it changes every time the config is loaded.
func (s *Site) LoadID() string { return s.loadID }

// Title returns the site title.
func (s *Site) Title() string { return s.title }

// Base returns the public base path ("/docs/").
func (s *Site) Base() string { return s.base }

// Locales returns every locale, default first.
func (s *Site) Locales() []locale.Locale { return s.table.All() }

// Locale resolves the locale serving path.
func (s *Site) Locale(path string) locale.Locale {
	return s.table.Resolve(route.StripBase(route.Normalize(path), s.base))
}

// Sidebar returns the tree served to the locale with code.
func (s *Site) Sidebar(code string) (*sidebar.Tree, bool) {
	t, ok := s.trees[code]
	return t, ok
}

// Nav returns the nav links served to the locale with code.
func (s *Site) Nav(code string) ([]navbar.Link, bool) {
	loc, ok := s.table.ByCode(code)
	if !ok {
		return nil, false
	}
	return s.nav.Resolve(loc), true
}

// TOC returns the configured default TOC levels.
func (s *Site) TOC() toc.Config { return s.toc }

// ValidateAll returns the validation result computed at load.
func (s *Site) ValidateAll() *validation.Result {
	return &validation.Result{
		Findings:     slices.Clone(s.result.Findings),
		LocalesTotal: s.result.LocalesTotal,
	}
}
