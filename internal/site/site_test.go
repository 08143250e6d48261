package site

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisShen93/xstate/internal/config"
	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/metrics"
	"github.com/ChrisShen93/xstate/internal/sidebar"
	"github.com/ChrisShen93/xstate/internal/toc"
	"github.com/ChrisShen93/xstate/internal/validation"
)

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func loadXState(t *testing.T) *Site {
	t.Helper()
	cfg, err := config.Load(filepath.Join("..", "..", "testdata", "xstate.yaml"))
	require.NoError(t, err)
	s, res, err := Load(cfg, quiet())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Zero(t, res.ErrorCount())
	return s
}

func parse(t *testing.T, doc string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(doc), config.FormatYAML)
	require.NoError(t, err)
	return cfg
}

func titles(entries []sidebar.Entry) []string {
	var out []string
	for _, e := range entries {
		switch v := e.(type) {
		case *sidebar.Group:
			out = append(out, v.Title)
		case sidebar.Leaf:
			out = append(out, v.Route)
		}
	}
	return out
}

func TestLoad_XState(t *testing.T) {
	s := loadXState(t)
	assert.NotEmpty(t, s.LoadID())
	assert.Equal(t, "XState Docs", s.Title())
	assert.Equal(t, "/docs/", s.Base())
	assert.Equal(t, toc.Config{MinLevel: 2, MaxLevel: 3}, s.TOC())

	locs := s.Locales()
	require.Len(t, locs, 2)
	assert.Equal(t, "en-US", locs[0].Code)

	en, ok := s.Sidebar("en-US")
	require.True(t, ok)
	assert.Equal(t, []string{"About", "Guides", "Tutorials", "Recipes", "Packages", "Patterns", "Examples"}, titles(en.Roots))

	nav, ok := s.Nav("zh-CN")
	require.True(t, ok)
	assert.Len(t, nav, 4)
	_, ok = s.Nav("fr")
	assert.False(t, ok)

	res := s.ValidateAll()
	assert.False(t, res.HasErrors())
	assert.Zero(t, res.WarningCount())
}

func TestResolvePageNav_LocaleScenarios(t *testing.T) {
	s := loadXState(t)

	zh := s.ResolvePageNav("/zh/guides/start", nil, toc.Config{})
	assert.Equal(t, "zh-CN", zh.Locale.Code)
	assert.Equal(t, []string{"简介", "指南"}, titles(zh.Sidebar.Roots), "partial tree has no Tutorials group")
	guides := zh.Sidebar.Roots[1].(*sidebar.Group)
	assert.Len(t, guides.Children, 5)
	assert.False(t, zh.SidebarFallback)
	require.Len(t, zh.Breadcrumb, 2)
	assert.Equal(t, "指南", zh.Breadcrumb[0].(*sidebar.Group).Title)
	assert.Equal(t, "/zh/guides/start", zh.Breadcrumb[1].(sidebar.Leaf).Route)

	en := s.ResolvePageNav("/guides/start", nil, toc.Config{})
	assert.Equal(t, "en-US", en.Locale.Code)
	assert.Len(t, en.NavLinks, 4)
	assert.Equal(t, "API", en.NavLinks[0].Text)
	assert.True(t, en.NavLinks[0].External)
}

func TestResolvePageNav_PathForms(t *testing.T) {
	s := loadXState(t)
	for _, p := range []string{"/docs/zh/guides/start.html", "/zh/guides/start/", "zh/guides/start.md#intro"} {
		got := s.ResolvePageNav(p, nil, toc.Config{})
		assert.Equal(t, "/zh/guides/start", got.Path, p)
		assert.Equal(t, "zh-CN", got.Locale.Code, p)
		assert.Len(t, got.Breadcrumb, 2, p)
	}

	root := s.ResolvePageNav("/zh", nil, toc.Config{})
	assert.Equal(t, "zh-CN", root.Locale.Code)
	assert.Empty(t, root.Breadcrumb)
	assert.NotNil(t, root.Breadcrumb)

	deep := s.ResolvePageNav("/tutorials/7guis/flight", nil, toc.Config{})
	assert.Equal(t, []string{"Tutorials", "7GUIs", "/tutorials/7guis/flight"}, titles(deep.Breadcrumb))

	unknown := s.ResolvePageNav("/nowhere", nil, toc.Config{})
	assert.Equal(t, "en-US", unknown.Locale.Code)
	assert.Empty(t, unknown.Breadcrumb)
}

func TestResolvePageNav_TOC(t *testing.T) {
	s := loadXState(t)
	headings := []toc.Heading{
		{Level: 1, Text: "Machines", ID: "machines"},
		{Level: 2, Text: "Configuration", ID: "configuration"},
		{Level: 3, Text: "Options", ID: "options"},
		{Level: 4, Text: "Guards", ID: "guards"},
	}

	got := s.ResolvePageNav("/guides/machines", headings, toc.Config{})
	assert.Equal(t, []string{"configuration", "options"}, ids(got.TOC))

	got = s.ResolvePageNav("/guides/machines", headings, toc.Config{MinLevel: 1, MaxLevel: 6})
	assert.Equal(t, headings, got.TOC)

	got = s.ResolvePageNav("/guides/machines", nil, toc.Config{})
	assert.NotNil(t, got.TOC)
	assert.Empty(t, got.TOC)
}

func ids(hs []toc.Heading) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func TestResolvePageNav_AlternatesAndEditLink(t *testing.T) {
	s := loadXState(t)

	got := s.ResolvePageNav("/guides/events", nil, toc.Config{})
	require.Len(t, got.Alternates, 2)
	assert.Equal(t, "/guides/events", got.Alternates[0].Link)
	assert.True(t, got.Alternates[0].Current)
	assert.Equal(t, "/zh/", got.Alternates[1].Link, "untranslated page falls back to the locale root")
	assert.Equal(t, "https://github.com/davidkpiano/xstate/edit/master/docs/guides/events.md", got.EditLink)

	got = s.ResolvePageNav("/zh/guides/start", nil, toc.Config{})
	assert.Equal(t, "/guides/start", got.Alternates[0].Link)
	assert.Equal(t, "/zh/guides/start", got.Alternates[1].Link)
	assert.Equal(t, "https://github.com/davidkpiano/xstate/edit/master/docs/zh/guides/start.md", got.EditLink)

	pkg := s.ResolvePageNav("/packages/xstate-react/", nil, toc.Config{})
	assert.Equal(t, "https://github.com/davidkpiano/xstate/edit/master/docs/packages/xstate-react/README.md", pkg.EditLink)

	home := s.ResolvePageNav("/zh/", nil, toc.Config{})
	assert.Equal(t, "https://github.com/davidkpiano/xstate/edit/master/docs/zh/README.md", home.EditLink)
}

const fallbackDoc = `
locales:
  - code: en-US
    prefix: /
    nav:
      - {text: Start, link: /guides/start}
    sidebar:
      - title: Guides
        children: [/guides/start, /guides/machines]
  - code: zh-CN
    prefix: /zh/
`

type countingRecorder struct {
	metrics.NoopRecorder
	fallbacks map[metrics.FallbackKind]int
	findings  map[string]int
}

func (c *countingRecorder) IncFallback(kind metrics.FallbackKind, _ string) { c.fallbacks[kind]++ }
func (c *countingRecorder) SetValidationFindings(sev string, n int)        { c.findings[sev] = n }

func TestLoad_WholeTreeFallback(t *testing.T) {
	rec := &countingRecorder{fallbacks: map[metrics.FallbackKind]int{}, findings: map[string]int{}}
	s, res, err := Load(parse(t, fallbackDoc), quiet(), WithRecorder(rec), WithLoadID("fixed"))
	require.NoError(t, err)
	assert.Equal(t, "fixed", s.LoadID())

	en, _ := s.Sidebar("en-US")
	zh, _ := s.Sidebar("zh-CN")
	assert.Same(t, en, zh, "fallback returns the default tree itself")

	got := s.ResolvePageNav("/zh/guides/start", nil, toc.Config{})
	assert.True(t, got.SidebarFallback)
	assert.Equal(t, "en-US", got.Sidebar.Locale.Code)
	assert.Empty(t, got.Breadcrumb)
	assert.Equal(t, "Start", got.NavLinks[0].Text)

	rules := map[string]bool{}
	for _, f := range res.Warnings() {
		rules[f.Rule] = true
	}
	assert.True(t, rules[validation.RuleSidebarFallback])
	assert.True(t, rules[validation.RuleMissingNav])
	assert.Equal(t, 1, rec.fallbacks[metrics.FallbackSidebar])
	assert.Equal(t, 1, rec.fallbacks[metrics.FallbackNav])
	assert.Equal(t, 2, rec.findings["WARNING"])
	assert.Equal(t, 0, rec.findings["ERROR"])
}

func TestLoad_Failures(t *testing.T) {
	t.Run("duplicate route", func(t *testing.T) {
		s, res, err := Load(parse(t, `
locales:
  - code: en
    prefix: /
    sidebar: [/a, {title: G, children: [/a.html]}]
`), quiet())
		require.Error(t, err)
		assert.Nil(t, s)
		require.NotNil(t, res)
		assert.Equal(t, 1, res.ErrorCount())
		assert.True(t, errors.HasCode(err, errors.CodeDuplicateRoute))
	})

	t.Run("dangling nav link", func(t *testing.T) {
		s, res, err := Load(parse(t, `
locales:
  - code: en
    prefix: /
    nav: [{text: Ghost, link: /ghost}, {text: Also, link: /also}]
    sidebar: [/a]
`), quiet())
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Equal(t, 2, res.ErrorCount())
		assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	})

	t.Run("malformed entry", func(t *testing.T) {
		_, res, err := Load(parse(t, `
locales:
  - code: en
    prefix: /
    sidebar: [{title: X}]
`), quiet())
		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, errors.HasCode(err, errors.CodeMalformedEntry))
	})

	t.Run("bad locale table", func(t *testing.T) {
		_, _, err := Load(parse(t, `
locales:
  - {code: en, prefix: /zh/}
`), quiet())
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidLocale))
	})
}

func TestLoad_GlobalPagesPerLocale(t *testing.T) {
	doc := func(zhLink string) string {
		return `
pages: [/api]
locales:
  - code: en
    prefix: /
    nav: [{text: API, link: /api}]
  - code: zh
    prefix: /zh/
    nav: [{text: API, link: ` + zhLink + `}]
`
	}

	s, res, err := Load(parse(t, doc("/zh/api")), quiet())
	require.NoError(t, err)
	assert.Zero(t, res.ErrorCount())

	nav := s.ResolvePageNav("/api", nil, toc.Config{})
	require.Len(t, nav.Alternates, 2)
	assert.Equal(t, "/zh/api", nav.Alternates[1].Link)

	_, res, err = Load(parse(t, doc("/api")), quiet())
	require.Error(t, err)
	require.Equal(t, 1, res.ErrorCount())
	assert.Equal(t, "zh", res.Errors()[0].Locale)
	assert.True(t, errors.HasCode(err, errors.CodeDanglingLink))
}

func TestResolvePageNav_Concurrent(t *testing.T) {
	s := loadXState(t)
	paths := []string{"/zh/guides/start", "/guides/start", "/tutorials/7guis/timer", "/nowhere", "/docs/zh/about/goals.html"}
	want := make(map[string]ResolvedPageNav, len(paths))
	for _, p := range paths {
		want[p] = s.ResolvePageNav(p, nil, toc.Config{})
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				p := paths[(g+i)%len(paths)]
				got := s.ResolvePageNav(p, nil, toc.Config{})
				if got.Locale != want[p].Locale || len(got.Breadcrumb) != len(want[p].Breadcrumb) || got.EditLink != want[p].EditLink {
					select {
					case errs <- p:
					default:
					}
					return
				}
			}
		}(g)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent resolution did not finish")
	}
	close(errs)
	for p := range errs {
		t.Errorf("inconsistent resolution for %s", p)
	}
}
