package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisShen93/xstate/internal/locale"
)

func table(t *testing.T) *locale.Table {
	t.Helper()
	tbl, err := locale.NewTable([]locale.Locale{
		{Code: "en-US", Prefix: "/", Label: "English", Lang: "en-US"},
		{Code: "zh-CN", Prefix: "/zh/", Label: "简体中文", Lang: "zh-CN"},
		{Code: "ja", Prefix: "/ja/", Label: "日本語"},
	})
	require.NoError(t, err)
	return tbl
}

func enNav() []Link {
	return []Link{
		NewLink("API", "https://xstate.js.org/api", nil),
		NewLink("Visualizer", "https://statecharts.github.io/xstate-viz", nil),
		NewLink("Chat", "https://gitter.im/statecharts/statecharts", nil),
		NewLink("Community", "https://spectrum.chat/statecharts", nil),
	}
}

func TestNewLink_InfersExternal(t *testing.T) {
	assert.True(t, NewLink("API", "https://xstate.js.org/api", nil).External)
	assert.True(t, NewLink("Mail", "mailto:team@example.com", nil).External)
	assert.False(t, NewLink("Guide", "/guides/start", nil).External)

	no := false
	assert.False(t, NewLink("API", "https://xstate.js.org/api", &no).External)

	assert.Equal(t, "/guides/start", NewLink("Guide", "/guides/start.html", nil).Route())
	assert.Empty(t, NewLink("API", "https://xstate.js.org/api", nil).Route())
}

func TestResolve_DeclaredAndFallback(t *testing.T) {
	tbl := table(t)
	zhNav := []Link{NewLink("指南", "/zh/guides/start", nil)}
	r := NewResolver(tbl, map[string][]Link{"en-US": enNav(), "zh-CN": zhNav})

	en, _ := tbl.ByCode("en-US")
	zh, _ := tbl.ByCode("zh-CN")
	ja, _ := tbl.ByCode("ja")

	assert.Equal(t, enNav(), r.Resolve(en))
	assert.Equal(t, zhNav, r.Resolve(zh))
	assert.Equal(t, enNav(), r.Resolve(ja), "whole-list fallback to the default locale")
	assert.Equal(t, enNav(), r.Resolve(locale.Locale{Code: "fr"}))

	assert.Equal(t, []string{"ja"}, r.Missing())
	assert.True(t, r.IsFallback(ja))
	assert.False(t, r.IsFallback(zh))
}

func TestResolve_ReturnsCopies(t *testing.T) {
	tbl := table(t)
	r := NewResolver(tbl, map[string][]Link{"en-US": enNav()})
	en := tbl.Default()

	got := r.Resolve(en)
	got[0].Text = "changed"
	assert.Equal(t, "API", r.Resolve(en)[0].Text)
}

func TestResolve_NoDefaultNav(t *testing.T) {
	r := NewResolver(table(t), nil)
	assert.NotNil(t, r.Resolve(locale.Locale{Code: "en-US"}))
	assert.Empty(t, r.Resolve(locale.Locale{Code: "en-US"}))
	assert.ElementsMatch(t, []string{"zh-CN", "ja"}, r.Missing())
}

func TestAlternates(t *testing.T) {
	tbl := table(t)
	r := NewResolver(tbl, nil)
	zh, _ := tbl.ByCode("zh-CN")

	known := func(loc locale.Locale, rt string) bool {
		return loc.Code != "ja"
	}
	alts := r.Alternates(zh, "/zh/guides/start", known)
	require.Len(t, alts, 3)

	byCode := map[string]Alternate{}
	for _, a := range alts {
		byCode[a.Locale] = a
	}
	assert.Equal(t, "/guides/start", byCode["en-US"].Link)
	assert.Equal(t, "/zh/guides/start", byCode["zh-CN"].Link)
	assert.True(t, byCode["zh-CN"].Current)
	assert.Equal(t, "/ja/", byCode["ja"].Link, "unknown routes fall back to the locale root")

	all := r.Alternates(tbl.Default(), "/guides/start", nil)
	assert.Equal(t, []string{"/guides/start", "/ja/guides/start", "/zh/guides/start"},
		[]string{all[0].Link, all[1].Link, all[2].Link})
}
