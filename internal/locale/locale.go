// Package locale holds the configured site locales and resolves request
// paths to a locale by longest path-prefix match.
package locale

import (
	"slices"
	"strings"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/route"
	"golang.org/x/text/language"
)

// DefaultPrefix is the path prefix of the default locale.
const DefaultPrefix = "/"

// Locale is one language/region variant of the site.
type Locale struct {
	Code   string `json:"code"`
	Prefix string `json:"prefix"`
	Label  string `json:"label"`

	Lang         string `json:"lang,omitempty"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	SelectText   string `json:"select_text,omitempty"`
	LastUpdated  string `json:"last_updated,omitempty"`
	EditLinkText string `json:"edit_link_text,omitempty"`
}

// IsDefault reports whether l is the default locale.
func (l Locale) IsDefault() bool {
	return l.Prefix == DefaultPrefix
}

// Tag parses the locale's language (Lang, falling back to Code) as a BCP 47 tag.
func (l Locale) Tag() (language.Tag, error) {
	code := l.Lang
	if code == "" {
		code = l.Code
	}
	return language.Parse(code)
}

// Table is the immutable set of configured locales.
type Table struct {
	def     Locale
	locales []Locale // default first, then by prefix
	byCode  map[string]Locale
}

// NewTable validates locales and builds a Table. Exactly one locale must use
// the "/" prefix; the others need unique, rooted, slash-terminated prefixes
// that do not nest inside one another.
func NewTable(locales []Locale) (*Table, error) {
	t := &Table{byCode: make(map[string]Locale, len(locales))}
	prefixes := make(map[string]string, len(locales))
	haveDefault := false

	for i, l := range locales {
		l.Code = strings.TrimSpace(l.Code)
		if l.Code == "" {
			return nil, invalid("locale code is empty", i, l)
		}
		if _, dup := t.byCode[l.Code]; dup {
			return nil, invalid("duplicate locale code", i, l)
		}
		prefix, err := normalizePrefix(l.Prefix)
		if err != nil {
			return nil, invalid(err.Error(), i, l)
		}
		l.Prefix = prefix
		if other, dup := prefixes[prefix]; dup {
			return nil, invalid("locale prefix already used by "+other, i, l)
		}
		prefixes[prefix] = l.Code
		if l.IsDefault() {
			haveDefault = true
			t.def = l
		}
		t.byCode[l.Code] = l
		t.locales = append(t.locales, l)
	}
	if !haveDefault {
		return nil, errors.ConfigError(errors.CodeInvalidLocale, `no default locale: exactly one locale must use the "/" prefix`).Build()
	}

	for _, a := range t.locales {
		for _, b := range t.locales {
			if a.Code == b.Code || a.IsDefault() || b.IsDefault() {
				continue
			}
			if strings.HasPrefix(b.Prefix, a.Prefix) {
				return nil, errors.ConfigError(errors.CodeInvalidLocale, "locale prefixes overlap").
					WithContext("locale", b.Code).
					WithContext("prefix", b.Prefix).
					WithContext("overlaps", a.Code).
					Build()
			}
		}
	}

	slices.SortStableFunc(t.locales, func(a, b Locale) int {
		if a.IsDefault() != b.IsDefault() {
			if a.IsDefault() {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Prefix, b.Prefix)
	})
	return t, nil
}

func normalizePrefix(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.ConfigError(errors.CodeInvalidLocale, "locale prefix is empty").Build()
	}
	if p == DefaultPrefix {
		return p, nil
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	if route.Normalize(p)+"/" != p {
		return "", errors.ConfigError(errors.CodeInvalidLocale, "locale prefix must be a plain directory path like /zh/").Build()
	}
	return p, nil
}

func invalid(msg string, index int, l Locale) error {
	return errors.ConfigError(errors.CodeInvalidLocale, msg).
		WithContext("locale", l.Code).
		WithContext("prefix", l.Prefix).
		WithContext("index", index).
		Build()
}

// Resolve returns the locale serving path: the non-default locale with the
// longest matching prefix, or the default locale when none matches.
func (t *Table) Resolve(path string) Locale {
	p := route.Normalize(path)
	best := t.def
	for _, l := range t.locales {
		if l.IsDefault() {
			continue
		}
		if route.HasPrefix(p, l.Prefix) && len(l.Prefix) > len(best.Prefix) {
			best = l
		}
	}
	return best
}

// Default returns the default ("/") locale.
func (t *Table) Default() Locale {
	return t.def
}

// ByCode looks up a locale by its code.
func (t *Table) ByCode(code string) (Locale, bool) {
	l, ok := t.byCode[code]
	return l, ok
}

// All returns every locale, default first, then ordered by prefix.
func (t *Table) All() []Locale {
	return slices.Clone(t.locales)
}

// Len returns the number of locales.
func (t *Table) Len() int {
	return len(t.locales)
}

// Localize maps a route of the from locale onto the to locale by swapping
// path prefixes: Localize("/zh/guides/start", zh, en) is "/guides/start".
func Localize(path string, from, to Locale) string {
	p := route.Normalize(path)
	rest := p
	if !from.IsDefault() && route.HasPrefix(p, from.Prefix) {
		dir := strings.TrimSuffix(from.Prefix, "/")
		rest = strings.TrimPrefix(p, dir)
		if rest == "" {
			rest = "/"
		}
	}
	if to.IsDefault() {
		return rest
	}
	return route.Normalize(strings.TrimSuffix(to.Prefix, "/") + rest)
}
