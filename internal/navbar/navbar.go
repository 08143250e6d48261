// Package navbar resolves the top navigation links of each locale and the
// cross-locale link set shown in the language selector.
package navbar

import (
	"slices"
	"strings"

	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/route"
)

// Link is one navigation bar item.
type Link struct {
	Text     string `json:"text"`
	Target   string `json:"target"`
	External bool   `json:"external"`
}

// NewLink builds a link. When external is nil it is inferred from target:
// anything carrying a URL scheme leaves the site.
func NewLink(text, target string, external *bool) Link {
	ext := route.IsExternal(target)
	if external != nil {
		ext = *external
	}
	return Link{Text: strings.TrimSpace(text), Target: strings.TrimSpace(target), External: ext}
}

// Route returns the normalized target of an internal link, or "" for
// external links.
func (l Link) Route() string {
	if l.External {
		return ""
	}
	return route.Normalize(l.Target)
}

// Resolver hands out the materialized nav list of every locale. A locale
// that declares no links gets the default locale's list as a whole; lists are
// never merged item by item.
type Resolver struct {
	table   *locale.Table
	lists   map[string][]Link
	missing []string
}

// NewResolver materializes the nav lists of every locale in table from the
// declared lists keyed by locale code.
func NewResolver(table *locale.Table, declared map[string][]Link) *Resolver {
	r := &Resolver{table: table, lists: make(map[string][]Link, table.Len())}
	def := slices.Clone(declared[table.Default().Code])
	if def == nil {
		def = []Link{}
	}
	for _, loc := range table.All() {
		links := declared[loc.Code]
		if len(links) == 0 {
			r.lists[loc.Code] = def
			if !loc.IsDefault() {
				r.missing = append(r.missing, loc.Code)
			}
			continue
		}
		r.lists[loc.Code] = slices.Clone(links)
	}
	return r
}

// Resolve returns the nav links of loc. Unknown locales get the default list.
func (r *Resolver) Resolve(loc locale.Locale) []Link {
	links, ok := r.lists[loc.Code]
	if !ok {
		links = r.lists[r.table.Default().Code]
	}
	return slices.Clone(links)
}

// IsFallback reports whether loc is served the default locale's list.
func (r *Resolver) IsFallback(loc locale.Locale) bool {
	return slices.Contains(r.missing, loc.Code)
}

// Missing lists the non-default locale codes that fell back to the default
// locale's nav, in table order.
func (r *Resolver) Missing() []string {
	return slices.Clone(r.missing)
}

// Alternate is the counterpart of the current page in one locale.
type Alternate struct {
	Locale  string `json:"locale"`
	Label   string `json:"label"`
	Lang    string `json:"lang,omitempty"`
	Link    string `json:"link"`
	Current bool   `json:"current"`
}

// KnownFunc reports whether route exists in loc.
type KnownFunc func(loc locale.Locale, route string) bool

// Alternates maps path, served by current, onto every locale by swapping the
// locale prefix. When known rejects the swapped route, the alternate points
// at the target locale's root instead. A nil known accepts every route.
func (r *Resolver) Alternates(current locale.Locale, path string, known KnownFunc) []Alternate {
	all := r.table.All()
	out := make([]Alternate, 0, len(all))
	for _, loc := range all {
		link := locale.Localize(path, current, loc)
		if loc.Code != current.Code && known != nil && !known(loc, link) {
			link = loc.Prefix
		}
		out = append(out, Alternate{
			Locale:  loc.Code,
			Label:   loc.Label,
			Lang:    loc.Lang,
			Link:    link,
			Current: loc.Code == current.Code,
		})
	}
	return out
}
