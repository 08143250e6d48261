package site

import (
	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/navbar"
	"github.com/ChrisShen93/xstate/internal/route"
	"github.com/ChrisShen93/xstate/internal/sidebar"
	"github.com/ChrisShen93/xstate/internal/toc"
)

// ResolvedPageNav is everything a renderer needs to draw the navigation of
// one page.
type ResolvedPageNav struct {
	// Path is the normalized page route, with the site base removed.
	Path            string             `json:"path"`
	Locale          locale.Locale      `json:"locale"`
	Sidebar         *sidebar.Tree      `json:"sidebar"`
	SidebarFallback bool               `json:"sidebar_fallback"`
	Breadcrumb      []sidebar.Entry    `json:"breadcrumb"`
	NavLinks        []navbar.Link      `json:"nav_links"`
	TOC             []toc.Heading      `json:"toc"`
	Alternates      []navbar.Alternate `json:"alternates"`
	EditLink        string             `json:"edit_link,omitempty"`
}

// ResolvePageNav resolves the navigation of the page at path. headings are
// the page's headings in document order; a zero tocCfg selects the site
// default. It never fails: unknown paths get the default locale and an
// empty breadcrumb.
func (s *Site) ResolvePageNav(path string, headings []toc.Heading, tocCfg toc.Config) ResolvedPageNav {
	p := route.StripBase(route.Normalize(path), s.base)
	loc := s.table.Resolve(p)
	tree := s.trees[loc.Code]
	if tocCfg == (toc.Config{}) {
		tocCfg = s.toc
	}

	crumbs := sidebar.Breadcrumb(tree, p)
	return ResolvedPageNav{
		Path:            p,
		Locale:          loc,
		Sidebar:         tree,
		SidebarFallback: s.fallback[loc.Code],
		Breadcrumb:      crumbs,
		NavLinks:        s.nav.Resolve(loc),
		TOC:             toc.Filter(headings, tocCfg),
		Alternates:      s.nav.Alternates(loc, p, s.isKnown),
		EditLink:        s.edit.URL(s.sourceLink(loc, p, crumbs)),
	}
}

func (s *Site) isKnown(loc locale.Locale, r string) bool {
	return s.known[loc.Code].Has(route.Normalize(r))
}

// sourceLink returns the link as authored when the page is in the sidebar,
// so directory routes ("packages/xstate-react/") keep their trailing slash.
func (s *Site) sourceLink(loc locale.Locale, p string, crumbs []sidebar.Entry) string {
	if n := len(crumbs); n > 0 {
		if l, ok := crumbs[n-1].(sidebar.Leaf); ok && l.Link != "" {
			return l.Link
		}
	}
	if p == route.Normalize(loc.Prefix) {
		return loc.Prefix
	}
	return p
}
