// Package route normalizes sidebar routes and request paths so they can be
// compared for equality, duplicate detection and prefix matching.
package route

import (
	"path"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// Normalize returns the canonical form of a route or request path:
// rooted, without query or fragment, without page extensions or index
// files, and without a trailing slash (except for "/").
//
//	"packages/xstate-react/" -> "/packages/xstate-react"
//	"/guides/start.html"     -> "/guides/start"
//	"/zh/README.md"          -> "/zh"
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	s = path.Clean(s)

	base := path.Base(s)
	ext := path.Ext(base)
	switch strings.ToLower(ext) {
	case ".html", ".md":
		s = strings.TrimSuffix(s, ext)
		name := strings.ToLower(strings.TrimSuffix(base, ext))
		if name == "index" || name == "readme" {
			s = path.Dir(s)
		}
	default:
		if strings.EqualFold(base, "readme") {
			s = path.Dir(s)
		}
	}
	if s == "." || s == "" {
		return "/"
	}
	return s
}

// Equal reports whether two routes are the same page after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// NormalizeBase returns base as a rooted path with a trailing slash ("/docs/").
func NormalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	base = path.Clean("/" + strings.Trim(base, "/"))
	return base + "/"
}

// StripBase removes the site base from a request path. Paths outside the
// base are returned unchanged.
func StripBase(p, base string) string {
	base = NormalizeBase(base)
	if base == "/" {
		return p
	}
	if p == strings.TrimSuffix(base, "/") {
		return "/"
	}
	if rest, ok := strings.CutPrefix(p, base); ok {
		return "/" + rest
	}
	return p
}

// IsExternal reports whether target points outside the site: it carries a
// URL scheme ("https:", "mailto:") or is protocol-relative ("//host/x").
func IsExternal(target string) bool {
	target = strings.TrimSpace(target)
	return schemeRe.MatchString(target) || strings.HasPrefix(target, "//")
}

// HasPrefix reports whether the normalized path p lies under prefix, where
// prefix is a directory form such as "/zh/". The bare directory ("/zh")
// matches too.
func HasPrefix(p, prefix string) bool {
	if prefix == "/" {
		return true
	}
	dir := strings.TrimSuffix(prefix, "/")
	return p == dir || strings.HasPrefix(p, dir+"/")
}
