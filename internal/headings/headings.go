// Package headings extracts the heading outline of a content page so it can
// be fed to the TOC filter. Markdown is parsed with goldmark, rendered HTML
// with golang.org/x/net/html.
package headings

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/toc"
)

// FromFile reads path and dispatches on its extension.
func FromFile(path string) ([]toc.Heading, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read page").
			WithContext("path", path).
			Build()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FromMarkdown(data), nil
	case ".html", ".htm":
		return FromHTML(bytes.NewReader(data))
	default:
		return nil, errors.ParseError("unsupported page type, expected .md or .html").
			WithContext("path", path).
			Build()
	}
}

// FromReader is FromFile for content already in memory; kind is "md" or
// "html".
func FromReader(r io.Reader, kind string) ([]toc.Heading, error) {
	switch strings.ToLower(strings.TrimPrefix(kind, ".")) {
	case "md", "markdown":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read page").Build()
		}
		return FromMarkdown(data), nil
	case "html", "htm":
		return FromHTML(r)
	default:
		return nil, errors.ParseError("unsupported page type").WithContext("kind", kind).Build()
	}
}

// slug lowercases s and joins its letter and digit runs with hyphens.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r == '-' || r == '_' || r == ' ':
			if b.Len() > 0 {
				dash = true
			}
		case isWordRune(r):
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 0x7f
}
