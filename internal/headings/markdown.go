package headings

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/ChrisShen93/xstate/internal/toc"
)

var md = goldmark.New(goldmark.WithParserOptions(
	parser.WithAutoHeadingID(),
	parser.WithAttribute(),
))

// FromMarkdown returns the ATX and setext headings of a Markdown document in
// document order. A leading YAML frontmatter block is skipped. IDs come from
// {#id} attributes or are generated from the heading text.
func FromMarkdown(src []byte) []toc.Heading {
	body := stripFrontmatter(src)
	root := md.Parser().Parse(text.NewReader(body))

	out := make([]toc.Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		heading := toc.Heading{Level: h.Level, Text: strings.TrimSpace(nodeText(h, body))}
		if id, ok := h.AttributeString("id"); ok {
			switch v := id.(type) {
			case []byte:
				heading.ID = string(v)
			case string:
				heading.ID = v
			}
		}
		if heading.ID == "" {
			heading.ID = slug(heading.Text)
		}
		out = append(out, heading)
		return gmast.WalkSkipChildren, nil
	})
	return out
}

func nodeText(n gmast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, src))
		}
	}
	return b.String()
}

func stripFrontmatter(src []byte) []byte {
	if !bytes.HasPrefix(src, []byte("---\n")) && !bytes.HasPrefix(src, []byte("---\r\n")) {
		return src
	}
	rest := src[bytes.IndexByte(src, '\n')+1:]
	for len(rest) > 0 {
		line := rest
		next := len(rest)
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
			next = i + 1
		}
		if string(bytes.TrimRight(line, "\r")) == "---" {
			return rest[next:]
		}
		rest = rest[next:]
	}
	return src
}
