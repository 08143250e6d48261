package headings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/toc"
)

const page = `---
title: Machines
---

# Machines

Intro text.

## Getting Started

### Options {#opts}

#### Deep

Setext Heading
--------------

## Using *emphasis*
`

func TestFromMarkdown(t *testing.T) {
	got := FromMarkdown([]byte(page))
	require.Len(t, got, 6)

	assert.Equal(t, toc.Heading{Level: 1, Text: "Machines", ID: "machines"}, got[0])
	assert.Equal(t, toc.Heading{Level: 2, Text: "Getting Started", ID: "getting-started"}, got[1])
	assert.Equal(t, toc.Heading{Level: 3, Text: "Options", ID: "opts"}, got[2])
	assert.Equal(t, 4, got[3].Level)
	assert.Equal(t, toc.Heading{Level: 2, Text: "Setext Heading", ID: "setext-heading"}, got[4])
	assert.Equal(t, "Using emphasis", got[5].Text)

	filtered := toc.Filter(got, toc.DefaultConfig())
	assert.Len(t, filtered, 4)
}

func TestFromMarkdown_NoHeadings(t *testing.T) {
	got := FromMarkdown([]byte("just a paragraph\n"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFromHTML(t *testing.T) {
	doc := `<html><body>
<h1>XState Docs</h1>
<h2 id="start">Getting   Started</h2>
<p>text</p>
<div><h3>Nested <code>interpret()</code></h3></div>
<h7>not a heading</h7>
</body></html>`

	got, err := FromHTML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, toc.Heading{Level: 1, Text: "XState Docs", ID: "xstate-docs"}, got[0])
	assert.Equal(t, toc.Heading{Level: 2, Text: "Getting Started", ID: "start"}, got[1])
	assert.Equal(t, 3, got[2].Level)
	assert.Equal(t, "Nested interpret()", got[2].Text)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "start.md")
	require.NoError(t, os.WriteFile(mdPath, []byte(page), 0o600))
	htmlPath := filepath.Join(dir, "start.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte("<h2>A</h2>"), 0o600))

	got, err := FromFile(mdPath)
	require.NoError(t, err)
	assert.Len(t, got, 6)

	got, err = FromFile(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, []toc.Heading{{Level: 2, Text: "A", ID: "a"}}, got)

	_, err = FromFile(filepath.Join(dir, "start.txt"))
	assert.True(t, errors.HasCategory(err, errors.CategoryFileSystem), "missing files fail before the type check")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	_, err = FromFile(filepath.Join(dir, "notes.txt"))
	assert.True(t, errors.HasCategory(err, errors.CategoryParse))
}

func TestFromReader(t *testing.T) {
	got, err := FromReader(strings.NewReader("## Two\n"), "md")
	require.NoError(t, err)
	assert.Equal(t, 2, got[0].Level)

	_, err = FromReader(strings.NewReader(""), "rst")
	require.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "getting-started", slug("Getting Started"))
	assert.Equal(t, "interpret", slug("interpret()"))
	assert.Equal(t, "a-b", slug("  A -- B  "))
	assert.Equal(t, "简介", slug("简介"))
}
