// Package editlink builds "edit this page" URLs pointing at the forge that
// hosts the documentation sources.
package editlink

import (
	"fmt"
	"path"
	"strings"

	"github.com/ChrisShen93/xstate/internal/config"
	"github.com/ChrisShen93/xstate/internal/route"
)

// Builder maps page routes to forge edit URLs. The zero value is disabled.
type Builder struct {
	enabled bool
	forge   config.ForgeType
	baseURL string
	repo    string
	branch  string
	docsDir string
}

// New returns a builder for cfg. It is disabled unless edit_links is set
// and a repo is configured.
func New(cfg *config.Config) *Builder {
	if cfg == nil || !cfg.EditLinks || cfg.Repo == "" {
		return &Builder{}
	}
	return &Builder{
		enabled: true,
		forge:   cfg.Forge.Type,
		baseURL: strings.TrimSuffix(cfg.Forge.BaseURL, "/"),
		repo:    cfg.Repo,
		branch:  cfg.DocsBranch,
		docsDir: strings.Trim(cfg.DocsDir, "/"),
	}
}

// Enabled reports whether URL produces links.
func (b *Builder) Enabled() bool {
	return b != nil && b.enabled
}

// URL returns the edit URL for the page at link, or "" when disabled or
// link is external. Links ending in "/" name a directory whose page source
// is README.md.
func (b *Builder) URL(link string) string {
	if !b.Enabled() || link == "" || route.IsExternal(link) {
		return ""
	}
	file := SourceFile(link)
	if b.docsDir != "" {
		file = b.docsDir + "/" + file
	}
	return GenerateEditURL(b.forge, b.baseURL, b.repo, b.branch, file)
}

// SourceFile maps a route to its Markdown source path relative to the docs
// directory: "/guides/start" is "guides/start.md", "/zh/" is "zh/README.md".
func SourceFile(link string) string {
	clean := link
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	dir := clean == "" || strings.HasSuffix(clean, "/")
	norm := strings.TrimPrefix(route.Normalize(clean), "/")
	switch strings.ToLower(path.Base(clean)) {
	case "readme.md", "readme", "index.md", "index.html":
		dir = true
	}
	if dir || norm == "" {
		return path.Join(norm, "README.md")
	}
	return norm + ".md"
}

// GenerateEditURL constructs a web UI edit URL for a repository file given the forge type.
// baseURL should be the canonical web base (no trailing slash), fullName is "org/repo".
// Returns "" if inputs are insufficient or the forge type is unsupported.
func GenerateEditURL(forgeType config.ForgeType, baseURL, fullName, branch, filePath string) string {
	if forgeType == "" || baseURL == "" || fullName == "" || branch == "" || filePath == "" {
		return ""
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	switch forgeType {
	case config.ForgeGitHub:
		return fmt.Sprintf("%s/%s/edit/%s/%s", baseURL, fullName, branch, filePath)
	case config.ForgeGitLab:
		return fmt.Sprintf("%s/%s/-/edit/%s/%s", baseURL, fullName, branch, filePath)
	case config.ForgeForgejo:
		return fmt.Sprintf("%s/%s/_edit/%s/%s", baseURL, fullName, branch, filePath)
	default:
		return ""
	}
}
