package config

import "github.com/ChrisShen93/xstate/internal/toc"

// Default values applied to omitted fields.
const (
	DefaultBase         = "/"
	DefaultDocsDir      = "docs"
	DefaultDocsBranch   = "master"
	DefaultForgeBaseURL = "https://github.com"
	DefaultServerAddr   = ":8080"
)

// ApplyDefaults fills omitted fields. A TOC block with both levels omitted
// gets toc.DefaultConfig; a partially specified one keeps its values and is
// left to Validate.
func ApplyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Base == "" {
		c.Base = DefaultBase
	}
	if c.TOC.MinLevel == 0 && c.TOC.MaxLevel == 0 {
		c.TOC = toc.DefaultConfig()
	}
	if c.DocsDir == "" {
		c.DocsDir = DefaultDocsDir
	}
	if c.DocsBranch == "" {
		c.DocsBranch = DefaultDocsBranch
	}
	if c.Forge.Type == "" {
		c.Forge.Type = ForgeGitHub
	}
	if c.Forge.BaseURL == "" {
		c.Forge.BaseURL = DefaultForgeBaseURL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}
