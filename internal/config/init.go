package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/toc"
)

// Example returns a small two-locale configuration.
func Example() *Config {
	return &Config{
		Version:    CurrentVersion,
		Title:      "My Project",
		Base:       "/docs/",
		Repo:       "your-org/your-project",
		DocsDir:    DefaultDocsDir,
		DocsBranch: "main",
		EditLinks:  true,
		Forge:      ForgeConfig{Type: ForgeGitHub, BaseURL: DefaultForgeBaseURL},
		TOC:        toc.DefaultConfig(),
		Groups: map[string]any{
			"api": map[string]any{
				"title":    "API",
				"children": []any{"/api/client", "/api/server"},
			},
		},
		Locales: []LocaleConfig{
			{
				Code:        "en-US",
				Prefix:      "/",
				Label:       "English",
				Lang:        "en-US",
				SelectText:  "Languages",
				LastUpdated: "Last Updated",
				Nav: []NavItem{
					{Text: "Guide", Link: "/guides/start"},
					{Text: "GitHub", Link: "https://github.com/your-org/your-project"},
				},
				Sidebar: []any{
					"/",
					map[string]any{
						"title":    "Guides",
						"children": []any{"/guides/start", "/guides/install"},
					},
					map[string]any{"ref": "api"},
				},
			},
			{
				Code:        "zh-CN",
				Prefix:      "/zh/",
				Label:       "简体中文",
				Lang:        "zh-CN",
				SelectText:  "选择语言",
				LastUpdated: "最近更新",
				Sidebar: []any{
					"/zh/",
					map[string]any{
						"title":    "指南",
						"children": []any{"/zh/guides/start"},
					},
				},
			},
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Server:  ServerConfig{Addr: DefaultServerAddr},
	}
}

// Init writes the example configuration to path as YAML.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError(errors.CodeInvalidConfig, "configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
