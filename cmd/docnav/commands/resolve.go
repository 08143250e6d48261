package commands

import (
	"encoding/json"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/headings"
	"github.com/ChrisShen93/xstate/internal/toc"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Path string `arg:"" help:"Page path, e.g. /zh/guides/start or /docs/guides/start.html"`
	Page string `help:"Markdown or HTML source of the page, used for the table of contents" type:"existingfile"`
	Min  int    `help:"Lowest heading level in the table of contents (default from config)"`
	Max  int    `help:"Highest heading level in the table of contents (default from config)"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	st, _, err := loadSite(g, root)
	if err != nil {
		return err
	}

	var hs []toc.Heading
	if r.Page != "" {
		if hs, err = headings.FromFile(r.Page); err != nil {
			return err
		}
	}
	cfg, err := levels(st.TOC(), r.Min, r.Max)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out(g))
	enc.SetIndent("", "  ")
	if err := enc.Encode(st.ResolvePageNav(r.Path, hs, cfg)); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "encoding resolved navigation").Build()
	}
	return nil
}

// levels overrides base with the non-zero flag values.
func levels(base toc.Config, minLevel, maxLevel int) (toc.Config, error) {
	if minLevel != 0 {
		base.MinLevel = minLevel
	}
	if maxLevel != 0 {
		base.MaxLevel = maxLevel
	}
	return toc.NewConfig(base.MinLevel, base.MaxLevel)
}
