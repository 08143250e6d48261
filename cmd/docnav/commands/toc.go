package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/headings"
	"github.com/ChrisShen93/xstate/internal/toc"
)

// TOCCmd implements the 'toc' command. It needs no configuration file.
type TOCCmd struct {
	File   string `arg:"" help:"Markdown or HTML file" type:"existingfile"`
	Min    int    `help:"Lowest heading level to include" default:"2"`
	Max    int    `help:"Highest heading level to include" default:"3"`
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (t *TOCCmd) Run(g *Global) error {
	cfg, err := toc.NewConfig(t.Min, t.Max)
	if err != nil {
		return err
	}
	hs, err := headings.FromFile(t.File)
	if err != nil {
		return err
	}
	nodes := toc.Nest(toc.Filter(hs, cfg))

	if t.Format == "json" {
		enc := json.NewEncoder(out(g))
		enc.SetIndent("", "  ")
		if err := enc.Encode(nodes); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "encoding table of contents").Build()
		}
		return nil
	}
	writeTOC(out(g), nodes, 0)
	return nil
}

func writeTOC(w io.Writer, nodes []*toc.Node, depth int) {
	for _, n := range nodes {
		_, _ = fmt.Fprintf(w, "%s- [%s](#%s)\n", strings.Repeat("  ", depth), n.Text, n.ID)
		writeTOC(w, n.Children, depth+1)
	}
}
