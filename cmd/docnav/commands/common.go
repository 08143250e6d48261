// Package commands implements the docnav subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/ChrisShen93/xstate/internal/config"
	"github.com/ChrisShen93/xstate/internal/logfields"
	"github.com/ChrisShen93/xstate/internal/site"
	"github.com/ChrisShen93/xstate/internal/validation"
)

// Global is bound into every command's Run.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate sidebars and nav bars of every locale"`
	Resolve  ResolveCmd  `cmd:"" help:"Print the resolved navigation of one page as JSON"`
	TOC      TOCCmd      `cmd:"" name:"toc" help:"Print the table of contents of a Markdown or HTML file"`
	Serve    ServeCmd    `cmd:"" help:"Serve navigation over HTTP"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing and sets up logging once. Commands that
// load a config refine it with the config's logging section.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = newLogger(os.Stderr, level, config.LogFormatText)
	slog.SetDefault(g.Logger)
	if g.Out == nil {
		g.Out = os.Stdout
	}
	return nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func slogLevel(l config.LogLevel) slog.Level {
	switch l {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig loads the configuration and applies its logging section unless
// -v already forced debug output.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if !root.Verbose && g.Logger != nil {
		g.Logger = newLogger(os.Stderr, slogLevel(cfg.Logging.Level), cfg.Logging.Format)
		slog.SetDefault(g.Logger)
	}
	return cfg, nil
}

// loadSite loads the configuration and builds the site from it.
func loadSite(g *Global, root *CLI) (*site.Site, *validation.Result, error) {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return nil, nil, err
	}
	st, res, err := site.Load(cfg, site.WithLogger(logger(g)))
	if err != nil {
		return nil, res, err
	}
	logger(g).Info("Site loaded",
		logfields.ConfigPath(cfg.Path),
		logfields.LoadID(st.LoadID()),
		logfields.Count(len(st.Locales())))
	return st, res, nil
}

func logger(g *Global) *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func out(g *Global) io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// colorSupported reports whether w is a color-capable terminal.
func colorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}
