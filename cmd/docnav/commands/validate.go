package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/logfields"
	"github.com/ChrisShen93/xstate/internal/validation"
	"github.com/ChrisShen93/xstate/internal/watch"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Watch  bool   `short:"w" help:"Re-validate whenever the configuration file changes"`
}

// Run validates once, or keeps validating on change with --watch.
func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	if !v.Watch {
		return v.report(g, root)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := v.report(g, root); err != nil {
		logger(g).Warn("Validation failed; waiting for changes", logfields.Error(err))
	}
	w, err := watch.New(root.Config, func(context.Context) error {
		return v.report(g, root)
	}, watch.WithLogger(logger(g)))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return w.Stop()
}

// report validates the site, writes the findings and returns the first
// blocking error.
func (v *ValidateCmd) report(g *Global, root *CLI) error {
	_, res, err := loadSite(g, root)
	if res == nil {
		return err
	}
	formatter := validation.NewFormatter(v.Format, colorSupported(out(g)))
	if ferr := formatter.Format(out(g), res, root.Config); ferr != nil {
		return errors.WrapError(ferr, errors.CategoryInternal, "formatting output").Build()
	}
	return err
}
