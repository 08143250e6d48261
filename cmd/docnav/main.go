package main

import (
	"github.com/alecthomas/kong"

	"github.com/ChrisShen93/xstate/cmd/docnav/commands"
	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}

	ctx := kong.Parse(&cli,
		kong.Name("docnav"),
		kong.Description("Resolve and validate navigation for multi-locale documentation sites."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := ctx.Run(global, &cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
