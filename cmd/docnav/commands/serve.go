package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChrisShen93/xstate/internal/metrics"
	"github.com/ChrisShen93/xstate/internal/server"
	"github.com/ChrisShen93/xstate/internal/site"
)

// ServeCmd implements the 'serve' command. The site is loaded once; restart
// to pick up configuration changes.
type ServeCmd struct {
	Addr string `help:"Listen address (default from config server.addr)"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	reg := metrics.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	st, _, err := site.Load(cfg, site.WithLogger(logger(g)), site.WithRecorder(rec))
	if err != nil {
		return err
	}

	addr := s.Addr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	srv := server.New(addr, st, server.WithLogger(logger(g)), server.WithRecorder(rec), server.WithRegistry(reg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Start(ctx)
}
