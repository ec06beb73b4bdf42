package main

import (
	"github.com/coder/quartz"

	"github.com/lox/pokercoach/cmd/pokercoach/shared"
	"github.com/lox/pokercoach/internal/server"
)

// ServeCmd runs the HTTP/WebSocket server
type ServeCmd struct {
	Addr string `short:"a" help:"Server address to bind to (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}

	addr := e.cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	srv := server.NewServer(addr, e.engine(), quartz.NewReal(), e.logger)
	ctx := shared.SetupSignalHandler(e.logger)

	e.logger.Info("Starting pokercoach server", "addr", addr, "version", version)
	return srv.Start(ctx)
}
