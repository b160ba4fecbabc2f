// Package app wires together the configuration, the hub, and the TCP
// transport.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/linechat-server/internal/config"
	"github.com/vovakirdan/linechat-server/internal/core"
	"github.com/vovakirdan/linechat-server/internal/transport/tcp"
)

// App owns the hub and the transport for one server process.
type App struct {
	cfg    config.Config
	hub    *core.Hub
	server *tcp.Server
	log    *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	hub := core.NewHub(cfg.DefaultRoom, cfg.Notices, logger)
	server := tcp.NewServer(hub, cfg, logger)

	return &App{
		cfg:    cfg,
		hub:    hub,
		server: server,
		log:    logger,
	}
}

// Run binds the listener, starts the hub, and serves until ctx is
// cancelled. A bind failure is returned immediately; nothing else runs.
func (a *App) Run(ctx context.Context) error {
	if err := a.server.Listen(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	go a.hub.Run(ctx)

	a.log.Info().Str("addr", a.server.Addr().String()).Str("room", a.cfg.DefaultRoom).Msg("listening")

	if err := a.server.Serve(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
