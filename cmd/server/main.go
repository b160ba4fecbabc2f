package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/linechat-server/internal/app"
	"github.com/vovakirdan/linechat-server/internal/config"
	chatlog "github.com/vovakirdan/linechat-server/internal/log"
)

func main() {
	var (
		addr       = flag.String("addr", "", "TCP listen address (overrides config)")
		configPath = flag.String("config", "", "path to config file")
	)
	flag.Parse()

	bootLog := chatlog.New("info")

	cfg, path, err := config.Load(bootLog, *configPath)
	if err != nil {
		bootLog.Fatal().Err(err).Str("path", path).Msg("failed to load config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := chatlog.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", cfg.Addr).Msg("starting linechat server")
	if err := app.New(cfg, logger).Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
