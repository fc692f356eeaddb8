package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/coordctl/internal/admin"
	"github.com/danmuck/coordctl/internal/config"
	"github.com/danmuck/coordctl/internal/coordinator"
	"github.com/danmuck/coordctl/internal/credstore"
	"github.com/danmuck/coordctl/internal/observability"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "coordctl.toml", "client config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	store, err := credstore.OpenFileStore(cfg.TokenStorePath)
	if err != nil {
		return err
	}

	logger := observability.InitLogger("coordctl")
	srv := admin.NewServer(admin.Options{
		Store:       store,
		Registry:    coordinator.NewRegistry(),
		Auth:        admin.StaticToken{Token: cfg.AdminToken},
		CorsOrigins: cfg.CorsOrigins,
		Logger:      logger,
	})
	log.Info().Str("addr", cfg.AdminAddr).Msg("admin server listening")
	return srv.Run(cfg.AdminAddr)
}
