package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smartlife/pkg/alias"
	"smartlife/pkg/api"
	"smartlife/pkg/config"
	"smartlife/pkg/rpc"
	"smartlife/pkg/tuya"
)

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadFromEnv()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open alias store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close alias store")
		}
	}()

	log.Info().Str("path", cfg.Store.Path).Bool("sqlite", cfg.Store.SQLite()).Msg("Alias store opened")

	if cfg.Tuya.ClientID == "" || cfg.Tuya.ClientSecret == "" {
		log.Warn().Msg("Tuya credentials not configured, vendor calls will fail until they are set")
	}

	vendor := tuya.NewClient(tuya.Config{
		BaseURL:      cfg.Tuya.BaseURL,
		ClientID:     cfg.Tuya.ClientID,
		ClientSecret: cfg.Tuya.ClientSecret,
	})

	dispatcher := rpc.NewDispatcher(store, vendor)
	router := api.NewRouter(dispatcher, store)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close alias store")
		}
		os.Exit(0)
	}()

	addr := cfg.Server.Address()
	log.Info().Str("address", addr).Str("vendor", cfg.Tuya.BaseURL).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// openStore selects the alias store backend from the configured path.
func openStore(cfg *config.Config) (alias.Store, error) {
	if cfg.Store.SQLite() {
		return alias.OpenSQLiteStore(cfg.Store.Path)
	}
	return alias.NewFileStore(cfg.Store.Path), nil
}
