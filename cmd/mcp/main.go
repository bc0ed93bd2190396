package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smartlife/pkg/alias"
	"smartlife/pkg/config"
	slmcp "smartlife/pkg/mcp"
	"smartlife/pkg/rpc"
	"smartlife/pkg/tuya"
)

func main() {
	// Logging must go to stderr — stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadFromEnv()

	var store alias.Store
	if cfg.Store.SQLite() {
		s, err := alias.OpenSQLiteStore(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open alias store")
		}
		store = s
	} else {
		store = alias.NewFileStore(cfg.Store.Path)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close alias store")
		}
	}()

	vendor := tuya.NewClient(tuya.Config{
		BaseURL:      cfg.Tuya.BaseURL,
		ClientID:     cfg.Tuya.ClientID,
		ClientSecret: cfg.Tuya.ClientSecret,
	})

	dispatcher := rpc.NewDispatcher(store, vendor)
	mcpServer := slmcp.NewServer(dispatcher)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
