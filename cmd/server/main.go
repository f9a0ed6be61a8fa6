package main

import (
	"context"
	"fmt"

	"github.com/dsemenov/go-shield/internal/config"
	"github.com/dsemenov/go-shield/internal/handler"
	"github.com/dsemenov/go-shield/internal/logger"
	"github.com/dsemenov/go-shield/internal/server"
	"github.com/dsemenov/go-shield/internal/service"
	"github.com/dsemenov/go-shield/internal/store"
	"github.com/dsemenov/go-shield/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-shield-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	storages, err := newStorages(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newStorages selects the PostgreSQL repositories when a DSN is configured
// and the in-memory ones otherwise.
func newStorages(cfg *config.StructuredConfig, log *logger.Logger) (*store.Storages, error) {
	if cfg.Storage.DB.DSN == "" {
		log.Info().Msg("no database DSN configured, using in-memory storage")
		return store.NewMemoryStorages(log), nil
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return store.NewPostgresStorages(db, log), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
