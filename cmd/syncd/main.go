package main

import (
	"context"
	"fmt"

	"github.com/ataverin/go-content-sync/internal/config"
	"github.com/ataverin/go-content-sync/internal/gateway"
	handlerHTTP "github.com/ataverin/go-content-sync/internal/handler/http"
	"github.com/ataverin/go-content-sync/internal/logger"
	"github.com/ataverin/go-content-sync/internal/server"
	"github.com/ataverin/go-content-sync/internal/service"
	"github.com/ataverin/go-content-sync/internal/store"
	"github.com/ataverin/go-content-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectSQLite(context.Background(), cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to cache index database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating cache index database")
	}

	indexRepository := store.NewCatalogIndexRepository(db, log)

	transferGateway := gateway.NewHTTPTransferGateway(gateway.HTTPGatewayConfig{
		BaseURL:   cfg.Origin.BaseURL,
		AuthToken: cfg.Origin.AuthToken,
		HashKey:   cfg.Origin.HashKey,
		CacheDir:  cfg.Cache.Dir,
		Timeout:   cfg.Origin.RequestTimeout,
	}, indexRepository, log)

	catalogStore := store.NewCatalogStore(log)
	coordinator := service.NewSyncCoordinator(catalogStore, transferGateway, log, cfg.Sync)

	updateJob := service.NewUpdateJob(coordinator, logger.NewLogger("update-worker"), cfg.Sync.AutoApplyUpdates)
	backgroundWorkers := workers.New(
		workers.NewUpdateWorker(updateJob, cfg.Sync.UpdateCheckInterval),
	)

	handler := handlerHTTP.NewHandler(coordinator, log)

	srv, err := server.NewServer(handler, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
