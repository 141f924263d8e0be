package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/org-atlas/internal/catalog"
	"github.com/MKhiriev/org-atlas/internal/config"
	handlerhttp "github.com/MKhiriev/org-atlas/internal/handler/http"
	"github.com/MKhiriev/org-atlas/internal/logger"
	"github.com/MKhiriev/org-atlas/internal/server"
	"github.com/MKhiriev/org-atlas/internal/service"
	"github.com/MKhiriev/org-atlas/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("org-atlas-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// an unreadable catalog is fatal: serving an empty catalog silently
	// is worse than not starting
	cat, err := catalog.Load(cfg.Storage.Catalog.CSVPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading catalog")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(ctx, cat, storages, log)
	handlers := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
