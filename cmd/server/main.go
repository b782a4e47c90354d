package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/analytics"
	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/handler"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/server"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("fuel-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, analytics.SystemClock{}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
