package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/MKhiriev/go-fuel-keeper/internal/client"
	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	args := os.Args[1:]
	verbose := slices.Contains(args, "--verbose") || slices.Contains(args, "-v")
	log := logger.NewCLILogger("fuelctl", os.Stderr, verbose)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
