package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/adapter"
	"github.com/MKhiriev/go-fuel-keeper/internal/cli"
	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// App is the fuelctl runtime: one adapter and one session store shared by
// the command tree.
type App struct {
	cli    *cli.CLI
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessions := NewFileSessionStore(cfg.SessionFile)

	return &App{
		cli:    cli.New(serverAdapter, sessions, buildInfo, log),
		logger: log,
	}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.cli.RootCommand()
	root.SetArgs(args)

	ctx = a.logger.WithContext(ctx)
	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Debug().Err(err).Str("func", "*App.Run").Msg("command failed")
		return err
	}
	return nil
}
