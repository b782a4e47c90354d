package service

import (
	"github.com/MKhiriev/go-fuel-keeper/internal/analytics"
	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

type Services struct {
	AuthService      AuthService
	FuelEntryService FuelEntryService
	ReportService    ReportService
	UserAdminService UserAdminService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, clock analytics.Clock, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	fuelEntryService := NewFuelEntryValidationService().
		Wrap(NewFuelEntryService(storages.FuelEntryRepository, storages.UserRepository, logger))

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		FuelEntryService: fuelEntryService,
		ReportService:    NewReportService(storages.UserRepository, storages.FuelEntryRepository, analytics.NewEngine(clock), logger),
		UserAdminService: NewUserAdminService(storages.UserRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
