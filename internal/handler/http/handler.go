package http

import (
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables the HashSHA256 integrity check on bulk routes.
	hashKey        string
	cors           CORSConfig
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hashKey:        cfg.App.HashKey,
		cors:           NewCORSConfig(cfg.Server.CORSOrigins),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
