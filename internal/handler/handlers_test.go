package handler

import (
	"testing"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_WithHTTPAddress verifies that a configured HTTP address
// yields an initialised HTTP handler.
func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "0.0.0.0:3002"}}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that an empty configuration is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
