package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := config.StructuredConfig{
		App:    config.App{HashKey: "secret"},
		Server: config.Server{RequestTimeout: 5 * time.Second, CORSOrigins: []string{"https://fuel.example.com"}},
	}

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "secret", h.hashKey)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Equal(t, []string{"https://fuel.example.com"}, h.cors.AllowedOrigins)
}

func TestNewHandler_EmptyCORSOriginsAllowsAny(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Equal(t, []string{"*"}, h.cors.AllowedOrigins)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register. Protected
// routes answer 401 without a token, which still proves they exist.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/auth/signup"},
	{http.MethodPost, "/api/auth/signin"},
	{http.MethodPost, "/api/admin/signin"},
	{http.MethodGet, "/api/version"},

	{http.MethodPost, "/api/fuel-entries"},
	{http.MethodPost, "/api/fuel-entries/bulk"},
	{http.MethodPost, "/api/fuel-entries/bulk/delete"},
	{http.MethodGet, "/api/fuel-entries/u1"},
	{http.MethodGet, "/api/fuel-entries/u1/stats"},
	{http.MethodGet, "/api/fuel-entries/u1/e1"},
	{http.MethodPut, "/api/fuel-entries/u1/e1"},
	{http.MethodDelete, "/api/fuel-entries/u1/e1"},

	{http.MethodGet, "/api/admin/dashboard"},
	{http.MethodGet, "/api/admin/users"},
	{http.MethodDelete, "/api/admin/users/u1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range expectedRoutes[4:] {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	// POST /api/version is not registered, only GET is.
	req := httptest.NewRequest(http.MethodPost, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_UserRoutes_ForeignUserIsForbidden(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/fuel-entries/someone-else", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeError(t, rec).Error)
}

func TestInit_AdminRoutes_UserTokenIsForbidden(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin role required", decodeError(t, rec).Details)
}

func TestInit_AdminToken_CannotReadUserEntries(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/fuel-entries/"+testUserID, nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
