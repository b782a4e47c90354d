package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, credentials models.Credentials) (models.User, error)
	signInFn      func(ctx context.Context, credentials models.Credentials) (models.User, bool, error)
	adminSignInFn func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.signUpFn(ctx, credentials)
}

func (m *mockAuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.User, bool, error) {
	return m.signInFn(ctx, credentials)
}

func (m *mockAuthService) AdminSignIn(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return m.adminSignInFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token", Subject: user.ID, Role: models.RoleUser}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockFuelEntryService struct {
	createEntryFn   func(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error)
	createEntriesFn func(ctx context.Context, request models.CreateFuelEntriesRequest) ([]models.FuelEntry, error)
	listEntriesFn   func(ctx context.Context, userID string) ([]models.FuelEntry, error)
	getEntryFn      func(ctx context.Context, userID, entryID string) (models.FuelEntry, error)
	updateEntryFn   func(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error)
	deleteEntryFn   func(ctx context.Context, userID, entryID string) error
	deleteEntriesFn func(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error)
}

func (m *mockFuelEntryService) CreateEntry(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error) {
	return m.createEntryFn(ctx, request)
}

func (m *mockFuelEntryService) CreateEntries(ctx context.Context, request models.CreateFuelEntriesRequest) ([]models.FuelEntry, error) {
	return m.createEntriesFn(ctx, request)
}

func (m *mockFuelEntryService) ListEntries(ctx context.Context, userID string) ([]models.FuelEntry, error) {
	return m.listEntriesFn(ctx, userID)
}

func (m *mockFuelEntryService) GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntry, error) {
	return m.getEntryFn(ctx, userID, entryID)
}

func (m *mockFuelEntryService) UpdateEntry(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
	return m.updateEntryFn(ctx, userID, entryID, update)
}

func (m *mockFuelEntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return m.deleteEntryFn(ctx, userID, entryID)
}

func (m *mockFuelEntryService) DeleteEntries(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error) {
	return m.deleteEntriesFn(ctx, request)
}

type mockReportService struct {
	dashboardFn  func(ctx context.Context) (models.DashboardStats, error)
	userReportFn func(ctx context.Context, userID string) (models.DashboardStats, error)
}

func (m *mockReportService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return m.dashboardFn(ctx)
}

func (m *mockReportService) UserReport(ctx context.Context, userID string) (models.DashboardStats, error) {
	return m.userReportFn(ctx, userID)
}

type mockUserAdminService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	deleteUserFn func(ctx context.Context, userID string) (int, error)
}

func (m *mockUserAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserAdminService) DeleteUser(ctx context.Context, userID string) (int, error) {
	return m.deleteUserFn(ctx, userID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testUserID  = "user-1"
	testEntryID = "entry-1"
	userToken   = "user-token"
	adminToken  = "admin-token"
)

// tokenParser accepts userToken for testUserID and adminToken for the admin.
func tokenParser(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case userToken:
		return models.Token{SignedString: userToken, Subject: testUserID, Role: models.RoleUser}, nil
	case adminToken:
		return models.Token{SignedString: adminToken, Subject: "admin@example.com", Role: models.RoleAdmin}, nil
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// newTestHandler builds a Handler over the given services. Nil services are
// left nil; AuthService defaults to one that understands tokenParser tokens.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{parseTokenFn: tokenParser}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	return NewHandler(svcs, config.StructuredConfig{}, logger.Nop())
}

// encodeBody marshals v to a JSON request body.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// decodeError reads the {"error","details"} body of a failed response.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// withUser returns r as seen by a handler behind the auth middleware.
func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), userID, models.RoleUser))
}

// withURLParams attaches chi path parameters to r.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func ptr[T any](v T) *T {
	return &v
}
