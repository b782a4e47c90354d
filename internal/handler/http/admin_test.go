package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminRequest goes through the full router with an admin token.
func adminRequest(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestDashboard_Success(t *testing.T) {
	generatedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	reports := &mockReportService{
		dashboardFn: func(_ context.Context) (models.DashboardStats, error) {
			return models.DashboardStats{TotalUsers: 2, TotalFuelEntries: 5, GeneratedAt: generatedAt}, nil
		},
	}

	rec := adminRequest(t, newTestHandler(t, &service.Services{ReportService: reports}), http.MethodGet, "/api/admin/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 5, stats.TotalFuelEntries)
	assert.True(t, generatedAt.Equal(stats.GeneratedAt))
}

func TestDashboard_Failure(t *testing.T) {
	reports := &mockReportService{
		dashboardFn: func(_ context.Context) (models.DashboardStats, error) {
			return models.DashboardStats{}, fmt.Errorf("%w: %w", service.ErrReportFailed, store.ErrScanningRows)
		},
	}

	rec := adminRequest(t, newTestHandler(t, &service.Services{ReportService: reports}), http.MethodGet, "/api/admin/dashboard")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get dashboard statistics", decodeError(t, rec).Error)
}

func TestListUsers_HidesPasswordHashes(t *testing.T) {
	users := &mockUserAdminService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{ID: "u1", Email: "a@example.com", PasswordHash: "$2a$10$secret"}}, nil
		},
	}

	rec := adminRequest(t, newTestHandler(t, &service.Services{UserAdminService: users}), http.MethodGet, "/api/admin/users")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.Contains(t, rec.Body.String(), "a@example.com")
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	users := &mockUserAdminService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, nil
		},
	}

	rec := adminRequest(t, newTestHandler(t, &service.Services{UserAdminService: users}), http.MethodGet, "/api/admin/users")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		deleteFn   func(ctx context.Context, userID string) (int, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "deleted with entries",
			deleteFn: func(_ context.Context, userID string) (int, error) {
				assert.Equal(t, "u1", userID)
				return 4, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"User deleted successfully","deleted_entries":4}`,
		},
		{
			name: "unknown user",
			deleteFn: func(_ context.Context, _ string) (int, error) {
				return 0, store.ErrUserNotFound
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"User not found","details":"No user found with id 'u1'"}`,
		},
		{
			name: "transaction failure",
			deleteFn: func(_ context.Context, _ string) (int, error) {
				return 0, fmt.Errorf("%w: locked", store.ErrCommitingTransaction)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserAdminService{deleteUserFn: tt.deleteFn}

			rec := adminRequest(t, newTestHandler(t, &service.Services{UserAdminService: users}), http.MethodDelete, "/api/admin/users/u1")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
