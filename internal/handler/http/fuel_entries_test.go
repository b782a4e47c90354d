package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/internal/validators"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fillUp = models.FuelEntryData{
	Liters:        40,
	PricePerLiter: 1.5,
	TotalCost:     60,
	DateTime:      time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
}

func newHandlerForEntries(t *testing.T, svc service.FuelEntryService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{FuelEntryService: svc})
}

// entryRequest builds a request for the given entry as the owner sees it
// after the auth middleware.
func entryRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, encodeBody(t, body))
	}
	req = withURLParams(req, map[string]string{"user_id": testUserID, "id": testEntryID})
	return withUser(req, testUserID)
}

// ─────────────────────────────────────────────
// createFuelEntry
// ─────────────────────────────────────────────

func TestCreateFuelEntry_Success(t *testing.T) {
	svc := &mockFuelEntryService{
		createEntryFn: func(_ context.Context, r models.CreateFuelEntryRequest) (models.FuelEntry, error) {
			assert.Equal(t, testUserID, r.UserID)
			assert.Equal(t, fillUp, r.FuelEntryData)
			return models.NewFuelEntry(testEntryID, r.UserID, r.FuelEntryData), nil
		},
	}

	h := newHandlerForEntries(t, svc)
	req := entryRequest(t, http.MethodPost, "/api/fuel-entries", models.CreateFuelEntryRequest{UserID: testUserID, FuelEntryData: fillUp})
	rec := httptest.NewRecorder()

	h.createFuelEntry(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var entry models.FuelEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, testEntryID, entry.ID)
	assert.Equal(t, 60.0, entry.TotalCost)
}

func TestCreateFuelEntry_ForeignUser(t *testing.T) {
	h := newHandlerForEntries(t, &mockFuelEntryService{})
	req := entryRequest(t, http.MethodPost, "/api/fuel-entries", models.CreateFuelEntryRequest{UserID: "other", FuelEntryData: fillUp})
	rec := httptest.NewRecorder()

	h.createFuelEntry(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateFuelEntry_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{
			name:        "unknown user",
			err:         fmt.Errorf("%w: %s", service.ErrUnknownUser, testUserID),
			wantStatus:  http.StatusBadRequest,
			wantError:   "Invalid user ID",
			wantDetails: "No user found with id 'user-1'",
		},
		{
			name:       "missing date",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingDateTime),
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid fuel entry",
		},
		{
			name:       "storage failure",
			err:        fmt.Errorf("%w: disk full", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to create fuel entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockFuelEntryService{
				createEntryFn: func(_ context.Context, _ models.CreateFuelEntryRequest) (models.FuelEntry, error) {
					return models.FuelEntry{}, tt.err
				},
			}

			h := newHandlerForEntries(t, svc)
			req := entryRequest(t, http.MethodPost, "/api/fuel-entries", models.CreateFuelEntryRequest{UserID: testUserID, FuelEntryData: fillUp})
			rec := httptest.NewRecorder()

			h.createFuelEntry(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.wantDetails != "" {
				assert.Equal(t, tt.wantDetails, resp.Details)
			}
		})
	}
}

func TestCreateFuelEntry_InvalidJSON(t *testing.T) {
	h := newHandlerForEntries(t, &mockFuelEntryService{})
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/fuel-entries", strings.NewReader("{")), testUserID)
	rec := httptest.NewRecorder()

	h.createFuelEntry(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec).Error)
}

// ─────────────────────────────────────────────
// createFuelEntries
// ─────────────────────────────────────────────

func TestCreateFuelEntries_Success(t *testing.T) {
	svc := &mockFuelEntryService{
		createEntriesFn: func(_ context.Context, r models.CreateFuelEntriesRequest) ([]models.FuelEntry, error) {
			out := make([]models.FuelEntry, 0, len(r.Entries))
			for i, d := range r.Entries {
				out = append(out, models.NewFuelEntry(fmt.Sprintf("e%d", i), r.UserID, d))
			}
			return out, nil
		},
	}

	h := newHandlerForEntries(t, svc)
	body := models.CreateFuelEntriesRequest{UserID: testUserID, Entries: []models.FuelEntryData{fillUp, fillUp}}
	req := entryRequest(t, http.MethodPost, "/api/fuel-entries/bulk", body)
	rec := httptest.NewRecorder()

	h.createFuelEntries(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BulkCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Successfully created 2 fuel entries", resp.Message)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Entries, 2)
}

func TestCreateFuelEntries_EmptyList(t *testing.T) {
	svc := &mockFuelEntryService{
		createEntriesFn: func(_ context.Context, _ models.CreateFuelEntriesRequest) ([]models.FuelEntry, error) {
			return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyEntries)
		},
	}

	h := newHandlerForEntries(t, svc)
	req := entryRequest(t, http.MethodPost, "/api/fuel-entries/bulk", models.CreateFuelEntriesRequest{UserID: testUserID})
	rec := httptest.NewRecorder()

	h.createFuelEntries(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.ErrorResponse{
		Error:   "Empty entries list",
		Details: "At least one fuel entry must be provided",
	}, decodeError(t, rec))
}

func TestCreateFuelEntries_StorageFailure(t *testing.T) {
	svc := &mockFuelEntryService{
		createEntriesFn: func(_ context.Context, _ models.CreateFuelEntriesRequest) ([]models.FuelEntry, error) {
			return nil, fmt.Errorf("%w: boom", store.ErrCommitingTransaction)
		},
	}

	h := newHandlerForEntries(t, svc)
	body := models.CreateFuelEntriesRequest{UserID: testUserID, Entries: []models.FuelEntryData{fillUp}}
	req := entryRequest(t, http.MethodPost, "/api/fuel-entries/bulk", body)
	rec := httptest.NewRecorder()

	h.createFuelEntries(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create fuel entries", decodeError(t, rec).Error)
}

// ─────────────────────────────────────────────
// listFuelEntries
// ─────────────────────────────────────────────

func TestListFuelEntries_Success(t *testing.T) {
	svc := &mockFuelEntryService{
		listEntriesFn: func(_ context.Context, userID string) ([]models.FuelEntry, error) {
			assert.Equal(t, testUserID, userID)
			return []models.FuelEntry{
				models.NewFuelEntry("e2", userID, fillUp),
				models.NewFuelEntry("e1", userID, fillUp),
			}, nil
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.listFuelEntries(rec, entryRequest(t, http.MethodGet, "/api/fuel-entries/"+testUserID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.FuelEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].ID)
}

func TestListFuelEntries_EmptyIsArray(t *testing.T) {
	svc := &mockFuelEntryService{
		listEntriesFn: func(_ context.Context, _ string) ([]models.FuelEntry, error) {
			return nil, nil
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.listFuelEntries(rec, entryRequest(t, http.MethodGet, "/api/fuel-entries/"+testUserID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListFuelEntries_Failure(t *testing.T) {
	svc := &mockFuelEntryService{
		listEntriesFn: func(_ context.Context, _ string) ([]models.FuelEntry, error) {
			return nil, fmt.Errorf("%w: timeout", store.ErrExecutingQuery)
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.listFuelEntries(rec, entryRequest(t, http.MethodGet, "/api/fuel-entries/"+testUserID, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get fuel entries", decodeError(t, rec).Error)
}

// ─────────────────────────────────────────────
// getFuelEntry / updateFuelEntry / deleteFuelEntry
// ─────────────────────────────────────────────

func TestGetFuelEntry_Success(t *testing.T) {
	svc := &mockFuelEntryService{
		getEntryFn: func(_ context.Context, userID, entryID string) (models.FuelEntry, error) {
			return models.NewFuelEntry(entryID, userID, fillUp), nil
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.getFuelEntry(rec, entryRequest(t, http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var entry models.FuelEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, testEntryID, entry.ID)
	assert.Equal(t, testUserID, entry.UserID)
}

func TestPointOperations_NotFound(t *testing.T) {
	notFound := fmt.Errorf("wrapped: %w", store.ErrFuelEntryNotFound)
	svc := &mockFuelEntryService{
		getEntryFn: func(_ context.Context, _, _ string) (models.FuelEntry, error) {
			return models.FuelEntry{}, notFound
		},
		updateEntryFn: func(_ context.Context, _, _ string, _ models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
			return models.FuelEntry{}, notFound
		},
		deleteEntryFn: func(_ context.Context, _, _ string) error {
			return notFound
		},
	}
	h := newHandlerForEntries(t, svc)

	tests := []struct {
		name    string
		method  string
		body    any
		handler http.HandlerFunc
	}{
		{"get", http.MethodGet, nil, h.getFuelEntry},
		{"update", http.MethodPut, models.UpdateFuelEntryRequest{Liters: ptr(10.0)}, h.updateFuelEntry},
		{"delete", http.MethodDelete, nil, h.deleteFuelEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, entryRequest(t, tt.method, "/", tt.body))

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, models.ErrorResponse{
				Error:   "Fuel entry not found",
				Details: "No fuel entry found with id 'entry-1' for user 'user-1'",
			}, decodeError(t, rec))
		})
	}
}

func TestPointOperations_InternalErrors(t *testing.T) {
	failure := errors.New("database is locked")
	svc := &mockFuelEntryService{
		getEntryFn: func(_ context.Context, _, _ string) (models.FuelEntry, error) {
			return models.FuelEntry{}, fmt.Errorf("%w: %w", service.ErrMalformedEntry, failure)
		},
		updateEntryFn: func(_ context.Context, _, _ string, _ models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
			return models.FuelEntry{}, failure
		},
		deleteEntryFn: func(_ context.Context, _, _ string) error {
			return failure
		},
	}
	h := newHandlerForEntries(t, svc)

	tests := []struct {
		name      string
		method    string
		handler   http.HandlerFunc
		wantError string
	}{
		{"get", http.MethodGet, h.getFuelEntry, "Failed to get fuel entry"},
		{"update", http.MethodPut, h.updateFuelEntry, "Failed to update fuel entry"},
		{"delete", http.MethodDelete, h.deleteFuelEntry, "Failed to delete fuel entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body any
			if tt.method == http.MethodPut {
				body = models.UpdateFuelEntryRequest{}
			}
			rec := httptest.NewRecorder()
			tt.handler(rec, entryRequest(t, tt.method, "/", body))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

func TestUpdateFuelEntry_PassesPartialUpdate(t *testing.T) {
	svc := &mockFuelEntryService{
		updateEntryFn: func(_ context.Context, userID, entryID string, u models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
			require.NotNil(t, u.TotalCost)
			assert.Nil(t, u.Liters)
			entry := models.NewFuelEntry(entryID, userID, fillUp)
			entry.Apply(u)
			return entry, nil
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.updateFuelEntry(rec, entryRequest(t, http.MethodPut, "/", map[string]any{"total_cost": 75.5}))

	require.Equal(t, http.StatusOK, rec.Code)
	var entry models.FuelEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, 75.5, entry.TotalCost)
	assert.Equal(t, 40.0, entry.Liters)
}

func TestDeleteFuelEntry_Success(t *testing.T) {
	svc := &mockFuelEntryService{
		deleteEntryFn: func(_ context.Context, userID, entryID string) error {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, testEntryID, entryID)
			return nil
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.deleteFuelEntry(rec, entryRequest(t, http.MethodDelete, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Fuel entry deleted successfully"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// deleteFuelEntries
// ─────────────────────────────────────────────

func TestDeleteFuelEntries_ReportsMissingIDs(t *testing.T) {
	svc := &mockFuelEntryService{
		deleteEntriesFn: func(_ context.Context, r models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error) {
			assert.Equal(t, []string{"e1", "missing", "e2"}, r.EntryIDs)
			return models.BulkDeleteResult{DeletedIDs: []string{"e1", "e2"}}, nil
		},
	}

	h := newHandlerForEntries(t, svc)
	body := models.DeleteFuelEntriesRequest{UserID: testUserID, EntryIDs: []string{"e1", "missing", "e2"}}
	rec := httptest.NewRecorder()

	h.deleteFuelEntries(rec, entryRequest(t, http.MethodPost, "/api/fuel-entries/bulk/delete", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BulkDeleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.BulkDeleteResponse{
		Message:        "Successfully deleted 2 fuel entries",
		DeletedCount:   2,
		TotalRequested: 3,
		NotFoundCount:  1,
		DeletedIDs:     []string{"e1", "e2"},
	}, resp)
}

func TestDeleteFuelEntries_NothingDeleted(t *testing.T) {
	svc := &mockFuelEntryService{
		deleteEntriesFn: func(_ context.Context, _ models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error) {
			return models.BulkDeleteResult{}, nil
		},
	}

	h := newHandlerForEntries(t, svc)
	body := models.DeleteFuelEntriesRequest{UserID: testUserID, EntryIDs: []string{"x"}}
	rec := httptest.NewRecorder()

	h.deleteFuelEntries(rec, entryRequest(t, http.MethodPost, "/", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Successfully deleted 0 fuel entries",
		"deleted_count": 0,
		"total_requested": 1,
		"not_found_count": 1,
		"deleted_ids": []
	}`, rec.Body.String())
}

func TestDeleteFuelEntries_EmptyIDs(t *testing.T) {
	svc := &mockFuelEntryService{
		deleteEntriesFn: func(_ context.Context, _ models.DeleteFuelEntriesRequest) (models.BulkDeleteResult, error) {
			return models.BulkDeleteResult{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyEntryIDs)
		},
	}

	h := newHandlerForEntries(t, svc)
	rec := httptest.NewRecorder()

	h.deleteFuelEntries(rec, entryRequest(t, http.MethodPost, "/", models.DeleteFuelEntriesRequest{UserID: testUserID}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.ErrorResponse{
		Error:   "Empty entry IDs list",
		Details: "At least one entry ID must be provided",
	}, decodeError(t, rec))
}

func TestDeleteFuelEntries_ForeignUser(t *testing.T) {
	h := newHandlerForEntries(t, &mockFuelEntryService{})
	body := models.DeleteFuelEntriesRequest{UserID: "other", EntryIDs: []string{"e1"}}
	rec := httptest.NewRecorder()

	h.deleteFuelEntries(rec, entryRequest(t, http.MethodPost, "/", body))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// userStats
// ─────────────────────────────────────────────

func TestUserStats_Success(t *testing.T) {
	reports := &mockReportService{
		userReportFn: func(_ context.Context, userID string) (models.DashboardStats, error) {
			assert.Equal(t, testUserID, userID)
			return models.DashboardStats{TotalUsers: 1, TotalFuelEntries: 3}, nil
		},
	}

	h := newTestHandler(t, &service.Services{ReportService: reports})
	rec := httptest.NewRecorder()

	h.userStats(rec, entryRequest(t, http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalFuelEntries)
}

func TestUserStats_UnknownUser(t *testing.T) {
	reports := &mockReportService{
		userReportFn: func(_ context.Context, _ string) (models.DashboardStats, error) {
			return models.DashboardStats{}, store.ErrUserNotFound
		},
	}

	h := newTestHandler(t, &service.Services{ReportService: reports})
	rec := httptest.NewRecorder()

	h.userStats(rec, entryRequest(t, http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Through the router
// ─────────────────────────────────────────────

func TestRouter_CreateAndListAsOwner(t *testing.T) {
	svc := &mockFuelEntryService{
		createEntryFn: func(_ context.Context, r models.CreateFuelEntryRequest) (models.FuelEntry, error) {
			return models.NewFuelEntry(testEntryID, r.UserID, r.FuelEntryData), nil
		},
		listEntriesFn: func(_ context.Context, userID string) ([]models.FuelEntry, error) {
			return []models.FuelEntry{models.NewFuelEntry(testEntryID, userID, fillUp)}, nil
		},
	}
	router := newHandlerForEntries(t, svc).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/fuel-entries", encodeBody(t, models.CreateFuelEntryRequest{UserID: testUserID, FuelEntryData: fillUp}))
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/fuel-entries/"+testUserID, nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.FuelEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}

func TestRouter_StatsRouteWinsOverEntryID(t *testing.T) {
	reports := &mockReportService{
		userReportFn: func(_ context.Context, _ string) (models.DashboardStats, error) {
			return models.DashboardStats{TotalUsers: 1}, nil
		},
	}
	router := newTestHandler(t, &service.Services{ReportService: reports}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/fuel-entries/"+testUserID+"/stats", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
