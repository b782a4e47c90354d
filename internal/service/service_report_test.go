package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/analytics"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/mock"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportSvc(t *testing.T) (ReportService, *mock.MockUserRepository, *mock.MockFuelEntryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	entries := mock.NewMockFuelEntryRepository(ctrl)
	engine := analytics.NewEngine(analytics.FixedClock(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	return NewReportService(users, entries, engine, logger.Nop()), users, entries
}

func TestReportService_Dashboard_CountsSkippedEntries(t *testing.T) {
	svc, users, entries := newTestReportSvc(t)

	users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
		{ID: "u1", Email: "a@example.com"},
		{ID: "u2", Email: "b@example.com"},
	}, nil)
	entries.EXPECT().ListAllEntries(gomock.Any()).Return([]models.FuelEntryRecord{
		encoded(t, models.FuelEntry{ID: "e1", UserID: "u1", Liters: 10, TotalCost: 20, DateTime: day(1)}),
		{ID: "e2", UserID: "u1", Data: []byte("garbage")},
		encoded(t, models.FuelEntry{ID: "e3", UserID: "u2", Liters: 30, TotalCost: 60, DateTime: day(2)}),
	}, nil)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalFuelEntries)
	assert.Equal(t, 1, stats.SkippedEntries)
	assert.Equal(t, 80.0, stats.TotalFuelCost)
	assert.Equal(t, 2.0, stats.AveragePricePerLiter)
}

func TestReportService_Dashboard_UserScanFails(t *testing.T) {
	svc, users, _ := newTestReportSvc(t)

	users.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrReportFailed)
}

func TestReportService_Dashboard_EntryScanFails(t *testing.T) {
	svc, users, entries := newTestReportSvc(t)

	users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil)
	entries.EXPECT().ListAllEntries(gomock.Any()).Return(nil, store.ErrScanningRows)

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrReportFailed)
	assert.ErrorIs(t, err, store.ErrScanningRows)
}

func TestReportService_Dashboard_Empty(t *testing.T) {
	svc, users, entries := newTestReportSvc(t)

	users.EXPECT().ListUsers(gomock.Any()).Return([]models.User{}, nil)
	entries.EXPECT().ListAllEntries(gomock.Any()).Return([]models.FuelEntryRecord{}, nil)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalFuelEntries)
	assert.Zero(t, stats.AveragePricePerLiter)
	assert.Zero(t, stats.SkippedEntries)
}

func TestReportService_UserReport(t *testing.T) {
	svc, users, entries := newTestReportSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Email: "a@example.com"}, nil)
	entries.EXPECT().ListEntriesByUser(gomock.Any(), "u1").Return([]models.FuelEntryRecord{
		encoded(t, models.FuelEntry{ID: "e1", UserID: "u1", Liters: 10, TotalCost: 20, DateTime: day(1)}),
	}, nil)

	stats, err := svc.UserReport(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalUsers)
	require.Len(t, stats.UsersWithMostEntries, 1)
	assert.Equal(t, "a@example.com", stats.UsersWithMostEntries[0].Email)
}

func TestReportService_UserReport_UnknownUser(t *testing.T) {
	svc, users, _ := newTestReportSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UserReport(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
