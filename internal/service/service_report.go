package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-keeper/internal/analytics"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// reportService scans the store into memory and hands the result to the
// analytics engine. Nothing is cached: every call reads the full corpus.
type reportService struct {
	userRepository      store.UserRepository
	fuelEntryRepository store.FuelEntryRepository
	engine              *analytics.Engine

	logger *logger.Logger
}

func NewReportService(userRepository store.UserRepository, fuelEntryRepository store.FuelEntryRepository, engine *analytics.Engine, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:      userRepository,
		fuelEntryRepository: fuelEntryRepository,
		engine:              engine,
		logger:              logger,
	}
}

// Dashboard builds the report over every user and entry. A failed scan
// aborts the report; undecodable entries are skipped and counted.
func (r *reportService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	users, err := r.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*reportService.Dashboard").Msg("error scanning users")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}

	records, err := r.fuelEntryRepository.ListAllEntries(ctx)
	if err != nil {
		log.Err(err).Str("func", "*reportService.Dashboard").Msg("error scanning fuel entries")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}

	return r.build(ctx, users, records), nil
}

// UserReport builds the same report with the corpus narrowed to userID.
func (r *reportService) UserReport(ctx context.Context, userID string) (models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	user, err := r.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*reportService.UserReport").Str("user_id", userID).Msg("error loading user")
		return models.DashboardStats{}, err
	}

	records, err := r.fuelEntryRepository.ListEntriesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*reportService.UserReport").Str("user_id", userID).Msg("error scanning fuel entries")
		return models.DashboardStats{}, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}

	return r.build(ctx, []models.User{user}, records), nil
}

func (r *reportService) build(ctx context.Context, users []models.User, records []models.FuelEntryRecord) models.DashboardStats {
	entries, skipped := decodeRecords(ctx, records)

	stats := r.engine.BuildDashboard(users, entries)
	stats.SkippedEntries = skipped

	logger.FromContext(ctx).Debug().
		Str("func", "*reportService.build").
		Int("users", len(users)).
		Int("entries", len(entries)).
		Int("skipped_entries", skipped).
		Msg("report built")

	return stats
}
