package service

import (
	"context"

	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

type userAdminService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserAdminService(userRepository store.UserRepository, logger *logger.Logger) UserAdminService {
	return &userAdminService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

func (u *userAdminService) DeleteUser(ctx context.Context, userID string) (int, error) {
	deleted, err := u.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*userAdminService.DeleteUser").
		Str("user_id", userID).
		Int("deleted_entries", deleted).
		Msg("user removed by admin")

	return deleted, nil
}
