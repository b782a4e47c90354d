package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/mock"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-fuel-keeper-test",
	TokenDuration: time.Hour,
	BcryptCost:    bcrypt.MinCost,
	AdminEmail:    "admin@example.com",
	AdminPassword: "admin-secret",
}

// newTestAuthSvc — helper building authService over a mocked repository
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, cfg config.App) (*authService, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, cfg, logger.Nop()).(*authService)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3600)) }

	return svc, repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, testAppConfig)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.ID)
			assert.Equal(t, "a@example.com", u.Email)
			assert.NotEqual(t, "pw", u.PasswordHash, "password must be hashed")
			assert.Equal(t, time.UTC, u.CreatedAt.Location())
			return u, nil
		},
	)

	user, err := svc.SignUp(context.Background(), models.Credentials{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	ok, err := utils.CheckPassword(user.PasswordHash, "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, testAppConfig)

	_, err := svc.SignUp(context.Background(), models.Credentials{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, testAppConfig)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(context.Background(), models.Credentials{Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestAuthService_SignIn_ExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, testAppConfig)

	stored := models.User{ID: "u1", Email: "a@example.com", PasswordHash: mustHash(t, "pw")}
	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").Return(stored, nil)

	user, created, err := svc.SignIn(context.Background(), models.Credentials{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, testAppConfig)

	stored := models.User{ID: "u1", Email: "a@example.com", PasswordHash: mustHash(t, "pw")}
	repo.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").Return(stored, nil)

	_, _, err := svc.SignIn(context.Background(), models.Credentials{Email: "a@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_SignIn_UnknownEmailCreatesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, testAppConfig)

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(gomock.Any(), "new@example.com").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) { return u, nil },
		),
	)

	user, created, err := svc.SignIn(context.Background(), models.Credentials{Email: "new@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestAuthService_SignIn_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl, testAppConfig)

	dbErr := errors.New("db down")
	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, _, err := svc.SignIn(context.Background(), models.Credentials{Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, dbErr)
}

// ── AdminSignIn ──────────────────────────────────────────────────────────────

func TestAuthService_AdminSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, testAppConfig)

	token, err := svc.AdminSignIn(context.Background(), models.Credentials{Email: "Admin@Example.com", Password: "admin-secret"})
	require.NoError(t, err)
	assert.True(t, token.IsAdmin())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
	assert.Equal(t, "admin@example.com", parsed.Subject)
}

func TestAuthService_AdminSignIn_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, testAppConfig)

	_, err := svc.AdminSignIn(context.Background(), models.Credentials{Email: "admin@example.com", Password: "guess"})
	assert.ErrorIs(t, err, ErrInvalidAdminCredentials)
}

func TestAuthService_AdminSignIn_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testAppConfig
	cfg.AdminEmail, cfg.AdminPassword = "", ""
	svc, _ := newTestAuthSvc(t, ctrl, cfg)

	_, err := svc.AdminSignIn(context.Background(), models.Credentials{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrAdminDisabled)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, testAppConfig)

	token, err := svc.CreateToken(context.Background(), models.User{ID: "u1"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.Subject)
	assert.Equal(t, models.RoleUser, parsed.Role)
}

func TestAuthService_ParseToken_ForeignIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl, testAppConfig)

	foreign, err := utils.GenerateJWTToken("someone-else", "u1", models.RoleUser, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testAppConfig
	cfg.TokenSignKey = ""
	svc, _ := newTestAuthSvc(t, ctrl, cfg)

	_, err := svc.CreateToken(context.Background(), models.User{ID: "u1"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
