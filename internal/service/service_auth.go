package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/internal/validators"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes and tokens are HS256 JWTs carrying
// the user id (or the admin email) as subject plus a role claim.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	bcryptCost    int
	adminEmail    string
	adminPassword string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewFuelEntryValidator(),
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		adminEmail:     cfg.AdminEmail,
		adminPassword:  cfg.AdminPassword,
		now:            time.Now,
		logger:         logger,
	}
}

// SignUp creates a new account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) SignUp(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return a.createUser(ctx, credentials)
}

// SignIn authenticates an existing user or, when no account matches the
// email, creates one with the supplied password.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword if the account exists and the password does not match.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "*authService.SignIn").Str("email", credentials.Email).Msg("unknown email, creating account")

		user, err := a.createUser(ctx, credentials)
		if err != nil {
			return models.User{}, false, err
		}
		return user, true, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.PasswordHash, credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Str("user_id", foundUser.ID).Msg("password verification failed")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	if !ok {
		log.Warn().Str("func", "*authService.SignIn").Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, false, ErrWrongPassword
	}

	return foundUser, false, nil
}

func (a *authService) createUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(credentials.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.createUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Email:        credentials.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.createUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// AdminSignIn compares credentials with the configured administrator in
// constant time. An unconfigured administrator rejects every attempt.
func (a *authService) AdminSignIn(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.adminEmail == "" || a.adminPassword == "" {
		return models.Token{}, ErrAdminDisabled
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(strings.ToLower(credentials.Email)), []byte(strings.ToLower(a.adminEmail)))
	passwordMatch := subtle.ConstantTimeCompare([]byte(credentials.Password), []byte(a.adminPassword))
	if emailMatch&passwordMatch != 1 {
		log.Warn().Str("func", "*authService.AdminSignIn").Str("email", credentials.Email).Msg("admin sign in rejected")
		return models.Token{}, ErrInvalidAdminCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.adminEmail, models.RoleAdmin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// CreateToken issues a signed user JWT for the given user.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, models.RoleUser, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, unknown role)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
