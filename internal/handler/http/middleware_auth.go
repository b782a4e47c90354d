package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fuel-keeper/internal/app"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token subject and role
// in the request context with [utils.WithIdentity].
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, cannot be parsed as a bearer token, or carries an expired or
// invalid token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("token expired or invalid")
				utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, service.ErrTokenIsExpiredOrInvalid.Error())
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, http.StatusUnauthorized, app.MsgUnauthorized, http.StatusText(http.StatusUnauthorized))
			}
			return
		}

		ctx = utils.WithIdentity(ctx, token.Subject, token.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly lets through requests authenticated with an admin token.
// It must run after [Handler.auth].
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := utils.GetRoleFromContext(r.Context())
		if role != models.RoleAdmin {
			logger.FromRequest(r).Warn().Str("role", role).Msg("admin route requested without admin role")
			utils.WriteError(w, http.StatusForbidden, app.MsgForbidden, "Admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ownerOnly rejects requests whose {user_id} path parameter differs from the
// token subject. It must run after [Handler.auth].
func (h *Handler) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.requireOwner(w, r, chi.URLParam(r, "user_id")) {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireOwner writes 403 and returns false unless the caller holds a user
// token issued for userID.
func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, userID string) bool {
	ctx := r.Context()
	subject, _ := utils.GetUserIDFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)

	if role == models.RoleUser && subject != "" && subject == userID {
		return true
	}

	logger.FromRequest(r).Warn().
		Str("subject", subject).
		Str("user_id", userID).
		Msg("access to data of a different user")
	utils.WriteError(w, http.StatusForbidden, app.MsgForbidden, fmt.Sprintf("Token does not grant access to user '%s'", userID))
	return false
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the scheme or the token
// part is missing and [ErrEmptyToken] when the token part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
