package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fuel-keeper/internal/app"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidCredentials, err.Error())
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteError(w, http.StatusConflict, app.MsgUserAlreadyExists,
				fmt.Sprintf("A user with email '%s' already exists", credentials.Email))
		case errors.Is(err, service.ErrPasswordHashing):
			log.Err(err).Msg("password hashing failed")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgPasswordProcessingFailed, err.Error())
		default:
			log.Err(err).Msg("unexpected error occurred during sign up")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgFailedToCreateUser, err.Error())
		}
		return
	}

	h.writeAuthResponse(w, r, user)
}

// signIn verifies the password of an existing account. An unknown email is
// registered on the spot.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	user, created, err := h.services.AuthService.SignIn(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidCredentials, err.Error())
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgInvalidCredentials, "Password is incorrect")
		case errors.Is(err, service.ErrPasswordHashing):
			log.Err(err).Msg("password verification failed")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgAuthenticationFailed, err.Error())
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("account creation on sign in failed")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgFailedToCreateUserAccount, err.Error())
		default:
			log.Err(err).Msg("unexpected error occurred during sign in")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgDatabaseError, err.Error())
		}
		return
	}

	log.Debug().Str("user_id", user.ID).Bool("created", created).Msg("user successfully signed in")

	h.writeAuthResponse(w, r, user)
}

func (h *Handler) adminSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	token, err := h.services.AuthService.AdminSignIn(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminDisabled):
			log.Err(err).Msg("admin sign in attempted while admin is disabled")
			utils.WriteError(w, http.StatusForbidden, app.MsgAdminDisabled, err.Error())
		case errors.Is(err, service.ErrInvalidAdminCredentials):
			log.Err(err).Msg("invalid admin credentials")
			utils.WriteError(w, http.StatusUnauthorized, app.MsgInvalidCredentials, "Admin email or password is incorrect")
		default:
			log.Err(err).Msg("unexpected error occurred during admin sign in")
			utils.WriteError(w, http.StatusInternalServerError, app.MsgAuthenticationFailed, err.Error())
		}
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AdminAuthResponse{
		Email: token.Subject,
		Role:  token.Role,
		Token: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgAuthenticationFailed, err.Error())
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token.SignedString,
	}, http.StatusOK)
}
