package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fuel-keeper/internal/app"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.ReportService.Dashboard(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error building dashboard")
		utils.WriteError(w, statusFromError(err), app.MsgFailedToGetDashboard, err.Error())
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserAdminService.ListUsers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error listing users")
		utils.WriteError(w, statusFromError(err), app.MsgFailedToGetUsers, err.Error())
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "user_id")

	deleted, err := h.services.UserAdminService.DeleteUser(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error deleting user")
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			utils.WriteError(w, http.StatusNotFound, app.MsgUserNotFound, fmt.Sprintf("No user found with id '%s'", userID))
		default:
			utils.WriteError(w, statusFromError(err), app.MsgFailedToDeleteUser, err.Error())
		}
		return
	}

	utils.WriteJSON(w, models.UserDeletedResponse{
		Message:        "User deleted successfully",
		DeletedEntries: deleted,
	}, http.StatusOK)
}
