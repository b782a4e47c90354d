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
	"github.com/MKhiriev/go-fuel-keeper/internal/validators"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createFuelEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateFuelEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	if !h.requireOwner(w, r, request.UserID) {
		return
	}

	entry, err := h.services.FuelEntryService.CreateEntry(ctx, request)
	if err != nil {
		log.Err(err).Str("user_id", request.UserID).Msg("error creating fuel entry")
		switch {
		case errors.Is(err, service.ErrUnknownUser):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidUserID, fmt.Sprintf("No user found with id '%s'", request.UserID))
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidFuelEntry, err.Error())
		default:
			utils.WriteError(w, statusFromError(err), app.MsgFailedToCreateFuelEntry, err.Error())
		}
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// createFuelEntries stores all entries of the request or none of them.
func (h *Handler) createFuelEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateFuelEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	if !h.requireOwner(w, r, request.UserID) {
		return
	}

	entries, err := h.services.FuelEntryService.CreateEntries(ctx, request)
	if err != nil {
		log.Err(err).Str("user_id", request.UserID).Int("entries_count", len(request.Entries)).Msg("error creating fuel entries")
		switch {
		case errors.Is(err, validators.ErrEmptyEntries):
			utils.WriteError(w, http.StatusBadRequest, app.MsgEmptyEntriesList, "At least one fuel entry must be provided")
		case errors.Is(err, service.ErrUnknownUser):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidUserID, fmt.Sprintf("No user found with id '%s'", request.UserID))
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidFuelEntry, err.Error())
		default:
			utils.WriteError(w, statusFromError(err), app.MsgFailedToCreateFuelEntries, err.Error())
		}
		return
	}

	utils.WriteJSON(w, models.BulkCreateResponse{
		Message: fmt.Sprintf("Successfully created %d fuel entries", len(entries)),
		Count:   len(entries),
		Entries: entries,
	}, http.StatusOK)
}

func (h *Handler) listFuelEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "user_id")

	entries, err := h.services.FuelEntryService.ListEntries(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error listing fuel entries")
		utils.WriteError(w, statusFromError(err), app.MsgFailedToGetFuelEntries, err.Error())
		return
	}

	if entries == nil {
		entries = []models.FuelEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getFuelEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, entryID := chi.URLParam(r, "user_id"), chi.URLParam(r, "id")

	entry, err := h.services.FuelEntryService.GetEntry(ctx, userID, entryID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("entry_id", entryID).Msg("error getting fuel entry")
		h.writeEntryError(w, err, userID, entryID, app.MsgFailedToGetFuelEntry)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateFuelEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, entryID := chi.URLParam(r, "user_id"), chi.URLParam(r, "id")

	var update models.UpdateFuelEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	entry, err := h.services.FuelEntryService.UpdateEntry(ctx, userID, entryID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("entry_id", entryID).Msg("error updating fuel entry")
		h.writeEntryError(w, err, userID, entryID, app.MsgFailedToUpdateFuelEntry)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteFuelEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, entryID := chi.URLParam(r, "user_id"), chi.URLParam(r, "id")

	if err := h.services.FuelEntryService.DeleteEntry(ctx, userID, entryID); err != nil {
		log.Err(err).Str("user_id", userID).Str("entry_id", entryID).Msg("error deleting fuel entry")
		h.writeEntryError(w, err, userID, entryID, app.MsgFailedToDeleteFuelEntry)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Fuel entry deleted successfully"}, http.StatusOK)
}

// deleteFuelEntries removes the requested entries in one transaction.
// Missing IDs are reported, not treated as failures.
func (h *Handler) deleteFuelEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.DeleteFuelEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequestBody, err.Error())
		return
	}

	if !h.requireOwner(w, r, request.UserID) {
		return
	}

	result, err := h.services.FuelEntryService.DeleteEntries(ctx, request)
	if err != nil {
		log.Err(err).Str("user_id", request.UserID).Int("ids_count", len(request.EntryIDs)).Msg("error deleting fuel entries")
		switch {
		case errors.Is(err, validators.ErrEmptyEntryIDs):
			utils.WriteError(w, http.StatusBadRequest, app.MsgEmptyEntryIDsList, "At least one entry ID must be provided")
		case errors.Is(err, service.ErrUnknownUser):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidUserID, fmt.Sprintf("No user found with id '%s'", request.UserID))
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequest, err.Error())
		default:
			utils.WriteError(w, statusFromError(err), app.MsgFailedToDeleteFuelEntries, err.Error())
		}
		return
	}

	deleted := result.DeletedIDs
	if deleted == nil {
		deleted = []string{}
	}

	utils.WriteJSON(w, models.BulkDeleteResponse{
		Message:        fmt.Sprintf("Successfully deleted %d fuel entries", len(deleted)),
		DeletedCount:   len(deleted),
		TotalRequested: len(request.EntryIDs),
		NotFoundCount:  len(request.EntryIDs) - len(deleted),
		DeletedIDs:     deleted,
	}, http.StatusOK)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID := chi.URLParam(r, "user_id")

	stats, err := h.services.ReportService.UserReport(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error building user report")
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			utils.WriteError(w, http.StatusNotFound, app.MsgUserNotFound, fmt.Sprintf("No user found with id '%s'", userID))
		default:
			utils.WriteError(w, statusFromError(err), app.MsgFailedToGetStatistics, err.Error())
		}
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// writeEntryError answers a failed point operation on one entry.
func (h *Handler) writeEntryError(w http.ResponseWriter, err error, userID, entryID, message string) {
	switch {
	case errors.Is(err, store.ErrFuelEntryNotFound):
		utils.WriteError(w, http.StatusNotFound, app.MsgFuelEntryNotFound,
			fmt.Sprintf("No fuel entry found with id '%s' for user '%s'", entryID, userID))
	case errors.Is(err, service.ErrInvalidDataProvided):
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidRequest, err.Error())
	default:
		utils.WriteError(w, statusFromError(err), message, err.Error())
	}
}
