package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fuel-keeper/internal/service"
	"github.com/MKhiriev/go-fuel-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidAdminCredentials: http.StatusUnauthorized,
	service.ErrAdminDisabled:           http.StatusForbidden,
	service.ErrUnknownUser:             http.StatusBadRequest,
	service.ErrMalformedEntry:          http.StatusInternalServerError,
	service.ErrReportFailed:            http.StatusInternalServerError,
	service.ErrPasswordHashing:         http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrUserNotFound:           http.StatusNotFound,
	store.ErrUnknownUser:            http.StatusBadRequest,
	store.ErrFuelEntryAlreadyExists: http.StatusConflict,
	store.ErrFuelEntryNotFound:      http.StatusNotFound,
	store.ErrFuelEntriesNotSaved:    http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
