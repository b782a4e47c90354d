package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage renders the server's {"error","details"} body as
// "error: details", falling back to the raw body or the status text.
func errorMessage(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))

	var e models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &e); err == nil && e.Error != "" {
		if e.Details == "" {
			return e.Error
		}
		return e.Error + ": " + e.Details
	}

	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	return raw
}
