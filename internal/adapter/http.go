package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fuel-keeper/internal/config"
	"github.com/MKhiriev/go-fuel-keeper/internal/logger"
	"github.com/MKhiriev/go-fuel-keeper/internal/utils"
	"github.com/MKhiriev/go-fuel-keeper/models"
	"github.com/go-resty/resty/v2"
)

// hashHeader carries the hex HMAC-SHA256 of a signed request body.
const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool when a hash key is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SignUp(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/signup", credentials)
}

func (h *httpServerAdapter) SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/signin", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode auth response: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return auth, nil
}

func (h *httpServerAdapter) AdminSignIn(ctx context.Context, credentials models.Credentials) (models.AdminAuthResponse, error) {
	var auth models.AdminAuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/admin/signin")
	if err != nil {
		return models.AdminAuthResponse{}, fmt.Errorf("admin signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AdminAuthResponse{}, err
	}
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AdminAuthResponse{}, fmt.Errorf("decode admin auth response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, request models.CreateFuelEntryRequest) (models.FuelEntry, error) {
	req, err := h.signedRequest(ctx, request)
	if err != nil {
		return models.FuelEntry{}, err
	}

	var entry models.FuelEntry
	err = h.do(ctx, req, http.MethodPost, "/api/fuel-entries", &entry)
	return entry, err
}

func (h *httpServerAdapter) CreateEntries(ctx context.Context, request models.CreateFuelEntriesRequest) (models.BulkCreateResponse, error) {
	req, err := h.signedRequest(ctx, request)
	if err != nil {
		return models.BulkCreateResponse{}, err
	}

	var created models.BulkCreateResponse
	err = h.do(ctx, req, http.MethodPost, "/api/fuel-entries/bulk", &created)
	return created, err
}

func (h *httpServerAdapter) ListEntries(ctx context.Context, userID string) ([]models.FuelEntry, error) {
	var entries []models.FuelEntry
	req := h.authedRequest(ctx).SetPathParam("user_id", userID)
	err := h.do(ctx, req, http.MethodGet, "/api/fuel-entries/{user_id}", &entries)
	return entries, err
}

func (h *httpServerAdapter) GetEntry(ctx context.Context, userID, entryID string) (models.FuelEntry, error) {
	var entry models.FuelEntry
	req := h.authedRequest(ctx).SetPathParams(map[string]string{"user_id": userID, "id": entryID})
	err := h.do(ctx, req, http.MethodGet, "/api/fuel-entries/{user_id}/{id}", &entry)
	return entry, err
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, userID, entryID string, update models.UpdateFuelEntryRequest) (models.FuelEntry, error) {
	req, err := h.signedRequest(ctx, update)
	if err != nil {
		return models.FuelEntry{}, err
	}
	req.SetPathParams(map[string]string{"user_id": userID, "id": entryID})

	var entry models.FuelEntry
	err = h.do(ctx, req, http.MethodPut, "/api/fuel-entries/{user_id}/{id}", &entry)
	return entry, err
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, userID, entryID string) error {
	req := h.authedRequest(ctx).SetPathParams(map[string]string{"user_id": userID, "id": entryID})
	return h.do(ctx, req, http.MethodDelete, "/api/fuel-entries/{user_id}/{id}", nil)
}

func (h *httpServerAdapter) DeleteEntries(ctx context.Context, request models.DeleteFuelEntriesRequest) (models.BulkDeleteResponse, error) {
	req, err := h.signedRequest(ctx, request)
	if err != nil {
		return models.BulkDeleteResponse{}, err
	}

	var deleted models.BulkDeleteResponse
	err = h.do(ctx, req, http.MethodPost, "/api/fuel-entries/bulk/delete", &deleted)
	return deleted, err
}

func (h *httpServerAdapter) UserStats(ctx context.Context, userID string) (models.DashboardStats, error) {
	var stats models.DashboardStats
	req := h.authedRequest(ctx).SetPathParam("user_id", userID)
	err := h.do(ctx, req, http.MethodGet, "/api/fuel-entries/{user_id}/stats", &stats)
	return stats, err
}

func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := h.do(ctx, h.authedRequest(ctx), http.MethodGet, "/api/admin/dashboard", &stats)
	return stats, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// do executes req and decodes a successful JSON response into out (when out
// is not nil).
func (h *httpServerAdapter) do(ctx context.Context, req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*httpServerAdapter.do").
			Str("method", method).Str("path", path).Msg("server rejected request")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest marshals body once so the HashSHA256 header covers exactly
// the bytes that are sent.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(hashHeader, computeTransportHash(payload))
	}
	return req, nil
}

func computeTransportHash(payload []byte) string {
	return hex.EncodeToString(utils.Hash(payload))
}
