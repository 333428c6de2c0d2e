package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/avilov/zonesync/internal/config"
	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/internal/utils"
	"github.com/avilov/zonesync/models"
)

type httpRecordStore struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRecordStore constructs the HTTP/REST implementation of
// [RecordStore]. It normalises and validates the base URL from
// remoteCfg.Address and configures the underlying client with the resolved
// base URL and request timeout. The auth token from appCfg, when present, is
// attached to every request.
//
// Returns an error if remoteCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPRecordStore(remoteCfg config.ClientRemote, appCfg config.ClientApp, log *logger.Logger) (RecordStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(remoteCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout)

	return &httpRecordStore{
		client: client,
		token:  strings.TrimSpace(appCfg.AuthToken),
		logger: log,
	}, nil
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

// SetToken implements [RecordStore]. It stores token (whitespace-trimmed) for
// the Authorization header of subsequent requests.
func (h *httpRecordStore) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RecordStore].
func (h *httpRecordStore) Token() string {
	return h.token
}

func (h *httpRecordStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

// SaveRecord implements [RecordStore]. It POSTs the record to /api/records
// and returns the stored record with its server-assigned change tag.
func (h *httpRecordStore) SaveRecord(ctx context.Context, record models.Record) (models.Record, error) {
	var saved models.Record

	resp, err := h.request(ctx).
		SetBody(record).
		SetResult(&saved).
		Post("/api/records")
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: save record request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, fmt.Errorf("save record %s: %w", record.ID, err)
	}

	return saved, nil
}

type queryRequest struct {
	Query  models.RecordQuery `json:"query"`
	Zone   models.ZoneID      `json:"zone"`
	Cursor string             `json:"cursor,omitempty"`
}

// QueryRecords implements [RecordStore]. It POSTs the filter to
// /api/records/query; the returned page's cursor continues pagination.
func (h *httpRecordStore) QueryRecords(ctx context.Context, query models.RecordQuery, zone models.ZoneID, cursor string) (models.QueryPage, error) {
	var page models.QueryPage

	resp, err := h.request(ctx).
		SetBody(queryRequest{Query: query, Zone: zone, Cursor: cursor}).
		SetResult(&page).
		Post("/api/records/query")
	if err != nil {
		return models.QueryPage{}, fmt.Errorf("%w: query records request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QueryPage{}, fmt.Errorf("query records in zone %s: %w", zone, err)
	}

	return page, nil
}

type modifyZonesRequest struct {
	Create []models.ZoneID `json:"create,omitempty"`
	Delete []models.ZoneID `json:"delete,omitempty"`
}

// ModifyZones implements [RecordStore]. It POSTs zone create/delete lists to
// /api/zones/modify. The server treats re-creation and re-deletion as no-ops.
func (h *httpRecordStore) ModifyZones(ctx context.Context, create []models.ZoneID, drop []models.ZoneID) (models.ZoneModification, error) {
	var result models.ZoneModification

	resp, err := h.request(ctx).
		SetBody(modifyZonesRequest{Create: create, Delete: drop}).
		SetResult(&result).
		Post("/api/zones/modify")
	if err != nil {
		return models.ZoneModification{}, fmt.Errorf("%w: modify zones request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ZoneModification{}, fmt.Errorf("modify zones: %w", err)
	}

	return result, nil
}

type databaseChangesRequest struct {
	Since models.ChangeToken `json:"since,omitempty"`
}

// DatabaseChanges implements [RecordStore]. It POSTs the stored database
// token to /api/changes/database; a nil token requests changes from the
// beginning of time.
func (h *httpRecordStore) DatabaseChanges(ctx context.Context, since models.ChangeToken) (models.DatabaseChanges, error) {
	var changes models.DatabaseChanges

	resp, err := h.request(ctx).
		SetBody(databaseChangesRequest{Since: since}).
		SetResult(&changes).
		Post("/api/changes/database")
	if err != nil {
		return models.DatabaseChanges{}, fmt.Errorf("%w: database changes request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DatabaseChanges{}, fmt.Errorf("database changes: %w", err)
	}

	return changes, nil
}

type zoneChangesRequest struct {
	Zone  models.ZoneID      `json:"zone"`
	Since models.ChangeToken `json:"since,omitempty"`
}

// ZoneChanges implements [RecordStore]. It POSTs the zone identity and stored
// zone token to /api/changes/zone and returns the resulting delta batch.
func (h *httpRecordStore) ZoneChanges(ctx context.Context, zone models.ZoneID, since models.ChangeToken) (models.RemoteChangeBatch, error) {
	var batch models.RemoteChangeBatch

	resp, err := h.request(ctx).
		SetBody(zoneChangesRequest{Zone: zone, Since: since}).
		SetResult(&batch).
		Post("/api/changes/zone")
	if err != nil {
		return models.RemoteChangeBatch{}, fmt.Errorf("%w: zone changes request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteChangeBatch{}, fmt.Errorf("zone changes for %s: %w", zone, err)
	}

	return batch, nil
}

type accountStatusResponse struct {
	Status string `json:"status"`
}

// AccountStatus implements [RecordStore]. A locally expired JWT short-circuits
// to [models.AccountNoAccount] without a round-trip; otherwise the server's
// answer from /api/account/status is mapped onto the enum. Unknown answers
// and transport failures surface as errors for the engine to fold into
// [models.AccountIndeterminate].
func (h *httpRecordStore) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	if h.token != "" && utils.TokenExpired(h.token) {
		return models.AccountNoAccount, nil
	}

	var body accountStatusResponse
	resp, err := h.request(ctx).
		SetResult(&body).
		Get("/api/account/status")
	if err != nil {
		return models.AccountIndeterminate, fmt.Errorf("%w: account status request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountIndeterminate, fmt.Errorf("account status: %w", err)
	}

	switch body.Status {
	case "available":
		return models.AccountAvailable, nil
	case "no_account":
		return models.AccountNoAccount, nil
	case "restricted":
		return models.AccountRestricted, nil
	default:
		return models.AccountIndeterminate, fmt.Errorf("unknown account status %q", body.Status)
	}
}
