package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avilov/zonesync/internal/config"
	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/models"
)

func newTestStore(t *testing.T, serverURL string) *httpRecordStore {
	t.Helper()
	remoteCfg := config.ClientRemote{Address: serverURL}
	appCfg := config.ClientApp{AuthToken: "test-token"}

	s, err := NewHTTPRecordStore(remoteCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return s.(*httpRecordStore)
}

func testZone() models.ZoneID {
	return models.ZoneID{Name: "notes", Owner: "alice"}
}

// ── base URL handling ───────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://records.example.com", want: "https://records.example.com"},
		{name: "bare host port", raw: "records.example.com:8080", want: "http://records.example.com:8080"},
		{name: "trailing slash trimmed", raw: "http://example.com/", want: "http://example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── SaveRecord ──────────────────────────────────────────────────────────────

func TestSaveRecord_Success(t *testing.T) {
	record := models.Record{
		ID:         models.RecordID{Name: "r1", Zone: testZone()},
		EntityType: "note",
		Payload:    json.RawMessage(`{"title":"hello"}`),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/records", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var got models.Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, record.ID, got.ID)

		got.ChangeTag = "ct-1"
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(got))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	saved, err := s.SaveRecord(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, "ct-1", saved.ChangeTag)
}

func TestSaveRecord_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("remote change tag is newer"))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.SaveRecord(context.Background(), models.Record{ID: models.RecordID{Name: "r1", Zone: testZone()}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSaveRecord_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use: connection refused

	s := newTestStore(t, srv.URL)
	_, err := s.SaveRecord(context.Background(), models.Record{ID: models.RecordID{Name: "r1", Zone: testZone()}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
}

// ── DatabaseChanges / ZoneChanges ───────────────────────────────────────────

func TestDatabaseChanges_RoundTripsToken(t *testing.T) {
	since := models.ChangeToken("db-token-7")
	newToken := models.ChangeToken("db-token-8")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/changes/database", r.URL.Path)

		var req databaseChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, since, req.Since)

		resp := models.DatabaseChanges{
			ChangedZones: []models.ZoneID{testZone()},
			NewToken:     newToken,
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	changes, err := s.DatabaseChanges(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, []models.ZoneID{testZone()}, changes.ChangedZones)
	assert.Equal(t, newToken, changes.NewToken)
}

func TestDatabaseChanges_NilSinceSerializesAsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, hasSince := raw["since"]
		assert.False(t, hasSince, "nil token must be omitted from the request")

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(models.DatabaseChanges{}))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.DatabaseChanges(context.Background(), nil)
	require.NoError(t, err)
}

func TestDatabaseChanges_TokenExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte("change token no longer valid"))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.DatabaseChanges(context.Background(), models.ChangeToken("stale"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestZoneChanges_ReturnsBatch(t *testing.T) {
	batch := models.RemoteChangeBatch{
		Records: []models.Record{
			{ID: models.RecordID{Name: "r1", Zone: testZone()}, EntityType: "note", Payload: json.RawMessage(`{}`)},
		},
		Deleted:  []models.RecordID{{Name: "r2", Zone: testZone()}},
		NewToken: models.ChangeToken("zone-token-3"),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/changes/zone", r.URL.Path)

		var req zoneChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testZone(), req.Zone)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(batch))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	got, err := s.ZoneChanges(context.Background(), testZone(), nil)

	require.NoError(t, err)
	assert.Len(t, got.Records, 1)
	assert.Len(t, got.Deleted, 1)
	assert.Equal(t, batch.NewToken, got.NewToken)
}

func TestZoneChanges_Throttled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.ZoneChanges(context.Background(), testZone(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
}

// ── ModifyZones ─────────────────────────────────────────────────────────────

func TestModifyZones_Idempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/zones/modify", r.URL.Path)

		var req modifyZonesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(models.ZoneModification{Created: req.Create}))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)

	for i := 0; i < 2; i++ {
		result, err := s.ModifyZones(context.Background(), []models.ZoneID{testZone()}, nil)
		require.NoError(t, err)
		assert.Equal(t, []models.ZoneID{testZone()}, result.Created)
	}
}

// ── AccountStatus ───────────────────────────────────────────────────────────

func TestAccountStatus_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/account/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"available"}`))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	status, err := s.AccountStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AccountAvailable, status)
}

func TestAccountStatus_UnknownValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"banana"}`))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	status, err := s.AccountStatus(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.AccountIndeterminate, status)
}

func TestAccountStatus_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	status, err := s.AccountStatus(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, models.AccountIndeterminate, status)
}
