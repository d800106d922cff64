package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"

	"github.com/nerrad567/gray-logic-homegraph/internal/audit"
	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
	"github.com/nerrad567/gray-logic-homegraph/migrations"
)

const testSecret = "test-secret-key-at-least-32-characters-long"

type testEnv struct {
	srv   *Server
	store *homegraph.Store
	audit *audit.SQLiteRepository
}

type serverOption func(*Deps)

func withSecret(d *Deps) {
	d.Security.JWT = config.JWTConfig{Secret: testSecret, Issuer: "graylogic"}
}

func withChecks(checks map[string]HealthChecker) serverOption {
	return func(d *Deps) { d.Checks = checks }
}

func newTestEnv(t *testing.T, opts ...serverOption) *testEnv {
	t.Helper()

	dec, err := homegraph.NewDecoder(true)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}
	store := homegraph.NewStore()
	if err := store.LoadFile(dec, "../homegraph/testdata/home.yaml"); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	db, err := database.Open(database.Config{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // test cleanup
	if err := db.Migrate(context.Background(), migrations.FS, "."); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	repo := audit.NewSQLiteRepository(db.DB)

	deps := Deps{
		Config:  config.APIConfig{Host: "127.0.0.1"},
		WS:      config.WebSocketConfig{MaxMessageSize: 8192, PingInterval: 30, PongTimeout: 10},
		Logger:  logging.NewWithWriter(config.LoggingConfig{Level: "error"}, "test", io.Discard),
		Service: enumerate.New(store),
		Store:   store,
		Audit:   repo,
		Version: "test",
	}
	for _, opt := range opts {
		opt(&deps)
	}

	srv, err := New(deps)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return &testEnv{srv: srv, store: store, audit: repo}
}

func (e *testEnv) do(t *testing.T, method, path string, body []byte, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()
	var e Error
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("decoding error envelope %q: %v", rec.Body.String(), err)
	}
	return e
}

func signToken(t *testing.T, issuer, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return s
}

func TestNewRequiresDeps(t *testing.T) {
	if _, err := New(Deps{}); err == nil {
		t.Error("New() without logger should fail")
	}
	log := logging.NewWithWriter(config.LoggingConfig{}, "test", io.Discard)
	if _, err := New(Deps{Logger: log}); err == nil {
		t.Error("New() without service should fail")
	}
}

func TestRPCEmptyBody(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/v1/rpc/EnumerateHomes", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != wire.ContentTypeJSON {
		t.Errorf("Content-Type = %q", ct)
	}
	var resp struct {
		Homes []wire.HomeReference `json:"homes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Homes) != 2 || resp.Homes[0].Name != "Main" {
		t.Errorf("homes = %+v", resp.Homes)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestRPCJSONRequest(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/v1/rpc/EnumerateRooms",
		[]byte(`{"home":"Main","name_filter":"kit|default"}`),
		http.Header{"Content-Type": {"application/json"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Home  wire.HomeReference     `json:"home"`
		Rooms []wire.RoomInformation `json:"rooms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Home.Name != "Main" {
		t.Errorf("home echo = %+v", resp.Home)
	}
	if len(resp.Rooms) != 2 || resp.Rooms[0].Name != "Default Room" || resp.Rooms[1].Name != "Kitchen" {
		t.Errorf("rooms = %+v", resp.Rooms)
	}
}

func TestRPCCBOR(t *testing.T) {
	env := newTestEnv(t)
	codec := wire.CBOR{}
	body, err := codec.Marshal(&wire.EnumerateRoomsRequest{Home: "Cabin"})
	if err != nil {
		t.Fatal(err)
	}

	rec := env.do(t, http.MethodPost, "/api/v1/rpc/EnumerateRooms", body, http.Header{
		"Content-Type": {wire.ContentTypeCBOR},
		"Accept":       {wire.ContentTypeCBOR},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != wire.ContentTypeCBOR {
		t.Fatalf("Content-Type = %q", ct)
	}

	var resp wire.EnumerateRoomsResponse
	if err := codec.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding CBOR response: %v", err)
	}
	if resp.Home.Name != "Cabin" || len(resp.Rooms) != 2 || resp.Rooms[1].Name != "Loft" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRPCErrors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		op         string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"unknown operation", "DeleteEverything", "", http.StatusNotFound, ErrCodeNotFound},
		{"unknown home", "EnumerateRooms", `{"home":"Nowhere"}`, http.StatusNotFound, ErrCodeNotFound},
		{"mutation", "AddRemoveRoom", `{"home":"Main","name":"Attic"}`, http.StatusNotImplemented, ErrCodeNotImplemented},
		{"malformed body", "EnumerateRooms", `{"home":`, http.StatusBadRequest, ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/rpc/"+tt.op, []byte(tt.body), nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			e := decodeError(t, rec)
			if e.Status != tt.wantStatus || e.Code != tt.wantCode || e.Message == "" {
				t.Errorf("envelope = %+v", e)
			}
		})
	}
}

func TestRPCErrorInCBOR(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/v1/rpc/ExecuteActionSet", nil,
		http.Header{"Accept": {wire.ContentTypeCBOR}})

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d", rec.Code)
	}
	var e Error
	if err := (wire.CBOR{}).Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("decoding CBOR envelope: %v", err)
	}
	if e.Code != ErrCodeNotImplemented {
		t.Errorf("envelope = %+v", e)
	}
}

func TestRPCIsAudited(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/v1/rpc/EnumerateAccessories", []byte(`{"home":"Main"}`),
		http.Header{"X-Request-ID": {"req-42"}})
	env.do(t, http.MethodPost, "/api/v1/rpc/EnumerateRooms", []byte(`{"home":"Nowhere"}`), nil)

	res, err := env.audit.List(context.Background(), audit.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2", res.Total)
	}

	var ok, notFound *audit.Entry
	for i := range res.Entries {
		switch res.Entries[i].Outcome {
		case audit.OutcomeOK:
			ok = &res.Entries[i]
		case audit.OutcomeNotFound:
			notFound = &res.Entries[i]
		}
	}
	if ok == nil || ok.RequestID != "req-42" || ok.Home != "Main" || ok.ItemCount != 3 || ok.Transport != audit.TransportHTTP {
		t.Errorf("ok entry = %+v", ok)
	}
	if notFound == nil || notFound.Home != "Nowhere" || notFound.Error == "" {
		t.Errorf("not found entry = %+v", notFound)
	}

	rec := env.do(t, http.MethodGet, "/api/v1/audit?limit=1&outcome=not_found", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("audit status = %d", rec.Code)
	}
	var page audit.ListResult
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || len(page.Entries) != 1 || page.Limit != 1 {
		t.Errorf("audit page = %+v", page)
	}

	if rec := env.do(t, http.MethodGet, "/api/v1/audit?limit=many", nil, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", rec.Code)
	}
}

func TestAuditDisabled(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) { d.Audit = nil })
	if rec := env.do(t, http.MethodGet, "/api/v1/audit", nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/api/v1/rpc/EnumerateHomes", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("rpc status = %d without audit", rec.Code)
	}
}

func TestOperationsAndSnapshot(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/operations", nil, nil)
	var ops struct {
		Operations []string `json:"operations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &ops); err != nil {
		t.Fatal(err)
	}
	if len(ops.Operations) != len(enumerate.Operations()) {
		t.Errorf("operations = %v", ops.Operations)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/snapshot", nil, nil)
	var info SnapshotInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.Counts != env.store.Snapshot().Counts() || !strings.HasPrefix(info.Source, "file:") {
		t.Errorf("snapshot info = %+v", info)
	}
}

type checkFunc func(ctx context.Context) error

func (f checkFunc) HealthCheck(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	healthy := newTestEnv(t, withChecks(map[string]HealthChecker{
		"database": checkFunc(func(context.Context) error { return nil }),
	}))
	if rec := healthy.do(t, http.MethodGet, "/api/v1/health", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("healthy status = %d", rec.Code)
	}

	degraded := newTestEnv(t, withChecks(map[string]HealthChecker{
		"database": checkFunc(func(context.Context) error { return nil }),
		"mqtt":     checkFunc(func(context.Context) error { return errors.New("mqtt: client not connected") }),
	}))
	rec := degraded.do(t, http.MethodGet, "/api/v1/health", nil, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded status = %d", rec.Code)
	}
	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "degraded" || body.Checks["database"] != "ok" || body.Checks["mqtt"] == "ok" {
		t.Errorf("health body = %+v", body)
	}
}

func TestAuth(t *testing.T) {
	env := newTestEnv(t, withSecret)
	path := "/api/v1/rpc/EnumerateHomes"

	tests := []struct {
		name   string
		header http.Header
		want   int
	}{
		{"missing token", nil, http.StatusUnauthorized},
		{"wrong scheme", http.Header{"Authorization": {"Basic abc"}}, http.StatusUnauthorized},
		{"garbage token", http.Header{"Authorization": {"Bearer abc.def.ghi"}}, http.StatusUnauthorized},
		{"wrong issuer", http.Header{"Authorization": {"Bearer " + signToken(t, "someone-else", "x")}}, http.StatusUnauthorized},
		{"valid token", http.Header{"Authorization": {"Bearer " + signToken(t, "graylogic", "panel-1")}}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, path, nil, tt.header)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	res, err := env.audit.List(context.Background(), audit.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Entries[0].Subject != "panel-1" {
		t.Errorf("audit entries = %+v, want one from panel-1", res.Entries)
	}

	if rec := env.do(t, http.MethodGet, "/api/v1/health", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("health without token status = %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.Config.CORS.AllowedOrigins = []string{"https://panel.local"}
	})

	rec := env.do(t, http.MethodOptions, "/api/v1/rpc/EnumerateHomes", nil, http.Header{"Origin": {"https://panel.local"}})
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "https://panel.local" {
		t.Errorf("preflight status=%d headers=%v", rec.Code, rec.Header())
	}

	rec = env.do(t, http.MethodOptions, "/api/v1/rpc/EnumerateHomes", nil, http.Header{"Origin": {"https://evil.example"}})
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("disallowed origin received CORS headers")
	}
}

func TestWebSocketSnapshotUpdates(t *testing.T) {
	env := newTestEnv(t, withSecret)
	ts := httptest.NewServer(env.srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/ws"
	if _, _, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		t.Fatal("Dial() without token succeeded")
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?access_token="+signToken(t, "graylogic", "ui"), nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second)) //nolint:errcheck // test deadline

	type snapshotEvent struct {
		Type      string       `json:"type"`
		EventType string       `json:"event_type"`
		Payload   SnapshotInfo `json:"payload"`
	}

	// The installed snapshot is announced on connect.
	var event snapshotEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if event.EventType != ChannelSnapshotUpdated || event.Payload.Counts.Homes != 2 {
		t.Errorf("initial event = %+v", event)
	}

	var msg WSMessage
	if err := conn.WriteJSON(WSMessage{Type: WSTypeSubscribe, ID: "1", Payload: WSSubscribePayload{Channels: []string{"device.state"}}}); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != WSTypeError || msg.ID != "1" {
		t.Fatalf("unknown channel reply = %+v, %v", msg, err)
	}

	env.store.Replace(homegraph.NewSnapshot(nil, "test"))

	event = snapshotEvent{}
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if event.Type != WSTypeEvent || event.EventType != ChannelSnapshotUpdated || event.Payload.Source != "test" {
		t.Errorf("event = %+v", event)
	}

	// After unsubscribing the next install is not delivered; the
	// following ping reply arrives first.
	if err := conn.WriteJSON(WSMessage{Type: WSTypeUnsubscribe, ID: "2", Payload: WSSubscribePayload{Channels: []string{ChannelSnapshotUpdated}}}); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != WSTypeResponse {
		t.Fatalf("unsubscribe reply = %+v, %v", msg, err)
	}
	env.store.Replace(homegraph.NewSnapshot(nil, "ignored"))
	if err := conn.WriteJSON(WSMessage{Type: WSTypePing, ID: "3"}); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&msg); err != nil || msg.Type != WSTypePong || msg.ID != "3" {
		t.Errorf("after unsubscribe got %+v, %v", msg, err)
	}
}
