package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/appengine-ltd/farm-twin/internal/farm"
	"github.com/appengine-ltd/farm-twin/internal/intent"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f, err := farm.New(farm.DefaultFieldConfig(), farm.Options{Seed: 1, Logger: logger})
	if err != nil {
		t.Fatalf("farm.New: %v", err)
	}
	s := NewServer(f, nil, logger)
	return s, s.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleState(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Config farm.FieldConfig `json:"config"`
		State  farm.SimState    `json:"state"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Config.Crop != "wheat" || resp.State.Day != 1 || resp.State.Funds != 10000 {
		t.Fatalf("unexpected initial state: %+v", resp)
	}
}

func TestHandleLogEmptyIsArray(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/log", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("empty log rendered %q, want []", got)
	}
}

func TestHandleAction(t *testing.T) {
	s, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/actions", `{"action":"WATER_FIELD"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result farm.ActionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Applied {
		t.Fatalf("action not applied: %+v", result)
	}
	if got := s.farm.State().WaterLevel; got != 90 {
		t.Fatalf("water level = %v, want 90", got)
	}
}

func TestHandleActionBadBody(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/actions", `{"action":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCommandDispatchesAction(t *testing.T) {
	s, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/command", `{"text":"water my field please"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Intent   intent.Intent      `json:"intent"`
		Lang     intent.Language    `json:"lang"`
		Response string             `json:"response"`
		Result   *farm.ActionResult `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Intent != intent.WaterField || resp.Lang != intent.LangEnglish {
		t.Fatalf("classified %v/%v, want WATER_FIELD/en", resp.Intent, resp.Lang)
	}
	if resp.Result == nil || !resp.Result.Applied {
		t.Fatalf("command did not apply an action: %+v", resp)
	}
	if got := s.farm.State().WaterLevel; got != 90 {
		t.Fatalf("water level = %v, want 90", got)
	}
}

func TestHandleCommandUnknownLeavesStateAlone(t *testing.T) {
	s, h := newTestServer(t)
	before := s.farm.State()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/command", `{"text":"xyz random text"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Intent intent.Intent      `json:"intent"`
		Result *farm.ActionResult `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Intent != intent.Unknown {
		t.Fatalf("intent = %v, want UNKNOWN", resp.Intent)
	}
	if resp.Result != nil {
		t.Fatalf("unknown intent produced a result: %+v", resp.Result)
	}
	if s.farm.State() != before {
		t.Fatalf("state changed on unknown command")
	}
}

func TestHandleToggle(t *testing.T) {
	_, h := newTestServer(t)
	rec := doJSON(t, h, http.MethodPost, "/api/v1/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["running"] {
		t.Fatalf("first toggle should pause the simulation")
	}
}

func TestHandleConfig(t *testing.T) {
	s, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/api/v1/config", `{"field":"crop","value":"rice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := s.farm.Config().Crop; got != "rice" {
		t.Fatalf("crop = %q, want rice", got)
	}

	rec = doJSON(t, h, http.MethodPut, "/api/v1/config", `{"field":"crop","value":"kryptonite"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if got := s.farm.Config().Crop; got != "rice" {
		t.Fatalf("rejected update mutated config, crop = %q", got)
	}
}

func TestHandleFinancials(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/financials?yield=50", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var fin farm.Financials
	if err := json.Unmarshal(rec.Body.Bytes(), &fin); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fin.Revenue != 110000 || fin.Profit != 50000 {
		t.Fatalf("wheat financials wrong: %+v", fin)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/financials?yield=-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for negative yield", rec.Code)
	}
}

func TestHandleMarketAndProjection(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/market", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("market status = %d, want 200", rec.Code)
	}
	var market farm.MarketTable
	if err := json.Unmarshal(rec.Body.Bytes(), &market); err != nil {
		t.Fatalf("decode market: %v", err)
	}
	if _, ok := market["wheat"]; !ok {
		t.Fatalf("market missing wheat: %d entries", len(market))
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/projection", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("projection status = %d, want 200", rec.Code)
	}
	var proj farm.Projection
	if err := json.Unmarshal(rec.Body.Bytes(), &proj); err != nil {
		t.Fatalf("decode projection: %v", err)
	}
	if proj.YieldQuintals < 60 || proj.YieldQuintals >= 95 {
		t.Fatalf("projection yield %d out of range", proj.YieldQuintals)
	}
}

func TestHandleReset(t *testing.T) {
	s, h := newTestServer(t)
	doJSON(t, h, http.MethodPost, "/api/v1/actions", `{"action":"WATER_FIELD"}`)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := s.farm.State(); got != farm.NewSimState() {
		t.Fatalf("reset left state %+v", got)
	}
	if len(s.farm.Log()) != 0 {
		t.Fatalf("reset left %d log entries", len(s.farm.Log()))
	}
}
