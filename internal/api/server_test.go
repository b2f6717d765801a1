package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Denizche/divscheme/pkg/pipeline"
)

const validScheme = `{
  "product_name": "Gearbox",
  "product_code": "1234.00.00.000",
  "components": [
    {"position": 1, "name": "Gearbox", "designation": "1234.00.00.000", "quantity": 1, "level": 0},
    {"position": 2, "name": "Housing", "designation": "1234.01.00.000", "quantity": 1, "level": 1, "parent_position": 1},
    {"position": 3, "name": "Shaft", "designation": "1234.02.00.000", "quantity": 2, "level": 1, "parent_position": 1}
  ],
  "gost_format": "A4",
  "orientation": "landscape",
  "layout_type": "tree",
  "title_block_data": {
    "designation": "1234.00.00.000",
    "name": "Division scheme",
    "developer": "Ivanov I.I.",
    "organization": "Some Company LLC"
  }
}`

const invalidScheme = `{
  "product_name": "Gearbox",
  "product_code": "1234.00.00.000",
  "components": [
    {"position": 1, "name": "Gearbox", "designation": "bad", "quantity": 1, "level": 0}
  ]
}`

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(nil, logger)
	return NewServer(Config{Addr: ":0"}, runner, logger)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	out := decode(t, rec)
	if out["status"] != "healthy" {
		t.Errorf("status field = %v", out["status"])
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %s", ct)
	}
}

func TestInfo(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/info", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	out := decode(t, rec)
	if out["name"] != "divscheme" {
		t.Errorf("name = %v", out["name"])
	}
	if _, ok := out["endpoints"].(map[string]any); !ok {
		t.Error("missing endpoint map")
	}
}

func TestValidateEndpoint(t *testing.T) {
	s := testServer(t)

	t.Run("valid scheme", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/validate", validScheme)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
		}
		out := decode(t, rec)
		if out["is_valid"] != true {
			t.Errorf("is_valid = %v", out["is_valid"])
		}
	})

	t.Run("invalid scheme still 200", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/validate", invalidScheme)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		out := decode(t, rec)
		if out["is_valid"] != false {
			t.Errorf("is_valid = %v", out["is_valid"])
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/validate", "{not json")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		out := decode(t, rec)
		errObj, ok := out["error"].(map[string]any)
		if !ok {
			t.Fatalf("missing error envelope: %v", out)
		}
		if errObj["code"] != "INVALID_SCHEME" {
			t.Errorf("error code = %v", errObj["code"])
		}
	})
}

func TestLayoutEndpoint(t *testing.T) {
	s := testServer(t)

	t.Run("valid scheme", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/layout", validScheme)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
		}
		out := decode(t, rec)
		positions, ok := out["positions"].(map[string]any)
		if !ok {
			t.Fatalf("missing positions: %v", out)
		}
		if len(positions) != 3 {
			t.Errorf("got %d positions, want 3", len(positions))
		}
		if out["request_id"] == "" {
			t.Error("missing request_id")
		}
		if out["page_width"] != 297.0 || out["page_height"] != 210.0 {
			t.Errorf("page = %v x %v, want 297 x 210", out["page_width"], out["page_height"])
		}
	})

	t.Run("invalid scheme gets 422 with report", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/layout", invalidScheme)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d", rec.Code)
		}
		out := decode(t, rec)
		if _, ok := out["positions"]; ok {
			t.Error("positions present for an invalid scheme")
		}
		report, ok := out["report"].(map[string]any)
		if !ok {
			t.Fatalf("missing report: %v", out)
		}
		if report["is_valid"] != false {
			t.Errorf("report.is_valid = %v", report["is_valid"])
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/layout", "{not json")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestUnknownRouteIs404(t *testing.T) {
	rec := do(t, testServer(t), http.MethodGet, "/api/v1/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}
