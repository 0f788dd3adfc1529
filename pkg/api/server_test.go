package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wheeltag/pkg/cache"
)

func testServer(t *testing.T, store cache.Cache) *Server {
	t.Helper()
	return NewServer(log.New(io.Discard), store)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHandleTags(t *testing.T) {
	s := testServer(t, nil)

	rec := get(t, s, "/v1/tags?implementation=cpython&version=3.7&abi=cp37m&os=linux&arch=x86_64&glibc=2.12")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	resp := decode[tagsResponse](t, rec)
	if resp.Interpreter != "cp37" {
		t.Errorf("Interpreter = %q, want %q", resp.Interpreter, "cp37")
	}
	if len(resp.Tags) == 0 {
		t.Fatal("no tags returned")
	}
	if resp.Tags[0] != "cp37-cp37m-manylinux2010_x86_64" {
		t.Errorf("Tags[0] = %q, want %q", resp.Tags[0], "cp37-cp37m-manylinux2010_x86_64")
	}
	if last := resp.Tags[len(resp.Tags)-1]; last != "py30-none-any" {
		t.Errorf("last tag = %q, want %q", last, "py30-none-any")
	}
}

func TestHandleTags_MissingImplementation(t *testing.T) {
	s := testServer(t, nil)

	rec := get(t, s, "/v1/tags?version=3.7")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode[errorBody](t, rec)
	if body.Error.Code != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", body.Error.Code)
	}
}

func TestHandleTags_MissingABI(t *testing.T) {
	s := testServer(t, nil)

	// CPython with no ABI is rejected rather than guessed at.
	rec := get(t, s, "/v1/tags?implementation=cpython&version=3.7&os=linux&arch=x86_64")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body)
	}
	body := decode[errorBody](t, rec)
	if body.Error.Code != "UNSUPPORTED_ABI" {
		t.Errorf("error code = %q, want UNSUPPORTED_ABI", body.Error.Code)
	}
}

func TestHandleTags_Cached(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := testServer(t, store)

	const path = "/v1/tags?implementation=cpython&version=3.7&abi=cp37m&os=linux&arch=x86_64"
	first := decode[tagsResponse](t, get(t, s, path))
	second := decode[tagsResponse](t, get(t, s, path))

	if len(first.Tags) != len(second.Tags) {
		t.Fatalf("cached response has %d tags, want %d", len(second.Tags), len(first.Tags))
	}
	for i := range first.Tags {
		if first.Tags[i] != second.Tags[i] {
			t.Fatalf("cached tag %d = %q, want %q", i, second.Tags[i], first.Tags[i])
		}
	}
}

func TestHandleParse_Tag(t *testing.T) {
	s := testServer(t, nil)

	rec := get(t, s, "/v1/parse?tag=py2.py3-none-any")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	resp := decode[parseResponse](t, rec)
	if len(resp.Tags) != 2 {
		t.Errorf("expanded to %d tags, want 2: %v", len(resp.Tags), resp.Tags)
	}
}

func TestHandleParse_Wheel(t *testing.T) {
	s := testServer(t, nil)

	rec := get(t, s, "/v1/parse?wheel=requests-2.22.0-py2.py3-none-any.whl")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	resp := decode[parseResponse](t, rec)
	if len(resp.Tags) != 2 {
		t.Errorf("expanded to %d tags, want 2: %v", len(resp.Tags), resp.Tags)
	}
}

func TestHandleParse_Errors(t *testing.T) {
	s := testServer(t, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"no params", "/v1/parse", http.StatusBadRequest, "INVALID_INPUT"},
		{"both params", "/v1/parse?tag=py3-none-any&wheel=a-1-py3-none-any.whl", http.StatusBadRequest, "INVALID_INPUT"},
		{"malformed tag", "/v1/parse?tag=py3-none", http.StatusUnprocessableEntity, "INVALID_TAG"},
		{"malformed wheel", "/v1/parse?wheel=nodashes.whl", http.StatusUnprocessableEntity, "INVALID_FILENAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.path)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decode[errorBody](t, rec)
			if body.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleCheck(t *testing.T) {
	s := testServer(t, nil)

	body := `{
		"environment": {"implementation": "cpython", "version": "3.7", "abi": "cp37m", "os": "linux", "arch": "x86_64"},
		"wheels": ["requests-2.22.0-py2.py3-none-any.whl", "numpy-1.17.0-cp27-cp27mu-manylinux1_x86_64.whl"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	resp := decode[checkResponse](t, rec)
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(resp.Results))
	}
	if !resp.Results[0].Supported {
		t.Errorf("pure wheel should be supported: %+v", resp.Results[0])
	}
	if resp.Results[1].Supported {
		t.Errorf("cp27 wheel should not match cp37: %+v", resp.Results[1])
	}
}

func TestHandleCheck_BadBody(t *testing.T) {
	s := testServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"no wheels", `{"environment": {"implementation": "cpython", "version": "3.7"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	s := testServer(t, nil)

	rec := get(t, s, "/healthz")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("response missing X-Request-Id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("X-Request-Id = %q, want caller's id echoed back", got)
	}
}
