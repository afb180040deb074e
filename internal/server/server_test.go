package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/codia/codia/pkg/cache"
)

const animalSrc = `package zoo

type Animal struct {
	Name string
}

func (a *Animal) MakeSound() string { return "" }

type Dog struct {
	Animal
}
`

func newFileCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	return c
}

// newMultipart writes a multipart body containing src as the "file"
// field and returns the content type.
func newMultipart(t *testing.T, buf *bytes.Buffer, src string) string {
	t.Helper()
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("file", "animals.go")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(src)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return mw.FormDataContentType()
}

func newTestServer(t *testing.T, c cache.Cache) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	srv := New(c, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, body any) (*http.Response, []byte) {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(ts.URL+"/api/diagrams", "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST /api/diagrams: %v", err)
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, data
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, cache.NewNullCache())

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCreateDiagram(t *testing.T) {
	ts := newTestServer(t, cache.NewNullCache())

	resp, data := postJSON(t, ts, map[string]any{"source": animalSrc})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, data)
	}

	var dr diagramResponse
	if err := json.Unmarshal(data, &dr); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if dr.ID == "" {
		t.Error("response ID is empty")
	}
	if dr.Classes != 2 {
		t.Errorf("Classes = %d, want 2", dr.Classes)
	}
	if dr.Relationships != 1 {
		t.Errorf("Relationships = %d, want 1", dr.Relationships)
	}
	if dr.Format != "svg" {
		t.Errorf("Format = %q, want svg", dr.Format)
	}
	if dr.Cached {
		t.Error("first render reported as cached")
	}
}

func TestGetDiagramRoundTrip(t *testing.T) {
	ts := newTestServer(t, newFileCache(t))

	resp, data := postJSON(t, ts, map[string]any{"source": animalSrc})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, data)
	}
	var dr diagramResponse
	if err := json.Unmarshal(data, &dr); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	resp2, err := http.Get(ts.URL + dr.URL)
	if err != nil {
		t.Fatalf("GET %s: %v", dr.URL, err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp2.StatusCode)
	}
	if ct := resp2.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	svg, _ := io.ReadAll(resp2.Body)
	for _, want := range []string{"<svg", "Animal", "Dog", "Class Diagram"} {
		if !strings.Contains(string(svg), want) {
			t.Errorf("artifact missing %q", want)
		}
	}
}

func TestCreateDiagramCacheHit(t *testing.T) {
	ts := newTestServer(t, newFileCache(t))

	resp, data := postJSON(t, ts, map[string]any{"source": animalSrc})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first request status = %d: %s", resp.StatusCode, data)
	}

	resp, data = postJSON(t, ts, map[string]any{"source": animalSrc})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("second request status = %d: %s", resp.StatusCode, data)
	}
	var dr diagramResponse
	if err := json.Unmarshal(data, &dr); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !dr.Cached {
		t.Error("second render of identical source not served from cache")
	}
}

func TestCreateDiagramErrors(t *testing.T) {
	ts := newTestServer(t, cache.NewNullCache())

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty source",
			body:       map[string]any{"source": ""},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_SOURCE",
		},
		{
			name:       "syntax error",
			body:       map[string]any{"source": "package {{{"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_SOURCE",
		},
		{
			name:       "no classes",
			body:       map[string]any{"source": "package empty\n\nfunc Run() {}\n"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "NO_CLASSES",
		},
		{
			name:       "bad format",
			body:       map[string]any{"source": animalSrc, "format": "gif"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := postJSON(t, ts, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", resp.StatusCode, tt.wantStatus, data)
			}
			var er errorResponse
			if err := json.Unmarshal(data, &er); err != nil {
				t.Fatalf("unmarshal error response: %v", err)
			}
			if er.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", er.Code, tt.wantCode)
			}
		})
	}
}

func TestGetDiagramNotFound(t *testing.T) {
	ts := newTestServer(t, cache.NewNullCache())

	resp, err := http.Get(ts.URL + "/api/diagrams/does-not-exist")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateDiagramMultipart(t *testing.T) {
	ts := newTestServer(t, cache.NewNullCache())

	var buf bytes.Buffer
	mw := newMultipart(t, &buf, animalSrc)

	resp, err := http.Post(ts.URL+"/api/diagrams", mw, &buf)
	if err != nil {
		t.Fatalf("POST multipart: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, data)
	}
}
