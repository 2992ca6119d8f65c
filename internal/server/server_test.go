package server_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/server"
)

const description = `
profile: EN16931
document:
  number: RE-1
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
  notes:
    - content: Thanks
seller:
  name: Acme
`

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func serve(srv *server.Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/yaml")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := serve(newTestServer(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestProfilesEndpoint(t *testing.T) {
	w := serve(newTestServer(), http.MethodGet, "/api/v1/profiles", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response []server.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 6)
	assert.Equal(t, "MINIMUM", response[0].Name)
	assert.Equal(t, 1, response[0].Rank)
	assert.Less(t, response[0].Fields, response[4].Fields)
}

func TestCapabilitiesEndpoint(t *testing.T) {
	srv := newTestServer()

	w := serve(srv, http.MethodGet, "/api/v1/profiles/basic/capabilities", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response server.CapabilitiesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "BASIC", response.Profile)
	assert.NotEmpty(t, response.Fields)
	for _, f := range response.Fields {
		assert.NotEqual(t, "EXTENDED", f.Since, f.Field)
	}

	w = serve(srv, http.MethodGet, "/api/v1/profiles/gold/capabilities", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildEndpoint(t *testing.T) {
	w := serve(newTestServer(), http.MethodPost, "/api/v1/documents", description)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "EN16931", response["profile"])
	assert.NotNil(t, response["document"])
	assert.NotContains(t, response, "skipped")
	assert.Contains(t, w.Body.String(), "Thanks")
}

func TestBuildEndpoint_ProfileOverride(t *testing.T) {
	w := serve(newTestServer(), http.MethodPost, "/api/v1/documents?profile=minimum", description)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response server.BuildResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "MINIMUM", response.Profile)
	assert.NotEmpty(t, response.Skipped)
	assert.NotContains(t, w.Body.String(), "Thanks")
}

func TestBuildEndpoint_Strict(t *testing.T) {
	w := serve(newTestServer(), http.MethodPost, "/api/v1/documents?profile=minimum&strict=true", description)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "document build failed", response.Error)
	assert.Contains(t, response.Details, "not supported by this profile")
}

func TestBuildEndpoint_BadRequests(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"empty body", "/api/v1/documents", ""},
		{"unknown key", "/api/v1/documents", "profile: basic\nbogus: 1\n"},
		{"unknown profile", "/api/v1/documents?profile=gold", description},
		{"invalid strict", "/api/v1/documents?strict=maybe", description},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestBuildEndpoint_InvalidValue(t *testing.T) {
	body := strings.Replace(description, "currency: EUR", "currency: EURO", 1)
	w := serve(newTestServer(), http.MethodPost, "/api/v1/documents", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBuildEndpoint_RejectsAttachments(t *testing.T) {
	dir := t.TempDir()
	secret := []byte("token,hunter2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.csv"), secret, 0o600))
	t.Chdir(dir)

	srv := newTestServer()
	for name, path := range map[string]string{
		"absolute": filepath.Join(dir, "secret.csv"),
		"relative": "secret.csv",
	} {
		t.Run(name, func(t *testing.T) {
			body := description + "additional_documents:\n  - id: X\n    attachment: " + strconv.Quote(path) + "\n"
			w := serve(srv, http.MethodPost, "/api/v1/documents", body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			assert.NotContains(t, w.Body.String(), "hunter2")
			assert.NotContains(t, w.Body.String(), base64.StdEncoding.EncodeToString(secret))
		})
	}
}

func TestCheckEndpoint(t *testing.T) {
	w := serve(newTestServer(), http.MethodPost, "/api/v1/check", description)
	require.Equal(t, http.StatusOK, w.Code)

	var response []server.FitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 6)

	assert.Equal(t, "MINIMUM", response[0].Profile)
	assert.NotEmpty(t, response[0].Skipped)
	assert.Equal(t, "EN16931", response[3].Profile)
	assert.Empty(t, response[3].Skipped)
	assert.Empty(t, response[3].Error)
}
