package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashpatel/fileportal/internal/pkg/models"
)

func newTestClient(baseURL string, probing bool) *Client {
	return NewClient(models.BackendConfig{
		BaseURL:      baseURL,
		Bearer:       "static-token",
		APIKey:       "test-key",
		RouteProbing: probing,
	})
}

func TestDo_MissingBaseURL(t *testing.T) {
	client := NewClient(models.BackendConfig{})

	_, err := client.Do(context.Background(), nethttp.MethodGet, "/files", nil, models.Credentials{})
	assert.ErrorIs(t, err, ErrBaseURLNotSet)
}

func TestDo_SetsHeaders(t *testing.T) {
	var gotAuth, gotKey, gotContentType string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get(APIKeyHeader)
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	client := newTestClient(server.URL, true)
	res, err := client.Do(context.Background(), nethttp.MethodPost, "/auth/login", map[string]string{"a": "b"}, models.Credentials{})

	assert.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "Bearer static-token", gotAuth)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDo_PerRequestBearerWinsOverStatic(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL, true)
	_, err := client.Do(context.Background(), nethttp.MethodGet, "/files", nil, models.Credentials{Bearer: "Bearer session-token"})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestDo_NonJSONBodyTolerated(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte("plain text, not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, true)
	res, err := client.Do(context.Background(), nethttp.MethodGet, "/files", nil, models.Credentials{})

	assert.NoError(t, err)
	assert.True(t, res.OK)
	assert.Nil(t, res.Data)
}

func TestDoWithFallback_AdvancesOnNotFound(t *testing.T) {
	var paths []string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/users/create" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
			return
		}
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, true)
	candidates := []Candidate{
		{Path: "/users", Method: nethttp.MethodPost},
		{Path: "/users", Method: nethttp.MethodPut},
		{Path: "/users/create", Method: nethttp.MethodPost},
	}

	res, err := client.DoWithFallback(context.Background(), candidates, map[string]string{"name": "x"}, models.Credentials{})

	assert.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, []string{"POST /users", "PUT /users", "POST /users/create"}, paths)
}

func TestDoWithFallback_OtherFailuresAreDefinitive(t *testing.T) {
	var calls int
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls++
		w.WriteHeader(nethttp.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": "name is required"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, true)
	candidates := []Candidate{
		{Path: "/users", Method: nethttp.MethodPost},
		{Path: "/users/create", Method: nethttp.MethodPost},
	}

	res, err := client.DoWithFallback(context.Background(), candidates, nil, models.Credentials{})

	assert.NoError(t, err)
	assert.False(t, res.Success())
	assert.Equal(t, nethttp.StatusBadRequest, res.Status)
	assert.Equal(t, "name is required", res.Message())
	assert.Equal(t, 1, calls)
}

func TestDoWithFallback_FlaggedFailureStopsSearch(t *testing.T) {
	var calls int
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls++
		// 200 with an explicit ok:false is a definitive rejection, not a
		// missing route.
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": false, "error": "duplicate"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, true)
	candidates := []Candidate{
		{Path: "/users", Method: nethttp.MethodPost},
		{Path: "/users/create", Method: nethttp.MethodPost},
	}

	res, err := client.DoWithFallback(context.Background(), candidates, nil, models.Credentials{})

	assert.NoError(t, err)
	assert.False(t, res.Success())
	assert.True(t, res.OK)
	assert.Equal(t, 1, calls)
}

func TestDoWithFallback_ProbingDisabledUsesFirstOnly(t *testing.T) {
	var calls int
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls++
		w.WriteHeader(nethttp.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, false)
	candidates := []Candidate{
		{Path: "/users", Method: nethttp.MethodPost},
		{Path: "/users/create", Method: nethttp.MethodPost},
	}

	res, err := client.DoWithFallback(context.Background(), candidates, nil, models.Credentials{})

	assert.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, 1, calls)
}
