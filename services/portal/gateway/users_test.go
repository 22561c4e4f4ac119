package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/yashpatel/fileportal/internal/pkg/http"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

func TestListUsers_ToleratesEnvelopes(t *testing.T) {
	payloads := []interface{}{
		[]interface{}{map[string]interface{}{"id": float64(1), "name": "A", "email": "a@b.co"}},
		map[string]interface{}{"users": []interface{}{map[string]interface{}{"userId": "1", "name": "A", "email": "a@b.co"}}},
		map[string]interface{}{"data": []interface{}{map[string]interface{}{"_id": float64(1), "name": "A", "email": "a@b.co"}}},
	}

	for _, payload := range payloads {
		payload := payload
		gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(payload)
		})

		users, err := gw.ListUsers(context.Background(), models.Credentials{})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, 1, users[0].ID)
		assert.Equal(t, "A", users[0].Name)
		assert.Equal(t, "a@b.co", users[0].Email)
	}
}

func TestListUsers_UpstreamFailureYieldsEmptyList(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	users, err := gw.ListUsers(context.Background(), models.Credentials{})
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestAddUser_ProbesMethodSwapAndCreateSuffix(t *testing.T) {
	var attempts []string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		attempts = append(attempts, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/users/create" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"user": map[string]interface{}{"id": float64(9)},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	user, err := gw.AddUser(context.Background(), models.Credentials{}, &models.UserInput{
		Name:   "A",
		Email:  "a@b.co",
		Mobile: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, []string{"POST /users", "PUT /users", "POST /users/create"}, attempts)
}

func TestAddUser_DefinitiveRejectionSurfacesUpstreamError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": "email already in use"})
	})

	_, err := gw.AddUser(context.Background(), models.Credentials{}, &models.UserInput{
		Name:   "A",
		Email:  "a@b.co",
		Mobile: "123",
	})

	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusConflict, upstream.Status)
	assert.Equal(t, "email already in use", upstream.Message)
}

func TestAddUser_RemapsConfiguredFieldKeys(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	t.Cleanup(server.Close)

	cfg := testBackendConfig(server.URL)
	cfg.Backend.UserKeys = models.UserFieldKeys{
		Name:         "fullName",
		Email:        "emailAddress",
		Mobile:       "phone",
		TempPassword: "password",
	}
	gw := NewBackendClient(cfg, httpclient.NewClient(cfg.Backend))

	_, err := gw.AddUser(context.Background(), models.Credentials{}, &models.UserInput{
		Name:         "A",
		Email:        "a@b.co",
		Mobile:       "123",
		TempPassword: "tmp-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "A", body["fullName"])
	assert.Equal(t, "a@b.co", body["emailAddress"])
	assert.Equal(t, "123", body["phone"])
	assert.Equal(t, "tmp-1", body["password"])
}

func TestUpdateUser_MethodSwapFallback(t *testing.T) {
	var attempts []string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		attempts = append(attempts, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	user, err := gw.UpdateUser(context.Background(), models.Credentials{}, &models.UserUpdate{
		ID:     7,
		Name:   "B",
		Email:  "b@b.co",
		Mobile: "456",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, []string{"PUT /users/7", "PATCH /users/7"}, attempts)
}

func TestDeleteUser_FallsBackToIDInBody(t *testing.T) {
	var attempts []string
	var lastBody map[string]interface{}
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		attempts = append(attempts, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/users" {
			lastBody = nil
			_ = json.NewDecoder(r.Body).Decode(&lastBody)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	ok, err := gw.DeleteUser(context.Background(), models.Credentials{}, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"DELETE /users/7", "DELETE /users"}, attempts)
	assert.Equal(t, float64(7), lastBody["id"])
}

func TestDeleteUser_ExhaustedCandidatesReportNotDeleted(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ok, err := gw.DeleteUser(context.Background(), models.Credentials{}, 7)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNotifyTempPassword_SkippedWithoutPath(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when notify path is not configured")
	})

	ok, err := gw.NotifyTempPassword(context.Background(), "a@b.co", "A", "tmp-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}
