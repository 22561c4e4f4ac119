package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/services/portal/mocks"
	"github.com/yashpatel/fileportal/services/portal/usecase"
)

func newUserTestContext(t *testing.T, method, target, body string) (*mocks.MockPortalUC, *UserHandler, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPortalUC(ctrl)
	handler := NewUserHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return mockUC, handler, c, rec
}

func TestListUsers(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodGet, "/api/users", "")

	mockUC.EXPECT().
		ListUsers(gomock.Any(), models.Credentials{}).
		Return([]models.User{{ID: 1, Name: "A"}}, nil)

	err := handler.ListUsers(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The users key sits at the top level of the body, not under a wrapper.
	var response struct {
		OK    bool          `json:"ok"`
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.OK)
	require.Len(t, response.Users, 1)
	assert.Equal(t, "A", response.Users[0].Name)
}

func TestAddUser_Created(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodPost, "/api/users",
		`{"name": "A", "email": "a", "mobile": "1"}`)

	mockUC.EXPECT().
		AddUser(gomock.Any(), models.Credentials{}, gomock.Any()).
		Return(&models.User{ID: 5, Name: "A"}, nil)

	err := handler.AddUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddUser_ValidationFailureIsBadRequest(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodPost, "/api/users", `{"name": "A"}`)

	mockUC.EXPECT().
		AddUser(gomock.Any(), models.Credentials{}, gomock.Any()).
		Return(nil, usecase.ErrMissingUserField)

	err := handler.AddUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddUser_UpstreamRejectionKeepsStatus(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodPost, "/api/users",
		`{"name": "A", "email": "a", "mobile": "1"}`)

	mockUC.EXPECT().
		AddUser(gomock.Any(), models.Credentials{}, gomock.Any()).
		Return(nil, &models.UpstreamError{Status: http.StatusConflict, Message: "email already in use"})

	err := handler.AddUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already in use")
}

func TestUpdateUser_PathIDWins(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodPut, "/api/users/7",
		`{"id": 3, "name": "A", "email": "a", "mobile": "1"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	mockUC.EXPECT().
		UpdateUser(gomock.Any(), models.Credentials{}, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Credentials, input *models.UserUpdate) (*models.User, error) {
			assert.Equal(t, 7, input.ID)
			return &models.User{ID: 7}, nil
		})

	err := handler.UpdateUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser_IDFromBody(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodDelete, "/api/users", `{"id": 9}`)

	mockUC.EXPECT().
		DeleteUser(gomock.Any(), models.Credentials{}, 9).
		Return(true, nil)

	err := handler.DeleteUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser_IDFromQuery(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodDelete, "/api/users?id=4", "")

	mockUC.EXPECT().
		DeleteUser(gomock.Any(), models.Credentials{}, 4).
		Return(true, nil)

	err := handler.DeleteUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockUC, handler, c, rec := newUserTestContext(t, http.MethodDelete, "/api/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	mockUC.EXPECT().
		DeleteUser(gomock.Any(), models.Credentials{}, 9).
		Return(false, nil)

	err := handler.DeleteUser(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
