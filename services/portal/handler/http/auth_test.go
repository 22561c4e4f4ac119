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
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal/mocks"
	"github.com/yashpatel/fileportal/services/portal/usecase"
)

func newAuthTestContext(t *testing.T, body string) (*mocks.MockPortalUC, *AuthHandler, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPortalUC(ctrl)
	handler := NewAuthHandler(mockUC, &models.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return mockUC, handler, c, rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestSendCode_Success(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "ypatel"}`)

	mockUC.EXPECT().
		SendCode(gomock.Any(), "ypatel").
		Return(&models.SendCodeResult{OK: true}, nil)

	err := handler.SendCode(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.NotContains(t, response, "code")
}

func TestSendCode_DevVisibleCodeIsTopLevel(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "ypatel"}`)

	mockUC.EXPECT().
		SendCode(gomock.Any(), "ypatel").
		Return(&models.SendCodeResult{OK: true, Code: "12345"}, nil)

	err := handler.SendCode(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, "12345", response["code"])
}

func TestSendCode_InvalidLoginIsBadRequest(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "bad address"}`)

	mockUC.EXPECT().
		SendCode(gomock.Any(), "bad address").
		Return(nil, utils.ErrInvalidFormat)

	err := handler.SendCode(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCode_SuccessOpensUserSession(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "ypatel", "code": "12345"}`)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "ypatel", "12345").
		Return(true, nil)

	err := handler.VerifyCode(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	login := findCookie(rec, CookieLogin)
	require.NotNil(t, login)
	assert.Equal(t, "ypatel", login.Value)
	assert.True(t, login.HttpOnly)

	loginType := findCookie(rec, CookieLoginType)
	require.NotNil(t, loginType)
	assert.Equal(t, models.LoginTypeUser, loginType.Value)
}

func TestVerifyCode_SessionCookieHoldsFullAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPortalUC(ctrl)
	cfg := &models.Config{}
	cfg.Auth.EmailDomain = "corp.example.com"
	handler := NewAuthHandler(mockUC, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"login": "ypatel", "code": "12345"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "ypatel", "12345").
		Return(true, nil)

	err := handler.VerifyCode(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The cookie carries the canonical address so the superadmin checks
	// on later requests compare against the same value the backend uses.
	login := findCookie(rec, CookieLogin)
	require.NotNil(t, login)
	assert.Equal(t, "ypatel@corp.example.com", login.Value)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "ypatel", "code": "00000"}`)

	mockUC.EXPECT().
		VerifyCode(gomock.Any(), "ypatel", "00000").
		Return(false, nil)

	err := handler.VerifyCode(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, CookieLogin))
}

func TestPasswordLogin_SuccessSetsSessionCookies(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "ypatel", "password": "secret"}`)

	mockUC.EXPECT().
		PasswordLogin(gomock.Any(), "ypatel", "secret").
		Return(&models.PasswordLoginResult{
			OK:        true,
			Login:     "ypatel@corp.example.com",
			LoginType: models.LoginTypeSuperAdmin,
			Token:     "signed-token",
		}, nil)

	err := handler.PasswordLogin(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, models.LoginTypeSuperAdmin, response["loginType"])
	assert.Equal(t, "ypatel@corp.example.com", response["login"])

	login := findCookie(rec, CookieLogin)
	require.NotNil(t, login)
	assert.Equal(t, "ypatel@corp.example.com", login.Value)

	loginType := findCookie(rec, CookieLoginType)
	require.NotNil(t, loginType)
	assert.Equal(t, models.LoginTypeSuperAdmin, loginType.Value)

	session := findCookie(rec, CookieSession)
	require.NotNil(t, session)
	assert.Equal(t, "signed-token", session.Value)
	assert.True(t, session.HttpOnly)
}

func TestPasswordLogin_RejectionReportsNeedsVerification(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"login": "ypatel", "password": "secret"}`)

	mockUC.EXPECT().
		PasswordLogin(gomock.Any(), "ypatel", "secret").
		Return(&models.PasswordLoginResult{
			OK:                false,
			Message:           "Email not verified yet",
			NeedsVerification: true,
		}, nil)

	err := handler.PasswordLogin(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["ok"])
	assert.Equal(t, true, response["needsVerification"])
	assert.Equal(t, "Email not verified yet", response["error"])
	assert.Nil(t, findCookie(rec, CookieLogin))
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	mockUC, handler, c, rec := newAuthTestContext(t, `{"firstName": "Yash", "email": "yash", "password": "p", "mobile": "1"}`)

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(usecase.ErrEmailExists)

	err := handler.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptTerms_FallsBackToSessionLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPortalUC(ctrl)
	handler := NewAuthHandler(mockUC, &models.Config{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: CookieLogin, Value: "ypatel@corp.example.com"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		AcceptTerms(gomock.Any(), "ypatel@corp.example.com").
		Return(true, nil)

	err := handler.AcceptTerms(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_ClearsSessionCookies(t *testing.T) {
	_, handler, c, rec := newAuthTestContext(t, `{}`)

	err := handler.Logout(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, name := range []string{CookieLogin, CookieLoginType, CookieSession, CookieBearer} {
		cookie := findCookie(rec, name)
		require.NotNil(t, cookie, "expected %s cookie to be cleared", name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}
