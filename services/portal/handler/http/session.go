package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal/usecase"
)

// Session cookie names. All cookies are httpOnly; the browser never reads
// them directly.
const (
	CookieLogin     = "portal_login"
	CookieLoginType = "login_type"
	CookieSession   = "portal_session"
	CookieBearer    = "backend_token"
)

const sessionMaxAge = 12 * 60 * 60 // seconds

func setSessionCookie(c echo.Context, name, value string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

// CredsFromContext extracts the per-request backend credentials. An absent
// bearer cookie yields empty credentials and the adapter falls back to its
// static token.
func CredsFromContext(c echo.Context) models.Credentials {
	return models.Credentials{Bearer: cookieValue(c, CookieBearer)}
}

// SessionLogin returns the signed-in login, or empty when no session exists.
func SessionLogin(c echo.Context) string {
	return cookieValue(c, CookieLogin)
}

// respondError maps usecase errors onto the API envelope: validation
// failures are 400s, duplicate registration is a 409, definitive upstream
// rejections keep their status, and anything else means the backend was
// unreachable.
func respondError(c echo.Context, err error) error {
	var upstream *models.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrEmailExists):
		return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, utils.ErrInvalidFormat),
		errors.Is(err, utils.ErrMissingDomain),
		errors.Is(err, utils.ErrWrongDomain),
		errors.Is(err, usecase.ErrMissingUserField),
		errors.Is(err, usecase.ErrMissingUserID),
		errors.Is(err, usecase.ErrMissingAccountField):
		return utils.BadRequestResponse(c, err.Error())
	case errors.As(err, &upstream):
		status := upstream.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return utils.ErrorResponseHandler(c, status, upstream.Error())
	default:
		return utils.BadGatewayResponse(c, "")
	}
}
