package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal"
)

// FileHandler handles HTTP requests for the dashboard's file listing
type FileHandler struct {
	portalUC portal.PortalUC
}

// NewFileHandler creates a new file handler
func NewFileHandler(portalUC portal.PortalUC) *FileHandler {
	return &FileHandler{
		portalUC: portalUC,
	}
}

// ListFiles handles file listing requests. The login comes from the query
// string or falls back to the session.
func (h *FileHandler) ListFiles(c echo.Context) error {
	login := c.QueryParam("login")
	if login == "" {
		login = SessionLogin(c)
	}
	if login == "" {
		return utils.UnauthorizedResponse(c, "Sign in to view your files")
	}

	files, err := h.portalUC.ListFiles(c.Request().Context(), CredsFromContext(c), login)
	if err != nil {
		logger.Warn("File listing failed",
			logger.String("login", login),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusOK, map[string]interface{}{
		"files": files,
	})
}

// Dashboard handles the signed-in landing data request: who the session
// belongs to and their files.
func (h *FileHandler) Dashboard(c echo.Context) error {
	login := SessionLogin(c)
	if login == "" {
		return utils.UnauthorizedResponse(c, "Sign in to view your dashboard")
	}

	files, err := h.portalUC.ListFiles(c.Request().Context(), CredsFromContext(c), login)
	if err != nil {
		logger.Warn("Dashboard file listing failed",
			logger.String("login", login),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusOK, map[string]interface{}{
		"login":     login,
		"loginType": cookieValue(c, CookieLoginType),
		"files":     files,
	})
}
