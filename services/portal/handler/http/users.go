package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal"
)

// UserHandler handles HTTP requests for user management
type UserHandler struct {
	portalUC portal.PortalUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(portalUC portal.PortalUC) *UserHandler {
	return &UserHandler{
		portalUC: portalUC,
	}
}

// ListUsers handles user listing requests
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.portalUC.ListUsers(c.Request().Context(), CredsFromContext(c))
	if err != nil {
		logger.Warn("User listing failed", logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

// AddUser handles user creation requests
func (h *UserHandler) AddUser(c echo.Context) error {
	var input models.UserInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.portalUC.AddUser(c.Request().Context(), CredsFromContext(c), &input)
	if err != nil {
		logger.Warn("User creation failed",
			logger.String("email", input.Email),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusCreated, map[string]interface{}{
		"user": user,
	})
}

// UpdateUser handles user update requests. The id comes from the path or
// the payload.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input models.UserUpdate
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if id, err := strconv.Atoi(c.Param("id")); err == nil {
		input.ID = id
	}

	user, err := h.portalUC.UpdateUser(c.Request().Context(), CredsFromContext(c), &input)
	if err != nil {
		logger.Warn("User update failed",
			logger.Int("id", input.ID),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}

// DeleteUser handles user deletion requests. The id comes from the path,
// the query string, or the payload.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		id, err = strconv.Atoi(c.QueryParam("id"))
	}
	if err != nil {
		var body struct {
			ID int `json:"id"`
		}
		if bindErr := c.Bind(&body); bindErr == nil {
			id = body.ID
		}
	}

	ok, err := h.portalUC.DeleteUser(c.Request().Context(), CredsFromContext(c), id)
	if err != nil {
		logger.Warn("User deletion failed",
			logger.Int("id", id),
			logger.Err(err))
		return respondError(c, err)
	}
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusNotFound, "User not found")
	}

	return utils.OKResponse(c, http.StatusOK)
}
