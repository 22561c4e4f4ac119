package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal"
)

// AccountHandler handles HTTP requests for account management
type AccountHandler struct {
	portalUC portal.PortalUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(portalUC portal.PortalUC) *AccountHandler {
	return &AccountHandler{
		portalUC: portalUC,
	}
}

// ListAccounts handles account listing requests
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.portalUC.ListAccounts(c.Request().Context(), CredsFromContext(c))
	if err != nil {
		logger.Warn("Account listing failed", logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}

// AddAccount handles account creation requests
func (h *AccountHandler) AddAccount(c echo.Context) error {
	var input models.AccountInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	account, err := h.portalUC.AddAccount(c.Request().Context(), CredsFromContext(c), &input)
	if err != nil {
		logger.Warn("Account creation failed",
			logger.String("client_name", input.ClientName),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.OKPayload(c, http.StatusCreated, map[string]interface{}{
		"account": account,
	})
}
