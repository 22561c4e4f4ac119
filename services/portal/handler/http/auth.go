package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal"
)

// AuthHandler handles HTTP requests for the sign-in flow
type AuthHandler struct {
	portalUC portal.PortalUC
	cfg      *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(portalUC portal.PortalUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		portalUC: portalUC,
		cfg:      cfg,
	}
}

// SendCode handles verification code send requests
func (h *AuthHandler) SendCode(c echo.Context) error {
	var req models.SendCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.portalUC.SendCode(c.Request().Context(), req.Login)
	if err != nil {
		logger.Warn("Failed to send verification code",
			logger.String("login", req.Login),
			logger.Err(err))
		return respondError(c, err)
	}
	if !result.OK {
		return utils.BadGatewayResponse(c, "Couldn't send the verification code")
	}

	payload := map[string]interface{}{}
	if result.Code != "" {
		payload["code"] = result.Code
	}
	return utils.OKPayload(c, http.StatusOK, payload)
}

// VerifyCode handles verification code check requests. A valid code opens a
// regular user session.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ok, err := h.portalUC.VerifyCode(c.Request().Context(), req.Login, req.Code)
	if err != nil {
		logger.Warn("Code verification failed",
			logger.String("login", req.Login),
			logger.Err(err))
		return respondError(c, err)
	}
	if !ok {
		return utils.UnauthorizedResponse(c, "The code you entered is incorrect or has expired")
	}

	// Store the full address so later lookups against the session login
	// match what the backend and the allowlist use.
	login := req.Login
	if normalized, nerr := utils.NormalizeLogin(req.Login, h.cfg.Auth.EmailDomain, h.cfg.Auth.DomainRewrite); nerr == nil {
		login = normalized
	}
	setSessionCookie(c, CookieLogin, login)
	setSessionCookie(c, CookieLoginType, models.LoginTypeUser)

	return utils.OKResponse(c, http.StatusOK)
}

// PasswordLogin handles password sign-in requests. Success opens a session
// whose type decides admin access.
func (h *AuthHandler) PasswordLogin(c echo.Context) error {
	var req models.PasswordLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.portalUC.PasswordLogin(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if !result.OK {
		message := result.Message
		if message == "" {
			message = "Invalid email or password"
		}
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"ok":                false,
			"error":             message,
			"needsVerification": result.NeedsVerification,
		})
	}

	setSessionCookie(c, CookieLogin, result.Login)
	setSessionCookie(c, CookieLoginType, result.LoginType)
	if result.Token != "" {
		setSessionCookie(c, CookieSession, result.Token)
	}

	return utils.OKPayload(c, http.StatusOK, map[string]interface{}{
		"login":     result.Login,
		"loginType": result.LoginType,
	})
}

// AcceptTerms handles terms acceptance requests
func (h *AuthHandler) AcceptTerms(c echo.Context) error {
	var req models.AcceptTermsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Login == "" {
		req.Login = SessionLogin(c)
	}

	ok, err := h.portalUC.AcceptTerms(c.Request().Context(), req.Login)
	if err != nil {
		logger.Warn("Terms acceptance failed",
			logger.String("login", req.Login),
			logger.Err(err))
		return respondError(c, err)
	}
	if !ok {
		return utils.BadGatewayResponse(c, "Couldn't record your acceptance")
	}

	return utils.OKResponse(c, http.StatusOK)
}

// Register handles self-registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.portalUC.Register(c.Request().Context(), &req); err != nil {
		logger.Warn("Registration failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created, check your email for credentials", nil)
}

// Logout clears the session cookies
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, CookieLogin)
	clearSessionCookie(c, CookieLoginType)
	clearSessionCookie(c, CookieSession)
	clearSessionCookie(c, CookieBearer)
	return utils.OKResponse(c, http.StatusOK)
}
