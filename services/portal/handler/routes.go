package handler

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/models"
	"github.com/yashpatel/fileportal/internal/utils"
	"github.com/yashpatel/fileportal/services/portal"
	portalhttp "github.com/yashpatel/fileportal/services/portal/handler/http"
)

// Handler coordinates the HTTP handlers for the portal service
type Handler struct {
	authHandler    *portalhttp.AuthHandler
	fileHandler    *portalhttp.FileHandler
	userHandler    *portalhttp.UserHandler
	accountHandler *portalhttp.AccountHandler
	portalUC       portal.PortalUC
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *portalhttp.AuthHandler,
	fileHandler *portalhttp.FileHandler,
	userHandler *portalhttp.UserHandler,
	accountHandler *portalhttp.AccountHandler,
	portalUC portal.PortalUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		fileHandler:    fileHandler,
		userHandler:    userHandler,
		accountHandler: accountHandler,
		portalUC:       portalUC,
		cfg:            cfg,
	}
}

// RegisterRoutes sets up all routes for the portal service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// sign-in flow
	api.POST("/auth/otp/send", h.authHandler.SendCode)
	api.POST("/send-code", h.authHandler.SendCode) // legacy alias kept for older clients
	api.POST("/auth/otp/verify", h.authHandler.VerifyCode)
	api.POST("/verify", h.authHandler.VerifyCode) // legacy alias kept for older clients
	api.POST("/auth/password", h.authHandler.PasswordLogin)
	api.POST("/auth/accept-terms", h.authHandler.AcceptTerms)
	api.POST("/auth/register", h.authHandler.Register)
	api.POST("/auth/logout", h.authHandler.Logout)

	// signed-in surface
	api.GET("/files", h.fileHandler.ListFiles)
	api.GET("/dashboard", h.fileHandler.Dashboard)

	// admin surface
	admin := api.Group("", h.adminMiddlewares()...)
	admin.GET("/users", h.userHandler.ListUsers)
	admin.POST("/users", h.userHandler.AddUser)
	admin.PUT("/users/:id", h.userHandler.UpdateUser)
	admin.PUT("/users", h.userHandler.UpdateUser)
	admin.DELETE("/users/:id", h.userHandler.DeleteUser)
	admin.DELETE("/users", h.userHandler.DeleteUser)
	admin.GET("/accounts", h.accountHandler.ListAccounts)
	admin.POST("/accounts", h.accountHandler.AddAccount)
}

// adminMiddlewares returns the gate for the admin surface. With a JWT
// secret configured the signed session cookie is required; otherwise the
// gate falls back to the login type cookie plus a live superadmin lookup.
func (h *Handler) adminMiddlewares() []echo.MiddlewareFunc {
	if h.cfg.JWT.Secret != "" {
		return []echo.MiddlewareFunc{
			echojwt.WithConfig(echojwt.Config{
				SigningKey:  []byte(h.cfg.JWT.Secret),
				TokenLookup: "cookie:" + portalhttp.CookieSession,
			}),
			h.requireSuperAdminClaim,
		}
	}
	return []echo.MiddlewareFunc{h.requireSuperAdminCookie}
}

// requireSuperAdminClaim checks the login_type claim of the validated
// session token. echojwt parses with golang-jwt v5, so the token in the
// context is a v5 token even though sessions are minted with v4 (the wire
// format is identical).
func (h *Handler) requireSuperAdminClaim(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return utils.UnauthorizedResponse(c, "Sign in to continue")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["login_type"] != models.LoginTypeSuperAdmin {
			return utils.ForbiddenResponse(c, "Admin access required")
		}
		return next(c)
	}
}

// requireSuperAdminCookie is the gate used without a JWT secret. The login
// type cookie decides; when it is absent but a session exists, the
// superadmin lookup gets the final say.
func (h *Handler) requireSuperAdminCookie(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		login := portalhttp.SessionLogin(c)
		if login == "" {
			return utils.UnauthorizedResponse(c, "Sign in to continue")
		}

		if loginType, err := c.Cookie(portalhttp.CookieLoginType); err == nil && loginType != nil {
			if loginType.Value == models.LoginTypeSuperAdmin {
				return next(c)
			}
			return utils.ForbiddenResponse(c, "Admin access required")
		}

		if h.portalUC.IsSuperAdmin(c.Request().Context(), login) {
			return next(c)
		}
		return utils.ForbiddenResponse(c, "Admin access required")
	}
}
