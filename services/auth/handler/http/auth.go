package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/middleware"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/utils"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/auth"
)

const refreshCookieName = "refresh_token"

// AuthHandler handles the passwordless login endpoints
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// RegisterRoutes registers the auth endpoints. Code request/verify and
// token rotation are the only public routes in the system besides health.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	group := e.Group("/auth")
	group.POST("/otp/request", h.RequestCode)
	group.POST("/otp/verify", h.VerifyCode)
	group.POST("/token/refresh", h.Refresh)
	group.GET("/me", h.Me, authMW)
	group.PATCH("/me", h.UpdateMe, authMW)
}

// RequestCode handles POST /auth/otp/request
func (h *AuthHandler) RequestCode(c echo.Context) error {
	var req models.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone is required")
	}

	if err := h.authUC.RequestCode(c.Request().Context(), req.Phone); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Code sent", nil)
}

// VerifyCode handles POST /auth/otp/verify. The access token travels in
// the body; the refresh token only ever leaves as an HTTP-only cookie.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Phone and code are required")
	}

	resp, err := h.authUC.VerifyCode(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	resp.RefreshToken = ""

	return utils.SuccessResponse(c, http.StatusOK, "Authenticated", resp)
}

// Refresh handles POST /auth/token/refresh. The refresh token is read from
// the cookie, with a body fallback for clients that cannot use cookies.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req models.RefreshRequest
		if err := c.Bind(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.UnauthorizedResponse(c, "Refresh token is required")
	}

	resp, err := h.authUC.RefreshTokens(c.Request().Context(), refreshToken)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	h.setRefreshCookie(c, resp.RefreshToken)
	resp.RefreshToken = ""

	return utils.SuccessResponse(c, http.StatusOK, "Tokens rotated", resp)
}

// Me handles GET /auth/me, the principal resolution surface every other
// module's guard layer consumes
func (h *AuthHandler) Me(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	principal, err := h.authUC.CurrentPrincipal(c.Request().Context(), token)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", principal)
}

// UpdateMe handles PATCH /auth/me, the named profile update
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UserUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, refreshToken string) {
	maxAge := time.Duration(h.cfg.JWT.RefreshExpiration) * time.Hour

	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/auth",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.App.Environment != "local",
		SameSite: http.SameSiteStrictMode,
	})
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
