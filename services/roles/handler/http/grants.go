package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/middleware"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/utils"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/roles"
)

// GrantHandler handles role grant management endpoints
type GrantHandler struct {
	roleUC roles.RoleUC
}

// NewGrantHandler creates a new grant handler
func NewGrantHandler(roleUC roles.RoleUC) *GrantHandler {
	return &GrantHandler{roleUC: roleUC}
}

// RegisterRoutes registers grant endpoints behind the authorization gate
func (h *GrantHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc, checker middleware.GrantChecker) {
	staffRoles := middleware.RequireRoles(checker,
		models.RoleOwner, models.RoleManager)

	e.POST("/grants", h.CreateGrant, authMW)
	e.DELETE("/grants/:id", h.RevokeGrant, authMW)
	e.GET("/shops/:shop_id/grants", h.ListGrants, authMW, staffRoles)
}

// CreateGrant handles POST /grants. Delegation authority is enforced in
// the usecase against the creator's own grants, so no static role set is
// attached here.
func (h *GrantHandler) CreateGrant(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateGrantRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.UserID == uuid.Nil || req.Role == "" {
		return utils.BadRequestResponse(c, "User and role are required")
	}

	grant, err := h.roleUC.CreateGrant(c.Request().Context(), actorID, middleware.IsSuperFromContext(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Grant created", grant)
}

// RevokeGrant handles DELETE /grants/:id
func (h *GrantHandler) RevokeGrant(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	grantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid grant id")
	}

	if err := h.roleUC.RevokeGrant(c.Request().Context(), actorID, middleware.IsSuperFromContext(c), grantID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Grant revoked", nil)
}

// ListGrants handles GET /shops/:shop_id/grants
func (h *GrantHandler) ListGrants(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shop_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid shop id")
	}

	grants, err := h.roleUC.ListGrantsByShop(c.Request().Context(), shopID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", grants)
}
