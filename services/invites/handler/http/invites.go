package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/middleware"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/utils"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/invites"
)

// InviteHandler handles invite lifecycle endpoints
type InviteHandler struct {
	inviteUC invites.InviteUC
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteUC invites.InviteUC) *InviteHandler {
	return &InviteHandler{inviteUC: inviteUC}
}

// RegisterRoutes registers invite endpoints behind the authorization gate
func (h *InviteHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc, checker middleware.GrantChecker) {
	managers := middleware.RequireRoles(checker,
		models.RoleOwner, models.RoleManager)

	e.POST("/invites", h.Create, authMW)
	e.GET("/invites/my", h.ListMine, authMW)
	e.POST("/invites/:id/accept", h.Accept, authMW)
	e.POST("/invites/:id/cancel", h.Cancel, authMW)
	e.POST("/invites/:id/reject", h.Reject, authMW)
	e.GET("/shops/:shop_id/invites", h.ListByShop, authMW, managers)
}

// Create handles POST /invites. Delegation authority is enforced in the
// usecase against the creator's own grants.
func (h *InviteHandler) Create(c echo.Context) error {
	creatorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateInviteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.Role == "" || req.ShopID == uuid.Nil {
		return utils.BadRequestResponse(c, "Phone, role and shop are required")
	}

	invite, err := h.inviteUC.Create(c.Request().Context(), creatorID, middleware.IsSuperFromContext(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Invite created", invite)
}

// Accept handles POST /invites/:id/accept
func (h *InviteHandler) Accept(c echo.Context) error {
	acceptorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid invite id")
	}

	invite, err := h.inviteUC.Accept(c.Request().Context(), inviteID, acceptorID, middleware.PhoneFromContext(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invite accepted", invite)
}

// Cancel handles POST /invites/:id/cancel
func (h *InviteHandler) Cancel(c echo.Context) error {
	actorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid invite id")
	}

	if err := h.inviteUC.Cancel(c.Request().Context(), inviteID, actorID, middleware.IsSuperFromContext(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invite cancelled", nil)
}

// Reject handles POST /invites/:id/reject
func (h *InviteHandler) Reject(c echo.Context) error {
	inviteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid invite id")
	}

	if err := h.inviteUC.Reject(c.Request().Context(), inviteID, middleware.PhoneFromContext(c)); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invite rejected", nil)
}

// ListByShop handles GET /shops/:shop_id/invites
func (h *InviteHandler) ListByShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shop_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid shop id")
	}

	list, err := h.inviteUC.ListByShop(c.Request().Context(), shopID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListMine handles GET /invites/my: the offers addressed to the
// authenticated phone identity
func (h *InviteHandler) ListMine(c echo.Context) error {
	phone := middleware.PhoneFromContext(c)
	if phone == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.inviteUC.ListByPhone(c.Request().Context(), phone)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}
