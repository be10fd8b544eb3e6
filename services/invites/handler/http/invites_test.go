package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/middleware"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/invites/mocks"
)

func setupHandlerTest(t *testing.T) (*InviteHandler, *mocks.MockInviteUC) {
	ctrl := gomock.NewController(t)
	inviteUC := mocks.NewMockInviteUC(ctrl)
	return NewInviteHandler(inviteUC), inviteUC
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, actorID uuid.UUID, phone string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, actorID)
	c.Set(middleware.ContextKeyPhone, phone)
	return c
}

func TestCreate(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	actorID := uuid.New()
	shopID := uuid.New()

	inviteUC.EXPECT().
		Create(gomock.Any(), actorID, false, gomock.Any()).
		Return(&models.Invite{
			ID:     uuid.New(),
			Phone:  "+79991234567",
			Role:   models.RoleCashier,
			ShopID: shopID,
			Status: models.InviteStatusPending,
		}, nil)

	body := `{"phone":"+79991234567","role":"cashier","shop_id":"` + shopID.String() + `"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, actorID, "+79990000000")

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data models.Invite `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.InviteStatusPending, resp.Data.Status)
}

func TestCreate_MissingFields(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites", strings.NewReader(`{"phone":"+79991234567"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), "+79990000000")

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_DuplicatePending(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	actorID := uuid.New()
	shopID := uuid.New()

	inviteUC.EXPECT().
		Create(gomock.Any(), actorID, false, gomock.Any()).
		Return(nil, apperrors.ErrConflict)

	body := `{"phone":"+79991234567","role":"cashier","shop_id":"` + shopID.String() + `"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, actorID, "+79990000000")

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAccept(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	acceptorID := uuid.New()
	inviteID := uuid.New()

	inviteUC.EXPECT().
		Accept(gomock.Any(), inviteID, acceptorID, "+79991234567").
		Return(&models.Invite{ID: inviteID, Status: models.InviteStatusAccepted}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites/"+inviteID.String()+"/accept", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, acceptorID, "+79991234567")
	c.SetParamNames("id")
	c.SetParamValues(inviteID.String())

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccept_NotInvitedPhone(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	acceptorID := uuid.New()
	inviteID := uuid.New()

	inviteUC.EXPECT().
		Accept(gomock.Any(), inviteID, acceptorID, "+79990000000").
		Return(nil, apperrors.ErrForbidden)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites/"+inviteID.String()+"/accept", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, acceptorID, "+79990000000")
	c.SetParamNames("id")
	c.SetParamValues(inviteID.String())

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAccept_AlreadyTerminal(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	acceptorID := uuid.New()
	inviteID := uuid.New()

	inviteUC.EXPECT().
		Accept(gomock.Any(), inviteID, acceptorID, "+79991234567").
		Return(nil, apperrors.ErrInvalidState)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites/"+inviteID.String()+"/accept", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, acceptorID, "+79991234567")
	c.SetParamNames("id")
	c.SetParamValues(inviteID.String())

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCancel(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	actorID := uuid.New()
	inviteID := uuid.New()

	inviteUC.EXPECT().
		Cancel(gomock.Any(), inviteID, actorID, false).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites/"+inviteID.String()+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, actorID, "+79990000000")
	c.SetParamNames("id")
	c.SetParamValues(inviteID.String())

	require.NoError(t, handler.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReject(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	inviteID := uuid.New()

	inviteUC.EXPECT().
		Reject(gomock.Any(), inviteID, "+79991234567").
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites/"+inviteID.String()+"/reject", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), "+79991234567")
	c.SetParamNames("id")
	c.SetParamValues(inviteID.String())

	require.NoError(t, handler.Reject(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReject_BadID(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/invites/oops/reject", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), "+79991234567")
	c.SetParamNames("id")
	c.SetParamValues("oops")

	require.NoError(t, handler.Reject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMine(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)

	inviteUC.EXPECT().
		ListByPhone(gomock.Any(), "+79991234567").
		Return([]models.Invite{
			{ID: uuid.New(), Phone: "+79991234567", Status: models.InviteStatusPending},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/invites/my", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), "+79991234567")

	require.NoError(t, handler.ListMine(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Invite `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}

func TestListByShop(t *testing.T) {
	handler, inviteUC := setupHandlerTest(t)
	shopID := uuid.New()

	inviteUC.EXPECT().
		ListByShop(gomock.Any(), shopID).
		Return([]models.Invite{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shops/"+shopID.String()+"/invites", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), "+79990000000")
	c.SetParamNames("shop_id")
	c.SetParamValues(shopID.String())

	require.NoError(t, handler.ListByShop(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
