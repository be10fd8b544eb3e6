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
	"github.com/asylbekulybeibit/sauda-pro-backend/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Environment: "local"},
		JWT: models.JWTConfig{
			AccessSecret:      "access-secret",
			RefreshSecret:     "refresh-secret",
			Issuer:            "sauda-pro-test",
			AccessExpiration:  60,
			RefreshExpiration: 168,
		},
	}
}

func setupHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	authUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(authUC, testConfig()), authUC
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestRequestCode(t *testing.T) {
	handler, authUC := setupHandlerTest(t)

	authUC.EXPECT().
		RequestCode(gomock.Any(), "+79991234567").
		Return(nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/otp/request", `{"phone":"+79991234567"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RequestCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestCode_MissingPhone(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/otp/request", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RequestCode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestCode_ValidationError(t *testing.T) {
	handler, authUC := setupHandlerTest(t)

	authUC.EXPECT().
		RequestCode(gomock.Any(), "12345").
		Return(apperrors.ErrValidation)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/otp/request", `{"phone":"12345"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RequestCode(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCode_SetsRefreshCookie(t *testing.T) {
	handler, authUC := setupHandlerTest(t)
	userID := uuid.New()

	authUC.EXPECT().
		VerifyCode(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			UserID:       userID,
		}, nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/otp/verify", `{"phone":"+79991234567","code":"4321"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.VerifyCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// the refresh token leaves only as an HTTP-only cookie, never in the body
	var body struct {
		Data models.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body.Data.AccessToken)
	assert.Empty(t, body.Data.RefreshToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, refreshCookieName, cookies[0].Name)
	assert.Equal(t, "refresh-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/auth", cookies[0].Path)
}

func TestVerifyCode_WrongCode(t *testing.T) {
	handler, authUC := setupHandlerTest(t)

	authUC.EXPECT().
		VerifyCode(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/otp/verify", `{"phone":"+79991234567","code":"0000"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.VerifyCode(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_FromCookie(t *testing.T) {
	handler, authUC := setupHandlerTest(t)

	authUC.EXPECT().
		RefreshTokens(gomock.Any(), "old-refresh").
		Return(&models.AuthResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			UserID:       uuid.New(),
		}, nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/token/refresh", "")
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "old-refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "new-refresh", cookies[0].Value)
}

func TestRefresh_BodyFallback(t *testing.T) {
	handler, authUC := setupHandlerTest(t)

	authUC.EXPECT().
		RefreshTokens(gomock.Any(), "body-refresh").
		Return(&models.AuthResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			UserID:       uuid.New(),
		}, nil)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/token/refresh", `{"refresh_token":"body-refresh"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefresh_MissingToken(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/token/refresh", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_RotatedAwayToken(t *testing.T) {
	handler, authUC := setupHandlerTest(t)

	authUC.EXPECT().
		RefreshTokens(gomock.Any(), "stolen-refresh").
		Return(nil, apperrors.ErrInvalidToken)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/auth/token/refresh", "")
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "stolen-refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	handler, authUC := setupHandlerTest(t)
	userID := uuid.New()

	authUC.EXPECT().
		CurrentPrincipal(gomock.Any(), "the-access-token").
		Return(&models.Principal{
			AccountID: userID,
			Phone:     "+79991234567",
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer the-access-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.Principal `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID, body.Data.AccountID)
}

func TestUpdateMe(t *testing.T) {
	handler, authUC := setupHandlerTest(t)
	userID := uuid.New()
	fullName := "Aigerim Nurlanovna"

	authUC.EXPECT().
		UpdateProfile(gomock.Any(), userID, &models.UserUpdate{FullName: &fullName}).
		Return(&models.User{ID: userID, Phone: "+79991234567", FullName: fullName, IsActive: true}, nil)

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/auth/me", `{"full_name":"Aigerim Nurlanovna"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.UpdateMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, fullName, body.Data.FullName)
}

func TestUpdateMe_NothingToUpdate(t *testing.T) {
	handler, authUC := setupHandlerTest(t)
	userID := uuid.New()

	authUC.EXPECT().
		UpdateProfile(gomock.Any(), userID, &models.UserUpdate{}).
		Return(nil, apperrors.ErrValidation)

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/auth/me", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.UpdateMe(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMe_NoPrincipal(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/auth/me", `{"full_name":"Aigerim"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.UpdateMe(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_NoToken(t *testing.T) {
	handler, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
