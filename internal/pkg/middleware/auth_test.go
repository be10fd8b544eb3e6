package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/jwt"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
)

type grantCheckerFunc func(ctx context.Context, userID uuid.UUID, isSuper bool, allowed []models.RoleLevel, scope models.Scope) (bool, error)

func (f grantCheckerFunc) HasGrant(ctx context.Context, userID uuid.UUID, isSuper bool, allowed []models.RoleLevel, scope models.Scope) (bool, error) {
	return f(ctx, userID, isSuper, allowed, scope)
}

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:      "access-secret",
		RefreshSecret:     "refresh-secret",
		Issuer:            "sauda-pro-test",
		AccessExpiration:  60,
		RefreshExpiration: 168,
	}
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuth_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	user := &models.User{ID: uuid.New(), Phone: "+79991234567", IsSuper: true}

	pair, err := jwtpkg.GenerateTokenPair(user, cfg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	var gotPhone string
	var gotSuper bool
	handler := Auth(cfg)(func(c echo.Context) error {
		gotID, _ = UserIDFromContext(c)
		gotPhone = PhoneFromContext(c)
		gotSuper = IsSuperFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, user.Phone, gotPhone)
	assert.True(t, gotSuper)
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testJWTConfig())(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testJWTConfig())(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	// a refresh token must not open the gate
	cfg := testJWTConfig()
	user := &models.User{ID: uuid.New(), Phone: "+79991234567"}

	pair, err := jwtpkg.GenerateTokenPair(user, cfg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(cfg)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_Allowed(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()

	checker := grantCheckerFunc(func(ctx context.Context, gotUser uuid.UUID, isSuper bool, allowed []models.RoleLevel, scope models.Scope) (bool, error) {
		assert.Equal(t, userID, gotUser)
		assert.False(t, isSuper)
		assert.Equal(t, []models.RoleLevel{models.RoleOwner, models.RoleManager}, allowed)
		require.NotNil(t, scope.ShopID)
		assert.Equal(t, shopID, *scope.ShopID)
		return true, nil
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("shop_id")
	c.SetParamValues(shopID.String())
	c.Set(ContextKeyUserID, userID)

	handler := RequireRoles(checker, models.RoleOwner, models.RoleManager)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	checker := grantCheckerFunc(func(context.Context, uuid.UUID, bool, []models.RoleLevel, models.Scope) (bool, error) {
		return false, nil
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserID, uuid.New())

	handler := RequireRoles(checker, models.RoleOwner)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_CheckerError(t *testing.T) {
	checker := grantCheckerFunc(func(context.Context, uuid.UUID, bool, []models.RoleLevel, models.Scope) (bool, error) {
		return false, errors.New("db down")
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserID, uuid.New())

	handler := RequireRoles(checker, models.RoleOwner)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireRoles_NoPrincipal(t *testing.T) {
	checker := grantCheckerFunc(func(context.Context, uuid.UUID, bool, []models.RoleLevel, models.Scope) (bool, error) {
		t.Fatal("checker must not be consulted without a principal")
		return false, nil
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRoles(checker, models.RoleOwner)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestScopeFromRequest_QueryFallback(t *testing.T) {
	shopID := uuid.New()
	warehouseID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?shop_id="+shopID.String()+"&warehouse_id="+warehouseID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	scope, err := ScopeFromRequest(c)
	require.NoError(t, err)
	require.NotNil(t, scope.ShopID)
	require.NotNil(t, scope.WarehouseID)
	assert.Equal(t, shopID, *scope.ShopID)
	assert.Equal(t, warehouseID, *scope.WarehouseID)
}

func TestScopeFromRequest_RejectsGarbage(t *testing.T) {
	// a malformed scope param must not degrade into an empty scope, which
	// any grant would cover
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?shop_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_, err := ScopeFromRequest(c)
	assert.Error(t, err)
}

func TestRequireRoles_MalformedScopeParam(t *testing.T) {
	checker := grantCheckerFunc(func(context.Context, uuid.UUID, bool, []models.RoleLevel, models.Scope) (bool, error) {
		t.Fatal("checker must not be consulted with a malformed scope")
		return false, nil
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?shop_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyUserID, uuid.New())

	handler := RequireRoles(checker, models.RoleOwner)(okHandler)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
