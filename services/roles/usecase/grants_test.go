package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/logger"
	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/models"
	"github.com/asylbekulybeibit/sauda-pro-backend/services/roles/mocks"
)

func newTestUC(t *testing.T) (*RoleUC, *mocks.MockRoleRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRoleRepo(ctrl)
	return NewRoleUC(repo, logger.NewNop()), repo
}

func shopScope(shopID uuid.UUID) models.Scope {
	return models.Scope{ShopID: &shopID}
}

func TestHasGrant_SuperBypass(t *testing.T) {
	uc, _ := newTestUC(t)

	ok, err := uc.HasGrant(context.Background(), uuid.New(), true,
		[]models.RoleLevel{models.RoleOwner}, models.Scope{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasGrant_SetMembershipNotOrdering(t *testing.T) {
	// a manager grant never satisfies a cashier-only endpoint
	uc, repo := newTestUC(t)
	userID := uuid.New()
	shopID := uuid.New()

	grants := []models.RoleGrant{
		{ID: uuid.New(), UserID: userID, Role: models.RoleManager, ShopID: &shopID, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), userID).Return(grants, nil).Times(2)

	ok, err := uc.HasGrant(context.Background(), userID, false,
		[]models.RoleLevel{models.RoleCashier}, shopScope(shopID))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.HasGrant(context.Background(), userID, false,
		[]models.RoleLevel{models.RoleCashier, models.RoleManager}, shopScope(shopID))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasGrant_ScopeMismatch(t *testing.T) {
	uc, repo := newTestUC(t)
	userID := uuid.New()
	shopA := uuid.New()
	shopB := uuid.New()

	grants := []models.RoleGrant{
		{ID: uuid.New(), UserID: userID, Role: models.RoleOwner, ShopID: &shopA, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), userID).Return(grants, nil)

	ok, err := uc.HasGrant(context.Background(), userID, false,
		[]models.RoleLevel{models.RoleOwner}, shopScope(shopB))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasGrant_WarehouseNarrowing(t *testing.T) {
	uc, repo := newTestUC(t)
	userID := uuid.New()
	shopID := uuid.New()
	warehouse1 := uuid.New()
	warehouse2 := uuid.New()

	grants := []models.RoleGrant{
		{ID: uuid.New(), UserID: userID, Role: models.RoleManager, ShopID: &shopID, WarehouseID: &warehouse1, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), userID).Return(grants, nil).Times(2)

	ok, err := uc.HasGrant(context.Background(), userID, false,
		[]models.RoleLevel{models.RoleManager},
		models.Scope{ShopID: &shopID, WarehouseID: &warehouse1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.HasGrant(context.Background(), userID, false,
		[]models.RoleLevel{models.RoleManager},
		models.Scope{ShopID: &shopID, WarehouseID: &warehouse2})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateGrant_OwnerCreatesCashier(t *testing.T) {
	uc, repo := newTestUC(t)
	actorID := uuid.New()
	targetID := uuid.New()
	shopID := uuid.New()

	actorGrants := []models.RoleGrant{
		{ID: uuid.New(), UserID: actorID, Role: models.RoleOwner, ShopID: &shopID, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), actorID).Return(actorGrants, nil)
	repo.EXPECT().
		FindActiveGrant(gomock.Any(), targetID, models.RoleCashier, gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().
		CreateGrant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, grant *models.RoleGrant) error {
			assert.Equal(t, targetID, grant.UserID)
			assert.Equal(t, models.RoleCashier, grant.Role)
			grant.ID = uuid.New()
			return nil
		})

	grant, err := uc.CreateGrant(context.Background(), actorID, false, &models.CreateGrantRequest{
		UserID: targetID,
		Role:   models.RoleCashier,
		ShopID: &shopID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCashier, grant.Role)
}

func TestCreateGrant_ManagerCannotCreateManager(t *testing.T) {
	uc, repo := newTestUC(t)
	actorID := uuid.New()
	shopID := uuid.New()

	actorGrants := []models.RoleGrant{
		{ID: uuid.New(), UserID: actorID, Role: models.RoleManager, ShopID: &shopID, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), actorID).Return(actorGrants, nil)

	_, err := uc.CreateGrant(context.Background(), actorID, false, &models.CreateGrantRequest{
		UserID: uuid.New(),
		Role:   models.RoleManager,
		ShopID: &shopID,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateGrant_OwnerWrongShop(t *testing.T) {
	uc, repo := newTestUC(t)
	actorID := uuid.New()
	shopA := uuid.New()
	shopB := uuid.New()

	actorGrants := []models.RoleGrant{
		{ID: uuid.New(), UserID: actorID, Role: models.RoleOwner, ShopID: &shopA, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), actorID).Return(actorGrants, nil)

	_, err := uc.CreateGrant(context.Background(), actorID, false, &models.CreateGrantRequest{
		UserID: uuid.New(),
		Role:   models.RoleCashier,
		ShopID: &shopB,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateGrant_SuperCreatesOwner(t *testing.T) {
	uc, repo := newTestUC(t)
	targetID := uuid.New()
	shopID := uuid.New()

	repo.EXPECT().
		FindActiveGrant(gomock.Any(), targetID, models.RoleOwner, gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().
		CreateGrant(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.CreateGrant(context.Background(), uuid.New(), true, &models.CreateGrantRequest{
		UserID: targetID,
		Role:   models.RoleOwner,
		ShopID: &shopID,
	})
	assert.NoError(t, err)
}

func TestCreateGrant_SuperCannotCreateCashierDirectly(t *testing.T) {
	// the delegation table binds super accounts too: superadmin delegates
	// owners only
	uc, _ := newTestUC(t)
	shopID := uuid.New()

	_, err := uc.CreateGrant(context.Background(), uuid.New(), true, &models.CreateGrantRequest{
		UserID: uuid.New(),
		Role:   models.RoleCashier,
		ShopID: &shopID,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateGrant_DuplicateActive(t *testing.T) {
	uc, repo := newTestUC(t)
	actorID := uuid.New()
	targetID := uuid.New()
	shopID := uuid.New()

	actorGrants := []models.RoleGrant{
		{ID: uuid.New(), UserID: actorID, Role: models.RoleOwner, ShopID: &shopID, IsActive: true},
	}
	repo.EXPECT().GetActiveGrants(gomock.Any(), actorID).Return(actorGrants, nil)
	repo.EXPECT().
		FindActiveGrant(gomock.Any(), targetID, models.RoleCashier, gomock.Any()).
		Return(&models.RoleGrant{ID: uuid.New(), IsActive: true}, nil)

	_, err := uc.CreateGrant(context.Background(), actorID, false, &models.CreateGrantRequest{
		UserID: targetID,
		Role:   models.RoleCashier,
		ShopID: &shopID,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateGrant_ScopeShape(t *testing.T) {
	uc, _ := newTestUC(t)
	shopID := uuid.New()
	warehouseID := uuid.New()

	tests := []struct {
		name string
		req  *models.CreateGrantRequest
	}{
		{"superadmin with scope", &models.CreateGrantRequest{
			UserID: uuid.New(), Role: models.RoleSuperadmin, ShopID: &shopID}},
		{"owner without shop", &models.CreateGrantRequest{
			UserID: uuid.New(), Role: models.RoleOwner}},
		{"owner with warehouse", &models.CreateGrantRequest{
			UserID: uuid.New(), Role: models.RoleOwner, ShopID: &shopID, WarehouseID: &warehouseID}},
		{"cashier without shop", &models.CreateGrantRequest{
			UserID: uuid.New(), Role: models.RoleCashier}},
		{"unknown role", &models.CreateGrantRequest{
			UserID: uuid.New(), Role: models.RoleLevel("auditor"), ShopID: &shopID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateGrant(context.Background(), uuid.New(), true, tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRevokeGrant(t *testing.T) {
	uc, repo := newTestUC(t)
	actorID := uuid.New()
	shopID := uuid.New()
	grantID := uuid.New()

	target := &models.RoleGrant{
		ID: grantID, UserID: uuid.New(), Role: models.RoleCashier, ShopID: &shopID, IsActive: true,
	}
	actorGrants := []models.RoleGrant{
		{ID: uuid.New(), UserID: actorID, Role: models.RoleOwner, ShopID: &shopID, IsActive: true},
	}
	repo.EXPECT().GetGrantByID(gomock.Any(), grantID).Return(target, nil)
	repo.EXPECT().GetActiveGrants(gomock.Any(), actorID).Return(actorGrants, nil)
	repo.EXPECT().DeactivateGrant(gomock.Any(), grantID).Return(true, nil)

	err := uc.RevokeGrant(context.Background(), actorID, false, grantID)
	assert.NoError(t, err)
}

func TestRevokeGrant_AlreadyInactiveIsNoop(t *testing.T) {
	uc, repo := newTestUC(t)
	grantID := uuid.New()
	shopID := uuid.New()

	target := &models.RoleGrant{
		ID: grantID, UserID: uuid.New(), Role: models.RoleOwner, ShopID: &shopID, IsActive: false,
	}
	repo.EXPECT().GetGrantByID(gomock.Any(), grantID).Return(target, nil)
	repo.EXPECT().DeactivateGrant(gomock.Any(), grantID).Return(false, nil)

	err := uc.RevokeGrant(context.Background(), uuid.New(), true, grantID)
	assert.NoError(t, err)
}

func TestRevokeGrant_SuperBypassesDelegation(t *testing.T) {
	// a super account may revoke any grant, including a cashier grant the
	// delegation table would not let superadmin create directly
	uc, repo := newTestUC(t)
	grantID := uuid.New()
	shopID := uuid.New()

	target := &models.RoleGrant{
		ID: grantID, UserID: uuid.New(), Role: models.RoleCashier, ShopID: &shopID, IsActive: true,
	}
	repo.EXPECT().GetGrantByID(gomock.Any(), grantID).Return(target, nil)
	repo.EXPECT().DeactivateGrant(gomock.Any(), grantID).Return(true, nil)

	err := uc.RevokeGrant(context.Background(), uuid.New(), true, grantID)
	assert.NoError(t, err)
}

func TestRevokeGrant_Unauthorized(t *testing.T) {
	uc, repo := newTestUC(t)
	actorID := uuid.New()
	grantID := uuid.New()
	shopID := uuid.New()

	target := &models.RoleGrant{
		ID: grantID, UserID: uuid.New(), Role: models.RoleManager, ShopID: &shopID, IsActive: true,
	}
	actorGrants := []models.RoleGrant{
		{ID: uuid.New(), UserID: actorID, Role: models.RoleManager, ShopID: &shopID, IsActive: true},
	}
	repo.EXPECT().GetGrantByID(gomock.Any(), grantID).Return(target, nil)
	repo.EXPECT().GetActiveGrants(gomock.Any(), actorID).Return(actorGrants, nil)

	err := uc.RevokeGrant(context.Background(), actorID, false, grantID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRevokeGrant_NotFound(t *testing.T) {
	uc, repo := newTestUC(t)
	grantID := uuid.New()

	repo.EXPECT().GetGrantByID(gomock.Any(), grantID).Return(nil, apperrors.ErrNotFound)

	err := uc.RevokeGrant(context.Background(), uuid.New(), true, grantID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
