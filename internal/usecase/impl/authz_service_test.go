package impl

import (
	"context"
	"testing"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authzFixtures struct {
	service   usecase.AuthzUsecase
	ownerRepo *mockRepo.MockOwnerRepository
	petRepo   *mockRepo.MockPetRepository
	visitRepo *mockRepo.MockVisitRepository
}

func createTestAuthzService(t *testing.T) authzFixtures {
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)

	service := &authzService{
		ownerRepo: ownerRepo,
		petRepo:   petRepo,
		visitRepo: visitRepo,
		logger:    newDiscardLogger(),
	}

	return authzFixtures{
		service:   service,
		ownerRepo: ownerRepo,
		petRepo:   petRepo,
		visitRepo: visitRepo,
	}
}

func TestAuthzService_SuperAdminAllowsEverything(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	actions := []entity.Action{
		entity.ActionRead, entity.ActionCreate, entity.ActionUpdate,
		entity.ActionDelete, entity.ActionDeleteCascade,
	}
	resources := []entity.ResourceType{
		entity.ResourceOwner, entity.ResourcePet, entity.ResourceVisit,
		entity.ResourceVet, entity.ResourceUser,
	}

	for _, action := range actions {
		for _, resource := range resources {
			err := fx.service.Authorize(ctx, identity, action, resource, uuid.New())
			assert.NoError(t, err, "superadmin denied %s on %s", action, resource)
		}
	}
}

func TestAuthzService_AdminReservedActionsDenied(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()
	identity := adminIdentity()

	reserved := []struct {
		action   entity.Action
		resource entity.ResourceType
	}{
		{entity.ActionDeleteCascade, entity.ResourceUser},
		{entity.ActionDeleteCascade, entity.ResourceOwner},
		{entity.ActionDelete, entity.ResourceVet},
		{entity.ActionDelete, entity.ResourceVisit},
	}

	for _, rc := range reserved {
		err := fx.service.Authorize(ctx, identity, rc.action, rc.resource, uuid.New())
		require.Error(t, err, "admin allowed %s on %s", rc.action, rc.resource)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	}
}

func TestAuthzService_AdminAllowedOutsideReservedSet(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()
	identity := adminIdentity()

	// No ownership lookup happens for privileged callers.
	assert.NoError(t, fx.service.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, uuid.New()))
	assert.NoError(t, fx.service.Authorize(ctx, identity, entity.ActionDelete, entity.ResourcePet, uuid.New()))
	assert.NoError(t, fx.service.Authorize(ctx, identity, entity.ActionUpdate, entity.ResourceVet, uuid.New()))
	assert.NoError(t, fx.service.Authorize(ctx, identity, entity.ActionCreate, entity.ResourceVisit, uuid.New()))
}

func TestAuthzService_UserAllowedOnOwnedResource(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	userID := uuid.New()
	ownerID := uuid.New()
	identity := userIdentity(userID)

	fx.ownerRepo.On("FindByID", ctx, ownerID).
		Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)

	assert.NoError(t, fx.service.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, ownerID))
}

func TestAuthzService_UserDeniedOnForeignResource(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	identity := userIdentity(uuid.New())
	ownerID := uuid.New()

	fx.ownerRepo.On("FindByID", ctx, ownerID).
		Return(&entity.Owner{ID: ownerID, UserID: uuid.New()}, nil)

	err := fx.service.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, ownerID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthzService_UserDeleteNeverGranted(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	userID := uuid.New()
	petID := uuid.New()
	identity := userIdentity(userID)

	// Even a pet the user owns cannot be deleted by them; the ownership
	// chain is never consulted for delete.
	err := fx.service.Authorize(ctx, identity, entity.ActionDelete, entity.ResourcePet, petID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthzService_TransitiveOwnershipThroughVisit(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	userID := uuid.New()
	ownerID := uuid.New()
	petID := uuid.New()
	visitID := uuid.New()
	identity := userIdentity(userID)

	fx.visitRepo.On("FindByID", ctx, visitID).
		Return(&entity.Visit{ID: visitID, PetID: petID}, nil)
	fx.petRepo.On("FindByID", ctx, petID).
		Return(&entity.Pet{ID: petID, OwnerID: ownerID}, nil)
	fx.ownerRepo.On("FindByID", ctx, ownerID).
		Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)

	assert.NoError(t, fx.service.Authorize(ctx, identity, entity.ActionUpdate, entity.ResourceVisit, visitID))
}

func TestAuthzService_MissingResourceDeniesUser(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	identity := userIdentity(uuid.New())
	petID := uuid.New()

	fx.petRepo.On("FindByID", ctx, petID).
		Return(nil, repository.ErrPetNotFound)

	// Unprivileged callers cannot distinguish a missing resource from a
	// foreign one.
	err := fx.service.Authorize(ctx, identity, entity.ActionRead, entity.ResourcePet, petID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.False(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAuthzService_ResolverFailureFailsClosed(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	identity := userIdentity(uuid.New())
	ownerID := uuid.New()

	fx.ownerRepo.On("FindByID", ctx, ownerID).
		Return(nil, errors.New("connection reset"))

	err := fx.service.Authorize(ctx, identity, entity.ActionRead, entity.ResourceOwner, ownerID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthzService_NoRecognizedRoleDenied(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	identity := &entity.Identity{UserID: uuid.New(), Roles: entity.Roles{}}

	err := fx.service.Authorize(ctx, identity, entity.ActionRead, entity.ResourceVet, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthzService_OwnsTransitively_MissingResource(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	identity := userIdentity(uuid.New())
	visitID := uuid.New()

	fx.visitRepo.On("FindByID", ctx, visitID).
		Return(nil, repository.ErrVisitNotFound)

	owns, err := fx.service.OwnsTransitively(ctx, identity, entity.ResourceVisit, visitID)
	assert.False(t, owns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAuthzService_OwnsTransitively_NoChainResources(t *testing.T) {
	fx := createTestAuthzService(t)
	ctx := context.Background()

	identity := userIdentity(uuid.New())

	owns, err := fx.service.OwnsTransitively(ctx, identity, entity.ResourceVet, uuid.New())
	assert.False(t, owns)
	assert.NoError(t, err)
}
