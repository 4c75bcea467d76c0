package impl

import (
	"context"
	"sync"
	"testing"

	"petclinic/internal/domain/entity"
	domainerrors "petclinic/internal/domain/errors"
	"petclinic/internal/domain/repository"
	mockRepo "petclinic/internal/mocks/repository"
	mockUC "petclinic/internal/mocks/usecase"
	"petclinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixtures struct {
	service     usecase.AccountUsecase
	authz       *mockUC.MockAuthzUsecase
	ownerRepo   *mockRepo.MockOwnerRepository
	txUserRepo  *mockRepo.MockUserRepository
	txOwnerRepo *mockRepo.MockOwnerRepository
	txPetRepo   *mockRepo.MockPetRepository
	txVisitRepo *mockRepo.MockVisitRepository
}

func createTestAccountService(t *testing.T) accountFixtures {
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txOwnerRepo := mockRepo.NewMockOwnerRepository(t)
	txPetRepo := mockRepo.NewMockPetRepository(t)
	txVisitRepo := mockRepo.NewMockVisitRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo).Maybe()
	factory.On("OwnerRepo").Return(txOwnerRepo).Maybe()
	factory.On("PetRepo").Return(txPetRepo).Maybe()
	factory.On("VisitRepo").Return(txVisitRepo).Maybe()

	authz := mockUC.NewMockAuthzUsecase(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	service := &accountService{
		txManager: passthroughTx(t, factory),
		ownerRepo: ownerRepo,
		authz:     authz,
		logger:    newDiscardLogger(),
	}

	return accountFixtures{
		service:     service,
		authz:       authz,
		ownerRepo:   ownerRepo,
		txUserRepo:  txUserRepo,
		txOwnerRepo: txOwnerRepo,
		txPetRepo:   txPetRepo,
		txVisitRepo: txVisitRepo,
	}
}

func TestAccountService_DeleteAccount_FullCascadeOrder(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	userID := uuid.New()
	ownerID := uuid.New()
	petA := uuid.New()
	petB := uuid.New()

	var order []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, step) }
	}

	fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID).Return(nil)
	fx.txUserRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.txOwnerRepo.On("FindByUserID", ctx, userID).Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)
	fx.txPetRepo.On("FindByOwnerID", ctx, ownerID).
		Return([]*entity.Pet{{ID: petA, OwnerID: ownerID}, {ID: petB, OwnerID: ownerID}}, nil)

	fx.txVisitRepo.On("DeleteByPetID", ctx, petA).Run(record("visits:A")).Return(nil)
	fx.txPetRepo.On("Delete", ctx, petA).Run(record("pet:A")).Return(nil)
	fx.txVisitRepo.On("DeleteByPetID", ctx, petB).Run(record("visits:B")).Return(nil)
	fx.txPetRepo.On("Delete", ctx, petB).Run(record("pet:B")).Return(nil)
	fx.txOwnerRepo.On("Delete", ctx, ownerID).Run(record("owner")).Return(nil)
	fx.txUserRepo.On("DeleteRoleAssociations", ctx, userID).Run(record("roles")).Return(nil)
	fx.txUserRepo.On("Delete", ctx, userID).Run(record("user")).Return(nil)

	err := fx.service.DeleteAccount(ctx, identity, userID)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"visits:A", "pet:A", "visits:B", "pet:B", "owner", "roles", "user",
	}, order)
}

func TestAccountService_DeleteAccount_AdminWithoutOwnerProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	userID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID).Return(nil)
	fx.txUserRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.txOwnerRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrOwnerNotFound)
	fx.txUserRepo.On("DeleteRoleAssociations", ctx, userID).Return(nil)
	fx.txUserRepo.On("Delete", ctx, userID).Return(nil)

	assert.NoError(t, fx.service.DeleteAccount(ctx, identity, userID))
}

func TestAccountService_DeleteAccount_RepeatDeleteIsNotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	userID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID).Return(nil)
	fx.txUserRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, identity, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_DeleteAccount_MidCascadeFailureAborts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	userID := uuid.New()
	ownerID := uuid.New()
	petID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID).Return(nil)
	fx.txUserRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.txOwnerRepo.On("FindByUserID", ctx, userID).Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)
	fx.txPetRepo.On("FindByOwnerID", ctx, ownerID).Return([]*entity.Pet{{ID: petID, OwnerID: ownerID}}, nil)
	fx.txVisitRepo.On("DeleteByPetID", ctx, petID).Return(nil)
	fx.txPetRepo.On("Delete", ctx, petID).Return(errors.New("deadlock detected"))

	err := fx.service.DeleteAccount(ctx, identity, userID)

	// The callback error aborts the transaction; user and roles are never
	// touched (no expectations were registered for them).
	assert.Error(t, err)
}

func TestAccountService_DeleteAccount_DeniedForNonSuperAdmin(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := adminIdentity()

	userID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID).
		Return(domainerrors.ErrForbidden.WrapMessage("access denied"))

	err := fx.service.DeleteAccount(ctx, identity, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccountService_DeleteOwnerWithUser_ResolvesOwnerFirst(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	userID := uuid.New()
	ownerID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceOwner, ownerID).Return(nil)
	fx.ownerRepo.On("FindByID", ctx, ownerID).Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)

	fx.txUserRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.txOwnerRepo.On("FindByUserID", ctx, userID).Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)
	fx.txPetRepo.On("FindByOwnerID", ctx, ownerID).Return([]*entity.Pet{}, nil)
	fx.txOwnerRepo.On("Delete", ctx, ownerID).Return(nil)
	fx.txUserRepo.On("DeleteRoleAssociations", ctx, userID).Return(nil)
	fx.txUserRepo.On("Delete", ctx, userID).Return(nil)

	assert.NoError(t, fx.service.DeleteOwnerWithUser(ctx, identity, ownerID))
}

func TestAccountService_ConcurrentDeletesOfDifferentAccounts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	identity := superAdminIdentity()

	userA := uuid.New()
	userB := uuid.New()

	for _, userID := range []uuid.UUID{userA, userB} {
		fx.authz.On("Authorize", ctx, identity, entity.ActionDeleteCascade, entity.ResourceUser, userID).Return(nil)
		fx.txUserRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
		fx.txOwnerRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrOwnerNotFound)
		fx.txUserRepo.On("DeleteRoleAssociations", ctx, userID).Return(nil)
		fx.txUserRepo.On("Delete", ctx, userID).Return(nil)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, userID := range []uuid.UUID{userA, userB} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fx.service.DeleteAccount(ctx, identity, userID)
		}()
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}
