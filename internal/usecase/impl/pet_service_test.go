package impl

import (
	"context"
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

type petFixtures struct {
	service     usecase.PetUsecase
	authz       *mockUC.MockAuthzUsecase
	petRepo     *mockRepo.MockPetRepository
	ownerRepo   *mockRepo.MockOwnerRepository
	txPetRepo   *mockRepo.MockPetRepository
	txVisitRepo *mockRepo.MockVisitRepository
}

func createTestPetService(t *testing.T) petFixtures {
	txPetRepo := mockRepo.NewMockPetRepository(t)
	txVisitRepo := mockRepo.NewMockVisitRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PetRepo").Return(txPetRepo).Maybe()
	factory.On("VisitRepo").Return(txVisitRepo).Maybe()

	authz := mockUC.NewMockAuthzUsecase(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	service := &petService{
		txManager: passthroughTx(t, factory),
		petRepo:   petRepo,
		ownerRepo: ownerRepo,
		authz:     authz,
		logger:    newDiscardLogger(),
	}

	return petFixtures{
		service:     service,
		authz:       authz,
		petRepo:     petRepo,
		ownerRepo:   ownerRepo,
		txPetRepo:   txPetRepo,
		txVisitRepo: txVisitRepo,
	}
}

func TestPetService_CreatePet_UnderOwnProfile(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()

	userID := uuid.New()
	ownerID := uuid.New()
	identity := userIdentity(userID)

	fx.authz.On("Authorize", ctx, identity, entity.ActionCreate, entity.ResourceOwner, ownerID).Return(nil)
	fx.ownerRepo.On("FindByID", ctx, ownerID).Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)
	fx.petRepo.On("Create", ctx, mock.AnythingOfType("*entity.Pet")).
		Run(func(args mock.Arguments) {
			pet := args.Get(1).(*entity.Pet)
			pet.ID = uuid.New()
		}).
		Return(nil)

	pet, err := fx.service.CreatePet(ctx, identity, ownerID, &usecase.CreatePetInput{Name: "Momo", Breed: "Shiba"})

	require.NoError(t, err)
	assert.Equal(t, ownerID, pet.OwnerID)
	assert.Equal(t, "Momo", pet.Name)
}

func TestPetService_CreatePet_ForeignOwnerDenied(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()
	identity := userIdentity(uuid.New())
	ownerID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionCreate, entity.ResourceOwner, ownerID).
		Return(domainerrors.ErrForbidden.WrapMessage("access denied"))

	pet, err := fx.service.CreatePet(ctx, identity, ownerID, &usecase.CreatePetInput{Name: "Momo"})

	assert.Nil(t, pet)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPetService_DeletePet_RemovesVisitsFirst(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()
	identity := adminIdentity()

	petID := uuid.New()

	var order []string

	fx.authz.On("Authorize", ctx, identity, entity.ActionDelete, entity.ResourcePet, petID).Return(nil)
	fx.txPetRepo.On("FindByID", ctx, petID).Return(&entity.Pet{ID: petID}, nil)
	fx.txVisitRepo.On("DeleteByPetID", ctx, petID).
		Run(func(mock.Arguments) { order = append(order, "visits") }).
		Return(nil)
	fx.txPetRepo.On("Delete", ctx, petID).
		Run(func(mock.Arguments) { order = append(order, "pet") }).
		Return(nil)

	err := fx.service.DeletePet(ctx, identity, petID)

	require.NoError(t, err)
	assert.Equal(t, []string{"visits", "pet"}, order)
}

func TestPetService_DeletePet_NotFound(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()
	identity := adminIdentity()

	petID := uuid.New()

	fx.authz.On("Authorize", ctx, identity, entity.ActionDelete, entity.ResourcePet, petID).Return(nil)
	fx.txPetRepo.On("FindByID", ctx, petID).Return(nil, repository.ErrPetNotFound)

	err := fx.service.DeletePet(ctx, identity, petID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPetService_ListMyPets(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()

	userID := uuid.New()
	ownerID := uuid.New()
	identity := userIdentity(userID)

	fx.ownerRepo.On("FindByUserID", ctx, userID).
		Return(&entity.Owner{ID: ownerID, UserID: userID}, nil)
	fx.petRepo.On("FindByOwnerID", ctx, ownerID).
		Return([]*entity.Pet{{ID: uuid.New(), OwnerID: ownerID}}, nil)

	pets, err := fx.service.ListMyPets(ctx, identity)

	require.NoError(t, err)
	assert.Len(t, pets, 1)
}
